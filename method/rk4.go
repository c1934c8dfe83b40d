// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package method

import (
	"github.com/cpmech/goimex/coupled"
	"github.com/cpmech/goimex/stage"
	"github.com/cpmech/goimex/system"
)

// RK4 is the classical fourth order explicit Runge-Kutta method, K=5 scratch buffers.
type RK4 struct {
	k1, k2, k3, k4, y coupled.Coupled
}

// NewRK4 preallocates scratch shaped like exemplar.
func NewRK4(exemplar coupled.Coupled) *RK4 {
	return &RK4{
		k1: coupled.Clone(exemplar),
		k2: coupled.Clone(exemplar),
		k3: coupled.Clone(exemplar),
		k4: coupled.Clone(exemplar),
		y:  coupled.Clone(exemplar),
	}
}

func (m *RK4) NumStages() int { return 4 }

// Step advances x in place: y=x; k1=f(t,y); y=x+dt/2 k1; k2=f(t+dt/2,y); ...
func (m *RK4) Step(sys *system.System, t, dt float64, x coupled.Coupled, cache *stage.Cache) error {
	if cache != nil {
		cache.Setup(t, dt, m.NumStages())
	}
	must(coupled.CopyInto(m.y, x))
	sys.Eval(t, m.y, m.k1)
	if cache != nil {
		cache.Push(m.y)
	}

	must(coupled.Assign(m.y, coupled.Add(x, coupled.MulScalar(m.k1, dt/2))))
	sys.Eval(t+dt/2, m.y, m.k2)
	if cache != nil {
		cache.Push(m.y)
	}

	must(coupled.Assign(m.y, coupled.Add(x, coupled.MulScalar(m.k2, dt/2))))
	sys.Eval(t+dt/2, m.y, m.k3)
	if cache != nil {
		cache.Push(m.y)
	}

	must(coupled.Assign(m.y, coupled.Add(x, coupled.MulScalar(m.k3, dt))))
	sys.Eval(t+dt, m.y, m.k4)
	if cache != nil {
		cache.Push(m.y)
	}

	sum := coupled.Add(coupled.Add(m.k1, m.k4), coupled.Add(coupled.MulScalar(m.k2, 2), coupled.MulScalar(m.k3, 2)))
	if err := coupled.Assign(x, coupled.Add(x, coupled.MulScalar(sum, dt/6))); err != nil {
		return err
	}
	if cache != nil {
		cache.Close()
	}
	return nil
}

// RK4Adjoint is the exact discrete adjoint of RK4: the transpose of the linear map
// dx -> dx_{n+1} induced by one RK4 step, evaluated by reverse-accumulating through
// the same dependency graph the forward step builds (stage4 depends on stage3, etc.),
// using the recorded forward stages as the base points for each Jacobian-transpose
// application.
type RK4Adjoint struct {
	wOut, acc, barK1, barK2, barK3, barK4, barV coupled.Coupled
}

// NewRK4Adjoint preallocates scratch shaped like exemplar.
func NewRK4Adjoint(exemplar coupled.Coupled) *RK4Adjoint {
	return &RK4Adjoint{
		wOut:  coupled.Clone(exemplar),
		acc:   coupled.Clone(exemplar),
		barK1: coupled.Clone(exemplar),
		barK2: coupled.Clone(exemplar),
		barK3: coupled.Clone(exemplar),
		barK4: coupled.Clone(exemplar),
		barV:  coupled.Clone(exemplar),
	}
}

func (m *RK4Adjoint) NumStages() int { return 4 }

// StepAdjoint advances the co-state w backward over one step, given the forward
// stages [y1,y2,y3,y4] recorded at (rec.T, rec.Dt) by RK4.Step.
func (m *RK4Adjoint) StepAdjoint(sys *system.System, t, dt float64, w coupled.Coupled, rec stage.Record) error {
	h := rec.Dt
	t0 := rec.T
	t1 := rec.T + h/2
	t2 := rec.T + h/2
	t3 := rec.T + h

	must(coupled.CopyInto(m.wOut, w))
	must(coupled.CopyInto(m.acc, w))
	must(coupled.Assign(m.barK1, coupled.MulScalar(m.wOut, h/6)))
	must(coupled.Assign(m.barK2, coupled.MulScalar(m.wOut, h/3)))
	must(coupled.Assign(m.barK3, coupled.MulScalar(m.wOut, h/3)))
	must(coupled.Assign(m.barK4, coupled.MulScalar(m.wOut, h/6)))

	// k4 = J4(y4)*v4, v4 = x + h*k3
	sys.EvalAdjoint(t3, rec.Stages[3], m.barK4, m.barV)
	must(coupled.Assign(m.acc, coupled.Add(m.acc, m.barV)))
	must(coupled.Assign(m.barK3, coupled.Add(m.barK3, coupled.MulScalar(m.barV, h))))

	// k3 = J3(y3)*v3, v3 = x + h/2*k2
	sys.EvalAdjoint(t2, rec.Stages[2], m.barK3, m.barV)
	must(coupled.Assign(m.acc, coupled.Add(m.acc, m.barV)))
	must(coupled.Assign(m.barK2, coupled.Add(m.barK2, coupled.MulScalar(m.barV, h/2))))

	// k2 = J2(y2)*v2, v2 = x + h/2*k1
	sys.EvalAdjoint(t1, rec.Stages[1], m.barK2, m.barV)
	must(coupled.Assign(m.acc, coupled.Add(m.acc, m.barV)))
	must(coupled.Assign(m.barK1, coupled.Add(m.barK1, coupled.MulScalar(m.barV, h/2))))

	// k1 = J1(y1)*v1, v1 = x
	sys.EvalAdjoint(t0, rec.Stages[0], m.barK1, m.barV)
	must(coupled.Assign(m.acc, coupled.Add(m.acc, m.barV)))

	return coupled.CopyInto(w, m.acc)
}
