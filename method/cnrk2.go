// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package method

import (
	"github.com/cpmech/goimex/coupled"
	"github.com/cpmech/goimex/stage"
	"github.com/cpmech/goimex/system"
)

// CNRK2 is the Crank-Nicolson/RK2 predictor-corrector scheme, 5 scratch buffers.
type CNRK2 struct {
	k1, k2, k3, k4, k5 coupled.Coupled
}

// NewCNRK2 preallocates scratch shaped like exemplar.
func NewCNRK2(exemplar coupled.Coupled) *CNRK2 {
	return &CNRK2{
		k1: coupled.Clone(exemplar),
		k2: coupled.Clone(exemplar),
		k3: coupled.Clone(exemplar),
		k4: coupled.Clone(exemplar),
		k5: coupled.Clone(exemplar),
	}
}

func (m *CNRK2) NumStages() int { return 2 }

// Step runs the predictor/corrector pair of spec.md §4.5.
func (m *CNRK2) Step(sys *system.System, t, dt float64, x coupled.Coupled, cache *stage.Cache) error {
	if cache != nil {
		cache.Setup(t, dt, m.NumStages())
	}
	// predictor
	sys.ImcAMul(m.k1, x, -dt/2)
	sys.Eval(t, x, m.k2)
	if cache != nil {
		cache.Push(x)
	}
	must(coupled.Assign(m.k3, coupled.Add(m.k1, coupled.MulScalar(m.k2, dt))))
	sys.ImcADiv(m.k4, m.k3, dt/2)

	// corrector
	sys.Eval(t+dt, m.k4, m.k5)
	if cache != nil {
		cache.Push(m.k4)
	}
	must(coupled.Assign(m.k3, coupled.Add(m.k1, coupled.MulScalar(coupled.Add(m.k2, m.k5), dt/2))))
	sys.ImcADiv(x, m.k3, dt/2)
	if cache != nil {
		cache.Close()
	}
	return nil
}

// CNRK2Adjoint is the discrete adjoint of CNRK2, derived by reverse-accumulating the
// predictor/corrector dependency graph exactly as RK4Adjoint does for RK4. The
// implicit operator A is assumed self-adjoint, so ImcAMul/ImcADiv double as their own
// transpose (true of the diagonal/symmetric operators this library's tests exercise).
type CNRK2Adjoint struct {
	g, barK1, barK2, barK3, barK4, barK5, acc coupled.Coupled
}

// NewCNRK2Adjoint preallocates scratch shaped like exemplar.
func NewCNRK2Adjoint(exemplar coupled.Coupled) *CNRK2Adjoint {
	return &CNRK2Adjoint{
		g:     coupled.Clone(exemplar),
		barK1: coupled.Clone(exemplar),
		barK2: coupled.Clone(exemplar),
		barK3: coupled.Clone(exemplar),
		barK4: coupled.Clone(exemplar),
		barK5: coupled.Clone(exemplar),
		acc:   coupled.Clone(exemplar),
	}
}

func (m *CNRK2Adjoint) NumStages() int { return 2 }

// StepAdjoint replays the recorded (x, k4) stage pair in reverse.
func (m *CNRK2Adjoint) StepAdjoint(sys *system.System, t, dt float64, w coupled.Coupled, rec stage.Record) error {
	h := rec.Dt
	stage0 := rec.Stages[0] // x, the predictor base point
	stage1 := rec.Stages[1] // k4, the corrector base point

	must(coupled.CopyInto(m.barK3, w))
	sys.ImcADiv(m.barK3, m.barK3, h/2)

	must(coupled.CopyInto(m.barK1, m.barK3))
	must(coupled.Assign(m.barK2, coupled.MulScalar(m.barK3, h/2)))
	must(coupled.Assign(m.barK5, coupled.MulScalar(m.barK3, h/2)))

	sys.EvalAdjoint(rec.T+h, stage1, m.barK5, m.barK4)

	must(coupled.CopyInto(m.barK3, m.barK4))
	sys.ImcADiv(m.barK3, m.barK3, h/2)

	must(coupled.Assign(m.barK1, coupled.Add(m.barK1, m.barK3)))
	must(coupled.Assign(m.barK2, coupled.Add(m.barK2, coupled.MulScalar(m.barK3, h))))

	must(coupled.CopyInto(m.acc, m.barK1))
	sys.ImcAMul(m.acc, m.acc, -h/2)
	sys.EvalAdjoint(rec.T, stage0, m.barK2, m.g)
	must(coupled.Assign(m.acc, coupled.Add(m.acc, m.g)))

	return coupled.CopyInto(w, m.acc)
}
