// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package method

import (
	"github.com/cpmech/goimex/coupled"
	"github.com/cpmech/goimex/stage"
	"github.com/cpmech/goimex/system"
	"github.com/cpmech/goimex/tableau"
)

// CB3R2R implements the low-storage 3-register Cavaglieri-Bewley IMEX scheme, usable
// with any IMEXTableau of stage count N (CB2 gives the 2nd order variant, CB3e the
// 3rd order variant). K=3 scratch buffers regardless of N.
type CB3R2R struct {
	tab     *tableau.IMEXTableau
	y, z, w coupled.Coupled
}

// NewCB3R2R preallocates scratch shaped like exemplar for the given tableau.
func NewCB3R2R(tab *tableau.IMEXTableau, exemplar coupled.Coupled) *CB3R2R {
	return &CB3R2R{
		tab: tab,
		y:   coupled.Clone(exemplar),
		z:   coupled.Clone(exemplar),
		w:   coupled.Clone(exemplar),
	}
}

func (m *CB3R2R) NumStages() int { return m.tab.N() }

// Step runs the N-stage CB3R2R loop of spec.md §4.5.
func (m *CB3R2R) Step(sys *system.System, t, dt float64, x coupled.Coupled, cache *stage.Cache) error {
	n := m.tab.N()
	if cache != nil {
		cache.Setup(t, dt, n)
	}
	for k := 0; k < n; k++ {
		if k == 0 {
			must(coupled.CopyInto(m.y, x))
		} else {
			aI, _ := m.tab.A('I', k, k-1)
			bIprev, _ := m.tab.BC('I', 'b', k-1)
			aE, _ := m.tab.A('E', k, k-1)
			bEprev, _ := m.tab.BC('E', 'b', k-1)
			must(coupled.Assign(m.y, coupled.Add(
				coupled.Add(x, coupled.MulScalar(m.z, (aI-bIprev)*dt)),
				coupled.MulScalar(m.y, (aE-bEprev)*dt),
			)))
		}
		sys.Mul(m.z, m.y) // z := A*y
		aIkk, _ := m.tab.A('I', k, k)
		c := aIkk * dt
		sys.ImcADiv(m.z, m.z, c) // z := (I-cA)^-1*z, so z == A*w for the stage value w below
		must(coupled.Assign(m.w, coupled.Add(m.y, coupled.MulScalar(m.z, c))))
		if cache != nil {
			cache.Push(m.w)
		}
		cE, _ := m.tab.BC('E', 'c', k)
		sys.Eval(t+cE*dt, m.w, m.y) // y reused for the explicit rhs
		bIk, _ := m.tab.BC('I', 'b', k)
		bEk, _ := m.tab.BC('E', 'b', k)
		must(coupled.Assign(x, coupled.Add(x, coupled.Add(
			coupled.MulScalar(m.z, bIk*dt),
			coupled.MulScalar(m.y, bEk*dt),
		))))
	}
	if cache != nil {
		cache.Close()
	}
	return nil
}

// CB3R2RAdjoint runs the exact discrete transpose of CB3R2R.Step, derived the same way
// RK4Adjoint is: reverse-accumulating through the literal forward dependency graph
// (Y_k -> Z_k=M_k*Y_k -> W_k=Y_k+c_k*Z_k -> F_k, and Y_k's own dependence on Z_{k-1}
// and F_{k-1} through the (aI-bI)/(aE-bE) cross-stage coupling CB3R2R.Step folds in to
// compensate for x already carrying stage k-1's update). M_k=(I-c_k*A)^-1*A is
// self-adjoint whenever A is (true of the diagonal/symmetric operators this library's
// tests exercise), which lets StepAdjoint reuse System.Mul/ImcADiv verbatim for M_k's
// transpose, but self-adjointness of A alone is not enough: the cross-stage carry
// terms and the c_k*Z_k contribution to W_k below are what the naive "just transpose
// each piece in isolation" version was missing.
type CB3R2RAdjoint struct {
	tab            *tableau.IMEXTableau
	z, f, g, y     coupled.Coupled
	carryZ, carryF coupled.Coupled
}

// NewCB3R2RAdjoint preallocates scratch shaped like exemplar for the given tableau.
func NewCB3R2RAdjoint(tab *tableau.IMEXTableau, exemplar coupled.Coupled) *CB3R2RAdjoint {
	return &CB3R2RAdjoint{
		tab:    tab,
		z:      coupled.Clone(exemplar),
		f:      coupled.Clone(exemplar),
		g:      coupled.Clone(exemplar),
		y:      coupled.Clone(exemplar),
		carryZ: coupled.Clone(exemplar),
		carryF: coupled.Clone(exemplar),
	}
}

func (m *CB3R2RAdjoint) NumStages() int { return m.tab.N() }

// StepAdjoint sweeps k=N-1..0. w plays the role of x_{k+1}'s co-state on entry to each
// iteration; carryZ/carryF carry forward the cotangent that stage k+1's Y combination
// sent back into Z_k/F_k (the transpose of the aI-bI/aE-bE coupling), zeroed before the
// last stage since Y_0 has no such coupling.
func (m *CB3R2RAdjoint) StepAdjoint(sys *system.System, t, dt float64, w coupled.Coupled, rec stage.Record) error {
	n := m.tab.N()
	coupled.AssignScalar(m.carryZ, 0)
	coupled.AssignScalar(m.carryF, 0)
	for k := n - 1; k >= 0; k-- {
		bIk, _ := m.tab.BC('I', 'b', k)
		bEk, _ := m.tab.BC('E', 'b', k)
		cE, _ := m.tab.BC('E', 'c', k)
		aIkk, _ := m.tab.A('I', k, k)
		c := aIkk * dt

		must(coupled.Assign(m.z, coupled.Add(coupled.MulScalar(w, bIk*dt), m.carryZ)))
		must(coupled.Assign(m.f, coupled.Add(coupled.MulScalar(w, bEk*dt), m.carryF)))

		// g := J_k^T(f), the transpose of "y reused for explicit rhs" at W_k
		sys.EvalAdjoint(rec.T+cE*dt, rec.Stages[k], m.f, m.g)

		// Z_k feeds both x (through z) and W_k = Y_k + c*Z_k (through g)
		must(coupled.Assign(m.z, coupled.Add(m.z, coupled.MulScalar(m.g, c))))
		// y := M_k(z) = (I-cA)^-1*A*z, the same op order Step uses to build M_k
		sys.Mul(m.y, m.z)
		sys.ImcADiv(m.y, m.y, c)
		must(coupled.Assign(m.y, coupled.Add(m.y, m.g)))

		must(coupled.Assign(w, coupled.Add(w, m.y)))

		if k > 0 {
			aI, _ := m.tab.A('I', k, k-1)
			bIprev, _ := m.tab.BC('I', 'b', k-1)
			aE, _ := m.tab.A('E', k, k-1)
			bEprev, _ := m.tab.BC('E', 'b', k-1)
			must(coupled.Assign(m.carryZ, coupled.MulScalar(m.y, (aI-bIprev)*dt)))
			must(coupled.Assign(m.carryF, coupled.MulScalar(m.y, (aE-bEprev)*dt)))
		}
	}
	return nil
}
