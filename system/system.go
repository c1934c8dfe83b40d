// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package system combines the explicit (nonlinear) and implicit (linear) terms of
// dx/dt = f_E(t,x) + A*x into a single object the stepping methods drive.
package system

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/goimex/coupled"
)

// ExplicitTerm evaluates f_E for slot k of a coupled state. xs holds the states of
// slots 0..k (this slot's own state last) and dxdts the already-computed derivatives
// of slots 0..k-1 (the base trajectory this slot linearizes or integrates around);
// out receives dxdt for this slot.
type ExplicitTerm interface {
	Eval(t float64, xs []coupled.Slot, dxdts []coupled.Slot, out coupled.Slot)
}

// AdjointTerm evaluates the transpose of f_E's linearization for one slot, using the
// recorded forward stage xStage as the base point and lambda as the co-state being
// propagated backward; dlambdadt receives the result.
type AdjointTerm interface {
	Eval(t float64, xStage []coupled.Slot, lambda []coupled.Slot, dlambdadt coupled.Slot)
}

// ImplicitTerm applies the linear operator A for one slot: Mul computes A*z, ImcAMul
// computes (I-cA)*z, and ImcADiv solves (I-cA)*dz = z for dz.
type ImplicitTerm interface {
	Mul(dz, z coupled.Slot)
	ImcAMul(dz, z coupled.Slot, c float64)
	ImcADiv(dz, z coupled.Slot, c float64)
}

// NoOp is the null implicit term: A*z==0, (I-cA)*z==z, (I-cA)^-1*z==z.
type NoOp struct{}

func (NoOp) Mul(dz, z coupled.Slot) {
	for k := 0; k < dz.Len(); k++ {
		dz.Set(k, 0)
	}
}

func (NoOp) ImcAMul(dz, z coupled.Slot, c float64) {
	for k := 0; k < dz.Len(); k++ {
		dz.Set(k, z.At(k))
	}
}

func (NoOp) ImcADiv(dz, z coupled.Slot, c float64) {
	for k := 0; k < dz.Len(); k++ {
		dz.Set(k, z.At(k))
	}
}

// System holds one Explicit/Implicit/Adjoint term per coupled slot and dispatches
// uniformly regardless of arity (spec.md §4.4).
type System struct {
	Explicit []ExplicitTerm
	Implicit []ImplicitTerm
	Adjoint  []AdjointTerm
}

// New builds a System. implicit may be nil entries (defaulting to NoOp). adjoint may
// be entirely nil if only forward integration is needed.
func New(explicit []ExplicitTerm, implicit []ImplicitTerm, adjoint []AdjointTerm) *System {
	if implicit == nil {
		implicit = make([]ImplicitTerm, len(explicit))
	}
	for i, im := range implicit {
		if im == nil {
			implicit[i] = NoOp{}
		}
	}
	return &System{Explicit: explicit, Implicit: implicit, Adjoint: adjoint}
}

// Arity returns the coupled arity (1, 2 or 3) this System was built for.
func (s *System) Arity() int { return len(s.Explicit) }

// Eval computes dxdt = f_E(t, x), slot by slot, each slot's term reading the states
// and derivatives of all earlier slots.
func (s *System) Eval(t float64, x, dxdt coupled.Coupled) {
	xs := make([]coupled.Slot, 0, s.Arity())
	dxdts := make([]coupled.Slot, 0, s.Arity())
	for i := 0; i < s.Arity(); i++ {
		xs = append(xs, x.Slot(i))
		out := dxdt.Slot(i)
		s.Explicit[i].Eval(t, xs, dxdts, out)
		dxdts = append(dxdts, out)
	}
}

// EvalAdjoint computes dlambdadt = f_E'(xStage)^T * lambda, slot by slot, using the
// four-argument adjoint form (spec.md §4.4).
func (s *System) EvalAdjoint(t float64, xStage, lambda, dlambdadt coupled.Coupled) {
	if s.Adjoint == nil {
		chk.Panic("system: EvalAdjoint called but no AdjointTerm was configured")
	}
	xs := make([]coupled.Slot, 0, s.Arity())
	lams := make([]coupled.Slot, 0, s.Arity())
	for i := 0; i < s.Arity(); i++ {
		xs = append(xs, xStage.Slot(i))
		lams = append(lams, lambda.Slot(i))
	}
	for i := 0; i < s.Arity(); i++ {
		out := dlambdadt.Slot(i)
		s.Adjoint[i].Eval(t, xs[:i+1], lams[:i+1], out)
	}
}

// Mul computes dz = A*z slot-wise (no c needed here).
func (s *System) Mul(dz, z coupled.Coupled) {
	for i := 0; i < s.Arity(); i++ {
		s.Implicit[i].Mul(dz.Slot(i), z.Slot(i))
	}
}

// ImcAMul computes dz = (I-cA)*z slot-wise.
func (s *System) ImcAMul(dz, z coupled.Coupled, c float64) {
	for i := 0; i < s.Arity(); i++ {
		s.Implicit[i].ImcAMul(dz.Slot(i), z.Slot(i), c)
	}
}

// ImcADiv solves (I-cA)*dz = z slot-wise for dz.
func (s *System) ImcADiv(dz, z coupled.Coupled, c float64) {
	for i := 0; i < s.Arity(); i++ {
		s.Implicit[i].ImcADiv(dz.Slot(i), z.Slot(i), c)
	}
}
