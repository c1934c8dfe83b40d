// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package tests exercises the integration engine end-to-end against fixtures with
// known closed-form or hand-derived solutions: scalar linear exponential decay/growth
// and the Lorenz attractor, split both as a pure explicit system and as an IMEX system
// with a diagonal (hence self-adjoint) linear part.
package tests

import "github.com/cpmech/goimex/coupled"

// ExpExplicit is dx/dt = Lambda*x, treated entirely explicitly.
type ExpExplicit struct {
	Lambda float64
}

func (e ExpExplicit) Eval(t float64, xs, dxdts []coupled.Slot, out coupled.Slot) {
	out.Set(0, e.Lambda*xs[0].At(0))
}

// ExpAdjoint is the (trivial, self-adjoint) transpose of ExpExplicit's linearization:
// d/dx(Lambda*x) = Lambda, a scalar, so its own transpose.
type ExpAdjoint struct {
	Lambda float64
}

func (e ExpAdjoint) Eval(t float64, xStage, lambda []coupled.Slot, dlambdadt coupled.Slot) {
	dlambdadt.Set(0, e.Lambda*lambda[0].At(0))
}

// LorenzExplicit is the nonlinear remainder of the Lorenz equations once the diagonal
// linear part (-Sigma*x, -y, -Beta*z) has been peeled off into LorenzImplicit:
//
//	dx/dt = Sigma*y        + (-Sigma*x)
//	dy/dt = Rho*x - x*z    + (-y)
//	dz/dt = x*y            + (-Beta*z)
//
// which recombines to the textbook form dx/dt=Sigma(y-x), dy/dt=x(Rho-z)-y,
// dz/dt=xy-Beta*z. Only Rho enters this remainder; Sigma and Beta are carried by
// LorenzImplicit.
type LorenzExplicit struct {
	Rho float64
}

func (e LorenzExplicit) Eval(t float64, xs, dxdts []coupled.Slot, out coupled.Slot) {
	x, y, z := xs[0].At(0), xs[0].At(1), xs[0].At(2)
	out.Set(0, y)
	out.Set(1, e.Rho*x-x*z)
	out.Set(2, x*y)
}

// LorenzPure is the full unsplit Lorenz right-hand side, for use with a NoOp implicit
// term (all-explicit treatment, as RK4 needs no implicit split).
type LorenzPure struct {
	Sigma, Rho, Beta float64
}

func (e LorenzPure) Eval(t float64, xs, dxdts []coupled.Slot, out coupled.Slot) {
	x, y, z := xs[0].At(0), xs[0].At(1), xs[0].At(2)
	out.Set(0, e.Sigma*(y-x))
	out.Set(1, x*(e.Rho-z)-y)
	out.Set(2, x*y-e.Beta*z)
}

// LorenzImplicit is the diagonal linear part A = diag(-Sigma, -1, -Beta), split out of
// the full Lorenz system so CB3R2R/CB4R3R can treat it implicitly. A diagonal operator
// is trivially self-adjoint, which is what lets this package assert machine-precision
// forward/adjoint duality for the IMEX schemes, not just for RK4.
type LorenzImplicit struct {
	Sigma, Beta float64
}

func (m LorenzImplicit) diag(k int) float64 {
	switch k {
	case 0:
		return -m.Sigma
	case 1:
		return -1
	default:
		return -m.Beta
	}
}

func (m LorenzImplicit) Mul(dz, z coupled.Slot) {
	for k := 0; k < dz.Len(); k++ {
		dz.Set(k, m.diag(k)*z.At(k))
	}
}

func (m LorenzImplicit) ImcAMul(dz, z coupled.Slot, c float64) {
	for k := 0; k < dz.Len(); k++ {
		dz.Set(k, (1-c*m.diag(k))*z.At(k))
	}
}

func (m LorenzImplicit) ImcADiv(dz, z coupled.Slot, c float64) {
	for k := 0; k < dz.Len(); k++ {
		dz.Set(k, z.At(k)/(1-c*m.diag(k)))
	}
}

// LorenzAdjoint is the transpose of LorenzExplicit's Jacobian at the recorded forward
// stage (x, y, z):
//
//	J = [[0, 1, 0], [Rho-z, 0, -x], [y, x, 0]]
//	J^T*lambda = [(Rho-z)*l1 + y*l2, l0 + x*l2, -x*l1]
type LorenzAdjoint struct {
	Rho float64
}

func (e LorenzAdjoint) Eval(t float64, xStage, lambda []coupled.Slot, dlambdadt coupled.Slot) {
	x, _, z := xStage[0].At(0), xStage[0].At(1), xStage[0].At(2)
	y := xStage[0].At(1)
	l0, l1, l2 := lambda[0].At(0), lambda[0].At(1), lambda[0].At(2)
	dlambdadt.Set(0, (e.Rho-z)*l1+y*l2)
	dlambdadt.Set(1, l0+x*l2)
	dlambdadt.Set(2, -x*l1)
}

// TangentExplicit computes J(x)*v for LorenzExplicit's nonlinear remainder, where x is
// the base-trajectory companion slot (xs[0]) and v is the tangent-linear perturbation
// slot (xs[1]); see spec.md §4.4's note that a later slot's explicit term may read all
// earlier slots' state.
type TangentExplicit struct {
	Rho float64
}

func (e TangentExplicit) Eval(t float64, xs, dxdts []coupled.Slot, out coupled.Slot) {
	x, y, z := xs[0].At(0), xs[0].At(1), xs[0].At(2)
	v0, v1, v2 := xs[1].At(0), xs[1].At(1), xs[1].At(2)
	out.Set(0, v1)
	out.Set(1, (e.Rho-z)*v0-x*v2)
	out.Set(2, y*v0+x*v1)
}

// TangentExplicitFull is TangentExplicit's counterpart for the unsplit LorenzPure
// right-hand side: J(x)*v using the full (not diagonal-stripped) Jacobian.
type TangentExplicitFull struct {
	Sigma, Rho, Beta float64
}

func (e TangentExplicitFull) Eval(t float64, xs, dxdts []coupled.Slot, out coupled.Slot) {
	x, _, z := xs[0].At(0), xs[0].At(1), xs[0].At(2)
	y := xs[0].At(1)
	v0, v1, v2 := xs[1].At(0), xs[1].At(1), xs[1].At(2)
	out.Set(0, -e.Sigma*v0+e.Sigma*v1)
	out.Set(1, (e.Rho-z)*v0-v1-x*v2)
	out.Set(2, y*v0+x*v1-e.Beta*v2)
}

// LorenzAdjointFull is LorenzAdjoint's counterpart for the unsplit LorenzPure system:
// the transpose of the full Jacobian, applied to the co-state lambda.
type LorenzAdjointFull struct {
	Sigma, Rho, Beta float64
}

func (e LorenzAdjointFull) Eval(t float64, xStage, lambda []coupled.Slot, dlambdadt coupled.Slot) {
	x, _, z := xStage[0].At(0), xStage[0].At(1), xStage[0].At(2)
	y := xStage[0].At(1)
	l0, l1, l2 := lambda[0].At(0), lambda[0].At(1), lambda[0].At(2)
	dlambdadt.Set(0, -e.Sigma*l0+(e.Rho-z)*l1+y*l2)
	dlambdadt.Set(1, e.Sigma*l0-l1+x*l2)
	dlambdadt.Set(2, -x*l1-e.Beta*l2)
}

// QuadExplicit is dq/dt = x, the quadrature companion of a scalar state slot 0,
// reading slot 0's already-computed value xs[0].
type QuadExplicit struct{}

func (QuadExplicit) Eval(t float64, xs, dxdts []coupled.Slot, out coupled.Slot) {
	out.Set(0, xs[0].At(0))
}

// HalfExplicit and HalfImplicit split dx/dt = x evenly between an explicit term and a
// scalar implicit operator A=0.5, so a coupled (x, q) integration exercises both
// treatments at once (spec.md §8 scenario 4).
type HalfExplicit struct{}

func (HalfExplicit) Eval(t float64, xs, dxdts []coupled.Slot, out coupled.Slot) {
	out.Set(0, 0.5*xs[0].At(0))
}

type HalfImplicit struct{}

func (HalfImplicit) Mul(dz, z coupled.Slot) { dz.Set(0, 0.5*z.At(0)) }

func (HalfImplicit) ImcAMul(dz, z coupled.Slot, c float64) { dz.Set(0, (1-c*0.5)*z.At(0)) }

func (HalfImplicit) ImcADiv(dz, z coupled.Slot, c float64) { dz.Set(0, z.At(0)/(1-c*0.5)) }
