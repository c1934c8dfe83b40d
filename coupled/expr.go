// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coupled

import "github.com/cpmech/gosl/chk"

// addExpr, subExpr, mulScalarExpr and divScalarExpr are the four node kinds of the
// expression tree (spec: Add, Sub, MulScalar, DivScalar). Each is a stack-resident
// view over its operands; none of them copy data.

type addExpr struct{ l, r Expr }

func (e addExpr) Arity() int          { return e.l.Arity() }
func (e addExpr) SlotLen(i int) int   { return e.l.SlotLen(i) }
func (e addExpr) At(i, k int) float64 { return e.l.At(i, k) + e.r.At(i, k) }

type subExpr struct{ l, r Expr }

func (e subExpr) Arity() int          { return e.l.Arity() }
func (e subExpr) SlotLen(i int) int   { return e.l.SlotLen(i) }
func (e subExpr) At(i, k int) float64 { return e.l.At(i, k) - e.r.At(i, k) }

type mulScalarExpr struct {
	e Expr
	s float64
}

func (e mulScalarExpr) Arity() int          { return e.e.Arity() }
func (e mulScalarExpr) SlotLen(i int) int   { return e.e.SlotLen(i) }
func (e mulScalarExpr) At(i, k int) float64 { return e.e.At(i, k) * e.s }

type divScalarExpr struct {
	e Expr
	s float64
}

func (e divScalarExpr) Arity() int          { return e.e.Arity() }
func (e divScalarExpr) SlotLen(i int) int   { return e.e.SlotLen(i) }
func (e divScalarExpr) At(i, k int) float64 { return e.e.At(i, k) / e.s }

// Add returns a lazy expression representing l+r, evaluated only on assignment.
func Add(l, r Expr) Expr { return addExpr{l, r} }

// Sub returns a lazy expression representing l-r, evaluated only on assignment.
func Sub(l, r Expr) Expr { return subExpr{l, r} }

// MulScalar returns a lazy expression representing e*s, evaluated only on assignment.
func MulScalar(e Expr, s float64) Expr { return mulScalarExpr{e, s} }

// DivScalar returns a lazy expression representing e/s, evaluated only on assignment.
// Division by s==0 is undefined behaviour, matching IEEE-754 float division; it is not
// caught here.
func DivScalar(e Expr, s float64) Expr { return divScalarExpr{e, s} }

// Assign walks src once and writes its value into dst, slot-ascending then
// element-ascending within each slot, so the traversal order is deterministic and
// matches the order a hand-written per-slot loop would use.
func Assign(dst Coupled, src Expr) error {
	if dst.Arity() != src.Arity() {
		return chk.Err("coupled: Assign: arity mismatch: dst has %d slots, src has %d", dst.Arity(), src.Arity())
	}
	for i := 0; i < dst.Arity(); i++ {
		ds := dst.Slot(i)
		n := ds.Len()
		if sn := src.SlotLen(i); sn != n {
			return chk.Err("coupled: Assign: slot %d length mismatch: dst=%d src=%d", i, n, sn)
		}
		for k := 0; k < n; k++ {
			ds.Set(k, src.At(i, k))
		}
	}
	return nil
}

// AssignScalar broadcasts v to every element of every slot of dst (spec invariant iii).
func AssignScalar(dst Coupled, v float64) {
	for i := 0; i < dst.Arity(); i++ {
		ds := dst.Slot(i)
		n := ds.Len()
		for k := 0; k < n; k++ {
			ds.Set(k, v)
		}
	}
}
