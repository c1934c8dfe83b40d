// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package coupled implements the heterogeneous Pair/Triplet tuple value with lazy,
// componentwise vector-space arithmetic used to advance (state, tangent, quadrature)
// together under a single Runge-Kutta stage loop.
package coupled

import "github.com/cpmech/gosl/la"

// Slot is either an arithmetic scalar or an indexable vector held by a Coupled value.
// Len returns 1 for a scalar slot and the vector length for a vector slot.
type Slot interface {
	Len() int
	At(k int) float64
	Set(k int, v float64)
}

// Scalar is a single float64 slot. It may own its value or reference a caller's variable.
type Scalar struct {
	p *float64
}

// NewScalar constructs an owning scalar slot initialised to v.
func NewScalar(v float64) *Scalar {
	x := v
	return &Scalar{p: &x}
}

// NewScalarRef constructs a referential scalar slot that mutates *p in place.
func NewScalarRef(p *float64) *Scalar { return &Scalar{p: p} }

func (s *Scalar) Len() int              { return 1 }
func (s *Scalar) At(k int) float64      { return *s.p }
func (s *Scalar) Set(k int, v float64)  { *s.p = v }
func (s *Scalar) Value() float64        { return *s.p }
func (s *Scalar) SetValue(v float64)    { *s.p = v }

// Vector is a slice-backed slot. It may own a private copy of the data or reference
// the caller's slice directly (mutation through the Vector then mutates the original).
type Vector struct {
	v []float64
}

// NewVector constructs an owning vector slot, deep-copying src.
func NewVector(src []float64) *Vector {
	cp := make([]float64, len(src))
	la.VecCopy(cp, 1, src)
	return &Vector{v: cp}
}

// NewVectorRef constructs a referential vector slot backed directly by v.
func NewVectorRef(v []float64) *Vector { return &Vector{v: v} }

func (s *Vector) Len() int             { return len(s.v) }
func (s *Vector) At(k int) float64     { return s.v[k] }
func (s *Vector) Set(k int, v float64) { s.v[k] = v }
func (s *Vector) Raw() []float64       { return s.v }

// cloneSlot returns a new, owning deep copy of s, regardless of whether s itself owns
// or references its underlying storage. Used by stage caches to freeze a snapshot.
func cloneSlot(s Slot) Slot {
	switch t := s.(type) {
	case *Scalar:
		return NewScalar(t.Value())
	case *Vector:
		return NewVector(t.v)
	}
	// any other Slot implementation is copied elementwise
	n := s.Len()
	v := make([]float64, n)
	for i := 0; i < n; i++ {
		v[i] = s.At(i)
	}
	return NewVectorRef(v)
}
