// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coupled

import "github.com/cpmech/gosl/chk"

// Expr is a lazily-evaluated componentwise arithmetic expression over coupled slots.
// It is a read-only view: it borrows, but never owns, the Coupled values it is built
// from. An Expr must not outlive any operand it was constructed from.
type Expr interface {
	Arity() int
	SlotLen(i int) int
	At(i, k int) float64
}

// Coupled is a Pair or Triplet: a fixed-arity tuple of slots with componentwise
// vector-space arithmetic. Coupled itself is an Expr (a leaf of the expression tree).
type Coupled interface {
	Expr
	Slot(i int) Slot
}

// Single is a 1-slot Coupled value: a bare state, not paired with a tangent-linear or
// quadrature companion. System.Eval's arity-1 case delegates straight to the single
// explicit term against it.
type Single struct {
	slot Slot
}

// NewSingle builds a Single from an already-constructed slot (owning or referential).
func NewSingle(a Slot) *Single { return &Single{slot: a} }

func (s *Single) Arity() int          { return 1 }
func (s *Single) SlotLen(i int) int   { return s.slot.Len() }
func (s *Single) At(i, k int) float64 { return s.slot.At(k) }
func (s *Single) Slot(i int) Slot     { return s.slot }

// Pair is a 2-slot Coupled value, e.g. (state, tangent-linear variation).
type Pair struct {
	slots [2]Slot
}

// NewPair builds a Pair from two already-constructed slots (owning or referential).
func NewPair(a, b Slot) *Pair { return &Pair{slots: [2]Slot{a, b}} }

func (p *Pair) Arity() int         { return 2 }
func (p *Pair) SlotLen(i int) int  { return p.slots[i].Len() }
func (p *Pair) At(i, k int) float64 { return p.slots[i].At(k) }
func (p *Pair) Slot(i int) Slot    { return p.slots[i] }

// Triplet is a 3-slot Coupled value, e.g. (state, tangent-linear variation, quadrature).
type Triplet struct {
	slots [3]Slot
}

// NewTriplet builds a Triplet from three already-constructed slots.
func NewTriplet(a, b, c Slot) *Triplet { return &Triplet{slots: [3]Slot{a, b, c}} }

func (p *Triplet) Arity() int          { return 3 }
func (p *Triplet) SlotLen(i int) int   { return p.slots[i].Len() }
func (p *Triplet) At(i, k int) float64 { return p.slots[i].At(k) }
func (p *Triplet) Slot(i int) Slot     { return p.slots[i] }

// Clone produces a new, fully-owning deep copy of c. Used by Method scratch buffers
// and StageCache pushes, so that later mutation of c never corrupts the copy.
func Clone(c Coupled) Coupled {
	switch v := c.(type) {
	case *Single:
		return &Single{slot: cloneSlot(v.slot)}
	case *Pair:
		return &Pair{slots: [2]Slot{cloneSlot(v.slots[0]), cloneSlot(v.slots[1])}}
	case *Triplet:
		return &Triplet{slots: [3]Slot{cloneSlot(v.slots[0]), cloneSlot(v.slots[1]), cloneSlot(v.slots[2])}}
	}
	chk.Panic("coupled: Clone: unsupported Coupled implementation %T", c)
	return nil
}

// CopyInto assigns src's values into dst slot-by-slot without building an Expr tree;
// it is Assign(dst, src) with the Coupled src itself as the leaf.
func CopyInto(dst, src Coupled) error {
	return Assign(dst, src)
}
