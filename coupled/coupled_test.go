// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coupled

import (
	"math"
	"testing"
)

func newTestTriplet(scalar float64, vec []float64, q float64) *Triplet {
	return NewTriplet(NewScalar(scalar), NewVector(vec), NewScalar(q))
}

func TestArithmeticMatchesHandLoop(t *testing.T) {
	a := newTestTriplet(1.0, []float64{1, 2, 3}, 0.5)
	b := newTestTriplet(2.0, []float64{4, 5, 6}, -1.5)
	c := newTestTriplet(0, []float64{0, 0, 0}, 0)

	expr := Add(Sub(Add(MulScalar(a, 2), MulScalar(b, 3)), MulScalar(a, 2)), DivScalar(b, 1.5))
	if err := Assign(c, expr); err != nil {
		t.Fatalf("Assign: %v", err)
	}

	// hand-written per-slot loop over the same arithmetic
	wantScalar0 := 2*a.slots[0].At(0) + 3*b.slots[0].At(0) - a.slots[0].At(0)*2 + b.slots[0].At(0)/1.5
	wantScalar2 := 2*a.slots[2].At(0) + 3*b.slots[2].At(0) - a.slots[2].At(0)*2 + b.slots[2].At(0)/1.5
	if c.slots[0].At(0) != wantScalar0 {
		t.Errorf("slot0: got %v, want %v", c.slots[0].At(0), wantScalar0)
	}
	if c.slots[2].At(0) != wantScalar2 {
		t.Errorf("slot2: got %v, want %v", c.slots[2].At(0), wantScalar2)
	}
	for k := 0; k < 3; k++ {
		want := 2*a.slots[1].At(k) + 3*b.slots[1].At(k) - a.slots[1].At(k)*2 + b.slots[1].At(k)/1.5
		if math.Abs(c.slots[1].At(k)-want) > 0 {
			t.Errorf("slot1[%d]: got %v, want %v", k, c.slots[1].At(k), want)
		}
	}
}

func TestBroadcastScalar(t *testing.T) {
	c := newTestTriplet(1, []float64{1, 2, 3}, 1)
	AssignScalar(c, 7)
	if c.slots[0].At(0) != 7 {
		t.Errorf("scalar slot not broadcast")
	}
	for k := 0; k < 3; k++ {
		if c.slots[1].At(k) != 7 {
			t.Errorf("vector slot[%d] not broadcast", k)
		}
	}
	if c.slots[2].At(0) != 7 {
		t.Errorf("quadrature slot not broadcast")
	}
}

func TestArityMismatch(t *testing.T) {
	p := NewPair(NewScalar(1), NewVector([]float64{1, 2}))
	tr := newTestTriplet(0, []float64{0, 0}, 0)
	if err := Assign(tr, p); err == nil {
		t.Errorf("expected arity mismatch error")
	}
}

func TestSlotLengthMismatch(t *testing.T) {
	dst := NewPair(NewScalar(0), NewVector([]float64{0, 0, 0}))
	src := NewPair(NewScalar(1), NewVector([]float64{1, 2}))
	if err := Assign(dst, src); err == nil {
		t.Errorf("expected slot length mismatch error")
	}
}

func TestReferentialMutatesOriginal(t *testing.T) {
	x := []float64{1, 2, 3}
	s := 5.0
	ref := NewPair(NewScalarRef(&s), NewVectorRef(x))
	AssignScalar(ref, 9)
	if s != 9 {
		t.Errorf("referential scalar not mutated through Coupled: got %v", s)
	}
	for _, v := range x {
		if v != 9 {
			t.Errorf("referential vector not mutated through Coupled: got %v", x)
		}
	}
}

func TestSingleArithmeticAndClone(t *testing.T) {
	a := NewSingle(NewVector([]float64{1, 2, 3}))
	b := NewSingle(NewVector([]float64{10, 20, 30}))
	c := NewSingle(NewVector([]float64{0, 0, 0}))
	if err := Assign(c, Add(a, MulScalar(b, 0.5))); err != nil {
		t.Fatalf("Assign: %v", err)
	}
	want := []float64{6, 12, 18}
	for k, w := range want {
		if c.Slot(0).At(k) != w {
			t.Errorf("slot0[%d]: got %v, want %v", k, c.Slot(0).At(k), w)
		}
	}
	snap := Clone(a).(*Single)
	a.Slot(0).Set(0, 999)
	if snap.Slot(0).At(0) == 999 {
		t.Errorf("Clone did not deep-copy Single")
	}
}

func TestCloneIsDeepCopy(t *testing.T) {
	x := []float64{1, 2, 3}
	ref := NewPair(NewScalarRef(new(float64)), NewVectorRef(x))
	snap := Clone(ref)
	x[0] = 100
	if snap.Slot(1).At(0) == 100 {
		t.Errorf("Clone did not deep-copy vector slot")
	}
}
