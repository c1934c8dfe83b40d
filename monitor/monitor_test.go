// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package monitor

import (
	"testing"

	"github.com/cpmech/goimex/coupled"
)

func TestDecimation(t *testing.T) {
	sink := NewSliceSink()
	m := New(sink, Identity, 3)
	for i := 0; i < 10; i++ {
		x := coupled.NewPair(coupled.NewScalar(float64(i)), coupled.NewVector([]float64{float64(i)}))
		m.Push(float64(i), x, false)
	}
	wantTimes := []float64{0, 3, 6, 9}
	got := sink.Times()
	if len(got) != len(wantTimes) {
		t.Fatalf("len(times) = %d, want %d: %v", len(got), len(wantTimes), got)
	}
	for i, w := range wantTimes {
		if got[i] != w {
			t.Errorf("times[%d] = %v, want %v", i, got[i], w)
		}
	}
}

func TestTerminalPushAlwaysDelivered(t *testing.T) {
	sink := NewSliceSink()
	m := New(sink, Identity, 5000)
	x := coupled.NewPair(coupled.NewScalar(1), coupled.NewVector([]float64{1}))
	m.Push(0, x, false)
	m.Push(1, x, false)
	m.Push(2.5, x, true) // terminal, bypasses decimation
	got := sink.Times()
	if len(got) != 2 || got[1] != 2.5 {
		t.Errorf("terminal push not delivered: %v", got)
	}
}
