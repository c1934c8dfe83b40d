// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tests

import (
	"math"
	"testing"

	"github.com/cpmech/goimex/coupled"
	"github.com/cpmech/goimex/flow"
	"github.com/cpmech/goimex/method"
	"github.com/cpmech/goimex/system"
	"github.com/cpmech/goimex/tableau"
)

// TestCoupledQuadrature is spec.md §8 scenario 4: a coupled (x, q) integration where
// dx/dt=x (split evenly implicit/explicit) and dq/dt=x, run with CB3R2R_3E.
func TestCoupledQuadrature(t *testing.T) {
	sys := system.New(
		[]system.ExplicitTerm{HalfExplicit{}, QuadExplicit{}},
		[]system.ImplicitTerm{HalfImplicit{}, nil},
		nil,
	)

	pair := coupled.NewPair(coupled.NewScalar(1), coupled.NewScalar(0))
	fwd := method.NewCB3R2R(tableau.CB3e, pair)
	fl := flow.New(sys, fwd)
	if err := fl.Run(pair, 0, 1, 1e-4); err != nil {
		t.Fatalf("Run: %v", err)
	}

	x1 := pair.Slot(0).At(0)
	q1 := pair.Slot(1).At(0)
	if errX := math.Abs(x1 - math.E); errX >= 1e-12 {
		t.Errorf("x(1): got %v, want within 1e-12 of e", x1)
	}
	if errQ := math.Abs(q1 - (math.E - 1)); errQ >= 1e-12 {
		t.Errorf("q(1): got %v, want within 1e-12 of e-1", q1)
	}
}
