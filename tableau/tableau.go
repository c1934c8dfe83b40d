// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package tableau holds Butcher/IMEX coefficient tables for Runge-Kutta schemes
package tableau

import "github.com/cpmech/gosl/chk"

// Tableau holds the lower-triangular coefficient matrix a, weight row b and node row c
// of a single (explicit or implicit) Runge-Kutta scheme. Once built it is immutable.
type Tableau struct {
	n int
	a [][]float64
	b []float64
	c []float64
}

// New builds a Tableau of size n from a flattened row-major n*n array plus b and c rows.
// Entries with j<k (above the diagonal) are never read but must still be present in aFlat.
func New(aFlat []float64, b, c []float64) *Tableau {
	n := len(b)
	if len(c) != n || len(aFlat) != n*n {
		chk.Panic("tableau: inconsistent dimensions: len(b)=%d len(c)=%d len(aFlat)=%d, want n=%d n*n=%d", len(b), len(c), len(aFlat), n, n*n)
	}
	a := make([][]float64, n)
	for j := 0; j < n; j++ {
		a[j] = append([]float64(nil), aFlat[j*n:(j+1)*n]...)
	}
	return &Tableau{n: n, a: a, b: append([]float64(nil), b...), c: append([]float64(nil), c...)}
}

// N returns the number of stages of this tableau.
func (t *Tableau) N() int { return t.n }

// A returns a[j][k], 0<=k<=j<N.
func (t *Tableau) A(j, k int) float64 { return t.a[j][k] }

// BC returns b[k] when role=='b' or c[k] when role=='c'. Any other role is a logic error.
func (t *Tableau) BC(role byte, k int) (float64, error) {
	switch role {
	case 'b':
		return t.b[k], nil
	case 'c':
		return t.c[k], nil
	}
	return 0, chk.Err("tableau: unknown role %q, want 'b' or 'c'", role)
}

// IMEXTableau pairs an implicit and an explicit Tableau of the same size, as required
// by a 3R2R/4R3R style IMEX Runge-Kutta scheme.
type IMEXTableau struct {
	Implicit *Tableau
	Explicit *Tableau
}

// NewIMEX pairs two tableaux of matching size.
func NewIMEX(implicit, explicit *Tableau) *IMEXTableau {
	if implicit.N() != explicit.N() {
		chk.Panic("tableau: IMEX pair size mismatch: implicit N=%d explicit N=%d", implicit.N(), explicit.N())
	}
	return &IMEXTableau{Implicit: implicit, Explicit: explicit}
}

// N returns the common stage count of the pair.
func (t *IMEXTableau) N() int { return t.Implicit.N() }

// A returns a[j][k] from the implicit ('I') or explicit ('E') tableau.
func (t *IMEXTableau) A(imex byte, j, k int) (float64, error) {
	switch imex {
	case 'I':
		return t.Implicit.A(j, k), nil
	case 'E':
		return t.Explicit.A(j, k), nil
	}
	return 0, chk.Err("tableau: unknown imex role %q, want 'I' or 'E'", imex)
}

// BC returns b[k] or c[k] from the implicit ('I') or explicit ('E') tableau.
func (t *IMEXTableau) BC(imex, role byte, k int) (float64, error) {
	switch imex {
	case 'I':
		return t.Implicit.BC(role, k)
	case 'E':
		return t.Explicit.BC(role, k)
	}
	return 0, chk.Err("tableau: unknown imex role %q, want 'I' or 'E'", imex)
}
