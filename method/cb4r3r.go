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

// CB4R3R implements the low-storage 4-register Cavaglieri-Bewley IMEX scheme, the
// variant the 3-register CB3R2R is itself a specialisation of. It is generic over any
// IMEXTableau of stage count N; no predefined tableau constant ships with it; callers
// supply their own via tableau.NewIMEX, the same way they would for CB3R2R. K=4
// scratch buffers regardless of N.
//
// Forward-only: the original implementation this was ported from (original_source's
// RK_4R3R step) has no adjoint counterpart, and deriving one exactly would require
// re-doing the reverse-mode derivation already done for RK4 and CB3R2R against a
// four-register recurrence with a stage-straddling correction term; that derivation
// was not attempted, so this package does not claim a CB4R3R adjoint.
type CB4R3R struct {
	tab         *tableau.IMEXTableau
	y, zi, ze, w coupled.Coupled
}

// NewCB4R3R preallocates scratch shaped like exemplar for the given tableau.
func NewCB4R3R(tab *tableau.IMEXTableau, exemplar coupled.Coupled) *CB4R3R {
	return &CB4R3R{
		tab: tab,
		y:   coupled.Clone(exemplar),
		zi:  coupled.Clone(exemplar),
		ze:  coupled.Clone(exemplar),
		w:   coupled.Clone(exemplar),
	}
}

func (m *CB4R3R) NumStages() int { return m.tab.N() }

// Step runs the N-stage CB4R3R loop, ported line-for-line from the 4-register
// recurrence in original_source's RK_4R3R step.
func (m *CB4R3R) Step(sys *system.System, t, dt float64, x coupled.Coupled, cache *stage.Cache) error {
	n := m.tab.N()
	if cache != nil {
		cache.Setup(t, dt, n)
	}
	for k := 0; k < n; k++ {
		if k == 0 {
			must(coupled.CopyInto(m.y, x))
			must(coupled.CopyInto(m.zi, x))
			must(coupled.CopyInto(m.ze, x))
		} else {
			aEk, _ := m.tab.A('E', k, k-1)
			must(coupled.Assign(m.ze, coupled.Add(m.y, coupled.MulScalar(m.ze, aEk*dt))))
			if k < n-1 {
				aINext, _ := m.tab.A('I', k+1, k-1)
				bIprev, _ := m.tab.BC('I', 'b', k-1)
				aENext, _ := m.tab.A('E', k+1, k-1)
				diff := coupled.Sub(m.ze, m.y)
				term1 := coupled.MulScalar(m.zi, (aINext-bIprev)*dt)
				term2 := coupled.MulScalar(diff, (aENext-bIprev)/aEk)
				must(coupled.Assign(m.y, coupled.Add(coupled.Add(x, term1), term2)))
			}
			aIkkm1, _ := m.tab.A('I', k, k-1)
			must(coupled.Assign(m.ze, coupled.Add(m.ze, coupled.MulScalar(m.zi, aIkkm1*dt))))
		}

		sys.Mul(m.w, m.ze)
		aIkk, _ := m.tab.A('I', k, k)
		c := aIkk * dt
		sys.ImcADiv(m.zi, m.w, c)
		must(coupled.Assign(m.w, coupled.Add(m.ze, coupled.MulScalar(m.zi, c))))
		if cache != nil {
			cache.Push(m.w)
		}
		cE, _ := m.tab.BC('E', 'c', k)
		sys.Eval(t+cE*dt, m.w, m.ze)
		bIk, _ := m.tab.BC('I', 'b', k)
		bEk, _ := m.tab.BC('E', 'b', k)
		must(coupled.Assign(x, coupled.Add(x, coupled.Add(
			coupled.MulScalar(m.zi, bIk*dt),
			coupled.MulScalar(m.ze, bEk*dt),
		))))
	}
	if cache != nil {
		cache.Close()
	}
	return nil
}
