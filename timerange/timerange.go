// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package timerange produces the ordered sequence of (t, dt) sub-steps a Flow walks
// across an interval [t_from, t_to].
package timerange

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// Step is one sub-step of a TimeRange: integrate from T for Dt.
type Step struct {
	T  float64
	Dt float64
}

// Stepping picks the next sub-step; TimeRange is the constant-step implementation.
// The interface exists so a future adaptive policy could replace it without changing
// the Flow driver (spec.md explicitly excludes implementing adaptive control, not the
// seam for one).
type Stepping interface {
	Steps() []Step
}

// TimeRange generates a finite, ordered sequence of constant-size sub-steps spanning
// [TFrom, TTo], truncating the final step so the sum of all Dt equals TTo-TFrom exactly
// (modulo floating-point).
type TimeRange struct {
	TFrom, TTo, Dt float64
}

// New validates sign(dt) == sign(tTo-tFrom) and builds a TimeRange.
func New(tFrom, tTo, dt float64) (*TimeRange, error) {
	if tFrom == tTo {
		return nil, chk.Err("timerange: t_from == t_to == %v", tFrom)
	}
	forward := tTo > tFrom
	if (forward && dt <= 0) || (!forward && dt >= 0) {
		return nil, chk.Err("timerange: sign(dt=%v) does not match sign(t_to-t_from=%v)", dt, tTo-tFrom)
	}
	return &TimeRange{TFrom: tFrom, TTo: tTo, Dt: dt}, nil
}

// Steps returns the full sub-step sequence, forward or backward depending on the sign
// of Dt. len(Steps()) == ceil(|TTo-TFrom|/|Dt|), and summing every Dt_k reproduces
// TTo-TFrom to machine precision.
func (r *TimeRange) Steps() []Step {
	forward := r.TTo > r.TFrom
	total := math.Abs(r.TTo - r.TFrom)
	step := math.Abs(r.Dt)
	n := int(math.Ceil(total / step))
	if forward && r.TFrom+float64(n)*r.Dt < r.TTo {
		n++
	}
	if !forward && r.TFrom+float64(n)*r.Dt > r.TTo {
		n++
	}
	steps := make([]Step, 0, n)
	t := r.TFrom
	for i := 0; i < n; i++ {
		var tNext float64
		if forward {
			tNext = math.Min(t+r.Dt, r.TTo)
		} else {
			tNext = math.Max(t+r.Dt, r.TTo)
		}
		steps = append(steps, Step{T: t, Dt: tNext - t})
		t = tNext
	}
	return steps
}
