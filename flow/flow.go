// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package flow drives a System through a Method across a Stepping policy's
// sub-intervals, optionally observing through a Monitor or recording through a
// stage.Cache, and separately consumes a populated Cache backward with an Adjoint.
package flow

import (
	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/goimex/coupled"
	"github.com/cpmech/goimex/method"
	"github.com/cpmech/goimex/monitor"
	"github.com/cpmech/goimex/stage"
	"github.com/cpmech/goimex/system"
	"github.com/cpmech/goimex/timerange"
)

// Flow binds a System and a forward Method; Run and RunWithMonitor/RunWithCache share
// this pairing. A Flow is reusable across many Run invocations, possibly with
// different Steppings.
type Flow struct {
	Sys    *system.System
	Method method.Forward
}

// New builds a Flow for forward integration.
func New(sys *system.System, m method.Forward) *Flow {
	return &Flow{Sys: sys, Method: m}
}

// Run integrates x in place across [tFrom, tTo] via step, discarding the trajectory:
// spec.md §4.8's (x, t_from, t_to) overload.
func (fl *Flow) Run(x coupled.Coupled, tFrom, tTo, dt float64) error {
	return fl.run(x, tFrom, tTo, dt, nil, nil)
}

// RunWithMonitor integrates and pushes (t, x) to mon before every sub-step, plus once
// more at the terminal t_to: spec.md §4.8's (x, t_from, t_to, monitor) overload.
func (fl *Flow) RunWithMonitor(x coupled.Coupled, tFrom, tTo, dt float64, mon *monitor.Monitor) error {
	return fl.run(x, tFrom, tTo, dt, mon, nil)
}

// RunWithCache integrates and records every step's stages into cache, for later
// adjoint consumption: spec.md §4.8's (x, t_from, t_to, cache) overload.
func (fl *Flow) RunWithCache(x coupled.Coupled, tFrom, tTo, dt float64, cache *stage.Cache) error {
	return fl.run(x, tFrom, tTo, dt, nil, cache)
}

func (fl *Flow) run(x coupled.Coupled, tFrom, tTo, dt float64, mon *monitor.Monitor, cache *stage.Cache) error {
	tr, err := timerange.New(tFrom, tTo, dt)
	if err != nil {
		return err
	}
	return fl.runStepping(x, tr, mon, cache)
}

// RunStepping is the same as Run/RunWithMonitor/RunWithCache but takes an arbitrary
// Stepping policy directly, rather than building a constant-step TimeRange.
func (fl *Flow) RunStepping(x coupled.Coupled, stepping timerange.Stepping, mon *monitor.Monitor, cache *stage.Cache) error {
	return fl.runStepping(x, stepping, mon, cache)
}

func (fl *Flow) runStepping(x coupled.Coupled, stepping timerange.Stepping, mon *monitor.Monitor, cache *stage.Cache) error {
	steps := stepping.Steps()
	for _, s := range steps {
		if mon != nil {
			mon.Push(s.T, x, false)
		}
		if err := fl.Method.Step(fl.Sys, s.T, s.Dt, x, cache); err != nil {
			return err
		}
	}
	if mon != nil && len(steps) > 0 {
		last := steps[len(steps)-1]
		mon.Push(last.T+last.Dt, x, true)
	}
	return nil
}

// AdjointFlow binds a System and an Adjoint method for reverse-mode consumption of a
// populated stage.Cache. Adjoint-typed methods are a distinct type from Forward ones
// (RK4Adjoint vs RK4, etc.), so a caller cannot construct an AdjointFlow around a
// forward-only method in the first place: spec.md §4.8's static-rejection requirement.
type AdjointFlow struct {
	Sys    *system.System
	Method method.Adjoint
}

// NewAdjoint builds an AdjointFlow. The method's stage count is checked against the
// per-step stage count of the cache it consumes in Run, which returns an error on a
// mismatch; the check happens there since the cache is supplied there, not here.
func NewAdjoint(sys *system.System, m method.Adjoint) *AdjointFlow {
	return &AdjointFlow{Sys: sys, Method: m}
}

// Run consumes cache in reverse, advancing the co-state w backward over every
// recorded step: spec.md §4.8's (x, cache) adjoint overload. Endpoints are implicit
// from the cache's own recorded (t, dt) pairs.
func (af *AdjointFlow) Run(w coupled.Coupled, cache *stage.Cache) error {
	if cache.Len() == 0 {
		return chk.Err("flow: adjoint Run called with an empty cache")
	}
	for _, rec := range cache.Reverse() {
		if len(rec.Stages) != af.Method.NumStages() {
			return chk.Err("flow: adjoint method expects %d stages per step, cache record has %d",
				af.Method.NumStages(), len(rec.Stages))
		}
		if err := af.Method.StepAdjoint(af.Sys, rec.T, rec.Dt, w, rec); err != nil {
			return err
		}
	}
	return nil
}
