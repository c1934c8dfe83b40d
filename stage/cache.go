// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package stage records the internal Runge-Kutta stage vectors of a forward sweep so
// they can be replayed, in reverse, by a discretely-consistent adjoint integration.
package stage

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/goimex/coupled"
)

type state int

const (
	idle state = iota
	accumulating
)

// Record is one completed step's (t, dt, stages) triple. Stages are always owned
// deep copies; mutating the integrator's scratch afterwards cannot corrupt them.
type Record struct {
	T      float64
	Dt     float64
	Stages []coupled.Coupled
}

// Cache is an append-only (during a forward run), reverse-iterable (during an adjoint
// run) sequence of Records. The number of stages pushed per step must equal S, fixed
// at Setup time.
type Cache struct {
	s       state
	nStages int
	cur     Record
	records []Record
}

// New builds an empty Cache.
func New() *Cache { return &Cache{s: idle} }

// Setup opens a new step, ready to receive exactly nStages Push calls.
func (c *Cache) Setup(t, dt float64, nStages int) {
	if c.s != idle {
		chk.Panic("stage: Setup called while a step is already open")
	}
	c.s = accumulating
	c.nStages = nStages
	c.cur = Record{T: t, Dt: dt, Stages: make([]coupled.Coupled, 0, nStages)}
}

// Push appends a deep copy of y as the next stage of the currently open step.
// Push outside an open step (no prior Setup) is a programming error.
func (c *Cache) Push(y coupled.Coupled) {
	if c.s != accumulating {
		chk.Panic("stage: Push called outside an open step")
	}
	if len(c.cur.Stages) >= c.nStages {
		chk.Panic("stage: Push called more than the %d stages configured for this step", c.nStages)
	}
	c.cur.Stages = append(c.cur.Stages, coupled.Clone(y))
}

// Close finalises the currently open step, appending it to the recorded sequence.
// The step must have received exactly nStages pushes.
func (c *Cache) Close() {
	if c.s != accumulating {
		chk.Panic("stage: Close called with no open step")
	}
	if len(c.cur.Stages) != c.nStages {
		chk.Panic("stage: Close called with %d stages pushed, want %d", len(c.cur.Stages), c.nStages)
	}
	c.records = append(c.records, c.cur)
	c.cur = Record{}
	c.s = idle
}

// Len returns the number of completed steps recorded.
func (c *Cache) Len() int { return len(c.records) }

// At returns the i-th recorded step, 0-indexed from the start of the forward run.
func (c *Cache) At(i int) Record { return c.records[i] }

// Reverse returns the recorded steps from last to first, the order an adjoint
// integration consumes them in.
func (c *Cache) Reverse() []Record {
	out := make([]Record, len(c.records))
	for i, r := range c.records {
		out[len(c.records)-1-i] = r
	}
	return out
}
