// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package monitor observes (t, x) at a decimation interval, storing transformed
// snapshots in a caller-supplied sink.
package monitor

import "github.com/cpmech/goimex/coupled"

// Transform turns an observed state into the value actually stored. Identity performs
// no copy (zero-cost observation of a transient view); Snapshot deep-copies a
// referential Coupled so it survives later mutation of the integrator's state.
type Transform func(x coupled.Coupled) interface{}

// Identity stores x itself, unconverted. Only safe when the sink is consumed before x
// is mutated again, or when x is already owning and not reused.
func Identity(x coupled.Coupled) interface{} { return x }

// Snapshot deep-copies x via coupled.Clone, turning references into owned values.
func Snapshot(x coupled.Coupled) interface{} { return coupled.Clone(x) }

// Sink stores the samples a Monitor retains.
type Sink interface {
	Push(t float64, sample interface{})
	Times() []float64
	Samples() []interface{}
}

// SliceSink is the default in-memory Sink.
type SliceSink struct {
	times   []float64
	samples []interface{}
}

// NewSliceSink builds an empty SliceSink.
func NewSliceSink() *SliceSink { return &SliceSink{} }

func (s *SliceSink) Push(t float64, sample interface{}) {
	s.times = append(s.times, t)
	s.samples = append(s.samples, sample)
}

func (s *SliceSink) Times() []float64         { return s.times }
func (s *SliceSink) Samples() []interface{}   { return s.samples }

// Monitor stores (t, transform(x)) every OneEvery-th call (counting push calls from
// zero), always additionally delivering any terminal push regardless of decimation.
type Monitor struct {
	Sink      Sink
	Transform Transform
	OneEvery  int

	count int
}

// New builds a Monitor. oneEvery must be >= 1.
func New(sink Sink, transform Transform, oneEvery int) *Monitor {
	if oneEvery < 1 {
		oneEvery = 1
	}
	return &Monitor{Sink: sink, Transform: transform, OneEvery: oneEvery}
}

// Push records (t, transform(x)) if this call's index (0-based) is a multiple of
// OneEvery. force bypasses decimation, used by the Flow driver for the terminal push.
func (m *Monitor) Push(t float64, x coupled.Coupled, force bool) {
	keep := force || m.count%m.OneEvery == 0
	m.count++
	if !keep {
		return
	}
	m.Sink.Push(t, m.Transform(x))
}
