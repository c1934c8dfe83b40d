// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package method implements the per-scheme stage storage and stage algorithms: RK4,
// the CB3R2R/CB4R3R IMEX families, and CNRK2. RK4, CB3R2R and CNRK2 come in forward
// and adjoint form; CB4R3R is forward-only.
package method

import (
	"github.com/cpmech/goimex/coupled"
	"github.com/cpmech/goimex/stage"
	"github.com/cpmech/goimex/system"
)

// Forward advances x by one sub-step in place, optionally recording stages.
// cache may be nil, in which case no recording happens.
type Forward interface {
	NumStages() int
	Step(sys *system.System, t, dt float64, x coupled.Coupled, cache *stage.Cache) error
}

// Adjoint consumes a single previously-recorded stage.Record (one forward step) and
// advances the co-state w by one sub-step in place, backward in time.
type Adjoint interface {
	NumStages() int
	StepAdjoint(sys *system.System, t, dt float64, w coupled.Coupled, rec stage.Record) error
}
