// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package method

import "github.com/cpmech/gosl/chk"

// must panics on an Assign error from a scratch-buffer update: scratch buffers are
// always cloned from the same exemplar, so shapes can never actually mismatch here.
func must(err error) {
	if err != nil {
		chk.Panic("method: %v", err)
	}
}
