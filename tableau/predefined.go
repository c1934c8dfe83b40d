// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tableau

// CB2 is the Cavaglieri-Bewley 3-register/2nd-order IMEX scheme (N=3 stages).
var CB2 = NewIMEX(
	New(
		[]float64{
			0, 0, 0,
			0, 2.0 / 5.0, 0,
			0, 5.0 / 6.0, 1.0 / 6.0,
		},
		[]float64{0, 5.0 / 6.0, 1.0 / 6.0},
		[]float64{0, 2.0 / 5.0, 1},
	),
	New(
		[]float64{
			0, 0, 0,
			2.0 / 5.0, 0, 0,
			0, 1, 0,
		},
		[]float64{0, 5.0 / 6.0, 1.0 / 6.0},
		[]float64{0, 2.0 / 5.0, 1},
	),
)

// CB3e is the Cavaglieri-Bewley 3-register/3rd-order IMEX scheme (N=4 stages).
var CB3e = NewIMEX(
	New(
		[]float64{
			0, 0, 0, 0,
			0, 1.0 / 3.0, 0, 0,
			0, 1.0 / 2.0, 1.0 / 2.0, 0,
			0, 3.0 / 4.0, -1.0 / 4.0, 1.0 / 2.0,
		},
		[]float64{0, 3.0 / 4.0, -1.0 / 4.0, 1.0 / 2.0},
		[]float64{0, 1.0 / 3.0, 1, 1},
	),
	New(
		[]float64{
			0, 0, 0, 0,
			1.0 / 3.0, 0, 0, 0,
			0, 1, 0, 0,
			0, 3.0 / 4.0, 1.0 / 4.0, 0,
		},
		[]float64{0, 3.0 / 4.0, -1.0 / 4.0, 1.0 / 2.0},
		[]float64{0, 1.0 / 3.0, 1, 1},
	),
)
