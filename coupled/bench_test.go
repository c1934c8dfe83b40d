// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coupled

import "testing"

// BenchmarkExpressionVsHandLoop measures the lazy Expr tree TestArithmeticMatchesHandLoop
// exercises for correctness against a hand-written per-slot loop computing the same
// arithmetic, as two sub-benchmarks whose timings are compared by the reader; it asserts
// nothing about their ratio.
func BenchmarkExpressionVsHandLoop(b *testing.B) {
	a := newTestTriplet(1.0, []float64{1, 2, 3}, 0.5)
	bb := newTestTriplet(2.0, []float64{4, 5, 6}, -1.5)
	c := newTestTriplet(0, []float64{0, 0, 0}, 0)

	b.Run("Expression", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			expr := Add(Sub(Add(MulScalar(a, 2), MulScalar(bb, 3)), MulScalar(a, 2)), DivScalar(bb, 1.5))
			if err := Assign(c, expr); err != nil {
				b.Fatalf("Assign: %v", err)
			}
		}
	})

	b.Run("HandLoop", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			for slot := 0; slot < 3; slot++ {
				as, bs, cs := a.slots[slot], bb.slots[slot], c.slots[slot]
				for k := 0; k < cs.Len(); k++ {
					cs.Set(k, 2*as.At(k)+3*bs.At(k)-as.At(k)*2+bs.At(k)/1.5)
				}
			}
		}
	})
}
