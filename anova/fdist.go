// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package anova

import "math"

// FSurvival returns P(F ≥ f) where F follows an F distribution with
// dfBetween and dfWithin degrees of freedom. It returns 0 if f is NaN
// or +Inf, and 1 for f ≤ 0.
func FSurvival(f float64, dfBetween, dfWithin int) float64 {
	if math.IsNaN(f) || math.IsInf(f, 1) {
		return 0
	}
	if f <= 0 {
		return 1
	}
	d1, d2 := float64(dfBetween), float64(dfWithin)
	x := d2 / (d2 + d1*f)
	return clamp01(BetaInc(x, d2/2, d1/2))
}

func clamp01(p float64) float64 {
	return math.Max(0, math.Min(1, p))
}
