// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package anova

import "math"

const (
	// cfMaxIter bounds the number of continued-fraction terms.
	cfMaxIter = 200
	// cfFloor replaces denominators that come too close to zero.
	cfFloor = 1e-30
	// cfTolerance is the relative change between successive
	// convergents at which the continued fraction stops.
	cfTolerance = 1e-12
)

// BetaInc returns the regularized incomplete beta function I_x(a, b)
// for a, b > 0. x is clamped to [0, 1]: BetaInc returns exactly 0 for
// x ≤ 0 and exactly 1 for x ≥ 1.
func BetaInc(x, a, b float64) float64 {
	if x <= 0 {
		return 0
	}
	if x >= 1 {
		return 1
	}
	front := math.Exp(a*math.Log(x) + b*math.Log1p(-x) - lbeta(a, b))

	// The continued fraction converges rapidly for x below
	// (a+1)/(a+b+2). Above that, use I_x(a,b) = 1 - I_{1-x}(b,a).
	if x < (a+1)/(a+b+2) {
		return front * betaCF(a, b, x) / a
	}
	return 1 - front*betaCF(b, a, 1-x)/b
}

// lbeta returns ln B(a, b).
func lbeta(a, b float64) float64 {
	la, _ := math.Lgamma(a)
	lb, _ := math.Lgamma(b)
	lab, _ := math.Lgamma(a + b)
	return la + lb - lab
}

// lentzState is the running state of the modified Lentz method: the
// current convergent h and the auxiliary ratios c and d.
type lentzState struct {
	c, d, h float64
}

// step folds the next partial numerator aa into the state and returns
// the factor by which the convergent changed.
func (s lentzState) step(aa float64) (lentzState, float64) {
	s.d = 1 + aa*s.d
	if math.Abs(s.d) < cfFloor {
		s.d = cfFloor
	}
	s.c = 1 + aa/s.c
	if math.Abs(s.c) < cfFloor {
		s.c = cfFloor
	}
	s.d = 1 / s.d
	delta := s.d * s.c
	s.h *= delta
	return s, delta
}

// betaCF evaluates the continued fraction for the incomplete beta
// function. It always returns a value; if the fraction has not
// converged after cfMaxIter terms, it returns the last convergent.
func betaCF(a, b, x float64) float64 {
	qab, qap, qam := a+b, a+1, a-1

	d := 1 - qab*x/qap
	if math.Abs(d) < cfFloor {
		d = cfFloor
	}
	d = 1 / d
	s := lentzState{c: 1, d: d, h: d}

	for m := 1; m <= cfMaxIter; m++ {
		fm := float64(m)
		m2 := 2 * fm

		// Even term.
		aa := fm * (b - fm) * x / ((qam + m2) * (a + m2))
		s, _ = s.step(aa)

		// Odd term.
		aa = -(a + fm) * (qab + fm) * x / ((a + m2) * (qap + m2))
		var delta float64
		s, delta = s.step(aa)

		if math.Abs(delta-1) < cfTolerance {
			break
		}
	}
	return s.h
}
