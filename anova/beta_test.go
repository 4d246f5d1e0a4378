// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package anova

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBetaInc(t *testing.T) {
	// I_0.5(a, 3), from the MATLAB betainc documentation.
	want := map[float64]float64{
		1:  0.87500000000000,
		2:  0.68750000000000,
		3:  0.50000000000000,
		4:  0.34375000000000,
		5:  0.22656250000000,
		6:  0.14453125000000,
		7:  0.08984375000000,
		8:  0.05468750000000,
		9:  0.03271484375000,
		10: 0.01928710937500,
	}
	for a, w := range want {
		assert.InDelta(t, w, BetaInc(0.5, a, 3), 1e-12, "I_0.5(%v, 3)", a)
	}
}

func TestBetaIncClosedForms(t *testing.T) {
	for _, x := range []float64{0.01, 0.2, 0.5, 0.75, 0.99} {
		for _, a := range []float64{0.5, 1, 2.5, 7} {
			// I_x(a, 1) = x^a and I_x(1, a) = 1 - (1-x)^a.
			assert.InDelta(t, math.Pow(x, a), BetaInc(x, a, 1), 1e-10, "I_%v(%v, 1)", x, a)
			assert.InDelta(t, 1-math.Pow(1-x, a), BetaInc(x, 1, a), 1e-10, "I_%v(1, %v)", x, a)
		}
	}
}

func TestBetaIncBoundaries(t *testing.T) {
	for _, ab := range [][2]float64{{0.5, 0.5}, {1, 1}, {3, 7}, {500, 2.5}} {
		a, b := ab[0], ab[1]
		assert.Equal(t, 0.0, BetaInc(0, a, b))
		assert.Equal(t, 0.0, BetaInc(-1, a, b))
		assert.Equal(t, 1.0, BetaInc(1, a, b))
		assert.Equal(t, 1.0, BetaInc(2, a, b))
	}
}

func TestBetaIncSymmetry(t *testing.T) {
	for _, a := range []float64{0.5, 1, 2.5, 10, 50, 500} {
		for _, b := range []float64{0.5, 1, 3, 20, 500} {
			for _, x := range []float64{0, 0.001, 0.1, 0.3, 0.5, 0.7, 0.9, 0.999, 1} {
				sum := BetaInc(x, a, b) + BetaInc(1-x, b, a)
				assert.InDelta(t, 1, sum, 1e-9, "I_%v(%v,%v) + I_%v(%v,%v)", x, a, b, 1-x, b, a)
			}
		}
	}
}

func TestBetaCFConverges(t *testing.T) {
	// Near x = (a+1)/(a+b+2) convergence is slowest; the result
	// must still be finite and positive.
	for _, ab := range [][2]float64{{1, 1}, {50, 50}, {500, 0.5}} {
		a, b := ab[0], ab[1]
		x := (a + 1) / (a + b + 2)
		h := betaCF(a, b, x)
		assert.False(t, math.IsNaN(h) || math.IsInf(h, 0), "betaCF(%v, %v, %v) = %v", a, b, x, h)
		assert.Greater(t, h, 0.0)
	}
}

func TestFSurvivalClosedForms(t *testing.T) {
	for _, test := range []struct {
		f        float64
		d1, d2   int
		want     float64
		describe string
	}{
		// F(2, d2): (1 + 2f/d2)^(-d2/2).
		{3, 2, 10, math.Pow(1.6, -5), "F(2,10)"},
		{0.5, 2, 10, math.Pow(1.1, -5), "F(2,10)"},
		// F(1, 1): 1 - (2/π) atan(√f).
		{1, 1, 1, 0.5, "F(1,1)"},
		{3, 1, 1, 1.0 / 3, "F(1,1)"},
		// F(d1, 2): 1 - (d1 f / (d1 f + 2))^(d1/2).
		{1, 4, 2, 5.0 / 9, "F(4,2)"},
		// Numerically integrated.
		{2.5, 5, 100, 0.0354482494502188, "F(5,100)"},
		{0.7, 5, 100, 0.624704410011232, "F(5,100)"},
	} {
		t.Run(fmt.Sprintf("%s/%v", test.describe, test.f), func(t *testing.T) {
			assert.InDelta(t, test.want, FSurvival(test.f, test.d1, test.d2), 1e-9)
		})
	}
}

func TestFSurvivalEdges(t *testing.T) {
	assert.Equal(t, 0.0, FSurvival(math.NaN(), 2, 10))
	assert.Equal(t, 0.0, FSurvival(math.Inf(1), 2, 10))
	assert.Equal(t, 1.0, FSurvival(0, 2, 10))
	assert.Equal(t, 1.0, FSurvival(-5, 2, 10))
}

func TestFSurvivalMonotone(t *testing.T) {
	fs := []float64{0, 0.01, 0.1, 0.5, 1, 2, 5, 10, 50, 1e3, 1e6, math.Inf(1)}
	for _, df := range [][2]int{{1, 1}, {2, 10}, {5, 100}, {3, 1000}, {10, 10000}} {
		prev := math.Inf(1)
		for _, f := range fs {
			p := FSurvival(f, df[0], df[1])
			assert.True(t, p >= 0 && p <= 1, "FSurvival(%v, %v, %v) = %v out of range", f, df[0], df[1], p)
			assert.LessOrEqual(t, p, prev, "FSurvival not monotone at f=%v df=%v", f, df)
			prev = p
		}
	}
}
