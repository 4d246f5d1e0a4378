// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package anova

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func groupsOf(vals ...[]float64) []Group {
	gs := make([]Group, len(vals))
	for i, v := range vals {
		gs[i] = Group{Label: string(rune('A' + i)), Values: v}
	}
	return gs
}

func TestOneWayIdenticalGroups(t *testing.T) {
	res, err := OneWay(groupsOf([]float64{1, 2, 3, 4}, []float64{1, 2, 3, 4}))
	require.NoError(t, err)
	assert.Equal(t, 0.0, res.F)
	assert.Equal(t, 1.0, res.P)
	assert.Equal(t, 1, res.DFBetween)
	assert.Equal(t, 6, res.DFWithin)
}

func TestOneWayPerfectSeparation(t *testing.T) {
	for _, groups := range [][]Group{
		groupsOf([]float64{1, 1, 1}, []float64{5, 5, 5}),
		// Not exactly representable; the group means must still
		// match the values.
		groupsOf([]float64{0.1, 0.1, 0.1}, []float64{0.2, 0.2, 0.2}),
		groupsOf([]float64{0.3, 0.3}, []float64{0.7, 0.7, 0.7, 0.7}, []float64{1.1, 1.1}),
	} {
		res, err := OneWay(groups)
		require.NoError(t, err)
		assert.True(t, math.IsInf(res.F, 1), "%v: F = %v, want +Inf", groups, res.F)
		assert.Equal(t, 0.0, res.P, "%v", groups)
	}
}

func TestGroupMomentsConstant(t *testing.T) {
	for _, v := range []float64{0.1, 0.2, 1.0 / 3, 1e-9, 12345.678} {
		m := groupMoments([]float64{v, v, v, v, v, v, v})
		assert.Equal(t, v, m.mean)
		assert.Equal(t, 0.0, m.ss)
	}
}

func TestOneWayKnownValues(t *testing.T) {
	for _, test := range []struct {
		name   string
		groups []Group
		f, p   float64
		dfb    int
		dfw    int
	}{
		{
			name:   "two groups",
			groups: groupsOf([]float64{1, 2, 3}, []float64{4, 5, 6}),
			f:      13.5, p: 0.0213116411287567,
			dfb: 1, dfw: 4,
		},
		{
			// F(2, 6) has survival function (1 + f/3)^-3.
			name:   "three groups",
			groups: groupsOf([]float64{2, 3, 4}, []float64{5, 6, 7}, []float64{8, 9, 10}),
			f:      27, p: 0.001,
			dfb: 2, dfw: 6,
		},
	} {
		t.Run(test.name, func(t *testing.T) {
			res, err := OneWay(test.groups)
			require.NoError(t, err)
			assert.InDelta(t, test.f, res.F, 1e-9)
			assert.InDelta(t, test.p, res.P, 1e-9)
			assert.Equal(t, test.dfb, res.DFBetween)
			assert.Equal(t, test.dfw, res.DFWithin)
		})
	}
}

func TestOneWayInsufficientData(t *testing.T) {
	for _, test := range []struct {
		name   string
		groups []Group
	}{
		{"no groups", nil},
		{"one group", groupsOf([]float64{1, 2, 3})},
		{"short group", groupsOf([]float64{1, 2, 3}, []float64{4})},
		{"one non-empty group", groupsOf([]float64{1, 2, 3}, nil, []float64{})},
	} {
		t.Run(test.name, func(t *testing.T) {
			_, err := OneWay(test.groups)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInsufficientData), "got %v", err)

			var ide *InsufficientDataError
			require.True(t, errors.As(err, &ide))
			assert.NotEmpty(t, ide.Reason)
		})
	}
}

func TestOneWayIgnoresEmptyGroups(t *testing.T) {
	want, err := OneWay(groupsOf([]float64{1, 2, 3}, []float64{4, 5, 6}))
	require.NoError(t, err)
	got, err := OneWay(groupsOf([]float64{1, 2, 3}, nil, []float64{4, 5, 6}))
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestOneWayDoesNotModifyInput(t *testing.T) {
	a, b := []float64{3, 1, 2}, []float64{6, 4, 5}
	_, err := OneWay(groupsOf(a, b))
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 1, 2}, a)
	assert.Equal(t, []float64{6, 4, 5}, b)
}
