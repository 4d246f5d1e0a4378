// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package anova implements one-way analysis of variance over groups
// of samples.
//
// Two backends compute the same test. Exact uses the
// go-moremath statistics library. Fallback is self-contained and
// evaluates the F distribution's tail through a continued-fraction
// expansion of the regularized incomplete beta function.
package anova

import (
	"errors"
	"fmt"
	"math"
)

// A Group is the sample for one variant.
type Group struct {
	Label  string
	Values []float64
}

// Result is the outcome of a one-way ANOVA.
type Result struct {
	// F is the F-statistic. It is +Inf if every group has zero
	// variance.
	F float64
	// P is the probability of observing an F-statistic at least
	// this large if all groups share the same mean.
	P float64

	DFBetween, DFWithin int
}

// ErrInsufficientData is matched by every error returned for a group
// set that cannot be tested.
var ErrInsufficientData = errors.New("insufficient data")

// InsufficientDataError reports why a group set cannot be tested.
type InsufficientDataError struct {
	Reason string
}

func (e *InsufficientDataError) Error() string {
	return fmt.Sprintf("%s: %s", ErrInsufficientData, e.Reason)
}

func (e *InsufficientDataError) Is(target error) bool {
	return target == ErrInsufficientData
}

// A TailFunc returns P(F ≥ f) for an F distribution with the given
// degrees of freedom.
type TailFunc func(f float64, dfBetween, dfWithin int) float64

// moments are the per-group quantities the engine needs.
type moments struct {
	n    int
	sum  float64
	mean float64
	ss   float64 // sum of squared deviations from mean
}

// checkGroups validates a group set and drops empty groups.
func checkGroups(groups []Group) ([]Group, error) {
	nonEmpty := make([]Group, 0, len(groups))
	for _, g := range groups {
		if len(g.Values) > 0 {
			nonEmpty = append(nonEmpty, g)
		}
	}
	if len(nonEmpty) < 2 {
		return nil, &InsufficientDataError{"ANOVA requires at least two non-empty groups"}
	}
	for _, g := range nonEmpty {
		if len(g.Values) < 2 {
			return nil, &InsufficientDataError{"each group must contain at least two samples"}
		}
	}
	return nonEmpty, nil
}

// OneWay performs a one-way ANOVA on groups using the self-contained
// F-distribution tail.
func OneWay(groups []Group) (Result, error) {
	groups, err := checkGroups(groups)
	if err != nil {
		return Result{}, err
	}
	ms := make([]moments, len(groups))
	for i, g := range groups {
		ms[i] = groupMoments(g.Values)
	}
	return fromMoments(ms, FSurvival), nil
}

// groupMoments uses Welford's update so that a constant group has a
// mean equal to its value and a sum of squares of exactly zero.
func groupMoments(xs []float64) moments {
	var sum, mean, ss float64
	for i, x := range xs {
		sum += x
		delta := x - mean
		mean += delta / float64(i+1)
		ss += delta * (x - mean)
	}
	return moments{len(xs), sum, mean, ss}
}

// fromMoments computes the F-test from per-group moments. The moments
// must describe at least two groups of at least two samples.
func fromMoments(ms []moments, tail TailFunc) Result {
	var total int
	var grandSum float64
	for _, m := range ms {
		total += m.n
		grandSum += m.sum
	}
	grandMean := grandSum / float64(total)

	var ssBetween, ssWithin float64
	for _, m := range ms {
		d := m.mean - grandMean
		ssBetween += float64(m.n) * d * d
		ssWithin += m.ss
	}

	res := Result{DFBetween: len(ms) - 1, DFWithin: total - len(ms)}
	if ssWithin == 0 {
		// Perfect separation.
		res.F, res.P = math.Inf(1), 0
		return res
	}
	msBetween := ssBetween / float64(res.DFBetween)
	msWithin := ssWithin / float64(res.DFWithin)
	res.F = msBetween / msWithin
	res.P = tail(res.F, res.DFBetween, res.DFWithin)
	return res
}
