// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package anova

import (
	"fmt"
	"math"
	"strings"

	"github.com/aclements/go-moremath/mathx"
	"github.com/aclements/go-moremath/stats"
)

// A Tester performs a one-way ANOVA on a group set.
//
// Implementations must receive the groups in the caller's order and
// return an error matching ErrInsufficientData for group sets that
// cannot be tested.
type Tester interface {
	Test(groups []Group) (Result, error)
	// Exact reports whether the tester is backed by the
	// statistics library.
	Exact() bool
}

// Backend selects a Tester implementation.
type Backend int

const (
	// BackendExact uses the go-moremath statistics library.
	BackendExact Backend = iota
	// BackendFallback uses the self-contained implementation.
	BackendFallback
)

func (b Backend) String() string {
	switch b {
	case BackendExact:
		return "exact"
	case BackendFallback:
		return "fallback"
	}
	return fmt.Sprintf("Backend(%d)", int(b))
}

// ParseBackend parses a backend name as produced by Backend.String.
func ParseBackend(name string) (Backend, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "exact", "":
		return BackendExact, nil
	case "fallback":
		return BackendFallback, nil
	}
	return 0, fmt.Errorf("unknown ANOVA backend %q", name)
}

// NewTester returns the Tester for backend b.
func NewTester(b Backend) Tester {
	if b == BackendFallback {
		return Fallback{}
	}
	return Exact{}
}

// Fallback is the self-contained Tester.
type Fallback struct{}

var _ Tester = Fallback{}

func (Fallback) Test(groups []Group) (Result, error) {
	return OneWay(groups)
}

func (Fallback) Exact() bool { return false }

// Exact is a Tester backed by go-moremath.
type Exact struct{}

var _ Tester = Exact{}

func (Exact) Test(groups []Group) (Result, error) {
	groups, err := checkGroups(groups)
	if err != nil {
		return Result{}, err
	}
	ms := make([]moments, len(groups))
	for i, g := range groups {
		s := stats.Sample{Xs: g.Values}
		ms[i] = moments{
			n:    len(g.Values),
			sum:  s.Sum(),
			mean: s.Mean(),
			ss:   s.Variance() * float64(len(g.Values)-1),
		}
	}
	return fromMoments(ms, exactSurvival), nil
}

func (Exact) Exact() bool { return true }

// exactSurvival is FSurvival computed with mathx.BetaInc.
func exactSurvival(f float64, dfBetween, dfWithin int) float64 {
	if math.IsNaN(f) || math.IsInf(f, 1) {
		return 0
	}
	if f <= 0 {
		return 1
	}
	d1, d2 := float64(dfBetween), float64(dfWithin)
	x := d2 / (d2 + d1*f)
	return clamp01(libBetaInc(x, d2/2, d1/2))
}

// libBetaInc calls mathx.BetaInc, which panics when its continued
// fraction fails to converge for very large a or b. In that case it
// returns the self-contained approximation.
func libBetaInc(x, a, b float64) (p float64) {
	defer func() {
		if r := recover(); r != nil {
			p = BetaInc(x, a, b)
		}
	}()
	return mathx.BetaInc(x, a, b)
}
