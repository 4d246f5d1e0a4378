// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package variantstat

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"

	"github.com/perfmatrix/variantstat/anova"
)

// A Comparison is the ANOVA of one Table.
type Comparison struct {
	*Table

	Result anova.Result

	// Skipped is non-empty if the table could not be tested, and
	// gives the reason.
	Skipped string
}

// Thresholds are the significance levels used to classify p-values.
type Thresholds struct {
	Alpha       float64 // e.g. 0.05
	StrongAlpha float64 // e.g. 0.01
}

// DefaultThresholds are the conventional 5% and 1% levels.
var DefaultThresholds = Thresholds{Alpha: 0.05, StrongAlpha: 0.01}

// Significant reports whether c's p-value is below th.Alpha.
func (c Comparison) Significant(th Thresholds) bool {
	return c.Skipped == "" && c.Result.P < th.Alpha
}

// Marker returns "***" if the p-value is below th.StrongAlpha, "**" if
// it is below th.Alpha, and "" otherwise.
func (c Comparison) Marker(th Thresholds) string {
	switch {
	case c.Skipped != "":
		return ""
	case c.Result.P < th.StrongAlpha:
		return "***"
	case c.Result.P < th.Alpha:
		return "**"
	}
	return ""
}

// Compare runs tester on every table using at most workers concurrent
// tests. The comparisons are returned in table order. Tables that
// cannot be tested are returned as skipped comparisons rather than
// errors.
func Compare(ctx context.Context, tester anova.Tester, tables []*Table, workers int) ([]Comparison, error) {
	out := make([]Comparison, len(tables))
	g, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}
	for i, tab := range tables {
		i, tab := i, tab
		out[i].Table = tab
		if !tab.Testable() {
			out[i].Skipped = "insufficient data"
			continue
		}
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := tester.Test(tab.Groups)
			if errors.Is(err, anova.ErrInsufficientData) {
				var ide *anova.InsufficientDataError
				if errors.As(err, &ide) {
					out[i].Skipped = ide.Reason
				} else {
					out[i].Skipped = err.Error()
				}
				return nil
			} else if err != nil {
				return err
			}
			out[i].Result = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
