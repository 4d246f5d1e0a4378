// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package variantstat compares measurements of page variants across
// measurement tools using one-way ANOVA.
package variantstat

import (
	"github.com/perfmatrix/variantstat/anova"
	"github.com/perfmatrix/variantstat/report"
)

// DefaultVariants is the conventional order of page variants.
var DefaultVariants = []string{"A", "A'", "B", "B'", "C", "C'", "D", "D'"}

// DefaultMetrics are the metrics compared by default.
var DefaultMetrics = []string{"LCP", "FCP"}

// A Collection groups measurements into one Table per (tool, metric).
type Collection struct {
	variants []string
	metrics  []string

	tables []*Table
}

// A Table is the set of variant samples of one metric measured by one
// tool. Only variants with at least two samples are included, in the
// collection's variant order.
type Table struct {
	Tool, Metric string

	Groups []anova.Group
	Dists  []*Distribution
}

// Testable reports whether the table has enough variants to compare.
func (t *Table) Testable() bool {
	return len(t.Groups) >= 2
}

// NewCollection returns an empty collection that compares the given
// variants, in order, on each of metrics. Variants not listed are
// ignored.
func NewCollection(variants, metrics []string) *Collection {
	if len(variants) == 0 {
		variants = DefaultVariants
	}
	if len(metrics) == 0 {
		metrics = DefaultMetrics
	}
	return &Collection{variants: variants, metrics: metrics}
}

// AddSummary adds every tool in s, in order.
func (c *Collection) AddSummary(s *report.Summary) {
	for i := range s.Tools {
		c.AddTool(&s.Tools[i])
	}
}

// AddTool adds one table for each of the collection's metrics.
func (c *Collection) AddTool(tool *report.Tool) {
	for _, metric := range c.metrics {
		tab := &Table{Tool: tool.Name, Metric: metric}
		for _, variant := range c.variants {
			values := tool.Values(variant, metric)
			if len(values) < 2 {
				continue
			}
			tab.Groups = append(tab.Groups, anova.Group{Label: variant, Values: values})
			tab.Dists = append(tab.Dists, NewDistribution(values))
		}
		c.tables = append(c.tables, tab)
	}
}

// Tables returns the tables in the order they were added.
func (c *Collection) Tables() []*Table {
	return c.tables
}
