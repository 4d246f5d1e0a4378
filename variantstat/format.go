// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package variantstat

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/perfmatrix/variantstat/internal/metricunit"
)

const resultsTitle = "ANOVA Results"

// A Writer writes comparisons as a plain-text report.
//
// The report is buffered and written to the underlying io.Writer by
// Flush, which trims trailing blank lines so the output ends with a
// single newline.
type Writer struct {
	w   io.Writer
	buf bytes.Buffer

	th      Thresholds
	curTool string
}

// NewWriter returns a Writer that classifies p-values using th.
func NewWriter(w io.Writer, th Thresholds) *Writer {
	return &Writer{w: w, th: th}
}

// WriteHeader writes the report title and provenance.
func (w *Writer) WriteHeader(source string, exact bool) {
	fmt.Fprintf(&w.buf, "%s\nGenerated from %s\nExact backend: %v\n\n", resultsTitle, source, exact)
}

// Write writes one comparison. Comparisons of the same tool must be
// written consecutively.
func (w *Writer) Write(c Comparison) {
	if c.Tool != w.curTool {
		if w.curTool != "" {
			w.buf.WriteByte('\n')
		}
		fmt.Fprintf(&w.buf, "Tool: %s\n", strings.ToUpper(c.Tool))
		w.curTool = c.Tool
	}

	if c.Skipped != "" {
		fmt.Fprintf(&w.buf, "  Metric: %s -> skipped (%s)\n", c.Metric, c.Skipped)
		return
	}

	r := c.Result
	line := fmt.Sprintf("  Metric: %s | F(%d, %d) = %.4f, p = %.6f %s",
		c.Metric, r.DFBetween, r.DFWithin, r.F, r.P, c.Marker(w.th))
	w.buf.WriteString(strings.TrimRight(line, " "))
	w.buf.WriteByte('\n')

	decision := "No significant difference."
	if c.Significant(w.th) {
		decision = "Significant difference detected."
	}
	fmt.Fprintf(&w.buf, "    %s (p < %g threshold)\n", decision, w.th.Alpha)

	// Means and medians share one scale per row.
	row := make([]float64, 0, 2*len(c.Dists))
	for _, d := range c.Dists {
		row = append(row, d.Mean, d.Center)
	}
	scaled := metricunit.FormatRow(c.Metric, row)
	w.buf.WriteString("   ")
	for i, d := range c.Dists {
		fmt.Fprintf(&w.buf, " %s %s ±%s (median %s, n=%d)",
			c.Groups[i].Label, scaled[2*i], metricunit.Format(c.Metric, d.StdDev), scaled[2*i+1], d.N)
	}
	w.buf.WriteByte('\n')
}

// Flush writes the buffered report.
func (w *Writer) Flush() error {
	out := bytes.TrimRight(w.buf.Bytes(), "\n ")
	_, err := w.w.Write(append(out, '\n'))
	w.buf.Reset()
	w.curTool = ""
	return err
}

// WriteNotice writes a report that consists only of msg.
func WriteNotice(w io.Writer, msg string) error {
	_, err := fmt.Fprintf(w, "%s\n%s\n", resultsTitle, msg)
	return err
}
