// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package metricunit

import "strings"

// timingMetrics are reported in milliseconds.
var timingMetrics = map[string]bool{
	"LCP":        true,
	"FCP":        true,
	"TTFB":       true,
	"TBT":        true,
	"INP":        true,
	"FID":        true,
	"TTI":        true,
	"SI":         true,
	"SPEEDINDEX": true,
}

// Tidy returns the base unit of metric and the factor that converts a
// raw measurement of metric into that unit. Timing metrics are
// measured in milliseconds and tidied to seconds. Other metrics, such
// as CLS, are unitless.
func Tidy(metric string) (unit string, factor float64) {
	if timingMetrics[strings.ToUpper(metric)] {
		return "s", 1e-3
	}
	return "", 1
}

// Format scales a raw measurement of metric for display, for example
// 1523 LCP as "1.52s".
func Format(metric string, val float64) string {
	unit, factor := Tidy(metric)
	return Scale(val*factor) + unit
}

// FormatRow scales raw measurements of metric for display using one
// common scale, so that values in a row line up.
func FormatRow(metric string, vals []float64) []string {
	unit, factor := Tidy(metric)
	tidied := make([]float64, len(vals))
	for i, v := range vals {
		tidied[i] = v * factor
	}
	sc := CommonScale(tidied)
	out := make([]string, len(vals))
	for i, v := range tidied {
		out[i] = sc.Format(v) + unit
	}
	return out
}
