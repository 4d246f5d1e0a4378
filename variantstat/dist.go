// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package variantstat

import "github.com/aclements/go-moremath/stats"

// A Distribution summarizes the samples of one variant.
type Distribution struct {
	N int
	// Center is the median.
	Center float64

	Mean, StdDev float64
}

// NewDistribution summarizes values. It does not modify values.
func NewDistribution(values []float64) *Distribution {
	samp := stats.Sample{Xs: append([]float64(nil), values...)}
	// Speed up order statistics.
	samp.Sort()
	return &Distribution{
		N:      len(values),
		Center: samp.Quantile(0.5),
		Mean:   samp.Mean(),
		StdDev: samp.StdDev(),
	}
}
