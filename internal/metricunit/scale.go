// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package metricunit formats web performance measurements with SI
// prefixes.
package metricunit

import (
	"fmt"
	"math"
	"strconv"
)

// Scaler represents a scaling factor for a number and its scientific
// representation.
type Scaler struct {
	Prec   int     // Digits after the decimal point
	Factor float64 // Unscaled value of 1 Prefix (e.g., 1 k => 1000)
	Prefix string  // SI prefix
}

// Format formats val and appends the prefix according to the scale.
func (s Scaler) Format(val float64) string {
	buf := make([]byte, 0, 20)
	buf = strconv.AppendFloat(buf, val/s.Factor, 'f', s.Prec, 64)
	buf = append(buf, s.Prefix...)
	return string(buf)
}

type factor struct {
	factor float64
	prefix string
	// Thresholds for 100, 10.0, 1.00.
	t100, t10, t1 float64
}

var siFactors = mkSIFactors()

func mkSIFactors() []factor {
	// Thresholds come from parsing the printed representation so
	// they round exactly the way Format does.
	var factors []factor
	exp := 9
	for _, p := range []string{"G", "M", "k", "", "m", "µ"} {
		t100, _ := strconv.ParseFloat(fmt.Sprintf("99.95e%d", exp), 64)
		t10, _ := strconv.ParseFloat(fmt.Sprintf("9.995e%d", exp), 64)
		t1, _ := strconv.ParseFloat(fmt.Sprintf(".9995e%d", exp), 64)
		factors = append(factors, factor{math.Pow(10, float64(exp)), p, t100, t10, t1})
		exp -= 3
	}
	return factors
}

// Scale formats val using at least three significant digits,
// appending an SI prefix.
func Scale(val float64) string {
	return CommonScale([]float64{val}).Format(val)
}

// CommonScale returns a Scaler that shows at least three significant
// digits for every value in vals. The scale is picked by the non-zero
// value closest to zero.
func CommonScale(vals []float64) Scaler {
	var min float64
	for _, v := range vals {
		v = math.Abs(v)
		if v != 0 && (min == 0 || v < min) {
			min = v
		}
	}
	if min == 0 {
		return Scaler{2, 1, ""}
	}

	for i, f := range siFactors {
		last := i == len(siFactors)-1
		switch {
		case min >= f.t100:
			return Scaler{0, f.factor, f.prefix}
		case min >= f.t10:
			return Scaler{1, f.factor, f.prefix}
		case min >= f.t1 || last:
			return Scaler{2, f.factor, f.prefix}
		}
	}
	panic("not reachable")
}
