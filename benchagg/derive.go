// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchagg

import "math"

// Standard deviations of derived rows are propagated to first order.

// BaselineAt returns the mean of the row for param.
func BaselineAt(rows []MeanStdRow, param float64) (float64, bool) {
	for _, r := range rows {
		if r.Param == param {
			return r.Mean, true
		}
	}
	return 0, false
}

// Speedup returns baseline/mean for every row, so that values above 1
// are faster than the baseline.
func Speedup(rows []MeanStdRow, baseline float64) []MeanStdRow {
	out := make([]MeanStdRow, len(rows))
	for i, r := range rows {
		out[i] = MeanStdRow{r.Param, baseline / r.Mean, math.Abs(baseline) * r.StdDev / (r.Mean * r.Mean)}
	}
	return out
}

// Percent returns every row as a percentage of baseline.
func Percent(rows []MeanStdRow, baseline float64) []MeanStdRow {
	out := make([]MeanStdRow, len(rows))
	for i, r := range rows {
		out[i] = MeanStdRow{r.Param, 100 * r.Mean / baseline, 100 * r.StdDev / math.Abs(baseline)}
	}
	return out
}

// Ratio divides num by den at every parameter both have. Parameters
// present on only one side are dropped. Both must be in ascending
// parameter order, as returned by MeanStd.
func Ratio(num, den []MeanStdRow) []MeanStdRow {
	var out []MeanStdRow
	for i, j := 0, 0; i < len(num) && j < len(den); {
		n, d := num[i], den[j]
		switch {
		case n.Param < d.Param:
			i++
		case n.Param > d.Param:
			j++
		default:
			q := n.Mean / d.Mean
			rel := math.Hypot(n.StdDev/n.Mean, d.StdDev/d.Mean)
			out = append(out, MeanStdRow{n.Param, q, math.Abs(q) * rel})
			i++
			j++
		}
	}
	return out
}
