// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchagg

import (
	"math"
	"sort"
)

// Buckets maps each parameter value to the raw samples observed for
// it, in the order they were added.
type Buckets map[float64][]float64

// Add appends sample v to the bucket for param.
func (b Buckets) Add(param, v float64) {
	b[param] = append(b[param], v)
}

// Params returns the parameter values of b in ascending order.
func (b Buckets) Params() []float64 {
	ps := make([]float64, 0, len(b))
	for p := range b {
		ps = append(ps, p)
	}
	sort.Float64s(ps)
	return ps
}

// A MedianRow is the median of the samples for one parameter value.
type MedianRow struct {
	Param  float64
	Median float64
}

// A MeanStdRow is the mean and sample standard deviation of the
// samples for one parameter value. StdDev is NaN when there was only
// one sample.
type MeanStdRow struct {
	Param  float64
	Mean   float64
	StdDev float64
}

// Median returns one row per parameter of b, in ascending parameter
// order.
func Median(b Buckets) []MedianRow {
	rows := make([]MedianRow, 0, len(b))
	for _, p := range b.Params() {
		rows = append(rows, MedianRow{p, NewSample(b[p]).Median()})
	}
	return rows
}

// MeanStd returns one row per parameter of b, in ascending parameter
// order.
func MeanStd(b Buckets) []MeanStdRow {
	rows := make([]MeanStdRow, 0, len(b))
	for _, p := range b.Params() {
		s := NewSample(b[p])
		rows = append(rows, MeanStdRow{p, s.Mean(), s.StdDev()})
	}
	return rows
}

// FromMedian converts median rows to mean rows with an undefined
// standard deviation, so they can go through the same derivations
// and renderers.
func FromMedian(rows []MedianRow) []MeanStdRow {
	out := make([]MeanStdRow, len(rows))
	for i, r := range rows {
		out[i] = MeanStdRow{r.Param, r.Median, math.NaN()}
	}
	return out
}
