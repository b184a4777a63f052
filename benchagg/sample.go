// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchagg groups benchmark records by experiment and
// computes per-parameter summary statistics.
//
// Every function in this package is pure: results depend only on the
// arguments, and rows always come out in ascending parameter order
// regardless of the order records were added in.
//
// The standard deviation of fewer than two samples is undefined. It
// is reported as NaN, never as zero and never as an error, so that a
// table can still show the mean of a single trial.
package benchagg

import (
	"math"
	"sort"

	"github.com/aclements/go-moremath/stats"
)

// A Sample is a set of repeated measurements for one parameter value.
type Sample struct {
	// Values are the measured values, in ascending order.
	Values []float64
}

// NewSample constructs a Sample from a copy of values.
func NewSample(values []float64) *Sample {
	vs := append([]float64(nil), values...)
	sort.Float64s(vs)
	return &Sample{vs}
}

func (s *Sample) sample() stats.Sample {
	return stats.Sample{Xs: s.Values, Sorted: true}
}

// Len returns the number of measurements in s.
func (s *Sample) Len() int {
	return len(s.Values)
}

// Mean returns the arithmetic mean of s, or NaN if s is empty.
func (s *Sample) Mean() float64 {
	if len(s.Values) == 0 {
		return math.NaN()
	}
	return s.sample().Mean()
}

// StdDev returns the sample standard deviation of s, normalized by
// n-1. It is NaN if s has fewer than two values.
func (s *Sample) StdDev() float64 {
	if len(s.Values) < 2 {
		return math.NaN()
	}
	return s.sample().StdDev()
}

// Median returns the median of s. For an even number of values it is
// the mean of the two middle values. It is NaN if s is empty.
func (s *Sample) Median() float64 {
	if len(s.Values) == 0 {
		return math.NaN()
	}
	return s.sample().Quantile(0.5)
}

// Bounds returns the smallest and largest values of s.
func (s *Sample) Bounds() (min, max float64) {
	if len(s.Values) == 0 {
		return math.NaN(), math.NaN()
	}
	return s.Values[0], s.Values[len(s.Values)-1]
}
