// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchagg

import (
	"fmt"
	"math"

	"github.com/aaexam/benchreport/benchcsv"
)

// A Metric selects the Record field that is aggregated.
type Metric int

const (
	// Time aggregates Record.MeanTime.
	Time Metric = iota
	// Result aggregates Record.MeanResult, such as a comparison
	// count.
	Result
)

func (m Metric) String() string {
	switch m {
	case Time:
		return "time"
	case Result:
		return "result"
	}
	return fmt.Sprintf("Metric(%d)", int(m))
}

// ParseMetric returns the Metric named by s.
func ParseMetric(s string) (Metric, error) {
	switch s {
	case "time":
		return Time, nil
	case "result":
		return Result, nil
	}
	return 0, fmt.Errorf("unknown metric %q (want time or result)", s)
}

// Value returns the field of r selected by m.
func (m Metric) Value(r benchcsv.Record) float64 {
	if m == Result {
		return r.MeanResult
	}
	return r.MeanTime
}

// Spread returns the recorded standard deviation of r that goes with
// the field selected by m.
func (m Metric) Spread(r benchcsv.Record) float64 {
	if m == Result {
		return r.SdevResult
	}
	return r.SdevTime
}

// A Grouping holds the samples of a set of records, bucketed by
// problem, then algorithm, then parameter.
//
// Problems and algorithms are kept in the order they were first seen,
// which is the order series appear in chart legends.
type Grouping struct {
	metric   Metric
	problems []string
	algs     map[string][]string
	buckets  map[groupKey]Buckets

	// spread is the recorded standard deviation of the first record
	// of every bucket.
	spread map[groupKey]map[float64]float64
}

type groupKey struct {
	problem, algorithm string
}

// Group buckets the metric m of every record. A record's algorithm is
// its Name, so records of the summary layout are grouped by title
// under the empty problem.
func Group(records []benchcsv.Record, m Metric) *Grouping {
	g := &Grouping{
		metric:  m,
		algs:    make(map[string][]string),
		buckets: make(map[groupKey]Buckets),
		spread:  make(map[groupKey]map[float64]float64),
	}
	for _, r := range records {
		key := groupKey{r.Problem, r.Name()}
		b, ok := g.buckets[key]
		if !ok {
			if _, ok := g.algs[key.problem]; !ok {
				g.problems = append(g.problems, key.problem)
			}
			g.algs[key.problem] = append(g.algs[key.problem], key.algorithm)
			b = make(Buckets)
			g.buckets[key] = b
			g.spread[key] = make(map[float64]float64)
		}
		if _, ok := b[r.Parameter]; !ok {
			g.spread[key][r.Parameter] = m.Spread(r)
		}
		b.Add(r.Parameter, m.Value(r))
	}
	return g
}

// Problems returns the problems of g in first-seen order.
func (g *Grouping) Problems() []string {
	return append([]string(nil), g.problems...)
}

// Algorithms returns the algorithms of problem in first-seen order.
func (g *Grouping) Algorithms(problem string) []string {
	return append([]string(nil), g.algs[problem]...)
}

// Buckets returns the samples of one problem and algorithm, or nil if
// g has none.
func (g *Grouping) Buckets(problem, algorithm string) Buckets {
	return g.buckets[groupKey{problem, algorithm}]
}

// MeanStd returns the mean and standard deviation of one problem and
// algorithm per parameter, in ascending parameter order. A parameter
// backed by a single record keeps that record's own finite standard
// deviation, so summary inputs do not lose their spread. It returns
// nil if g has no such series.
func (g *Grouping) MeanStd(problem, algorithm string) []MeanStdRow {
	key := groupKey{problem, algorithm}
	b := g.buckets[key]
	if b == nil {
		return nil
	}
	rows := MeanStd(b)
	for i := range rows {
		r := &rows[i]
		if len(b[r.Param]) != 1 {
			continue
		}
		if sd := g.spread[key][r.Param]; !math.IsNaN(sd) && !math.IsInf(sd, 0) {
			r.StdDev = sd
		}
	}
	return rows
}

// Summarize returns one record of the summary layout per parameter of
// one problem and algorithm, in ascending parameter order, holding the
// mean and standard deviation of MeanStd and the number of samples as
// Repetitions. Fields the samples say nothing about are NaN.
func (g *Grouping) Summarize(problem, algorithm string) []benchcsv.Record {
	b := g.buckets[groupKey{problem, algorithm}]
	nan := math.NaN()
	var recs []benchcsv.Record
	for _, row := range g.MeanStd(problem, algorithm) {
		r := benchcsv.Record{
			Title:       algorithm,
			Problem:     problem,
			Algorithm:   algorithm,
			Parameter:   row.Param,
			Runs:        nan,
			Repetitions: float64(len(b[row.Param])),
			MeanTime:    nan,
			SdevTime:    nan,
			MeanResult:  nan,
			SdevResult:  nan,
		}
		if g.metric == Result {
			r.MeanResult, r.SdevResult = row.Mean, row.StdDev
		} else {
			r.MeanTime, r.SdevTime = row.Mean, row.StdDev
		}
		recs = append(recs, r)
	}
	return recs
}
