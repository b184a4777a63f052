// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchcsv reads and writes the CSV files produced by
// benchmark experiments.
//
// Two header layouts are understood. The summary layout has one row
// per measured parameter value, as written by the experiment harness:
//
//	TITLE,PARAMETER,RUNS,REPETITIONS,MEANTIME,SDEVTIME,MEANRESULT,SDEVRESULT
//
// where TITLE and RUNS are optional. The grouped layout has one row
// per individual timing and names the problem and algorithm it
// belongs to:
//
//	problem,algorithm,n,time
//
// Column names are case-sensitive and columns may appear in any
// order. Columns not named by the layout are ignored.
package benchcsv

import (
	"fmt"
	"math"
)

// Column names of the summary layout.
const (
	ColTitle       = "TITLE"
	ColParameter   = "PARAMETER"
	ColRuns        = "RUNS"
	ColRepetitions = "REPETITIONS"
	ColMeanTime    = "MEANTIME"
	ColSdevTime    = "SDEVTIME"
	ColMeanResult  = "MEANRESULT"
	ColSdevResult  = "SDEVRESULT"
)

// Column names of the grouped layout.
const (
	ColProblem   = "problem"
	ColAlgorithm = "algorithm"
	ColN         = "n"
	ColTime      = "time"
)

// A Record is one measurement row.
//
// Numeric fields that the input layout does not carry are NaN. In
// particular, a row of the grouped layout is a single timing, so it
// has Repetitions 1 and NaN SdevTime, MeanResult, SdevResult and
// Runs.
type Record struct {
	// Title names the experiment. It comes from the TITLE column
	// or, failing that, from the label of the file it was read
	// from.
	Title string

	// Problem and Algorithm are set by the grouped layout.
	Problem, Algorithm string

	// Parameter is the independent variable, such as the input
	// size or a cutoff.
	Parameter float64

	Runs        float64
	Repetitions float64

	MeanTime, SdevTime     float64
	MeanResult, SdevResult float64
}

// Name returns the name of the series r belongs to: its algorithm
// if it has one, otherwise its title.
func (r Record) Name() string {
	if r.Algorithm != "" {
		return r.Algorithm
	}
	return r.Title
}

// A Schema selects the header layout a Reader expects.
type Schema int

const (
	// Summary is the per-parameter summary layout.
	Summary Schema = iota
	// Grouped is the per-timing layout keyed by problem and
	// algorithm.
	Grouped
)

func (s Schema) String() string {
	switch s {
	case Summary:
		return "summary"
	case Grouped:
		return "grouped"
	}
	return fmt.Sprintf("Schema(%d)", int(s))
}

// ParseSchema returns the Schema named by s.
func ParseSchema(s string) (Schema, error) {
	switch s {
	case "summary":
		return Summary, nil
	case "grouped":
		return Grouped, nil
	}
	return 0, fmt.Errorf("unknown schema %q (want summary or grouped)", s)
}

type field int

const (
	fTitle field = iota
	fProblem
	fAlgorithm
	fParameter
	fRuns
	fRepetitions
	fMeanTime
	fSdevTime
	fMeanResult
	fSdevResult
	numFields
)

type column struct {
	name     string
	field    field
	required bool
}

var summaryColumns = []column{
	{ColTitle, fTitle, false},
	{ColParameter, fParameter, true},
	{ColRuns, fRuns, false},
	{ColRepetitions, fRepetitions, true},
	{ColMeanTime, fMeanTime, true},
	{ColSdevTime, fSdevTime, true},
	{ColMeanResult, fMeanResult, true},
	{ColSdevResult, fSdevResult, true},
}

var groupedColumns = []column{
	{ColProblem, fProblem, true},
	{ColAlgorithm, fAlgorithm, true},
	{ColN, fParameter, true},
	{ColTime, fMeanTime, true},
}

func (s Schema) columns() []column {
	if s == Grouped {
		return groupedColumns
	}
	return summaryColumns
}

// blank returns the Record every row of schema s starts from.
func (s Schema) blank() Record {
	nan := math.NaN()
	r := Record{
		Parameter:   nan,
		Runs:        nan,
		Repetitions: nan,
		MeanTime:    nan,
		SdevTime:    nan,
		MeanResult:  nan,
		SdevResult:  nan,
	}
	if s == Grouped {
		r.Repetitions = 1
	}
	return r
}

func (r *Record) setString(f field, v string) {
	switch f {
	case fTitle:
		r.Title = v
	case fProblem:
		r.Problem = v
	case fAlgorithm:
		r.Algorithm = v
	}
}

func (r *Record) setFloat(f field, v float64) {
	switch f {
	case fParameter:
		r.Parameter = v
	case fRuns:
		r.Runs = v
	case fRepetitions:
		r.Repetitions = v
	case fMeanTime:
		r.MeanTime = v
	case fSdevTime:
		r.SdevTime = v
	case fMeanResult:
		r.MeanResult = v
	case fSdevResult:
		r.SdevResult = v
	}
}

func (f field) isString() bool {
	return f == fTitle || f == fProblem || f == fAlgorithm
}
