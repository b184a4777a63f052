// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchtab renders aggregated benchmark rows as text tables.
//
// The main output is a LaTeX tabular environment with one row per
// parameter value:
//
//	\begin{tabular}{rrr}
//	$n$ & Average (s) & Standard deviation (s)\\\hline
//	 10 &    2.000000 &               1.414214\\
//	\end{tabular}
//
// Cells are right-aligned and padded so the column separators line
// up. An undefined standard deviation is printed as NaN.
package benchtab

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/aaexam/benchreport/benchagg"
	"github.com/aaexam/benchreport/internal/outfile"
	"github.com/aaexam/benchreport/internal/texttab"
)

// An IOError reports an output file that could not be created or
// written.
type IOError = outfile.Error

// Options configures the header of a tabular.
type Options struct {
	// ParamLabel heads the parameter column. The default is "$n$".
	ParamLabel string

	// MeanLabel, StdLabel and MedianLabel head the statistic
	// columns.
	MeanLabel   string
	StdLabel    string
	MedianLabel string

	// Spec is the column specification of the tabular. The default
	// right-aligns every column.
	Spec string
}

const (
	DefaultParamLabel  = "$n$"
	DefaultMeanLabel   = "Average (s)"
	DefaultStdLabel    = "Standard deviation (s)"
	DefaultMedianLabel = "Median (s)"
)

func (o *Options) withDefaults(cols int) Options {
	var out Options
	if o != nil {
		out = *o
	}
	def := func(s *string, d string) {
		if *s == "" {
			*s = d
		}
	}
	def(&out.ParamLabel, DefaultParamLabel)
	def(&out.MeanLabel, DefaultMeanLabel)
	def(&out.StdLabel, DefaultStdLabel)
	def(&out.MedianLabel, DefaultMedianLabel)
	def(&out.Spec, strings.Repeat("r", cols))
	return out
}

// WriteTabular writes rows as a three-column tabular of parameter,
// mean and standard deviation. opts may be nil.
func WriteTabular(w io.Writer, rows []benchagg.MeanStdRow, opts *Options) error {
	o := opts.withDefaults(3)
	tab := newTabular(o.ParamLabel, o.MeanLabel, o.StdLabel)
	for _, r := range rows {
		tab.row(formatParam(r.Param), formatStat(r.Mean), formatStat(r.StdDev))
	}
	return tab.format(w, o.Spec)
}

// WriteMedianTabular writes rows as a two-column tabular of parameter
// and median. opts may be nil.
func WriteMedianTabular(w io.Writer, rows []benchagg.MedianRow, opts *Options) error {
	o := opts.withDefaults(2)
	tab := newTabular(o.ParamLabel, o.MedianLabel)
	for _, r := range rows {
		tab.row(formatParam(r.Param), formatStat(r.Median))
	}
	return tab.format(w, o.Spec)
}

// WriteFile creates or overwrites the file at path with the tabular
// of rows. If the file cannot be created or written, it returns an
// *IOError.
func WriteFile(path string, rows []benchagg.MeanStdRow, opts *Options) error {
	return outfile.Write(path, func(w io.Writer) error {
		return WriteTabular(w, rows, opts)
	})
}

// WriteMedianFile is like WriteFile, but writes a median tabular.
func WriteMedianFile(path string, rows []benchagg.MedianRow, opts *Options) error {
	return outfile.Write(path, func(w io.Writer) error {
		return WriteMedianTabular(w, rows, opts)
	})
}

type tabular struct {
	tab texttab.Table
}

func newTabular(header ...string) *tabular {
	t := new(tabular)
	t.row(header...)
	t.tab.End(`\\\hline`)
	return t
}

func (t *tabular) row(cells ...string) {
	t.tab.Row()
	for i, c := range cells {
		if i == 0 {
			t.tab.Cell(c, texttab.Right)
		} else {
			t.tab.Cell(c, texttab.Right, texttab.LeftMargin(" & "))
		}
	}
	t.tab.End(`\\`)
}

func (t *tabular) format(w io.Writer, spec string) error {
	if _, err := fmt.Fprintf(w, "\\begin{tabular}{%s}\n", spec); err != nil {
		return err
	}
	if err := t.tab.Format(w); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "\\end{tabular}\n")
	return err
}

// formatParam prints integral parameters as integers.
func formatParam(p float64) string {
	if p == math.Trunc(p) && math.Abs(p) < 1<<53 {
		return strconv.FormatInt(int64(p), 10)
	}
	return strconv.FormatFloat(p, 'g', -1, 64)
}

func formatStat(v float64) string {
	return fmt.Sprintf("%.6f", v)
}
