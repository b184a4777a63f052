// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package report runs the read, aggregate and render pipeline over a
// declarative report definition.
//
// Every run reads its inputs afresh, and the first error aborts it.
// Errors keep the kind of their cause, so callers can still match a
// *benchcsv.ParseError or an output *benchtab.IOError with errors.As.
package report

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/aaexam/benchreport/benchagg"
	"github.com/aaexam/benchreport/benchchart"
	"github.com/aaexam/benchreport/benchcsv"
	"github.com/aaexam/benchreport/benchtab"
	"github.com/pkg/errors"
)

// Options configures a run.
type Options struct {
	// Dir is the directory relative paths are resolved against. The
	// default is the current directory.
	Dir string

	// Logf, if non-nil, is called with a line of progress for every
	// file read or written.
	Logf func(format string, args ...interface{})

	// Summary, if non-nil, receives a text table of the records of
	// every input.
	Summary io.Writer
}

func (o *Options) logf(format string, args ...interface{}) {
	if o.Logf != nil {
		o.Logf(format, args...)
	}
}

func (o *Options) path(p string) string {
	if o.Dir == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(o.Dir, p)
}

// A dataset is an input that has been read and grouped.
type dataset struct {
	*benchagg.Grouping
	name string
}

// Run renders every table and chart of cfg. opts may be nil.
func Run(cfg *Config, opts *Options) error {
	if opts == nil {
		opts = new(Options)
	}
	if err := cfg.Validate(); err != nil {
		return errors.Wrap(err, "invalid report")
	}

	data := make(map[string]*dataset)
	for i := range cfg.Inputs {
		in := &cfg.Inputs[i]
		ds, err := read(in, opts)
		if err != nil {
			return errors.Wrapf(err, "input %s", in.Name)
		}
		data[in.Name] = ds
	}

	for _, t := range cfg.Tables {
		if err := writeTable(&t, data[t.Input], opts); err != nil {
			return errors.Wrapf(err, "table %s", t.Path)
		}
	}
	for _, c := range cfg.Charts {
		if err := writeChart(&c, data, opts); err != nil {
			return errors.Wrapf(err, "chart %s", c.Path)
		}
	}
	return nil
}

func read(in *Input, opts *Options) (*dataset, error) {
	s, err := benchcsv.ParseSchema(in.Schema)
	if err != nil {
		return nil, err
	}
	m, err := in.metric()
	if err != nil {
		return nil, err
	}
	files := benchcsv.Files{Schema: s, Labels: []string{}}
	for _, p := range in.paths() {
		label, path := splitLabel(p)
		files.Paths = append(files.Paths, opts.path(path))
		files.Labels = append(files.Labels, label)
	}
	opts.logf("reading %s from %v", in.Name, in.paths())

	recs, err := files.ReadAll()
	if err != nil {
		return nil, err
	}
	opts.logf("read %d records", len(recs))
	if opts.Summary != nil {
		if _, err := fmt.Fprintf(opts.Summary, "# %s\n", in.Name); err != nil {
			return nil, err
		}
		if err := benchtab.FormatSummary(opts.Summary, recs); err != nil {
			return nil, err
		}
	}
	return &dataset{benchagg.Group(recs, m), in.Name}, nil
}

// splitLabel splits an input path of the form label=path. The label
// may not contain a path separator, so "=" inside a directory name
// is part of the path.
func splitLabel(p string) (label, path string) {
	label, path, ok := strings.Cut(p, "=")
	if !ok || label == "" || strings.ContainsAny(label, `/`+string(filepath.Separator)) {
		return "", p
	}
	return label, path
}

func (ds *dataset) buckets(problem, algorithm string) (benchagg.Buckets, error) {
	b := ds.Buckets(problem, algorithm)
	if b == nil {
		if problem == "" {
			return nil, fmt.Errorf("input %s has no series %q", ds.name, algorithm)
		}
		return nil, fmt.Errorf("input %s has no algorithm %q for problem %q", ds.name, algorithm, problem)
	}
	return b, nil
}

func writeTable(t *Table, ds *dataset, opts *Options) error {
	b, err := ds.buckets(t.Problem, t.Algorithm)
	if err != nil {
		return err
	}
	topts := &benchtab.Options{
		ParamLabel:  t.ParamLabel,
		MeanLabel:   t.MeanLabel,
		StdLabel:    t.StdLabel,
		MedianLabel: t.MedianLabel,
	}
	path := opts.path(t.Path)
	switch {
	case strings.EqualFold(filepath.Ext(path), ".csv"):
		err = benchcsv.WriteFile(path, ds.Summarize(t.Problem, t.Algorithm))
	case t.Stat == statMedian:
		err = benchtab.WriteMedianFile(path, benchagg.Median(b), topts)
	default:
		err = benchtab.WriteFile(path, ds.MeanStd(t.Problem, t.Algorithm), topts)
	}
	if err != nil {
		return err
	}
	opts.logf("wrote %s", path)
	return nil
}

type namedRows struct {
	name string
	rows []benchagg.MeanStdRow
}

func writeChart(c *Chart, data map[string]*dataset, opts *Options) error {
	var series []namedRows
	for _, ref := range c.Series {
		ds := data[ref.Input]
		algs := []string{ref.Algorithm}
		if ref.Algorithm == "" {
			algs = ds.Algorithms(ref.Problem)
			if len(algs) == 0 {
				return fmt.Errorf("input %s has no problem %q", ds.name, ref.Problem)
			}
		}
		for _, alg := range algs {
			b, err := ds.buckets(ref.Problem, alg)
			if err != nil {
				return err
			}
			var rows []benchagg.MeanStdRow
			if c.Stat == statMedian {
				rows = benchagg.FromMedian(benchagg.Median(b))
			} else {
				rows = ds.MeanStd(ref.Problem, alg)
			}
			name := alg
			if ref.Name != "" {
				name = ref.Name
				if ref.Algorithm == "" {
					name += " " + alg
				}
			}
			series = append(series, namedRows{name, rows})
		}
	}

	series, err := derive(c, series)
	if err != nil {
		return err
	}

	xs, _ := benchchart.ParseScale(c.XScale)
	ys, _ := benchchart.ParseScale(c.YScale)
	cc := &benchchart.Config{
		Title:      c.Title,
		XLabel:     c.XLabel,
		YLabel:     c.YLabel,
		XScale:     xs,
		YScale:     ys,
		Width:      c.Width,
		Height:     c.Height,
		DPI:        c.DPI,
		RatioTicks: c.RatioTicks,
	}
	for _, s := range series {
		cs := benchchart.MeanStdSeries(s.name, s.rows)
		cs.ErrorBars = c.ErrorBars && c.Stat != statMedian
		cc.Series = append(cc.Series, cs)
	}
	path := opts.path(c.Path)
	if err := benchchart.Render(cc, path); err != nil {
		return err
	}
	opts.logf("wrote %s", path)
	return nil
}

// derive applies the chart's derivation to every series.
func derive(c *Chart, series []namedRows) ([]namedRows, error) {
	if c.Derive == "" {
		return series, nil
	}

	if c.BaselineSeries != "" {
		bi := -1
		for i, s := range series {
			if s.name == c.BaselineSeries {
				bi = i
				break
			}
		}
		if bi < 0 {
			return nil, fmt.Errorf("no baseline series %q", c.BaselineSeries)
		}
		base := series[bi].rows
		out := make([]namedRows, len(series))
		for i, s := range series {
			var rows []benchagg.MeanStdRow
			if c.Derive == deriveSpeedup {
				rows = benchagg.Ratio(base, s.rows)
			} else {
				rows = benchagg.Percent(benchagg.Ratio(s.rows, base), 1)
			}
			if i == bi {
				// The baseline against itself is exact.
				for j := range rows {
					rows[j].StdDev = 0
				}
			}
			out[i] = namedRows{s.name, rows}
		}
		return out, nil
	}

	out := make([]namedRows, len(series))
	for i, s := range series {
		if len(s.rows) == 0 {
			out[i] = s
			continue
		}
		param := c.BaselineParam
		if param == 0 {
			param = s.rows[0].Param
		}
		b, ok := benchagg.BaselineAt(s.rows, param)
		if !ok {
			return nil, fmt.Errorf("series %s has no parameter %v", s.name, param)
		}
		var rows []benchagg.MeanStdRow
		if c.Derive == deriveSpeedup {
			rows = benchagg.Speedup(s.rows, b)
		} else {
			rows = benchagg.Percent(s.rows, b)
		}
		out[i] = namedRows{s.name, rows}
	}
	return out, nil
}
