// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package report

import (
	"bytes"
	"fmt"
	"os"

	"github.com/aaexam/benchreport/benchagg"
	"github.com/aaexam/benchreport/benchchart"
	"github.com/aaexam/benchreport/benchcsv"
	toml "github.com/pelletier/go-toml"
)

// Config is a report definition: the inputs to read and the tables
// and charts to render from them.
//
// In TOML form, each input, table and chart is an entry of an array
// of tables:
//
//	[[input]]
//	name = "t2e1"
//	path = "results/t2e1.csv"
//	schema = "grouped"
//
//	[[table]]
//	input = "t2e1"
//	problem = "foursum"
//	algorithm = "quartic"
//	path = "results/t2e1.tex"
//
//	[[chart]]
//	path = "results/t2e1.pdf"
//	xscale = "log"
//	yscale = "log"
//	errorbars = true
//
//	  [[chart.series]]
//	  input = "t2e1"
//	  problem = "foursum"
type Config struct {
	Inputs []Input `toml:"input"`
	Tables []Table `toml:"table,omitempty"`
	Charts []Chart `toml:"chart,omitempty"`
}

// An Input is a set of CSV files read as one.
type Input struct {
	Name string `toml:"name"`

	// Path is a single input file. Paths lists several; an entry
	// may be of the form label=path to override its title. A label
	// never contains a path separator, so an "=" in a directory
	// name is part of the path.
	Path  string   `toml:"path,omitempty"`
	Paths []string `toml:"paths,omitempty"`

	// Schema is "grouped" or "summary".
	Schema string `toml:"schema"`

	// Metric is "time" (the default) or "result".
	Metric string `toml:"metric,omitempty"`
}

// A Table is a LaTeX tabular of one algorithm's statistics. If Path
// ends in ".csv", the mean and standard deviation are written instead
// as a CSV file of the summary layout, which can be read back as a
// summary input.
type Table struct {
	Input     string `toml:"input"`
	Problem   string `toml:"problem,omitempty"`
	Algorithm string `toml:"algorithm"`
	Path      string `toml:"path"`

	// Stat is "meanstd" (the default) or "median".
	Stat string `toml:"stat,omitempty"`

	ParamLabel  string `toml:"param_label,omitempty"`
	MeanLabel   string `toml:"mean_label,omitempty"`
	StdLabel    string `toml:"std_label,omitempty"`
	MedianLabel string `toml:"median_label,omitempty"`
}

// A Chart is one chart of one or more series.
type Chart struct {
	Path   string `toml:"path"`
	Title  string `toml:"title,omitempty"`
	XLabel string `toml:"xlabel,omitempty"`
	YLabel string `toml:"ylabel,omitempty"`

	// XScale and YScale are "linear" (the default) or "log".
	XScale string `toml:"xscale,omitempty"`
	YScale string `toml:"yscale,omitempty"`

	ErrorBars bool   `toml:"errorbars,omitempty"`
	Stat      string `toml:"stat,omitempty"`

	// Derive transforms each series before it is plotted:
	//
	//	speedup: baseline / value
	//	percent: 100 * value / baseline
	//
	// The baseline is the series named by BaselineSeries, matched
	// parameter by parameter, or else each series' own value at
	// BaselineParam, which defaults to its smallest parameter.
	Derive         string  `toml:"derive,omitempty"`
	BaselineParam  float64 `toml:"baseline_param,omitempty"`
	BaselineSeries string  `toml:"baseline_series,omitempty"`
	RatioTicks     bool    `toml:"ratio_ticks,omitempty"`

	Width  float64 `toml:"width,omitempty"`
	Height float64 `toml:"height,omitempty"`
	DPI    int     `toml:"dpi,omitempty"`

	Series []SeriesRef `toml:"series"`
}

// A SeriesRef selects the series of a chart from an input. An empty
// Algorithm selects every algorithm of Problem, in the order they
// first appear in the input.
type SeriesRef struct {
	Input     string `toml:"input"`
	Problem   string `toml:"problem,omitempty"`
	Algorithm string `toml:"algorithm,omitempty"`

	// Name is the legend entry. It defaults to the algorithm.
	Name string `toml:"name,omitempty"`
}

const (
	statMeanStd = "meanstd"
	statMedian  = "median"

	deriveSpeedup = "speedup"
	derivePercent = "percent"
)

// DefaultConfig returns the report of the timing experiment: a table
// of the quartic 4-sum algorithm and a log-log chart of every 4-sum
// algorithm, both from results/t2e1.csv.
func DefaultConfig() *Config {
	return &Config{
		Inputs: []Input{{Name: "t2e1", Path: "results/t2e1.csv", Schema: "grouped"}},
		Tables: []Table{{
			Input:     "t2e1",
			Problem:   "foursum",
			Algorithm: "quartic",
			Path:      "results/t2e1.tex",
		}},
		Charts: []Chart{{
			Path:      "results/t2e1.pdf",
			XLabel:    "Number of elements n",
			YLabel:    "Time (s)",
			XScale:    "log",
			YScale:    "log",
			ErrorBars: true,
			Series:    []SeriesRef{{Input: "t2e1", Problem: "foursum"}},
		}},
	}
}

// LoadConfig reads and validates the TOML report definition in path.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// ParseConfig parses and validates a TOML report definition. Unknown
// keys are an error.
func ParseConfig(data []byte) (*Config, error) {
	cfg := new(Config)
	if err := toml.NewDecoder(bytes.NewReader(data)).Strict(true).Decode(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Marshal returns the TOML form of cfg.
func (cfg *Config) Marshal() ([]byte, error) {
	return toml.Marshal(*cfg)
}

// Validate checks that cfg is complete and consistent, without
// reading any input.
func (cfg *Config) Validate() error {
	inputs := make(map[string]*Input)
	for i := range cfg.Inputs {
		in := &cfg.Inputs[i]
		if in.Name == "" {
			return fmt.Errorf("input %d: missing name", i+1)
		}
		if _, ok := inputs[in.Name]; ok {
			return fmt.Errorf("input %s: defined twice", in.Name)
		}
		inputs[in.Name] = in
		if len(in.paths()) == 0 {
			return fmt.Errorf("input %s: no path", in.Name)
		}
		s, err := benchcsv.ParseSchema(in.Schema)
		if err != nil {
			return fmt.Errorf("input %s: %w", in.Name, err)
		}
		m, err := in.metric()
		if err != nil {
			return fmt.Errorf("input %s: %w", in.Name, err)
		}
		if s == benchcsv.Grouped && m == benchagg.Result {
			return fmt.Errorf("input %s: grouped files have no result column", in.Name)
		}
	}

	ref := func(what, name string) error {
		if _, ok := inputs[name]; !ok {
			return fmt.Errorf("%s: unknown input %q", what, name)
		}
		return nil
	}
	for i, t := range cfg.Tables {
		what := fmt.Sprintf("table %d", i+1)
		if t.Path == "" {
			return fmt.Errorf("%s: missing path", what)
		}
		what = "table " + t.Path
		if err := ref(what, t.Input); err != nil {
			return err
		}
		if t.Algorithm == "" {
			return fmt.Errorf("%s: missing algorithm", what)
		}
		if err := checkStat(t.Stat); err != nil {
			return fmt.Errorf("%s: %w", what, err)
		}
	}
	for i, c := range cfg.Charts {
		what := fmt.Sprintf("chart %d", i+1)
		if c.Path == "" {
			return fmt.Errorf("%s: missing path", what)
		}
		what = "chart " + c.Path
		for _, s := range []string{c.XScale, c.YScale} {
			if _, err := benchchart.ParseScale(s); err != nil {
				return fmt.Errorf("%s: %w", what, err)
			}
		}
		if err := checkStat(c.Stat); err != nil {
			return fmt.Errorf("%s: %w", what, err)
		}
		switch c.Derive {
		case "", deriveSpeedup, derivePercent:
		default:
			return fmt.Errorf("%s: unknown derivation %q (want speedup or percent)", what, c.Derive)
		}
		if c.Derive == "" && (c.BaselineSeries != "" || c.BaselineParam != 0) {
			return fmt.Errorf("%s: baseline given without derive", what)
		}
		for _, s := range c.Series {
			if err := ref(what, s.Input); err != nil {
				return err
			}
		}
	}
	return nil
}

func checkStat(s string) error {
	switch s {
	case "", statMeanStd, statMedian:
		return nil
	}
	return fmt.Errorf("unknown stat %q (want meanstd or median)", s)
}

func (in *Input) paths() []string {
	if in.Path != "" {
		return append([]string{in.Path}, in.Paths...)
	}
	return in.Paths
}

func (in *Input) metric() (benchagg.Metric, error) {
	if in.Metric == "" {
		return benchagg.Time, nil
	}
	return benchagg.ParseMetric(in.Metric)
}
