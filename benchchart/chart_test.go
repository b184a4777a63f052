// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchchart

import (
	"bytes"
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aaexam/benchreport/benchagg"
	"github.com/google/go-cmp/cmp"
	"gonum.org/v1/plot/plotter"
)

func readFile(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(data) == 0 {
		t.Fatalf("%s is empty", path)
	}
	return data
}

func growth() *Config {
	rows := []benchagg.MeanStdRow{
		{Param: 10, Mean: 0.002, StdDev: 0.0005},
		{Param: 100, Mean: 0.19, StdDev: 0.5}, // lower bar crosses zero
		{Param: 1000, Mean: 21.5, StdDev: math.NaN()},
	}
	return &Config{
		Title:  "foursum",
		XLabel: "Number of elements n",
		YLabel: "Average (s)",
		XScale: Log,
		YScale: Log,
		Series: []Series{
			MeanStdSeries("quartic", rows),
			MedianSeries("cubic", []benchagg.MedianRow{{Param: 0, Median: 1}, {Param: 10, Median: 0.001}, {Param: 1000, Median: 1.5}}),
		},
	}
}

func TestRenderEmpty(t *testing.T) {
	// A chart without series is still written.
	path := filepath.Join(t.TempDir(), "empty.pdf")
	if err := Render(&Config{}, path); err != nil {
		t.Fatal(err)
	}
	if data := readFile(t, path); !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Errorf("%s is not a PDF", path)
	}

	// So is one whose only points can't go on a log axis.
	path = filepath.Join(t.TempDir(), "nothing.pdf")
	cfg := &Config{XScale: Log, YScale: Log, Series: []Series{{Name: "zero", Points: []Point{{0, 0, 0}}}}}
	if err := Render(cfg, path); err != nil {
		t.Fatal(err)
	}
	readFile(t, path)
}

func TestRenderFormats(t *testing.T) {
	dir := t.TempDir()
	for _, test := range []struct {
		name  string
		magic string
	}{
		{"t2e1.png", "\x89PNG"},
		{"t2e1.pdf", "%PDF"},
		{"t2e1", "%PDF"},
		{"t2e1.svg", "<svg"},
	} {
		t.Run(test.name, func(t *testing.T) {
			path := filepath.Join(dir, test.name)
			cfg := growth()
			cfg.DPI = 72
			if err := Render(cfg, path); err != nil {
				t.Fatal(err)
			}
			if data := readFile(t, path); !bytes.Contains(data, []byte(test.magic)) {
				t.Errorf("%s does not contain %q", path, test.magic)
			}
		})
	}
}

func TestRenderLegend(t *testing.T) {
	dir := t.TempDir()
	pts := []Point{{1, 1, 0}, {10, 2, 0}}
	names := []string{"zulu-series", "alpha-series", "mike-series"}
	cfg := &Config{XScale: Log, YScale: Log}
	for i, name := range names {
		cfg.Series = append(cfg.Series, Series{Name: name, Points: pts})
		if i == 0 {
			cfg.Series = append(cfg.Series, Series{Name: "dropped-series", Points: []Point{{0, -1, 0}}})
		}
	}
	path := filepath.Join(dir, "legend.svg")
	if err := Render(cfg, path); err != nil {
		t.Fatal(err)
	}
	svg := string(readFile(t, path))
	last := -1
	for _, name := range names {
		i := strings.Index(svg, name)
		if i < 0 {
			t.Fatalf("legend entry %q missing", name)
		}
		if i < last {
			t.Errorf("legend entry %q is out of order", name)
		}
		last = i
	}
	if strings.Contains(svg, "dropped-series") {
		t.Error("series without points is in the legend")
	}

	// With nothing drawn, a chart of series is the same as a chart
	// without any.
	empty := filepath.Join(dir, "empty.svg")
	if err := Render(&Config{}, empty); err != nil {
		t.Fatal(err)
	}
	dropped := filepath.Join(dir, "dropped.svg")
	cfg = &Config{YScale: Log, Series: []Series{{Name: "dropped-series", Points: []Point{{1, 0, 0}}}}}
	if err := Render(cfg, dropped); err != nil {
		t.Fatal(err)
	}
	if got, want := string(readFile(t, dropped)), string(readFile(t, empty)); got != want {
		t.Errorf("chart of undrawable series differs from empty chart:\n%s", cmp.Diff(want, got))
	}
}

func TestRenderSinglePoint(t *testing.T) {
	path := filepath.Join(t.TempDir(), "one.png")
	cfg := &Config{
		XScale: Log, YScale: Log, DPI: 72, RatioTicks: true,
		Series: []Series{{Name: "one", Points: []Point{{1, 1, math.NaN()}}, ErrorBars: true}},
	}
	if err := Render(cfg, path); err != nil {
		t.Fatal(err)
	}
	readFile(t, path)
}

func TestRenderErrors(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "chart.gif")
	if err := Render(growth(), path); err == nil {
		t.Errorf("Render(%s) succeeded", path)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("%s was created", path)
	}

	path = filepath.Join(dir, "missing", "chart.pdf")
	err := Render(growth(), path)
	var ioe *IOError
	if !errors.As(err, &ioe) || ioe.Path != path {
		t.Errorf("got %v, want *IOError for %s", err, path)
	}
}

func TestPlottable(t *testing.T) {
	s := Series{Points: []Point{
		{-1, 5, 1},
		{1, 0, 1},
		{2, math.Inf(1), 1},
		{math.NaN(), 1, 1},
		{3, 2, math.NaN()},
		{4, 2, 3},
		{5, 8, -1},
	}}

	xys, errs := s.plottable(false, false)
	wantXYs := plotter.XYs{{X: -1, Y: 5}, {X: 1, Y: 0}, {X: 3, Y: 2}, {X: 4, Y: 2}, {X: 5, Y: 8}}
	wantErrs := plotter.YErrors{{Low: 1, High: 1}, {Low: 1, High: 1}, {Low: 0, High: 0}, {Low: 3, High: 3}, {Low: 1, High: 1}}
	if diff := cmp.Diff(wantXYs, xys); diff != "" {
		t.Errorf("linear points (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(wantErrs, errs); diff != "" {
		t.Errorf("linear errors (-want +got):\n%s", diff)
	}

	xys, errs = s.plottable(true, true)
	wantXYs = plotter.XYs{{X: 3, Y: 2}, {X: 4, Y: 2}, {X: 5, Y: 8}}
	wantErrs = plotter.YErrors{{Low: 0, High: 0}, {Low: 0, High: 3}, {Low: 1, High: 1}}
	if diff := cmp.Diff(wantXYs, xys); diff != "" {
		t.Errorf("log points (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(wantErrs, errs); diff != "" {
		t.Errorf("log errors (-want +got):\n%s", diff)
	}
}

func TestParseScale(t *testing.T) {
	for in, want := range map[string]Scale{"": Linear, "linear": Linear, "log": Log} {
		got, err := ParseScale(in)
		if err != nil || got != want {
			t.Errorf("ParseScale(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
	if _, err := ParseScale("symlog"); err == nil {
		t.Error("ParseScale(symlog) succeeded")
	}
}
