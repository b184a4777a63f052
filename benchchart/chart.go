// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchchart renders benchmark series as line charts.
//
// A chart has one pair of axes shared by all of its series. Each axis
// is independently linear or logarithmic. Every series is drawn as a
// line with a marker at each point, optionally with vertical error
// bars, and is listed in the legend in the order it was added. A
// series with nothing to draw is left out of the legend.
package benchchart

import (
	"fmt"
	"image/color"
	"io"
	"math"
	"path/filepath"
	"strings"

	"github.com/aaexam/benchreport/benchagg"
	"github.com/aaexam/benchreport/internal/outfile"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgpdf"
	"gonum.org/v1/plot/vg/vgsvg"
)

// An IOError reports an output file that could not be created or
// written.
type IOError = outfile.Error

// A Scale is the scale of one chart axis.
type Scale int

const (
	Linear Scale = iota
	Log
)

func (s Scale) String() string {
	switch s {
	case Linear:
		return "linear"
	case Log:
		return "log"
	}
	return fmt.Sprintf("Scale(%d)", int(s))
}

// ParseScale returns the Scale named by s. The empty string is
// Linear.
func ParseScale(s string) (Scale, error) {
	switch s {
	case "", "linear":
		return Linear, nil
	case "log":
		return Log, nil
	}
	return 0, fmt.Errorf("unknown axis scale %q (want linear or log)", s)
}

// A Point is one observation of a series. Err is the half-height of
// its error bar; it is ignored if NaN.
type Point struct {
	X, Y float64
	Err  float64
}

// A Series is a named sequence of points.
type Series struct {
	Name   string
	Points []Point

	// ErrorBars draws a bar of ±Err around each point.
	ErrorBars bool
}

// MeanStdSeries returns a series of the means of rows, with error
// bars of one standard deviation.
func MeanStdSeries(name string, rows []benchagg.MeanStdRow) Series {
	s := Series{Name: name, ErrorBars: true}
	for _, r := range rows {
		s.Points = append(s.Points, Point{r.Param, r.Mean, r.StdDev})
	}
	return s
}

// MedianSeries returns a series of the medians of rows.
func MedianSeries(name string, rows []benchagg.MedianRow) Series {
	s := Series{Name: name}
	for _, r := range rows {
		s.Points = append(s.Points, Point{r.Param, r.Median, math.NaN()})
	}
	return s
}

// Config describes one chart.
type Config struct {
	Title          string
	XLabel, YLabel string
	XScale, YScale Scale

	// Width and Height are the size of the chart in centimeters.
	// They default to 16 by 12.
	Width, Height float64

	// DPI is the resolution of raster output. It defaults to 300.
	DPI int

	// RatioTicks places the Y grid lines at round distances from
	// 1.0, for charts of speedups and other ratios.
	RatioTicks bool

	Series []Series
}

const (
	defaultWidth  = 16
	defaultHeight = 12
	defaultDPI    = 300
)

// Render draws the chart described by cfg and writes it to path,
// replacing any existing file. The output format follows the
// extension of path: .pdf (also used when there is no extension),
// .svg, .png or .jpg.
//
// Points that cannot be placed on a logarithmic axis are left out. A
// chart with no series, or none with a drawable point, renders as an
// empty pair of linear axes without a legend.
//
// If the file cannot be written, Render returns an *IOError.
func Render(cfg *Config, path string) error {
	w, h := cfg.size()
	c, err := newCanvas(path, w, h, cfg.dpi())
	if err != nil {
		return err
	}
	pl, err := cfg.plot()
	if err != nil {
		return err
	}
	pl.Draw(draw.New(c))
	return outfile.Write(path, func(w io.Writer) error {
		_, err := c.WriteTo(w)
		return err
	})
}

func (cfg *Config) size() (w, h vg.Length) {
	cw, ch := cfg.Width, cfg.Height
	if cw <= 0 {
		cw = defaultWidth
	}
	if ch <= 0 {
		ch = defaultHeight
	}
	return vg.Length(cw) * vg.Centimeter, vg.Length(ch) * vg.Centimeter
}

func (cfg *Config) dpi() int {
	if cfg.DPI <= 0 {
		return defaultDPI
	}
	return cfg.DPI
}

func newCanvas(path string, w, h vg.Length, dpi int) (vg.CanvasWriterTo, error) {
	img := func() *vgimg.Canvas {
		return vgimg.NewWith(vgimg.UseWH(w, h), vgimg.UseDPI(dpi), vgimg.UseBackgroundColor(color.White))
	}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case "", ".pdf":
		return vgpdf.New(w, h), nil
	case ".svg":
		return vgsvg.New(w, h), nil
	case ".png":
		return vgimg.PngCanvas{Canvas: img()}, nil
	case ".jpg", ".jpeg":
		return vgimg.JpegCanvas{Canvas: img()}, nil
	default:
		return nil, fmt.Errorf("%s: unsupported chart format %q", path, ext)
	}
}

// errPoints is the data of a series' error bars.
type errPoints struct {
	plotter.XYs
	plotter.YErrors
}

func (cfg *Config) plot() (*plot.Plot, error) {
	pl := plot.New()
	pl.Title.Text = cfg.Title
	pl.X.Label.Text = cfg.XLabel
	pl.Y.Label.Text = cfg.YLabel
	pl.Legend.Top = true
	pl.Legend.Left = true

	xlog, ylog := cfg.XScale == Log, cfg.YScale == Log
	var ys []float64
	for i, s := range cfg.Series {
		xys, errs := s.plottable(xlog, ylog)

		line, points, err := plotter.NewLinePoints(xys)
		if err != nil {
			return nil, fmt.Errorf("series %s: %w", s.Name, err)
		}
		col := plotutil.Color(i)
		line.LineStyle.Color = col
		points.GlyphStyle.Color = col
		points.GlyphStyle.Shape = glyph(i)
		points.GlyphStyle.Radius = vg.Points(3)
		if len(xys) == 0 {
			continue
		}
		pl.Add(line, points)
		pl.Legend.Add(s.Name, line, points)
		if s.ErrorBars {
			bars, err := plotter.NewYErrorBars(errPoints{xys, errs})
			if err != nil {
				return nil, fmt.Errorf("series %s: %w", s.Name, err)
			}
			bars.LineStyle.Color = col
			bars.CapWidth = vg.Points(6)
			pl.Add(bars)
		}
		for _, p := range xys {
			ys = append(ys, p.Y)
		}
	}

	if len(ys) == 0 {
		// Nothing to place on a log axis.
		return pl, nil
	}
	if xlog {
		logAxis(&pl.X)
	}
	if ylog {
		logAxis(&pl.Y)
	}
	if cfg.RatioTicks {
		if m, ok := ratioTicks(ys, ylog); ok {
			grid := plotter.NewGrid()
			grid.Vertical.Color = nil
			pl.Add(grid)
			pl.Y.Tick.Marker = m
		}
	}
	return pl, nil
}

func logAxis(a *plot.Axis) {
	a.Scale = plot.LogScale{}
	a.Tick.Marker = plot.LogTicks{Prec: -1}
	if a.Min == a.Max {
		// A single value; widen by a decade each way.
		a.Min /= 10
		a.Max *= 10
	}
}

// plottable returns the points of s that can be drawn on the given
// axes, with their error bars. Points with a non-finite coordinate,
// or a non-positive one on a log axis, are dropped. A NaN error draws
// no bar, and on a log Y axis a lower bar that would reach zero stops
// at the point.
func (s Series) plottable(xlog, ylog bool) (plotter.XYs, plotter.YErrors) {
	var xys plotter.XYs
	var errs plotter.YErrors
	for _, p := range s.Points {
		if !finite(p.X) || !finite(p.Y) || xlog && p.X <= 0 || ylog && p.Y <= 0 {
			continue
		}
		e := math.Abs(p.Err)
		if !finite(e) {
			e = 0
		}
		low := e
		if ylog && p.Y-low <= 0 {
			low = 0
		}
		xys = append(xys, plotter.XY{X: p.X, Y: p.Y})
		errs = append(errs, struct{ Low, High float64 }{low, e})
	}
	return xys, errs
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
