// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchchart

import (
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// glyphs is the sequence of series markers. The line glyphs are drawn
// heavier than plotutil's so they stay visible on print.
var glyphs = []draw.GlyphDrawer{
	draw.CircleGlyph{},
	draw.SquareGlyph{},
	draw.TriangleGlyph{},
	CrossGlyph{},
	TriUp{},
	TriDown{},
	draw.RingGlyph{},
	draw.BoxGlyph{},
	draw.PyramidGlyph{},
	draw.PlusGlyph{},
}

func glyph(i int) draw.GlyphDrawer {
	return glyphs[i%len(glyphs)]
}

const cosπover4 = vg.Length(.707106781202420)

// strokeGlyph strokes each segment of a glyph, given as pairs of unit
// offsets from pt scaled by the glyph radius.
func strokeGlyph(c *draw.Canvas, sty draw.GlyphStyle, pt vg.Point, segs [][4]vg.Length) {
	c.SetLineStyle(draw.LineStyle{Color: sty.Color, Width: vg.Points(1)})
	r := sty.Radius * cosπover4
	for _, s := range segs {
		var p vg.Path
		p.Move(vg.Point{X: pt.X + s[0]*r, Y: pt.Y + s[1]*r})
		p.Line(vg.Point{X: pt.X + s[2]*r, Y: pt.Y + s[3]*r})
		c.Stroke(p)
	}
}

// CrossGlyph is a glyph that draws a heavy X.
type CrossGlyph struct{}

// DrawGlyph implements the Glyph interface.
func (CrossGlyph) DrawGlyph(c *draw.Canvas, sty draw.GlyphStyle, pt vg.Point) {
	strokeGlyph(c, sty, pt, [][4]vg.Length{
		{-1, -1, 1, 1},
		{-1, 1, 1, -1},
	})
}

// TriUp is a glyph that draws an upward arrowhead over a bar.
type TriUp struct{}

// DrawGlyph implements the Glyph interface.
func (TriUp) DrawGlyph(c *draw.Canvas, sty draw.GlyphStyle, pt vg.Point) {
	strokeGlyph(c, sty, pt, [][4]vg.Length{
		{-1, -1, 0, 1},
		{1, -1, 0, 1},
		{-1, 0, 1, 0},
	})
}

// TriDown is a glyph that draws a downward arrowhead over a bar.
type TriDown struct{}

// DrawGlyph implements the Glyph interface.
func (TriDown) DrawGlyph(c *draw.Canvas, sty draw.GlyphStyle, pt vg.Point) {
	strokeGlyph(c, sty, pt, [][4]vg.Length{
		{-1, 1, 0, -1},
		{1, 1, 0, -1},
		{-1, 0, 1, 0},
	})
}
