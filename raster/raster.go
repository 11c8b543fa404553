// seehuhn.de/go/blit - compositing of glyph bitmaps
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package raster turns glyph outlines into coverage bitmaps.
//
// Outlines are given as [path.Data] in glyph space.  The Rasterizer maps
// them to device space with its CTM, computes the exact area coverage of
// every pixel, and either reports coverage row by row ([Rasterizer.Fill])
// or quantizes it into a [blit.Bitmap] in one of the glyph pixel modes
// ([Rasterizer.Glyph]).
package raster

//go:generate go run ../testcases/genpdf

import (
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Rule selects how the winding number of a point decides whether the
// point is inside the outline.
type Rule int

const (
	NonZero Rule = iota
	EvenOdd
)

func (r Rule) String() string {
	if r == EvenOdd {
		return "evenodd"
	}
	return "nonzero"
}

// Rasterizer computes pixel coverage for filled outlines.  Coverage is
// the fraction of a pixel's area inside the outline, between 0 and 1.
//
// Internal buffers are reused between calls, so a single Rasterizer
// should be kept for rendering many glyphs.  A Rasterizer is not safe for
// concurrent use.
type Rasterizer struct {
	// CTM maps glyph space to device space.  It must be non-singular.
	CTM matrix.Matrix

	// Clip restricts the output to this device rectangle.  The
	// coordinates must be integers.
	Clip rect.Rect

	// Flatness is the maximal distance, in device pixels, between a curve
	// and the line segments which replace it.
	Flatness float64

	cover []float32 // signed vertical extent per pixel; reused for output
	area  []float32 // area right of the edge within the pixel
	used  []bool    // rows touched by at least one edge
	edges []edge

	// device space bounding box of all edges
	hasBox       bool
	boxX0, boxX1 float64
	boxY0, boxY1 float64
}

// edge is a non-horizontal line segment in device space.
type edge struct {
	x0, y0 float64
	x1, y1 float64
	dxdy   float64
}

// NewRasterizer returns a Rasterizer with the identity CTM and the given
// clip rectangle.
func NewRasterizer(clip rect.Rect) *Rasterizer {
	return &Rasterizer{
		CTM:      matrix.Identity,
		Clip:     clip,
		Flatness: defaultFlatness,
	}
}

// Reset restores the default transformation and flatness and sets a new
// clip rectangle.  The internal buffers are kept.
func (r *Rasterizer) Reset(clip rect.Rect) {
	r.CTM = matrix.Identity
	r.Clip = clip
	r.Flatness = defaultFlatness
}

const (
	defaultFlatness = 0.25

	// edges with a smaller vertical extent contribute nothing
	minEdgeHeight = 1e-10
)

// Fill computes the coverage of the outline p.  For every device row
// which has non-zero coverage inside the clip rectangle, emit is called
// once with the coverage of the pixels xMin, xMin+1, ...  The coverage
// slice is only valid during the call.
func (r *Rasterizer) Fill(p *path.Data, rule Rule, emit func(y, xMin int, coverage []float32)) {
	if !r.buildEdges(p, r.CTM) {
		return
	}
	xMin := max(int(math.Floor(r.boxX0)), int(r.Clip.LLx))
	xMax := min(int(math.Floor(r.boxX1))+1, int(r.Clip.URx))
	yMin := max(int(math.Floor(r.boxY0)), int(r.Clip.LLy))
	yMax := min(int(math.Floor(r.boxY1))+1, int(r.Clip.URy))
	if xMin >= xMax || yMin >= yMax {
		return
	}
	r.scan(xMin, xMax, yMin, yMax, rule, emit)
}

// buildEdges flattens p, maps it to device space with m and collects the
// non-horizontal edges.  The result is false if there are no edges.
func (r *Rasterizer) buildEdges(p *path.Data, m matrix.Matrix) bool {
	r.edges = r.edges[:0]
	r.hasBox = false

	add := func(a, b vec.Vec2) {
		r.addEdge(m, a, b)
	}

	var cur, start vec.Vec2
	k := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			if cur != start {
				add(cur, start)
			}
			cur = p.Coords[k]
			start = cur
			k++
		case path.CmdLineTo:
			add(cur, p.Coords[k])
			cur = p.Coords[k]
			k++
		case path.CmdQuadTo:
			flattenQuad(m, r.Flatness, cur, p.Coords[k], p.Coords[k+1], add)
			cur = p.Coords[k+1]
			k += 2
		case path.CmdCubeTo:
			flattenCube(m, r.Flatness, cur, p.Coords[k], p.Coords[k+1], p.Coords[k+2], add)
			cur = p.Coords[k+2]
			k += 3
		case path.CmdClose:
			if cur != start {
				add(cur, start)
			}
			cur = start
		}
	}

	// open subpaths are closed implicitly when filling
	if cur != start {
		add(cur, start)
	}
	return len(r.edges) > 0
}

func (r *Rasterizer) addEdge(m matrix.Matrix, a, b vec.Vec2) {
	x0 := m[0]*a.X + m[2]*a.Y + m[4]
	y0 := m[1]*a.X + m[3]*a.Y + m[5]
	x1 := m[0]*b.X + m[2]*b.Y + m[4]
	y1 := m[1]*b.X + m[3]*b.Y + m[5]

	dy := y1 - y0
	if math.Abs(dy) < minEdgeHeight {
		return
	}
	r.edges = append(r.edges, edge{
		x0: x0, y0: y0,
		x1: x1, y1: y1,
		dxdy: (x1 - x0) / dy,
	})

	lx, hx := min(x0, x1), max(x0, x1)
	ly, hy := min(y0, y1), max(y0, y1)
	if !r.hasBox {
		r.boxX0, r.boxX1, r.boxY0, r.boxY1 = lx, hx, ly, hy
		r.hasBox = true
		return
	}
	r.boxX0 = min(r.boxX0, lx)
	r.boxX1 = max(r.boxX1, hx)
	r.boxY0 = min(r.boxY0, ly)
	r.boxY1 = max(r.boxY1, hy)
}
