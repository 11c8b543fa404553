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

// Package testcases is a catalogue of glyph outlines used by the tests,
// benchmarks and tools of this module.
package testcases

import (
	"maps"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// Case is a glyph outline together with the canvas it is drawn on.
type Case struct {
	Name   string        // lowercase a-z, 0-9 and _ only
	Path   *path.Data    // the outline, y axis pointing down
	Width  int           // canvas width in pixels
	Height int           // canvas height in pixels
	Rule   FillRule      // rule for the interior of the outline
	CTM    matrix.Matrix // glyph space to device space (zero value means identity)
}

// Transform returns the glyph-to-device transformation of c.
func (c Case) Transform() matrix.Matrix {
	if c.CTM == (matrix.Matrix{}) {
		return matrix.Identity
	}
	return c.CTM
}

// FillRule specifies the rule for determining interior points.
type FillRule int

const (
	NonZero FillRule = iota
	EvenOdd
)

// All contains all test cases, grouped by category.  The category name is
// used as a prefix in file names.
var All = map[string][]Case{
	"stem":      stemCases,
	"bowl":      bowlCases,
	"letter":    letterCases,
	"transform": transformCases,
	"precision": precisionCases,
}

// Each calls fn for every test case, sorted by category.  The name
// combines category and case name.
func Each(fn func(name string, tc Case)) {
	for _, category := range slices.Sorted(maps.Keys(All)) {
		for _, tc := range All[category] {
			fn(category+"_"+tc.Name, tc)
		}
	}
}

func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}

// box builds a rectangle, clockwise on screen.
func box(x0, y0, x1, y1 float64) *path.Data {
	return (&path.Data{}).
		MoveTo(pt(x0, y0)).
		LineTo(pt(x1, y0)).
		LineTo(pt(x1, y1)).
		LineTo(pt(x0, y1)).
		Close()
}

// polygon builds a closed polygon through the given points, given as
// x, y pairs.
func polygon(xy ...float64) *path.Data {
	p := (&path.Data{}).MoveTo(pt(xy[0], xy[1]))
	for i := 2; i+1 < len(xy); i += 2 {
		p = p.LineTo(pt(xy[i], xy[i+1]))
	}
	return p.Close()
}

// kappa for cubic Bezier approximation of a quarter circle
const kappa = 0.5522847498307936

// addEllipse appends an ellipse to p, made of four cubic Bezier curves.
// If reverse is true, the ellipse runs counter-clockwise on screen.
func addEllipse(p *path.Data, cx, cy, rx, ry float64, reverse bool) *path.Data {
	kx, ky := rx*kappa, ry*kappa
	if reverse {
		return p.MoveTo(pt(cx+rx, cy)).
			CubeTo(pt(cx+rx, cy-ky), pt(cx+kx, cy-ry), pt(cx, cy-ry)).
			CubeTo(pt(cx-kx, cy-ry), pt(cx-rx, cy-ky), pt(cx-rx, cy)).
			CubeTo(pt(cx-rx, cy+ky), pt(cx-kx, cy+ry), pt(cx, cy+ry)).
			CubeTo(pt(cx+kx, cy+ry), pt(cx+rx, cy+ky), pt(cx+rx, cy)).
			Close()
	}
	return p.MoveTo(pt(cx+rx, cy)).
		CubeTo(pt(cx+rx, cy+ky), pt(cx+kx, cy+ry), pt(cx, cy+ry)).
		CubeTo(pt(cx-kx, cy+ry), pt(cx-rx, cy+ky), pt(cx-rx, cy)).
		CubeTo(pt(cx-rx, cy-ky), pt(cx-kx, cy-ry), pt(cx, cy-ry)).
		CubeTo(pt(cx+kx, cy-ry), pt(cx+rx, cy-ky), pt(cx+rx, cy)).
		Close()
}
