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

package testcases

import "seehuhn.de/go/geom/path"

// Round shapes with counters.
var bowlCases = []Case{
	{
		Name:   "o_evenodd",
		Path:   ring(16, 16, 12, 14, 8, 10, false),
		Width:  32,
		Height: 32,
		Rule:   EvenOdd,
	},
	{
		Name:   "o_nonzero",
		Path:   ring(16, 16, 12, 14, 8, 10, true),
		Width:  32,
		Height: 32,
	},
	{
		// same direction for both contours: nonzero fills the counter
		Name:   "o_filled",
		Path:   ring(16, 16, 12, 14, 8, 10, false),
		Width:  32,
		Height: 32,
	},
	{
		Name:   "dot",
		Path:   addEllipse(&path.Data{}, 16.3, 16.6, 2.2, 2.2, false),
		Width:  32,
		Height: 32,
	},
	{
		Name:   "letter_d",
		Path:   letterD(),
		Width:  32,
		Height: 32,
	},
}

// ring builds an outer and an inner ellipse around the same center.
func ring(cx, cy, rx, ry, ix, iy float64, reverseInner bool) *path.Data {
	p := addEllipse(&path.Data{}, cx, cy, rx, ry, false)
	return addEllipse(p, cx, cy, ix, iy, reverseInner)
}

// letterD builds a D: a stem joined to a half ellipse, with a counter
// running the other way.
func letterD() *path.Data {
	const k = kappa
	p := (&path.Data{}).
		MoveTo(pt(6, 4)).
		LineTo(pt(14, 4)).
		CubeTo(pt(14+12*k, 4), pt(26, 16-12*k), pt(26, 16)).
		CubeTo(pt(26, 16+12*k), pt(14+12*k, 28), pt(14, 28)).
		LineTo(pt(6, 28)).
		Close()
	return p.MoveTo(pt(10, 8)).
		LineTo(pt(10, 24)).
		LineTo(pt(14, 24)).
		CubeTo(pt(14+8*k, 24), pt(22, 16+8*k), pt(22, 16)).
		CubeTo(pt(22, 16-8*k), pt(14+8*k, 8), pt(14, 8)).
		Close()
}
