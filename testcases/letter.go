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

// Letter-like shapes with diagonals, serifs and curves.
var letterCases = []Case{
	{
		Name:   "v",
		Path:   polygon(4, 4, 9, 4, 16, 22, 23, 4, 28, 4, 18.5, 28, 13.5, 28),
		Width:  32,
		Height: 32,
	},
	{
		// two crossing strokes; the crossing is covered once
		Name:   "x",
		Path:   letterX(),
		Width:  32,
		Height: 32,
	},
	{
		Name:   "x_evenodd",
		Path:   letterX(),
		Width:  32,
		Height: 32,
		Rule:   EvenOdd,
	},
	{
		Name:   "serif_i",
		Path:   polygon(10, 4, 22, 4, 22, 6, 18, 6, 18, 26, 22, 26, 22, 28, 10, 28, 10, 26, 14, 26, 14, 6, 10, 6),
		Width:  32,
		Height: 32,
	},
	{
		Name:   "s",
		Path:   letterS(),
		Width:  32,
		Height: 32,
	},
	{
		Name:   "c",
		Path:   letterC(),
		Width:  32,
		Height: 32,
	},
}

func letterX() *path.Data {
	p := polygon(4, 4, 9, 4, 28, 28, 23, 28)
	return p.MoveTo(pt(23, 4)).
		LineTo(pt(28, 4)).
		LineTo(pt(9, 28)).
		LineTo(pt(4, 28)).
		Close()
}

// letterS builds an S from quadratic curves, the way TrueType outlines
// describe curves.
func letterS() *path.Data {
	return (&path.Data{}).
		MoveTo(pt(24, 8)).
		QuadTo(pt(20, 4), pt(15, 4)).
		QuadTo(pt(7, 4), pt(7, 10)).
		QuadTo(pt(7, 15), pt(15, 17)).
		QuadTo(pt(21, 18.5), pt(21, 22)).
		QuadTo(pt(21, 25), pt(16, 25)).
		QuadTo(pt(11, 25), pt(8, 21)).
		LineTo(pt(6, 24)).
		QuadTo(pt(10, 28), pt(16, 28)).
		QuadTo(pt(25, 28), pt(25, 21.5)).
		QuadTo(pt(25, 16), pt(17, 14)).
		QuadTo(pt(11, 12.5), pt(11, 10)).
		QuadTo(pt(11, 7), pt(15, 7)).
		QuadTo(pt(19, 7), pt(22, 10.5)).
		Close()
}

// letterC builds a C as an open arc of cubic curves with a thick stroke.
func letterC() *path.Data {
	const k = kappa
	return (&path.Data{}).
		MoveTo(pt(26, 9)).
		CubeTo(pt(24, 5.5), pt(20.5, 4), pt(16, 4)).
		CubeTo(pt(16-12*k, 4), pt(4, 16-12*k), pt(4, 16)).
		CubeTo(pt(4, 16+12*k), pt(16-12*k, 28), pt(16, 28)).
		CubeTo(pt(20.5, 28), pt(24, 26.5), pt(26, 23)).
		LineTo(pt(22.5, 21.5)).
		CubeTo(pt(21, 23.5), pt(19, 24.5), pt(16, 24.5)).
		CubeTo(pt(16-8.5*k, 24.5), pt(8, 16+8.5*k), pt(8, 16)).
		CubeTo(pt(8, 16-8.5*k), pt(16-8.5*k, 7.5), pt(16, 7.5)).
		CubeTo(pt(19, 7.5), pt(21, 8.5), pt(22.5, 10.5)).
		Close()
}
