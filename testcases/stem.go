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

// Straight stems and bars, at whole and fractional pixel positions.
var stemCases = []Case{
	{
		Name:   "vertical",
		Path:   box(14, 4, 18, 28),
		Width:  32,
		Height: 32,
	},
	{
		Name:   "vertical_half",
		Path:   box(14.5, 4, 18.5, 28),
		Width:  32,
		Height: 32,
	},
	{
		Name:   "hairline",
		Path:   box(15.2, 4, 15.5, 28),
		Width:  32,
		Height: 32,
	},
	{
		Name:   "horizontal",
		Path:   box(4, 14.25, 28, 17.75),
		Width:  32,
		Height: 32,
	},
	{
		Name:   "letter_t",
		Path:   letterT(),
		Width:  32,
		Height: 32,
	},
	{
		Name:   "letter_h",
		Path:   letterH(),
		Width:  32,
		Height: 32,
	},
}

// letterT builds a T from two overlapping boxes; the overlap must not be
// counted twice under the nonzero rule.
func letterT() *path.Data {
	p := box(6, 4, 26, 8)
	return p.MoveTo(pt(14, 4)).
		LineTo(pt(18, 4)).
		LineTo(pt(18, 28)).
		LineTo(pt(14, 28)).
		Close()
}

// letterH builds an H as a single polygon.
func letterH() *path.Data {
	return polygon(
		6, 4, 10, 4, 10, 14, 22, 14, 22, 4, 26, 4,
		26, 28, 22, 28, 22, 18, 10, 18, 10, 28, 6, 28,
	)
}
