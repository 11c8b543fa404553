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

import "seehuhn.de/go/geom/matrix"

// Outlines drawn through a glyph matrix.
var transformCases = []Case{
	{
		// font units with the y axis pointing up, 1000 units per em at
		// 24 pixels per em
		Name:   "font_units",
		Path:   box(80, 0, 250, 700),
		Width:  32,
		Height: 32,
		CTM:    matrix.Matrix{0.024, 0, 0, -0.024, 4, 26},
	},
	{
		Name:   "italic",
		Path:   letterH(),
		Width:  48,
		Height: 32,
		CTM:    matrix.Matrix{1, 0, -0.25, 1, 8, 0},
	},
	{
		Name:   "scale_half",
		Path:   ring(16, 16, 12, 14, 8, 10, false),
		Width:  16,
		Height: 16,
		Rule:   EvenOdd,
		CTM:    matrix.Scale(0.5, 0.5),
	},
	{
		Name:   "scale_2x",
		Path:   letterS(),
		Width:  64,
		Height: 64,
		CTM:    matrix.Scale(2, 2),
	},
	{
		Name:   "rotate_90deg",
		Path:   letterT(),
		Width:  32,
		Height: 32,
		CTM:    matrix.RotateDeg(90).Translate(32, 0),
	},
}
