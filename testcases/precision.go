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

// Shapes which stress the accuracy of the coverage computation.
var precisionCases = []Case{
	{
		Name:   "subpixel_box",
		Path:   box(10.3, 10.3, 10.7, 10.7),
		Width:  16,
		Height: 16,
	},
	{
		Name:   "thin_diagonal",
		Path:   polygon(2, 2, 3, 2, 14, 14, 13, 14),
		Width:  16,
		Height: 16,
	},
	{
		Name:   "near_integer",
		Path:   box(3.999999, 4.000001, 12.000001, 11.999999),
		Width:  16,
		Height: 16,
	},
	{
		// glyph coordinates far from the origin, moved back by the CTM
		Name:   "far_origin",
		Path:   box(100004.25, 100004.25, 100011.75, 100011.75),
		Width:  16,
		Height: 16,
		CTM:    matrix.Matrix{1, 0, 0, 1, -100000, -100000},
	},
}
