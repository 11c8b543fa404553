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

package raster

import (
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
)

// linear applies the linear part of m to v.  The number of segments for
// a curve only depends on the size of the curve in device space, not on
// its position.
func linear(m matrix.Matrix, v vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: m[0]*v.X + m[2]*v.Y,
		Y: m[1]*v.X + m[3]*v.Y,
	}
}

// flattenQuad replaces the quadratic Bézier curve p0, p1, p2 by line
// segments.  The points are in glyph space.
func flattenQuad(m matrix.Matrix, flatness float64, p0, p1, p2 vec.Vec2, emit func(a, b vec.Vec2)) {
	// the distance between the curve and its chord is at most |dd|/4
	dd := p0.Sub(p1.Mul(2)).Add(p2)
	dev := linear(m, dd).Length() / 4

	n := 1
	if dev > flatness {
		n = int(math.Ceil(math.Sqrt(dev / flatness)))
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		q := p0.Mul(s * s).Add(p1.Mul(2 * s * t)).Add(p2.Mul(t * t))
		emit(prev, q)
		prev = q
	}
}

// flattenCube replaces the cubic Bézier curve p0, p1, p2, p3 by line
// segments, using Wang's formula for the number of segments.
func flattenCube(m matrix.Matrix, flatness float64, p0, p1, p2, p3 vec.Vec2, emit func(a, b vec.Vec2)) {
	dd1 := linear(m, p0.Sub(p1.Mul(2)).Add(p2)).Length()
	dd2 := linear(m, p1.Sub(p2.Mul(2)).Add(p3)).Length()

	n := 1
	if dd := max(dd1, dd2); dd > 0 {
		if k := math.Sqrt(3 * dd / (4 * flatness)); k > 1 {
			n = int(math.Ceil(k))
		}
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		q := p0.Mul(s * s * s).
			Add(p1.Mul(3 * s * s * t)).
			Add(p2.Mul(3 * s * t * t)).
			Add(p3.Mul(t * t * t))
		emit(prev, q)
		prev = q
	}
}
