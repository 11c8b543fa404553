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
	"slices"
)

// Every edge piece inside a pixel contributes two numbers:
//
//	cover = ±dy                 (+ for downward edges)
//	area  = cover * (1 - xFrac)
//
// where dy is the vertical extent of the piece and xFrac the horizontal
// position of its midpoint inside the pixel.  Summing cover from the left
// end of a row gives the winding number left of each pixel; adding area
// gives the signed covered fraction of the pixel itself.
//
// Glyphs are small, so the whole bounding box is accumulated in one go
// and then integrated row by row.

// scan accumulates all edges over the device rectangle [xMin, xMax) x
// [yMin, yMax) and emits the coverage of every touched row.
func (r *Rasterizer) scan(xMin, xMax, yMin, yMax int, rule Rule, emit func(y, xMin int, coverage []float32)) {
	w := xMax - xMin
	h := yMax - yMin

	n := w * h
	r.cover = slices.Grow(r.cover[:0], n)[:n]
	r.area = slices.Grow(r.area[:0], n)[:n]
	r.used = slices.Grow(r.used[:0], h)[:h]
	clear(r.cover)
	clear(r.area)
	clear(r.used)

	for i := range r.edges {
		e := &r.edges[i]
		top := max(int(math.Floor(min(e.y0, e.y1))), yMin)
		bot := min(int(math.Floor(max(e.y0, e.y1)))+1, yMax)
		for y := top; y < bot; y++ {
			row := y - yMin
			k := row * w
			accumulate(e, y, r.cover[k:k+w], r.area[k:k+w], xMin, xMax)
			r.used[row] = true
		}
	}

	for row := range h {
		if !r.used[row] {
			continue
		}
		k := row * w
		coverage := r.cover[k : k+w]
		integrate(coverage, r.area[k:k+w], rule)

		lo, hi := 0, w
		for lo < hi && coverage[lo] == 0 {
			lo++
		}
		for hi > lo && coverage[hi-1] == 0 {
			hi--
		}
		if lo < hi {
			emit(yMin+row, xMin+lo, coverage[lo:hi])
		}
	}
}

// accumulate adds the part of e inside the scanline [y, y+1) to the cover
// and area buffers of that row.  Index 0 of the buffers is pixel xMin.
// Edge pieces left of xMin are folded into pixel xMin, which keeps the
// winding number right; pieces right of xMax do not matter.
func accumulate(e *edge, y int, cover, area []float32, xMin, xMax int) {
	top := max(float64(y), min(e.y0, e.y1))
	bot := min(float64(y+1), max(e.y0, e.y1))
	if bot <= top {
		return
	}

	dir := float32(1)
	if e.y1 < e.y0 {
		dir = -1
	}

	xa := e.x0 + e.dxdy*(top-e.y0)
	xb := e.x0 + e.dxdy*(bot-e.y0)
	left := int(math.Floor(min(xa, xb)))
	right := int(math.Floor(max(xa, xb)))

	switch {
	case right < xMin:
		c := dir * float32(bot-top)
		cover[0] += c
		area[0] += c
		return
	case left >= xMax:
		return
	}

	add := func(pix int, t, b float64) {
		c := dir * float32(b-t)
		if pix < xMin {
			cover[0] += c
			area[0] += c
			return
		}
		if pix >= xMax {
			return
		}
		xMid := e.x0 + e.dxdy*((t+b)/2-e.y0)
		i := pix - xMin
		cover[i] += c
		area[i] += c * float32(1-(xMid-float64(pix)))
	}

	if left == right {
		add(left, top, bot)
		return
	}

	// the piece crosses pixel columns; split it at the column boundaries
	dydx := 1 / e.dxdy
	for pix := left; pix <= right; pix++ {
		ya := e.y0 + dydx*(float64(pix)-e.x0)
		yb := e.y0 + dydx*(float64(pix+1)-e.x0)
		t := max(min(ya, yb), top)
		b := min(max(ya, yb), bot)
		if b > t {
			add(pix, t, b)
		}
	}
}

// integrate turns the accumulated cover and area values of one row into
// coverage, in place.
func integrate(cover, area []float32, rule Rule) {
	var acc float32
	for i := range cover {
		v := acc + area[i]
		acc += cover[i]

		if v < 0 {
			v = -v
		}
		if rule == EvenOdd {
			v -= 2 * float32(math.Floor(float64(v/2)))
			if v > 1 {
				v = 2 - v
			}
		} else if v > 1 {
			v = 1
		}
		cover[i] = v
	}
}
