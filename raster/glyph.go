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
	"fmt"
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"

	"seehuhn.de/go/blit"
)

// Glyph is a rendered outline.
type Glyph struct {
	Bitmap *blit.Bitmap

	// Left and Top give the device pixel at which the top-left corner of
	// Bitmap must be placed to reproduce the outline.
	Left, Top int
}

// Glyph renders the outline p into a new bitmap in the given glyph pixel
// mode.  Mono glyphs set every pixel which is at least half covered; the
// grays argument is ignored for them.  Gray and subpixel glyphs store the
// coverage rounded to grays levels, 0 to grays-1.
//
// For the subpixel modes the outline is rendered at three times the
// device resolution along the subpixel direction: LCD and LCD2 glyphs
// triple the horizontal resolution, LCDV and LCDV2 glyphs the vertical
// one.  LCD2 and LCDV2 store the samples of each pixel in blue, green, red
// order.
//
// Glyph ignores r.Clip; the bitmap always holds the whole outline.
func (r *Rasterizer) Glyph(p *path.Data, rule Rule, mode blit.PixelMode, grays int) (*Glyph, error) {
	sx, sy := 1, 1
	switch mode {
	case blit.Mono, blit.Gray:
		// one sample per pixel
	case blit.LCD, blit.LCD2:
		sx = 3
	case blit.LCDV, blit.LCDV2:
		sy = 3
	default:
		return nil, fmt.Errorf("raster: cannot render %s glyphs: %w",
			mode, blit.ErrUnsupportedSource)
	}
	if mode == blit.Mono {
		grays = 0
	} else if grays < 2 || grays > 256 {
		return nil, fmt.Errorf("raster: %d gray levels: %w", grays, blit.ErrBadArgument)
	}

	fx, fy := float64(sx), float64(sy)
	m := r.CTM
	m = matrix.Matrix{fx * m[0], fy * m[1], fx * m[2], fy * m[3], fx * m[4], fy * m[5]}

	if !r.buildEdges(p, m) {
		return &Glyph{Bitmap: blit.NewBitmap(mode, grays, 0, 0)}, nil
	}

	// align the box to whole pixels
	xMin := floorTo(r.boxX0, sx)
	xMax := ceilTo(r.boxX1, sx)
	yMin := floorTo(r.boxY0, sy)
	yMax := ceilTo(r.boxY1, sy)

	bm := blit.NewBitmap(mode, grays, xMax-xMin, yMax-yMin)
	r.scan(xMin, xMax, yMin, yMax, rule, func(y, x0 int, cov []float32) {
		quantize(bm, y-yMin, x0-xMin, cov)
	})
	if mode == blit.LCD2 || mode == blit.LCDV2 {
		swapRedBlue(bm)
	}

	return &Glyph{Bitmap: bm, Left: xMin / sx, Top: yMin / sy}, nil
}

// quantize stores the coverage values of one row, starting at pixel x.
func quantize(bm *blit.Bitmap, y, x int, cov []float32) {
	row := bm.Row(y)
	if bm.Mode == blit.Mono {
		for i, c := range cov {
			if c >= 0.5 {
				k := x + i
				row[k>>3] |= 0x80 >> (k & 7)
			}
		}
		return
	}

	top := float32(bm.Grays - 1)
	for i, c := range cov {
		row[x+i] = byte(min(c, 1)*top + 0.5)
	}
}

// swapRedBlue turns subpixel samples stored in red, green, blue order
// into blue, green, red order.
func swapRedBlue(bm *blit.Bitmap) {
	if bm.Mode == blit.LCD2 {
		for y := range bm.Rows {
			row := bm.Row(y)
			for x := 0; x+2 < bm.Width; x += 3 {
				row[x], row[x+2] = row[x+2], row[x]
			}
		}
		return
	}
	for y := 0; y+2 < bm.Rows; y += 3 {
		r, b := bm.Row(y), bm.Row(y+2)
		for x := range bm.Width {
			r[x], b[x] = b[x], r[x]
		}
	}
}

// floorTo rounds v down to a multiple of s.
func floorTo(v float64, s int) int {
	return int(math.Floor(v/float64(s))) * s
}

// ceilTo rounds v up to a multiple of s.
func ceilTo(v float64, s int) int {
	return int(math.Ceil(v/float64(s))) * s
}
