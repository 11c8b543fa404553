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
	"image"
	"image/color"
	"testing"

	"golang.org/x/image/vector"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/blit"
)

var benchSizes = []int{20, 200}

// BenchmarkFillO measures the coverage computation for the letter "O".
func BenchmarkFillO(b *testing.B) {
	for _, size := range benchSizes {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			clip := rect.Rect{URx: float64(size), URy: float64(size)}
			r := NewRasterizer(clip)
			dst := image.NewAlpha(image.Rect(0, 0, size, size))
			p := makeO(float64(size))

			b.ReportAllocs()
			for b.Loop() {
				r.Reset(clip)
				r.Fill(p, EvenOdd, func(y, xMin int, coverage []float32) {
					row := dst.Pix[y*dst.Stride+xMin:]
					for i, c := range coverage {
						row[i] = uint8(min(c, 1) * 255)
					}
				})
			}
		})
	}
}

// BenchmarkVectorO draws the same shape with x/image/vector, for
// comparison.
func BenchmarkVectorO(b *testing.B) {
	for _, size := range benchSizes {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			r := vector.NewRasterizer(size, size)
			dst := image.NewAlpha(image.Rect(0, 0, size, size))
			src := image.NewUniform(color.Alpha{A: 255})

			center := float32(size) / 2
			outer := float32(size) * 0.45
			inner := float32(size) * 0.30

			b.ReportAllocs()
			for b.Loop() {
				r.Reset(size, size)
				addCircleToVector(r, center, center, outer, false)
				addCircleToVector(r, center, center, inner, true)
				r.Draw(dst, dst.Bounds(), src, image.Point{})
			}
		})
	}
}

// BenchmarkGlyphO renders "O" as an LCD glyph and composites it onto an
// RGB24 canvas.
func BenchmarkGlyphO(b *testing.B) {
	for _, size := range benchSizes {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			r := NewRasterizer(rect.Rect{})
			p := makeO(float64(size))
			canvas := blit.NewBitmap(blit.RGB24, 0, size, size)
			fg := blit.RGBA(blit.RGB24, 0, 0, 0, 1)

			b.ReportAllocs()
			for b.Loop() {
				g, err := r.Glyph(p, EvenOdd, blit.LCD, 256)
				if err != nil {
					b.Fatal(err)
				}
				err = blit.BlitGlyphToBitmap(canvas, g.Bitmap, g.Left, g.Top, fg)
				if err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// makeO returns an outline of the letter "O" filling a square of the
// given size.  The outer contour runs clockwise, the inner one
// counter-clockwise.
func makeO(size float64) *path.Data {
	c := size / 2
	p := &path.Data{}
	addCircle(p, c, c, size*0.45, false)
	addCircle(p, c, c, size*0.30, true)
	return p
}

func addCircle(p *path.Data, cx, cy, rad float64, reverse bool) {
	const k = 0.5522847498
	kr := k * rad

	p.MoveTo(pt(cx, cy-rad))
	if reverse {
		p.CubeTo(pt(cx-kr, cy-rad), pt(cx-rad, cy-kr), pt(cx-rad, cy))
		p.CubeTo(pt(cx-rad, cy+kr), pt(cx-kr, cy+rad), pt(cx, cy+rad))
		p.CubeTo(pt(cx+kr, cy+rad), pt(cx+rad, cy+kr), pt(cx+rad, cy))
		p.CubeTo(pt(cx+rad, cy-kr), pt(cx+kr, cy-rad), pt(cx, cy-rad))
	} else {
		p.CubeTo(pt(cx+kr, cy-rad), pt(cx+rad, cy-kr), pt(cx+rad, cy))
		p.CubeTo(pt(cx+rad, cy+kr), pt(cx+kr, cy+rad), pt(cx, cy+rad))
		p.CubeTo(pt(cx-kr, cy+rad), pt(cx-rad, cy+kr), pt(cx-rad, cy))
		p.CubeTo(pt(cx-rad, cy-kr), pt(cx-kr, cy-rad), pt(cx, cy-rad))
	}
	p.Close()
}

func addCircleToVector(r *vector.Rasterizer, cx, cy, rad float32, reverse bool) {
	const k = float32(0.5522847498)
	kr := k * rad

	r.MoveTo(cx, cy-rad)
	if reverse {
		r.CubeTo(cx-kr, cy-rad, cx-rad, cy-kr, cx-rad, cy)
		r.CubeTo(cx-rad, cy+kr, cx-kr, cy+rad, cx, cy+rad)
		r.CubeTo(cx+kr, cy+rad, cx+rad, cy+kr, cx+rad, cy)
		r.CubeTo(cx+rad, cy-kr, cx+kr, cy-rad, cx, cy-rad)
	} else {
		r.CubeTo(cx+kr, cy-rad, cx+rad, cy-kr, cx+rad, cy)
		r.CubeTo(cx+rad, cy+kr, cx+kr, cy+rad, cx, cy+rad)
		r.CubeTo(cx-kr, cy+rad, cx-rad, cy+kr, cx-rad, cy)
		r.CubeTo(cx-rad, cy-kr, cx-kr, cy-rad, cx, cy-rad)
	}
	r.ClosePath()
}
