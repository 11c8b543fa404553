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

package main

import (
	"encoding/binary"
	"image"
	"image/color"
	"image/png"
	"os"

	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"

	"seehuhn.de/go/blit"
)

// toImage converts a framebuffer into an image.  Palette indices and gray
// levels are shown as a gray ramp.
func toImage(bm *blit.Bitmap) image.Image {
	rect := image.Rect(0, 0, bm.Width, bm.Rows)

	switch bm.Mode {
	case blit.Mono, blit.Pal4, blit.Pal8:
		img := image.NewPaletted(rect, grayRamp(bm.Mode))
		for y := range bm.Rows {
			row := bm.Row(y)
			for x := range bm.Width {
				img.SetColorIndex(x, y, pixelIndex(bm.Mode, row, x))
			}
		}
		return img

	case blit.Gray:
		img := image.NewGray(rect)
		top := max(bm.Grays-1, 1)
		for y := range bm.Rows {
			row := bm.Row(y)
			for x, v := range row[:bm.Width] {
				img.Pix[y*img.Stride+x] = byte(int(v) * 255 / top)
			}
		}
		return img
	}

	img := image.NewRGBA(rect)
	for y := range bm.Rows {
		row := bm.Row(y)
		for x := range bm.Width {
			var c color.RGBA
			switch bm.Mode {
			case blit.RGB555:
				v := binary.LittleEndian.Uint16(row[2*x:])
				c = color.RGBA{R: expand(v>>10, 5), G: expand(v>>5, 5), B: expand(v, 5), A: 255}
			case blit.RGB565:
				v := binary.LittleEndian.Uint16(row[2*x:])
				c = color.RGBA{R: expand(v>>11, 5), G: expand(v>>5, 6), B: expand(v, 5), A: 255}
			case blit.RGB24:
				c = color.RGBA{R: row[3*x], G: row[3*x+1], B: row[3*x+2], A: 255}
			case blit.RGB32:
				// the alpha channel holds coverage, not opacity
				c = color.RGBA{R: row[4*x], G: row[4*x+1], B: row[4*x+2], A: 255}
			}
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

func pixelIndex(mode blit.PixelMode, row []byte, x int) uint8 {
	switch mode {
	case blit.Mono:
		return (row[x>>3] >> (7 - x&7)) & 1
	case blit.Pal4:
		if x&1 == 0 {
			return row[x>>1] >> 4
		}
		return row[x>>1] & 0x0F
	default:
		return row[x]
	}
}

func grayRamp(mode blit.PixelMode) color.Palette {
	n := 256
	switch mode {
	case blit.Mono:
		n = 2
	case blit.Pal4:
		n = 16
	}
	pal := make(color.Palette, n)
	for i := range pal {
		v := uint8(i * 255 / (n - 1))
		pal[i] = color.Gray{Y: v}
	}
	return pal
}

// expand scales the low bits of an n-bit channel value to 8 bits.
func expand(v uint16, bits int) uint8 {
	top := uint16(1)<<bits - 1
	return uint8(uint32(v&top) * 255 / uint32(top))
}

// writeImage enlarges img by the given factor and writes it to fname.
func writeImage(fname, format string, img image.Image, scale int) (err error) {
	if scale > 1 {
		b := img.Bounds()
		dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*scale, b.Dy()*scale))
		draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
		img = dst
	}

	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	if format == "bmp" {
		return bmp.Encode(f, img)
	}
	return png.Encode(f, img)
}
