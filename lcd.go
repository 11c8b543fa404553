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

package blit

// Subpixel glyphs carry three coverage samples per pixel, one for each of
// the red, green and blue channels of an RGB24 target.

// subpixel order of the red, green and blue samples within a pixel
var (
	orderRGB = [3]int{0, 1, 2}
	orderBGR = [3]int{2, 1, 0}
)

// eachSubpixel calls fn for every visible glyph pixel with at least one
// non-zero sample.  For horizontal glyphs the samples of a pixel are
// consecutive bytes; for vertical glyphs they are in consecutive rows.
func (b *blitter) eachSubpixel(order [3]int, vertical bool, fn func(px []byte, v0, v1, v2 int)) {
	src := b.src.Buffer
	dst := b.dst.Buffer
	line := b.readLine

	var read, step, rowStep int
	var offs [3]int
	if vertical {
		read = b.read + b.xread
		step = 1
		rowStep = 3 * line
		for i, k := range order {
			offs[i] = k * line
		}
	} else {
		read = b.read + 3*b.xread
		step = 3
		rowStep = line
		offs = order
	}
	write := b.write + 3*b.xwrite

	for range b.height {
		r := read
		for x := range b.width {
			v0 := int(src[r+offs[0]])
			v1 := int(src[r+offs[1]])
			v2 := int(src[r+offs[2]])
			if v0|v1|v2 != 0 {
				i := write + 3*x
				fn(dst[i:i+3], v0, v1, v2)
			}
			r += step
		}
		read += rowStep
		write += b.writeLine
	}
}

// composeSubpixels blends one RGB24 pixel with three independent
// coverage values.
func composeSubpixels(px []byte, c Color, v0, v1, v2, max int) {
	if v0 == max && v1 == max && v2 == max {
		copy(px, c.Chroma[:3])
		return
	}
	px[0] = compose(px[0], c.Chroma[0], v0, max)
	px[1] = compose(px[1], c.Chroma[1], v1, max)
	px[2] = compose(px[2], c.Chroma[2], v2, max)
}

func blitLCDToRGB24(b *blitter, c Color, max int) {
	b.eachSubpixel(orderRGB, false, func(px []byte, v0, v1, v2 int) {
		composeSubpixels(px, c, v0, v1, v2, max)
	})
}

func blitLCD2ToRGB24(b *blitter, c Color, max int) {
	b.eachSubpixel(orderBGR, false, func(px []byte, v0, v1, v2 int) {
		composeSubpixels(px, c, v0, v1, v2, max)
	})
}

func blitLCDVToRGB24(b *blitter, c Color, max int) {
	b.eachSubpixel(orderRGB, true, func(px []byte, v0, v1, v2 int) {
		composeSubpixels(px, c, v0, v1, v2, max)
	})
}

func blitLCDV2ToRGB24(b *blitter, c Color, max int) {
	b.eachSubpixel(orderBGR, true, func(px []byte, v0, v1, v2 int) {
		composeSubpixels(px, c, v0, v1, v2, max)
	})
}

// blitLCD8 is the 256-level path for horizontal glyphs.  Unlike the gray
// version there are no thresholds: only all-zero pixels are skipped and
// only all-255 pixels are stored unblended.
func blitLCD8(b *blitter, c Color, order [3]int) {
	src := b.src.Buffer
	dst := b.dst.Buffer
	sr := int(c.Chroma[0])
	sg := int(c.Chroma[1])
	sb := int(c.Chroma[2])

	read := b.read + 3*b.xread
	write := b.write + 3*b.xwrite
	for range b.height {
		for x := range b.width {
			r := read + 3*x
			v0 := int(src[r+order[0]])
			v1 := int(src[r+order[1]])
			v2 := int(src[r+order[2]])
			if v0|v1|v2 == 0 {
				continue
			}

			i := write + 3*x
			if v0 == 255 && v1 == 255 && v2 == 255 {
				dst[i] = byte(sr)
				dst[i+1] = byte(sg)
				dst[i+2] = byte(sb)
				continue
			}
			dr := int(dst[i])
			dg := int(dst[i+1])
			db := int(dst[i+2])
			dst[i] = byte(dr + (sr-dr)*v0>>8)
			dst[i+1] = byte(dg + (sg-dg)*v1>>8)
			dst[i+2] = byte(db + (sb-db)*v2>>8)
		}
		read += b.readLine
		write += b.writeLine
	}
}

func blitLCD8ToRGB24(b *blitter, c Color) {
	blitLCD8(b, c, orderRGB)
}

func blitLCD28ToRGB24(b *blitter, c Color) {
	blitLCD8(b, c, orderBGR)
}
