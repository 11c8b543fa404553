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

import "encoding/binary"

// Blending of coverage glyphs into color targets:
//
//   dst += round(coverage * (fill - dst) / max)
//
// per channel, where max = grays-1.  Coverage 0 leaves the pixel alone and
// coverage max stores the fill color unchanged.
//
// For 256-level glyphs there are separate routines which replace the
// division by a shift: values >= 254 are treated as opaque, values < 2 as
// transparent.

var grayBlitters = [...]func(*blitter, Color, int){
	RGB555: blitGrayTo555,
	RGB565: blitGrayTo565,
	RGB24:  blitGrayToRGB24,
	RGB32:  blitGrayToRGB32,
}

var gray8Blitters = [...]func(*blitter, Color){
	RGB555: blitGray8To555,
	RGB565: blitGray8To565,
	RGB24:  blitGray8ToRGB24,
	RGB32:  blitGray8ToRGB32,
}

// compose moves a towards b by n/max, rounding to nearest.
func compose(a, b uint8, n, max int) uint8 {
	d := int(b) - int(a)
	return uint8(int(a) + (n*d+max>>1)/max)
}

// eachCoverage calls fn for every visible glyph pixel with non-zero
// coverage.  px is the target pixel, bpp bytes long.
func (b *blitter) eachCoverage(bpp int, fn func(px []byte, val int)) {
	src := b.src.Buffer
	dst := b.dst.Buffer
	read := b.read + b.xread
	write := b.write + bpp*b.xwrite

	for range b.height {
		for x := range b.width {
			if val := int(src[read+x]); val != 0 {
				i := write + bpp*x
				fn(dst[i:i+bpp], val)
			}
		}
		read += b.readLine
		write += b.writeLine
	}
}

func blitGrayTo555(b *blitter, c Color, max int) {
	r := c.Chroma[0] >> 3
	g := c.Chroma[1] >> 3
	bl := c.Chroma[2] >> 3
	full := uint16(r)<<10 | uint16(g)<<5 | uint16(bl)

	b.eachCoverage(2, func(px []byte, val int) {
		if val == max {
			binary.LittleEndian.PutUint16(px, full)
			return
		}
		pix := binary.LittleEndian.Uint16(px)
		pr := compose(uint8(pix>>10)&0x1F, r, val, max)
		pg := compose(uint8(pix>>5)&0x1F, g, val, max)
		pb := compose(uint8(pix)&0x1F, bl, val, max)
		binary.LittleEndian.PutUint16(px, uint16(pr)<<10|uint16(pg)<<5|uint16(pb))
	})
}

func blitGrayTo565(b *blitter, c Color, max int) {
	r := c.Chroma[0] >> 3
	g := c.Chroma[1] >> 2
	bl := c.Chroma[2] >> 3
	full := uint16(r)<<11 | uint16(g)<<5 | uint16(bl)

	b.eachCoverage(2, func(px []byte, val int) {
		if val == max {
			binary.LittleEndian.PutUint16(px, full)
			return
		}
		pix := binary.LittleEndian.Uint16(px)
		pr := compose(uint8(pix>>11)&0x1F, r, val, max)
		pg := compose(uint8(pix>>5)&0x3F, g, val, max)
		pb := compose(uint8(pix)&0x1F, bl, val, max)
		binary.LittleEndian.PutUint16(px, uint16(pr)<<11|uint16(pg)<<5|uint16(pb))
	})
}

func blitGrayToRGB24(b *blitter, c Color, max int) {
	b.eachCoverage(3, func(px []byte, val int) {
		if val == max {
			copy(px, c.Chroma[:3])
			return
		}
		px[0] = compose(px[0], c.Chroma[0], val, max)
		px[1] = compose(px[1], c.Chroma[1], val, max)
		px[2] = compose(px[2], c.Chroma[2], val, max)
	})
}

// blitGrayToRGB32 stores the alpha channel only for fully covered
// pixels; partially covered pixels keep their alpha.
func blitGrayToRGB32(b *blitter, c Color, max int) {
	b.eachCoverage(4, func(px []byte, val int) {
		if val == max {
			copy(px, c.Chroma[:])
			return
		}
		px[0] = compose(px[0], c.Chroma[0], val, max)
		px[1] = compose(px[1], c.Chroma[1], val, max)
		px[2] = compose(px[2], c.Chroma[2], val, max)
	})
}

func blitGray8ToRGB32(b *blitter, c Color) {
	blitGrayToRGB32(b, c, 255)
}

// blitGray8To16 is the 256-level path for both 16-bit layouts.  The
// masks select the red, green and blue bits of a pixel.
func blitGray8To16(b *blitter, c Color, rMask, gMask, bMask int) {
	src := b.src.Buffer
	dst := b.dst.Buffer

	sr := int(c.Value) & rMask
	sg := int(c.Value) & gMask
	sb := int(c.Value) & bMask
	full := uint16(sr | sg | sb)

	read := b.read + b.xread
	write := b.write + 2*b.xwrite
	for range b.height {
		for x := range b.width {
			val := int(src[read+x])
			if val < 2 {
				continue
			}
			px := dst[write+2*x:]
			if val >= 254 {
				binary.LittleEndian.PutUint16(px, full)
				continue
			}

			pix := int(binary.LittleEndian.Uint16(px))
			dr := pix & rMask
			dg := pix & gMask
			db := pix & bMask

			dr = (dr + (sr-dr)*val>>8) & rMask
			dg = (dg + (sg-dg)*val>>8) & gMask
			db = (db + (sb-db)*val>>8) & bMask

			binary.LittleEndian.PutUint16(px, uint16(dr|dg|db))
		}
		read += b.readLine
		write += b.writeLine
	}
}

func blitGray8To555(b *blitter, c Color) {
	blitGray8To16(b, c, 0x7C00, 0x03E0, 0x001F)
}

func blitGray8To565(b *blitter, c Color) {
	blitGray8To16(b, c, 0xF800, 0x07E0, 0x001F)
}

func blitGray8ToRGB24(b *blitter, c Color) {
	src := b.src.Buffer
	dst := b.dst.Buffer
	sr := int(c.Chroma[0])
	sg := int(c.Chroma[1])
	sb := int(c.Chroma[2])

	read := b.read + b.xread
	write := b.write + 3*b.xwrite
	for range b.height {
		for x := range b.width {
			val := int(src[read+x])
			if val < 2 {
				continue
			}
			i := write + 3*x
			if val >= 254 {
				dst[i] = byte(sr)
				dst[i+1] = byte(sg)
				dst[i+2] = byte(sb)
				continue
			}
			dr := int(dst[i])
			dg := int(dst[i+1])
			db := int(dst[i+2])
			dst[i] = byte(dr + (sr-dr)*val>>8)
			dst[i+1] = byte(dg + (sg-dg)*val>>8)
			dst[i+2] = byte(db + (sb-db)*val>>8)
		}
		read += b.readLine
		write += b.writeLine
	}
}

// saturate returns sat[i], clamping i to the last entry.  Indices beyond
// the table only occur if the target holds values outside its gray range.
func saturate(sat []byte, i int) byte {
	if i >= len(sat) {
		i = len(sat) - 1
	}
	return sat[i]
}

// blitGrayToGraySimple adds glyph coverage to a gray target with the
// same number of gray levels, clamping at the maximum.
func blitGrayToGraySimple(b *blitter, sat []byte) {
	src := b.src.Buffer
	dst := b.dst.Buffer
	read := b.read + b.xread
	write := b.write + b.xwrite

	for range b.height {
		for x := range b.width {
			i := write + x
			dst[i] = saturate(sat, int(dst[i])+int(src[read+x]))
		}
		read += b.readLine
		write += b.writeLine
	}
}

// blitGrayToGray adds glyph coverage to a gray target after rescaling it
// with the conversion table conv.
func blitGrayToGray(b *blitter, sat, conv []byte) {
	src := b.src.Buffer
	dst := b.dst.Buffer
	read := b.read + b.xread
	write := b.write + b.xwrite
	top := len(conv) - 1

	for range b.height {
		for x := range b.width {
			v := min(int(src[read+x]), top)
			i := write + x
			dst[i] = saturate(sat, int(dst[i])+int(conv[v]))
		}
		read += b.readLine
		write += b.writeLine
	}
}
