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

// monoBlitters maps a target pixel mode to the routine which draws a
// 1-bit glyph into it.  Gray targets are treated as 8-bit palettes.
var monoBlitters = [...]func(*blitter, Color){
	Mono:   blitMonoToMono,
	Pal4:   blitMonoToPal4,
	Pal8:   blitMonoToPal8,
	Gray:   blitMonoToPal8,
	RGB555: blitMonoToRGB16,
	RGB565: blitMonoToRGB16,
	RGB24:  blitMonoToRGB24,
	RGB32:  blitMonoToRGB32,
}

// srcByte returns buf[i], or 0 if i is outside of buf.  The bit-shifting
// mono loop can look one byte past the last source row.
func srcByte(buf []byte, i int) byte {
	if i < 0 || i >= len(buf) {
		return 0
	}
	return buf[i]
}

// blitMonoToMono ORs the glyph bits into a 1-bit target.
func blitMonoToMono(b *blitter, _ Color) {
	src := b.src.Buffer
	dst := b.dst.Buffer

	leftClip := b.xread > 0
	shift := uint(b.xwrite-b.xread) & 7

	read := b.read + b.xread>>3
	write := b.write + b.xwrite>>3

	if shift == 0 {
		n := (b.width + 7) >> 3
		for range b.height {
			for i := range n {
				dst[write+i] |= srcByte(src, read+i)
			}
			read += b.readLine
			write += b.writeLine
		}
		return
	}

	first := b.xwrite >> 3
	last := (b.xwrite + b.width - 1) >> 3
	count := last - first
	if b.rightClip > 0 {
		count++
	}
	shift2 := 8 - shift

	for range b.height {
		r, w := read, write

		// old carries the bits which did not fit into the previous
		// output byte
		var old uint
		if leftClip {
			old = uint(srcByte(src, r)) << shift2
			r++
		}
		for range count {
			val := uint(srcByte(src, r))
			r++
			dst[w] |= byte(val>>shift | old)
			w++
			old = val << shift2
		}
		if b.rightClip == 0 {
			dst[w] |= byte(old)
		}

		read += b.readLine
		write += b.writeLine
	}
}

// eachSetBit calls paint for every visible glyph pixel whose bit is set.
// The arguments are the offset of the target row and the x coordinate of
// the pixel within the target.
func (b *blitter) eachSetBit(paint func(row, x int)) {
	src := b.src.Buffer
	read := b.read + b.xread>>3
	startMask := byte(0x80) >> (b.xread & 7)
	write := b.write

	for range b.height {
		r := read
		mask := startMask
		val := srcByte(src, r)
		for x := range b.width {
			if mask == 0 {
				r++
				val = srcByte(src, r)
				mask = 0x80
			}
			if val&mask != 0 {
				paint(write, b.xwrite+x)
			}
			mask >>= 1
		}
		read += b.readLine
		write += b.writeLine
	}
}

func blitMonoToPal8(b *blitter, c Color) {
	dst := b.dst.Buffer
	v := byte(c.Value)
	b.eachSetBit(func(row, x int) {
		dst[row+x] = v
	})
}

func blitMonoToPal4(b *blitter, c Color) {
	dst := b.dst.Buffer
	col := byte(c.Value&0x0F) * 0x11
	b.eachSetBit(func(row, x int) {
		i := row + x>>1
		phase := byte(0xF0) // even pixels use the high nibble
		if x&1 != 0 {
			phase = 0x0F
		}
		dst[i] = col&phase | dst[i]&^phase
	})
}

// blitMonoToRGB16 handles both 16-bit layouts, since the color is
// already packed.
func blitMonoToRGB16(b *blitter, c Color) {
	dst := b.dst.Buffer
	v := uint16(c.Value)
	b.eachSetBit(func(row, x int) {
		binary.LittleEndian.PutUint16(dst[row+2*x:], v)
	})
}

func blitMonoToRGB24(b *blitter, c Color) {
	dst := b.dst.Buffer
	b.eachSetBit(func(row, x int) {
		i := row + 3*x
		dst[i] = c.Chroma[0]
		dst[i+1] = c.Chroma[1]
		dst[i+2] = c.Chroma[2]
	})
}

func blitMonoToRGB32(b *blitter, c Color) {
	dst := b.dst.Buffer
	b.eachSetBit(func(row, x int) {
		binary.LittleEndian.PutUint32(dst[row+4*x:], c.Value)
	})
}
