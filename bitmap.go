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

import (
	"encoding/binary"
	"fmt"
)

// PixelMode identifies the pixel encoding of a bitmap.
type PixelMode int

// The order of the modes matters: the dispatcher uses range checks on it.
const (
	None   PixelMode = iota
	Mono             // 1 bit per pixel, most significant bit first
	Pal4             // 4-bit palette index, two pixels per byte, high nibble first
	Pal8             // 8-bit palette index
	Gray             // one coverage byte per pixel, 0..Grays-1
	RGB555           // 16-bit little-endian, 5-5-5
	RGB565           // 16-bit little-endian, 5-6-5
	RGB24            // three bytes R, G, B
	RGB32            // four bytes R, G, B, A
	LCD              // horizontal subpixels in R, G, B order
	LCD2             // horizontal subpixels in B, G, R order
	LCDV             // vertical subpixels, R row on top
	LCDV2            // vertical subpixels, B row on top

	numModes
)

var modeNames = [numModes]string{
	"none", "mono", "pal4", "pal8", "gray",
	"rgb555", "rgb565", "rgb24", "rgb32",
	"lcd", "lcd2", "lcdv", "lcdv2",
}

func (m PixelMode) String() string {
	if m < 0 || m >= numModes {
		return fmt.Sprintf("PixelMode(%d)", int(m))
	}
	return modeNames[m]
}

// IsLCD reports whether m stores three subpixel samples per logical pixel.
func (m PixelMode) IsLCD() bool {
	return m >= LCD && m <= LCDV2
}

// bytesPerRow returns the minimal pitch for a row of the given width.
// For LCD modes the width is counted in subpixels.
func (m PixelMode) bytesPerRow(width int) int {
	switch m {
	case Mono:
		return (width + 7) >> 3
	case Pal4:
		return (width + 1) >> 1
	case RGB555, RGB565:
		return 2 * width
	case RGB24:
		return 3 * width
	case RGB32:
		return 4 * width
	default:
		return width
	}
}

// Bitmap describes a caller-owned pixel buffer.
//
// Pitch is the signed distance in bytes between two consecutive rows. If
// Pitch is negative the rows are stored bottom-up and Buffer starts with
// the last row.
//
// For LCD and LCD2 bitmaps Width counts subpixels, i.e. three times the
// number of logical pixels.  For LCDV and LCDV2 bitmaps Rows counts
// subpixel rows.
type Bitmap struct {
	Rows   int
	Width  int
	Pitch  int
	Mode   PixelMode
	Grays  int // number of coverage levels, for Gray and LCD modes
	Buffer []byte
}

// NewBitmap allocates a zero-filled, top-down bitmap with the smallest
// possible pitch.
func NewBitmap(mode PixelMode, grays, width, rows int) *Bitmap {
	pitch := mode.bytesPerRow(width)
	return &Bitmap{
		Rows:   rows,
		Width:  width,
		Pitch:  pitch,
		Mode:   mode,
		Grays:  grays,
		Buffer: make([]byte, pitch*rows),
	}
}

// Flip returns a descriptor for the same memory with the row order
// reversed.  Row y of the result is row Rows-1-y of b.
func (b *Bitmap) Flip() *Bitmap {
	res := *b
	res.Pitch = -b.Pitch
	return &res
}

// rowOffset returns the offset in Buffer of logical row y.
func (b *Bitmap) rowOffset(y int) int {
	if b.Pitch < 0 {
		return (b.Rows-1-y)*(-b.Pitch)
	}
	return y * b.Pitch
}

// valid reports whether the buffer is large enough for the geometry.
func (b *Bitmap) valid() bool {
	if b.Rows < 0 || b.Width < 0 {
		return false
	}
	if b.Rows == 0 || b.Width == 0 {
		return true
	}
	pitch := b.Pitch
	if pitch < 0 {
		pitch = -pitch
	}
	n := b.Mode.bytesPerRow(b.Width)
	return pitch >= n && len(b.Buffer) >= (b.Rows-1)*pitch+n
}

// Row returns the bytes of logical row y, where row 0 is the top row.
func (b *Bitmap) Row(y int) []byte {
	n := b.Pitch
	if n < 0 {
		n = -n
	}
	off := b.rowOffset(y)
	return b.Buffer[off:min(off+n, len(b.Buffer))]
}

// Fill sets every pixel of b to c.
func (b *Bitmap) Fill(c Color) {
	for y := range b.Rows {
		row := b.Row(y)
		switch b.Mode {
		case Mono:
			v := byte(0)
			if c.Value&1 != 0 {
				v = 0xFF
			}
			for i := range row {
				row[i] = v
			}
		case Pal4:
			v := byte(c.Value&0x0F) * 0x11
			for i := range row {
				row[i] = v
			}
		case RGB555, RGB565:
			for x := range b.Width {
				binary.LittleEndian.PutUint16(row[2*x:], uint16(c.Value))
			}
		case RGB24:
			for x := range b.Width {
				copy(row[3*x:3*x+3], c.Chroma[:3])
			}
		case RGB32:
			for x := range b.Width {
				copy(row[4*x:4*x+4], c.Chroma[:])
			}
		default:
			for i := range row {
				row[i] = byte(c.Value)
			}
		}
	}
}

// Color is a fill color.  Value holds the packed native pixel for
// palette, mono, RGB555, RGB565 and RGB32 targets.  Chroma holds the
// individual R, G, B, A channel bytes used by RGB24 and RGB32 targets and
// by the blending code.
type Color struct {
	Value  uint32
	Chroma [4]uint8
}

// Index returns the color for palette index v, for use with Mono, Pal4,
// Pal8 and Gray targets.
func Index(v uint32) Color {
	return Color{Value: v}
}

// RGBA returns the color (r, g, b, a) encoded for a target of the given
// mode.  Both representations of the result refer to the same color.
func RGBA(mode PixelMode, r, g, b, a uint8) Color {
	c := Color{Chroma: [4]uint8{r, g, b, a}}
	switch mode {
	case RGB555:
		c.Value = uint32(r>>3)<<10 | uint32(g>>3)<<5 | uint32(b>>3)
	case RGB565:
		c.Value = uint32(r>>3)<<11 | uint32(g>>2)<<5 | uint32(b>>3)
	case RGB24, RGB32:
		c.Value = binary.LittleEndian.Uint32(c.Chroma[:])
	default:
		// gray levels for the palette-style targets
		c.Value = uint32((int(r)*77 + int(g)*150 + int(b)*29) >> 8)
	}
	return c
}
