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

// blitter holds the state of a single compositing call: the visible
// rectangle and where it starts in the source and in the target.
//
// read and write are the offsets into the two buffers of the first
// visible row.  The x cursors are not yet applied to them, since the
// number of bytes per pixel differs between the pixel modes.
type blitter struct {
	src, dst *Bitmap

	width, height int

	xread, yread   int
	xwrite, ywrite int

	// rightClip is the number of pixels cut off on the right, measured
	// against the target width rounded up to whole bytes.  The mono
	// compositor uses it to decide whether a trailing partial byte must
	// be written.
	rightClip int

	read, write         int
	readLine, writeLine int
}

// newBlitter places the top-left corner of src at (x, y) on dst and clips
// the result to dst.  If nothing is visible, ok is false.
func newBlitter(src, dst *Bitmap, x, y int) (b blitter, ok bool) {
	width := src.Width
	height := src.Rows

	switch src.Mode {
	case Mono:
		width = (width + 7) &^ 7
	case Pal4:
		width = (width + 1) &^ 1
	case LCD, LCD2:
		width /= 3
	case LCDV, LCDV2:
		height /= 3
	}

	xMin, yMin := x, y
	xMax := xMin + width - 1
	yMax := yMin + height - 1

	if width <= 0 || height <= 0 ||
		xMax < 0 || xMin >= dst.Width ||
		yMax < 0 || yMin >= dst.Rows {
		return blitter{}, false
	}

	b.src = src
	b.dst = dst

	if yMin < 0 {
		b.yread = -yMin
		height += yMin
	} else {
		b.ywrite = yMin
	}
	if yMax >= dst.Rows {
		height -= yMax - dst.Rows + 1
	}

	if xMin < 0 {
		b.xread = -xMin
		width += xMin
	} else {
		b.xwrite = xMin
	}

	dstWidth := dst.Width
	switch dst.Mode {
	case Mono:
		dstWidth = (dstWidth + 7) &^ 7
	case Pal4:
		dstWidth = (dstWidth + 1) &^ 1
	}
	if rc := xMax - dstWidth + 1; rc > 0 {
		b.rightClip = rc
		width -= rc
	}

	b.width = width
	b.height = height

	b.readLine = src.Pitch
	b.writeLine = dst.Pitch
	if b.readLine < 0 {
		b.read = -(src.Rows - 1) * b.readLine
	}
	if b.writeLine < 0 {
		b.write = -(dst.Rows - 1) * b.writeLine
	}
	if src.Mode == LCDV || src.Mode == LCDV2 {
		// each logical row spans three subpixel rows
		b.read += 3 * b.yread * b.readLine
	} else {
		b.read += b.yread * b.readLine
	}
	b.write += b.ywrite * b.writeLine

	return b, true
}
