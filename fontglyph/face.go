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

package fontglyph

import (
	"fmt"
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"seehuhn.de/go/blit"
	"seehuhn.de/go/blit/raster"
)

// Face renders the glyph masks of a [font.Face].
type Face struct {
	face font.Face

	// Mode is the pixel mode of the rendered glyphs, either [blit.Mono]
	// or [blit.Gray].  Gray glyphs have 256 levels.
	Mode blit.PixelMode
}

// NewFace wraps f.  Bitmap fonts from basicfont give Mono glyphs, all
// other faces give Gray glyphs.
func NewFace(f font.Face) *Face {
	mode := blit.Gray
	if _, ok := f.(*basicfont.Face); ok {
		mode = blit.Mono
	}
	return &Face{face: f, Mode: mode}
}

// Render implements the [Source] interface.
func (f *Face) Render(r rune) (*raster.Glyph, fixed.Int26_6, error) {
	if f.Mode != blit.Mono && f.Mode != blit.Gray {
		return nil, 0, fmt.Errorf("fontglyph: cannot render %s glyphs: %w",
			f.Mode, blit.ErrUnsupportedSource)
	}

	dr, mask, maskp, adv, ok := f.face.Glyph(fixed.Point26_6{}, r)
	if !ok {
		return nil, 0, fmt.Errorf("%w: %q", ErrMissingGlyph, r)
	}

	grays := 256
	if f.Mode == blit.Mono {
		grays = 0
	}
	w, h := dr.Dx(), dr.Dy()
	bm := blit.NewBitmap(f.Mode, grays, w, h)
	if mask != nil {
		copyMask(bm, mask, maskp)
	}

	return &raster.Glyph{Bitmap: bm, Left: dr.Min.X, Top: dr.Min.Y}, adv, nil
}

// copyMask fills bm with the alpha values of mask, starting at maskp.
func copyMask(bm *blit.Bitmap, mask image.Image, maskp image.Point) {
	alpha, isAlpha := mask.(*image.Alpha)
	for y := range bm.Rows {
		row := bm.Row(y)
		my := maskp.Y + y

		if isAlpha && bm.Mode == blit.Gray {
			off := alpha.PixOffset(maskp.X, my)
			copy(row, alpha.Pix[off:off+bm.Width])
			continue
		}

		for x := range bm.Width {
			_, _, _, a := mask.At(maskp.X+x, my).RGBA()
			if bm.Mode == blit.Mono {
				if a >= 0x8000 {
					row[x>>3] |= 0x80 >> (x & 7)
				}
			} else {
				row[x] = byte(a >> 8)
			}
		}
	}
}
