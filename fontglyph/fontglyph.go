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

// Package fontglyph turns the glyphs of real fonts into bitmaps which can
// be drawn with the blit package.
//
// A [Face] takes its glyph images from a [font.Face], for example a fixed
// bitmap font from basicfont or an anti-aliased face from opentype.  An
// [Outline] reads the glyph outlines of an SFNT font directly and renders
// them with the raster package, which gives glyphs in every glyph pixel
// mode, including the subpixel modes.
//
// All glyphs are positioned relative to the pen position on the baseline,
// with the y axis pointing down.
package fontglyph

import (
	"errors"
	"log/slog"

	"golang.org/x/image/math/fixed"

	"seehuhn.de/go/blit"
	"seehuhn.de/go/blit/raster"
)

// ErrMissingGlyph is returned when a font has no glyph for a rune.
var ErrMissingGlyph = errors.New("fontglyph: glyph not found")

// Source produces glyph bitmaps for runes.
type Source interface {
	// Render returns the glyph for r together with the advance width.
	Render(r rune) (*raster.Glyph, fixed.Int26_6, error)
}

// DrawString draws s onto target with the pen starting at (x, y) on the
// baseline, using the package-wide blitter.  Missing glyphs are skipped.
// The result is the pen position after the last glyph.
//
// Kerning is not applied.
func DrawString(target *blit.Bitmap, src Source, x, y int, s string, c blit.Color) (int, error) {
	pen := fixed.I(x)
	for _, r := range s {
		g, adv, err := src.Render(r)
		if errors.Is(err, ErrMissingGlyph) {
			blit.Logger().Debug("missing glyph", slog.String("rune", string(r)))
			continue
		} else if err != nil {
			return pen.Round(), err
		}

		err = blit.BlitGlyphToBitmap(target, g.Bitmap, pen.Round()+g.Left, y+g.Top, c)
		if err != nil {
			return pen.Round(), err
		}
		pen += adv
	}
	return pen.Round(), nil
}
