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

// Package blit composites glyph bitmaps onto framebuffers.
//
// A glyph is a 1-bit bitmap, a gray coverage bitmap with any number of
// levels, or a subpixel (LCD) coverage bitmap in one of four orientations.
// It is drawn with a single fill color onto a target in one of the
// supported framebuffer encodings: 1-bit, 4-bit and 8-bit palette, gray,
// RGB555, RGB565, RGB24 and RGB32.  The glyph is clipped to the target.
//
// Monochrome glyphs set pixels to the fill color (or OR their bits into
// 1-bit targets).  Coverage glyphs blend the fill color into color targets
// and add their coverage, with saturation, into gray targets.
package blit

import "log/slog"

// Blitter composites glyphs onto target bitmaps.  The zero value is not
// usable; create Blitters with NewBlitter.
//
// A Blitter is safe for concurrent use as long as concurrent calls do not
// write to the same target bitmap.
type Blitter struct {
	tables *Tables
}

// Option configures a Blitter.
type Option func(*Blitter)

// WithTables makes the Blitter use the given lookup-table cache instead
// of the package-wide default cache.
func WithTables(t *Tables) Option {
	return func(b *Blitter) {
		b.tables = t
	}
}

// NewBlitter returns a new Blitter.
func NewBlitter(opts ...Option) *Blitter {
	b := &Blitter{}
	for _, opt := range opts {
		opt(b)
	}
	if b.tables == nil {
		b.tables = defaultTables
	}
	return b
}

// Tables returns the lookup-table cache used by b.
func (bl *Blitter) Tables() *Tables {
	return bl.tables
}

var (
	defaultTables  = NewTables()
	defaultBlitter = NewBlitter()
)

// BlitGlyphToBitmap draws glyph onto target using the package-wide
// lookup-table cache.  See [Blitter.BlitGlyphToBitmap].
func BlitGlyphToBitmap(target, glyph *Bitmap, x, y int, c Color) error {
	return defaultBlitter.BlitGlyphToBitmap(target, glyph, x, y, c)
}

// BlitGlyphToBitmap draws glyph onto target, placing the top-left corner
// of the glyph at (x, y).  The glyph is clipped to the target.
//
// If glyph is empty or entirely outside the target, nothing is drawn and
// the result is nil.  Subpixel glyphs can only be drawn onto RGB24
// targets; for other targets they are silently ignored.
//
// On error the target is left unchanged.  Use [Status] to obtain the
// numeric status code of an error.
func (bl *Blitter) BlitGlyphToBitmap(target, glyph *Bitmap, x, y int, c Color) error {
	if target == nil || glyph == nil {
		return ErrBadArgument
	}
	if glyph.Rows == 0 || glyph.Width == 0 {
		return nil
	}
	if !glyph.valid() || !target.valid() {
		return ErrBadArgument
	}

	b, ok := newBlitter(glyph, target, x, y)
	if !ok {
		return nil
	}

	mode := target.Mode
	grays := glyph.Grays

	switch glyph.Mode {
	case Mono:
		if mode <= None || mode > RGB32 {
			return ErrBadSourceDepth
		}
		monoBlitters[mode](&b, c)

	case Gray:
		if grays <= 1 {
			break
		}
		if mode == Gray && target.Grays > 1 {
			return bl.blitGrayToGray(&b, target.Grays, grays)
		}
		if mode < RGB555 || mode > RGB32 {
			return ErrBadTargetDepth
		}
		if grays == 256 {
			gray8Blitters[mode](&b, c)
		} else {
			grayBlitters[mode](&b, c, grays-1)
		}

	case LCD, LCD2:
		if mode != RGB24 || grays <= 1 {
			logSkipped(glyph, target)
			break
		}
		reversed := glyph.Mode == LCD2
		switch {
		case grays == 256 && reversed:
			blitLCD28ToRGB24(&b, c)
		case grays == 256:
			blitLCD8ToRGB24(&b, c)
		case reversed:
			blitLCD2ToRGB24(&b, c, grays-1)
		default:
			blitLCDToRGB24(&b, c, grays-1)
		}

	case LCDV, LCDV2:
		if mode != RGB24 || grays <= 1 {
			logSkipped(glyph, target)
			break
		}
		if glyph.Mode == LCDV2 {
			blitLCDV2ToRGB24(&b, c, grays-1)
		} else {
			blitLCDVToRGB24(&b, c, grays-1)
		}

	default:
		return ErrUnsupportedSource
	}

	return nil
}

// blitGrayToGray fetches the lookup tables before touching the target, so
// that a failed lookup leaves the target unchanged.
func (bl *Blitter) blitGrayToGray(b *blitter, targetGrays, sourceGrays int) error {
	sat, err := bl.tables.Saturation(targetGrays)
	if err != nil {
		return err
	}
	if targetGrays == sourceGrays {
		blitGrayToGraySimple(b, sat)
		return nil
	}
	conv, err := bl.tables.Conversion(targetGrays, sourceGrays)
	if err != nil {
		return err
	}
	blitGrayToGray(b, sat, conv)
	return nil
}

func logSkipped(glyph, target *Bitmap) {
	Logger().Debug("glyph skipped",
		slog.String("source", glyph.Mode.String()),
		slog.Int("grays", glyph.Grays),
		slog.String("target", target.Mode.String()))
}
