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

	"golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/blit"
	"seehuhn.de/go/blit/raster"
)

// Outline renders glyphs from the outlines of an SFNT font.
//
// An Outline is not safe for concurrent use.
type Outline struct {
	font *sfnt.Font
	ppem fixed.Int26_6

	// Mode and Grays select the pixel mode and the number of coverage
	// levels of rendered glyphs.  Grays is ignored for Mono glyphs.
	Mode  blit.PixelMode
	Grays int

	// Rule is the fill rule for the glyph outlines.  TrueType outlines
	// use the nonzero winding rule.
	Rule raster.Rule

	buf sfnt.Buffer
	r   *raster.Rasterizer
}

// ParseOutline parses the TrueType or OpenType font in data and returns
// an Outline for glyphs of the given size in pixels per em.
func ParseOutline(data []byte, size float64, mode blit.PixelMode, grays int) (*Outline, error) {
	f, err := sfnt.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("fontglyph: %w", err)
	}
	return NewOutline(f, size, mode, grays), nil
}

// NewOutline returns an Outline for glyphs of f at the given size in pixels
// per em.
func NewOutline(f *sfnt.Font, size float64, mode blit.PixelMode, grays int) *Outline {
	r := raster.NewRasterizer(rect.Rect{})
	r.Flatness = glyphFlatness
	return &Outline{
		font:  f,
		ppem:  fixed.Int26_6(size*64 + 0.5),
		Mode:  mode,
		Grays: grays,
		Rule:  raster.NonZero,
		r:     r,
	}
}

// glyphFlatness is the curve tolerance for glyph outlines, in device
// pixels.
const glyphFlatness = 0.05

// Path returns the outline of the glyph for r in pixel units, relative to
// the pen position, together with the advance width.  Glyphs without
// contours, like the space, give an empty path.
func (o *Outline) Path(r rune) (*path.Data, fixed.Int26_6, error) {
	gid, err := o.font.GlyphIndex(&o.buf, r)
	if err != nil {
		return nil, 0, fmt.Errorf("fontglyph: %w", err)
	}
	if gid == 0 {
		return nil, 0, fmt.Errorf("%w: %q", ErrMissingGlyph, r)
	}

	segs, err := o.font.LoadGlyph(&o.buf, gid, o.ppem, nil)
	if err != nil {
		return nil, 0, fmt.Errorf("fontglyph: glyph %d: %w", gid, err)
	}
	adv, err := o.font.GlyphAdvance(&o.buf, gid, o.ppem, font.HintingNone)
	if err != nil {
		return nil, 0, fmt.Errorf("fontglyph: glyph %d: %w", gid, err)
	}

	return segmentsToPath(segs), adv, nil
}

// Render implements the [Source] interface.
func (o *Outline) Render(r rune) (*raster.Glyph, fixed.Int26_6, error) {
	p, adv, err := o.Path(r)
	if err != nil {
		return nil, 0, err
	}
	g, err := o.r.Glyph(p, o.Rule, o.Mode, o.Grays)
	if err != nil {
		return nil, 0, err
	}
	return g, adv, nil
}

// segmentsToPath converts sfnt segments, which already use a y axis
// pointing down, into a path.
func segmentsToPath(segs sfnt.Segments) *path.Data {
	p := &path.Data{}
	for _, s := range segs {
		switch s.Op {
		case sfnt.SegmentOpMoveTo:
			p.MoveTo(toVec(s.Args[0]))
		case sfnt.SegmentOpLineTo:
			p.LineTo(toVec(s.Args[0]))
		case sfnt.SegmentOpQuadTo:
			p.QuadTo(toVec(s.Args[0]), toVec(s.Args[1]))
		case sfnt.SegmentOpCubeTo:
			p.CubeTo(toVec(s.Args[0]), toVec(s.Args[1]), toVec(s.Args[2]))
		}
	}
	return p
}

func toVec(p fixed.Point26_6) vec.Vec2 {
	return vec.Vec2{X: float64(p.X) / 64, Y: float64(p.Y) / 64}
}
