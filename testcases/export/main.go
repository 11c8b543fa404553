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

// Command export composites every test outline onto framebuffers of all
// supported pixel modes and writes the results as image files, for visual
// inspection.  With -json it writes the outline definitions instead.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/blit"
	"seehuhn.de/go/blit/raster"
	"seehuhn.de/go/blit/testcases"
)

// A combination pairs a glyph pixel mode with a target mode it can be
// drawn onto.
type combination struct {
	glyph, target blit.PixelMode
}

var combinations = []combination{
	{blit.Mono, blit.Mono},
	{blit.Mono, blit.Pal4},
	{blit.Mono, blit.Pal8},
	{blit.Mono, blit.Gray},
	{blit.Mono, blit.RGB555},
	{blit.Mono, blit.RGB565},
	{blit.Mono, blit.RGB24},
	{blit.Mono, blit.RGB32},
	{blit.Gray, blit.Gray},
	{blit.Gray, blit.RGB555},
	{blit.Gray, blit.RGB565},
	{blit.Gray, blit.RGB24},
	{blit.Gray, blit.RGB32},
	{blit.LCD, blit.RGB24},
	{blit.LCD2, blit.RGB24},
	{blit.LCDV, blit.RGB24},
	{blit.LCDV2, blit.RGB24},
}

func main() {
	out := flag.String("out", filepath.Join("testdata", "export"), "output directory")
	format := flag.String("format", "png", "image format, \"png\" or \"bmp\"")
	scale := flag.Int("scale", 4, "enlargement factor for the written images")
	grays := flag.Int("grays", 256, "number of coverage levels of gray and subpixel glyphs")
	jsonFile := flag.String("json", "", "write the outline definitions to this file and exit")
	verbose := flag.Bool("v", false, "log every written file")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	blit.SetLogger(logger)

	var err error
	if *jsonFile != "" {
		err = writeJSON(*jsonFile)
	} else {
		err = run(logger, *out, *format, *scale, *grays)
	}
	if err != nil {
		logger.Error("export failed", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(logger *slog.Logger, dir, format string, scale, grays int) error {
	if format != "png" && format != "bmp" {
		return fmt.Errorf("unsupported image format %q", format)
	}
	if scale < 1 {
		return fmt.Errorf("invalid scale %d", scale)
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	r := raster.NewRasterizer(rect.Rect{})
	count := 0
	var err error
	testcases.Each(func(name string, tc testcases.Case) {
		if err != nil {
			return
		}
		r.CTM = tc.Transform()
		for _, comb := range combinations {
			var canvas *blit.Bitmap
			canvas, err = composite(r, tc, comb, grays)
			if err != nil {
				err = fmt.Errorf("%s %s on %s: %w", name, comb.glyph, comb.target, err)
				return
			}

			fname := fmt.Sprintf("%s_%s_%s.%s", name, comb.glyph, comb.target, format)
			fname = filepath.Join(dir, fname)
			if err = writeImage(fname, format, toImage(canvas), scale); err != nil {
				return
			}
			logger.Debug("image written", slog.String("file", fname))
			count++
		}
	})
	if err != nil {
		return err
	}
	logger.Info("done", slog.Int("images", count), slog.String("dir", dir))
	return nil
}

// composite renders the outline of tc in the glyph mode of comb and draws
// it onto a fresh canvas in the target mode.  Colored targets have a white
// background and black text, the others use the highest index or gray
// level as the text color.
func composite(r *raster.Rasterizer, tc testcases.Case, comb combination, grays int) (*blit.Bitmap, error) {
	g, err := r.Glyph(tc.Path, raster.Rule(tc.Rule), comb.glyph, grays)
	if err != nil {
		return nil, err
	}

	w, h := tc.Width, tc.Height
	var canvas *blit.Bitmap
	var fg blit.Color
	switch comb.target {
	case blit.Mono:
		canvas = blit.NewBitmap(blit.Mono, 0, w, h)
		fg = blit.Index(1)
	case blit.Pal4:
		canvas = blit.NewBitmap(blit.Pal4, 0, w, h)
		fg = blit.Index(15)
	case blit.Pal8:
		canvas = blit.NewBitmap(blit.Pal8, 0, w, h)
		fg = blit.Index(255)
	case blit.Gray:
		canvas = blit.NewBitmap(blit.Gray, 256, w, h)
		fg = blit.Index(255)
	default:
		canvas = blit.NewBitmap(comb.target, 0, w, h)
		canvas.Fill(blit.RGBA(comb.target, 255, 255, 255, 255))
		fg = blit.RGBA(comb.target, 0, 0, 0, 255)
	}

	err = blit.BlitGlyphToBitmap(canvas, g.Bitmap, g.Left, g.Top, fg)
	if err != nil {
		return nil, err
	}
	return canvas, nil
}

type jsonCase struct {
	Name     string        `json:"name"`
	Width    int           `json:"width"`
	Height   int           `json:"height"`
	CTM      [6]float64    `json:"ctm"`
	FillRule string        `json:"fill_rule"`
	Path     []jsonSegment `json:"path"`
}

type jsonSegment struct {
	Cmd string      `json:"cmd"`
	Pts [][]float64 `json:"pts"`
}

// writeJSON writes the outline definitions for use by external reference
// renderers.
func writeJSON(fname string) (err error) {
	var out struct {
		Cases []jsonCase `json:"testcases"`
	}
	testcases.Each(func(name string, tc testcases.Case) {
		rule := "nonzero"
		if tc.Rule == testcases.EvenOdd {
			rule = "evenodd"
		}
		out.Cases = append(out.Cases, jsonCase{
			Name:     name,
			Width:    tc.Width,
			Height:   tc.Height,
			CTM:      tc.Transform(),
			FillRule: rule,
			Path:     pathToJSON(tc.Path),
		})
	})

	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func pathToJSON(p *path.Data) []jsonSegment {
	var segs []jsonSegment
	for cmd, pts := range p.Iter() {
		seg := jsonSegment{Pts: make([][]float64, len(pts))}
		switch cmd {
		case path.CmdMoveTo:
			seg.Cmd = "M"
		case path.CmdLineTo:
			seg.Cmd = "L"
		case path.CmdQuadTo:
			seg.Cmd = "Q"
		case path.CmdCubeTo:
			seg.Cmd = "C"
		case path.CmdClose:
			seg.Cmd = "Z"
		}
		for i, pt := range pts {
			seg.Pts[i] = []float64{pt.X, pt.Y}
		}
		segs = append(segs, seg)
	}
	return segs
}
