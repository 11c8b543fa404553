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

// Command genpdf generates reference coverage images for the glyph
// outlines in the testcases package.  Each outline is written as a
// single-page PDF file, which Ghostscript then renders to a gray PNG.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/blit/testcases"
)

func main() {
	dir := flag.String("dir", filepath.Join("testdata", "reference"), "output directory")
	gs := flag.String("gs", "gs", "Ghostscript executable")
	keep := flag.Bool("keep", false, "keep the intermediate PDF files")
	verbose := flag.Bool("v", false, "log every generated file")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if err := run(logger, *dir, *gs, *keep); err != nil {
		logger.Error("generating references failed", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(logger *slog.Logger, dir, gs string, keep bool) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	var err error
	count := 0
	testcases.Each(func(name string, tc testcases.Case) {
		if err != nil {
			return
		}
		pdfPath := filepath.Join(dir, name+".pdf")
		pngPath := filepath.Join(dir, name+".png")

		if err = writePDF(tc, pdfPath); err != nil {
			err = fmt.Errorf("%s: %w", name, err)
			return
		}
		if err = renderPNG(gs, pdfPath, pngPath); err != nil {
			err = fmt.Errorf("%s: %w", name, err)
			return
		}
		if !keep {
			_ = os.Remove(pdfPath)
		}
		logger.Debug("reference written", slog.String("file", pngPath))
		count++
	})
	if err != nil {
		return err
	}
	logger.Info("done", slog.Int("images", count), slog.String("dir", dir))
	return nil
}

// writePDF draws the outline in white on a black page of the size of the
// canvas, so that the gray value of each pixel is its coverage.
func writePDF(tc testcases.Case, pdfPath string) error {
	paper := &pdf.Rectangle{
		URx: float64(tc.Width),
		URy: float64(tc.Height),
	}
	page, err := document.CreateSinglePage(pdfPath, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	page.SetFillColor(color.DeviceGray(0))
	page.Rectangle(0, 0, float64(tc.Width), float64(tc.Height))
	page.Fill()

	// glyph outlines use a y axis pointing down
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, float64(tc.Height)})
	if ctm := tc.Transform(); ctm != matrix.Identity {
		page.Transform(ctm)
	}

	page.SetFillColor(color.DeviceGray(1))

	// PDF has no quadratic curves
	for cmd, pts := range tc.Path.Iter().ToCubic() {
		switch cmd {
		case path.CmdMoveTo:
			page.MoveTo(pts[0].X, pts[0].Y)
		case path.CmdLineTo:
			page.LineTo(pts[0].X, pts[0].Y)
		case path.CmdCubeTo:
			page.CurveTo(pts[0].X, pts[0].Y, pts[1].X, pts[1].Y, pts[2].X, pts[2].Y)
		case path.CmdClose:
			page.ClosePath()
		}
	}
	if tc.Rule == testcases.EvenOdd {
		page.FillEvenOdd()
	} else {
		page.Fill()
	}

	return page.Close()
}

// renderPNG renders a PDF file at 72 DPI, so that one PDF unit is one
// pixel, using 4x4 supersampling.
func renderPNG(gs, pdfPath, pngPath string) error {
	cmd := exec.Command(
		gs, "-q",
		"-sDEVICE=pnggray",
		"-r72",
		"-dGraphicsAlphaBits=4",
		"-o", pngPath,
		pdfPath,
	)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
