package blit

import (
	"bytes"
	"encoding/binary"
	"errors"
	"testing"
)

// grayGlyph builds a single-row gray glyph with the given coverage values.
func grayGlyph(grays int, values ...byte) *Bitmap {
	b := NewBitmap(Gray, grays, len(values), 1)
	copy(b.Buffer, values)
	return b
}

func TestGray8ToRGB24(t *testing.T) {
	glyph := grayGlyph(256, 0, 255)
	target := NewBitmap(RGB24, 0, 2, 1)

	err := BlitGlyphToBitmap(target, glyph, 0, 0, RGBA(RGB24, 255, 0, 0, 255))
	if err != nil {
		t.Fatal(err)
	}
	expected := []byte{0, 0, 0, 255, 0, 0}
	if !bytes.Equal(target.Buffer, expected) {
		t.Errorf("expected %v, got %v", expected, target.Buffer)
	}
}

func TestGray8Thresholds(t *testing.T) {
	glyph := grayGlyph(256, 1, 128, 254)
	target := NewBitmap(RGB24, 0, 3, 1)
	target.Fill(RGBA(RGB24, 10, 10, 10, 0))

	err := BlitGlyphToBitmap(target, glyph, 0, 0, RGBA(RGB24, 255, 255, 255, 0))
	if err != nil {
		t.Fatal(err)
	}
	expected := []byte{
		10, 10, 10, // coverage 1 is skipped
		10 + 245*128>>8, 10 + 245*128>>8, 10 + 245*128>>8,
		255, 255, 255, // coverage 254 counts as opaque
	}
	if !bytes.Equal(target.Buffer, expected) {
		t.Errorf("expected %v, got %v", expected, target.Buffer)
	}
}

func TestGray8To16(t *testing.T) {
	glyph := grayGlyph(256, 128)
	cases := []struct {
		mode     PixelMode
		expected uint16
	}{
		{RGB555, 0x3DEF},
		{RGB565, 0x7BEF},
	}
	for _, tc := range cases {
		t.Run(tc.mode.String(), func(t *testing.T) {
			target := NewBitmap(tc.mode, 0, 1, 1)
			c := RGBA(tc.mode, 255, 255, 255, 255)
			if err := BlitGlyphToBitmap(target, glyph, 0, 0, c); err != nil {
				t.Fatal(err)
			}
			if got := binary.LittleEndian.Uint16(target.Buffer); got != tc.expected {
				t.Errorf("expected %#04x, got %#04x", tc.expected, got)
			}
		})
	}
}

func TestGrayToRGB24(t *testing.T) {
	glyph := grayGlyph(5, 0, 2, 4)
	target := NewBitmap(RGB24, 0, 3, 1)

	err := BlitGlyphToBitmap(target, glyph, 0, 0, RGBA(RGB24, 200, 100, 0, 0))
	if err != nil {
		t.Fatal(err)
	}
	expected := []byte{
		0, 0, 0,
		100, 50, 0,
		200, 100, 0,
	}
	if !bytes.Equal(target.Buffer, expected) {
		t.Errorf("expected %v, got %v", expected, target.Buffer)
	}
}

func TestGrayTo555(t *testing.T) {
	glyph := grayGlyph(5, 2, 4)
	target := NewBitmap(RGB555, 0, 2, 1)

	err := BlitGlyphToBitmap(target, glyph, 0, 0, RGBA(RGB555, 255, 255, 255, 0))
	if err != nil {
		t.Fatal(err)
	}
	if got := binary.LittleEndian.Uint16(target.Buffer); got != 0x4210 {
		t.Errorf("half coverage: expected 0x4210, got %#04x", got)
	}
	if got := binary.LittleEndian.Uint16(target.Buffer[2:]); got != 0x7FFF {
		t.Errorf("full coverage: expected 0x7fff, got %#04x", got)
	}
}

func TestGrayTo565(t *testing.T) {
	glyph := grayGlyph(3, 1, 2)
	target := NewBitmap(RGB565, 0, 2, 1)

	err := BlitGlyphToBitmap(target, glyph, 0, 0, RGBA(RGB565, 255, 255, 255, 0))
	if err != nil {
		t.Fatal(err)
	}
	// (31+1)/2 = 16 for red and blue, (63+1)/2 = 32 for green
	if got := binary.LittleEndian.Uint16(target.Buffer); got != 16<<11|32<<5|16 {
		t.Errorf("half coverage: got %#04x", got)
	}
	if got := binary.LittleEndian.Uint16(target.Buffer[2:]); got != 0xFFFF {
		t.Errorf("full coverage: expected 0xffff, got %#04x", got)
	}
}

func TestGrayZeroCoverageUntouched(t *testing.T) {
	for _, grays := range []int{5, 256} {
		glyph := grayGlyph(grays, 0, 0, 0)
		target := NewBitmap(RGB32, 0, 3, 1)
		for i := range target.Buffer {
			target.Buffer[i] = byte(i + 1)
		}
		before := bytes.Clone(target.Buffer)

		if err := BlitGlyphToBitmap(target, glyph, 0, 0, RGBA(RGB32, 9, 9, 9, 9)); err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(target.Buffer, before) {
			t.Errorf("grays=%d: target changed to %v", grays, target.Buffer)
		}
	}
}

func TestGrayToRGB32Alpha(t *testing.T) {
	glyph := grayGlyph(5, 2, 4)
	target := NewBitmap(RGB32, 0, 2, 1)
	target.Fill(RGBA(RGB32, 0, 0, 0, 77))

	err := BlitGlyphToBitmap(target, glyph, 0, 0, RGBA(RGB32, 200, 200, 200, 255))
	if err != nil {
		t.Fatal(err)
	}
	expected := []byte{
		100, 100, 100, 77, // partial coverage keeps the alpha
		200, 200, 200, 255,
	}
	if !bytes.Equal(target.Buffer, expected) {
		t.Errorf("expected %v, got %v", expected, target.Buffer)
	}
}

func TestGrayToGraySaturates(t *testing.T) {
	glyph := grayGlyph(5, 3, 1, 2, 0)
	target := grayGlyph(5, 3, 2, 0, 4)

	if err := BlitGlyphToBitmap(target, glyph, 0, 0, Color{}); err != nil {
		t.Fatal(err)
	}
	expected := []byte{4, 3, 2, 4}
	if !bytes.Equal(target.Buffer, expected) {
		t.Errorf("expected %v, got %v", expected, target.Buffer)
	}
}

func TestGrayToGrayCommutes(t *testing.T) {
	a := []byte{0, 1, 2, 3, 4, 4, 1}
	b := []byte{4, 3, 2, 1, 0, 4, 2}

	ab := grayGlyph(5, a...)
	if err := BlitGlyphToBitmap(ab, grayGlyph(5, b...), 0, 0, Color{}); err != nil {
		t.Fatal(err)
	}
	ba := grayGlyph(5, b...)
	if err := BlitGlyphToBitmap(ba, grayGlyph(5, a...), 0, 0, Color{}); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(ab.Buffer, ba.Buffer) {
		t.Errorf("%v != %v", ab.Buffer, ba.Buffer)
	}
}

func TestGrayToGrayConversion(t *testing.T) {
	glyph := grayGlyph(17, 16, 8, 0)
	target := NewBitmap(Gray, 128, 3, 1)

	bl := NewBlitter(WithTables(NewTables()))
	if err := bl.BlitGlyphToBitmap(target, glyph, 0, 0, Color{}); err != nil {
		t.Fatal(err)
	}
	expected := []byte{127, 8 * 127 / 16, 0}
	if !bytes.Equal(target.Buffer, expected) {
		t.Errorf("expected %v, got %v", expected, target.Buffer)
	}

	nSat, nConv := bl.Tables().Len()
	if nSat != 1 || nConv != 1 {
		t.Errorf("expected one table of each kind, got %d and %d", nSat, nConv)
	}
}

func TestGrayToGrayOverflow(t *testing.T) {
	tables := NewTables(WithMaxSaturations(1))
	bl := NewBlitter(WithTables(tables))

	target := grayGlyph(5, 1, 2)
	if err := bl.BlitGlyphToBitmap(target, grayGlyph(5, 1, 1), 0, 0, Color{}); err != nil {
		t.Fatal(err)
	}

	other := grayGlyph(17, 1, 2)
	before := bytes.Clone(other.Buffer)
	err := bl.BlitGlyphToBitmap(other, grayGlyph(17, 16, 16), 0, 0, Color{})
	if !errors.Is(err, ErrSaturationOverflow) {
		t.Fatalf("expected ErrSaturationOverflow, got %v", err)
	}
	if Status(err) != -3 {
		t.Errorf("expected status -3, got %d", Status(err))
	}
	if !bytes.Equal(other.Buffer, before) {
		t.Errorf("target changed on error: %v", other.Buffer)
	}
}

func TestGraySingleLevelIsNoop(t *testing.T) {
	glyph := grayGlyph(1, 7, 7)
	target := NewBitmap(RGB24, 0, 2, 1)
	if err := BlitGlyphToBitmap(target, glyph, 0, 0, RGBA(RGB24, 1, 1, 1, 1)); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(target.Buffer, make([]byte, 6)) {
		t.Errorf("target changed: %v", target.Buffer)
	}
}

func TestGrayClipped(t *testing.T) {
	glyph := NewBitmap(Gray, 256, 3, 3)
	for i := range glyph.Buffer {
		glyph.Buffer[i] = 255
	}
	target := NewBitmap(RGB24, 0, 4, 4)

	if err := BlitGlyphToBitmap(target, glyph, 2, -1, RGBA(RGB24, 9, 9, 9, 0)); err != nil {
		t.Fatal(err)
	}
	for y := range 4 {
		for x := range 4 {
			set := target.Row(y)[3*x] == 9
			expected := x >= 2 && y < 2
			if set != expected {
				t.Errorf("pixel (%d,%d): set=%t", x, y, set)
			}
		}
	}
}
