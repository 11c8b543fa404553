package blit

import (
	"bytes"
	"testing"
)

// lcdGlyph returns a one-pixel subpixel glyph with samples s0, s1, s2 in
// storage order.
func lcdGlyph(mode PixelMode, grays int, s0, s1, s2 byte) *Bitmap {
	var b *Bitmap
	if mode == LCDV || mode == LCDV2 {
		b = NewBitmap(mode, grays, 1, 3)
	} else {
		b = NewBitmap(mode, grays, 3, 1)
	}
	b.Buffer[0] = s0
	b.Buffer[1] = s1
	b.Buffer[2] = s2
	return b
}

func TestLCDChannelOrder(t *testing.T) {
	cases := []struct {
		mode     PixelMode
		expected []byte
	}{
		{LCD, []byte{200, 100, 0}},
		{LCD2, []byte{0, 100, 200}},
		{LCDV, []byte{200, 100, 0}},
		{LCDV2, []byte{0, 100, 200}},
	}
	for _, tc := range cases {
		t.Run(tc.mode.String(), func(t *testing.T) {
			glyph := lcdGlyph(tc.mode, 5, 4, 2, 0)
			target := NewBitmap(RGB24, 0, 1, 1)
			c := RGBA(RGB24, 200, 200, 200, 0)
			if err := BlitGlyphToBitmap(target, glyph, 0, 0, c); err != nil {
				t.Fatal(err)
			}
			if !bytes.Equal(target.Buffer, tc.expected) {
				t.Errorf("expected %v, got %v", tc.expected, target.Buffer)
			}
		})
	}
}

func TestLCD8(t *testing.T) {
	cases := []struct {
		mode     PixelMode
		expected []byte
	}{
		// only pixels with all three samples at 255 are copied unblended,
		// so the full sample still blends to 255*255>>8
		{LCD, []byte{254, 127, 0}},
		{LCD2, []byte{0, 127, 254}},
	}
	for _, tc := range cases {
		t.Run(tc.mode.String(), func(t *testing.T) {
			glyph := lcdGlyph(tc.mode, 256, 255, 128, 0)
			target := NewBitmap(RGB24, 0, 1, 1)
			c := RGBA(RGB24, 255, 255, 255, 0)
			if err := BlitGlyphToBitmap(target, glyph, 0, 0, c); err != nil {
				t.Fatal(err)
			}
			if !bytes.Equal(target.Buffer, tc.expected) {
				t.Errorf("expected %v, got %v", tc.expected, target.Buffer)
			}
		})
	}
}

func TestLCDFullCoverage(t *testing.T) {
	for _, mode := range []PixelMode{LCD, LCD2, LCDV, LCDV2} {
		for _, grays := range []int{5, 256} {
			top := byte(grays - 1)
			glyph := lcdGlyph(mode, grays, top, top, top)
			target := NewBitmap(RGB24, 0, 1, 1)
			target.Fill(RGBA(RGB24, 50, 60, 70, 0))

			if err := BlitGlyphToBitmap(target, glyph, 0, 0, RGBA(RGB24, 1, 2, 3, 0)); err != nil {
				t.Fatal(err)
			}
			if !bytes.Equal(target.Buffer, []byte{1, 2, 3}) {
				t.Errorf("%s/%d: got %v", mode, grays, target.Buffer)
			}
		}
	}
}

func TestLCDZeroCoverageUntouched(t *testing.T) {
	for _, mode := range []PixelMode{LCD, LCD2, LCDV, LCDV2} {
		glyph := lcdGlyph(mode, 256, 0, 0, 0)
		target := NewBitmap(RGB24, 0, 1, 1)
		target.Fill(RGBA(RGB24, 50, 60, 70, 0))

		if err := BlitGlyphToBitmap(target, glyph, 0, 0, RGBA(RGB24, 1, 2, 3, 0)); err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(target.Buffer, []byte{50, 60, 70}) {
			t.Errorf("%s: got %v", mode, target.Buffer)
		}
	}
}

func TestLCDOnlyOnRGB24(t *testing.T) {
	for _, mode := range []PixelMode{LCD, LCD2, LCDV, LCDV2} {
		for _, targetMode := range []PixelMode{RGB555, RGB32, Gray} {
			glyph := lcdGlyph(mode, 256, 255, 255, 255)
			target := NewBitmap(targetMode, 256, 2, 2)
			for i := range target.Buffer {
				target.Buffer[i] = byte(3 * i)
			}
			before := bytes.Clone(target.Buffer)

			err := BlitGlyphToBitmap(target, glyph, 0, 0, RGBA(targetMode, 9, 9, 9, 9))
			if err != nil {
				t.Errorf("%s on %s: unexpected error %v", mode, targetMode, err)
			}
			if !bytes.Equal(target.Buffer, before) {
				t.Errorf("%s on %s: target changed", mode, targetMode)
			}
		}
	}
}

func TestLCDClipLeft(t *testing.T) {
	glyph := NewBitmap(LCD, 5, 6, 1)
	copy(glyph.Buffer, []byte{4, 4, 4, 4, 0, 4})
	target := NewBitmap(RGB24, 0, 2, 1)

	if err := BlitGlyphToBitmap(target, glyph, -1, 0, RGBA(RGB24, 8, 8, 8, 0)); err != nil {
		t.Fatal(err)
	}
	expected := []byte{8, 0, 8, 0, 0, 0}
	if !bytes.Equal(target.Buffer, expected) {
		t.Errorf("expected %v, got %v", expected, target.Buffer)
	}
}

func TestLCDVClipTop(t *testing.T) {
	// two logical rows; the second has only its red sample set
	glyph := NewBitmap(LCDV, 5, 1, 6)
	copy(glyph.Buffer, []byte{4, 4, 4, 4, 0, 0})
	target := NewBitmap(RGB24, 0, 1, 2)

	if err := BlitGlyphToBitmap(target, glyph, 0, -1, RGBA(RGB24, 8, 8, 8, 0)); err != nil {
		t.Fatal(err)
	}
	expected := []byte{8, 0, 0, 0, 0, 0}
	if !bytes.Equal(target.Buffer, expected) {
		t.Errorf("expected %v, got %v", expected, target.Buffer)
	}
}
