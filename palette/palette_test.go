package palette

import (
	"errors"
	"image/color"
	"testing"
)

func rgb8(c color.Color) (uint8, uint8, uint8) {
	r, g, b, _ := c.RGBA()
	return uint8(r >> 8), uint8(g >> 8), uint8(b >> 8)
}

func TestLookup(t *testing.T) {
	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			pal, err := Lookup(name)
			if err != nil {
				t.Fatal(err)
			}
			if len(pal) != Size {
				t.Fatalf("expected %d entries, got %d", Size, len(pal))
			}
			for i, c := range pal {
				if c == nil {
					t.Fatalf("entry %d is nil", i)
				}
			}
		})
	}

	if _, err := Lookup("plaid"); !errors.Is(err, ErrUnknownRamp) {
		t.Errorf("expected ErrUnknownRamp, got %v", err)
	}
	if pal, err := Lookup(""); err != nil || pal[0x80] != (color.Gray{Y: 0x80}) {
		t.Errorf("empty name should select gray: %v", err)
	}
}

func TestGradientEndpoints(t *testing.T) {
	pal := Gradient(color.Black, rgb(0x5fcde4), color.White)

	if r, g, b := rgb8(pal[0]); r != 0 || g != 0 || b != 0 {
		t.Errorf("first entry: %d %d %d", r, g, b)
	}
	if r, g, b := rgb8(pal[Size-1]); r < 0xfe || g < 0xfe || b < 0xfe {
		t.Errorf("last entry: %d %d %d", r, g, b)
	}
}

func TestGradientDegenerate(t *testing.T) {
	if pal := Gradient(); pal[10] != (color.Gray{Y: 10}) {
		t.Errorf("no stops should fall back to grayscale")
	}
	one := Gradient(color.White)
	for _, c := range one {
		if c != color.White {
			t.Fatalf("single stop should be flat, got %v", c)
		}
	}
}

func TestByteClass(t *testing.T) {
	pal := ByteClass()
	if pal[0] != color.Black || pal[0xff] != color.White {
		t.Error("zero and 0xFF should be black and white")
	}
	if r, _, b := rgb8(pal['A']); b <= r {
		t.Errorf("printable bytes should be blue-ish: %v", pal['A'])
	}
	if r, _, b := rgb8(pal[0x90]); r <= b {
		t.Errorf("high bytes should be red-ish: %v", pal[0x90])
	}
}

func TestNibbles(t *testing.T) {
	ega := EGA()
	pal := Nibbles(ega)
	for i := 0; i < 16; i++ {
		same := uint8(i<<4 | i)
		if pal[same] != ega[i] {
			t.Errorf("0x%02x should use EGA colour %d unmixed", same, i)
		}
	}
}

func TestNibblesEmptyBase(t *testing.T) {
	pal := Nibbles(nil)
	if len(pal) != Size || pal[0x42] != (color.Gray{Y: 0x42}) {
		t.Errorf("empty base should fall back to grayscale")
	}
	if pal := Nibbles(color.Palette{}); len(pal) != Size {
		t.Errorf("expected %d entries, got %d", Size, len(pal))
	}
}

func TestEGA(t *testing.T) {
	expected := map[int]color.RGBA{
		0x0: rgb(0x000000),
		0x1: rgb(0x0000AA),
		0x6: rgb(0xAA5500),
		0x7: rgb(0xAAAAAA),
		0x8: rgb(0x555555),
		0xc: rgb(0xFF5555),
		0xe: rgb(0xFFFF55),
		0xf: rgb(0xFFFFFF),
	}
	ega := EGA()
	for i, c := range expected {
		if ega[i] != c {
			t.Errorf("colour %d: expected %v, actual %v", i, c, ega[i])
		}
	}
}

func TestGradientNeutralSegment(t *testing.T) {
	pal := Gradient(color.Black, color.White)
	r, g, b := rgb8(pal[128])
	if r != g || g != b {
		t.Errorf("black to white should stay neutral, got %d %d %d", r, g, b)
	}
}
