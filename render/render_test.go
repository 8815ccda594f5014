package render

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/gif"
	"image/png"
	"testing"

	"github.com/32bitkid/byteimg/layout"
	"github.com/32bitkid/byteimg/palette"
)

func seq(n int) []byte {
	buf := make([]byte, n)
	for i := range buf {
		buf[i] = byte(i + 1)
	}
	return buf
}

func TestImageRGB(t *testing.T) {
	g, err := layout.Build(layout.ModeLinear, seq(12), 3)
	if err != nil {
		t.Fatal(err)
	}
	img, err := Image(g, layout.ModeLinear, Options{})
	if err != nil {
		t.Fatal(err)
	}
	rgba, ok := img.(*image.RGBA)
	if !ok {
		t.Fatalf("expected *image.RGBA, got %T", img)
	}
	if c := rgba.RGBAAt(1, 0); c != (color.RGBA{R: 4, G: 5, B: 6, A: 0xff}) {
		t.Errorf("pixel (1, 0): %v", c)
	}
	if c := rgba.RGBAAt(0, 1); c != (color.RGBA{R: 7, G: 8, B: 9, A: 0xff}) {
		t.Errorf("pixel (0, 1): %v", c)
	}

	g.Pix[0] = 0xAA
	if rgba.Pix[0] == 0xAA {
		t.Error("image aliases grid storage")
	}
}

func TestImageModels(t *testing.T) {
	cases := []struct {
		model    ColorModel
		channels int
		check    func(image.Image) bool
	}{
		{Gray, 1, func(img image.Image) bool { return img.(*image.Gray).GrayAt(1, 0).Y == 2 }},
		{GrayAlpha, 2, func(img image.Image) bool {
			return img.(*image.NRGBA).NRGBAAt(0, 0) == color.NRGBA{R: 1, G: 1, B: 1, A: 2}
		}},
		{RGBA, 4, func(img image.Image) bool {
			return img.(*image.NRGBA).NRGBAAt(0, 0) == color.NRGBA{R: 1, G: 2, B: 3, A: 4}
		}},
		{CMYK, 4, func(img image.Image) bool {
			return img.(*image.CMYK).CMYKAt(0, 0) == color.CMYK{C: 1, M: 2, Y: 3, K: 4}
		}},
	}

	for _, tc := range cases {
		t.Run(string(tc.model), func(t *testing.T) {
			g, err := layout.Build(layout.ModeLinear, seq(16), tc.channels)
			if err != nil {
				t.Fatal(err)
			}
			img, err := Image(g, layout.ModeLinear, Options{ColorModel: tc.model})
			if err != nil {
				t.Fatal(err)
			}
			if !tc.check(img) {
				t.Errorf("unexpected pixels for %s", tc.model)
			}
		})
	}
}

func TestImageMismatch(t *testing.T) {
	g, _ := layout.Build(layout.ModeChannel, seq(12), 3)
	if _, err := Image(g, layout.ModeChannel, Options{ColorModel: RGBA}); !errors.Is(err, ErrColorModel) {
		t.Errorf("expected ErrColorModel, got %v", err)
	}
	if _, err := Image(g, layout.ModeChannel, Options{ColorModel: "HSV"}); !errors.Is(err, ErrColorModel) {
		t.Errorf("expected ErrColorModel, got %v", err)
	}
	if _, err := Image(nil, layout.ModeLinear, Options{}); !errors.Is(err, layout.ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument, got %v", err)
	}
}

func TestImageSingle(t *testing.T) {
	g, _ := layout.Build(layout.ModeSingle, seq(12), 3)

	img, err := Image(g, layout.ModeSingle, Options{ColorModel: RGB})
	if err != nil {
		t.Fatal(err)
	}
	gray, ok := img.(*image.Gray)
	if !ok {
		t.Fatalf("single mode should render gray, got %T", img)
	}
	if b := gray.Bounds(); b.Dx() != 4 || b.Dy() != 3 {
		t.Errorf("bounds %v", b)
	}
	if gray.GrayAt(0, 1).Y != 5 {
		t.Errorf("pixel (0, 1): %v", gray.GrayAt(0, 1))
	}

	pal, _ := palette.Lookup("heat")
	img, err = Image(g, layout.ModeSingle, Options{Palette: pal})
	if err != nil {
		t.Fatal(err)
	}
	paletted, ok := img.(*image.Paletted)
	if !ok {
		t.Fatalf("expected *image.Paletted, got %T", img)
	}
	if paletted.ColorIndexAt(3, 0) != 4 {
		t.Errorf("index (3, 0): %d", paletted.ColorIndexAt(3, 0))
	}

	if _, err := Image(g, layout.ModeSingle, Options{Palette: pal[:16]}); !errors.Is(err, ErrColorModel) {
		t.Errorf("short palette: %v", err)
	}
}

func TestScale(t *testing.T) {
	src := image.NewGray(image.Rect(0, 0, 2, 1))
	src.Pix[0], src.Pix[1] = 10, 200

	img := Scale(src, 3)
	gray, ok := img.(*image.Gray)
	if !ok {
		t.Fatalf("expected *image.Gray, got %T", img)
	}
	if b := gray.Bounds(); b.Dx() != 6 || b.Dy() != 3 {
		t.Fatalf("bounds %v", b)
	}
	for y := 0; y < 3; y++ {
		for x := 0; x < 6; x++ {
			expected := uint8(10)
			if x >= 3 {
				expected = 200
			}
			if v := gray.GrayAt(x, y).Y; v != expected {
				t.Fatalf("(%d, %d): expected %d, actual %d", x, y, expected, v)
			}
		}
	}

	if Scale(src, 1) != image.Image(src) {
		t.Error("factor 1 should return the source")
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	g, _ := layout.Build(layout.ModeLinear, seq(27), 3)
	img, err := Image(g, layout.ModeLinear, Options{Scale: 2})
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := Encode(&buf, img, PNG); err != nil {
		t.Fatal(err)
	}
	decoded, err := png.Decode(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if decoded.Bounds() != img.Bounds() {
		t.Fatalf("bounds: %v != %v", decoded.Bounds(), img.Bounds())
	}
	for y := img.Bounds().Min.Y; y < img.Bounds().Max.Y; y++ {
		for x := img.Bounds().Min.X; x < img.Bounds().Max.X; x++ {
			r1, g1, b1, a1 := img.At(x, y).RGBA()
			r2, g2, b2, a2 := decoded.At(x, y).RGBA()
			if r1 != r2 || g1 != g2 || b1 != b2 || a1 != a2 {
				t.Fatalf("invalid pixel at (%d, %d): expected %v, actual %v", x, y, img.At(x, y), decoded.At(x, y))
			}
		}
	}
}

func TestEncodeFormats(t *testing.T) {
	g, _ := layout.Build(layout.ModeSingle, seq(40), 3)
	img, err := Image(g, layout.ModeSingle, Options{})
	if err != nil {
		t.Fatal(err)
	}

	for _, f := range []Format{PNG, BMP, TIFF, GIF} {
		t.Run(string(f), func(t *testing.T) {
			var buf bytes.Buffer
			if err := Encode(&buf, img, f); err != nil {
				t.Fatal(err)
			}
			if buf.Len() == 0 {
				t.Fatal("no output")
			}
		})
	}

	var buf bytes.Buffer
	if err := Encode(&buf, img, GIF); err != nil {
		t.Fatal(err)
	}
	decoded, err := gif.Decode(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if y := color.GrayModel.Convert(decoded.At(2, 0)).(color.Gray).Y; y != 3 {
		t.Errorf("gif gray pixel: %d", y)
	}

	if err := Encode(&buf, img, "jpeg"); !errors.Is(err, ErrFormat) {
		t.Errorf("expected ErrFormat, got %v", err)
	}
}

func TestParse(t *testing.T) {
	if f, err := ParseFormat(".TIF"); err != nil || f != TIFF {
		t.Errorf("ParseFormat(.TIF) = %q, %v", f, err)
	}
	if f, _ := ParseFormat("png"); f.Extension() != ".png" {
		t.Errorf("extension %q", f.Extension())
	}
	if m, err := ParseColorModel("rgba"); err != nil || m != RGBA {
		t.Errorf("ParseColorModel(rgba) = %q, %v", m, err)
	}
	if _, err := ParseColorModel("YCbCr"); !errors.Is(err, ErrColorModel) {
		t.Errorf("expected ErrColorModel, got %v", err)
	}
	if m, ok := ForChannels(2); !ok || m != GrayAlpha {
		t.Errorf("ForChannels(2) = %q", m)
	}
}

func TestScaleGeneric(t *testing.T) {
	src := image.NewGray16(image.Rect(0, 0, 1, 2))
	src.SetGray16(0, 1, color.Gray16{Y: 0xffff})

	img := Scale(src, 2)
	if b := img.Bounds(); b.Dx() != 2 || b.Dy() != 4 {
		t.Fatalf("bounds %v", b)
	}
	if c := img.(*image.NRGBA).NRGBAAt(1, 3); c != (color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}) {
		t.Errorf("pixel (1, 3): %v", c)
	}
	if c := img.(*image.NRGBA).NRGBAAt(0, 1); c != (color.NRGBA{A: 0xff}) {
		t.Errorf("pixel (0, 1): %v", c)
	}
}

func TestScaleSubImage(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 3, 3))
	src.SetRGBA(1, 1, color.RGBA{R: 9, A: 0xff})
	sub := src.SubImage(image.Rect(1, 1, 3, 3))

	img := Scale(sub, 2).(*image.RGBA)
	if b := img.Bounds(); b.Dx() != 4 || b.Dy() != 4 {
		t.Fatalf("bounds %v", b)
	}
	if img.RGBAAt(1, 1).R != 9 || img.RGBAAt(2, 2).R != 0 {
		t.Errorf("unexpected block contents")
	}
}
