// Package palette builds 256-entry colour ramps for single-channel planes,
// so that byte value v is drawn with ramp[v].
package palette

import (
	"errors"
	"fmt"
	"image/color"
	"sort"
	"strings"

	clr "github.com/lucasb-eyer/go-colorful"
)

var ErrUnknownRamp = errors.New("unknown palette")

// Size is the number of entries in every ramp.
const Size = 256

// Gradient spreads stops evenly over the ramp and blends between them.
// Segments that touch a neutral stop blend in RGB so greys stay grey;
// chromatic segments blend in Lab.
func Gradient(stops ...color.Color) color.Palette {
	switch len(stops) {
	case 0:
		return Grayscale()
	case 1:
		pal := make(color.Palette, Size)
		for i := range pal {
			pal[i] = stops[0]
		}
		return pal
	}

	points := make([]clr.Color, len(stops))
	for i, s := range stops {
		points[i], _ = clr.MakeColor(s)
	}

	last := len(points) - 1
	pal := make(color.Palette, Size)
	for i := range pal {
		pos := float64(i) / float64(Size-1) * float64(last)
		seg := min(int(pos), last-1)
		pal[i] = blend(points[seg], points[seg+1], pos-float64(seg))
	}
	return pal
}

func blend(from, to clr.Color, t float64) color.Color {
	if neutral(from) || neutral(to) {
		return from.BlendRgb(to, t).Clamped()
	}
	return from.BlendLab(to, t).Clamped()
}

func neutral(c clr.Color) bool { return c.R == c.G && c.G == c.B }

// shade moves c's HCL luminance by dl, keeping hue and chroma.
func shade(c color.Color, dl float64) color.Color {
	src, _ := clr.MakeColor(c)
	h, chroma, l := src.Hcl()
	return clr.Hcl(h, chroma, l+dl).Clamped()
}

// Grayscale maps v to color.Gray{Y: v}.
func Grayscale() color.Palette {
	pal := make(color.Palette, Size)
	for i := range pal {
		pal[i] = color.Gray{Y: uint8(i)}
	}
	return pal
}

// Nibbles colours each byte by mixing the colours of its two nibbles, the
// way a 50/50 dither of v&0xF and v>>4 reads from a distance. An empty base
// falls back to Grayscale.
func Nibbles(base color.Palette) color.Palette {
	if len(base) == 0 {
		return Grayscale()
	}
	pal := make(color.Palette, Size)
	for i := range pal {
		lo, hi := base[(i&0xF)%len(base)], base[(i>>4)%len(base)]
		if lo == hi {
			pal[i] = lo
			continue
		}
		from, _ := clr.MakeColor(lo)
		to, _ := clr.MakeColor(hi)
		pal[i] = blend(from, to, 0.5)
	}
	return pal
}

// ByteClass colours by what a byte usually means in a binary: zero is
// black, 0xFF white, printable ASCII blue, other ASCII green and high bytes
// red. Brightness rises with the value inside each class.
func ByteClass() color.Palette {
	var (
		printable = rgb(0x306082)
		control   = rgb(0x4b692f)
		high      = rgb(0xac3232)
	)

	pal := make(color.Palette, Size)
	for i := range pal {
		switch {
		case i == 0x00:
			pal[i] = color.Black
		case i == 0xFF:
			pal[i] = color.White
		case i >= 0x20 && i < 0x7F:
			pal[i] = shade(printable, 0.3*float64(i-0x20)/float64(0x7F-0x20))
		case i < 0x80:
			pal[i] = shade(control, -0.1*float64(0x20-i%0x20)/float64(0x20))
		default:
			pal[i] = shade(high, 0.3*float64(i-0x80)/float64(0xFF-0x80))
		}
	}
	return pal
}

func rgb(v uint32) color.RGBA {
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}
}

// EGA returns the 16 colours of the IBM EGA default palette. Bit 0 is blue,
// bit 1 green, bit 2 red and bit 3 intensity; colour 6 has its green halved
// to make brown.
func EGA() color.Palette {
	pal := make(color.Palette, 16)
	for i := range pal {
		level := func(bit int) uint8 {
			v := uint8(0)
			if i&(1<<bit) != 0 {
				v += 0xAA
			}
			if i&8 != 0 {
				v += 0x55
			}
			return v
		}
		c := color.RGBA{R: level(2), G: level(1), B: level(0), A: 0xff}
		if i == 6 {
			c.G = 0x55
		}
		pal[i] = c
	}
	return pal
}

var builders = map[string]func() color.Palette{
	"gray": Grayscale,
	"heat": func() color.Palette {
		return Gradient(color.Black, rgb(0xac3232), rgb(0xdf7126), rgb(0xfbf236), color.White)
	},
	"ocean": func() color.Palette {
		return Gradient(color.Black, rgb(0x222034), rgb(0x306082), rgb(0x5fcde4), color.White)
	},
	"ega":   func() color.Palette { return Nibbles(EGA()) },
	"class": ByteClass,
}

// Default is the ramp used when none is named.
const Default = "gray"

// Lookup builds the named ramp.
func Lookup(name string) (color.Palette, error) {
	if name == "" {
		name = Default
	}
	fn, ok := builders[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownRamp, name)
	}
	return fn(), nil
}

// IsGray reports whether name selects the plain grayscale ramp.
func IsGray(name string) bool {
	return name == "" || strings.EqualFold(name, Default)
}

// Names lists the known ramps.
func Names() []string {
	names := make([]string, 0, len(builders))
	for name := range builders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
