// Package render turns a filled layout.Grid into an image.Image and writes
// it out in a concrete file format.
package render

import (
	"fmt"
	"image"
	"image/color"

	"github.com/32bitkid/byteimg/layout"
)

type Options struct {
	// ColorModel tags multi-channel grids. Single mode always renders as Gray.
	ColorModel ColorModel
	// Palette, when set, colours single mode output through a 256-entry ramp.
	Palette color.Palette
	// Scale is an integer upscale factor; values below 2 leave the size alone.
	Scale int
}

// Image adapts g, built with mode, to an image. The grid is copied; the
// returned image does not alias g.Pix.
func Image(g *layout.Grid, mode layout.Mode, opts Options) (image.Image, error) {
	if g == nil {
		return nil, fmt.Errorf("%w: nil grid", layout.ErrInvalidArgument)
	}

	var (
		img image.Image
		err error
	)
	if mode.Multichannel() {
		model := opts.ColorModel
		if model == "" {
			model = DefaultColorModel
		}
		img, err = multichannel(g, model)
	} else {
		img, err = single(g, opts.Palette)
	}
	if err != nil {
		return nil, err
	}

	if opts.Scale > 1 {
		img = Scale(img, opts.Scale)
	}
	return img, nil
}

func single(g *layout.Grid, pal color.Palette) (image.Image, error) {
	if g.Channels != 1 {
		return nil, fmt.Errorf("%w: single plane has %d channels", ErrColorModel, g.Channels)
	}
	rect := image.Rect(0, 0, g.Width, g.Height)
	if pal == nil {
		dst := image.NewGray(rect)
		copy(dst.Pix, g.Pix)
		return dst, nil
	}
	if len(pal) < 256 {
		return nil, fmt.Errorf("%w: palette has %d entries, need 256", ErrColorModel, len(pal))
	}
	dst := image.NewPaletted(rect, pal)
	copy(dst.Pix, g.Pix)
	return dst, nil
}

func multichannel(g *layout.Grid, model ColorModel) (image.Image, error) {
	if want := model.Channels(); want == 0 {
		return nil, fmt.Errorf("%w: unknown color model %q", ErrColorModel, model)
	} else if want != g.Channels {
		return nil, fmt.Errorf("%w: %s needs %d channels, grid has %d", ErrColorModel, model, want, g.Channels)
	}

	rect := image.Rect(0, 0, g.Width, g.Height)
	switch model {
	case Gray:
		dst := image.NewGray(rect)
		copy(dst.Pix, g.Pix)
		return dst, nil
	case GrayAlpha:
		dst := image.NewNRGBA(rect)
		for i, j := 0, 0; i < len(g.Pix); i, j = i+2, j+4 {
			y, a := g.Pix[i], g.Pix[i+1]
			dst.Pix[j+0], dst.Pix[j+1], dst.Pix[j+2], dst.Pix[j+3] = y, y, y, a
		}
		return dst, nil
	case RGB:
		dst := image.NewRGBA(rect)
		for i, j := 0, 0; i < len(g.Pix); i, j = i+3, j+4 {
			dst.Pix[j+0], dst.Pix[j+1], dst.Pix[j+2], dst.Pix[j+3] = g.Pix[i], g.Pix[i+1], g.Pix[i+2], 0xff
		}
		return dst, nil
	case RGBA:
		dst := image.NewNRGBA(rect)
		copy(dst.Pix, g.Pix)
		return dst, nil
	case CMYK:
		dst := image.NewCMYK(rect)
		copy(dst.Pix, g.Pix)
		return dst, nil
	}
	return nil, fmt.Errorf("%w: unknown color model %q", ErrColorModel, model)
}
