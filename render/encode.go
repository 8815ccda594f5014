package render

import (
	"errors"
	"fmt"
	"image"
	"image/gif"
	"image/png"
	"io"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/32bitkid/byteimg/palette"
)

var ErrFormat = errors.New("unsupported image format")

type Format string

const (
	PNG  Format = "png"
	BMP  Format = "bmp"
	TIFF Format = "tiff"
	GIF  Format = "gif"
)

const DefaultFormat = PNG

// ParseFormat accepts a format name or a file extension.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(s, ".")) {
	case "png":
		return PNG, nil
	case "bmp":
		return BMP, nil
	case "tif", "tiff":
		return TIFF, nil
	case "gif":
		return GIF, nil
	}
	return "", fmt.Errorf("%w: %q", ErrFormat, s)
}

// Extension is the file extension, with leading dot, for the format.
func (f Format) Extension() string {
	return "." + string(f)
}

// Encode writes img to w in format f. Lossless formats only: gif output is
// exact for gray and paletted images and quantized otherwise.
func Encode(w io.Writer, img image.Image, f Format) error {
	switch f {
	case PNG:
		return png.Encode(w, img)
	case BMP:
		return bmp.Encode(w, img)
	case TIFF:
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	case GIF:
		if gray, ok := img.(*image.Gray); ok {
			img = &image.Paletted{
				Pix:     gray.Pix,
				Stride:  gray.Stride,
				Rect:    gray.Rect,
				Palette: palette.Grayscale(),
			}
		}
		return gif.Encode(w, img, &gif.Options{NumColors: 256})
	}
	return fmt.Errorf("%w: %q", ErrFormat, f)
}
