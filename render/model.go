package render

import (
	"errors"
	"fmt"
	"strings"
)

var ErrColorModel = errors.New("color model mismatch")

// ColorModel is the tag that tells the adapter how to read a pixel's
// channels. The names follow the usual imaging-library tags.
type ColorModel string

const (
	Gray      ColorModel = "L"
	GrayAlpha ColorModel = "LA"
	RGB       ColorModel = "RGB"
	RGBA      ColorModel = "RGBA"
	CMYK      ColorModel = "CMYK"
)

// DefaultColorModel is used for multi-channel modes when none is given.
const DefaultColorModel = RGB

var colorModels = [...]ColorModel{Gray, GrayAlpha, RGB, RGBA, CMYK}

// Channels is the number of values per pixel the model expects, or 0 for an
// unknown model.
func (m ColorModel) Channels() int {
	switch m {
	case Gray:
		return 1
	case GrayAlpha:
		return 2
	case RGB:
		return 3
	case RGBA, CMYK:
		return 4
	}
	return 0
}

// ParseColorModel matches a tag case-insensitively.
func ParseColorModel(s string) (ColorModel, error) {
	for _, m := range colorModels {
		if strings.EqualFold(s, string(m)) {
			return m, nil
		}
	}
	return "", fmt.Errorf("%w: unknown color model %q", ErrColorModel, s)
}

// ForChannels picks the model that fits a channel count.
func ForChannels(channels int) (ColorModel, bool) {
	for _, m := range colorModels {
		if m.Channels() == channels {
			return m, true
		}
	}
	return "", false
}
