package layout

import "fmt"

// Build sizes the canvas for buf at the given channel count and fills it
// with the strategy for mode.
//
// A channel count of zero is a no-op that returns an empty grid without
// reading buf. Negative counts and unknown modes are rejected.
func Build(mode Mode, buf []byte, channels int) (*Grid, error) {
	fn := mode.Layout()
	if fn == nil {
		return nil, &UnknownModeError{Name: mode.String()}
	}
	if channels < 0 {
		return nil, fmt.Errorf("%w: channel count %d", ErrInvalidArgument, channels)
	}

	width, height := Resolution(PixelCount(len(buf), channels))
	return fn(width, height, buf, channels), nil
}
