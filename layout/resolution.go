package layout

import "math"

// Resolution returns the most square (width, height) whose area holds at
// least length pixels, using at most one extra row and one extra column
// beyond floor(sqrt(length)).
//
// A perfect square is returned as-is. Otherwise the height is always
// floor(sqrt)+1 and the width only gains a column when sqrt(length) is at
// least halfway to the next integer.
func Resolution(length int) (width, height int) {
	if length <= 0 {
		return 0, 0
	}

	r := isqrt(length)
	if r*r == length {
		return r, r
	}

	// sqrt(length) >= r+0.5  <=>  length > r*r+r for integers
	width = r
	if length-r*r > r {
		width++
	}
	return width, r + 1
}

// PixelCount is the number of pixel slots needed to hold length bytes at
// channels bytes per pixel.
func PixelCount(length, channels int) int {
	if length <= 0 || channels <= 0 {
		return 0
	}
	return length/channels + boolToInt(length%channels != 0)
}

// isqrt returns floor(sqrt(n)) for n > 0, correcting float rounding at
// large magnitudes. Comparisons divide instead of multiply so they cannot
// overflow.
func isqrt(n int) int {
	r := int(math.Sqrt(float64(n)))
	for r > 0 && r > n/r {
		r--
	}
	for r+1 <= n/(r+1) {
		r++
	}
	return r
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
