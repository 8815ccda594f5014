package layout

import "math"

// Func fills a fresh grid from buf. Every strategy is a pure function of its
// arguments; len(buf) is the input length.
type Func = func(width, height int, buf []byte, channels int) *Grid

// Linear interleaves channels: consecutive bytes fill the channels of one
// pixel, pixels fill a row, rows fill the grid.
//
//	index   - 0 1 2 3 4 5 6 7 8 9 10 11
//	channel - R G B R G B R G B R  G  B
//	pixel   - 0 0 0 1 1 1 2 2 2 3  3  3
func Linear(width, height int, buf []byte, channels int) *Grid {
	g := NewGrid(width, height, channels)
	if channels <= 0 {
		return g
	}

	n := len(buf)
	if n > len(g.Pix) {
		n = len(g.Pix)
	}
	// Row-major pixels with channels innermost is exactly the Pix order.
	copy(g.Pix, buf[:n])
	return g
}

// Channel fills whole planes: the first Width*Height bytes become channel
// 0, the next Width*Height bytes channel 1, and so on.
//
//	index   - 0 1 2 3 4 5 6 7 8 9 10 11
//	channel - R R R R G G G G B B  B  B
//	pixel   - 0 1 2 3 0 1 2 3 0 1  2  3
func Channel(width, height int, buf []byte, channels int) *Grid {
	g := NewGrid(width, height, channels)
	if channels <= 0 {
		return g
	}

	i, n := 0, len(buf)
	for ch := 0; ch < g.Channels; ch++ {
		for row := 0; row < g.Height; row++ {
			for col := 0; col < g.Width; col++ {
				if i >= n {
					return g
				}
				g.Pix[g.offset(row, col, ch)] = buf[i]
				i++
			}
		}
	}
	return g
}

// SingleSize is the canvas used by Single: each side grows by
// sqrt(channels), with one extra column.
func SingleSize(width, height, channels int) (newWidth, newHeight int) {
	if channels < 0 {
		channels = 0
	}
	scale := math.Sqrt(float64(channels))
	return int(float64(width)*scale) + 1, int(float64(height) * scale)
}

// Single ignores channel interleaving and lays every byte out as one
// grayscale pixel on a canvas inflated by SingleSize. Bytes that do not fit
// the canvas are dropped.
//
//	index   - 0 1 2 3 4 5 6 7 8 9 10 11
//	channel - A A A A A A A A A A  A  A
//	pixel   - 0 1 2 3 4 5 6 7 8 9 10 11
func Single(width, height int, buf []byte, channels int) *Grid {
	w, h := SingleSize(width, height, channels)
	g := NewGrid(w, h, 1)
	if channels <= 0 {
		return g
	}

	n := len(buf)
	if n > len(g.Pix) {
		n = len(g.Pix)
	}
	for i := 0; i < n; i++ {
		g.Pix[g.offset(i/g.Width, i%g.Width, 0)] = buf[i]
	}
	return g
}
