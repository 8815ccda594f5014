package layout

// Grid is a row-major array of 8-bit cells with shape (Height, Width, Channels).
// The cell for (row, col, ch) lives at Pix[(row*Width+col)*Channels+ch].
type Grid struct {
	Pix      []uint8
	Width    int
	Height   int
	Channels int
}

// NewGrid allocates a zero-filled grid. Non-positive dimensions yield an
// empty grid with the remaining dimensions preserved.
func NewGrid(width, height, channels int) *Grid {
	g := &Grid{
		Width:    clampZero(width),
		Height:   clampZero(height),
		Channels: clampZero(channels),
	}
	g.Pix = make([]uint8, g.Width*g.Height*g.Channels)
	return g
}

// Stride is the number of cells in one row.
func (g *Grid) Stride() int { return g.Width * g.Channels }

func (g *Grid) offset(row, col, ch int) int {
	return (row*g.Width+col)*g.Channels + ch
}

// At returns the cell value, or 0 outside the grid.
func (g *Grid) At(row, col, ch int) uint8 {
	if !g.in(row, col, ch) {
		return 0
	}
	return g.Pix[g.offset(row, col, ch)]
}

// Pixel returns the channel values of one pixel. The slice aliases Pix.
func (g *Grid) Pixel(row, col int) []uint8 {
	if !g.in(row, col, 0) {
		return nil
	}
	i := g.offset(row, col, 0)
	return g.Pix[i : i+g.Channels : i+g.Channels]
}

// Plane copies out channel ch across every pixel, in row-major order.
func (g *Grid) Plane(ch int) []uint8 {
	if ch < 0 || ch >= g.Channels {
		return nil
	}
	out := make([]uint8, 0, g.Width*g.Height)
	for i := ch; i < len(g.Pix); i += g.Channels {
		out = append(out, g.Pix[i])
	}
	return out
}

// Empty reports whether the grid holds no cells.
func (g *Grid) Empty() bool { return len(g.Pix) == 0 }

func (g *Grid) in(row, col, ch int) bool {
	return row >= 0 && row < g.Height &&
		col >= 0 && col < g.Width &&
		ch >= 0 && ch < g.Channels
}

func clampZero(i int) int {
	if i < 0 {
		return 0
	}
	return i
}
