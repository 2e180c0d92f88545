package core

// ColorGrid stores a 2D grid of packed 0xRRGGBB values in row-major order.
type ColorGrid struct {
	W, H int
	data []uint32
}

// NewColorGrid allocates a grid with the given dimensions.
func NewColorGrid(w, h int) *ColorGrid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &ColorGrid{W: w, H: h, data: make([]uint32, w*h)}
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *ColorGrid) Cells() []uint32 { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *ColorGrid) Index(x, y int) int { return y*g.W + x }

// Contains reports whether (x, y) addresses a cell of the grid.
func (g *ColorGrid) Contains(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.W && y < g.H
}

// Fill sets every cell to c.
func (g *ColorGrid) Fill(c uint32) {
	for i := range g.data {
		g.data[i] = c
	}
}

// CopyFrom overwrites g with the contents of src. Grids of different shape
// are left untouched.
func (g *ColorGrid) CopyFrom(src *ColorGrid) {
	if src == nil || src.W != g.W || src.H != g.H {
		return
	}
	copy(g.data, src.data)
}
