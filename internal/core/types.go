package core

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Contains reports whether (x, y) lies inside the grid.
func (s Size) Contains(x, y int) bool {
	return x >= 0 && y >= 0 && x < s.W && y < s.H
}

// FromScreen maps window pixel coordinates to grid coordinates for a grid
// drawn scale times larger than its logical size. Positions outside the grid
// report ok=false.
func (s Size) FromScreen(px, py, scale int) (x, y int, ok bool) {
	if scale <= 0 {
		scale = 1
	}
	if px < 0 || py < 0 {
		return 0, 0, false
	}
	x, y = px/scale, py/scale
	if !s.Contains(x, y) {
		return 0, 0, false
	}
	return x, y, true
}
