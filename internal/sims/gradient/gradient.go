package gradient

import (
	"sync"

	"gradient-display/internal/core"
)

// Packed 0xRRGGBB colours used by the world.
const (
	Black uint32 = 0x000000
	Red   uint32 = 0xFF0000
)

// Blend averages two packed colours as a single integer:
// ((a ^ b) >> 1) + (a & b). Bits shifted out of one channel land in the
// next one down, so Blend(Red, Black) is 0x7F8000 rather than 0x7F0000.
func Blend(a, b uint32) uint32 {
	return ((a ^ b) >> 1) + (a & b)
}

// World is a square grid of packed colours evolving by neighbour blending.
// All methods are safe for concurrent use; one mutex guards both buffers.
type World struct {
	cfg Config

	mu  sync.Mutex
	cur *core.ColorGrid
	nxt *core.ColorGrid
	gen uint64
}

// NewWithConfig creates a world and initialises it.
func NewWithConfig(cfg Config) *World {
	if cfg.Size <= 0 {
		cfg.Size = DefaultConfig().Size
	}
	if cfg.TPS <= 0 {
		cfg.TPS = DefaultConfig().TPS
	}
	w := &World{
		cfg: cfg,
		cur: core.NewColorGrid(cfg.Size, cfg.Size),
		nxt: core.NewColorGrid(cfg.Size, cfg.Size),
	}
	w.Reset()
	return w
}

// New creates a world of the given size with default settings.
func New(size int) *World {
	cfg := DefaultConfig()
	cfg.Size = size
	return NewWithConfig(cfg)
}

// Size returns the grid dimensions.
func (w *World) Size() core.Size { return core.Size{W: w.cfg.Size, H: w.cfg.Size} }

// Config returns the configuration the world was built with.
func (w *World) Config() Config { return w.cfg }

// Reset paints the grid black with a single red cell at the origin.
func (w *World) Reset() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.cur.Fill(Black)
	w.cur.Cells()[0] = Red
	w.nxt.CopyFrom(w.cur)
	w.gen = 0
}

// Fill sets every cell of the grid to c.
func (w *World) Fill(c uint32) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.cur.Fill(c)
	w.nxt.Fill(c)
}

// Seed writes c into the scratch buffer at (x, y). It becomes visible after
// the next Commit. Coordinates outside the grid are ignored.
func (w *World) Seed(x, y int, c uint32) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.seed(x, y, c)
}

func (w *World) seed(x, y int, c uint32) bool {
	if !w.nxt.Contains(x, y) {
		return false
	}
	w.nxt.Cells()[w.nxt.Index(x, y)] = c
	return true
}

// Commit publishes the scratch buffer as the current grid.
func (w *World) Commit() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.cur.CopyFrom(w.nxt)
}

// Paint seeds (x, y) and commits in one critical section.
func (w *World) Paint(x, y int, c uint32) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.seed(x, y, c) {
		return false
	}
	w.cur.CopyFrom(w.nxt)
	return true
}

// At returns the current colour at (x, y). Out of range reads return Black.
func (w *World) At(x, y int) uint32 {
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.cur.Contains(x, y) {
		return Black
	}
	return w.cur.Cells()[w.cur.Index(x, y)]
}

// Snapshot copies the current grid into dst, growing it when needed.
func (w *World) Snapshot(dst []uint32) []uint32 {
	w.mu.Lock()
	defer w.mu.Unlock()
	cells := w.cur.Cells()
	if cap(dst) < len(cells) {
		dst = make([]uint32, len(cells))
	}
	dst = dst[:len(cells)]
	copy(dst, cells)
	return dst
}

// Generation returns the number of update steps since the last reset.
func (w *World) Generation() uint64 {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.gen
}

// Step computes one generation into the scratch buffer and commits it.
func (w *World) Step() {
	w.mu.Lock()
	defer w.mu.Unlock()

	n := w.cfg.Size
	cur := w.cur.Cells()
	nxt := w.nxt.Cells()
	for y := 0; y < n; y++ {
		top := y - 1
		for x := 0; x < n; x++ {
			left := x - 1
			result := cur[x+y*n]
			if x != 0 {
				result = Blend(result, cur[left+y*n])
			}
			if y != 0 {
				result = Blend(result, cur[w.topIndex(x, top)])
			}
			if x != 0 && y != 0 {
				result = Blend(result, cur[left+top*n])
			}
			nxt[x+y*n] = result
		}
	}
	w.cur.CopyFrom(w.nxt)
	w.gen++
}

func (w *World) topIndex(x, top int) int {
	n := w.cfg.Size
	if w.cfg.Top == TopDirect {
		return x + top*n
	}
	return top + x*n
}
