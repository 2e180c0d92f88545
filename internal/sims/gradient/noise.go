package gradient

import (
	"math"

	"github.com/aquilax/go-perlin"
)

const (
	noiseAlpha  = 2.0
	noiseBeta   = 2.0
	noiseOctave = 3
	// noiseScale is the number of cells spanned by one unit of noise space.
	noiseScale = 64.0
)

// ResetNoise fills the grid with a red-channel Perlin field derived from
// seed, keeps the red origin cell, and resets the generation counter.
func (w *World) ResetNoise(seed int64) {
	p := perlin.NewPerlin(noiseAlpha, noiseBeta, noiseOctave, seed)

	w.mu.Lock()
	defer w.mu.Unlock()
	cells := w.cur.Cells()
	for y := 0; y < w.cur.H; y++ {
		for x := 0; x < w.cur.W; x++ {
			v := p.Noise2D(float64(x)/noiseScale, float64(y)/noiseScale)
			cells[w.cur.Index(x, y)] = noiseColor(v)
		}
	}
	cells[0] = Red
	w.nxt.CopyFrom(w.cur)
	w.gen = 0
}

// noiseColor maps a noise sample in roughly [-1, 1] onto the red channel.
func noiseColor(v float64) uint32 {
	level := math.Round((v + 1) / 2 * 255)
	level = math.Max(0, math.Min(255, level))
	return uint32(level) << 16
}
