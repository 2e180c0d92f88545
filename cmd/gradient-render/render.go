package main

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"gradient-display/internal/render"
	"gradient-display/internal/sims/gradient"

	"github.com/icza/mjpeg"
	"golang.org/x/image/draw"
	"golang.org/x/sync/errgroup"
)

type options struct {
	grid    int
	scale   int
	gens    int
	every   int
	fps     int
	init    string
	seed    int64
	outDir  string
	video   bool
	workers int
	modes   []gradient.TopNeighbor
}

type result struct {
	mode  gradient.TopNeighbor
	png   string
	video string
	gen   uint64
}

func (o options) validate() error {
	switch {
	case o.grid <= 0:
		return fmt.Errorf("grid must be positive, got %d", o.grid)
	case o.scale <= 0:
		return fmt.Errorf("scale must be positive, got %d", o.scale)
	case o.gens < 0:
		return fmt.Errorf("gens must not be negative, got %d", o.gens)
	case o.video && o.every <= 0:
		return fmt.Errorf("every must be positive, got %d", o.every)
	case o.video && o.fps <= 0:
		return fmt.Errorf("fps must be positive, got %d", o.fps)
	case o.init != "black" && o.init != "noise":
		return fmt.Errorf("unknown init %q (want black or noise)", o.init)
	case len(o.modes) == 0:
		return fmt.Errorf("no top neighbour modes selected")
	}
	seen := make(map[gradient.TopNeighbor]bool, len(o.modes))
	for _, m := range o.modes {
		if seen[m] {
			return fmt.Errorf("top neighbour mode %s listed twice", m)
		}
		seen[m] = true
	}
	return nil
}

// parseModes reads a comma separated mode list. Blank entries and repeats
// are dropped so each output file has one writer.
func parseModes(list string) ([]gradient.TopNeighbor, error) {
	var modes []gradient.TopNeighbor
	for _, name := range strings.Split(list, ",") {
		if strings.TrimSpace(name) == "" {
			continue
		}
		mode, err := gradient.ParseTopNeighbor(name)
		if err != nil {
			return nil, err
		}
		if !slices.Contains(modes, mode) {
			modes = append(modes, mode)
		}
	}
	return modes, nil
}

// renderAll evolves one world per mode in parallel and writes their output.
func renderAll(ctx context.Context, o options) ([]result, error) {
	if err := o.validate(); err != nil {
		return nil, err
	}
	if err := os.MkdirAll(o.outDir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	results := make([]result, len(o.modes))
	group, gctx := errgroup.WithContext(ctx)
	if o.workers > 0 {
		group.SetLimit(o.workers)
	}
	for i, mode := range o.modes {
		i, mode := i, mode
		group.Go(func() error {
			res, err := renderMode(gctx, o, mode)
			if err != nil {
				return fmt.Errorf("%s: %w", mode, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func renderMode(ctx context.Context, o options, mode gradient.TopNeighbor) (result, error) {
	cfg := gradient.DefaultConfig()
	cfg.Size = o.grid
	cfg.Top = mode
	cfg.Seed = o.seed
	world := gradient.NewWithConfig(cfg)
	if o.init == "noise" {
		world.ResetNoise(o.seed)
	}

	base := fmt.Sprintf("gradient-%s-%s-%d", o.init, mode, o.gens)
	res := result{mode: mode, png: filepath.Join(o.outDir, base+".png")}

	fr := newFramer(o.grid, o.scale)
	var video mjpeg.AviWriter
	if o.video {
		res.video = filepath.Join(o.outDir, base+".avi")
		size := int32(o.grid * o.scale)
		w, err := mjpeg.New(res.video, size, size, int32(o.fps))
		if err != nil {
			return res, fmt.Errorf("create video: %w", err)
		}
		video = w
		if err := fr.addVideoFrame(video, world); err != nil {
			video.Close()
			return res, err
		}
	}

	for g := 1; g <= o.gens; g++ {
		if err := ctx.Err(); err != nil {
			if video != nil {
				video.Close()
			}
			return res, err
		}
		world.Step()
		if video != nil && g%o.every == 0 {
			if err := fr.addVideoFrame(video, world); err != nil {
				video.Close()
				return res, err
			}
		}
	}
	if video != nil {
		if err := video.Close(); err != nil {
			return res, fmt.Errorf("close video: %w", err)
		}
	}

	res.gen = world.Generation()
	if err := fr.writePNG(res.png, world); err != nil {
		return res, err
	}
	return res, nil
}

// framer converts world snapshots into scaled RGBA images.
type framer struct {
	cells  []uint32
	grid   *image.RGBA
	scaled *image.RGBA
	jpeg   bytes.Buffer
}

func newFramer(size, scale int) *framer {
	return &framer{
		grid:   image.NewRGBA(image.Rect(0, 0, size, size)),
		scaled: image.NewRGBA(image.Rect(0, 0, size*scale, size*scale)),
	}
}

func (f *framer) capture(world *gradient.World) *image.RGBA {
	f.cells = world.Snapshot(f.cells)
	render.FillPackedRGBA(f.grid.Pix, f.cells)
	if f.scaled.Bounds() == f.grid.Bounds() {
		return f.grid
	}
	draw.NearestNeighbor.Scale(f.scaled, f.scaled.Bounds(), f.grid, f.grid.Bounds(), draw.Src, nil)
	return f.scaled
}

func (f *framer) addVideoFrame(w mjpeg.AviWriter, world *gradient.World) error {
	f.jpeg.Reset()
	if err := jpeg.Encode(&f.jpeg, f.capture(world), &jpeg.Options{Quality: 90}); err != nil {
		return fmt.Errorf("encode frame: %w", err)
	}
	if err := w.AddFrame(f.jpeg.Bytes()); err != nil {
		return fmt.Errorf("add frame: %w", err)
	}
	return nil
}

func (f *framer) writePNG(path string, world *gradient.World) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create png: %w", err)
	}
	if err := png.Encode(file, f.capture(world)); err != nil {
		file.Close()
		return fmt.Errorf("encode png: %w", err)
	}
	return file.Close()
}
