// Command gradient-render evolves the gradient world without a window and
// writes the final generation as PNG, optionally with an MJPEG recording.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"runtime"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("gradient-render: ")

	o := options{}
	flag.IntVar(&o.grid, "grid", 500, "grid width and height in cells")
	flag.IntVar(&o.scale, "scale", 2, "output pixels per cell")
	flag.IntVar(&o.gens, "gens", 300, "generations to simulate")
	flag.IntVar(&o.every, "every", 1, "record one video frame every N generations")
	flag.IntVar(&o.fps, "fps", 30, "video frame rate")
	flag.StringVar(&o.init, "init", "black", "initial state: black or noise")
	flag.Int64Var(&o.seed, "seed", 1, "seed for the noise initial state")
	flag.StringVar(&o.outDir, "out", ".", "output directory")
	flag.BoolVar(&o.video, "video", false, "also write an MJPEG .avi of the run")
	flag.IntVar(&o.workers, "workers", runtime.NumCPU(), "modes rendered concurrently")
	modes := flag.String("modes", "transposed,direct", "comma separated top neighbour modes")
	flag.Parse()

	parsed, err := parseModes(*modes)
	if err != nil {
		log.Fatal(err)
	}
	o.modes = parsed

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	results, err := renderAll(ctx, o)
	if err != nil {
		log.Fatal(err)
	}
	for _, r := range results {
		log.Printf("%s: generation %d -> %s", r.mode, r.gen, r.png)
		if r.video != "" {
			log.Printf("%s: video -> %s", r.mode, r.video)
		}
	}
}
