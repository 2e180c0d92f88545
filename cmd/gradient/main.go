//go:build ebiten

package main

import (
	"context"
	"errors"
	"flag"
	"log"

	"gradient-display/internal/app"
	"gradient-display/internal/loop"
	"gradient-display/internal/sims/gradient"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/sync/errgroup"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("gradient: ")

	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	world := gradient.NewWithConfig(cfg.WorldConfig())
	lp := loop.New(world, cfg.TPS)
	game := app.New(world, lp, cfg)

	ebiten.SetWindowTitle(app.Title)
	ebiten.SetWindowSize(cfg.Frame, cfg.Frame)
	ebiten.SetVsyncEnabled(cfg.VSync)

	ctx, cancel := context.WithCancel(context.Background())
	group, gctx := errgroup.WithContext(ctx)
	group.Go(func() error { return lp.Run(gctx) })

	runErr := ebiten.RunGame(game)
	cancel()
	if err := group.Wait(); err != nil {
		log.Printf("evolution loop: %v", err)
	}
	if runErr != nil && !errors.Is(runErr, ebiten.Termination) {
		log.Fatal(runErr)
	}
}
