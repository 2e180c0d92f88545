//go:build ebiten

package app

import (
	"time"

	"gradient-display/internal/loop"
	"gradient-display/internal/render"
	"gradient-display/internal/sims/gradient"
	"gradient-display/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts the gradient world and its evolution loop to ebiten.Game.
// Update runs on ebiten's goroutine and only handles input; generations are
// produced by the loop's own goroutine.
type Game struct {
	world   *gradient.World
	loop    *loop.Loop
	painter *render.GridPainter
	hud     *ui.HUD
	rate    ui.RateMeter

	pixels  []uint32
	frame   int
	scale   int
	seed    int64
	showHUD bool
}

// New constructs a Game for the provided world and loop.
func New(world *gradient.World, lp *loop.Loop, cfg *Config) *Game {
	size := world.Size()
	return &Game{
		world:   world,
		loop:    lp,
		painter: render.NewGridPainter(size.W, size.H),
		hud:     ui.NewHUD(),
		frame:   cfg.Frame,
		scale:   cfg.Scale(),
		seed:    cfg.Seed,
		showHUD: cfg.HUD,
	}
}

// Update handles input.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.loop.TogglePause()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowRight) {
		g.loop.StepOnce()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.world.Reset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.seed++
		g.world.ResetNoise(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.showHUD = !g.showHUD
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		px, py := ebiten.CursorPosition()
		if x, y, ok := g.world.Size().FromScreen(px, py, g.scale); ok {
			g.world.Paint(x, y, gradient.Red)
		}
	}

	if g.showHUD {
		gen := g.world.Generation()
		g.hud.Update(ui.Status{
			Title:      Title,
			Generation: gen,
			Paused:     g.loop.Paused(),
			FPS:        ebiten.ActualFPS(),
			GensPerSec: g.rate.Observe(gen, time.Now()),
			Params:     g.world.Parameters(),
		})
	}
	return nil
}

// Draw renders the current world state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.pixels = g.world.Snapshot(g.pixels)
	if !g.painter.Blit(screen, g.pixels, g.scale) {
		return
	}
	if g.showHUD {
		g.hud.Draw(screen)
	}
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.frame, g.frame
}
