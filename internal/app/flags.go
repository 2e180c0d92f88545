package app

import (
	"errors"
	"flag"
	"fmt"

	"gradient-display/internal/sims/gradient"
)

// Title is the window title.
const Title = "Gradient Display"

// Config represents the command-line parameters for the application.
type Config struct {
	Grid   int
	Frame  int
	TPS    int
	FixTop bool
	VSync  bool
	HUD    bool
	Seed   int64
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Grid: 500, Frame: 1000, TPS: 30, VSync: true, Seed: 1}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Grid, "grid", c.Grid, "grid width and height in cells")
	fs.IntVar(&c.Frame, "frame", c.Frame, "window width and height in pixels")
	fs.IntVar(&c.TPS, "tps", c.TPS, "generations per second")
	fs.BoolVar(&c.FixTop, "fix-top", c.FixTop, "blend with the cell directly above instead of the transposed one")
	fs.BoolVar(&c.VSync, "vsync", c.VSync, "synchronise rendering with the display refresh")
	fs.BoolVar(&c.HUD, "hud", c.HUD, "show the status panel on start")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the noise background")
}

// Validate reports configuration values the app cannot run with.
func (c *Config) Validate() error {
	var errs []error
	if c.Grid <= 0 {
		errs = append(errs, fmt.Errorf("grid size must be positive, got %d", c.Grid))
	}
	if c.Frame <= 0 {
		errs = append(errs, fmt.Errorf("frame size must be positive, got %d", c.Frame))
	}
	if c.Grid > 0 && c.Frame > 0 && c.Frame%c.Grid != 0 {
		errs = append(errs, fmt.Errorf("frame size %d is not a multiple of grid size %d", c.Frame, c.Grid))
	}
	if c.TPS <= 0 {
		errs = append(errs, fmt.Errorf("tps must be positive, got %d", c.TPS))
	}
	return errors.Join(errs...)
}

// Scale returns the number of window pixels per grid cell.
func (c *Config) Scale() int {
	if c.Grid <= 0 || c.Frame < c.Grid {
		return 1
	}
	return c.Frame / c.Grid
}

// WorldConfig derives the gradient world configuration.
func (c *Config) WorldConfig() gradient.Config {
	top := gradient.TopTransposed
	if c.FixTop {
		top = gradient.TopDirect
	}
	return gradient.Config{Size: c.Grid, TPS: c.TPS, Top: top, Seed: c.Seed}
}
