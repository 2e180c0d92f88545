package ui

import (
	"fmt"
	"time"

	"gradient-display/internal/core"
)

// KeyHelp summarises the keyboard bindings shown at the bottom of the HUD.
const KeyHelp = "space pause  right step  r reset  n noise  h hud  q/esc quit"

// Status is the information rendered by the HUD for one frame.
type Status struct {
	Title      string
	Generation uint64
	Paused     bool
	FPS        float64
	GensPerSec float64
	Params     core.ParameterSnapshot
}

// Lines formats the status as HUD text, one entry per line.
func (s Status) Lines() []string {
	state := "RUNNING"
	if s.Paused {
		state = "PAUSED"
	}
	lines := []string{
		s.Title,
		fmt.Sprintf("gen %d  %s", s.Generation, state),
		fmt.Sprintf("%.1f gen/s  %.1f fps", s.GensPerSec, s.FPS),
	}
	for _, g := range s.Params.Groups {
		lines = append(lines, "["+g.Name+"]")
		for _, p := range g.Params {
			lines = append(lines, fmt.Sprintf("  %s: %s", p.Label, p.Value))
		}
	}
	return append(lines, KeyHelp)
}

// rateWindow is the minimum span over which RateMeter averages.
const rateWindow = 500 * time.Millisecond

// RateMeter estimates generations per second from successive observations.
type RateMeter struct {
	lastGen uint64
	lastAt  time.Time
	rate    float64
}

// Observe records the generation counter at now and returns the current
// estimate. A counter that went backwards (after a reset) restarts the
// measurement.
func (m *RateMeter) Observe(gen uint64, now time.Time) float64 {
	if m.lastAt.IsZero() || gen < m.lastGen {
		m.lastGen, m.lastAt = gen, now
		return m.rate
	}
	elapsed := now.Sub(m.lastAt)
	if elapsed < rateWindow {
		return m.rate
	}
	m.rate = float64(gen-m.lastGen) / elapsed.Seconds()
	m.lastGen, m.lastAt = gen, now
	return m.rate
}
