package gradient

import "gradient-display/internal/core"

// Parameters reports the world configuration for display.
func (w *World) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				core.IntParam("size", "Grid size", int64(w.cfg.Size)),
				core.IntParam("seed", "Seed", w.cfg.Seed),
			},
		},
		{
			Name: "Blend",
			Params: []core.Parameter{
				core.IntParam("tps", "Generations/s", int64(w.cfg.TPS)),
				core.StringParam("top", "Top neighbour", w.cfg.Top.String()),
			},
		},
	}}
}
