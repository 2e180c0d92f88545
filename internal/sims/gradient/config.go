package gradient

import (
	"fmt"
	"strconv"
	"strings"
)

// TopNeighbor selects which cell the blend treats as the upper neighbour.
type TopNeighbor int

const (
	// TopTransposed reads flat index top + x*size, i.e. the row and column
	// roles are swapped. This is how the demo has always computed the top
	// neighbour and it is responsible for its diagonal streaks, so it stays
	// the default.
	TopTransposed TopNeighbor = iota
	// TopDirect reads the cell directly above, x + top*size.
	TopDirect
)

func (t TopNeighbor) String() string {
	switch t {
	case TopTransposed:
		return "transposed"
	case TopDirect:
		return "direct"
	default:
		return "TopNeighbor(" + strconv.Itoa(int(t)) + ")"
	}
}

// ParseTopNeighbor converts a mode name into a TopNeighbor.
func ParseTopNeighbor(s string) (TopNeighbor, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "transposed", "":
		return TopTransposed, nil
	case "direct":
		return TopDirect, nil
	default:
		return 0, fmt.Errorf("unknown top neighbour mode %q", s)
	}
}

// Config holds parameters for the gradient world.
type Config struct {
	// Size is the width and height of the square grid.
	Size int
	// TPS is the target number of generations per second.
	TPS  int
	Top  TopNeighbor
	Seed int64
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{Size: 500, TPS: 30, Top: TopTransposed, Seed: 1}
}

// FromMap populates a Config from a string map.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["size"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Size = parsed
		}
	}
	if v, ok := cfg["tps"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.TPS = parsed
		}
	}
	if v, ok := cfg["top"]; ok {
		if parsed, err := ParseTopNeighbor(v); err == nil {
			c.Top = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	return c
}
