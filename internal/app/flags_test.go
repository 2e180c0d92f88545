package app

import (
	"flag"
	"io"
	"strings"
	"testing"

	"gradient-display/internal/sims/gradient"
)

func TestDefaults(t *testing.T) {
	c := NewConfig()
	if err := c.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if c.Scale() != 2 {
		t.Fatalf("Scale() = %d, want 2", c.Scale())
	}
	wc := c.WorldConfig()
	if wc.Size != 500 || wc.TPS != 30 || wc.Top != gradient.TopTransposed {
		t.Fatalf("WorldConfig() = %+v", wc)
	}
}

func TestBindParsesFlags(t *testing.T) {
	c := NewConfig()
	fs := flag.NewFlagSet("gradient", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	c.Bind(fs)
	if err := fs.Parse([]string{"-grid", "100", "-frame", "300", "-tps", "60", "-fix-top", "-vsync=false", "-seed", "5"}); err != nil {
		t.Fatalf("parse: %v", err)
	}
	want := Config{Grid: 100, Frame: 300, TPS: 60, FixTop: true, VSync: false, Seed: 5}
	if *c != want {
		t.Fatalf("config = %+v, want %+v", *c, want)
	}
	if c.Scale() != 3 {
		t.Fatalf("Scale() = %d, want 3", c.Scale())
	}
	if c.WorldConfig().Top != gradient.TopDirect {
		t.Fatal("-fix-top should select the direct top neighbour")
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name string
		cfg  Config
		want string
	}{
		{"zero grid", Config{Grid: 0, Frame: 100, TPS: 30}, "grid size"},
		{"negative frame", Config{Grid: 10, Frame: -1, TPS: 30}, "frame size must be positive"},
		{"uneven scale", Config{Grid: 300, Frame: 1000, TPS: 30}, "not a multiple"},
		{"zero tps", Config{Grid: 10, Frame: 20, TPS: 0}, "tps"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.Validate()
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("error %q does not mention %q", err, tc.want)
			}
		})
	}
}
