package loop

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"gradient-display/internal/sims/gradient"
)

type countingSim struct{ steps atomic.Int64 }

func (c *countingSim) Step() { c.steps.Add(1) }

func TestTickStepsAtFixedRate(t *testing.T) {
	sim := &countingSim{}
	l := New(sim, 10)
	start := time.Unix(100, 0)

	l.Tick(start)
	for i := 1; i <= 9; i++ {
		if l.Tick(start.Add(time.Duration(i) * 10 * time.Millisecond)) {
			t.Fatalf("stepped early at %dms", i*10)
		}
	}
	if !l.Tick(start.Add(101 * time.Millisecond)) {
		t.Fatal("expected a step once the interval was exceeded")
	}
	if got := sim.steps.Load(); got != 1 {
		t.Fatalf("steps = %d, want 1", got)
	}
}

func TestPausedTicksNeverAdvance(t *testing.T) {
	world := gradient.New(8)
	l := New(world, 30)
	l.SetPaused(true)

	start := time.Unix(0, 0)
	for i := 0; i < 100; i++ {
		l.Tick(start.Add(time.Duration(i) * time.Second))
	}
	if got := world.Generation(); got != 0 {
		t.Fatalf("generation = %d while paused, want 0", got)
	}

	l.StepOnce()
	if got := world.Generation(); got != 1 {
		t.Fatalf("generation = %d after single step, want 1", got)
	}

	if l.TogglePause() {
		t.Fatal("TogglePause should have resumed the loop")
	}
	// Time accumulated while paused is spent on the first running tick.
	if !l.Tick(start.Add(100 * time.Second)) {
		t.Fatal("expected an immediate step after resuming")
	}
	if got := world.Generation(); got != 2 {
		t.Fatalf("generation = %d, want 2", got)
	}
}

func TestStepOnceWhileRunning(t *testing.T) {
	sim := &countingSim{}
	l := New(sim, 30)
	l.StepOnce()
	l.StepOnce()
	if got := sim.steps.Load(); got != 2 {
		t.Fatalf("steps = %d, want 2", got)
	}
}

func TestTogglePause(t *testing.T) {
	l := New(&countingSim{}, 30)
	if l.Paused() {
		t.Fatal("new loop should be running")
	}
	if !l.TogglePause() || !l.Paused() {
		t.Fatal("first toggle should pause")
	}
	if l.TogglePause() || l.Paused() {
		t.Fatal("second toggle should resume")
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	sim := &countingSim{}
	l := New(sim, 1000)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- l.Run(ctx) }()

	deadline := time.After(2 * time.Second)
	for sim.steps.Load() == 0 {
		select {
		case <-deadline:
			cancel()
			t.Fatal("Run never stepped the sim")
		case <-time.After(time.Millisecond):
		}
	}
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run returned %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestRunHoldsTargetRate(t *testing.T) {
	if testing.Short() {
		t.Skip("timing test")
	}
	sim := &countingSim{}
	l := New(sim, 30)
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	if err := l.Run(ctx); err != nil {
		t.Fatalf("Run returned %v", err)
	}
	// The first interval is spent measuring, so 29 steps is typical.
	if got := sim.steps.Load(); got < 28 || got > 31 {
		t.Fatalf("steps in 1s = %d, want 28..31", got)
	}
}

func TestUntilDue(t *testing.T) {
	l := New(&countingSim{}, 10)
	start := time.Unix(0, 0)
	l.Tick(start)
	l.Tick(start.Add(40 * time.Millisecond))

	if got, want := l.untilDue(0), 60*time.Millisecond+wakeMargin; got != want {
		t.Fatalf("untilDue(0) = %v, want %v", got, want)
	}
	if got, want := l.untilDue(10*time.Millisecond), 50*time.Millisecond+wakeMargin; got != want {
		t.Fatalf("untilDue(10ms) = %v, want %v", got, want)
	}
	if got := l.untilDue(time.Second); got != wakeMargin {
		t.Fatalf("overdue wait = %v, want %v", got, wakeMargin)
	}

	l.SetPaused(true)
	if got, want := l.untilDue(0), 100*time.Millisecond+wakeMargin; got != want {
		t.Fatalf("paused wait = %v, want %v", got, want)
	}
}
