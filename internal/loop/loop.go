// Package loop drives a simulation at a fixed generation rate from a
// background goroutine, independently of how often frames are drawn.
package loop

import (
	"context"
	"sync/atomic"
	"time"

	"gradient-display/internal/core"
)

// Stepper advances a simulation by one generation.
type Stepper interface {
	Step()
}

// wakeMargin is added to each sleep so the accumulator has strictly passed
// the interval when Run wakes up.
const wakeMargin = 200 * time.Microsecond

// Loop owns the update cadence and the pause state for one simulation.
type Loop struct {
	sim    Stepper
	timer  *core.FixedStep
	paused atomic.Bool
}

// New returns a loop stepping sim at tps generations per second.
func New(sim Stepper, tps int) *Loop {
	return &Loop{sim: sim, timer: core.NewFixedStep(tps)}
}

// Interval returns the target time between generations.
func (l *Loop) Interval() time.Duration { return l.timer.Interval() }

// Paused reports whether automatic stepping is suspended.
func (l *Loop) Paused() bool { return l.paused.Load() }

// SetPaused suspends or resumes automatic stepping.
func (l *Loop) SetPaused(p bool) { l.paused.Store(p) }

// TogglePause flips the pause state and returns the new value.
func (l *Loop) TogglePause() bool {
	for {
		old := l.paused.Load()
		if l.paused.CompareAndSwap(old, !old) {
			return !old
		}
	}
}

// StepOnce advances exactly one generation, ignoring the pause state and the
// accumulated time.
func (l *Loop) StepOnce() { l.sim.Step() }

// Tick runs one iteration of the update policy at time now: elapsed time is
// accumulated, and once it exceeds the interval while running, the
// accumulator is cleared and the sim is stepped. Time keeps accumulating
// while paused. Tick must only be called from one goroutine.
func (l *Loop) Tick(now time.Time) bool {
	l.timer.Accumulate(now)
	if !l.timer.Due() || l.Paused() {
		return false
	}
	l.timer.Consume()
	l.sim.Step()
	return true
}

// Run calls Tick until ctx is cancelled, sleeping between calls until the
// next generation is due.
func (l *Loop) Run(ctx context.Context) error {
	now := time.Now()
	l.Tick(now)
	timer := time.NewTimer(l.untilDue(time.Since(now)))
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case now = <-timer.C:
			l.Tick(now)
			timer.Reset(l.untilDue(time.Since(now)))
		}
	}
}

// untilDue returns how long to sleep before the accumulator exceeds the
// interval, given the time already spent since the last Tick sampled the
// clock. While paused it waits one interval.
func (l *Loop) untilDue(spent time.Duration) time.Duration {
	wait := l.timer.Interval() + wakeMargin - spent
	if !l.Paused() {
		wait -= l.timer.Pending()
	}
	if wait < wakeMargin {
		wait = wakeMargin
	}
	return wait
}
