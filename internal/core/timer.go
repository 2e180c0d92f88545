package core

import "time"

// FixedStep accumulates wall-clock time and reports when a tick interval has
// been exceeded. Unlike a catch-up scheduler it drops the remainder when a
// tick is consumed, so a long stall produces a single tick.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
}

// NewFixedStep constructs a FixedStep controller targeting the given TPS.
func NewFixedStep(tps int) *FixedStep {
	fs := &FixedStep{}
	fs.SetTPS(tps)
	return fs
}

// SetTPS changes the tick rate. Non-positive rates fall back to 30.
func (f *FixedStep) SetTPS(tps int) {
	if tps <= 0 {
		tps = 30
	}
	f.step = time.Second / time.Duration(tps)
}

// Interval returns the duration of one tick.
func (f *FixedStep) Interval() time.Duration { return f.step }

// Pending returns the time accumulated since the last consumed tick.
func (f *FixedStep) Pending() time.Duration { return f.accumulator }

// Accumulate adds the time elapsed since the previous call. The first call
// only records now.
func (f *FixedStep) Accumulate(now time.Time) time.Duration {
	if f.last.IsZero() {
		f.last = now
	}
	delta := now.Sub(f.last)
	f.last = now
	if delta > 0 {
		f.accumulator += delta
	}
	return delta
}

// Due reports whether the accumulated time strictly exceeds one interval.
func (f *FixedStep) Due() bool { return f.accumulator > f.step }

// Consume resets the accumulator to zero.
func (f *FixedStep) Consume() { f.accumulator = 0 }

// ShouldStep accumulates up to now and consumes a tick if one is due.
func (f *FixedStep) ShouldStep(now time.Time) bool {
	f.Accumulate(now)
	if !f.Due() {
		return false
	}
	f.Consume()
	return true
}
