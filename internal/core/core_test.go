package core

import (
	"testing"
	"time"
)

func TestFromScreen(t *testing.T) {
	size := Size{W: 500, H: 500}
	cases := []struct {
		px, py int
		x, y   int
		ok     bool
	}{
		{0, 0, 0, 0, true},
		{1, 1, 0, 0, true},
		{2, 3, 1, 1, true},
		{999, 999, 499, 499, true},
		{1000, 0, 0, 0, false},
		{0, 1000, 0, 0, false},
		{-1, 5, 0, 0, false},
	}
	for _, tc := range cases {
		x, y, ok := size.FromScreen(tc.px, tc.py, 2)
		if ok != tc.ok || x != tc.x || y != tc.y {
			t.Errorf("FromScreen(%d,%d) = (%d,%d,%v), want (%d,%d,%v)", tc.px, tc.py, x, y, ok, tc.x, tc.y, tc.ok)
		}
	}
}

func TestColorGridIndexAndCopy(t *testing.T) {
	g := NewColorGrid(4, 3)
	if got := g.Index(3, 2); got != 11 {
		t.Fatalf("Index(3,2) = %d, want 11", got)
	}
	if g.Contains(4, 0) || g.Contains(0, 3) || !g.Contains(3, 2) {
		t.Fatal("Contains reports wrong bounds")
	}

	g.Fill(0x123456)
	dst := NewColorGrid(4, 3)
	dst.CopyFrom(g)
	for i, c := range dst.Cells() {
		if c != 0x123456 {
			t.Fatalf("cell %d = %#06x after copy", i, c)
		}
	}

	other := NewColorGrid(2, 2)
	other.CopyFrom(g)
	if other.Cells()[0] != 0 {
		t.Fatal("copy between mismatched shapes must be ignored")
	}
}

func TestFixedStepRequiresExceedingInterval(t *testing.T) {
	fs := NewFixedStep(10)
	start := time.Unix(0, 0)
	if fs.ShouldStep(start) {
		t.Fatal("first call must only record the start time")
	}
	if fs.ShouldStep(start.Add(100 * time.Millisecond)) {
		t.Fatal("exactly one interval must not trigger a step")
	}
	if !fs.ShouldStep(start.Add(101 * time.Millisecond)) {
		t.Fatal("exceeding the interval must trigger a step")
	}
	if fs.Pending() != 0 {
		t.Fatalf("accumulator = %v after consume, want 0", fs.Pending())
	}
}

func TestFixedStepDropsRemainder(t *testing.T) {
	fs := NewFixedStep(10)
	start := time.Unix(0, 0)
	fs.Accumulate(start)
	if !fs.ShouldStep(start.Add(time.Second)) {
		t.Fatal("a long stall should produce a tick")
	}
	if fs.ShouldStep(start.Add(time.Second + time.Millisecond)) {
		t.Fatal("a stall must not be replayed as several ticks")
	}
}

func TestFixedStepDefaultRate(t *testing.T) {
	fs := NewFixedStep(0)
	if want := time.Second / 30; fs.Interval() != want {
		t.Fatalf("Interval() = %v, want %v", fs.Interval(), want)
	}
}
