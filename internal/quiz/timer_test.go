package quiz

import (
	"testing"
	"time"
)

type fakeClock struct {
	t time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) now() time.Time {
	return c.t
}

func (c *fakeClock) advance(d time.Duration) {
	c.t = c.t.Add(d)
}

func TestTimerStartTwiceDoesNotReset(t *testing.T) {
	clock := newFakeClock()
	tm := NewTimer(clock.now)

	tm.Start()
	clock.advance(10 * time.Second)
	tm.Start() // no-op while running

	if got := tm.Seconds(); got != 10 {
		t.Errorf("Seconds() = %d, want 10", got)
	}
}

func TestTimerStopFreezes(t *testing.T) {
	clock := newFakeClock()
	tm := NewTimer(clock.now)

	tm.Start()
	clock.advance(7 * time.Second)
	tm.Stop()
	clock.advance(1 * time.Minute)

	if got := tm.Seconds(); got != 7 {
		t.Errorf("Seconds() after stop = %d, want 7", got)
	}
	if tm.Running() {
		t.Error("expected timer to be stopped")
	}
}

func TestTimerResumesFromFrozenValue(t *testing.T) {
	clock := newFakeClock()
	tm := NewTimer(clock.now)

	tm.Start()
	clock.advance(30 * time.Second)
	tm.Stop()
	clock.advance(5 * time.Minute) // paused time must not count
	tm.Start()
	clock.advance(15 * time.Second)

	if got := tm.Seconds(); got != 45 {
		t.Errorf("Seconds() = %d, want 45", got)
	}
}

func TestTimerElapsedIsDerivedNotIncremented(t *testing.T) {
	clock := newFakeClock()
	tm := NewTimer(clock.now)

	tm.Start()
	// A long gap with no intermediate reads must still be fully counted.
	clock.advance(90 * time.Minute)

	if got := tm.Elapsed(); got != 90*time.Minute {
		t.Errorf("Elapsed() = %v, want 90m", got)
	}
}

func TestTimerReset(t *testing.T) {
	clock := newFakeClock()
	tm := NewTimer(clock.now)

	tm.Start()
	clock.advance(42 * time.Second)
	tm.Reset()

	if got := tm.Seconds(); got != 0 {
		t.Errorf("Seconds() after reset = %d, want 0", got)
	}
	if tm.Running() {
		t.Error("expected reset timer to be stopped")
	}
}

func TestTimerStopWhileStoppedIsNoOp(t *testing.T) {
	clock := newFakeClock()
	tm := NewTimer(clock.now)

	tm.Start()
	clock.advance(3 * time.Second)
	tm.Stop()
	tm.Stop()

	if got := tm.Seconds(); got != 3 {
		t.Errorf("Seconds() = %d, want 3", got)
	}
}

func TestFormatMMSS(t *testing.T) {
	tests := []struct {
		sec  int
		want string
	}{
		{0, "00:00"},
		{5, "00:05"},
		{65, "01:05"},
		{600, "10:00"},
		{3599, "59:59"},
		{-10, "00:00"},
	}
	for _, tt := range tests {
		if got := FormatMMSS(tt.sec); got != tt.want {
			t.Errorf("FormatMMSS(%d) = %q, want %q", tt.sec, got, tt.want)
		}
	}
}
