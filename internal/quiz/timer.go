package quiz

import (
	"fmt"
	"time"
)

// TickInterval is how often the display should re-read a running timer.
// The tick only recomputes a derived value; elapsed time itself is always
// now minus baseline, so scheduling jitter never accumulates.
const TickInterval = 250 * time.Millisecond

// Timer is the session's single elapsed-time counter. It derives elapsed
// time from a captured baseline instant rather than incrementing a
// counter, so a stalled tick never loses time.
type Timer struct {
	now     func() time.Time
	running bool
	base    time.Time
	frozen  time.Duration
}

// NewTimer creates a stopped timer at zero. now is the clock; pass
// time.Now outside tests.
func NewTimer(now func() time.Time) *Timer {
	if now == nil {
		now = time.Now
	}
	return &Timer{now: now}
}

// Start begins (or continues) counting. No-op while already running;
// otherwise the baseline is set so elapsed time resumes from its frozen
// value instead of resetting.
func (t *Timer) Start() {
	if t.running {
		return
	}
	t.base = t.now().Add(-t.frozen)
	t.running = true
}

// Stop freezes the current elapsed value. No-op while stopped.
func (t *Timer) Stop() {
	if !t.running {
		return
	}
	t.frozen = t.now().Sub(t.base)
	t.running = false
}

// Reset stops the timer and returns elapsed time to zero.
func (t *Timer) Reset() {
	t.running = false
	t.frozen = 0
}

// Running reports whether the timer is counting.
func (t *Timer) Running() bool {
	return t.running
}

// Elapsed returns the total elapsed duration.
func (t *Timer) Elapsed() time.Duration {
	if t.running {
		return t.now().Sub(t.base)
	}
	return t.frozen
}

// Seconds returns elapsed whole seconds, floored.
func (t *Timer) Seconds() int {
	return int(t.Elapsed() / time.Second)
}

// FormatMMSS renders whole seconds as MM:SS. Negative input clamps to zero.
func FormatMMSS(sec int) string {
	if sec < 0 {
		sec = 0
	}
	return fmt.Sprintf("%02d:%02d", sec/60, sec%60)
}
