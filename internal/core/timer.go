package core

import "time"

const defaultTPS = 60

// FixedStep paces generations at a steady ticks-per-second rate for loops
// that have no frame clock of their own. Time owed but not yet stepped is
// carried over, so a slow tick is caught up on the next poll.
type FixedStep struct {
	interval time.Duration
	owed     time.Duration
	last     time.Time
	now      func() time.Time
}

// NewFixedStep paces at tps ticks per second, falling back to 60 for
// non-positive rates. The first ShouldStep call always fires.
func NewFixedStep(tps int) *FixedStep {
	if tps <= 0 {
		tps = defaultTPS
	}
	interval := time.Second / time.Duration(tps)
	return &FixedStep{interval: interval, owed: interval, now: time.Now}
}

// ShouldStep reports whether a tick is due and, if so, consumes it.
func (f *FixedStep) ShouldStep() bool {
	t := f.now()
	if !f.last.IsZero() {
		f.owed += t.Sub(f.last)
	}
	f.last = t
	if f.owed < f.interval {
		return false
	}
	f.owed -= f.interval
	return true
}

// Wait sleeps until the next tick is due. Callers poll ShouldStep afterwards.
func (f *FixedStep) Wait() {
	if rem := f.interval - f.owed; rem > 0 {
		time.Sleep(rem)
	}
}
