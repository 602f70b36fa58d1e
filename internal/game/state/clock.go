package state

import "time"

// Clock measures time since construction on the monotonic clock.
type Clock struct {
	start    time.Time
	now      func() time.Time
	previous float64
}

// NewClock starts a clock at the current instant.
func NewClock() *Clock {
	return newClock(time.Now)
}

func newClock(now func() time.Time) *Clock {
	return &Clock{start: now(), now: now}
}

// Reset restarts the clock at the current instant.
func (c *Clock) Reset() {
	c.start = c.now()
	c.previous = 0
}

// Elapsed returns seconds since the clock started.
func (c *Clock) Elapsed() float64 {
	return c.now().Sub(c.start).Seconds()
}

// Tick returns the elapsed time and the time since the previous Tick.
// delta is never negative.
func (c *Clock) Tick() (elapsed, delta float64) {
	elapsed = c.Elapsed()
	delta = elapsed - c.previous
	if delta < 0 {
		delta = 0
	}
	c.previous = elapsed
	return elapsed, delta
}
