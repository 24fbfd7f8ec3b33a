package core

import "time"

// Cadence decides when a fixed-interval tick is due. Reset restarts the
// interval, which is how an accepted turn postpones the next scheduled tick.
type Cadence struct {
	interval time.Duration
	next     time.Time
	stopped  bool
}

// NewCadence constructs a Cadence firing every interval. Non-positive
// intervals fall back to 500ms.
func NewCadence(interval time.Duration) *Cadence {
	c := &Cadence{}
	c.SetInterval(interval)
	return c
}

// SetInterval changes the tick interval. It takes effect after the next Reset.
func (c *Cadence) SetInterval(interval time.Duration) {
	if interval <= 0 {
		interval = 500 * time.Millisecond
	}
	c.interval = interval
}

// Interval returns the configured interval.
func (c *Cadence) Interval() time.Duration { return c.interval }

// Reset schedules the next tick one interval after now and resumes a stopped cadence.
func (c *Cadence) Reset(now time.Time) {
	c.next = now.Add(c.interval)
	c.stopped = false
}

// Stop cancels the pending tick until the next Reset.
func (c *Cadence) Stop() { c.stopped = true }

// Stopped reports whether the cadence is cancelled.
func (c *Cadence) Stopped() bool { return c.stopped }

// Due reports whether a tick should run at now and, if so, schedules the
// following one. Missed intervals are not replayed.
func (c *Cadence) Due(now time.Time) bool {
	if c.stopped {
		return false
	}
	if c.next.IsZero() {
		c.Reset(now)
		return false
	}
	if now.Before(c.next) {
		return false
	}
	c.next = c.next.Add(c.interval)
	if !c.next.After(now) {
		c.next = now.Add(c.interval)
	}
	return true
}

// Remaining returns the time left until the next tick, or zero if one is due.
func (c *Cadence) Remaining(now time.Time) time.Duration {
	if c.next.IsZero() || !c.next.After(now) {
		return 0
	}
	return c.next.Sub(now)
}
