package engine

import "time"

// FrameClock measures per-tick deltas from a TimeProvider
// Deltas are capped so a stalled frame cannot burst timers
type FrameClock struct {
	provider TimeProvider
	last     time.Time
	maxDelta time.Duration
	started  bool
}

// NewFrameClock creates a clock; maxDelta <= 0 disables the cap
func NewFrameClock(provider TimeProvider, maxDelta time.Duration) *FrameClock {
	return &FrameClock{
		provider: provider,
		maxDelta: maxDelta,
	}
}

// Tick returns elapsed time since the previous Tick, zero on the first call
func (c *FrameClock) Tick() time.Duration {
	now := c.provider.Now()
	if !c.started {
		c.started = true
		c.last = now
		return 0
	}

	dt := now.Sub(c.last)
	c.last = now
	if dt < 0 {
		return 0
	}
	if c.maxDelta > 0 && dt > c.maxDelta {
		return c.maxDelta
	}
	return dt
}

// Reset forgets the previous reading; the next Tick returns zero
func (c *FrameClock) Reset() {
	c.started = false
}
