// File: clock/clock.go
// License: Apache-2.0
//
// Periodic wrapping counter for loops that act every N iterations.

package clock

// Clock is an increasing counter that ticks up until its period is reached
// and then resets itself.
type Clock struct {
	count  uint64
	period uint64
}

// NewClock creates a clock that cycles every period ticks.
func NewClock(period uint64) *Clock {
	return &Clock{period: period}
}

// Tick increments the current count by one. On the period-th tick the
// counter resets and Tick returns true.
func (c *Clock) Tick() bool {
	c.count++
	if c.count > c.period {
		panic("clock: count ran past period")
	}
	if c.count >= c.period {
		c.count = 0
		return true
	}
	return false
}

// Reset sets the current count back to zero.
func (c *Clock) Reset() {
	c.count = 0
}

// Count returns the current count.
func (c *Clock) Count() uint64 {
	return c.count
}

// Period returns the period of the clock.
func (c *Clock) Period() uint64 {
	return c.period
}
