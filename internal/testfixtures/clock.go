package testfixtures

import (
	"sync"
	"time"
)

// Clock is a hand-cranked time source. Services take a now func; tests
// hand them NowFunc and move time explicitly between calls, so streak
// checks and reminder windows never race the wall clock.
type Clock struct {
	mu  sync.Mutex
	now time.Time
}

// NewClock returns a clock pinned to start. A zero start pins the clock
// to ReferenceTime so clocks and fixtures agree on the baseline date.
func NewClock(start time.Time) *Clock {
	if start.IsZero() {
		start = ReferenceTime()
	}
	return &Clock{now: start}
}

// Now reports the pinned instant.
func (c *Clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// NowFunc adapts the clock to the now-func shape the services accept. A
// nil clock falls back to the wall clock.
func (c *Clock) NowFunc() func() time.Time {
	if c == nil {
		return time.Now
	}
	return c.Now
}

// Set pins the clock to t.
func (c *Clock) Set(t time.Time) {
	c.mu.Lock()
	c.now = t
	c.mu.Unlock()
}

// Advance moves the clock forward by d and returns the new instant.
func (c *Clock) Advance(d time.Duration) time.Time {
	c.mu.Lock()
	c.now = c.now.Add(d)
	t := c.now
	c.mu.Unlock()
	return t
}

// AdvanceDays moves the clock forward by whole days. Streak and reminder
// rules compare calendar dates, so tests usually step in days.
func (c *Clock) AdvanceDays(days int) time.Time {
	return c.Advance(time.Duration(days) * 24 * time.Hour)
}
