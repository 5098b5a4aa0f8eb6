package testutil

import (
	"sync"
	"time"
)

// FixedClock provides a settable wall clock for tests.
//
// Calendars take time through an injected func() time.Time; handing them
// a FixedClock's Now makes "today" and the slot-search clamp
// deterministic regardless of when the test runs.
//
// Thread-safety: all methods are safe for concurrent use via internal
// mutex, so a clock can be shared between a test and the code under
// test.
type FixedClock struct {
	mu  sync.Mutex
	now time.Time
}

// NewFixedClock creates a clock frozen at the given instant.
func NewFixedClock(now time.Time) *FixedClock {
	return &FixedClock{now: now}
}

// Now returns the current fixed instant.
//
// Matches the func() time.Time shape expected by calendar.WithNow, so it
// can be passed as clock.Now directly.
func (c *FixedClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Set moves the clock to a new instant. Later Set calls may move the
// clock backwards; nothing in the tests requires monotonicity.
func (c *FixedClock) Set(now time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = now
}

// Advance moves the clock forward by d.
func (c *FixedClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}
