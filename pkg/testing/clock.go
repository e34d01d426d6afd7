package testing

import (
	"sync"
	"time"
)

// FrameDuration is the fake frame interval used by PumpAndSettle.
const FrameDuration = 16 * time.Millisecond

// FakeClock provides controllable time for deterministic animation tests.
// All methods are safe for concurrent use.
type FakeClock struct {
	mu     sync.Mutex
	now    time.Time
	epoch  time.Time
	frames int
}

// NewFakeClock returns a FakeClock starting at a fixed epoch.
func NewFakeClock() *FakeClock {
	epoch := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	return &FakeClock{now: epoch, epoch: epoch}
}

// Now returns the current fake time.
func (c *FakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Advance moves the clock forward by d.
func (c *FakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
	c.frames++
}

// Elapsed returns the fake time passed since the clock was created.
func (c *FakeClock) Elapsed() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now.Sub(c.epoch)
}

// Frames returns how many times the clock was advanced.
func (c *FakeClock) Frames() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.frames
}
