// Package clock supplies the time source used to stamp change events and
// key-value rows, so tests can pin timestamps.
package clock

import "time"

// Clock provides the current time.
type Clock interface {
	// Now returns the current time in UTC.
	Now() time.Time
}

// RealClock implements Clock using the system time.
type RealClock struct{}

// NewRealClock creates a new RealClock.
func NewRealClock() *RealClock {
	return &RealClock{}
}

// Now returns the current system time in UTC.
func (c *RealClock) Now() time.Time {
	return time.Now().UTC()
}

// FakeClock implements Clock with a controllable time for testing.
type FakeClock struct {
	current time.Time
}

// NewFakeClock creates a new FakeClock fixed at t.
func NewFakeClock(t time.Time) *FakeClock {
	return &FakeClock{current: t.UTC()}
}

// Now returns the fixed time.
func (c *FakeClock) Now() time.Time {
	return c.current
}

// Advance moves the fixed time forward by d.
func (c *FakeClock) Advance(d time.Duration) {
	c.current = c.current.Add(d)
}
