package clock

import "time"

// Clock provides time operations that can be mocked for testing. Token
// expiry spans a decade, so tests need to move time rather than wait.
type Clock interface {
	Now() time.Time
}

// RealClock implements Clock using the system clock
type RealClock struct{}

// New creates a new RealClock
func New() *RealClock {
	return &RealClock{}
}

// Now returns the current time
func (c *RealClock) Now() time.Time {
	return time.Now()
}
