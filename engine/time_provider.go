package engine

import "time"

// TimeProvider supplies the current time for measurements
type TimeProvider interface {
	Now() time.Time
}

// Sleeper suspends the game loop for the pacing delay
type Sleeper interface {
	Sleep(d time.Duration)
}

// Clock is the source of time and pacing for the game loop
type Clock interface {
	TimeProvider
	Sleeper
}

// MonotonicClock is the real system clock
type MonotonicClock struct{}

// NewMonotonicClock creates a clock backed by the time package
func NewMonotonicClock() *MonotonicClock {
	return &MonotonicClock{}
}

// Now returns the current time with monotonic clock reading
func (c *MonotonicClock) Now() time.Time {
	return time.Now()
}

// Sleep blocks for d; non-positive durations return immediately
func (c *MonotonicClock) Sleep(d time.Duration) {
	if d <= 0 {
		return
	}
	time.Sleep(d)
}
