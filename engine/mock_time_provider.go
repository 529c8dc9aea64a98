package engine

import (
	"sync"
	"time"
)

// MockClock provides a controllable time source for testing.
// Sleep advances the mocked time instead of blocking.
type MockClock struct {
	mu          sync.RWMutex
	currentTime time.Time
	slept       time.Duration
	sleeps      int
}

// NewMockClock creates a new mock clock with the given start time
func NewMockClock(startTime time.Time) *MockClock {
	return &MockClock{
		currentTime: startTime,
	}
}

// Now returns the current mocked time
func (m *MockClock) Now() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.currentTime
}

// Sleep records the request and advances the mocked time
func (m *MockClock) Sleep(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sleeps++
	if d > 0 {
		m.slept += d
		m.currentTime = m.currentTime.Add(d)
	}
}

// Advance advances the current time by the given duration
func (m *MockClock) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.currentTime = m.currentTime.Add(d)
}

// Slept returns the total duration passed to Sleep
func (m *MockClock) Slept() time.Duration {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.slept
}

// Sleeps returns how many times Sleep was called
func (m *MockClock) Sleeps() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.sleeps
}
