package engine

import (
	"sync"
	"time"
)

// Clock supplies wall time. The simulation only reads the calendar year from it
type Clock interface {
	Now() time.Time
}

// SystemClock reads the real system time
type SystemClock struct{}

// Now returns the current system time
func (SystemClock) Now() time.Time {
	return time.Now()
}

// MockClock provides a controllable time source for testing
type MockClock struct {
	mu  sync.RWMutex
	now time.Time
}

// NewMockClock creates a mock clock fixed at t
func NewMockClock(t time.Time) *MockClock {
	return &MockClock{now: t}
}

// NewMockClockYear creates a mock clock at the start of the given year
func NewMockClockYear(year int) *MockClock {
	return NewMockClock(time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC))
}

// Now returns the mocked time
func (m *MockClock) Now() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.now
}

// Set moves the mocked time
func (m *MockClock) Set(t time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = t
}
