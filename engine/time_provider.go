package engine

import (
	"sync"
	"time"
)

// TimeProvider is the time source the frame clock reads
type TimeProvider interface {
	Now() time.Time
}

// MonotonicTimeProvider provides the real system time with monotonic clock readings
type MonotonicTimeProvider struct{}

// NewMonotonicTimeProvider creates a new monotonic time provider
func NewMonotonicTimeProvider() *MonotonicTimeProvider {
	return &MonotonicTimeProvider{}
}

// Now returns the current time with monotonic clock reading
func (p *MonotonicTimeProvider) Now() time.Time {
	return time.Now()
}

// ManualTimeProvider only moves when told to
// Headless runs step it one frame per tick so replays are wall-clock independent
type ManualTimeProvider struct {
	mu   sync.Mutex
	now  time.Time
	step time.Duration
}

// NewManualTimeProvider starts at start; Step advances by step
func NewManualTimeProvider(start time.Time, step time.Duration) *ManualTimeProvider {
	return &ManualTimeProvider{now: start, step: step}
}

func (m *ManualTimeProvider) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

// Set jumps to t, backwards jumps included
func (m *ManualTimeProvider) Set(t time.Time) {
	m.mu.Lock()
	m.now = t
	m.mu.Unlock()
}

// Advance moves by d
func (m *ManualTimeProvider) Advance(d time.Duration) {
	m.mu.Lock()
	m.now = m.now.Add(d)
	m.mu.Unlock()
}

// Step moves by the configured step and returns the new time
func (m *ManualTimeProvider) Step() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = m.now.Add(m.step)
	return m.now
}
