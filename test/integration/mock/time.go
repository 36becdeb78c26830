package mock

import (
	"sync"
	"time"
)

// Time is a controllable clock. It satisfies the application's Clock
// interface so scenarios can pin "now" to a known date.
type Time struct {
	mu      sync.Mutex
	current time.Time
}

// NewTime creates a clock pinned to the current instant.
func NewTime() *Time {
	return &Time{current: time.Now().UTC()}
}

// Set pins the clock to the given instant.
func (t *Time) Set(now time.Time) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.current = now
}

// Now returns the pinned instant.
func (t *Time) Now() time.Time {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.current
}
