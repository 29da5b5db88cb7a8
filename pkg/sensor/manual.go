package sensor

import (
	"sync"

	"github.com/lorenzhs/gpn17-snake/pkg/hal"
)

// Manual is an orientation source fed from outside, e.g. by a browser's
// deviceorientation events. It is safe for concurrent use.
type Manual struct {
	mu sync.Mutex
	r  hal.Reading
}

// Set replaces the current reading.
func (m *Manual) Set(r hal.Reading) {
	m.mu.Lock()
	m.r = r
	m.mu.Unlock()
}

// Read returns the latest reading.
func (m *Manual) Read() hal.Reading {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.r
}
