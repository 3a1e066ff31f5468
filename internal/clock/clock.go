package clock

import (
	"sync"
	"time"

	"huddle-auction/internal/models"
)

// Clock provides the engine's notion of now.
type Clock interface {
	Now() models.Moment
}

type systemClock struct{}

// NewSystem returns a clock backed by time.Now.
func NewSystem() Clock {
	return systemClock{}
}

func (systemClock) Now() models.Moment {
	return models.Moment(time.Now().UnixMilli())
}

type fixedClock struct {
	now models.Moment
}

// NewFixed returns a clock that always returns the same instant (useful for tests).
func NewFixed(m models.Moment) Clock {
	return fixedClock{now: m}
}

func (f fixedClock) Now() models.Moment {
	return f.now
}

// Manual is a clock whose time is advanced explicitly by the caller.
type Manual struct {
	mu  sync.Mutex
	now models.Moment
}

// NewManual returns a manual clock starting at the given instant.
func NewManual(start models.Moment) *Manual {
	return &Manual{now: start}
}

func (m *Manual) Now() models.Moment {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

// Set moves the clock to the given instant.
func (m *Manual) Set(now models.Moment) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = now
}
