package idalloc

import (
	"math"
	"sync"

	"huddle-auction/internal/auctionerrors"
	"huddle-auction/internal/models"
)

// Allocator issues strictly increasing huddle ids.
//
// Next returns the id the next successful insert will take without advancing
// the counter; callers commit the id only after the entity referencing it has
// been inserted, so a failed operation consumes nothing and the issued
// sequence has no gaps.
type Allocator struct {
	mu   sync.Mutex
	last models.HuddleID
}

// New returns an allocator whose last issued id is `last` (zero for a fresh system).
func New(last models.HuddleID) *Allocator {
	return &Allocator{last: last}
}

// Next returns the next id, or ErrIDOverflow if the id space is exhausted.
// The counter does not advance until Commit is called.
func (a *Allocator) Next() (models.HuddleID, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.last == math.MaxUint64 {
		return 0, auctionerrors.ErrIDOverflow
	}
	return a.last + 1, nil
}

// Commit records that the given id has been consumed. The counter never regresses.
func (a *Allocator) Commit(id models.HuddleID) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if id > a.last {
		a.last = id
	}
}

// Last returns the most recently committed id.
func (a *Allocator) Last() models.HuddleID {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.last
}
