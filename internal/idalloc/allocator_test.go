package idalloc

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"huddle-auction/internal/auctionerrors"
	"huddle-auction/internal/models"
)

// Test Next/Commit
func TestAllocator_NextCommit(t *testing.T) {
	t.Parallel()

	a := New(0)

	// Next without Commit never advances the counter.
	id, err := a.Next()
	require.NoError(t, err)
	require.Equal(t, models.HuddleID(1), id)

	again, err := a.Next()
	require.NoError(t, err)
	require.Equal(t, id, again)
	require.Equal(t, models.HuddleID(0), a.Last())

	// Committing consumes the id; the next issue is strictly greater.
	a.Commit(id)
	require.Equal(t, id, a.Last())

	next, err := a.Next()
	require.NoError(t, err)
	require.Equal(t, models.HuddleID(2), next)
}

// Test strictly increasing, gap-free issuing on the success path
func TestAllocator_Monotonic(t *testing.T) {
	t.Parallel()

	a := New(0)
	var prev models.HuddleID
	for i := 0; i < 100; i++ {
		id, err := a.Next()
		require.NoError(t, err)
		require.Equal(t, prev+1, id)
		a.Commit(id)
		prev = id
	}
}

// Test that the counter never regresses
func TestAllocator_CommitNeverRegresses(t *testing.T) {
	t.Parallel()

	a := New(10)
	a.Commit(5)
	require.Equal(t, models.HuddleID(10), a.Last())
}

// Test overflow handling
func TestAllocator_Overflow(t *testing.T) {
	t.Parallel()

	a := New(math.MaxUint64)
	_, err := a.Next()
	require.ErrorIs(t, err, auctionerrors.ErrIDOverflow)
	// The counter stays pinned at max; no wraparound.
	require.Equal(t, models.HuddleID(math.MaxUint64), a.Last())
}
