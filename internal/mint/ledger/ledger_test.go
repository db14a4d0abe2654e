package ledger

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mintgate/internal/mint/models"
	"mintgate/pkg/domain"
)

func TestReserveNext_SequentialIdentifiers(t *testing.T) {
	l := New(10)

	ids, err := l.ReserveNext(3)
	require.NoError(t, err)
	assert.Equal(t, []domain.TokenID{1, 2, 3}, ids)

	ids, err = l.ReserveNext(2)
	require.NoError(t, err)
	assert.Equal(t, []domain.TokenID{4, 5}, ids)

	assert.Equal(t, uint64(5), l.TotalIssued())
	assert.Equal(t, uint64(5), l.Remaining())
}

func TestReserveNext_CapacityExceeded(t *testing.T) {
	l := New(5)

	_, err := l.ReserveNext(6)
	require.ErrorIs(t, err, models.ErrSupplyExceeded)
	assert.Equal(t, uint64(0), l.TotalIssued(), "rejected reservation must not move the counter")

	_, err = l.ReserveNext(5)
	require.NoError(t, err)

	_, err = l.ReserveNext(1)
	require.ErrorIs(t, err, models.ErrSupplyExceeded)
	assert.Equal(t, uint64(0), l.Remaining())
}

func TestReserveNext_ZeroQuantity(t *testing.T) {
	l := New(5)

	_, err := l.ReserveNext(0)
	require.ErrorIs(t, err, models.ErrInvalidQuantity)
}

func TestReserveNext_ExactRemainingSucceeds(t *testing.T) {
	l := New(3)

	ids, err := l.ReserveNext(3)
	require.NoError(t, err)
	assert.Equal(t, []domain.TokenID{1, 2, 3}, ids)
	assert.Equal(t, uint64(0), l.Remaining())
}

// TestReserveNext_NoOverlapUnderConcurrency exercises the uniqueness
// invariant directly: identifier ranges handed out by concurrent
// reservations never overlap and together form 1..total.
func TestReserveNext_NoOverlapUnderConcurrency(t *testing.T) {
	const goroutines = 50
	const perCall = 4
	l := New(goroutines * perCall)

	var wg sync.WaitGroup
	results := make([][]domain.TokenID, goroutines)
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func(slot int) {
			defer wg.Done()
			ids, err := l.ReserveNext(perCall)
			if err != nil {
				t.Error(err)
				return
			}
			results[slot] = ids
		}(i)
	}
	wg.Wait()

	seen := make(map[domain.TokenID]bool)
	for _, ids := range results {
		require.Len(t, ids, perCall)
		for _, id := range ids {
			assert.False(t, seen[id], "identifier %d assigned twice", id)
			seen[id] = true
		}
	}
	assert.Len(t, seen, goroutines*perCall)
	for i := 1; i <= goroutines*perCall; i++ {
		assert.True(t, seen[domain.TokenID(i)], "identifier %d missing from issued range", i)
	}
}
