// Package ledger holds the supply counter and assigns item identifiers.
package ledger

import (
	"sync"

	"mintgate/internal/mint/models"
	"mintgate/pkg/domain"
)

// Ledger is the in-memory supply ledger. The minting service serializes all
// mutation behind its reentrancy guard, but the ledger carries its own lock
// so it stays correct if read concurrently (queries bypass the guard).
type Ledger struct {
	mu        sync.Mutex
	maxSupply uint64
	counter   uint64
}

func New(maxSupply uint64) *Ledger {
	return &Ledger{maxSupply: maxSupply}
}

func (l *Ledger) MaxSupply() uint64 {
	return l.maxSupply
}

func (l *Ledger) TotalIssued() uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.counter
}

func (l *Ledger) Remaining() uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.maxSupply - l.counter
}

// ReserveNext advances the counter by n and returns the identifiers
// [counter+1 .. counter+n]. The whole batch is reserved atomically, so two
// calls can never observe overlapping ranges.
func (l *Ledger) ReserveNext(n uint64) ([]domain.TokenID, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if n == 0 {
		return nil, models.ErrInvalidQuantity
	}
	if n > l.maxSupply-l.counter {
		return nil, models.ErrSupplyExceeded
	}

	ids := make([]domain.TokenID, n)
	for i := uint64(0); i < n; i++ {
		l.counter++
		ids[i] = domain.TokenID(l.counter)
	}
	return ids, nil
}
