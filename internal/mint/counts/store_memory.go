// Package counts tracks per-address issuance totals against the per-address
// cap. Counts only ever grow; there is no burn path in this core.
package counts

import (
	"context"
	"sync"

	"mintgate/pkg/domain"
)

type InMemoryStore struct {
	mu     sync.RWMutex
	counts map[domain.Address]uint64
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{counts: make(map[domain.Address]uint64)}
}

func (s *InMemoryStore) Get(_ context.Context, addr domain.Address) (uint64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.counts[addr], nil
}

func (s *InMemoryStore) Add(_ context.Context, addr domain.Address, n uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.counts[addr] += n
	return nil
}
