package allowlist

import (
	"context"
	"sync"

	"mintgate/pkg/domain"
)

// InMemoryStore is the default allow-list registry for single-instance
// deployments and tests.
type InMemoryStore struct {
	mu      sync.RWMutex
	members map[domain.Address]bool
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{members: make(map[domain.Address]bool)}
}

func (s *InMemoryStore) SetMany(_ context.Context, addrs []domain.Address, enabled bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, addr := range addrs {
		if enabled {
			s.members[addr] = true
		} else {
			delete(s.members, addr)
		}
	}
	return nil
}

func (s *InMemoryStore) IsMember(_ context.Context, addr domain.Address) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.members[addr], nil
}

// Members returns the current membership set. Admin inspection only.
func (s *InMemoryStore) Members(_ context.Context) ([]domain.Address, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Address, 0, len(s.members))
	for addr := range s.members {
		out = append(out, addr)
	}
	return out, nil
}
