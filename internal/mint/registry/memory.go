// Package registry provides the reference in-memory item registry. It records
// ownership and metadata references for issued identifiers; enumeration and
// transfer beyond initial issuance are out of core scope.
package registry

import (
	"context"
	"sync"

	"mintgate/pkg/domain"
	"mintgate/pkg/platform/sentinel"
)

type InMemoryRegistry struct {
	mu       sync.RWMutex
	owners   map[domain.TokenID]domain.Address
	uris     map[domain.TokenID]string
	holdings map[domain.Address][]domain.TokenID
}

func NewInMemory() *InMemoryRegistry {
	return &InMemoryRegistry{
		owners:   make(map[domain.TokenID]domain.Address),
		uris:     make(map[domain.TokenID]string),
		holdings: make(map[domain.Address][]domain.TokenID),
	}
}

func (r *InMemoryRegistry) Create(_ context.Context, owner domain.Address, id domain.TokenID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.owners[id]; exists {
		return sentinel.ErrConflict
	}
	r.owners[id] = owner
	r.holdings[owner] = append(r.holdings[owner], id)
	return nil
}

func (r *InMemoryRegistry) SetTokenURI(_ context.Context, id domain.TokenID, uri string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.owners[id]; !exists {
		return sentinel.ErrNotFound
	}
	r.uris[id] = uri
	return nil
}

func (r *InMemoryRegistry) OwnerOf(_ context.Context, id domain.TokenID) (domain.Address, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	owner, exists := r.owners[id]
	if !exists {
		return "", sentinel.ErrNotFound
	}
	return owner, nil
}

func (r *InMemoryRegistry) TokenURI(_ context.Context, id domain.TokenID) (string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	uri, exists := r.uris[id]
	if !exists {
		return "", sentinel.ErrNotFound
	}
	return uri, nil
}

func (r *InMemoryRegistry) BalanceOf(_ context.Context, owner domain.Address) (uint64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return uint64(len(r.holdings[owner])), nil
}

func (r *InMemoryRegistry) TokenOfOwnerByIndex(_ context.Context, owner domain.Address, index uint64) (domain.TokenID, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := r.holdings[owner]
	if index >= uint64(len(ids)) {
		return 0, sentinel.ErrNotFound
	}
	return ids[index], nil
}
