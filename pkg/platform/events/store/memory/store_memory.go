package memory

import (
	"context"
	"sync"

	events "mintgate/pkg/platform/events"
)

type InMemoryStore struct {
	mu     sync.RWMutex
	events []events.Event
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{}
}

func (s *InMemoryStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = nil
}

func (s *InMemoryStore) Append(_ context.Context, event events.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, event)
	return nil
}

// List returns all recorded events in emission order.
func (s *InMemoryStore) List(_ context.Context) ([]events.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]events.Event{}, s.events...), nil
}

// ListByName returns the recorded events matching the given name, in
// emission order.
func (s *InMemoryStore) ListByName(_ context.Context, name events.Name) ([]events.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var matched []events.Event
	for _, e := range s.events {
		if e.Name == name {
			matched = append(matched, e)
		}
	}
	return matched, nil
}
