// Package event stores continuing-education events and applies guarded
// approval transitions.
package event

import (
	"context"
	"sort"
	"sync"

	id "aceaudit/pkg/domain"
	"aceaudit/pkg/platform/sentinel"

	"aceaudit/internal/compliance/models"
)

// InMemory implements the event store with an in-process map.
type InMemory struct {
	mu     sync.RWMutex
	events map[id.EventID]*models.Event
}

func NewInMemory() *InMemory {
	return &InMemory{events: make(map[id.EventID]*models.Event)}
}

// Create stores a submitted event. Fails with ErrConflict on duplicate IDs.
func (s *InMemory) Create(_ context.Context, event *models.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.events[event.ID]; exists {
		return sentinel.ErrConflict
	}
	copied := *event
	s.events[event.ID] = &copied
	return nil
}

func (s *InMemory) FindByID(_ context.Context, eventID id.EventID) (*models.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	event, ok := s.events[eventID]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	copied := *event
	return &copied, nil
}

func (s *InMemory) ListByProvider(_ context.Context, providerID id.ProviderID) ([]*models.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	events := []*models.Event{}
	for _, event := range s.events {
		if event.ProviderID == providerID {
			copied := *event
			events = append(events, &copied)
		}
	}
	sort.Slice(events, func(i, j int) bool {
		if !events[i].CreatedAt.Equal(events[j].CreatedAt) {
			return events[i].CreatedAt.Before(events[j].CreatedAt)
		}
		return events[i].ID.String() < events[j].ID.String()
	})
	return events, nil
}

// Execute atomically runs validate then mutate against the stored event,
// holding the write lock across both. The mutation is applied to a working
// copy and committed only if validate passed, giving callers
// compare-and-swap semantics against the stored state.
func (s *InMemory) Execute(_ context.Context, eventID id.EventID,
	validate func(*models.Event) error,
	mutate func(*models.Event)) (*models.Event, error) {

	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.events[eventID]
	if !ok {
		return nil, sentinel.ErrNotFound
	}

	working := *stored
	if err := validate(&working); err != nil {
		return nil, err
	}
	mutate(&working)
	s.events[eventID] = &working

	result := working
	return &result, nil
}
