// Package document stores per-event required-document checklists. Which
// documents an event type requires is external configuration; this store
// only records whether each required key has been satisfied.
package document

import (
	"context"
	"sync"

	id "aceaudit/pkg/domain"
)

// InMemory implements the document store with in-process maps.
type InMemory struct {
	mu         sync.RWMutex
	checklists map[id.ProviderID]map[id.EventID]map[string]bool
}

func NewInMemory() *InMemory {
	return &InMemory{checklists: make(map[id.ProviderID]map[id.EventID]map[string]bool)}
}

// SetChecklist replaces the checklist for one event.
func (s *InMemory) SetChecklist(_ context.Context, providerID id.ProviderID, eventID id.EventID, checklist map[string]bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.checklists[providerID] == nil {
		s.checklists[providerID] = make(map[id.EventID]map[string]bool)
	}
	copied := make(map[string]bool, len(checklist))
	for key, done := range checklist {
		copied[key] = done
	}
	s.checklists[providerID][eventID] = copied
	return nil
}

// MarkDocument records one document key as satisfied or outstanding.
func (s *InMemory) MarkDocument(_ context.Context, providerID id.ProviderID, eventID id.EventID, key string, done bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.checklists[providerID] == nil {
		s.checklists[providerID] = make(map[id.EventID]map[string]bool)
	}
	if s.checklists[providerID][eventID] == nil {
		s.checklists[providerID][eventID] = make(map[string]bool)
	}
	s.checklists[providerID][eventID][key] = done
	return nil
}

func (s *InMemory) ChecklistsByProvider(_ context.Context, providerID id.ProviderID) (map[id.EventID]map[string]bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[id.EventID]map[string]bool, len(s.checklists[providerID]))
	for eventID, checklist := range s.checklists[providerID] {
		copied := make(map[string]bool, len(checklist))
		for key, done := range checklist {
			copied[key] = done
		}
		out[eventID] = copied
	}
	return out, nil
}
