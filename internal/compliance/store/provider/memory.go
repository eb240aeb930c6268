// Package provider stores providers and their coordinator of record.
package provider

import (
	"context"
	"sync"

	id "aceaudit/pkg/domain"
	"aceaudit/pkg/platform/sentinel"

	"aceaudit/internal/compliance/models"
)

// InMemory implements the provider store with in-process maps. Used in dev
// mode and tests; production runs PostgresStore.
type InMemory struct {
	mu           sync.RWMutex
	providers    map[id.ProviderID]*models.Provider
	coordinators map[id.ProviderID]*models.Coordinator
}

func NewInMemory() *InMemory {
	return &InMemory{
		providers:    make(map[id.ProviderID]*models.Provider),
		coordinators: make(map[id.ProviderID]*models.Coordinator),
	}
}

// Create stores a provider. Fails with ErrConflict on duplicate IDs.
func (s *InMemory) Create(_ context.Context, provider *models.Provider) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.providers[provider.ID]; exists {
		return sentinel.ErrConflict
	}
	copied := *provider
	s.providers[provider.ID] = &copied
	return nil
}

// SetCoordinator installs the coordinator of record, replacing any previous
// one. A provider has exactly one active coordinator at a time.
func (s *InMemory) SetCoordinator(_ context.Context, coordinator *models.Coordinator) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.providers[coordinator.ProviderID]; !exists {
		return sentinel.ErrNotFound
	}
	copied := *coordinator
	s.coordinators[coordinator.ProviderID] = &copied
	return nil
}

func (s *InMemory) FindByID(_ context.Context, providerID id.ProviderID) (*models.Provider, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	provider, ok := s.providers[providerID]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	copied := *provider
	return &copied, nil
}

func (s *InMemory) CoordinatorOf(_ context.Context, providerID id.ProviderID) (*models.Coordinator, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	coordinator, ok := s.coordinators[providerID]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	copied := *coordinator
	return &copied, nil
}
