package provider

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	id "aceaudit/pkg/domain"
	"aceaudit/pkg/platform/sentinel"

	"aceaudit/internal/compliance/models"
)

type ProviderStoreSuite struct {
	suite.Suite
	store *InMemory
	ctx   context.Context
}

func (s *ProviderStoreSuite) SetupTest() {
	s.store = NewInMemory()
	s.ctx = context.Background()
}

func TestProviderStoreSuite(t *testing.T) {
	suite.Run(t, new(ProviderStoreSuite))
}

func (s *ProviderStoreSuite) newProvider(name string) *models.Provider {
	expiry := time.Now().AddDate(1, 0, 0)
	return &models.Provider{
		ID:                  id.ProviderID(uuid.New()),
		Name:                name,
		AccreditationNumber: "ACE-2024-117",
		ExpirationDate:      &expiry,
		CreatedAt:           time.Now(),
	}
}

func (s *ProviderStoreSuite) TestCreationAndLookups() {
	s.Run("creates and finds provider by ID", func() {
		provider := s.newProvider("Behavior Partners LLC")
		s.Require().NoError(s.store.Create(s.ctx, provider))

		found, err := s.store.FindByID(s.ctx, provider.ID)
		s.Require().NoError(err)
		s.Equal(provider.Name, found.Name)
	})

	s.Run("returns ErrNotFound for unknown ID", func() {
		_, err := s.store.FindByID(s.ctx, id.ProviderID(uuid.New()))
		s.Require().ErrorIs(err, sentinel.ErrNotFound)
	})

	s.Run("rejects duplicate IDs", func() {
		provider := s.newProvider("Duplicate Org")
		s.Require().NoError(s.store.Create(s.ctx, provider))
		s.Require().ErrorIs(s.store.Create(s.ctx, provider), sentinel.ErrConflict)
	})
}

func (s *ProviderStoreSuite) TestCoordinatorOfRecord() {
	s.Run("set and fetch coordinator", func() {
		provider := s.newProvider("With Coordinator")
		s.Require().NoError(s.store.Create(s.ctx, provider))

		coordinator := &models.Coordinator{
			ID:         id.CoordinatorID(uuid.New()),
			ProviderID: provider.ID,
			Name:       "Dr. Reyes",
		}
		s.Require().NoError(s.store.SetCoordinator(s.ctx, coordinator))

		found, err := s.store.CoordinatorOf(s.ctx, provider.ID)
		s.Require().NoError(err)
		s.Equal(coordinator.Name, found.Name)
	})

	s.Run("replacing keeps exactly one coordinator of record", func() {
		provider := s.newProvider("Replaced Coordinator")
		s.Require().NoError(s.store.Create(s.ctx, provider))

		first := &models.Coordinator{ID: id.CoordinatorID(uuid.New()), ProviderID: provider.ID, Name: "First"}
		second := &models.Coordinator{ID: id.CoordinatorID(uuid.New()), ProviderID: provider.ID, Name: "Second"}
		s.Require().NoError(s.store.SetCoordinator(s.ctx, first))
		s.Require().NoError(s.store.SetCoordinator(s.ctx, second))

		found, err := s.store.CoordinatorOf(s.ctx, provider.ID)
		s.Require().NoError(err)
		s.Equal("Second", found.Name)
	})

	s.Run("no coordinator on file returns ErrNotFound", func() {
		provider := s.newProvider("No Coordinator")
		s.Require().NoError(s.store.Create(s.ctx, provider))

		_, err := s.store.CoordinatorOf(s.ctx, provider.ID)
		s.Require().ErrorIs(err, sentinel.ErrNotFound)
	})

	s.Run("coordinator for unknown provider is rejected", func() {
		orphan := &models.Coordinator{ID: id.CoordinatorID(uuid.New()), ProviderID: id.ProviderID(uuid.New())}
		s.Require().ErrorIs(s.store.SetCoordinator(s.ctx, orphan), sentinel.ErrNotFound)
	})
}
