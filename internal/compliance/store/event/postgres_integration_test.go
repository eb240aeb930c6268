//go:build integration

package event_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	id "aceaudit/pkg/domain"
	dErrors "aceaudit/pkg/domain-errors"
	"aceaudit/pkg/platform/sentinel"
	"aceaudit/pkg/testutil/containers"

	"aceaudit/internal/compliance/models"
	"aceaudit/internal/compliance/store/event"
	"aceaudit/internal/compliance/store/provider"
)

type PostgresStoreSuite struct {
	suite.Suite
	postgres  *containers.PostgresContainer
	store     *event.PostgresStore
	providers *provider.PostgresStore
}

func TestPostgresStoreSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(PostgresStoreSuite))
}

func (s *PostgresStoreSuite) SetupSuite() {
	s.postgres = containers.NewPostgresContainer(s.T())
	s.store = event.NewPostgres(s.postgres.Pool)
	s.providers = provider.NewPostgres(s.postgres.Pool)
}

func (s *PostgresStoreSuite) SetupTest() {
	ctx := context.Background()
	err := s.postgres.TruncateTables(ctx, "events", "providers")
	s.Require().NoError(err)
}

func (s *PostgresStoreSuite) createProvider() id.ProviderID {
	providerID := id.ProviderID(uuid.New())
	err := s.providers.Create(context.Background(), &models.Provider{
		ID:                  providerID,
		Name:                "Integration Provider " + uuid.NewString(),
		AccreditationNumber: "ACE-2026-042",
		CreatedAt:           time.Now(),
	})
	s.Require().NoError(err)
	return providerID
}

func (s *PostgresStoreSuite) newEvent(providerID id.ProviderID) *models.Event {
	return &models.Event{
		ID:            id.EventID(uuid.New()),
		ProviderID:    providerID,
		Title:         "Supervision Practices Workshop",
		StartDate:     time.Now().AddDate(0, 1, 0),
		ApprovalState: models.ApprovalPending,
		CreatedAt:     time.Now(),
	}
}

func (s *PostgresStoreSuite) TestCreateAndFind() {
	ctx := context.Background()
	providerID := s.createProvider()

	e := s.newEvent(providerID)
	s.Require().NoError(s.store.Create(ctx, e))

	found, err := s.store.FindByID(ctx, e.ID)
	s.Require().NoError(err)
	s.Equal(e.Title, found.Title)
	s.Equal(models.ApprovalPending, found.ApprovalState)

	s.Require().ErrorIs(s.store.Create(ctx, e), sentinel.ErrConflict)

	_, err = s.store.FindByID(ctx, id.EventID(uuid.New()))
	s.Require().ErrorIs(err, sentinel.ErrNotFound)
}

func (s *PostgresStoreSuite) TestListByProviderOrdering() {
	ctx := context.Background()
	providerID := s.createProvider()

	first := s.newEvent(providerID)
	first.CreatedAt = time.Now().Add(-time.Hour)
	second := s.newEvent(providerID)
	s.Require().NoError(s.store.Create(ctx, second))
	s.Require().NoError(s.store.Create(ctx, first))

	other := s.createProvider()
	s.Require().NoError(s.store.Create(ctx, s.newEvent(other)))

	events, err := s.store.ListByProvider(ctx, providerID)
	s.Require().NoError(err)
	s.Require().Len(events, 2)
	s.Equal(first.ID, events[0].ID)
}

// TestConcurrentDecisions verifies that racing decisions against the same
// pending event resolve to exactly one winner under FOR UPDATE.
func (s *PostgresStoreSuite) TestConcurrentDecisions() {
	ctx := context.Background()
	providerID := s.createProvider()

	e := s.newEvent(providerID)
	s.Require().NoError(s.store.Create(ctx, e))

	actor := id.ActorID(uuid.New())
	const goroutines = 50

	var wg sync.WaitGroup
	var wins atomic.Int32
	var conflicts atomic.Int32

	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.store.Execute(ctx, e.ID,
				func(ev *models.Event) error { return ev.CanDecide() },
				func(ev *models.Event) {
					ev.ApplyDecision(models.ApprovalApproved, actor, time.Now())
				},
			)
			if err == nil {
				wins.Add(1)
			} else if dErrors.HasCode(err, dErrors.CodeInvariantViolation) {
				conflicts.Add(1)
			}
		}()
	}
	wg.Wait()

	s.Equal(int32(1), wins.Load(), "exactly one decision should win")
	s.Equal(int32(goroutines-1), conflicts.Load(), "all others should see the terminal state")

	stored, err := s.store.FindByID(ctx, e.ID)
	s.Require().NoError(err)
	s.Equal(models.ApprovalApproved, stored.ApprovalState)
	s.Require().NotNil(stored.DecidedBy)
	s.Equal(actor, *stored.DecidedBy)
	s.NotNil(stored.DecidedAt)
}

func (s *PostgresStoreSuite) TestExecuteRollsBackOnFailedValidation() {
	ctx := context.Background()
	providerID := s.createProvider()

	e := s.newEvent(providerID)
	e.ApprovalState = models.ApprovalRejected
	s.Require().NoError(s.store.Create(ctx, e))

	_, err := s.store.Execute(ctx, e.ID,
		func(ev *models.Event) error { return ev.CanDecide() },
		func(ev *models.Event) { ev.ApprovalState = models.ApprovalApproved },
	)
	s.Require().Error(err)

	stored, err := s.store.FindByID(ctx, e.ID)
	s.Require().NoError(err)
	s.Equal(models.ApprovalRejected, stored.ApprovalState)
}
