package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	id "aceaudit/pkg/domain"
	dErrors "aceaudit/pkg/domain-errors"
	"aceaudit/pkg/platform/audit"
	"aceaudit/pkg/requestcontext"

	"aceaudit/internal/compliance/engine"
	"aceaudit/internal/compliance/models"
	"aceaudit/internal/compliance/policy"
	"aceaudit/internal/compliance/service"
	"aceaudit/internal/compliance/store/document"
	"aceaudit/internal/compliance/store/event"
	"aceaudit/internal/compliance/store/provider"
	"aceaudit/internal/compliance/store/records"
)

var testNow = time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC)

type ServiceSuite struct {
	suite.Suite
	providers *provider.InMemory
	events    *event.InMemory
	records   *records.InMemory
	documents *document.InMemory
	published *audit.InMemoryPublisher
	svc       *service.Service
	ctx       context.Context
}

func (s *ServiceSuite) SetupTest() {
	s.providers = provider.NewInMemory()
	s.events = event.NewInMemory()
	s.records = records.NewInMemory()
	s.documents = document.NewInMemory()
	s.published = audit.NewInMemoryPublisher()

	svc, err := service.New(s.providers, s.events, s.records, s.documents,
		service.WithAuditPublisher(s.published),
		service.WithPolicy(policy.Default()),
	)
	s.Require().NoError(err)
	s.svc = svc
	s.ctx = requestcontext.WithTime(context.Background(), testNow)
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) createProvider(expiresInDays int) *models.Provider {
	expiry := testNow.AddDate(0, 0, expiresInDays)
	p := &models.Provider{
		ID:                  id.ProviderID(uuid.New()),
		Name:                "Summit Behavioral Education",
		AccreditationNumber: "ACE-2026-311",
		ExpirationDate:      &expiry,
		CreatedAt:           testNow.AddDate(-1, 0, 0),
	}
	s.Require().NoError(s.providers.Create(s.ctx, p))
	return p
}

func (s *ServiceSuite) createPendingEvent(providerID id.ProviderID) *models.Event {
	e := &models.Event{
		ID:            id.EventID(uuid.New()),
		ProviderID:    providerID,
		Title:         "Ethics Refresher",
		StartDate:     testNow.AddDate(0, 1, 0),
		ApprovalState: models.ApprovalPending,
		CreatedAt:     testNow.AddDate(0, 0, -3),
	}
	s.Require().NoError(s.events.Create(s.ctx, e))
	return e
}

func (s *ServiceSuite) TestDashboardValidation() {
	s.Run("nil provider id is rejected", func() {
		_, err := s.svc.Dashboard(s.ctx, id.ProviderID{})
		s.Require().True(dErrors.HasCode(err, dErrors.CodeBadRequest))
	})

	s.Run("unknown provider is not found", func() {
		_, err := s.svc.Dashboard(s.ctx, id.ProviderID(uuid.New()))
		s.Require().True(dErrors.HasCode(err, dErrors.CodeNotFound))
	})
}

func (s *ServiceSuite) TestDashboardComposition() {
	p := s.createProvider(365)

	certExpiry := testNow.AddDate(0, 0, 60)
	s.Require().NoError(s.providers.SetCoordinator(s.ctx, &models.Coordinator{
		ID:                          id.CoordinatorID(uuid.New()),
		ProviderID:                  p.ID,
		Name:                        "Dr. Okafor",
		CertificationExpirationDate: &certExpiry,
	}))

	pending := s.createPendingEvent(p.ID)

	// An ended, approved event with a certificate past the 45-day window.
	endedAt := testNow.AddDate(0, 0, -50)
	ended := &models.Event{
		ID:            id.EventID(uuid.New()),
		ProviderID:    p.ID,
		Title:         "Past Workshop",
		StartDate:     endedAt.AddDate(0, 0, -1),
		EndDate:       &endedAt,
		ApprovalState: models.ApprovalApproved,
		CreatedAt:     testNow.AddDate(0, -3, 0),
	}
	s.Require().NoError(s.events.Create(s.ctx, ended))
	s.Require().NoError(s.records.AddCertificate(s.ctx, p.ID, &models.Certificate{
		ID:      id.CertificateID(uuid.New()),
		EventID: ended.ID,
	}))

	resp, err := s.svc.Dashboard(s.ctx, p.ID)
	s.Require().NoError(err)

	s.Equal(p.Name, resp.ProviderInfo.Name)
	s.Equal(engine.StatusActive, resp.ProviderInfo.Status)
	s.True(resp.ProviderInfo.CanPublishEvents)

	s.Equal(engine.SeverityWarning, resp.CertificationStatus.Severity)
	s.Equal("Dr. Okafor", resp.CertificationStatus.CoordinatorName)

	s.Require().Len(resp.PendingEvents, 1)
	s.Equal(pending.ID, resp.PendingEvents[0].ID)

	s.Require().Len(resp.OverdueItems.Certificates, 1)
	s.Equal(5, resp.OverdueItems.Certificates[0].DaysOverdue)
	s.Equal(1, resp.OverdueItems.TotalOverdue)

	// One overdue certificate costs 10 points.
	s.Equal(90, resp.ComplianceScore.Score)
	s.False(resp.ComplianceScore.Perfect)

	s.Equal(2, resp.Stats.TotalEvents)
	s.Equal(1, resp.Stats.PendingEvents)
	s.Equal(1, resp.Stats.CertificatesPending)
}

func (s *ServiceSuite) TestDashboardWithoutCoordinator() {
	p := s.createProvider(365)

	resp, err := s.svc.Dashboard(s.ctx, p.ID)
	s.Require().NoError(err)

	s.Equal(engine.SeverityMissing, resp.CertificationStatus.Severity)
	s.Equal(100, resp.ComplianceScore.Score)
	s.True(resp.ComplianceScore.Perfect)
	s.Empty(resp.PendingEvents)
}

func (s *ServiceSuite) TestDashboardIsDeterministicForFixedClock() {
	p := s.createProvider(20)

	first, err := s.svc.Dashboard(s.ctx, p.ID)
	s.Require().NoError(err)
	second, err := s.svc.Dashboard(s.ctx, p.ID)
	s.Require().NoError(err)

	s.Equal(first.ComplianceScore.Score, second.ComplianceScore.Score)
	s.Equal(first.ProviderInfo.Status, second.ProviderInfo.Status)
	s.Equal(engine.StatusGracePeriod, first.ProviderInfo.Status)
}

func (s *ServiceSuite) TestDecideEventApproves() {
	p := s.createProvider(365)
	e := s.createPendingEvent(p.ID)
	actor := id.ActorID(uuid.New())
	ctx := requestcontext.WithActorID(s.ctx, actor)

	resp, err := s.svc.DecideEvent(ctx, e.ID, service.ActionApprove)
	s.Require().NoError(err)
	s.True(resp.Success)
	s.Equal(models.ApprovalApproved, resp.NewState)
	s.Equal(testNow, resp.DecidedAt)

	stored, err := s.events.FindByID(ctx, e.ID)
	s.Require().NoError(err)
	s.Equal(models.ApprovalApproved, stored.ApprovalState)
	s.Require().NotNil(stored.DecidedBy)
	s.Equal(actor, *stored.DecidedBy)

	emitted := s.published.Events()
	s.Require().Len(emitted, 1)
	s.Equal(audit.ActionEventApproved, emitted[0].Action)
	s.Equal(actor, emitted[0].ActorID)
	s.Equal(e.ID, emitted[0].EventID)
	s.Equal(p.ID, emitted[0].ProviderID)
}

func (s *ServiceSuite) TestDecideEventRejects() {
	p := s.createProvider(365)
	e := s.createPendingEvent(p.ID)

	resp, err := s.svc.DecideEvent(s.ctx, e.ID, service.ActionReject)
	s.Require().NoError(err)
	s.Equal(models.ApprovalRejected, resp.NewState)

	emitted := s.published.Events()
	s.Require().Len(emitted, 1)
	s.Equal(audit.ActionEventRejected, emitted[0].Action)
}

func (s *ServiceSuite) TestDecideEventConflictsOnSecondDecision() {
	p := s.createProvider(365)
	e := s.createPendingEvent(p.ID)

	_, err := s.svc.DecideEvent(s.ctx, e.ID, service.ActionApprove)
	s.Require().NoError(err)

	_, err = s.svc.DecideEvent(s.ctx, e.ID, service.ActionReject)
	s.Require().True(dErrors.HasCode(err, dErrors.CodeConflict))

	stored, err := s.events.FindByID(s.ctx, e.ID)
	s.Require().NoError(err)
	s.Equal(models.ApprovalApproved, stored.ApprovalState, "first decision must stand")

	s.Len(s.published.Events(), 1, "conflicting decision must not emit audit")
}

func (s *ServiceSuite) TestDecideEventValidation() {
	s.Run("unknown event", func() {
		_, err := s.svc.DecideEvent(s.ctx, id.EventID(uuid.New()), service.ActionApprove)
		s.Require().True(dErrors.HasCode(err, dErrors.CodeNotFound))
	})

	s.Run("nil event id", func() {
		_, err := s.svc.DecideEvent(s.ctx, id.EventID{}, service.ActionApprove)
		s.Require().True(dErrors.HasCode(err, dErrors.CodeBadRequest))
	})

	s.Run("unknown action", func() {
		p := s.createProvider(365)
		e := s.createPendingEvent(p.ID)
		_, err := s.svc.DecideEvent(s.ctx, e.ID, service.DecisionAction("defer"))
		s.Require().True(dErrors.HasCode(err, dErrors.CodeBadRequest))

		stored, findErr := s.events.FindByID(s.ctx, e.ID)
		s.Require().NoError(findErr)
		s.Equal(models.ApprovalPending, stored.ApprovalState)
	})
}
