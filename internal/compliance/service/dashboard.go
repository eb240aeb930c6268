package service

import (
	"context"
	"errors"
	"time"

	"golang.org/x/sync/errgroup"

	id "aceaudit/pkg/domain"
	dErrors "aceaudit/pkg/domain-errors"
	"aceaudit/pkg/platform/sentinel"
	"aceaudit/pkg/requestcontext"

	"aceaudit/internal/compliance/engine"
	"aceaudit/internal/compliance/models"
)

// Dashboard fetches fresh entity snapshots for the provider and recomputes
// every derived value at the request clock. Nothing is cached: each
// invocation reflects current time and current records.
//
// Partial data (no coordinator on file, no events yet) still yields a
// well-formed response with explicit missing markers. Only an absent
// provider fails, with CodeNotFound.
func (s *Service) Dashboard(ctx context.Context, providerID id.ProviderID) (*DashboardResponse, error) {
	if providerID.IsNil() {
		return nil, dErrors.New(dErrors.CodeBadRequest, "provider id is required")
	}

	ctx, span := s.tracer.Start(ctx, "compliance.Dashboard")
	defer span.End()

	start := time.Now()
	now := requestcontext.Now(ctx)

	snap, err := s.fetchSnapshot(ctx, providerID)
	if err != nil {
		return nil, err
	}

	eval := engine.Evaluate(now, snap, s.pol)

	if s.metrics != nil {
		s.metrics.ObserveDashboard(start)
	}

	return &DashboardResponse{
		ProviderInfo: ProviderInfo{
			ID:                  snap.Provider.ID,
			Name:                snap.Provider.Name,
			AccreditationNumber: snap.Provider.AccreditationNumber,
			ExpirationDate:      snap.Provider.ExpirationDate,
			ProviderStanding:    eval.Standing,
		},
		CertificationStatus: eval.Certification,
		ComplianceScore:     eval.Score,
		OverdueItems:        eval.Overdue,
		PendingEvents:       toEventSummaries(eval.PendingEvents),
		RetentionEvents:     eval.Retention,
		Stats:               eval.Stats,
	}, nil
}

// fetchSnapshot assembles the immutable per-request snapshot. The provider
// row is loaded first so an unknown ID fails fast; the collections then load
// concurrently, one goroutine per store call.
func (s *Service) fetchSnapshot(ctx context.Context, providerID id.ProviderID) (*engine.Snapshot, error) {
	provider, err := s.providers.FindByID(ctx, providerID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeNotFound, "provider not found")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load provider")
	}

	snap := &engine.Snapshot{Provider: provider}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		coordinator, err := s.providers.CoordinatorOf(gctx, providerID)
		if errors.Is(err, sentinel.ErrNotFound) {
			// No coordinator on file is reportable state, not a failure.
			return nil
		}
		if err != nil {
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to load coordinator")
		}
		snap.Coordinator = coordinator
		return nil
	})
	g.Go(func() error {
		events, err := s.events.ListByProvider(gctx, providerID)
		if err != nil {
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to load events")
		}
		snap.Events = events
		return nil
	})
	g.Go(func() error {
		registrations, err := s.records.ListRegistrationsByProvider(gctx, providerID)
		if err != nil {
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to load registrations")
		}
		snap.Registrations = registrations
		return nil
	})
	g.Go(func() error {
		certificates, err := s.records.ListCertificatesByProvider(gctx, providerID)
		if err != nil {
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to load certificates")
		}
		snap.Certificates = certificates
		return nil
	})
	g.Go(func() error {
		feedback, err := s.records.ListFeedbackByProvider(gctx, providerID)
		if err != nil {
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to load feedback")
		}
		snap.Feedback = feedback
		return nil
	})
	g.Go(func() error {
		complaints, err := s.records.ListComplaintsByProvider(gctx, providerID)
		if err != nil {
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to load complaints")
		}
		snap.Complaints = complaints
		return nil
	})
	g.Go(func() error {
		documents, err := s.documents.ChecklistsByProvider(gctx, providerID)
		if err != nil {
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to load document checklists")
		}
		snap.Documents = documents
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if snap.Events == nil {
		snap.Events = []*models.Event{}
	}
	return snap, nil
}
