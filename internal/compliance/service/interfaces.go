package service

import (
	"context"

	id "aceaudit/pkg/domain"

	"aceaudit/internal/compliance/models"
)

// Store interfaces are declared here, on the consumer side, so the service
// compiles against behavior rather than a concrete backend. Implementations
// return sentinel errors (pkg/platform/sentinel); the service translates
// them into coded domain errors.

// ProviderStore loads providers and their coordinator of record.
type ProviderStore interface {
	FindByID(ctx context.Context, providerID id.ProviderID) (*models.Provider, error)
	// CoordinatorOf returns the provider's active coordinator of record, or
	// sentinel.ErrNotFound when none is on file.
	CoordinatorOf(ctx context.Context, providerID id.ProviderID) (*models.Coordinator, error)
}

// EventStore loads events and applies guarded approval transitions.
type EventStore interface {
	FindByID(ctx context.Context, eventID id.EventID) (*models.Event, error)
	ListByProvider(ctx context.Context, providerID id.ProviderID) ([]*models.Event, error)
	// Execute atomically runs validate then mutate against the current stored
	// event, holding the store's lock (mutex or FOR UPDATE) across both. The
	// mutation is applied only if validate passes against the state read
	// under the lock, which is what makes the approval decision a
	// compare-and-swap rather than a blind write.
	Execute(ctx context.Context, eventID id.EventID,
		validate func(*models.Event) error,
		mutate func(*models.Event)) (*models.Event, error)
}

// RecordStore loads the per-provider accreditation records that deadlines
// are derived from.
type RecordStore interface {
	ListRegistrationsByProvider(ctx context.Context, providerID id.ProviderID) ([]*models.Registration, error)
	ListCertificatesByProvider(ctx context.Context, providerID id.ProviderID) ([]*models.Certificate, error)
	ListFeedbackByProvider(ctx context.Context, providerID id.ProviderID) ([]*models.FeedbackResponse, error)
	ListComplaintsByProvider(ctx context.Context, providerID id.ProviderID) ([]*models.Complaint, error)
}

// DocumentStore loads the required-document checklists per event. The
// required set per event type is external configuration; the engine only
// counts the booleans.
type DocumentStore interface {
	ChecklistsByProvider(ctx context.Context, providerID id.ProviderID) (map[id.EventID]map[string]bool, error)
}
