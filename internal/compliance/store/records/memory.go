// Package records stores the accreditation paper trail: registrations,
// certificates, feedback responses and complaints.
package records

import (
	"context"
	"sort"
	"sync"

	id "aceaudit/pkg/domain"

	"aceaudit/internal/compliance/models"
)

// InMemory implements the record store with in-process maps keyed by
// provider. Certificates, registrations and feedback belong to events, but
// the store denormalizes the provider key at insertion so dashboard loads
// stay a single lookup; the PostgreSQL implementation joins through events
// instead.
type InMemory struct {
	mu            sync.RWMutex
	registrations map[id.ProviderID][]*models.Registration
	certificates  map[id.ProviderID][]*models.Certificate
	feedback      map[id.ProviderID][]*models.FeedbackResponse
	complaints    map[id.ProviderID][]*models.Complaint
}

func NewInMemory() *InMemory {
	return &InMemory{
		registrations: make(map[id.ProviderID][]*models.Registration),
		certificates:  make(map[id.ProviderID][]*models.Certificate),
		feedback:      make(map[id.ProviderID][]*models.FeedbackResponse),
		complaints:    make(map[id.ProviderID][]*models.Complaint),
	}
}

func (s *InMemory) AddRegistration(_ context.Context, providerID id.ProviderID, registration *models.Registration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := *registration
	s.registrations[providerID] = append(s.registrations[providerID], &copied)
	return nil
}

func (s *InMemory) AddCertificate(_ context.Context, providerID id.ProviderID, certificate *models.Certificate) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := *certificate
	s.certificates[providerID] = append(s.certificates[providerID], &copied)
	return nil
}

func (s *InMemory) AddFeedback(_ context.Context, providerID id.ProviderID, feedback *models.FeedbackResponse) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := *feedback
	s.feedback[providerID] = append(s.feedback[providerID], &copied)
	return nil
}

func (s *InMemory) AddComplaint(_ context.Context, complaint *models.Complaint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := *complaint
	s.complaints[complaint.ProviderID] = append(s.complaints[complaint.ProviderID], &copied)
	return nil
}

func (s *InMemory) ListRegistrationsByProvider(_ context.Context, providerID id.ProviderID) ([]*models.Registration, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*models.Registration, 0, len(s.registrations[providerID]))
	for _, r := range s.registrations[providerID] {
		copied := *r
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID.String() < out[j].ID.String() })
	return out, nil
}

func (s *InMemory) ListCertificatesByProvider(_ context.Context, providerID id.ProviderID) ([]*models.Certificate, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*models.Certificate, 0, len(s.certificates[providerID]))
	for _, c := range s.certificates[providerID] {
		copied := *c
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID.String() < out[j].ID.String() })
	return out, nil
}

func (s *InMemory) ListFeedbackByProvider(_ context.Context, providerID id.ProviderID) ([]*models.FeedbackResponse, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*models.FeedbackResponse, 0, len(s.feedback[providerID]))
	for _, f := range s.feedback[providerID] {
		copied := *f
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID.String() < out[j].ID.String() })
	return out, nil
}

func (s *InMemory) ListComplaintsByProvider(_ context.Context, providerID id.ProviderID) ([]*models.Complaint, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*models.Complaint, 0, len(s.complaints[providerID]))
	for _, c := range s.complaints[providerID] {
		copied := *c
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID.String() < out[j].ID.String() })
	return out, nil
}
