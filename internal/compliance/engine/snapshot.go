// Package engine derives compliance state from entity snapshots.
//
// Every function here is pure: it takes the request clock and an immutable
// snapshot and returns derived values. Nothing is cached, persisted or
// logged, so recomputing on every dashboard request always reflects current
// time and current records. The only mutating operation in the system (the
// approval decision) lives in the service/store layers, not here.
package engine

import (
	id "aceaudit/pkg/domain"

	"aceaudit/internal/compliance/models"
)

// Snapshot is the set of entity records one evaluation works over. The
// service assembles it from the stores once per request; the engine never
// fetches and never mutates.
type Snapshot struct {
	Provider    *models.Provider
	Coordinator *models.Coordinator

	Events        []*models.Event
	Registrations []*models.Registration
	Certificates  []*models.Certificate
	Feedback      []*models.FeedbackResponse
	Complaints    []*models.Complaint

	// Documents maps each event to its required-document checklist. The
	// required set per event type is external configuration; the engine only
	// counts completed entries.
	Documents map[id.EventID]map[string]bool
}

// eventsByID indexes the snapshot's events for anchor lookups.
func (s *Snapshot) eventsByID() map[id.EventID]*models.Event {
	index := make(map[id.EventID]*models.Event, len(s.Events))
	for _, event := range s.Events {
		index[event.ID] = event
	}
	return index
}
