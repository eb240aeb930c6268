package service

import (
	"time"

	id "aceaudit/pkg/domain"

	"aceaudit/internal/compliance/engine"
	"aceaudit/internal/compliance/models"
)

// DashboardResponse is the single composed payload consumed by the
// presentation layers and by the audit-snapshot export. Field names are a
// stable contract across the pages consuming it; everything is plain data so
// the export stays serializable and deterministic for a given snapshot and
// clock reading.
type DashboardResponse struct {
	ProviderInfo        ProviderInfo               `json:"providerInfo"`
	CertificationStatus engine.CertificationStatus `json:"certificationStatus"`
	ComplianceScore     engine.ScoreReport         `json:"complianceScore"`
	OverdueItems        engine.OverdueReport       `json:"overdueItems"`
	PendingEvents       []EventSummary             `json:"pendingEvents"`
	RetentionEvents     []engine.RetentionEntry    `json:"retentionEvents"`
	Stats               engine.Stats               `json:"stats"`
}

// ProviderInfo combines stored identity with the derived standing.
type ProviderInfo struct {
	ID                  id.ProviderID `json:"id"`
	Name                string        `json:"name"`
	AccreditationNumber string        `json:"accreditationNumber"`
	ExpirationDate      *time.Time    `json:"expirationDate"`
	engine.ProviderStanding
}

// EventSummary is the slim event view rendered in the pending-review queue.
type EventSummary struct {
	ID          id.EventID `json:"id"`
	Title       string     `json:"title"`
	Category    string     `json:"category"`
	Modality    string     `json:"modality"`
	StartDate   time.Time  `json:"startDate"`
	EndDate     *time.Time `json:"endDate"`
	Capacity    int        `json:"capacity"`
	SubmittedAt time.Time  `json:"submittedAt"`
}

// ApprovalResponse acknowledges a decided event.
type ApprovalResponse struct {
	Success   bool                 `json:"success"`
	NewState  models.ApprovalState `json:"newState"`
	DecidedAt time.Time            `json:"decidedAt"`
}

func toEventSummaries(events []*models.Event) []EventSummary {
	summaries := make([]EventSummary, 0, len(events))
	for _, event := range events {
		summaries = append(summaries, EventSummary{
			ID:          event.ID,
			Title:       event.Title,
			Category:    event.Category,
			Modality:    event.Modality,
			StartDate:   event.StartDate,
			EndDate:     event.EndDate,
			Capacity:    event.Capacity,
			SubmittedAt: event.CreatedAt,
		})
	}
	return summaries
}
