package store

import (
	"context"
	"time"

	"github.com/google/uuid"

	id "aceaudit/pkg/domain"

	"aceaudit/internal/compliance/models"
	documentstore "aceaudit/internal/compliance/store/document"
	eventstore "aceaudit/internal/compliance/store/event"
	providerstore "aceaudit/internal/compliance/store/provider"
	recordstore "aceaudit/internal/compliance/store/records"
)

// SeedDemoProvider populates the in-memory stores with one provider carrying
// a bit of every kind of compliance state, so a fresh server answers the
// dashboard with something worth looking at.
func SeedDemoProvider(ps *providerstore.InMemory, es *eventstore.InMemory, rs *recordstore.InMemory, ds *documentstore.InMemory) id.ProviderID {
	ctx := context.Background()
	now := time.Now()

	providerExpiry := now.AddDate(0, 8, 0)
	p := &models.Provider{
		ID:                  id.ProviderID(uuid.New()),
		Name:                "Lakeshore Continuing Education",
		AccreditationNumber: "ACE-2026-104",
		ExpirationDate:      &providerExpiry,
		CreatedAt:           now.AddDate(-2, 0, 0),
	}
	_ = ps.Create(ctx, p)

	certExpiry := now.AddDate(0, 0, 75)
	_ = ps.SetCoordinator(ctx, &models.Coordinator{
		ID:                          id.CoordinatorID(uuid.New()),
		ProviderID:                  p.ID,
		Name:                        "Dr. Amara Fields",
		CredentialType:              "BCBA-D",
		CredentialNumber:            "1-05-8841",
		CertificationExpirationDate: &certExpiry,
	})

	// One event awaiting review.
	pendingStart := now.AddDate(0, 1, 0)
	pendingEnd := pendingStart.AddDate(0, 0, 2)
	_ = es.Create(ctx, &models.Event{
		ID:            id.EventID(uuid.New()),
		ProviderID:    p.ID,
		Title:         "Functional Communication Training in Practice",
		Category:      "Learning CE",
		Modality:      "live-online",
		StartDate:     pendingStart,
		EndDate:       &pendingEnd,
		Capacity:      80,
		ApprovalState: models.ApprovalPending,
		CreatedAt:     now.AddDate(0, 0, -4),
	})

	// One finished event with a certificate past the issuance window and an
	// incomplete document checklist.
	endedAt := now.AddDate(0, 0, -60)
	ended := &models.Event{
		ID:            id.EventID(uuid.New()),
		ProviderID:    p.ID,
		Title:         "Ethics in Supervision",
		Category:      "Ethics CE",
		Modality:      "in-person",
		StartDate:     endedAt.AddDate(0, 0, -1),
		EndDate:       &endedAt,
		Capacity:      40,
		ApprovalState: models.ApprovalApproved,
		CreatedAt:     now.AddDate(0, -4, 0),
	}
	_ = es.Create(ctx, ended)

	registration := &models.Registration{
		ID:             id.RegistrationID(uuid.New()),
		EventID:        ended.ID,
		AttendeeName:   "Jordan Pruitt",
		CredentialType: "BCBA",
		Paid:           true,
		Eligible:       true,
		Status:         "attended",
		CreatedAt:      endedAt.AddDate(0, -1, 0),
	}
	_ = rs.AddRegistration(ctx, p.ID, registration)
	_ = rs.AddCertificate(ctx, p.ID, &models.Certificate{
		ID:             id.CertificateID(uuid.New()),
		EventID:        ended.ID,
		RegistrationID: registration.ID,
	})
	_ = rs.AddFeedback(ctx, p.ID, &models.FeedbackResponse{
		ID:          id.FeedbackID(uuid.New()),
		EventID:     ended.ID,
		SubmittedAt: endedAt.AddDate(0, 0, 1),
	})
	_ = ds.SetChecklist(ctx, p.ID, ended.ID, map[string]bool{
		"attendance_record": true,
		"evaluation_form":   true,
		"event_materials":   false,
	})

	// An open complaint inside its response window.
	_ = rs.AddComplaint(ctx, &models.Complaint{
		ID:            id.ComplaintID(uuid.New()),
		ProviderID:    p.ID,
		SubmitterName: "anonymous",
		Body:          "instructor credentials not displayed during session",
		SubmittedAt:   now.AddDate(0, 0, -10),
		Status:        "open",
	})

	return p.ID
}
