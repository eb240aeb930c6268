package models

import (
	"time"

	id "aceaudit/pkg/domain"
)

// Registration ties an attendee to an event. Immutable once created except
// for Status.
type Registration struct {
	ID             id.RegistrationID `json:"id"`
	EventID        id.EventID        `json:"event_id"`
	AttendeeName   string            `json:"attendee_name"`
	CredentialType string            `json:"credential_type"`
	Paid           bool              `json:"paid"`
	Eligible       bool              `json:"eligible"`
	Status         string            `json:"status"`
	CreatedAt      time.Time         `json:"created_at"`
}

// Certificate is a CEU certificate owed to a registrant. IssuedAt stays nil
// while issuance is pending; the 45-day issuance window is measured from the
// event's end date, not from the certificate row itself.
type Certificate struct {
	ID             id.CertificateID  `json:"id"`
	EventID        id.EventID        `json:"event_id"`
	RegistrationID id.RegistrationID `json:"registration_id"`
	IssuedAt       *time.Time        `json:"issued_at,omitempty"`
}

// IsPending reports whether the certificate still awaits issuance.
func (c *Certificate) IsPending() bool { return c.IssuedAt == nil }

// FeedbackResponse is attendee feedback awaiting coordinator review, subject
// to the same 45-day window from event end as certificates.
type FeedbackResponse struct {
	ID          id.FeedbackID `json:"id"`
	EventID     id.EventID    `json:"event_id"`
	SubmittedAt time.Time     `json:"submitted_at"`
	ReviewedAt  *time.Time    `json:"reviewed_at,omitempty"`
}

// IsPending reports whether the feedback still awaits review.
func (f *FeedbackResponse) IsPending() bool { return f.ReviewedAt == nil }

// Complaint is a submitted complaint. Its 45-day response window anchors on
// SubmittedAt rather than any event date.
type Complaint struct {
	ID            id.ComplaintID `json:"id"`
	ProviderID    id.ProviderID  `json:"provider_id"`
	SubmitterName string         `json:"submitter_name"`
	Body          string         `json:"body"`
	SubmittedAt   time.Time      `json:"submitted_at"`
	Status        string         `json:"status"`
	RespondedAt   *time.Time     `json:"responded_at,omitempty"`
}

// IsPending reports whether the complaint still awaits a response.
func (c *Complaint) IsPending() bool { return c.RespondedAt == nil }
