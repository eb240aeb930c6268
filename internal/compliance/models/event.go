package models

import (
	"time"

	id "aceaudit/pkg/domain"
	dErrors "aceaudit/pkg/domain-errors"
)

// ApprovalState is the review lifecycle of a submitted event.
type ApprovalState string

const (
	ApprovalPending  ApprovalState = "pending"
	ApprovalApproved ApprovalState = "approved"
	ApprovalRejected ApprovalState = "rejected"
)

// IsTerminal reports whether the state admits no further transitions.
// approved and rejected are terminal; only pending may be decided.
func (s ApprovalState) IsTerminal() bool {
	return s == ApprovalApproved || s == ApprovalRejected
}

// Valid reports whether s is one of the known states.
func (s ApprovalState) Valid() bool {
	switch s {
	case ApprovalPending, ApprovalApproved, ApprovalRejected:
		return true
	}
	return false
}

// Event is a continuing-education event submitted by a provider.
//
// Invariants:
//   - ApprovalState transitions only pending → approved | rejected, enforced
//     by CanDecide/ApplyDecision under the store's Execute lock so a
//     concurrent duplicate decision cannot flip an already-decided event.
//   - EndDate is optional; deadline derivations that need it exclude the
//     event rather than assuming a value.
type Event struct {
	ID            id.EventID    `json:"id"`
	ProviderID    id.ProviderID `json:"provider_id"`
	Title         string        `json:"title"`
	Category      string        `json:"category"`
	Modality      string        `json:"modality"`
	StartDate     time.Time     `json:"start_date"`
	EndDate       *time.Time    `json:"end_date,omitempty"`
	Capacity      int           `json:"capacity"`
	ApprovalState ApprovalState `json:"approval_state"`
	// DecidedBy/DecidedAt record who approved or rejected the event and when.
	DecidedBy *id.ActorID `json:"decided_by,omitempty"`
	DecidedAt *time.Time  `json:"decided_at,omitempty"`
	CreatedAt time.Time   `json:"created_at"`
}

// CanDecide checks whether the event may still be approved or rejected.
// Use with ApplyDecision in store Execute callbacks: the store holds its lock
// (mutex or FOR UPDATE) across both, which is what gives the transition its
// compare-and-swap semantics.
func (e *Event) CanDecide() error {
	if e.ApprovalState.IsTerminal() {
		return dErrors.New(dErrors.CodeInvariantViolation, "event is already "+string(e.ApprovalState))
	}
	if e.ApprovalState != ApprovalPending {
		return dErrors.New(dErrors.CodeInvariantViolation, "event is not pending review")
	}
	return nil
}

// ApplyDecision records the terminal state together with the deciding actor
// and the request clock. Call CanDecide first; ApplyDecision does not guard.
func (e *Event) ApplyDecision(state ApprovalState, actor id.ActorID, now time.Time) {
	e.ApprovalState = state
	if !actor.IsNil() {
		e.DecidedBy = &actor
	}
	decidedAt := now
	e.DecidedAt = &decidedAt
}

// HasEnded reports whether the event's scheduling window has closed.
// Events without an end date never "end" for deadline purposes.
func (e *Event) HasEnded(now time.Time) bool {
	return e.EndDate != nil && e.EndDate.Before(now)
}
