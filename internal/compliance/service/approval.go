package service

import (
	"context"
	"errors"

	id "aceaudit/pkg/domain"
	dErrors "aceaudit/pkg/domain-errors"
	"aceaudit/pkg/platform/audit"
	"aceaudit/pkg/platform/sentinel"
	"aceaudit/pkg/requestcontext"

	"aceaudit/internal/compliance/models"
)

// DecisionAction is the requested approval outcome.
type DecisionAction string

const (
	ActionApprove DecisionAction = "approve"
	ActionReject  DecisionAction = "reject"
)

// state maps the action onto the terminal approval state.
func (a DecisionAction) state() (models.ApprovalState, error) {
	switch a {
	case ActionApprove:
		return models.ApprovalApproved, nil
	case ActionReject:
		return models.ApprovalRejected, nil
	default:
		return "", dErrors.New(dErrors.CodeBadRequest, "action must be approve or reject")
	}
}

// DecideEvent applies the pending → approved|rejected transition under the
// store's compare-and-swap guard: the current state is validated and the new
// state written while the store holds its lock, so a concurrent duplicate
// request (a double-click, a second reviewer) fails with CodeConflict
// instead of silently overwriting an already-decided event.
func (s *Service) DecideEvent(ctx context.Context, eventID id.EventID, action DecisionAction) (*ApprovalResponse, error) {
	if eventID.IsNil() {
		return nil, dErrors.New(dErrors.CodeBadRequest, "event id is required")
	}
	newState, err := action.state()
	if err != nil {
		return nil, err
	}

	ctx, span := s.tracer.Start(ctx, "compliance.DecideEvent")
	defer span.End()

	now := requestcontext.Now(ctx)
	actor := requestcontext.ActorID(ctx)

	event, err := s.events.Execute(ctx, eventID,
		func(e *models.Event) error {
			return e.CanDecide()
		},
		func(e *models.Event) {
			e.ApplyDecision(newState, actor, now)
		},
	)
	if err != nil {
		switch {
		case errors.Is(err, sentinel.ErrNotFound):
			return nil, dErrors.New(dErrors.CodeNotFound, "event not found")
		case dErrors.HasCode(err, dErrors.CodeInvariantViolation), errors.Is(err, sentinel.ErrInvalidState):
			if s.metrics != nil {
				s.metrics.IncrementApprovalConflict()
			}
			return nil, dErrors.New(dErrors.CodeConflict, "event has already been decided")
		default:
			return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to decide event")
		}
	}

	s.emitDecisionAudit(ctx, event, newState)
	if s.metrics != nil {
		s.metrics.IncrementApproval(string(newState))
	}

	return &ApprovalResponse{
		Success:   true,
		NewState:  event.ApprovalState,
		DecidedAt: now,
	}, nil
}

// emitDecisionAudit records who decided what and when. The decision itself
// is already committed with actor and timestamp on the event row, so a
// failed emit is logged rather than failing the request.
func (s *Service) emitDecisionAudit(ctx context.Context, event *models.Event, newState models.ApprovalState) {
	action := audit.ActionEventApproved
	if newState == models.ApprovalRejected {
		action = audit.ActionEventRejected
	}
	auditEvent := audit.Event{
		Action:     action,
		OccurredAt: requestcontext.Now(ctx),
		ActorID:    requestcontext.ActorID(ctx),
		ProviderID: event.ProviderID,
		EventID:    event.ID,
		RequestID:  requestcontext.RequestID(ctx),
		Detail:     event.Title,
	}
	if err := s.auditPublisher.Emit(ctx, auditEvent); err != nil && s.logger != nil {
		s.logger.ErrorContext(ctx, "audit emit failed for approval decision",
			"event_id", event.ID, "action", action, "error", err)
	}
}
