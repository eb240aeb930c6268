// Package audit captures the decisions an accreditation body may later ask
// the provider program to account for. Events are emitted from the service
// layer (never from the pure engine) and fanned out by a Publisher.
package audit

import (
	"context"
	"time"

	id "aceaudit/pkg/domain"
)

// Action names an auditable occurrence.
type Action string

const (
	ActionEventApproved Action = "event_approved"
	ActionEventRejected Action = "event_rejected"
)

// Event is emitted from domain logic to capture key actions. Keep it
// transport-agnostic so publishers can fan out to logs, Kafka or stores.
type Event struct {
	Action     Action        `json:"action"`
	OccurredAt time.Time     `json:"occurred_at"`
	ActorID    id.ActorID    `json:"actor_id,omitempty"`
	ProviderID id.ProviderID `json:"provider_id,omitempty"`
	EventID    id.EventID    `json:"event_id,omitempty"`
	// RequestID correlates the audit entry with the HTTP request that caused it.
	RequestID string `json:"request_id,omitempty"`
	Detail    string `json:"detail,omitempty"`
}

// Publisher delivers audit events to a sink.
type Publisher interface {
	Emit(ctx context.Context, event Event) error
	Close() error
}

// NopPublisher discards events. Used when no audit sink is configured;
// approval decisions still persist their actor and timestamp on the event row.
type NopPublisher struct{}

func (NopPublisher) Emit(context.Context, Event) error { return nil }
func (NopPublisher) Close() error                      { return nil }
