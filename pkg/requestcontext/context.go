// Package requestcontext provides HTTP-independent accessors for
// request-scoped values.
//
// Middleware sets the values; services and stores read them. Keeping the
// package free of net/http lets the engine and stores stay transport-agnostic.
//
// The most important value is the request clock: every derivation within one
// dashboard evaluation reads the same "now", so a single response is
// internally consistent even if wall-clock time advances mid-computation, and
// tests inject a fixed time with WithTime.
package requestcontext

import (
	"context"
	"time"

	id "aceaudit/pkg/domain"
)

type (
	requestTimeKey struct{}
	requestIDKey   struct{}
	actorIDKey     struct{}
)

// Now retrieves the request-scoped time from the context.
// Falls back to time.Now() for non-HTTP contexts (workers, CLI).
func Now(ctx context.Context) time.Time {
	if t, ok := ctx.Value(requestTimeKey{}).(time.Time); ok {
		return t
	}
	return time.Now()
}

// WithTime injects a specific time into a context. Used by the requesttime
// middleware and by tests that need a deterministic clock.
func WithTime(ctx context.Context, t time.Time) context.Context {
	return context.WithValue(ctx, requestTimeKey{}, t)
}

// RequestID retrieves the correlation ID for the current request, or "".
func RequestID(ctx context.Context) string {
	if reqID, ok := ctx.Value(requestIDKey{}).(string); ok {
		return reqID
	}
	return ""
}

// WithRequestID injects a correlation ID into the context.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, requestID)
}

// ActorID retrieves the acting coordinator/admin identity, zero when unset.
// Approval decisions record it in the audit trail.
func ActorID(ctx context.Context) id.ActorID {
	if actor, ok := ctx.Value(actorIDKey{}).(id.ActorID); ok {
		return actor
	}
	return id.ActorID{}
}

// WithActorID injects the acting user identity into the context.
func WithActorID(ctx context.Context, actor id.ActorID) context.Context {
	return context.WithValue(ctx, actorIDKey{}, actor)
}
