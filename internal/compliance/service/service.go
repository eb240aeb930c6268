// Package service orchestrates the compliance engine over entity stores.
//
// The service owns the two logical operations the HTTP layer exposes: the
// read-only dashboard evaluation and the guarded event approval transition.
// All other state is derived, never written.
package service

import (
	"errors"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"aceaudit/internal/compliance/metrics"
	"aceaudit/internal/compliance/policy"
	"aceaudit/pkg/platform/audit"
)

// Service exposes dashboard evaluation and event approval.
type Service struct {
	providers ProviderStore
	events    EventStore
	records   RecordStore
	documents DocumentStore

	pol            policy.Policy
	logger         *slog.Logger
	metrics        *metrics.Metrics
	auditPublisher audit.Publisher
	tracer         trace.Tracer
}

// Option configures the Service.
type Option func(*Service)

// WithLogger sets a structured logger for edge reporting. The engine itself
// never logs; only orchestration failures are reported here.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) { s.logger = logger }
}

// WithMetrics sets the metrics collector.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) { s.metrics = m }
}

// WithAuditPublisher sets the sink for approval-decision audit events.
func WithAuditPublisher(publisher audit.Publisher) Option {
	return func(s *Service) { s.auditPublisher = publisher }
}

// WithPolicy overrides the default rule policy.
func WithPolicy(pol policy.Policy) Option {
	return func(s *Service) { s.pol = pol }
}

// New wires the service over its stores.
func New(providers ProviderStore, events EventStore, records RecordStore, documents DocumentStore, opts ...Option) (*Service, error) {
	if providers == nil || events == nil || records == nil || documents == nil {
		return nil, errors.New("all stores are required")
	}
	s := &Service{
		providers:      providers,
		events:         events,
		records:        records,
		documents:      documents,
		pol:            policy.Default(),
		auditPublisher: audit.NopPublisher{},
		tracer:         otel.Tracer("aceaudit/compliance"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}
