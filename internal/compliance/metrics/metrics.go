package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the compliance module: evaluation
// volume and latency, plus approval decisions broken down by outcome.
type Metrics struct {
	DashboardsComputed prometheus.Counter
	DashboardDuration  prometheus.Histogram
	ApprovalDecisions  *prometheus.CounterVec
	ApprovalConflicts  prometheus.Counter
}

// New creates a Metrics instance with all compliance module metrics registered.
func New() *Metrics {
	return &Metrics{
		DashboardsComputed: promauto.NewCounter(prometheus.CounterOpts{
			Name: "aceaudit_dashboards_computed_total",
			Help: "Total number of dashboard evaluations computed",
		}),
		DashboardDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "aceaudit_dashboard_duration_seconds",
			Help:    "Duration of full dashboard evaluations (snapshot fetch plus derivation)",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}),
		ApprovalDecisions: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "aceaudit_approval_decisions_total",
			Help: "Total number of event approval decisions by resulting state",
		}, []string{"state"}),
		ApprovalConflicts: promauto.NewCounter(prometheus.CounterOpts{
			Name: "aceaudit_approval_conflicts_total",
			Help: "Total number of approval attempts rejected because the event was already decided",
		}),
	}
}

// ObserveDashboard records the duration of one dashboard evaluation.
// Call with time.Now() captured at the start of the operation.
func (m *Metrics) ObserveDashboard(start time.Time) {
	m.DashboardsComputed.Inc()
	m.DashboardDuration.Observe(time.Since(start).Seconds())
}

// IncrementApproval records a successful approval decision.
func (m *Metrics) IncrementApproval(state string) {
	m.ApprovalDecisions.WithLabelValues(state).Inc()
}

// IncrementApprovalConflict records a decision attempt that lost the race.
func (m *Metrics) IncrementApprovalConflict() {
	m.ApprovalConflicts.Inc()
}
