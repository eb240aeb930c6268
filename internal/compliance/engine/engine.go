package engine

import (
	"sort"
	"time"

	"aceaudit/internal/compliance/models"
	"aceaudit/internal/compliance/policy"
)

// Stats summarizes snapshot volumes for the dashboard header.
type Stats struct {
	TotalEvents         int `json:"totalEvents"`
	PendingEvents       int `json:"pendingEvents"`
	ApprovedEvents      int `json:"approvedEvents"`
	RejectedEvents      int `json:"rejectedEvents"`
	TotalRegistrations  int `json:"totalRegistrations"`
	CertificatesIssued  int `json:"certificatesIssued"`
	CertificatesPending int `json:"certificatesPending"`
	OpenComplaints      int `json:"openComplaints"`
}

// Evaluation is the composed output of every derivation for one provider at
// one instant. It is immutable and serializable: plain data, no functions,
// no cycles, deterministic for a given snapshot and clock.
type Evaluation struct {
	Standing      ProviderStanding
	Certification CertificationStatus
	Overdue       OverdueReport
	Retention     []RetentionEntry
	Score         ScoreReport
	PendingEvents []*models.Event
	Stats         Stats
}

// Evaluate recomputes all derived compliance state from one snapshot and one
// clock reading. Feeding the output's inputs back through the same rules
// reproduces the identical result; there is no hidden state.
func Evaluate(now time.Time, snap *Snapshot, pol policy.Policy) Evaluation {
	standing := ResolveStanding(now, snap.Provider, pol)
	certification := ClassifyCertificationRisk(now, snap.Coordinator)
	overdue := ClassifyOverdue(now, snap)
	retention := TrackRetention(now, snap, pol)
	score := Score(now, BuildDeductions(standing, overdue, retention, certification))

	pending := []*models.Event{}
	stats := Stats{
		TotalEvents:        len(snap.Events),
		TotalRegistrations: len(snap.Registrations),
	}
	for _, event := range snap.Events {
		switch event.ApprovalState {
		case models.ApprovalPending:
			stats.PendingEvents++
			pending = append(pending, event)
		case models.ApprovalApproved:
			stats.ApprovedEvents++
		case models.ApprovalRejected:
			stats.RejectedEvents++
		}
	}
	sort.Slice(pending, func(i, j int) bool {
		if !pending[i].CreatedAt.Equal(pending[j].CreatedAt) {
			return pending[i].CreatedAt.Before(pending[j].CreatedAt)
		}
		return pending[i].ID.String() < pending[j].ID.String()
	})

	for _, cert := range snap.Certificates {
		if cert.IsPending() {
			stats.CertificatesPending++
		} else {
			stats.CertificatesIssued++
		}
	}
	for _, complaint := range snap.Complaints {
		if complaint.IsPending() {
			stats.OpenComplaints++
		}
	}

	return Evaluation{
		Standing:      standing,
		Certification: certification,
		Overdue:       overdue,
		Retention:     retention,
		Score:         score,
		PendingEvents: pending,
		Stats:         stats,
	}
}
