package engine

import (
	"time"

	"aceaudit/internal/compliance/policy"
)

// Deduction is one kind of detected violation with its weight and occurrence
// count. The same reason accumulates a count rather than repeating, so the
// score report carries one line per kind, not per instance.
type Deduction struct {
	Reason string `json:"reason"`
	Points int    `json:"points"`
	Count  int    `json:"count"`
}

// ScoreReport is the bounded compliance score with its itemized deductions.
type ScoreReport struct {
	// Score is max(0, 100 − Σ points×count), presentable as a percentage.
	Score      int         `json:"score"`
	Deductions []Deduction `json:"deductions"`
	// EvaluatedAt is the request clock of the evaluation. Its presence is
	// what distinguishes a computed perfect score from "not yet evaluated".
	EvaluatedAt time.Time `json:"evaluatedAt"`
	// Perfect is true only for a computed score of exactly 100.
	Perfect bool `json:"perfect"`
}

// Score aggregates deductions into the bounded score. Deductions with a zero
// count are dropped; the floor at 0 keeps the figure presentable even when
// violations overshoot 100 points.
func Score(now time.Time, deductions []Deduction) ScoreReport {
	present := []Deduction{}
	total := 0
	for _, d := range deductions {
		if d.Count <= 0 {
			continue
		}
		present = append(present, d)
		total += d.Points * d.Count
	}

	score := 100 - total
	if score < 0 {
		score = 0
	}
	return ScoreReport{
		Score:       score,
		Deductions:  present,
		EvaluatedAt: now,
		Perfect:     score == 100,
	}
}

// BuildDeductions maps the other derivations onto weighted deduction kinds in
// a fixed order, so identical snapshots always produce an identical report.
func BuildDeductions(standing ProviderStanding, overdue OverdueReport, retention []RetentionEntry, cert CertificationStatus) []Deduction {
	pastDueRetention := 0
	for _, entry := range retention {
		if entry.RetentionStatus == RetentionPastDue {
			pastDueRetention++
		}
	}

	certExpired := 0
	if cert.Severity == SeverityCritical && cert.DaysUntilExpiration != nil && *cert.DaysUntilExpiration <= 0 {
		certExpired = 1
	}

	lapsed := 0
	if standing.Status == StatusLapsed {
		lapsed = 1
	}

	return []Deduction{
		{Reason: policy.ReasonOverdueCertificate, Points: policy.PointsOverdueCertificate, Count: len(overdue.Certificates)},
		{Reason: policy.ReasonOverdueFeedbackReview, Points: policy.PointsOverdueFeedbackReview, Count: len(overdue.Feedback)},
		{Reason: policy.ReasonOverdueComplaint, Points: policy.PointsOverdueComplaint, Count: len(overdue.Complaints)},
		{Reason: policy.ReasonRetentionPastDue, Points: policy.PointsRetentionPastDue, Count: pastDueRetention},
		{Reason: policy.ReasonCoordinatorCertExpired, Points: policy.PointsCoordinatorCertExpired, Count: certExpired},
		{Reason: policy.ReasonAccreditationLapsed, Points: policy.PointsAccreditationLapsed, Count: lapsed},
	}
}
