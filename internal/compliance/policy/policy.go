// Package policy centralizes the regulatory rule constants and the deadline
// arithmetic built on them.
//
// The 45-day response window and the 3-year retention window are external
// regulatory deadlines, not per-feature details: every overdue and retention
// computation in the engine goes through this package so a future change to a
// window lands in exactly one place.
package policy

import "time"

const (
	// ResponseWindowDays is the regulatory window for certificate issuance,
	// feedback review and complaint response.
	ResponseWindowDays = 45

	// RetentionWindowDays is the document retention period measured from
	// event end (3 years).
	RetentionWindowDays = 1095
)

// Deduction point values per violation kind. The scorer multiplies each by
// the occurrence count and floors the result at zero.
const (
	PointsOverdueCertificate     = 10
	PointsOverdueFeedbackReview  = 5
	PointsOverdueComplaint       = 15
	PointsRetentionPastDue       = 10
	PointsCoordinatorCertExpired = 20
	PointsAccreditationLapsed    = 25
)

// Deduction reasons, stable strings consumed by the dashboard and the audit
// export. One entry per kind of violation, never per instance.
const (
	ReasonOverdueCertificate     = "certificates past 45-day issuance window"
	ReasonOverdueFeedbackReview  = "feedback past 45-day review window"
	ReasonOverdueComplaint       = "complaints past 45-day response window"
	ReasonRetentionPastDue       = "events past 3-year retention deadline with missing documents"
	ReasonCoordinatorCertExpired = "coordinator certification expired"
	ReasonAccreditationLapsed    = "provider accreditation lapsed"
)

// Certification-risk thresholds in days until credential expiry.
const (
	CertCriticalWithinDays = 30
	CertWarningWithinDays  = 90
)

const day = 24 * time.Hour

// Deadline returns anchor + windowDays. Pure addition; no error cases.
func Deadline(anchor time.Time, windowDays int) time.Time {
	return anchor.Add(time.Duration(windowDays) * day)
}

// DaysOverdue returns floor((now − deadline) / day). Zero or negative means
// the deadline has not passed.
func DaysOverdue(now, deadline time.Time) int {
	return int(now.Sub(deadline) / day)
}

// DaysUntil returns floor((t − now) / day), negative once t is in the past.
func DaysUntil(now, t time.Time) int {
	return int(t.Sub(now) / day)
}

// Policy carries the configurable parts of the rule set. The regulatory
// windows above are constants; these knobs are product policy.
type Policy struct {
	// GraceWindowDays is the renewal grace period after accreditation expiry.
	GraceWindowDays int

	// PublishDuringGrace and IssueCertificatesDuringGrace decide which
	// capabilities survive into the grace period. Modeled as independent
	// flags because the two capabilities may have different grace tolerances.
	PublishDuringGrace           bool
	IssueCertificatesDuringGrace bool

	// RetentionWarningDays is how far before the retention deadline an event
	// is reported as due_soon.
	RetentionWarningDays int
}

// Default returns the policy used when nothing is configured.
func Default() Policy {
	return Policy{
		GraceWindowDays:      30,
		RetentionWarningDays: 90,
	}
}
