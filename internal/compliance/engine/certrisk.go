package engine

import (
	"time"

	"aceaudit/internal/compliance/models"
	"aceaudit/internal/compliance/policy"
)

// Severity tiers for the coordinator's own credential expiration. These gate
// UI emphasis but are pure data outputs, not rendering decisions.
type Severity string

const (
	SeverityNormal   Severity = "normal"
	SeverityWarning  Severity = "warning"
	SeverityCritical Severity = "critical"
	// SeverityMissing means no expiration date is on file. That is a
	// data-quality problem, not a time-to-expiry problem, so it is kept
	// distinct from critical and carries different remediation messaging.
	SeverityMissing Severity = "missing"
)

// CertificationStatus is the derived risk tier for the coordinator of record.
type CertificationStatus struct {
	Severity Severity `json:"severity"`
	// DaysUntilExpiration is nil when no date is on file.
	DaysUntilExpiration *int   `json:"daysUntilExpiration"`
	CoordinatorName     string `json:"coordinatorName,omitempty"`
	Message             string `json:"message"`
}

// ClassifyCertificationRisk tiers the coordinator credential by days until
// expiry: expired or within 30 days is critical, within 90 days is warning,
// otherwise normal. A missing coordinator or missing date yields missing.
func ClassifyCertificationRisk(now time.Time, coordinator *models.Coordinator) CertificationStatus {
	if coordinator == nil {
		return CertificationStatus{
			Severity: SeverityMissing,
			Message:  "no coordinator of record on file; designate an ACE coordinator",
		}
	}
	if coordinator.CertificationExpirationDate == nil {
		return CertificationStatus{
			Severity:        SeverityMissing,
			CoordinatorName: coordinator.Name,
			Message:         "coordinator certification expiration date is not on file; update the coordinator record",
		}
	}

	days := policy.DaysUntil(now, *coordinator.CertificationExpirationDate)
	status := CertificationStatus{
		DaysUntilExpiration: &days,
		CoordinatorName:     coordinator.Name,
	}
	switch {
	case days <= 0:
		status.Severity = SeverityCritical
		status.Message = "coordinator certification has expired; renew immediately"
	case days <= policy.CertCriticalWithinDays:
		status.Severity = SeverityCritical
		status.Message = "coordinator certification expires within 30 days"
	case days <= policy.CertWarningWithinDays:
		status.Severity = SeverityWarning
		status.Message = "coordinator certification expires within 90 days"
	default:
		status.Severity = SeverityNormal
		status.Message = "coordinator certification is current"
	}
	return status
}
