package engine

import (
	"time"

	"aceaudit/internal/compliance/models"
	"aceaudit/internal/compliance/policy"
)

// Status is the provider lifecycle state. Memoryless: fully determined by
// the current clock and the expiration date on every evaluation, with no
// transition history.
type Status string

const (
	StatusActive      Status = "Active"
	StatusGracePeriod Status = "Grace Period"
	StatusLapsed      Status = "Lapsed"
)

// ProviderStanding is the derived lifecycle status plus the capability flags
// gated by it. Flags are always a pure function of Status and the policy's
// grace tolerances; they are never set independently.
type ProviderStanding struct {
	Status Status `json:"status"`
	// DaysUntilRenewal is nil when the provider has no expiration date on
	// file; consumers render an explicit missing marker, not a guess.
	DaysUntilRenewal     *int `json:"daysUntilRenewal"`
	CanPublishEvents     bool `json:"canPublishEvents"`
	CanIssueCertificates bool `json:"canIssueCertificates"`
	CanRenew             bool `json:"canRenew"`
}

// ResolveStanding derives the three-state lifecycle from days until renewal:
//
//	Active:       daysUntilRenewal > graceWindowDays
//	Grace Period: 0 < daysUntilRenewal <= graceWindowDays
//	Lapsed:       daysUntilRenewal <= 0
//
// A provider with no expiration date on file is treated as Lapsed with a nil
// DaysUntilRenewal: accreditation that cannot be verified gates the same
// capabilities as accreditation that has expired.
func ResolveStanding(now time.Time, provider *models.Provider, pol policy.Policy) ProviderStanding {
	if provider == nil || provider.ExpirationDate == nil {
		return capabilitiesFor(StatusLapsed, nil, pol)
	}

	days := policy.DaysUntil(now, *provider.ExpirationDate)
	switch {
	case days > pol.GraceWindowDays:
		return capabilitiesFor(StatusActive, &days, pol)
	case days > 0:
		return capabilitiesFor(StatusGracePeriod, &days, pol)
	default:
		return capabilitiesFor(StatusLapsed, &days, pol)
	}
}

func capabilitiesFor(status Status, daysUntilRenewal *int, pol policy.Policy) ProviderStanding {
	standing := ProviderStanding{
		Status:           status,
		DaysUntilRenewal: daysUntilRenewal,
	}
	switch status {
	case StatusActive:
		standing.CanPublishEvents = true
		standing.CanIssueCertificates = true
	case StatusGracePeriod:
		standing.CanPublishEvents = pol.PublishDuringGrace
		standing.CanIssueCertificates = pol.IssueCertificatesDuringGrace
		standing.CanRenew = true
	case StatusLapsed:
		standing.CanRenew = true
	}
	return standing
}
