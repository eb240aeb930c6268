package models

import (
	"time"

	id "aceaudit/pkg/domain"
)

// Provider is an organization accredited to award CEU credit.
//
// Invariants:
//   - Lifecycle status (Active / Grace Period / Lapsed) is never stored; it is
//     derived from ExpirationDate and the request clock on every evaluation.
//   - Capability flags are a pure function of that derived status and are
//     never set independently.
//
// ExpirationDate is nullable: a provider with no expiration on file is a
// data-quality situation the engine surfaces explicitly rather than guessing.
type Provider struct {
	ID                  id.ProviderID `json:"id"`
	Name                string        `json:"name"`
	AccreditationNumber string        `json:"accreditation_number"`
	ExpirationDate      *time.Time    `json:"expiration_date,omitempty"`
	CreatedAt           time.Time     `json:"created_at"`
}

// Coordinator is the provider's ACE coordinator of record. One provider has
// exactly one active coordinator at a time; the store enforces that.
type Coordinator struct {
	ID               id.CoordinatorID `json:"id"`
	ProviderID       id.ProviderID    `json:"provider_id"`
	Name             string           `json:"name"`
	CredentialType   string           `json:"credential_type"`
	CredentialNumber string           `json:"credential_number"`
	// CertificationExpirationDate drives the certification-risk tier.
	// Nil means "no value on file", reported as severity missing.
	CertificationExpirationDate *time.Time `json:"certification_expiration_date,omitempty"`
}
