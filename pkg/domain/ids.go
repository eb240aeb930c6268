// Package domain defines the typed identifiers shared by every layer.
//
// Each entity gets its own UUID-backed type so the compiler rejects a
// certificate ID where an event ID is expected. Parse helpers enforce the
// invariant that IDs are valid, non-nil UUIDs at trust boundaries (HTTP
// handlers, store rows).
package domain

import (
	"github.com/google/uuid"

	dErrors "aceaudit/pkg/domain-errors"
)

type (
	// ProviderID identifies an accredited ACE provider organization.
	ProviderID uuid.UUID
	// CoordinatorID identifies a provider's coordinator of record.
	CoordinatorID uuid.UUID
	// EventID identifies a continuing-education event.
	EventID uuid.UUID
	// RegistrationID identifies an attendee registration for an event.
	RegistrationID uuid.UUID
	// CertificateID identifies a CEU certificate.
	CertificateID uuid.UUID
	// FeedbackID identifies an attendee feedback response.
	FeedbackID uuid.UUID
	// ComplaintID identifies a submitted complaint.
	ComplaintID uuid.UUID
	// ActorID identifies the user performing a mutating operation.
	ActorID uuid.UUID
)

func parseUUID(raw string) (uuid.UUID, error) {
	if raw == "" {
		return uuid.Nil, dErrors.New(dErrors.CodeInvalidInput, "id is required")
	}
	parsed, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, dErrors.Wrap(err, dErrors.CodeInvalidInput, "id is not a valid UUID")
	}
	if parsed == uuid.Nil {
		return uuid.Nil, dErrors.New(dErrors.CodeInvalidInput, "id must not be the nil UUID")
	}
	return parsed, nil
}

// ParseProviderID parses and validates a provider ID from its string form.
func ParseProviderID(raw string) (ProviderID, error) {
	parsed, err := parseUUID(raw)
	return ProviderID(parsed), err
}

// ParseCoordinatorID parses and validates a coordinator ID from its string form.
func ParseCoordinatorID(raw string) (CoordinatorID, error) {
	parsed, err := parseUUID(raw)
	return CoordinatorID(parsed), err
}

// ParseEventID parses and validates an event ID from its string form.
func ParseEventID(raw string) (EventID, error) {
	parsed, err := parseUUID(raw)
	return EventID(parsed), err
}

// ParseRegistrationID parses and validates a registration ID from its string form.
func ParseRegistrationID(raw string) (RegistrationID, error) {
	parsed, err := parseUUID(raw)
	return RegistrationID(parsed), err
}

// ParseCertificateID parses and validates a certificate ID from its string form.
func ParseCertificateID(raw string) (CertificateID, error) {
	parsed, err := parseUUID(raw)
	return CertificateID(parsed), err
}

// ParseFeedbackID parses and validates a feedback ID from its string form.
func ParseFeedbackID(raw string) (FeedbackID, error) {
	parsed, err := parseUUID(raw)
	return FeedbackID(parsed), err
}

// ParseComplaintID parses and validates a complaint ID from its string form.
func ParseComplaintID(raw string) (ComplaintID, error) {
	parsed, err := parseUUID(raw)
	return ComplaintID(parsed), err
}

// ParseActorID parses and validates an actor ID from its string form.
func ParseActorID(raw string) (ActorID, error) {
	parsed, err := parseUUID(raw)
	return ActorID(parsed), err
}

func (id ProviderID) String() string     { return uuid.UUID(id).String() }
func (id CoordinatorID) String() string  { return uuid.UUID(id).String() }
func (id EventID) String() string        { return uuid.UUID(id).String() }
func (id RegistrationID) String() string { return uuid.UUID(id).String() }
func (id CertificateID) String() string  { return uuid.UUID(id).String() }
func (id FeedbackID) String() string     { return uuid.UUID(id).String() }
func (id ComplaintID) String() string    { return uuid.UUID(id).String() }
func (id ActorID) String() string        { return uuid.UUID(id).String() }

func (id ProviderID) IsNil() bool     { return uuid.UUID(id) == uuid.Nil }
func (id CoordinatorID) IsNil() bool  { return uuid.UUID(id) == uuid.Nil }
func (id EventID) IsNil() bool        { return uuid.UUID(id) == uuid.Nil }
func (id RegistrationID) IsNil() bool { return uuid.UUID(id) == uuid.Nil }
func (id CertificateID) IsNil() bool  { return uuid.UUID(id) == uuid.Nil }
func (id FeedbackID) IsNil() bool     { return uuid.UUID(id) == uuid.Nil }
func (id ComplaintID) IsNil() bool    { return uuid.UUID(id) == uuid.Nil }
func (id ActorID) IsNil() bool        { return uuid.UUID(id) == uuid.Nil }

// MarshalText renders the ID as its canonical UUID string so JSON responses
// stay stable for export/report consumers.
func (id ProviderID) MarshalText() ([]byte, error)     { return []byte(id.String()), nil }
func (id CoordinatorID) MarshalText() ([]byte, error)  { return []byte(id.String()), nil }
func (id EventID) MarshalText() ([]byte, error)        { return []byte(id.String()), nil }
func (id RegistrationID) MarshalText() ([]byte, error) { return []byte(id.String()), nil }
func (id CertificateID) MarshalText() ([]byte, error)  { return []byte(id.String()), nil }
func (id FeedbackID) MarshalText() ([]byte, error)     { return []byte(id.String()), nil }
func (id ComplaintID) MarshalText() ([]byte, error)    { return []byte(id.String()), nil }
func (id ActorID) MarshalText() ([]byte, error)        { return []byte(id.String()), nil }

func unmarshalUUID(text []byte) (uuid.UUID, error) {
	parsed, err := uuid.ParseBytes(text)
	if err != nil {
		return uuid.Nil, dErrors.Wrap(err, dErrors.CodeInvalidInput, "id is not a valid UUID")
	}
	return parsed, nil
}

func (id *ProviderID) UnmarshalText(text []byte) error {
	parsed, err := unmarshalUUID(text)
	*id = ProviderID(parsed)
	return err
}

func (id *EventID) UnmarshalText(text []byte) error {
	parsed, err := unmarshalUUID(text)
	*id = EventID(parsed)
	return err
}
