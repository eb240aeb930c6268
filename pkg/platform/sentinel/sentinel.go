package sentinel

import "errors"

// Sentinel errors for infrastructure facts. Stores return these (optionally
// wrapped) so services can translate them into coded domain errors without
// depending on a concrete store implementation.
//
// These describe factual states about stored records:
//   - ErrNotFound: entity does not exist in the store
//   - ErrConflict: a uniqueness or versioning constraint was violated
//   - ErrInvalidState: entity is in the wrong state for the requested mutation
//     (e.g. deciding an event that is no longer pending)
//   - ErrUnavailable: backing store temporarily unreachable
//
// Validation failures belong in pkg/domain-errors, not here.
var (
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrInvalidState = errors.New("invalid state")
	ErrUnavailable  = errors.New("unavailable")
)
