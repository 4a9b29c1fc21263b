package models

import "errors"

// Sentinel errors for the SOS coordination core. Services wrap these with
// context via fmt.Errorf and callers classify them with errors.Is.
var (
	// ErrValidation marks malformed input to create/respond operations.
	ErrValidation = errors.New("validation failed")
	// ErrNotFound marks a referenced event or volunteer that does not exist.
	ErrNotFound = errors.New("not found")
	// ErrInvalidTransition marks a state machine rule violation: acting on an
	// event that is already in a terminal status.
	ErrInvalidTransition = errors.New("invalid state transition")
	// ErrNotAuthorized marks an actor lacking rights for a mutation.
	ErrNotAuthorized = errors.New("not authorized")
	// ErrStoreUnavailable marks a store timeout or outage.
	ErrStoreUnavailable = errors.New("store unavailable")
)
