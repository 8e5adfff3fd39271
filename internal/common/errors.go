// Package common defines shared constants and sentinel errors used across
// the client layers of GoBarber. Callers should use errors.Is to match these
// values.
package common

import "errors"

var (
	// Storage-level errors.
	ErrorNotFound = errors.New("not found")

	// Session-level errors.
	ErrorNotAuthenticated = errors.New("not authenticated")
	ErrCorruptedSession   = errors.New("corrupted session data")

	// Validation errors.
	ErrorValidation = errors.New("validation error")
)
