// Package common defines shared constants and sentinel errors used across
// the server and client layers of lockerrelay. Callers should use errors.Is
// to match these values.
package common

import "errors"

var (
	// Service-level errors.
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")

	// ErrorNoLocker is returned when a user authenticated correctly but has
	// no locker assigned.
	ErrorNoLocker = errors.New("no locker assigned")

	// Validation errors (missing or malformed input).
	ErrorValidation = errors.New("validation error")
)
