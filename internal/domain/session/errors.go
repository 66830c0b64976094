package session

import "errors"

// Sentinel errors for the session package.
var (
	// ErrInvalidSchedule indicates a schedule whose fields are malformed or
	// internally inconsistent.
	ErrInvalidSchedule = errors.New("invalid schedule")
)
