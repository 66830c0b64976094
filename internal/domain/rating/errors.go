package rating

import "errors"

// Sentinel errors for the rating package.
var (
	// ErrInvalidSchema indicates a rating schema that fails validation.
	// This is a configuration error; generation must not start.
	ErrInvalidSchema = errors.New("invalid rating schema")

	// ErrEmptyRoster indicates a low-group derivation with no students to
	// draw from.
	ErrEmptyRoster = errors.New("empty student roster")
)
