package repository

import "errors"

// Sentinel kinds for ranking errors.
var (
	ErrNotFound     = errors.New("teacher not found")
	ErrInvalidLimit = errors.New("invalid ranking limit")
)
