package assembler

import "errors"

// Sentinel errors for the assembler.
var (
	// ErrEnqueue indicates the rating queue rejected a session task.
	ErrEnqueue = errors.New("failed to enqueue rating task")

	// ErrCollectorIndex indicates a rated session addressed to a slot
	// outside the batch.
	ErrCollectorIndex = errors.New("collector index out of range")

	// ErrAudit indicates the finished dataset violated an internal
	// consistency check.
	ErrAudit = errors.New("dataset audit failed")
)
