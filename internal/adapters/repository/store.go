// Package repository defines the teacher-ranking store interface and errors.
package repository

import "context"

// Entry represents a ranking row. Scores aggregate per teacher across every
// rated session.
type Entry struct {
	Rank      int
	TeacherID string
	MeanScore float64
	TotalSum  float64
	Sessions  int
}

// Store provides read/write access to the teacher aggregates.
type Store interface {
	// Add folds one rated session's total score into the teacher's aggregate.
	Add(ctx context.Context, teacherID string, totalScore float64) error

	// Rank returns the current rank and aggregate for a teacher.
	// Returns ErrNotFound if the teacher is unknown.
	Rank(ctx context.Context, teacherID string) (Entry, error)

	// TopN returns the top-N entries ordered by mean score desc.
	TopN(ctx context.Context, n int) ([]Entry, error)

	// Count returns the number of teachers tracked.
	Count(ctx context.Context) int
}
