// Package config defines generator configuration structures and loading hooks.
//
// Conventions:
// - Provide New() to build a Config with defaults; Load(ctx) layers file/env.
// - External errors must be wrapped via this package's error helpers.
package config

import (
	"runtime"
)

// Config contains generation-run configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Seed fixes the pseudo-random source for the run. Identical seeds
	// reproduce identical datasets.
	Seed int64 `koanf:"seed"`

	// StudentCount and TeacherCount size the synthesized rosters.
	StudentCount int `koanf:"student_count"`
	TeacherCount int `koanf:"teacher_count"`

	// ExpertiseMin and ExpertiseMax bound the departments sampled per teacher.
	ExpertiseMin int `koanf:"expertise_min"`
	ExpertiseMax int `koanf:"expertise_max"`

	// TeachingLoadMax caps the courses sampled into a teacher's active load.
	TeachingLoadMax int `koanf:"teaching_load_max"`

	// EnrollMin and EnrollMax bound courses drawn per student.
	EnrollMin int `koanf:"enroll_min"`
	EnrollMax int `koanf:"enroll_max"`

	// MinCourseEnrollment is the per-course enrollment floor the repair
	// loop works toward.
	MinCourseEnrollment int `koanf:"min_course_enrollment"`

	// RepairCap bounds repair-loop iterations.
	RepairCap int `koanf:"repair_cap"`

	// SessionsPerPairMin and SessionsPerPairMax bound sessions emitted per
	// (student, course) enrollment pair.
	SessionsPerPairMin int `koanf:"sessions_per_pair_min"`
	SessionsPerPairMax int `koanf:"sessions_per_pair_max"`

	// BulkSessionCount sets how many extra sessions are drawn directly from
	// the observed (student, teacher) sets.
	BulkSessionCount int `koanf:"bulk_session_count"`

	// BoostFactor is the multiplier applied by the rescaling transform.
	BoostFactor float64 `koanf:"boost_factor"`

	// WorkerCount sets the number of rating workers.
	WorkerCount int `koanf:"worker_count"`

	// QueueSize bounds the in-memory session queue.
	QueueSize int `koanf:"queue_size"`

	// OutputDir is where the dataset JSON files land.
	OutputDir string `koanf:"output_dir"`
}

// New creates a Config populated with defaults.
func New() *Config {
	return &Config{
		LogLevel:            "info",
		Seed:                42,
		StudentCount:        100,
		TeacherCount:        40,
		ExpertiseMin:        1,
		ExpertiseMax:        3,
		TeachingLoadMax:     5,
		EnrollMin:           1,
		EnrollMax:           5,
		MinCourseEnrollment: 3,
		RepairCap:           100,
		SessionsPerPairMin:  1,
		SessionsPerPairMax:  3,
		BulkSessionCount:    500,
		BoostFactor:         1.5,
		WorkerCount:         runtime.NumCPU() * 2,
		QueueSize:           4096,
		OutputDir:           "dataset",
	}
}
