package enrollment

import (
	"github.com/okian/campusgen/pkg/logger"
)

// Option applies a configuration option to the Allocator.
type Option func(*Allocator)

// WithEnrollmentBounds sets the per-student course-count range.
func WithEnrollmentBounds(min, max int) Option {
	return func(a *Allocator) {
		if min >= 1 && max >= min {
			a.enrollMin = min
			a.enrollMax = max
		}
	}
}

// WithMinCourseEnrollment sets the per-course enrollment floor the repair
// loop works toward.
func WithMinCourseEnrollment(min int) Option {
	return func(a *Allocator) {
		if min >= 1 {
			a.minCourseEnrollment = min
		}
	}
}

// WithRepairCap bounds the repair-loop iterations.
func WithRepairCap(cap int) Option {
	return func(a *Allocator) {
		if cap >= 0 {
			a.repairCap = cap
		}
	}
}

// WithLogger sets a custom logger for the allocator.
func WithLogger(logger logger.Logger) Option {
	return func(a *Allocator) {
		if logger != nil {
			a.logger = logger
		}
	}
}
