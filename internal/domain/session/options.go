package session

import (
	"github.com/okian/campusgen/pkg/logger"
)

// Option applies a configuration option to the Builder.
type Option func(*Builder)

// WithSessionsPerPair sets how many sessions each student-course pair
// produces.
func WithSessionsPerPair(min, max int) Option {
	return func(b *Builder) {
		if min >= 1 && max >= min {
			b.perPairMin = min
			b.perPairMax = max
		}
	}
}

// WithBulkCount sets how many extra draws the bulk phase attempts.
func WithBulkCount(n int) Option {
	return func(b *Builder) {
		if n >= 0 {
			b.bulkCount = n
		}
	}
}

// WithLogger sets a custom logger for the builder.
func WithLogger(logger logger.Logger) Option {
	return func(b *Builder) {
		if logger != nil {
			b.logger = logger
		}
	}
}
