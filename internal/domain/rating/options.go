package rating

import (
	"github.com/okian/campusgen/pkg/logger"
)

// Option applies a configuration option to the Synthesizer.
type Option func(*Synthesizer)

// WithMode selects the score band to draw from.
func WithMode(mode Mode) Option {
	return func(s *Synthesizer) {
		s.mode = mode
	}
}

// WithLogger sets a custom logger for the synthesizer.
func WithLogger(logger logger.Logger) Option {
	return func(s *Synthesizer) {
		if logger != nil {
			s.logger = logger
		}
	}
}
