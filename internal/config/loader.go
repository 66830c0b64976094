package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):
//  1. defaults (New())
//  2. file (YAML) if CAMPUSGEN_CONFIG is set
//  3. env (prefix CAMPUSGEN_)
func Load(ctx context.Context) (*Config, error) {
	_ = ctx // reserved for future loaders that perform I/O with deadlines

	base := New()

	k := koanf.New(".")

	// Load from file if provided
	if path := os.Getenv("CAMPUSGEN_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
		}
	}

	// Environment variables: CAMPUSGEN_SEED, CAMPUSGEN_STUDENT_COUNT, ...
	// Map env keys like CAMPUSGEN_REPAIR_CAP -> repair_cap (flat keys).
	// Preserve underscores to match koanf tags on the struct.
	envProvider := env.Provider("CAMPUSGEN_", ".", func(s string) string {
		s = strings.ToLower(s)
		s = strings.TrimPrefix(s, "campusgen_")
		return s
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	// Unmarshal into a copy
	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// validate rejects configurations the pipeline cannot run with.
func (c *Config) validate() error {
	switch {
	case c.StudentCount < 1:
		return fmt.Errorf("%w: student_count must be >= 1", ErrInvalidConfig)
	case c.TeacherCount < 1:
		return fmt.Errorf("%w: teacher_count must be >= 1", ErrInvalidConfig)
	case c.ExpertiseMin < 1 || c.ExpertiseMax < c.ExpertiseMin:
		return fmt.Errorf("%w: expertise bounds must satisfy 1 <= min <= max", ErrInvalidConfig)
	case c.EnrollMin < 1 || c.EnrollMax < c.EnrollMin:
		return fmt.Errorf("%w: enrollment bounds must satisfy 1 <= min <= max", ErrInvalidConfig)
	case c.MinCourseEnrollment < 1:
		return fmt.Errorf("%w: min_course_enrollment must be >= 1", ErrInvalidConfig)
	case c.RepairCap < 0:
		return fmt.Errorf("%w: repair_cap must be >= 0", ErrInvalidConfig)
	case c.SessionsPerPairMin < 1 || c.SessionsPerPairMax < c.SessionsPerPairMin:
		return fmt.Errorf("%w: sessions-per-pair bounds must satisfy 1 <= min <= max", ErrInvalidConfig)
	case c.BulkSessionCount < 0:
		return fmt.Errorf("%w: bulk_session_count must be >= 0", ErrInvalidConfig)
	case c.BoostFactor <= 0:
		return fmt.Errorf("%w: boost_factor must be > 0", ErrInvalidConfig)
	case c.TeachingLoadMax < 1:
		return fmt.Errorf("%w: teaching_load_max must be >= 1", ErrInvalidConfig)
	case c.OutputDir == "":
		return fmt.Errorf("%w: output_dir must not be empty", ErrInvalidConfig)
	}
	return nil
}
