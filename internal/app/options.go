package assembler

import (
	"github.com/okian/campusgen/internal/config"
	"github.com/okian/campusgen/internal/domain/catalog"
	"github.com/okian/campusgen/internal/domain/enrollment"
	"github.com/okian/campusgen/internal/domain/rating"
	"github.com/okian/campusgen/internal/domain/session"
	"github.com/okian/campusgen/pkg/logger"
)

// Option applies a configuration option to the Assembler.
type Option func(*Assembler)

// WithConfig maps a loaded configuration onto the pipeline.
func WithConfig(cfg *config.Config) Option {
	return func(a *Assembler) {
		if cfg == nil {
			return
		}
		a.seed = cfg.Seed
		a.studentCount = cfg.StudentCount
		a.teacherCount = cfg.TeacherCount
		a.expertiseMin = cfg.ExpertiseMin
		a.expertiseMax = cfg.ExpertiseMax
		a.teachingLoadMax = cfg.TeachingLoadMax
		a.boostFactor = cfg.BoostFactor
		a.workerCount = cfg.WorkerCount
		a.queueSize = cfg.QueueSize
		a.allocatorOpts = []enrollment.Option{
			enrollment.WithEnrollmentBounds(cfg.EnrollMin, cfg.EnrollMax),
			enrollment.WithMinCourseEnrollment(cfg.MinCourseEnrollment),
			enrollment.WithRepairCap(cfg.RepairCap),
		}
		a.builderOpts = []session.Option{
			session.WithSessionsPerPair(cfg.SessionsPerPairMin, cfg.SessionsPerPairMax),
			session.WithBulkCount(cfg.BulkSessionCount),
		}
	}
}

// WithSeed fixes the run seed.
func WithSeed(seed int64) Option {
	return func(a *Assembler) {
		a.seed = seed
	}
}

// WithRosterSize sets how many students and teachers to synthesize.
func WithRosterSize(students, teachers int) Option {
	return func(a *Assembler) {
		if students > 0 && teachers > 0 {
			a.studentCount = students
			a.teacherCount = teachers
		}
	}
}

// WithExpertiseBounds bounds the departments sampled per teacher.
func WithExpertiseBounds(min, max int) Option {
	return func(a *Assembler) {
		if min >= 1 && max >= min {
			a.expertiseMin = min
			a.expertiseMax = max
		}
	}
}

// WithTeachingLoadMax caps each teacher's sampled course load.
func WithTeachingLoadMax(max int) Option {
	return func(a *Assembler) {
		if max >= 1 {
			a.teachingLoadMax = max
		}
	}
}

// WithCourses replaces the built-in course list.
func WithCourses(courses []catalog.Course) Option {
	return func(a *Assembler) {
		if len(courses) > 0 {
			a.courses = courses
		}
	}
}

// WithSchema replaces the default rating schema. The schema is validated
// when the run starts.
func WithSchema(schema rating.Schema) Option {
	return func(a *Assembler) {
		if len(schema) > 0 {
			a.schema = schema
		}
	}
}

// WithAllocatorOptions forwards options to the enrollment allocator.
func WithAllocatorOptions(opts ...enrollment.Option) Option {
	return func(a *Assembler) {
		a.allocatorOpts = opts
	}
}

// WithBuilderOptions forwards options to the session builder.
func WithBuilderOptions(opts ...session.Option) Option {
	return func(a *Assembler) {
		a.builderOpts = opts
	}
}

// WithBoost controls the low-group rescaling transform.
func WithBoost(apply bool, factor float64) Option {
	return func(a *Assembler) {
		a.applyBoost = apply
		if factor > 0 {
			a.boostFactor = factor
		}
	}
}

// WithWorkerCount sets the number of rating workers.
func WithWorkerCount(count int) Option {
	return func(a *Assembler) {
		if count > 0 {
			a.workerCount = count
		}
	}
}

// WithQueueSize sets the floor for the rating queue capacity.
func WithQueueSize(size int) Option {
	return func(a *Assembler) {
		if size > 0 {
			a.queueSize = size
		}
	}
}

// WithLogger sets a custom logger for the pipeline.
func WithLogger(logger logger.Logger) Option {
	return func(a *Assembler) {
		if logger != nil {
			a.logger = logger
		}
	}
}
