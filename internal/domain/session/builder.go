package session

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/okian/campusgen/internal/domain/expertise"
	"github.com/okian/campusgen/pkg/logger"
	"github.com/okian/campusgen/pkg/metrics"
)

// Default builder configuration constants.
const (
	defaultPerPairMin = 1
	defaultPerPairMax = 3
	defaultBulkCount  = 500

	sessionIDFormat = "EZ%06d"
)

// Result bundles the generated sessions with skip diagnostics.
type Result struct {
	Sessions []Session

	// SkippedPairs counts student-course pairs with no eligible teacher.
	SkippedPairs int
	// SkippedDraws counts bulk draws whose teacher had no eligible course.
	SkippedDraws int
}

// Builder turns an enrollment assignment into tutoring sessions.
type Builder struct {
	perPairMin int
	perPairMax int
	bulkCount  int

	logger logger.Logger
}

// New constructs a Builder with default configuration.
func New(opts ...Option) *Builder {
	b := &Builder{
		perPairMin: defaultPerPairMin,
		perPairMax: defaultPerPairMax,
		bulkCount:  defaultBulkCount,
	}

	// Apply all options
	for _, opt := range opts {
		opt(b)
	}

	if b.logger == nil {
		b.logger = logger.Get().Named("session")
	}

	return b
}

// Build generates sessions in two phases. Phase one walks the roster in
// order and, for each of a student's enrolled courses, picks a uniform
// eligible teacher and emits one to three sessions; a pair no teacher can
// cover is skipped and counted, never an error. Phase two attempts bulkCount
// extra draws over the students and teachers observed in phase one, with
// the course drawn from the teacher's own eligible set; a draw whose
// teacher covers no course is discarded. Session IDs are sequential across
// both phases.
func (b *Builder) Build(ctx context.Context, rng *rand.Rand, students []string, enrollments map[string][]string, idx *expertise.Index) Result {
	var res Result

	// Bulk pools hold the participants observed in phase one, in
	// first-appearance order so a fixed seed reproduces the batch.
	seenStudent := make(map[string]bool)
	seenTeacher := make(map[string]bool)
	var studentPool, teacherPool []string

	for _, studentID := range students {
		for _, courseCode := range enrollments[studentID] {
			eligible := idx.EligibleTeachers(courseCode)
			if len(eligible) == 0 {
				res.SkippedPairs++
				metrics.RecordSessionPairSkipped()
				b.logger.Debug(ctx, "no eligible teacher for course; pair skipped",
					logger.String("studentID", studentID),
					logger.String("courseCode", courseCode))
				continue
			}

			teacherID := eligible[rng.Intn(len(eligible))]
			if !seenStudent[studentID] {
				seenStudent[studentID] = true
				studentPool = append(studentPool, studentID)
			}
			if !seenTeacher[teacherID] {
				seenTeacher[teacherID] = true
				teacherPool = append(teacherPool, teacherID)
			}

			n := b.perPairMin + rng.Intn(b.perPairMax-b.perPairMin+1)
			for i := 0; i < n; i++ {
				res.Sessions = append(res.Sessions, Session{
					ID:         fmt.Sprintf(sessionIDFormat, len(res.Sessions)+1),
					StudentID:  studentID,
					TeacherID:  teacherID,
					CourseCode: courseCode,
					Schedule:   SynthesizeSchedule(rng),
				})
				metrics.RecordSessionGenerated()
			}
		}
	}

	b.bulk(ctx, rng, studentPool, teacherPool, idx, &res)

	b.logger.Info(ctx, "session synthesis finished",
		logger.Int("sessions", len(res.Sessions)),
		logger.Int("skippedPairs", res.SkippedPairs),
		logger.Int("skippedDraws", res.SkippedDraws))

	return res
}

// bulk draws extra sessions from the observed participant pools.
func (b *Builder) bulk(ctx context.Context, rng *rand.Rand, students, teachers []string, idx *expertise.Index, res *Result) {
	if b.bulkCount == 0 || len(students) == 0 || len(teachers) == 0 {
		return
	}

	for i := 0; i < b.bulkCount; i++ {
		studentID := students[rng.Intn(len(students))]
		teacherID := teachers[rng.Intn(len(teachers))]

		possible := idx.EligibleCourses(teacherID)
		if len(possible) == 0 {
			res.SkippedDraws++
			metrics.RecordBulkDrawSkipped()
			continue
		}

		res.Sessions = append(res.Sessions, Session{
			ID:         fmt.Sprintf(sessionIDFormat, len(res.Sessions)+1),
			StudentID:  studentID,
			TeacherID:  teacherID,
			CourseCode: possible[rng.Intn(len(possible))],
			Schedule:   SynthesizeSchedule(rng),
		})
		metrics.RecordSessionGenerated()
	}
}
