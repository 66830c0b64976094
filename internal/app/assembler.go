// Package assembler orchestrates a full dataset run: catalog validation,
// roster synthesis, enrollment allocation, session synthesis, parallel
// rating, low-group derivation, and teacher ranking.
package assembler

import (
	"context"
	"fmt"
	"math/rand"
	"runtime"
	"time"

	"github.com/google/uuid"

	taskqueue "github.com/okian/campusgen/internal/adapters/mq/queue"
	workerpool "github.com/okian/campusgen/internal/adapters/mq/worker"
	"github.com/okian/campusgen/internal/adapters/repository"
	"github.com/okian/campusgen/internal/domain/catalog"
	"github.com/okian/campusgen/internal/domain/enrollment"
	"github.com/okian/campusgen/internal/domain/expertise"
	"github.com/okian/campusgen/internal/domain/rating"
	"github.com/okian/campusgen/internal/domain/session"
	"github.com/okian/campusgen/pkg/logger"
)

// Default assembler configuration constants.
const (
	defaultSeed            = 42
	defaultStudentCount    = 100
	defaultTeacherCount    = 40
	defaultExpertiseMin    = 1
	defaultExpertiseMax    = 3
	defaultTeachingLoadMax = 5
	defaultBoostFactor     = 1.5
	defaultQueueSize       = 4096
)

// Summary reports what a run produced and how it terminated.
type Summary struct {
	RunID string

	Outcome       string
	Iterations    int
	Swaps         int
	UnderEnrolled []string

	Sessions     int
	SkippedPairs int
	SkippedDraws int

	Ratings        int
	LowRatings     int
	Boosted        bool
	RankedTeachers int

	Duration time.Duration
}

// Assembler runs the generation pipeline end to end.
type Assembler struct {
	seed            int64
	studentCount    int
	teacherCount    int
	expertiseMin    int
	expertiseMax    int
	teachingLoadMax int

	courses []catalog.Course
	schema  rating.Schema

	allocatorOpts []enrollment.Option
	builderOpts   []session.Option

	boostFactor float64
	applyBoost  bool

	workerCount int
	queueSize   int

	logger logger.Logger
}

// New constructs an Assembler with default configuration.
func New(opts ...Option) *Assembler {
	a := &Assembler{
		seed:            defaultSeed,
		studentCount:    defaultStudentCount,
		teacherCount:    defaultTeacherCount,
		expertiseMin:    defaultExpertiseMin,
		expertiseMax:    defaultExpertiseMax,
		teachingLoadMax: defaultTeachingLoadMax,
		courses:         catalog.DefaultCourses(),
		schema:          rating.DefaultSchema(),
		boostFactor:     defaultBoostFactor,
		applyBoost:      true,
		workerCount:     runtime.NumCPU() * 2,
		queueSize:       defaultQueueSize,
	}

	// Apply all options
	for _, opt := range opts {
		opt(a)
	}

	if a.logger == nil {
		a.logger = logger.Get().Named("assembler")
	}

	return a
}

// Run executes the pipeline. Configuration errors surface before any
// output exists; a partially generated dataset is never returned.
func (a *Assembler) Run(ctx context.Context) (*Dataset, *Summary, error) {
	start := time.Now()
	summary := &Summary{RunID: uuid.NewString()}

	// Schema problems are configuration errors; fail before generating.
	synth, err := rating.NewSynthesizer(a.schema, rating.WithLogger(a.logger))
	if err != nil {
		return nil, nil, err
	}

	rng := rand.New(rand.NewSource(a.seed))

	students := catalog.SynthesizeStudents(a.studentCount)
	teachers := catalog.SynthesizeTeachers(rng, a.teacherCount,
		catalog.DepartmentsOf(a.courses), a.expertiseMin, a.expertiseMax)

	cat, err := catalog.New(a.courses, teachers, students)
	if err != nil {
		return nil, nil, err
	}
	idx := expertise.NewIndex(cat)

	a.logger.Info(ctx, "run starting",
		logger.String("runID", summary.RunID),
		logger.Int("courses", len(cat.Courses)),
		logger.Int("teachers", len(cat.Teachers)),
		logger.Int("students", len(cat.Students)))

	// Sample each teacher's active load for the published roster.
	teachersOut := make([]catalog.Teacher, len(teachers))
	for i, t := range teachers {
		t.CoursesTaught = idx.SampleTeachingLoad(rng, t.ID, a.teachingLoadMax)
		teachersOut[i] = t
	}

	studentIDs := make([]string, len(students))
	for i, s := range students {
		studentIDs[i] = s.ID
	}

	alloc := enrollment.New(append([]enrollment.Option{enrollment.WithLogger(a.logger)}, a.allocatorOpts...)...)
	allocated := alloc.Allocate(ctx, rng, students, cat.CourseCodes())
	summary.Outcome = allocated.Outcome.String()
	summary.Iterations = allocated.Iterations
	summary.Swaps = allocated.Swaps
	summary.UnderEnrolled = allocated.UnderEnrolled

	builder := session.New(append([]session.Option{session.WithLogger(a.logger)}, a.builderOpts...)...)
	built := builder.Build(ctx, rng, studentIDs, allocated.State.EnrollmentMap(), idx)
	summary.Sessions = len(built.Sessions)
	summary.SkippedPairs = built.SkippedPairs
	summary.SkippedDraws = built.SkippedDraws

	store := repository.NewShardedStore()
	records, err := a.rate(ctx, synth, store, built.Sessions)
	if err != nil {
		return nil, nil, err
	}
	summary.Ratings = len(records)

	low, err := a.schema.DeriveLowGroup(rng, records, studentIDs)
	if err != nil {
		return nil, nil, err
	}
	if a.applyBoost {
		low = a.schema.RescaleAll(low, a.boostFactor)
		summary.Boosted = true
	}
	summary.LowRatings = len(low)

	// The low group joins the ranking after its final transform.
	for _, rec := range low {
		if err := store.Add(ctx, rec.TeacherID, rec.Ratings.TotalScore); err != nil {
			return nil, nil, err
		}
	}

	ranking, err := rankingRows(ctx, store)
	if err != nil {
		return nil, nil, err
	}
	summary.RankedTeachers = len(ranking)

	ds := &Dataset{
		Courses:         cat.Courses,
		Teachers:        teachersOut,
		Students:        cat.Students,
		Enrollments:     allocated.State.EnrollmentMap(),
		EnrollmentTally: allocated.State.TallyMap(),
		Ratings:         records,
		LowRatings:      low,
		Ranking:         ranking,
	}

	if err := a.audit(cat, alloc, allocated, ds); err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrAudit, err)
	}

	summary.Duration = time.Since(start)
	a.logger.Info(ctx, "run finished",
		logger.String("runID", summary.RunID),
		logger.String("outcome", summary.Outcome),
		logger.Int("sessions", summary.Sessions),
		logger.Int("ratings", summary.Ratings),
		logger.Int("lowRatings", summary.LowRatings),
		logger.Int("rankedTeachers", summary.RankedTeachers),
		logger.Duration("duration", summary.Duration))

	return ds, summary, nil
}

// rate fans the session batch out to the worker pool and collects the rated
// records in session order. Each rating derives from the run seed and the
// session id, so the worker count never changes the output.
func (a *Assembler) rate(ctx context.Context, synth *rating.Synthesizer, store repository.Store, sessions []session.Session) ([]rating.RatedSession, error) {
	if len(sessions) == 0 {
		return nil, nil
	}

	capacity := a.queueSize
	if capacity < len(sessions) {
		// The whole batch is enqueued before the pool drains it.
		capacity = len(sessions)
	}
	q := taskqueue.NewInMemoryQueue(
		taskqueue.WithCapacity(capacity),
		taskqueue.WithBufferSize(capacity),
	)

	collector := newSliceCollector(len(sessions))
	pool := workerpool.NewPool(a.workerCount, q,
		rating.NewSeededRater(synth, a.seed), collector, store)
	pool.Start(ctx)

	for i, s := range sessions {
		if !q.Enqueue(ctx, taskqueue.Task{Index: i, Session: s}) {
			return nil, fmt.Errorf("%w: session %s", ErrEnqueue, s.ID)
		}
	}
	if err := q.Close(); err != nil {
		return nil, err
	}
	if err := pool.Wait(ctx); err != nil {
		return nil, err
	}

	return collector.records, nil
}

func rankingRows(ctx context.Context, store repository.Store) ([]RankingRow, error) {
	count := store.Count(ctx)
	if count == 0 {
		return nil, nil
	}

	entries, err := store.TopN(ctx, count)
	if err != nil {
		return nil, err
	}

	rows := make([]RankingRow, len(entries))
	for i, e := range entries {
		rows[i] = RankingRow{
			Rank:      e.Rank,
			TeacherID: e.TeacherID,
			MeanScore: e.MeanScore,
			Sessions:  e.Sessions,
		}
	}
	return rows, nil
}
