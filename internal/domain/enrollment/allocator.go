package enrollment

import (
	"context"
	"math/rand"

	"github.com/okian/campusgen/internal/domain/catalog"
	"github.com/okian/campusgen/pkg/logger"
	"github.com/okian/campusgen/pkg/metrics"
)

// Default allocator configuration constants.
const (
	defaultEnrollMin           = 1
	defaultEnrollMax           = 5
	defaultMinCourseEnrollment = 3
	defaultRepairCap           = 100
)

// Outcome is the termination state of a repair run. The outcome is explicit
// rather than inferred from the remaining state, and none of the values is
// fatal: the allocator always hands back its best-effort assignment.
type Outcome int

const (
	// Converged means every course reached the minimum enrollment.
	Converged Outcome = iota
	// ExhaustedBudget means the iteration cap ran out first.
	ExhaustedBudget
	// NoEligibleCandidate means no student had a course to spare.
	NoEligibleCandidate
)

// String returns a short label for diagnostics.
func (o Outcome) String() string {
	switch o {
	case Converged:
		return "converged"
	case ExhaustedBudget:
		return "exhausted_budget"
	case NoEligibleCandidate:
		return "no_eligible_candidate"
	default:
		return "unknown"
	}
}

// Result bundles the final state with repair diagnostics.
type Result struct {
	State      *State
	Outcome    Outcome
	Iterations int
	Swaps      int

	// UnderEnrolled lists courses still below the floor, in catalog order.
	// Empty iff Outcome is Converged.
	UnderEnrolled []string
}

// Allocator implements the two-phase assignment: uniform initial draw, then
// a bounded randomized repair loop.
type Allocator struct {
	enrollMin           int
	enrollMax           int
	minCourseEnrollment int
	repairCap           int

	logger logger.Logger
}

// New constructs an Allocator with default configuration.
func New(opts ...Option) *Allocator {
	a := &Allocator{
		enrollMin:           defaultEnrollMin,
		enrollMax:           defaultEnrollMax,
		minCourseEnrollment: defaultMinCourseEnrollment,
		repairCap:           defaultRepairCap,
	}

	// Apply all options
	for _, opt := range opts {
		opt(a)
	}

	if a.logger == nil {
		a.logger = logger.Get().Named("enrollment")
	}

	return a
}

// Bounds returns the per-student course-count range.
func (a *Allocator) Bounds() (min, max int) {
	return a.enrollMin, a.enrollMax
}

// MinCourseEnrollment returns the per-course enrollment floor.
func (a *Allocator) MinCourseEnrollment() int {
	return a.minCourseEnrollment
}

// Allocate draws an initial assignment for every student and repairs it.
// All randomness comes from rng; a fixed seed reproduces the allocation.
func (a *Allocator) Allocate(ctx context.Context, rng *rand.Rand, students []catalog.Student, courses []string) Result {
	studentIDs := make([]string, len(students))
	for i, s := range students {
		studentIDs[i] = s.ID
	}

	byStudent := make(map[string][]string, len(students))
	for _, id := range studentIDs {
		k := a.enrollMin + rng.Intn(a.enrollMax-a.enrollMin+1)
		if k > len(courses) {
			k = len(courses)
		}
		picks := make([]string, 0, k)
		for _, idx := range rng.Perm(len(courses))[:k] {
			picks = append(picks, courses[idx])
			metrics.RecordEnrollmentAssigned()
		}
		byStudent[id] = picks
	}

	state := NewState(byStudent, studentIDs, courses)
	a.logger.Info(ctx, "initial enrollment drawn",
		logger.Int("students", len(studentIDs)),
		logger.Int("courses", len(courses)))

	return a.Repair(ctx, rng, state)
}

// Repair runs the bounded local-search loop on an existing state: while any
// course sits below the floor, move one random course slot from a student
// with more than one enrollment to a random under-enrolled course. A draw
// that would duplicate a course in the student's set is a no-op that still
// consumes an iteration.
func (a *Allocator) Repair(ctx context.Context, rng *rand.Rand, state *State) Result {
	res := Result{State: state}

	for {
		under := state.underEnrolled(a.minCourseEnrollment)
		if len(under) == 0 {
			res.Outcome = Converged
			break
		}

		if res.Iterations >= a.repairCap {
			res.Outcome = ExhaustedBudget
			res.UnderEnrolled = under
			a.logger.Warn(ctx, "repair budget exhausted with courses under minimum",
				logger.Int("iterations", res.Iterations),
				logger.Int("underEnrolled", len(under)))
			break
		}

		eligible := state.swapCandidates()
		if len(eligible) == 0 {
			res.Outcome = NoEligibleCandidate
			res.UnderEnrolled = under
			a.logger.Warn(ctx, "no student can give up a course; enrollment floor unsatisfiable",
				logger.Int("underEnrolled", len(under)))
			break
		}

		res.Iterations++
		metrics.RecordRepairIteration()

		studentID := eligible[rng.Intn(len(eligible))]
		enrolled := state.Enrollment(studentID)
		dropped := enrolled[rng.Intn(len(enrolled))]
		added := under[rng.Intn(len(under))]

		if state.enrolled(studentID, added) {
			continue
		}

		state.swap(studentID, dropped, added)
		res.Swaps++
		metrics.RecordRepairSwap()
	}

	metrics.UpdateUnderEnrolledCourses(len(res.UnderEnrolled))
	a.logger.Info(ctx, "repair loop finished",
		logger.String("outcome", res.Outcome.String()),
		logger.Int("iterations", res.Iterations),
		logger.Int("swaps", res.Swaps),
		logger.Int("underEnrolled", len(res.UnderEnrolled)))

	return res
}
