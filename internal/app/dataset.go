package assembler

import (
	"context"
	"sync"

	"github.com/okian/campusgen/internal/domain/catalog"
	"github.com/okian/campusgen/internal/domain/rating"
)

// Dataset is the complete output of one run.
type Dataset struct {
	Courses  []catalog.Course  `json:"courses"`
	Teachers []catalog.Teacher `json:"teachers"`
	Students []catalog.Student `json:"students"`

	// Enrollments maps student id to enrolled course codes;
	// EnrollmentTally maps course code to its final enrollment count.
	Enrollments     map[string][]string `json:"enrollments"`
	EnrollmentTally map[string]int      `json:"enrollment_tally"`

	// Ratings is the baseline record set; LowRatings the derived low group
	// after any boost.
	Ratings    []rating.RatedSession `json:"ratings"`
	LowRatings []rating.RatedSession `json:"low_ratings"`

	Ranking []RankingRow `json:"ranking"`
}

// RankingRow is one row of the published teacher ranking.
type RankingRow struct {
	Rank      int     `json:"rank"`
	TeacherID string  `json:"teacher_id"`
	MeanScore float64 `json:"mean_score"`
	Sessions  int     `json:"sessions"`
}

// sliceCollector gathers rated sessions into their batch slots. Workers
// write disjoint indices; the mutex makes the slice safe to hand over after
// Wait without further synchronization.
type sliceCollector struct {
	mu      sync.Mutex
	records []rating.RatedSession
}

func newSliceCollector(n int) *sliceCollector {
	return &sliceCollector{records: make([]rating.RatedSession, n)}
}

func (c *sliceCollector) Collect(_ context.Context, index int, rec rating.RatedSession) error {
	if index < 0 || index >= len(c.records) {
		return ErrCollectorIndex
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.records[index] = rec
	return nil
}
