package rating

import (
	"fmt"
	"math/rand"

	"github.com/okian/campusgen/internal/domain/session"
)

// Low-group synthesis constants.
const (
	lowScoreMin     = 3.0
	lowScoreMax     = 6.0
	lowCriterionMin = 1.0
	lowCriterionMax = 6.0

	lowGroupIDFormat = "LS%06d"
)

// DeriveLowGroup builds a parallel low-scoring record set from an existing
// one. Each source record keeps its teacher, course, and schedule; the
// student is re-drawn from the roster and the session id moves to the LS
// sequence. Category scores come from [3.0, 6.0], criterion scores stay
// within half a point of their category clamped to [1.0, 6.0].
func (s Schema) DeriveLowGroup(rng *rand.Rand, src []RatedSession, studentIDs []string) ([]RatedSession, error) {
	if len(studentIDs) == 0 {
		return nil, ErrEmptyRoster
	}

	out := make([]RatedSession, len(src))
	for i, rec := range src {
		categories := make(map[string]CategoryRating, len(s))
		for _, cat := range s {
			score := round1(uniform(rng, lowScoreMin, lowScoreMax))
			criteria := make(map[string]float64, len(cat.Criteria))
			for _, id := range cat.Criteria {
				criteria[id] = clamp(round1(uniform(rng, score-criteriaSpread, score+criteriaSpread)),
					lowCriterionMin, lowCriterionMax)
			}
			categories[cat.Name] = CategoryRating{Score: score, Criteria: criteria}
		}

		out[i] = RatedSession{
			Session: session.Session{
				ID:         fmt.Sprintf(lowGroupIDFormat, i+1),
				StudentID:  studentIDs[rng.Intn(len(studentIDs))],
				TeacherID:  rec.TeacherID,
				CourseCode: rec.CourseCode,
				Schedule:   rec.Schedule,
			},
			Ratings: Rating{
				Categories: categories,
				TotalScore: s.Total(categories),
			},
		}
	}
	return out, nil
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
