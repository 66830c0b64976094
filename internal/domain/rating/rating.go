package rating

import (
	"github.com/okian/campusgen/internal/domain/session"
)

// CategoryRating is one category's score with its criterion breakdown.
type CategoryRating struct {
	Score    float64            `json:"score"`
	Criteria map[string]float64 `json:"criteria"`
}

// Rating is the full rating envelope for one session. TotalScore is always
// recomputed from the category scores, never carried forward.
type Rating struct {
	Categories map[string]CategoryRating `json:"ratings"`
	TotalScore float64                   `json:"total_score"`
}

// RatedSession is a session together with its rating, the unit of the
// published dataset.
type RatedSession struct {
	session.Session
	Ratings Rating `json:"ratings"`
}
