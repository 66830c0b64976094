package rating

// maxScore is the publication ceiling for any score.
const maxScore = 10.0

// Rescale multiplies every category and criterion score by factor, clips to
// 10.0, rounds to one decimal, and recomputes the total from the rescaled
// category scores. The old total is never reused. Applying the transform
// twice with factor > 1 compounds; only factor 1.0 is a fixed point.
func (s Schema) Rescale(r Rating, factor float64) Rating {
	categories := make(map[string]CategoryRating, len(r.Categories))
	for name, cat := range r.Categories {
		criteria := make(map[string]float64, len(cat.Criteria))
		for id, score := range cat.Criteria {
			criteria[id] = clipRound(score * factor)
		}
		categories[name] = CategoryRating{
			Score:    clipRound(cat.Score * factor),
			Criteria: criteria,
		}
	}

	return Rating{
		Categories: categories,
		TotalScore: s.Total(categories),
	}
}

// RescaleAll applies Rescale to every record, returning a new slice.
// Session identity and schedules pass through untouched.
func (s Schema) RescaleAll(records []RatedSession, factor float64) []RatedSession {
	out := make([]RatedSession, len(records))
	for i, rec := range records {
		out[i] = RatedSession{
			Session: rec.Session,
			Ratings: s.Rescale(rec.Ratings, factor),
		}
	}
	return out
}

func clipRound(x float64) float64 {
	if x > maxScore {
		x = maxScore
	}
	return round1(x)
}
