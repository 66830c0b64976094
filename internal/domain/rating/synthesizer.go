package rating

import (
	"math/rand"

	"github.com/okian/campusgen/pkg/logger"
	"github.com/okian/campusgen/pkg/metrics"
)

// Score-band constants for the synthesis modes.
const (
	criteriaSpread = 0.5

	baselineScoreMin = 6.0
	baselineScoreMax = 9.5

	skewedHighProbability = 0.8
	skewedHighMin         = 3.75
	skewedHighMax         = 5.0
	skewedLowMin          = 2.5
	skewedLowMax          = 3.7

	skewedCriterionMin = 1.0
	skewedCriterionMax = 6.0
)

// Mode selects the score band a Synthesizer draws from.
type Mode int

const (
	// Baseline draws category scores uniformly from [6.0, 9.5].
	Baseline Mode = iota
	// Skewed draws a bimodal low band: 80% from [3.75, 5.0], 20% from
	// [2.5, 3.7].
	Skewed
)

// Synthesizer draws ratings against a validated schema.
type Synthesizer struct {
	schema Schema
	mode   Mode

	logger logger.Logger
}

// NewSynthesizer validates the schema and constructs a Synthesizer.
// A schema that fails validation is a configuration error.
func NewSynthesizer(schema Schema, opts ...Option) (*Synthesizer, error) {
	if err := schema.Validate(); err != nil {
		return nil, err
	}

	s := &Synthesizer{schema: schema}

	// Apply all options
	for _, opt := range opts {
		opt(s)
	}

	if s.logger == nil {
		s.logger = logger.Get().Named("rating")
	}

	return s, nil
}

// Schema returns the schema the synthesizer was built with.
func (s *Synthesizer) Schema() Schema {
	return s.schema
}

// Synthesize draws one rating. For each category the score comes from the
// mode's band; each criterion scores within half a point of its category,
// clipped into [1.0, 6.0] in skewed mode. The total is the weighted sum
// rounded to one decimal. All randomness comes from rng, so a fixed seed
// reproduces the rating.
func (s *Synthesizer) Synthesize(rng *rand.Rand) Rating {
	categories := make(map[string]CategoryRating, len(s.schema))
	for _, cat := range s.schema {
		score := s.drawCategoryScore(rng)
		criteria := make(map[string]float64, len(cat.Criteria))
		for _, id := range cat.Criteria {
			c := round1(uniform(rng, score-criteriaSpread, score+criteriaSpread))
			if s.mode == Skewed {
				c = clamp(c, skewedCriterionMin, skewedCriterionMax)
			}
			criteria[id] = c
		}
		categories[cat.Name] = CategoryRating{Score: score, Criteria: criteria}
	}

	r := Rating{
		Categories: categories,
		TotalScore: s.schema.Total(categories),
	}
	metrics.RecordRatingGenerated(r.TotalScore)
	return r
}

func (s *Synthesizer) drawCategoryScore(rng *rand.Rand) float64 {
	if s.mode == Skewed {
		if rng.Float64() < skewedHighProbability {
			return round1(uniform(rng, skewedHighMin, skewedHighMax))
		}
		return round1(uniform(rng, skewedLowMin, skewedLowMax))
	}
	return round1(uniform(rng, baselineScoreMin, baselineScoreMax))
}

func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}
