// Package rating synthesizes hierarchical weighted ratings for tutoring
// sessions: per-category scores with sub-criterion scores, aggregated into a
// bounded total by a fixed weighted sum.
package rating

import (
	"fmt"
	"math"
)

// weightTolerance is the allowed deviation of the schema weight sum from 1.0.
const weightTolerance = 1e-9

// Category is one rating dimension: a weight and an ordered list of
// criterion ids.
type Category struct {
	Name     string
	Weight   float64
	Criteria []string
}

// Schema is the fixed rating structure, in aggregation order. It is loaded
// once and never mutated.
type Schema []Category

// DefaultSchema returns the standard five-dimension teaching rubric.
// Criterion ids are C1..Cn within each category.
func DefaultSchema() Schema {
	return Schema{
		{Name: "Course Structure", Weight: 0.10, Criteria: criteriaIDs(4)},
		{Name: "Content Completeness", Weight: 0.40, Criteria: criteriaIDs(7)},
		{Name: "Teaching Logic", Weight: 0.20, Criteria: criteriaIDs(3)},
		{Name: "Interaction and Feedback", Weight: 0.15, Criteria: criteriaIDs(4)},
		{Name: "Language Delivery", Weight: 0.15, Criteria: criteriaIDs(4)},
	}
}

func criteriaIDs(n int) []string {
	ids := make([]string, n)
	for i := range ids {
		ids[i] = fmt.Sprintf("C%d", i+1)
	}
	return ids
}

// Validate checks the schema: distinct non-empty category names, at least
// one criterion per category, and weights summing to 1.0 within tolerance.
// A failure here is a configuration error and must abort the run.
func (s Schema) Validate() error {
	if len(s) == 0 {
		return fmt.Errorf("%w: no categories", ErrInvalidSchema)
	}

	seen := make(map[string]bool, len(s))
	sum := 0.0
	for _, cat := range s {
		switch {
		case cat.Name == "":
			return fmt.Errorf("%w: empty category name", ErrInvalidSchema)
		case seen[cat.Name]:
			return fmt.Errorf("%w: duplicate category %q", ErrInvalidSchema, cat.Name)
		case len(cat.Criteria) == 0:
			return fmt.Errorf("%w: category %q has no criteria", ErrInvalidSchema, cat.Name)
		}
		seen[cat.Name] = true
		sum += cat.Weight
	}

	if math.Abs(sum-1.0) > weightTolerance {
		return fmt.Errorf("%w: weights sum to %v, want 1.0", ErrInvalidSchema, sum)
	}
	return nil
}

// Total aggregates category scores into the total: round(sum of
// score x weight, 1). Categories absent from the map score zero.
func (s Schema) Total(categories map[string]CategoryRating) float64 {
	total := 0.0
	for _, cat := range s {
		total += categories[cat.Name].Score * cat.Weight
	}
	return round1(total)
}

// round1 rounds to one decimal place, the precision of every published
// score.
func round1(x float64) float64 {
	return math.Round(x*10) / 10
}
