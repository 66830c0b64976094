package rating_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/okian/campusgen/internal/domain/rating"
	. "github.com/smartystreets/goconvey/convey"
)

func TestSynthesizeBaseline(t *testing.T) {
	Convey("Given a baseline synthesizer over the default schema", t, func() {
		schema := rating.DefaultSchema()
		s, err := rating.NewSynthesizer(schema)
		So(err, ShouldBeNil)

		rng := rand.New(rand.NewSource(21))

		Convey("When drawing many ratings", func() {
			for i := 0; i < 200; i++ {
				r := s.Synthesize(rng)

				So(len(r.Categories), ShouldEqual, len(schema))
				for _, cat := range schema {
					got := r.Categories[cat.Name]
					So(got.Score, ShouldBeBetweenOrEqual, 6.0, 9.5)

					So(len(got.Criteria), ShouldEqual, len(cat.Criteria))
					for _, id := range cat.Criteria {
						score, ok := got.Criteria[id]
						So(ok, ShouldBeTrue)
						So(score, ShouldBeBetweenOrEqual, got.Score-0.5, got.Score+0.5)
						So(score, ShouldBeBetweenOrEqual, 0.0, 10.0)
					}
				}

				So(r.TotalScore, ShouldEqual, schema.Total(r.Categories))
				So(r.TotalScore, ShouldBeBetweenOrEqual, 0.0, 10.0)
			}
		})

		Convey("Then every published score should sit on a tenth", func() {
			r := s.Synthesize(rng)
			for _, cat := range r.Categories {
				So(math.Round(cat.Score*10), ShouldEqual, cat.Score*10)
			}
			So(math.Round(r.TotalScore*10), ShouldEqual, r.TotalScore*10)
		})

		Convey("Then the same seed should reproduce the same rating", func() {
			a := s.Synthesize(rand.New(rand.NewSource(33)))
			b := s.Synthesize(rand.New(rand.NewSource(33)))
			So(a, ShouldResemble, b)
		})
	})
}

func TestSynthesizeSkewed(t *testing.T) {
	Convey("Given a skewed synthesizer over the default schema", t, func() {
		s, err := rating.NewSynthesizer(rating.DefaultSchema(), rating.WithMode(rating.Skewed))
		So(err, ShouldBeNil)

		rng := rand.New(rand.NewSource(21))

		Convey("When drawing many ratings", func() {
			high, low := 0, 0
			for i := 0; i < 200; i++ {
				r := s.Synthesize(rng)
				for _, cat := range r.Categories {
					So(cat.Score, ShouldBeBetweenOrEqual, 2.5, 5.0)
					for _, score := range cat.Criteria {
						So(score, ShouldBeBetweenOrEqual, 1.0, 6.0)
					}
					if cat.Score >= 3.75 {
						high++
					} else {
						low++
					}
				}
			}

			Convey("Then the upper band should dominate", func() {
				So(high, ShouldBeGreaterThan, low)
			})
		})
	})
}

func TestNewSynthesizerRejectsBadSchema(t *testing.T) {
	Convey("Given a schema whose weights do not sum to 1.0", t, func() {
		bad := rating.Schema{
			{Name: "A", Weight: 0.9, Criteria: []string{"C1"}},
		}

		Convey("Then construction should fail before any generation", func() {
			s, err := rating.NewSynthesizer(bad)
			So(s, ShouldBeNil)
			So(err, ShouldWrap, rating.ErrInvalidSchema)
		})
	})
}
