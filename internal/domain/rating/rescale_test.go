package rating_test

import (
	"testing"

	"github.com/okian/campusgen/internal/domain/rating"
	"github.com/okian/campusgen/internal/domain/session"
	. "github.com/smartystreets/goconvey/convey"
)

func twoCategorySchema() rating.Schema {
	return rating.Schema{
		{Name: "A", Weight: 0.4, Criteria: []string{"C1", "C2"}},
		{Name: "B", Weight: 0.6, Criteria: []string{"C1"}},
	}
}

func TestRescale(t *testing.T) {
	Convey("Given a rating with a category at 7.0 under weight 0.4", t, func() {
		schema := twoCategorySchema()
		r := rating.Rating{
			Categories: map[string]rating.CategoryRating{
				"A": {Score: 7.0, Criteria: map[string]float64{"C1": 6.8, "C2": 7.4}},
				"B": {Score: 4.0, Criteria: map[string]float64{"C1": 4.2}},
			},
			TotalScore: schema.Total(map[string]rating.CategoryRating{
				"A": {Score: 7.0},
				"B": {Score: 4.0},
			}),
		}

		Convey("When boosting by 1.5", func() {
			boosted := schema.Rescale(r, 1.5)

			Convey("Then 7.0 should clip to 10.0, not 10.5", func() {
				So(boosted.Categories["A"].Score, ShouldEqual, 10.0)
			})

			Convey("Then unclipped scores should scale and round", func() {
				So(boosted.Categories["B"].Score, ShouldEqual, 6.0)
				So(boosted.Categories["B"].Criteria["C1"], ShouldEqual, 6.3)
			})

			Convey("Then criteria should clip independently of their category", func() {
				So(boosted.Categories["A"].Criteria["C1"], ShouldEqual, 10.0)
				So(boosted.Categories["A"].Criteria["C2"], ShouldEqual, 10.0)
			})

			Convey("Then the total should be recomputed, not rescaled", func() {
				So(boosted.TotalScore, ShouldEqual, schema.Total(boosted.Categories))
				So(boosted.TotalScore, ShouldEqual, 7.6)
				So(boosted.TotalScore, ShouldNotEqual, r.TotalScore*1.5)
			})

			Convey("Then the source rating should be untouched", func() {
				So(r.Categories["A"].Score, ShouldEqual, 7.0)
				So(r.Categories["A"].Criteria["C1"], ShouldEqual, 6.8)
			})
		})

		Convey("When rescaling by 1.0", func() {
			same := schema.Rescale(r, 1.0)

			Convey("Then the rating should be a fixed point", func() {
				So(same, ShouldResemble, r)
			})
		})
	})
}

func TestRescaleAll(t *testing.T) {
	Convey("Given rated sessions", t, func() {
		schema := twoCategorySchema()
		records := []rating.RatedSession{
			{
				Session: session.Session{ID: "LS000001", StudentID: "S001", TeacherID: "T001", CourseCode: "CS101"},
				Ratings: rating.Rating{
					Categories: map[string]rating.CategoryRating{
						"A": {Score: 4.0, Criteria: map[string]float64{"C1": 4.0, "C2": 4.0}},
						"B": {Score: 5.0, Criteria: map[string]float64{"C1": 5.0}},
					},
					TotalScore: 4.6,
				},
			},
		}

		Convey("When boosting the batch by 1.5", func() {
			boosted := schema.RescaleAll(records, 1.5)

			Convey("Then identity and counts should pass through", func() {
				So(len(boosted), ShouldEqual, 1)
				So(boosted[0].Session, ShouldResemble, records[0].Session)
			})

			Convey("Then each rating should be rescaled with a fresh total", func() {
				So(boosted[0].Ratings.Categories["A"].Score, ShouldEqual, 6.0)
				So(boosted[0].Ratings.Categories["B"].Score, ShouldEqual, 7.5)
				So(boosted[0].Ratings.TotalScore, ShouldEqual, 6.9)
			})
		})
	})
}
