package assembler_test

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	assembler "github.com/okian/campusgen/internal/app"
	"github.com/okian/campusgen/internal/domain/rating"
	"github.com/okian/campusgen/internal/domain/session"
	"github.com/okian/campusgen/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	if err := logger.Init(); err != nil {
		panic(err)
	}
}

func testAssembler(extra ...assembler.Option) *assembler.Assembler {
	opts := []assembler.Option{
		assembler.WithSeed(42),
		assembler.WithRosterSize(30, 10),
		assembler.WithWorkerCount(4),
		assembler.WithBuilderOptions(
			session.WithSessionsPerPair(1, 3),
			session.WithBulkCount(100),
		),
	}
	return assembler.New(append(opts, extra...)...)
}

func TestRun(t *testing.T) {
	Convey("Given an assembler over the built-in catalog", t, func() {
		a := testAssembler()
		ds, summary, err := a.Run(context.Background())
		So(err, ShouldBeNil)

		Convey("Then the dataset should carry the full catalog and rosters", func() {
			So(len(ds.Courses), ShouldEqual, 65)
			So(len(ds.Teachers), ShouldEqual, 10)
			So(len(ds.Students), ShouldEqual, 30)
			So(len(ds.Enrollments), ShouldEqual, 30)
		})

		Convey("Then the summary should agree with the dataset", func() {
			So(summary.RunID, ShouldNotBeEmpty)
			So(summary.Sessions, ShouldEqual, len(ds.Ratings))
			So(summary.Ratings, ShouldEqual, len(ds.Ratings))
			So(summary.LowRatings, ShouldEqual, len(ds.LowRatings))
			So(summary.RankedTeachers, ShouldEqual, len(ds.Ranking))
			So(summary.Boosted, ShouldBeTrue)
		})

		Convey("Then the low group should mirror the baseline one to one", func() {
			So(len(ds.LowRatings), ShouldEqual, len(ds.Ratings))
			for i, low := range ds.LowRatings {
				So(low.ID, ShouldEqual, fmt.Sprintf("LS%06d", i+1))
				So(low.TeacherID, ShouldEqual, ds.Ratings[i].TeacherID)
				So(low.CourseCode, ShouldEqual, ds.Ratings[i].CourseCode)
			}
		})

		Convey("Then the ranking should be ordered by mean score", func() {
			So(len(ds.Ranking), ShouldBeGreaterThan, 0)
			for i := 1; i < len(ds.Ranking); i++ {
				So(ds.Ranking[i].MeanScore, ShouldBeLessThanOrEqualTo, ds.Ranking[i-1].MeanScore)
				So(ds.Ranking[i].Rank, ShouldEqual, i+1)
			}
		})

		Convey("Then every ranked teacher should be on the roster", func() {
			known := make(map[string]bool, len(ds.Teachers))
			for _, t := range ds.Teachers {
				known[t.ID] = true
			}
			for _, row := range ds.Ranking {
				So(known[row.TeacherID], ShouldBeTrue)
			}
		})
	})
}

func TestRunDeterminism(t *testing.T) {
	Convey("Given two assemblers with the same seed", t, func() {
		first, _, err := testAssembler().Run(context.Background())
		So(err, ShouldBeNil)
		second, _, err := testAssembler().Run(context.Background())
		So(err, ShouldBeNil)

		Convey("Then the datasets should be identical", func() {
			So(second, ShouldResemble, first)
		})
	})

	Convey("Given two assemblers with different worker counts", t, func() {
		first, _, err := testAssembler(assembler.WithWorkerCount(1)).Run(context.Background())
		So(err, ShouldBeNil)
		second, _, err := testAssembler(assembler.WithWorkerCount(8)).Run(context.Background())
		So(err, ShouldBeNil)

		Convey("Then scheduling should not leak into the output", func() {
			So(second, ShouldResemble, first)
		})
	})

	Convey("Given two assemblers with different seeds", t, func() {
		first, _, err := testAssembler(assembler.WithSeed(1)).Run(context.Background())
		So(err, ShouldBeNil)
		second, _, err := testAssembler(assembler.WithSeed(2)).Run(context.Background())
		So(err, ShouldBeNil)

		Convey("Then the datasets should differ", func() {
			So(second.Ratings, ShouldNotResemble, first.Ratings)
		})
	})
}

func TestRunConfigurationErrors(t *testing.T) {
	Convey("Given a schema whose weights do not sum to 1.0", t, func() {
		bad := rating.Schema{
			{Name: "A", Weight: 0.7, Criteria: []string{"C1"}},
			{Name: "B", Weight: 0.7, Criteria: []string{"C1"}},
		}
		a := testAssembler(assembler.WithSchema(bad))

		Convey("Then the run should abort with no partial dataset", func() {
			ds, summary, err := a.Run(context.Background())
			So(err, ShouldWrap, rating.ErrInvalidSchema)
			So(ds, ShouldBeNil)
			So(summary, ShouldBeNil)
		})
	})
}

func TestRunWithoutBoost(t *testing.T) {
	Convey("Given an assembler with the boost disabled", t, func() {
		a := testAssembler(assembler.WithBoost(false, 0))
		ds, summary, err := a.Run(context.Background())
		So(err, ShouldBeNil)

		Convey("Then low-group scores should stay in the raw band", func() {
			So(summary.Boosted, ShouldBeFalse)
			for _, rec := range ds.LowRatings {
				for _, cat := range rec.Ratings.Categories {
					So(cat.Score, ShouldBeBetweenOrEqual, 3.0, 6.0)
				}
			}
		})
	})
}

func TestWriteFiles(t *testing.T) {
	Convey("Given a finished dataset", t, func() {
		ds, _, err := testAssembler().Run(context.Background())
		So(err, ShouldBeNil)

		dir := t.TempDir()
		So(ds.WriteFiles(dir), ShouldBeNil)

		Convey("Then every output file should exist and parse", func() {
			for _, name := range []string{
				"courses.json", "teachers.json", "students.json",
				"enrollments.json", "course_ratings_compact.json",
				"course_ratings_low.json", "teacher_ranking.json",
			} {
				data, err := os.ReadFile(filepath.Join(dir, name))
				So(err, ShouldBeNil)
				var v any
				So(json.Unmarshal(data, &v), ShouldBeNil)
			}
		})

		Convey("Then rating records should use the compact field layout", func() {
			data, err := os.ReadFile(filepath.Join(dir, "course_ratings_compact.json"))
			So(err, ShouldBeNil)

			var records []map[string]any
			So(json.Unmarshal(data, &records), ShouldBeNil)
			So(len(records), ShouldBeGreaterThan, 0)

			rec := records[0]
			for _, key := range []string{"session_id", "student_id", "teacher_id", "course_code", "schedule", "ratings"} {
				_, ok := rec[key]
				So(ok, ShouldBeTrue)
			}

			schedule, ok := rec["schedule"].(map[string]any)
			So(ok, ShouldBeTrue)
			for _, key := range []string{"start_date", "start_time", "end_time", "duration_minutes"} {
				_, ok := schedule[key]
				So(ok, ShouldBeTrue)
			}

			ratings, ok := rec["ratings"].(map[string]any)
			So(ok, ShouldBeTrue)
			_, ok = ratings["ratings"]
			So(ok, ShouldBeTrue)
			_, ok = ratings["total_score"]
			So(ok, ShouldBeTrue)
		})
	})
}
