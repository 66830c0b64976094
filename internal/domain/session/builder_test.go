package session_test

import (
	"context"
	"fmt"
	"math/rand"
	"testing"

	"github.com/okian/campusgen/internal/domain/catalog"
	"github.com/okian/campusgen/internal/domain/expertise"
	"github.com/okian/campusgen/internal/domain/session"
	"github.com/okian/campusgen/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	if err := logger.Init(); err != nil {
		panic(err)
	}
}

func testIndex() (*catalog.Catalog, *expertise.Index) {
	c, err := catalog.New(
		[]catalog.Course{
			{Code: "CS101", Department: "Computer Science"},
			{Code: "MATH151", Department: "Mathematics"},
			{Code: "ART101", Department: "Art"},
		},
		[]catalog.Teacher{
			{ID: "T001", Expertise: []string{"Computer Science"}},
			{ID: "T002", Expertise: []string{"Computer Science", "Mathematics"}},
		},
		[]catalog.Student{{ID: "S001"}, {ID: "S002"}, {ID: "S003"}},
	)
	if err != nil {
		panic(err)
	}
	return c, expertise.NewIndex(c)
}

func TestBuild(t *testing.T) {
	Convey("Given an enrollment assignment over a small catalog", t, func() {
		c, idx := testIndex()
		students := []string{"S001", "S002", "S003"}
		enrollments := map[string][]string{
			"S001": {"CS101", "MATH151"},
			"S002": {"MATH151"},
			"S003": {"CS101", "ART101"},
		}

		b := session.New(
			session.WithSessionsPerPair(1, 3),
			session.WithBulkCount(50),
		)
		res := b.Build(context.Background(), rand.New(rand.NewSource(7)), students, enrollments, idx)

		Convey("Then the pair no teacher covers should be skipped, not fail", func() {
			So(res.SkippedPairs, ShouldEqual, 1)
			for _, s := range res.Sessions {
				So(s.CourseCode, ShouldNotEqual, "ART101")
			}
		})

		Convey("Then session IDs should be sequential in the EZ format", func() {
			for i, s := range res.Sessions {
				So(s.ID, ShouldEqual, fmt.Sprintf("EZ%06d", i+1))
			}
		})

		Convey("Then every teacher should be eligible for the session course", func() {
			for _, s := range res.Sessions {
				dept, ok := c.Department(s.CourseCode)
				So(ok, ShouldBeTrue)

				eligible := false
				for _, teacher := range c.Teachers {
					if teacher.ID != s.TeacherID {
						continue
					}
					for _, d := range teacher.Expertise {
						if d == dept {
							eligible = true
						}
					}
				}
				So(eligible, ShouldBeTrue)
			}
		})

		Convey("Then bulk participants should come from the observed pools", func() {
			observedStudents := map[string]bool{"S001": true, "S002": true, "S003": true}
			for _, s := range res.Sessions {
				So(observedStudents[s.StudentID], ShouldBeTrue)
			}
		})

		Convey("Then every schedule should validate", func() {
			for _, s := range res.Sessions {
				So(s.Schedule.Validate(), ShouldBeNil)
			}
		})

		Convey("Then the same seed should reproduce the same batch", func() {
			again := b.Build(context.Background(), rand.New(rand.NewSource(7)), students, enrollments, idx)
			So(again.Sessions, ShouldResemble, res.Sessions)
			So(again.SkippedPairs, ShouldEqual, res.SkippedPairs)
			So(again.SkippedDraws, ShouldEqual, res.SkippedDraws)
		})
	})
}

func TestBuildPerPairCount(t *testing.T) {
	Convey("Given a single student-course pair", t, func() {
		_, idx := testIndex()
		students := []string{"S001"}
		enrollments := map[string][]string{"S001": {"CS101"}}

		Convey("When sessions per pair is pinned to a single value", func() {
			b := session.New(
				session.WithSessionsPerPair(2, 2),
				session.WithBulkCount(0),
			)
			res := b.Build(context.Background(), rand.New(rand.NewSource(3)), students, enrollments, idx)

			Convey("Then exactly that many sessions should come out", func() {
				So(len(res.Sessions), ShouldEqual, 2)
				for _, s := range res.Sessions {
					So(s.StudentID, ShouldEqual, "S001")
					So(s.CourseCode, ShouldEqual, "CS101")
				}
			})
		})

		Convey("When the pair count floats between one and three", func() {
			b := session.New(session.WithBulkCount(0))
			res := b.Build(context.Background(), rand.New(rand.NewSource(3)), students, enrollments, idx)

			Convey("Then the batch size should stay within the bounds", func() {
				So(len(res.Sessions), ShouldBeBetweenOrEqual, 1, 3)
			})
		})
	})
}

func TestBuildNoSessions(t *testing.T) {
	Convey("Given an assignment where no pair has an eligible teacher", t, func() {
		_, idx := testIndex()
		students := []string{"S001", "S002"}
		enrollments := map[string][]string{
			"S001": {"ART101"},
			"S002": {"ART101"},
		}

		b := session.New(session.WithBulkCount(500))
		res := b.Build(context.Background(), rand.New(rand.NewSource(5)), students, enrollments, idx)

		Convey("Then the batch should be empty with every pair counted", func() {
			So(res.Sessions, ShouldBeEmpty)
			So(res.SkippedPairs, ShouldEqual, 2)
		})

		Convey("Then the bulk phase should not run on empty pools", func() {
			So(res.SkippedDraws, ShouldEqual, 0)
		})
	})
}
