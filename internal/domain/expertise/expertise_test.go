package expertise_test

import (
	"math/rand"
	"testing"

	"github.com/okian/campusgen/internal/domain/catalog"
	"github.com/okian/campusgen/internal/domain/expertise"
	. "github.com/smartystreets/goconvey/convey"
)

func testCatalog() *catalog.Catalog {
	c, err := catalog.New(
		[]catalog.Course{
			{Code: "CS101", Department: "Computer Science"},
			{Code: "CS202", Department: "Computer Science"},
			{Code: "MATH151", Department: "Mathematics"},
			{Code: "ART101", Department: "Art"},
		},
		[]catalog.Teacher{
			{ID: "T001", Expertise: []string{"Computer Science", "Mathematics"}},
			{ID: "T002", Expertise: []string{"Mathematics"}},
			{ID: "T003", Expertise: []string{"History"}},
		},
		[]catalog.Student{{ID: "S001"}},
	)
	if err != nil {
		panic(err)
	}
	return c
}

func TestIndexEligibility(t *testing.T) {
	Convey("Given an eligibility index over a small catalog", t, func() {
		idx := expertise.NewIndex(testCatalog())

		Convey("When looking up a teacher's eligible courses", func() {
			Convey("Then courses should match the expertise departments, in catalog order", func() {
				So(idx.EligibleCourses("T001"), ShouldResemble, []string{"CS101", "CS202", "MATH151"})
				So(idx.EligibleCourses("T002"), ShouldResemble, []string{"MATH151"})
			})

			Convey("Then a teacher with no matching department should get an empty set", func() {
				So(idx.EligibleCourses("T003"), ShouldBeEmpty)
			})
		})

		Convey("When looking up a course's eligible teachers", func() {
			Convey("Then teachers should match, in roster order", func() {
				So(idx.EligibleTeachers("MATH151"), ShouldResemble, []string{"T001", "T002"})
				So(idx.EligibleTeachers("CS101"), ShouldResemble, []string{"T001"})
			})

			Convey("Then a course no teacher covers should get an empty set", func() {
				So(idx.EligibleTeachers("ART101"), ShouldBeEmpty)
			})
		})

		Convey("Then expertise containment should hold for every index entry", func() {
			c := testCatalog()
			for _, teacher := range c.Teachers {
				expert := make(map[string]bool)
				for _, dept := range teacher.Expertise {
					expert[dept] = true
				}
				for _, code := range idx.EligibleCourses(teacher.ID) {
					dept, ok := c.Department(code)
					So(ok, ShouldBeTrue)
					So(expert[dept], ShouldBeTrue)
				}
			}
		})
	})
}

func TestSampleTeachingLoad(t *testing.T) {
	Convey("Given an eligibility index", t, func() {
		idx := expertise.NewIndex(testCatalog())

		Convey("When sampling a teaching load with a fixed seed", func() {
			rng := rand.New(rand.NewSource(11))
			load := idx.SampleTeachingLoad(rng, "T001", 5)

			Convey("Then the load should be a non-empty distinct subset of the eligible set", func() {
				So(len(load), ShouldBeBetweenOrEqual, 1, 3)
				eligible := map[string]bool{"CS101": true, "CS202": true, "MATH151": true}
				seen := make(map[string]bool)
				for _, code := range load {
					So(eligible[code], ShouldBeTrue)
					So(seen[code], ShouldBeFalse)
					seen[code] = true
				}
			})

			Convey("Then the same seed should reproduce the same load", func() {
				again := idx.SampleTeachingLoad(rand.New(rand.NewSource(11)), "T001", 5)
				So(again, ShouldResemble, load)
			})
		})

		Convey("When sampling for a teacher with no eligible courses", func() {
			rng := rand.New(rand.NewSource(11))

			Convey("Then the load should be nil, not an error", func() {
				So(idx.SampleTeachingLoad(rng, "T003", 5), ShouldBeNil)
			})
		})
	})
}
