// Package expertise derives teaching eligibility from the catalog: which
// courses a teacher may teach and, inversely, which teachers may teach a
// course. Eligibility is purely department membership.
package expertise

import (
	"math/rand"

	"github.com/okian/campusgen/internal/domain/catalog"
)

// Index is a bidirectional eligibility index. It is a pure function of the
// catalog: build it once, read it from any stage. Empty eligible sets are
// valid results and are handled by callers, not treated as errors.
type Index struct {
	coursesByTeacher map[string][]string
	teachersByCourse map[string][]string
}

// NewIndex builds the eligibility index for a catalog.
// Slice ordering follows catalog order (courses) and roster order (teachers)
// so that seeded sampling over the index is reproducible.
func NewIndex(c *catalog.Catalog) *Index {
	idx := &Index{
		coursesByTeacher: make(map[string][]string, len(c.Teachers)),
		teachersByCourse: make(map[string][]string, len(c.Courses)),
	}

	for _, teacher := range c.Teachers {
		expertise := make(map[string]struct{}, len(teacher.Expertise))
		for _, dept := range teacher.Expertise {
			expertise[dept] = struct{}{}
		}

		for _, course := range c.Courses {
			if _, ok := expertise[course.Department]; !ok {
				continue
			}
			idx.coursesByTeacher[teacher.ID] = append(idx.coursesByTeacher[teacher.ID], course.Code)
			idx.teachersByCourse[course.Code] = append(idx.teachersByCourse[course.Code], teacher.ID)
		}
	}

	return idx
}

// EligibleCourses returns the course codes the teacher's expertise covers.
func (i *Index) EligibleCourses(teacherID string) []string {
	return i.coursesByTeacher[teacherID]
}

// EligibleTeachers returns the teacher ids whose expertise covers the course.
func (i *Index) EligibleTeachers(courseCode string) []string {
	return i.teachersByCourse[courseCode]
}

// SampleTeachingLoad draws the teacher's active course load: up to maxLoad
// distinct courses chosen uniformly from their eligible set. Returns nil when
// the teacher is eligible for nothing.
func (i *Index) SampleTeachingLoad(rng *rand.Rand, teacherID string, maxLoad int) []string {
	eligible := i.coursesByTeacher[teacherID]
	if len(eligible) == 0 {
		return nil
	}

	k := rng.Intn(maxLoad) + 1
	if k > len(eligible) {
		k = len(eligible)
	}

	load := make([]string, 0, k)
	for _, idx := range rng.Perm(len(eligible))[:k] {
		load = append(load, eligible[idx])
	}
	return load
}
