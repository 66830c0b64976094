// Package catalog contains the static reference data consumed by the
// generation pipeline: courses, the teacher roster with expertise, and the
// student roster. Entities are immutable once the catalog is built.
package catalog

import (
	"fmt"
	"sort"
)

// Course is a single catalog entry. Courses never change after loading.
type Course struct {
	Code       string `json:"code"`
	Department string `json:"department"`
	Level      string `json:"level"`
	Difficulty string `json:"difficulty"`
}

// Teacher is a roster entry. Expertise is fixed at creation and holds the
// departments the teacher is authorized to teach in (1-3 entries).
type Teacher struct {
	ID        string   `json:"id"`
	Expertise []string `json:"expertise"`

	// CoursesTaught is the teacher's sampled active load, always a subset of
	// the courses their expertise makes them eligible for.
	CoursesTaught []string `json:"courses_taught,omitempty"`
}

// Student is a roster entry. Enrollments live in the allocator's state, not here.
type Student struct {
	ID string `json:"id"`
}

// Catalog bundles the three reference collections with lookup indexes.
type Catalog struct {
	Courses  []Course
	Teachers []Teacher
	Students []Student

	deptByCourse map[string]string
}

// New validates the reference data and builds lookup indexes.
// Duplicate course codes, duplicate teacher/student ids, and teachers with
// zero expertise entries are configuration errors: generation must not start
// from a catalog that would silently cascade into empty eligible sets.
func New(courses []Course, teachers []Teacher, students []Student) (*Catalog, error) {
	c := &Catalog{
		Courses:      courses,
		Teachers:     teachers,
		Students:     students,
		deptByCourse: make(map[string]string, len(courses)),
	}

	for _, course := range courses {
		if _, exists := c.deptByCourse[course.Code]; exists {
			return nil, fmt.Errorf("%w: course %s", ErrDuplicateCourse, course.Code)
		}
		c.deptByCourse[course.Code] = course.Department
	}

	teacherIDs := make(map[string]struct{}, len(teachers))
	for _, t := range teachers {
		if _, exists := teacherIDs[t.ID]; exists {
			return nil, fmt.Errorf("%w: teacher %s", ErrDuplicateTeacher, t.ID)
		}
		teacherIDs[t.ID] = struct{}{}
		if len(t.Expertise) == 0 {
			return nil, fmt.Errorf("%w: teacher %s", ErrNoExpertise, t.ID)
		}
	}

	studentIDs := make(map[string]struct{}, len(students))
	for _, s := range students {
		if _, exists := studentIDs[s.ID]; exists {
			return nil, fmt.Errorf("%w: student %s", ErrDuplicateStudent, s.ID)
		}
		studentIDs[s.ID] = struct{}{}
	}

	return c, nil
}

// Department returns the department a course belongs to.
func (c *Catalog) Department(courseCode string) (string, bool) {
	dept, ok := c.deptByCourse[courseCode]
	return dept, ok
}

// CourseCodes returns all course codes in catalog order.
func (c *Catalog) CourseCodes() []string {
	codes := make([]string, len(c.Courses))
	for i, course := range c.Courses {
		codes[i] = course.Code
	}
	return codes
}

// Departments returns the distinct department names, sorted for determinism.
func (c *Catalog) Departments() []string {
	seen := make(map[string]struct{})
	var depts []string
	for _, course := range c.Courses {
		if _, ok := seen[course.Department]; ok {
			continue
		}
		seen[course.Department] = struct{}{}
		depts = append(depts, course.Department)
	}
	sort.Strings(depts)
	return depts
}
