// Package enrollment assigns students to courses and repairs the assignment
// toward a per-course minimum-enrollment floor with a bounded randomized
// local search.
package enrollment

// State holds an allocation: the per-student course sets and the per-course
// enrollment tally. It is an explicit value owned by the allocator run —
// nothing here is shared mutable scope, which keeps repair steps testable
// and rollback trivial.
type State struct {
	byStudent map[string][]string
	tally     map[string]int

	// students and courses fix the iteration order for seeded draws.
	students []string
	courses  []string
}

// NewState builds a State from an existing assignment. The tally is derived
// from the assignment; courses absent from every student count zero.
func NewState(byStudent map[string][]string, students, courses []string) *State {
	s := &State{
		byStudent: make(map[string][]string, len(byStudent)),
		tally:     make(map[string]int, len(courses)),
		students:  students,
		courses:   courses,
	}
	for _, code := range courses {
		s.tally[code] = 0
	}
	for _, id := range students {
		enrolled := byStudent[id]
		s.byStudent[id] = append([]string(nil), enrolled...)
		for _, code := range enrolled {
			s.tally[code]++
		}
	}
	return s
}

// Enrollment returns the student's current course codes.
func (s *State) Enrollment(studentID string) []string {
	return s.byStudent[studentID]
}

// Tally returns the current enrollment count for a course.
func (s *State) Tally(courseCode string) int {
	return s.tally[courseCode]
}

// EnrollmentMap returns a copy of the student -> course-codes assignment.
func (s *State) EnrollmentMap() map[string][]string {
	out := make(map[string][]string, len(s.byStudent))
	for id, codes := range s.byStudent {
		out[id] = append([]string(nil), codes...)
	}
	return out
}

// TallyMap returns a copy of the course -> enrollment-count tally.
func (s *State) TallyMap() map[string]int {
	out := make(map[string]int, len(s.tally))
	for code, count := range s.tally {
		out[code] = count
	}
	return out
}

// underEnrolled lists courses below min, in catalog order.
func (s *State) underEnrolled(min int) []string {
	var under []string
	for _, code := range s.courses {
		if s.tally[code] < min {
			under = append(under, code)
		}
	}
	return under
}

// swapCandidates lists students that can give up a course (keep >= 1), in
// roster order.
func (s *State) swapCandidates() []string {
	var eligible []string
	for _, id := range s.students {
		if len(s.byStudent[id]) > 1 {
			eligible = append(eligible, id)
		}
	}
	return eligible
}

// enrolled reports whether the student already has the course.
func (s *State) enrolled(studentID, courseCode string) bool {
	for _, code := range s.byStudent[studentID] {
		if code == courseCode {
			return true
		}
	}
	return false
}

// swap drops one course from the student's set and adds another, updating
// the tally. Callers must ensure added is not already in the set.
func (s *State) swap(studentID, dropped, added string) {
	codes := s.byStudent[studentID]
	for i, code := range codes {
		if code == dropped {
			codes[i] = codes[len(codes)-1]
			s.byStudent[studentID] = codes[:len(codes)-1]
			break
		}
	}
	s.byStudent[studentID] = append(s.byStudent[studentID], added)
	s.tally[dropped]--
	s.tally[added]++
}
