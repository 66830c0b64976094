package assembler

import (
	"errors"
	"fmt"

	"github.com/okian/campusgen/internal/domain/catalog"
	"github.com/okian/campusgen/internal/domain/enrollment"
	"github.com/okian/campusgen/internal/domain/rating"
)

// audit re-checks the finished dataset against the pipeline's own
// invariants before it is handed out. A failure here is a bug, not bad
// input.
func (a *Assembler) audit(cat *catalog.Catalog, alloc *enrollment.Allocator, res enrollment.Result, ds *Dataset) error {
	var errs []error

	errs = append(errs, auditEnrollments(cat, alloc, res, ds)...)
	errs = append(errs, auditSessions(cat, ds)...)
	errs = append(errs, a.auditRatings(ds)...)

	return errors.Join(errs...)
}

func auditEnrollments(cat *catalog.Catalog, alloc *enrollment.Allocator, res enrollment.Result, ds *Dataset) []error {
	var errs []error

	min, max := alloc.Bounds()
	recount := make(map[string]int, len(cat.Courses))

	for _, s := range ds.Students {
		enrolled := ds.Enrollments[s.ID]
		if len(enrolled) < min || len(enrolled) > max {
			errs = append(errs, fmt.Errorf("student %s holds %d courses, want %d..%d",
				s.ID, len(enrolled), min, max))
		}
		seen := make(map[string]bool, len(enrolled))
		for _, code := range enrolled {
			if seen[code] {
				errs = append(errs, fmt.Errorf("student %s enrolled twice in %s", s.ID, code))
			}
			seen[code] = true
			recount[code]++
		}
	}

	under := make(map[string]bool, len(res.UnderEnrolled))
	for _, code := range res.UnderEnrolled {
		under[code] = true
	}
	floor := alloc.MinCourseEnrollment()
	for _, c := range cat.Courses {
		if ds.EnrollmentTally[c.Code] != recount[c.Code] {
			errs = append(errs, fmt.Errorf("course %s tally %d, recount %d",
				c.Code, ds.EnrollmentTally[c.Code], recount[c.Code]))
		}
		if recount[c.Code] < floor && !under[c.Code] {
			errs = append(errs, fmt.Errorf("course %s below floor %d but not reported under-enrolled",
				c.Code, floor))
		}
	}

	return errs
}

func auditSessions(cat *catalog.Catalog, ds *Dataset) []error {
	var errs []error

	expert := make(map[string]map[string]bool, len(cat.Teachers))
	for _, t := range cat.Teachers {
		depts := make(map[string]bool, len(t.Expertise))
		for _, d := range t.Expertise {
			depts[d] = true
		}
		expert[t.ID] = depts
	}

	check := func(group string, records []rating.RatedSession) {
		for _, rec := range records {
			dept, ok := cat.Department(rec.CourseCode)
			if !ok {
				errs = append(errs, fmt.Errorf("%s session %s references unknown course %s",
					group, rec.ID, rec.CourseCode))
				continue
			}
			if !expert[rec.TeacherID][dept] {
				errs = append(errs, fmt.Errorf("%s session %s pairs teacher %s with %s outside their expertise",
					group, rec.ID, rec.TeacherID, rec.CourseCode))
			}
			if err := rec.Schedule.Validate(); err != nil {
				errs = append(errs, fmt.Errorf("%s session %s: %w", group, rec.ID, err))
			}
		}
	}
	check("baseline", ds.Ratings)
	check("low", ds.LowRatings)

	for i, rec := range ds.Ratings {
		if want := fmt.Sprintf("EZ%06d", i+1); rec.ID != want {
			errs = append(errs, fmt.Errorf("baseline slot %d holds session %q, want %s", i, rec.ID, want))
		}
	}
	for i, rec := range ds.LowRatings {
		if want := fmt.Sprintf("LS%06d", i+1); rec.ID != want {
			errs = append(errs, fmt.Errorf("low slot %d holds session %q, want %s", i, rec.ID, want))
		}
	}

	return errs
}

func (a *Assembler) auditRatings(ds *Dataset) []error {
	var errs []error

	check := func(group string, records []rating.RatedSession) {
		for _, rec := range records {
			for name, cat := range rec.Ratings.Categories {
				if cat.Score < 0 || cat.Score > 10 {
					errs = append(errs, fmt.Errorf("%s session %s category %q score %v out of bounds",
						group, rec.ID, name, cat.Score))
				}
				for id, score := range cat.Criteria {
					if score < 0 || score > 10 {
						errs = append(errs, fmt.Errorf("%s session %s criterion %s/%s score %v out of bounds",
							group, rec.ID, name, id, score))
					}
				}
			}
			if want := a.schema.Total(rec.Ratings.Categories); rec.Ratings.TotalScore != want {
				errs = append(errs, fmt.Errorf("%s session %s total %v, want %v",
					group, rec.ID, rec.Ratings.TotalScore, want))
			}
			if rec.Ratings.TotalScore < 0 || rec.Ratings.TotalScore > 10 {
				errs = append(errs, fmt.Errorf("%s session %s total %v out of bounds",
					group, rec.ID, rec.Ratings.TotalScore))
			}
		}
	}
	check("baseline", ds.Ratings)
	check("low", ds.LowRatings)

	return errs
}
