package catalog

import (
	"fmt"
	"math/rand"
)

// Department names used by the built-in course list.
const (
	deptCS         = "Computer Science"
	deptMath       = "Mathematics"
	deptEnglish    = "English"
	deptHistory    = "History"
	deptPhysics    = "Physics"
	deptEconomics  = "Economics"
	deptSociology  = "Sociology"
	deptBiology    = "Biology"
	deptChemistry  = "Chemistry"
	deptPsychology = "Psychology"
	deptPhilosophy = "Philosophy"
	deptPoliSci    = "Political Science"
	deptArt        = "Art"
	deptMusic      = "Music"
)

// Level and difficulty labels.
const (
	levelFreshman  = "Freshman"
	levelSophomore = "Sophomore"
	levelJunior    = "Junior"
	levelSenior    = "Senior"
	levelGraduate  = "Graduate"

	diffIntro        = "Introductory"
	diffIntermediate = "Intermediate"
	diffAdvanced     = "Advanced"
)

// DefaultCourses returns the built-in university course list: 65 courses
// across 14 departments, so the pipeline is runnable without external input.
func DefaultCourses() []Course {
	return []Course{
		{Code: "CS101", Department: deptCS, Level: levelFreshman, Difficulty: diffIntro},
		{Code: "MATH151", Department: deptMath, Level: levelFreshman, Difficulty: diffIntro},
		{Code: "ENG110", Department: deptEnglish, Level: levelFreshman, Difficulty: diffIntro},
		{Code: "HIST105", Department: deptHistory, Level: levelFreshman, Difficulty: diffIntro},
		{Code: "PHYS201", Department: deptPhysics, Level: levelSophomore, Difficulty: diffIntermediate},
		{Code: "ECON201", Department: deptEconomics, Level: levelSophomore, Difficulty: diffIntermediate},
		{Code: "CS202", Department: deptCS, Level: levelSophomore, Difficulty: diffIntermediate},
		{Code: "SOCY210", Department: deptSociology, Level: levelSophomore, Difficulty: diffIntermediate},
		{Code: "BIOL301", Department: deptBiology, Level: levelJunior, Difficulty: diffAdvanced},
		{Code: "CHEM320", Department: deptChemistry, Level: levelJunior, Difficulty: diffAdvanced},
		{Code: "CS350", Department: deptCS, Level: levelJunior, Difficulty: diffAdvanced},
		{Code: "PSYC315", Department: deptPsychology, Level: levelJunior, Difficulty: diffAdvanced},
		{Code: "ENG401", Department: deptEnglish, Level: levelSenior, Difficulty: diffAdvanced},
		{Code: "MATH410", Department: deptMath, Level: levelSenior, Difficulty: diffAdvanced},
		{Code: "GRAD501", Department: deptCS, Level: levelGraduate, Difficulty: diffAdvanced},
		{Code: "GRAD620", Department: deptPhysics, Level: levelGraduate, Difficulty: diffAdvanced},
		{Code: "MATH152", Department: deptMath, Level: levelFreshman, Difficulty: diffIntro},
		{Code: "PHYS202", Department: deptPhysics, Level: levelSophomore, Difficulty: diffIntermediate},
		{Code: "ECON202", Department: deptEconomics, Level: levelSophomore, Difficulty: diffIntermediate},
		{Code: "CS250", Department: deptCS, Level: levelSophomore, Difficulty: diffIntermediate},
		{Code: "BIOL101", Department: deptBiology, Level: levelFreshman, Difficulty: diffIntro},
		{Code: "CHEM101", Department: deptChemistry, Level: levelFreshman, Difficulty: diffIntro},
		{Code: "PHIL101", Department: deptPhilosophy, Level: levelFreshman, Difficulty: diffIntro},
		{Code: "POLS101", Department: deptPoliSci, Level: levelFreshman, Difficulty: diffIntro},
		{Code: "ART101", Department: deptArt, Level: levelFreshman, Difficulty: diffIntro},
		{Code: "MUS101", Department: deptMusic, Level: levelFreshman, Difficulty: diffIntro},
		{Code: "CS305", Department: deptCS, Level: levelJunior, Difficulty: diffAdvanced},
		{Code: "MATH320", Department: deptMath, Level: levelJunior, Difficulty: diffAdvanced},
		{Code: "ENG320", Department: deptEnglish, Level: levelJunior, Difficulty: diffAdvanced},
		{Code: "HIST310", Department: deptHistory, Level: levelJunior, Difficulty: diffAdvanced},
		{Code: "PHYS310", Department: deptPhysics, Level: levelJunior, Difficulty: diffAdvanced},
		{Code: "ECON305", Department: deptEconomics, Level: levelJunior, Difficulty: diffAdvanced},
		{Code: "SOCY320", Department: deptSociology, Level: levelJunior, Difficulty: diffAdvanced},
		{Code: "BIOL410", Department: deptBiology, Level: levelSenior, Difficulty: diffAdvanced},
		{Code: "CHEM430", Department: deptChemistry, Level: levelSenior, Difficulty: diffAdvanced},
		{Code: "PHIL305", Department: deptPhilosophy, Level: levelJunior, Difficulty: diffAdvanced},
		{Code: "POLS310", Department: deptPoliSci, Level: levelJunior, Difficulty: diffAdvanced},
		{Code: "ART301", Department: deptArt, Level: levelJunior, Difficulty: diffAdvanced},
		{Code: "MUS301", Department: deptMusic, Level: levelJunior, Difficulty: diffAdvanced},
		{Code: "CS480", Department: deptCS, Level: levelSenior, Difficulty: diffAdvanced},
		{Code: "MATH450", Department: deptMath, Level: levelSenior, Difficulty: diffAdvanced},
		{Code: "ENG450", Department: deptEnglish, Level: levelSenior, Difficulty: diffAdvanced},
		{Code: "HIST420", Department: deptHistory, Level: levelSenior, Difficulty: diffAdvanced},
		{Code: "PHYS420", Department: deptPhysics, Level: levelSenior, Difficulty: diffAdvanced},
		{Code: "ECON410", Department: deptEconomics, Level: levelSenior, Difficulty: diffAdvanced},
		{Code: "SOCY410", Department: deptSociology, Level: levelSenior, Difficulty: diffAdvanced},
		{Code: "BIOL510", Department: deptBiology, Level: levelGraduate, Difficulty: diffAdvanced},
		{Code: "CHEM520", Department: deptChemistry, Level: levelGraduate, Difficulty: diffAdvanced},
		{Code: "PHIL501", Department: deptPhilosophy, Level: levelGraduate, Difficulty: diffAdvanced},
		{Code: "POLS510", Department: deptPoliSci, Level: levelGraduate, Difficulty: diffAdvanced},
		{Code: "ART501", Department: deptArt, Level: levelGraduate, Difficulty: diffAdvanced},
		{Code: "MUS501", Department: deptMusic, Level: levelGraduate, Difficulty: diffAdvanced},
		{Code: "CS650", Department: deptCS, Level: levelGraduate, Difficulty: diffAdvanced},
		{Code: "MATH610", Department: deptMath, Level: levelGraduate, Difficulty: diffAdvanced},
		{Code: "ENG610", Department: deptEnglish, Level: levelGraduate, Difficulty: diffAdvanced},
		{Code: "HIST601", Department: deptHistory, Level: levelGraduate, Difficulty: diffAdvanced},
		{Code: "PHYS610", Department: deptPhysics, Level: levelGraduate, Difficulty: diffAdvanced},
		{Code: "ECON601", Department: deptEconomics, Level: levelGraduate, Difficulty: diffAdvanced},
		{Code: "SOCY601", Department: deptSociology, Level: levelGraduate, Difficulty: diffAdvanced},
		{Code: "BIOL205", Department: deptBiology, Level: levelSophomore, Difficulty: diffIntermediate},
		{Code: "CHEM210", Department: deptChemistry, Level: levelSophomore, Difficulty: diffIntermediate},
		{Code: "PHIL220", Department: deptPhilosophy, Level: levelSophomore, Difficulty: diffIntermediate},
		{Code: "POLS230", Department: deptPoliSci, Level: levelSophomore, Difficulty: diffIntermediate},
		{Code: "ART250", Department: deptArt, Level: levelSophomore, Difficulty: diffIntermediate},
		{Code: "MUS240", Department: deptMusic, Level: levelSophomore, Difficulty: diffIntermediate},
	}
}

// DepartmentsOf lists the distinct departments of a course list, in first
// appearance order. Useful before a Catalog exists, e.g. when sampling
// teacher expertise for a roster that is still being synthesized.
func DepartmentsOf(courses []Course) []string {
	seen := make(map[string]bool)
	var departments []string
	for _, c := range courses {
		if !seen[c.Department] {
			seen[c.Department] = true
			departments = append(departments, c.Department)
		}
	}
	return departments
}

// SynthesizeStudents returns n students with ids S001, S002, ...
func SynthesizeStudents(n int) []Student {
	students := make([]Student, n)
	for i := range students {
		students[i] = Student{ID: fmt.Sprintf("S%03d", i+1)}
	}
	return students
}

// SynthesizeTeachers returns n teachers with ids T001, T002, ..., each with
// a uniformly sampled expertise of expertiseMin..expertiseMax distinct
// departments. CoursesTaught is left empty; the expertise index samples it.
func SynthesizeTeachers(rng *rand.Rand, n int, departments []string, expertiseMin, expertiseMax int) []Teacher {
	teachers := make([]Teacher, n)
	for i := range teachers {
		k := expertiseMin + rng.Intn(expertiseMax-expertiseMin+1)
		if k > len(departments) {
			k = len(departments)
		}
		expertise := make([]string, 0, k)
		for _, idx := range rng.Perm(len(departments))[:k] {
			expertise = append(expertise, departments[idx])
		}
		teachers[i] = Teacher{
			ID:        fmt.Sprintf("T%03d", i+1),
			Expertise: expertise,
		}
	}
	return teachers
}
