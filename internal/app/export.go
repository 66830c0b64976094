package assembler

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Output file names, matching the layout downstream dashboards read.
const (
	coursesFile     = "courses.json"
	teachersFile    = "teachers.json"
	studentsFile    = "students.json"
	enrollmentsFile = "enrollments.json"
	ratingsFile     = "course_ratings_compact.json"
	lowRatingsFile  = "course_ratings_low.json"
	rankingFile     = "teacher_ranking.json"

	outputDirPerm  = 0o755
	outputFilePerm = 0o644
)

// enrollmentsView pairs the assignment with its tally in one file.
type enrollmentsView struct {
	Enrollments map[string][]string `json:"enrollments"`
	Tally       map[string]int      `json:"enrollment_tally"`
}

// WriteFiles exports the dataset as indented JSON files under dir, creating
// it if needed.
func (d *Dataset) WriteFiles(dir string) error {
	if err := os.MkdirAll(dir, outputDirPerm); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	files := map[string]any{
		coursesFile:     d.Courses,
		teachersFile:    d.Teachers,
		studentsFile:    d.Students,
		enrollmentsFile: enrollmentsView{Enrollments: d.Enrollments, Tally: d.EnrollmentTally},
		ratingsFile:     d.Ratings,
		lowRatingsFile:  d.LowRatings,
		rankingFile:     d.Ranking,
	}

	for name, payload := range files {
		data, err := json.MarshalIndent(payload, "", "    ")
		if err != nil {
			return fmt.Errorf("marshal %s: %w", name, err)
		}
		if err := os.WriteFile(filepath.Join(dir, name), data, outputFilePerm); err != nil {
			return fmt.Errorf("write %s: %w", name, err)
		}
	}
	return nil
}
