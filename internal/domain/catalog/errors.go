package catalog

import (
	"errors"
)

// Sentinel error kinds for catalog validation. All of them are configuration
// errors: the pipeline aborts before generation starts.
var (
	ErrDuplicateCourse  = errors.New("duplicate course code")
	ErrDuplicateTeacher = errors.New("duplicate teacher id")
	ErrDuplicateStudent = errors.New("duplicate student id")
	ErrNoExpertise      = errors.New("teacher has no expertise")
)
