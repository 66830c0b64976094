// Package session synthesizes tutoring sessions from an enrollment
// assignment: one batch derived from student-course pairs, plus a bulk batch
// drawn from the observed participants. Teacher picks always respect
// department expertise.
package session

// Session is one tutoring session. IDs are sequential within a run.
type Session struct {
	ID         string   `json:"session_id"`
	StudentID  string   `json:"student_id"`
	TeacherID  string   `json:"teacher_id"`
	CourseCode string   `json:"course_code"`
	Schedule   Schedule `json:"schedule"`
}
