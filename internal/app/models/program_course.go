package models

// ProgramCourse is the many-to-many link between a program and a course.
// A (program_id, course_id) pair must not repeat; the assignment manager
// keeps already-linked courses out of the "available" pane.
type ProgramCourse struct {
	ID        int64 `json:"id"`
	ProgramID int64 `json:"program_id"`
	CourseID  int64 `json:"course_id"`

	Program *Program `json:"program,omitempty"`
	Course  *Course  `json:"course,omitempty"`
}

// GetID returns the link row identifier
func (pc ProgramCourse) GetID() int64 { return pc.ID }
