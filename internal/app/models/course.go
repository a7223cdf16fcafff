package models

// Course represents a course in the catalog. A course is not owned by a
// single program; it is linked to programs through ProgramCourse rows.
type Course struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	CourseCode  string `json:"course_code"`
	Description string `json:"description,omitempty"`
	CreditHours int    `json:"credit_hours"`
}

// GetID returns the course identifier
func (c Course) GetID() int64 { return c.ID }
