package models

// StudentStatus defines the enrollment status of a student
type StudentStatus string

const (
	StudentStatusActive    StudentStatus = "active"
	StudentStatusInactive  StudentStatus = "inactive"
	StudentStatusGraduated StudentStatus = "graduated"
	StudentStatusSuspended StudentStatus = "suspended"
)

// ValidStudentStatus reports whether status is one of the known statuses.
func ValidStudentStatus(status StudentStatus) bool {
	switch status {
	case StudentStatusActive, StudentStatusInactive, StudentStatusGraduated, StudentStatusSuspended:
		return true
	}
	return false
}

// Student represents an enrolled student
type Student struct {
	ID             int64         `json:"id"`
	StudentID      string        `json:"student_id"` // human-readable code, unique
	FirstName      string        `json:"first_name"`
	LastName       string        `json:"last_name"`
	Email          string        `json:"email"`
	DepartmentID   int64         `json:"department_id"`
	Status         StudentStatus `json:"status"`
	EnrollmentDate string        `json:"enrollment_date,omitempty"`

	Department *Department `json:"department,omitempty"`
}

// GetID returns the student record identifier
func (s Student) GetID() int64 { return s.ID }

// FullName returns the display name used on rosters and sheets.
func (s Student) FullName() string {
	if s.FirstName == "" {
		return s.LastName
	}
	if s.LastName == "" {
		return s.FirstName
	}
	return s.FirstName + " " + s.LastName
}
