package models

// ClassSession represents a single scheduled meeting of a course section.
type ClassSession struct {
	ID              int64  `json:"id"`
	CourseID        int64  `json:"course_id"`
	CourseSectionID int64  `json:"course_section_id"`
	ClassDate       string `json:"class_date"` // YYYY-MM-DD
	StartTime       string `json:"start_time"` // HH:MM
	EndTime         string `json:"end_time"`   // HH:MM
	Room            string `json:"room,omitempty"`
	Topic           string `json:"topic,omitempty"`
	AttendanceType  string `json:"attendance_type,omitempty"`

	Course *Course `json:"course,omitempty"`
}

// GetID returns the class session identifier
func (cs ClassSession) GetID() int64 { return cs.ID }

// ClassStudent is a roster row for a class session as reported by the
// upstream: the student record plus the registration number used on
// attendance payloads.
type ClassStudent struct {
	StudentID int64  `json:"std_id"`
	RegNo     string `json:"reg_no"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email,omitempty"`
}

// FullName returns the display name used on rosters and sheets.
func (cs ClassStudent) FullName() string {
	if cs.FirstName == "" {
		return cs.LastName
	}
	if cs.LastName == "" {
		return cs.FirstName
	}
	return cs.FirstName + " " + cs.LastName
}
