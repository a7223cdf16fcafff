package models

// AttendanceStatus is the per-student mark for a class session. Unset is
// a real state, distinct from absent: it means no mark has been taken yet
// and the UI renders a neutral affordance for it.
type AttendanceStatus int

const (
	AttendanceUnset   AttendanceStatus = iota // no mark recorded
	AttendancePresent                         // rev_attendance = 1
	AttendanceAbsent                          // rev_attendance = 0
)

// String returns the display label for the status.
func (s AttendanceStatus) String() string {
	switch s {
	case AttendancePresent:
		return "present"
	case AttendanceAbsent:
		return "absent"
	default:
		return "unset"
	}
}

// RevValue returns the upstream wire value (1 = present, 0 = absent).
// Only meaningful for Present/Absent; Unset rows are either omitted
// (save) or defaulted to absent (update) by the workflow.
func (s AttendanceStatus) RevValue() int {
	if s == AttendancePresent {
		return 1
	}
	return 0
}

// ParseAttendanceStatus maps a display label back onto a status. Only
// "present" and "absent" are accepted; "unset" is not a markable state.
func ParseAttendanceStatus(label string) (AttendanceStatus, bool) {
	switch label {
	case "present":
		return AttendancePresent, true
	case "absent":
		return AttendanceAbsent, true
	}
	return AttendanceUnset, false
}

// StatusFromRev maps the upstream rev_attendance flag onto a status.
func StatusFromRev(rev int) AttendanceStatus {
	if rev == 1 {
		return AttendancePresent
	}
	return AttendanceAbsent
}

// AttendanceRecord is the upstream's stored mark for one student in one
// class session.
type AttendanceRecord struct {
	ID            int64  `json:"id,omitempty"`
	ClassID       int64  `json:"class_id"`
	StudentID     int64  `json:"std_id"`
	RegNo         string `json:"reg_no"`
	RevAttendance int    `json:"rev_attendance"`
}
