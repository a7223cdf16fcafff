package dto

// MarkRequest sets one student's status in the loaded session.
type MarkRequest struct {
	StudentID int64  `json:"std_id" binding:"required,gt=0"`
	Status    string `json:"status" binding:"required,oneof=present absent"`
}

// MarkAllRequest overwrites the whole roster with one status.
type MarkAllRequest struct {
	Status string `json:"status" binding:"required,oneof=present absent"`
}

// AttendanceStateResponse is the loaded session view.
type AttendanceStateResponse struct {
	ClassID       int64       `json:"class_id"`
	RecordState   string      `json:"record_state"`
	HasAttendance bool        `json:"has_attendance"`
	Rows          interface{} `json:"rows"`
	Counts        interface{} `json:"counts"`
}

// DayTimesRequest is one weekday's start/end pair of the recurring matrix.
type DayTimesRequest struct {
	StartTime string `json:"start_time" binding:"omitempty,clock"`
	EndTime   string `json:"end_time" binding:"omitempty,clock"`
}

// ClassRequest is the class creation/update form. Exactly one scheduling
// shape applies: single-date fields, or recurring with the weekday matrix.
type ClassRequest struct {
	CourseID        int64  `json:"course_id" binding:"required,gt=0"`
	CourseSectionID int64  `json:"course_section_id" binding:"required,gt=0"`
	Room            string `json:"room"`
	Topic           string `json:"topic"`
	AttendanceType  string `json:"attendance_type"`

	Recurring bool `json:"recurring"`

	ClassDate string `json:"class_date" binding:"omitempty,dateonly"`
	StartTime string `json:"start_time" binding:"omitempty,clock"`
	EndTime   string `json:"end_time" binding:"omitempty,clock"`

	RangeFrom string                     `json:"range_from" binding:"omitempty,dateonly"`
	RangeTo   string                     `json:"range_to" binding:"omitempty,dateonly"`
	Days      map[string]DayTimesRequest `json:"days"`
}

// PickerQueryRequest filters a picker level's loaded candidates.
type PickerQueryRequest struct {
	Level string `json:"level" binding:"required"`
	Query string `json:"query"`
}

// PickerSelectRequest picks an option at a picker level.
type PickerSelectRequest struct {
	Level string `json:"level" binding:"required"`
	ID    int64  `json:"id" binding:"required,gt=0"`
}

// PickerOptionsResponse is a level's current matches. Loaded false means
// the level is still disabled; loaded true with zero options means "no
// results found" and is rendered explicitly.
type PickerOptionsResponse struct {
	Level   string      `json:"level"`
	Loaded  bool        `json:"loaded"`
	Options interface{} `json:"options"`
}
