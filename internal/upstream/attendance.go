package upstream

import (
	"context"
	"fmt"
	"net/http"

	"github.com/kaan/campora/internal/app/models"
)

// The class-attendance endpoint group keeps the upstream's snake_case
// operation names on the wire; they are fixed by the backend contract.

func (c *Client) GetClass(ctx context.Context, token string, classID int64) (*models.ClassSession, error) {
	var out models.ClassSession
	if err := c.do(ctx, token, http.MethodGet, fmt.Sprintf("/attendance/get_class/%d", classID), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetTeacherCourses(ctx context.Context, token string, teacherID int64) ([]models.Course, error) {
	var out []models.Course
	err := c.do(ctx, token, http.MethodGet, fmt.Sprintf("/attendance/get_teacher_course/%d", teacherID), nil, nil, &out)
	return out, err
}

func (c *Client) GetClassStudents(ctx context.Context, token string, classID int64) ([]models.ClassStudent, error) {
	var out []models.ClassStudent
	err := c.do(ctx, token, http.MethodGet, fmt.Sprintf("/attendance/get_class_students/%d", classID), nil, nil, &out)
	return out, err
}

// GetAttendance fetches existing marks for a class. A 404 here means "no
// attendance recorded yet" and surfaces as ErrUpstreamNotFound; callers
// must treat that as an empty result, not a failure.
func (c *Client) GetAttendance(ctx context.Context, token string, classID int64) ([]models.AttendanceRecord, error) {
	var out []models.AttendanceRecord
	err := c.do(ctx, token, http.MethodGet, fmt.Sprintf("/attendance/get_attendance/%d", classID), nil, nil, &out)
	return out, err
}

// AttendanceEntry is one row of a store/update payload.
type AttendanceEntry struct {
	StudentID int64  `json:"std_id"`
	RegNo     string `json:"reg_no"`
	IsPresent int    `json:"is_present"`
}

// AttendanceSubmission is the body for store_attendance and
// update_attendance.
type AttendanceSubmission struct {
	ClassID int64             `json:"class_id"`
	Entries []AttendanceEntry `json:"attendance"`
}

func (c *Client) StoreAttendance(ctx context.Context, token string, in AttendanceSubmission) error {
	return c.do(ctx, token, http.MethodPost, "/attendance/store_attendance", nil, in, nil)
}

func (c *Client) UpdateAttendance(ctx context.Context, token string, in AttendanceSubmission) error {
	return c.do(ctx, token, http.MethodPost, "/attendance/update_attendance", nil, in, nil)
}

// CreateClassRequest is the body for create_class. Recurring creation
// sends the date range plus the per-weekday time matrix; single-date
// creation sends class_date with one start/end pair.
type CreateClassRequest struct {
	CourseID        int64  `json:"course_id"`
	CourseSectionID int64  `json:"course_section_id"`
	Room            string `json:"room,omitempty"`
	Topic           string `json:"topic,omitempty"`
	AttendanceType  string `json:"attendance_type,omitempty"`

	ClassDate string `json:"class_date,omitempty"`
	StartTime string `json:"start_time,omitempty"`
	EndTime   string `json:"end_time,omitempty"`

	Recurring bool           `json:"recurring,omitempty"`
	RangeFrom string         `json:"range_from,omitempty"`
	RangeTo   string         `json:"range_to,omitempty"`
	Days      []RecurringDay `json:"days,omitempty"`
}

// RecurringDay is one weekday entry of the recurring matrix.
type RecurringDay struct {
	Weekday   string `json:"weekday"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

func (c *Client) CreateClass(ctx context.Context, token string, in CreateClassRequest) (*models.ClassSession, error) {
	var out models.ClassSession
	if err := c.do(ctx, token, http.MethodPost, "/attendance/create_class", nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateClass(ctx context.Context, token string, classID int64, in CreateClassRequest) (*models.ClassSession, error) {
	var out models.ClassSession
	if err := c.do(ctx, token, http.MethodPost, fmt.Sprintf("/attendance/update_class/%d", classID), nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteClass(ctx context.Context, token string, classID int64) error {
	return c.do(ctx, token, http.MethodDelete, fmt.Sprintf("/attendance/delete_class/%d", classID), nil, nil, nil)
}
