package attendance

import (
	"fmt"
	"time"

	"github.com/kaan/campora/internal/pkg/apperrors"
	"github.com/kaan/campora/internal/pkg/helpers"
	"github.com/kaan/campora/internal/upstream"
)

// ScheduleMode selects between the two mutually exclusive scheduling
// shapes of the class form.
type ScheduleMode int

const (
	ModeSingle ScheduleMode = iota
	ModeRecurring
)

// DayTimes is one weekday's start/end pair in the recurring matrix. A day
// is only part of the submission when both values are populated.
type DayTimes struct {
	Start string `json:"start_time"`
	End   string `json:"end_time"`
}

func (d DayTimes) complete() bool { return d.Start != "" && d.End != "" }

// weekdayOrder fixes the wire ordering of the recurring matrix.
var weekdayOrder = []time.Weekday{
	time.Monday, time.Tuesday, time.Wednesday, time.Thursday,
	time.Friday, time.Saturday, time.Sunday,
}

var weekdayNames = map[time.Weekday]string{
	time.Monday:    "monday",
	time.Tuesday:   "tuesday",
	time.Wednesday: "wednesday",
	time.Thursday:  "thursday",
	time.Friday:    "friday",
	time.Saturday:  "saturday",
	time.Sunday:    "sunday",
}

// WeekdayFromName resolves a lowercase weekday name from the form wire
// format.
func WeekdayFromName(name string) (time.Weekday, bool) {
	for day, n := range weekdayNames {
		if n == name {
			return day, true
		}
	}
	return time.Sunday, false
}

// ScheduleForm is the class creation/update form state.
type ScheduleForm struct {
	CourseID        int64
	CourseSectionID int64
	Room            string
	Topic           string
	AttendanceType  string

	Mode ScheduleMode

	// Single-date fields
	ClassDate string
	StartTime string
	EndTime   string

	// Recurring fields
	RangeFrom string
	RangeTo   string
	Days      map[time.Weekday]DayTimes
}

// NewScheduleForm creates an empty single-date form.
func NewScheduleForm() *ScheduleForm {
	return &ScheduleForm{Days: make(map[time.Weekday]DayTimes)}
}

// SetMode toggles the scheduling mode. Switching resets the other mode's
// fields so a stale half-filled matrix can never leak into a single-date
// submission and vice versa.
func (f *ScheduleForm) SetMode(mode ScheduleMode) {
	if f.Mode == mode {
		return
	}
	f.Mode = mode
	if mode == ModeRecurring {
		f.ClassDate = ""
		f.StartTime = ""
		f.EndTime = ""
	} else {
		f.RangeFrom = ""
		f.RangeTo = ""
		f.Days = make(map[time.Weekday]DayTimes)
	}
}

// SetDay records a weekday's time pair in the recurring matrix.
func (f *ScheduleForm) SetDay(day time.Weekday, times DayTimes) {
	if f.Days == nil {
		f.Days = make(map[time.Weekday]DayTimes)
	}
	f.Days[day] = times
}

// Validate checks the form for the active mode. Course and section are
// always mandatory; recurring mode needs at least one day with a valid
// time pair.
func (f *ScheduleForm) Validate() error {
	if f.CourseID <= 0 || f.CourseSectionID <= 0 {
		return fmt.Errorf("%w: course and section are required", apperrors.ErrValidationFailed)
	}

	if f.Mode == ModeSingle {
		if f.ClassDate == "" {
			return fmt.Errorf("%w: class date is required", apperrors.ErrValidationFailed)
		}
		if _, err := helpers.ParseDate(f.ClassDate); err != nil {
			return fmt.Errorf("%w: %v", apperrors.ErrValidationFailed, err)
		}
		if _, err := helpers.ClockMinutes(f.StartTime, f.EndTime); err != nil {
			return fmt.Errorf("%w: %v", apperrors.ErrValidationFailed, err)
		}
		return nil
	}

	if f.RangeFrom == "" || f.RangeTo == "" {
		return fmt.Errorf("%w: date range is required for recurring classes", apperrors.ErrValidationFailed)
	}
	from, err := helpers.ParseDate(f.RangeFrom)
	if err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrValidationFailed, err)
	}
	to, err := helpers.ParseDate(f.RangeTo)
	if err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrValidationFailed, err)
	}
	if to.Before(from) {
		return fmt.Errorf("%w: range end before range start", apperrors.ErrValidationFailed)
	}

	complete := 0
	for day, times := range f.Days {
		if !times.complete() {
			continue
		}
		if _, err := helpers.ClockMinutes(times.Start, times.End); err != nil {
			return fmt.Errorf("%w: %s: %v", apperrors.ErrValidationFailed, weekdayNames[day], err)
		}
		complete++
	}
	if complete == 0 {
		return fmt.Errorf("%w: recurring classes need at least one day with start and end times", apperrors.ErrValidationFailed)
	}
	return nil
}

// DurationLabel renders the single-date duration as "Xh Ym" for display.
// It is user feedback only and never part of a submission. Returns empty
// for incomplete or recurring forms.
func (f *ScheduleForm) DurationLabel() string {
	if f.Mode != ModeSingle {
		return ""
	}
	minutes, err := helpers.ClockMinutes(f.StartTime, f.EndTime)
	if err != nil {
		return ""
	}
	return helpers.FormatMinutes(minutes)
}

// BuildRequest validates the form and shapes the upstream payload. In
// recurring mode only days with both times populated are included, in
// wire weekday order.
func (f *ScheduleForm) BuildRequest() (upstream.CreateClassRequest, error) {
	if err := f.Validate(); err != nil {
		return upstream.CreateClassRequest{}, err
	}

	req := upstream.CreateClassRequest{
		CourseID:        f.CourseID,
		CourseSectionID: f.CourseSectionID,
		Room:            f.Room,
		Topic:           f.Topic,
		AttendanceType:  f.AttendanceType,
	}

	if f.Mode == ModeSingle {
		req.ClassDate = f.ClassDate
		req.StartTime = f.StartTime
		req.EndTime = f.EndTime
		return req, nil
	}

	req.Recurring = true
	req.RangeFrom = f.RangeFrom
	req.RangeTo = f.RangeTo
	for _, day := range weekdayOrder {
		times, ok := f.Days[day]
		if !ok || !times.complete() {
			continue
		}
		req.Days = append(req.Days, upstream.RecurringDay{
			Weekday:   weekdayNames[day],
			StartTime: times.Start,
			EndTime:   times.End,
		})
	}
	return req, nil
}
