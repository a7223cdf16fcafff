package attendance

import (
	"errors"
	"testing"
	"time"

	"github.com/kaan/campora/internal/pkg/apperrors"
)

func validSingleForm() *ScheduleForm {
	f := NewScheduleForm()
	f.CourseID = 5
	f.CourseSectionID = 2
	f.ClassDate = "2026-09-14"
	f.StartTime = "09:00"
	f.EndTime = "10:30"
	return f
}

func TestValidateRequiresCourseAndSection(t *testing.T) {
	f := NewScheduleForm()
	f.ClassDate = "2026-09-14"
	f.StartTime = "09:00"
	f.EndTime = "10:30"
	if err := f.Validate(); !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Fatalf("expected validation failure, got %v", err)
	}
}

func TestValidateSingleDate(t *testing.T) {
	f := validSingleForm()
	if err := f.Validate(); err != nil {
		t.Fatalf("valid form rejected: %v", err)
	}

	f.EndTime = "08:00" // before start
	if err := f.Validate(); !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Fatalf("expected validation failure for inverted times, got %v", err)
	}
}

func TestValidateRecurringNeedsCompleteDay(t *testing.T) {
	f := NewScheduleForm()
	f.CourseID = 5
	f.CourseSectionID = 2
	f.SetMode(ModeRecurring)
	f.RangeFrom = "2026-09-01"
	f.RangeTo = "2026-12-20"
	f.SetDay(time.Monday, DayTimes{Start: "09:00"}) // missing end

	if err := f.Validate(); !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Fatalf("expected validation failure with no complete day, got %v", err)
	}

	f.SetDay(time.Wednesday, DayTimes{Start: "14:00", End: "15:30"})
	if err := f.Validate(); err != nil {
		t.Fatalf("one complete day should validate: %v", err)
	}
}

func TestSetModeResetsOtherModeFields(t *testing.T) {
	f := validSingleForm()
	f.SetMode(ModeRecurring)
	if f.ClassDate != "" || f.StartTime != "" || f.EndTime != "" {
		t.Fatal("single-date fields leaked into recurring mode")
	}

	f.RangeFrom = "2026-09-01"
	f.RangeTo = "2026-12-20"
	f.SetDay(time.Friday, DayTimes{Start: "09:00", End: "10:00"})
	f.SetMode(ModeSingle)
	if f.RangeFrom != "" || f.RangeTo != "" || len(f.Days) != 0 {
		t.Fatal("recurring fields leaked into single mode")
	}
}

func TestBuildRequestIncludesOnlyCompleteDaysInOrder(t *testing.T) {
	f := NewScheduleForm()
	f.CourseID = 5
	f.CourseSectionID = 2
	f.SetMode(ModeRecurring)
	f.RangeFrom = "2026-09-01"
	f.RangeTo = "2026-12-20"
	f.SetDay(time.Friday, DayTimes{Start: "09:00", End: "10:00"})
	f.SetDay(time.Monday, DayTimes{Start: "11:00", End: "12:00"})
	f.SetDay(time.Tuesday, DayTimes{Start: "08:00"}) // incomplete, dropped

	req, err := f.BuildRequest()
	if err != nil {
		t.Fatal(err)
	}
	if !req.Recurring {
		t.Fatal("recurring flag missing")
	}
	if len(req.Days) != 2 {
		t.Fatalf("expected 2 complete days, got %d", len(req.Days))
	}
	if req.Days[0].Weekday != "monday" || req.Days[1].Weekday != "friday" {
		t.Fatalf("days out of wire order: %v", req.Days)
	}
}

func TestBuildRequestSingle(t *testing.T) {
	f := validSingleForm()
	req, err := f.BuildRequest()
	if err != nil {
		t.Fatal(err)
	}
	if req.Recurring || len(req.Days) != 0 {
		t.Fatalf("single submission carries recurring fields: %+v", req)
	}
	if req.ClassDate != "2026-09-14" || req.StartTime != "09:00" || req.EndTime != "10:30" {
		t.Fatalf("single fields wrong: %+v", req)
	}
}

func TestDurationLabel(t *testing.T) {
	f := validSingleForm()
	if got := f.DurationLabel(); got != "1h 30m" {
		t.Fatalf("duration label: got %q", got)
	}

	f.StartTime = ""
	if got := f.DurationLabel(); got != "" {
		t.Fatalf("incomplete form must yield empty label, got %q", got)
	}

	f = validSingleForm()
	f.SetMode(ModeRecurring)
	if got := f.DurationLabel(); got != "" {
		t.Fatalf("recurring form must yield empty label, got %q", got)
	}
}

func TestWeekdayFromName(t *testing.T) {
	day, ok := WeekdayFromName("wednesday")
	if !ok || day != time.Wednesday {
		t.Fatalf("got %v %v", day, ok)
	}
	if _, ok := WeekdayFromName("someday"); ok {
		t.Fatal("unknown weekday accepted")
	}
}
