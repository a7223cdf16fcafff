package export

import (
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/kaan/campora/internal/app/attendance"
	"github.com/kaan/campora/internal/app/models"
)

func sampleRows() []attendance.RosterRow {
	return []attendance.RosterRow{
		{
			Student: models.ClassStudent{StudentID: 1, RegNo: "2021-CS-001", FirstName: "Ada", LastName: "Lovelace"},
			Status:  models.AttendancePresent, Label: "present",
		},
		{
			Student: models.ClassStudent{StudentID: 2, RegNo: "2021-CS-002", FirstName: "Alan", LastName: "Turing"},
			Status:  models.AttendanceAbsent, Label: "absent",
		},
		{
			Student: models.ClassStudent{StudentID: 3, RegNo: "2021-CS-003", FirstName: "Grace", LastName: "Hopper"},
			Status:  models.AttendanceUnset, Label: "unset",
		},
	}
}

func TestAttendanceWorkbook(t *testing.T) {
	class := &models.ClassSession{
		ID: 42, ClassDate: "2026-09-14", StartTime: "09:00", EndTime: "10:30",
		Room: "B204", Topic: "Graphs",
	}
	counts := attendance.Counts{Present: 1, Absent: 1, Unset: 1, Total: 3}

	wb, err := AttendanceWorkbook(class, sampleRows(), counts)
	if err != nil {
		t.Fatal(err)
	}

	path, err := SaveTemp(wb, t.TempDir(), 42)
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer f.Close()

	get := func(sheet, cell string) string {
		t.Helper()
		v, err := f.GetCellValue(sheet, cell)
		if err != nil {
			t.Fatalf("get %s!%s: %v", sheet, cell, err)
		}
		return v
	}

	if got := get("Attendance", "B1"); got != "Reg No" {
		t.Fatalf("header B1 = %q", got)
	}
	if got := get("Attendance", "C2"); got != "Ada Lovelace" {
		t.Fatalf("C2 = %q", got)
	}
	if got := get("Attendance", "D2"); got != "present" {
		t.Fatalf("D2 = %q", got)
	}
	if got := get("Attendance", "D4"); got != "unset" {
		t.Fatalf("D4 = %q", got)
	}

	if got := get("Summary", "B1"); got != "2026-09-14" {
		t.Fatalf("summary class date = %q", got)
	}
	if got := get("Summary", "B2"); got != "09:00 - 10:30" {
		t.Fatalf("summary time = %q", got)
	}
	if got := get("Summary", "B5"); got != "3" {
		t.Fatalf("summary total = %q", got)
	}
	if got := get("Summary", "B6"); got != "1" {
		t.Fatalf("summary present = %q", got)
	}
}

func TestSaveTempNamesAreUnique(t *testing.T) {
	dir := t.TempDir()
	counts := attendance.Counts{}

	wb1, err := AttendanceWorkbook(nil, nil, counts)
	if err != nil {
		t.Fatal(err)
	}
	wb2, err := AttendanceWorkbook(nil, nil, counts)
	if err != nil {
		t.Fatal(err)
	}

	p1, err := SaveTemp(wb1, dir, 1)
	if err != nil {
		t.Fatal(err)
	}
	p2, err := SaveTemp(wb2, dir, 1)
	if err != nil {
		t.Fatal(err)
	}
	if p1 == p2 {
		t.Fatalf("expected unique export paths, both %q", p1)
	}
}
