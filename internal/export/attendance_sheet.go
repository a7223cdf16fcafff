package export

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/kaan/campora/internal/app/attendance"
	"github.com/kaan/campora/internal/app/models"
)

const (
	detailSheet  = "Attendance"
	summarySheet = "Summary"
)

// AttendanceWorkbook renders the attendance sheet for a class: a detail
// page with one row per roster student and a summary page with the
// derived counts. Everything comes from already-fetched data; no network
// calls happen here.
func AttendanceWorkbook(class *models.ClassSession, rows []attendance.RosterRow, counts attendance.Counts) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", detailSheet); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}
	if _, err := f.NewSheet(summarySheet); err != nil {
		return nil, fmt.Errorf("new sheet: %w", err)
	}

	bold, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})

	header := []string{"#", "Reg No", "Student", "Status"}
	for col, h := range header {
		cell := fmt.Sprintf("%s1", colName(col+1))
		if err := f.SetCellStr(detailSheet, cell, h); err != nil {
			return nil, fmt.Errorf("set cell %s: %w", cell, err)
		}
	}
	end := colName(len(header)) + "1"
	_ = f.SetCellStyle(detailSheet, "A1", end, bold)
	_ = f.AutoFilter(detailSheet, "A1:"+end, nil)

	for i, row := range rows {
		r := i + 2
		_ = f.SetCellInt(detailSheet, fmt.Sprintf("A%d", r), i+1)
		_ = f.SetCellStr(detailSheet, fmt.Sprintf("B%d", r), row.Student.RegNo)
		_ = f.SetCellStr(detailSheet, fmt.Sprintf("C%d", r), row.Student.FullName())
		_ = f.SetCellStr(detailSheet, fmt.Sprintf("D%d", r), row.Status.String())
	}
	_ = f.SetColWidth(detailSheet, "B", "C", 24)
	_ = f.SetColWidth(detailSheet, "D", "D", 12)

	summary := [][]interface{}{
		{"Class date", classField(class, func(c *models.ClassSession) string { return c.ClassDate })},
		{"Time", classTime(class)},
		{"Room", classField(class, func(c *models.ClassSession) string { return c.Room })},
		{"Topic", classField(class, func(c *models.ClassSession) string { return c.Topic })},
		{"Total students", counts.Total},
		{"Present", counts.Present},
		{"Absent", counts.Absent},
		{"Unmarked", counts.Unset},
	}
	for i, pair := range summary {
		r := i + 1
		_ = f.SetCellValue(summarySheet, fmt.Sprintf("A%d", r), pair[0])
		_ = f.SetCellValue(summarySheet, fmt.Sprintf("B%d", r), pair[1])
	}
	_ = f.SetCellStyle(summarySheet, "A1", fmt.Sprintf("A%d", len(summary)), bold)
	_ = f.SetColWidth(summarySheet, "A", "A", 18)
	_ = f.SetColWidth(summarySheet, "B", "B", 24)

	return f, nil
}

// SaveTemp writes the workbook into dir under a collision-free name and
// returns the full path.
func SaveTemp(f *excelize.File, dir string, classID int64) (string, error) {
	name := fmt.Sprintf("attendance_%d_%s_%s.xlsx",
		classID, time.Now().Format("2006-01-02"), uuid.New().String()[:8])
	path := filepath.Join(dir, name)
	return path, f.SaveAs(path)
}

func classField(class *models.ClassSession, get func(*models.ClassSession) string) string {
	if class == nil {
		return ""
	}
	return get(class)
}

func classTime(class *models.ClassSession) string {
	if class == nil || class.StartTime == "" {
		return ""
	}
	return class.StartTime + " - " + class.EndTime
}

// colName converts a 1-based column index to its letter name.
func colName(n int) string {
	s := ""
	for n > 0 {
		n--
		s = string(rune('A'+(n%26))) + s
		n /= 26
	}
	return s
}
