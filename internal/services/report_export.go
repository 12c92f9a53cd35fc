package services

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

const (
	summarySheet = "Summary"
	scoresSheet  = "Scores"
	attendSheet  = "Attendance"
)

// renderReportWorkbook lays a saved report out as a printable workbook with
// one sheet each for the summary, the per-test scores and the attendance log.
func renderReportWorkbook(report *SavedReport) ([]byte, error) {
	if report.Data == nil {
		return nil, fmt.Errorf("report %s has no data", report.ID)
	}
	data := report.Data

	f := excelize.NewFile()
	defer f.Close()

	// Rename the default sheet so the summary opens first
	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return nil, fmt.Errorf("failed to create Excel sheet: %w", err)
	}

	summary := [][]interface{}{
		{"Student", data.Student.Name},
		{"Student Code", data.Student.StudentCode},
		{"Grade", data.Student.Grade},
		{"Report Type", string(report.ReportType)},
		{"Period", fmt.Sprintf("%s ~ %s", data.Period.Start, data.Period.End)},
		{"Attendance", fmt.Sprintf("%d/%d (late %d, absent %d)", data.Attendance.Present, data.Attendance.Total, data.Attendance.Late, data.Attendance.Absent)},
		{"Attendance Rate", data.Attendance.Rate},
		{"Homework", fmt.Sprintf("%d/%d", data.Homework.Completed, data.Homework.Total)},
		{"Homework Rate", data.Homework.Rate},
		{"Comment", data.InstructorComment},
	}
	if err := writeRows(f, summarySheet, 1, summary); err != nil {
		return nil, err
	}

	if _, err := f.NewSheet(scoresSheet); err != nil {
		return nil, fmt.Errorf("failed to create Excel sheet: %w", err)
	}
	scoreRows := [][]interface{}{{"Category", "Current", "Previous", "Change", "Test", "Date", "Percentage", "Feedback"}}
	for _, score := range data.Scores {
		for _, test := range score.Tests {
			scoreRows = append(scoreRows, []interface{}{
				score.Category,
				score.Current,
				optionalFloat(score.Previous),
				optionalFloat(score.Change),
				test.Name,
				test.Date,
				test.Percentage,
				optionalString(test.Feedback),
			})
		}
	}
	if err := writeRows(f, scoresSheet, 1, scoreRows); err != nil {
		return nil, err
	}

	if _, err := f.NewSheet(attendSheet); err != nil {
		return nil, fmt.Errorf("failed to create Excel sheet: %w", err)
	}
	attendRows := [][]interface{}{{"Date", "Status", "Note"}}
	for _, point := range data.AttendanceChartData {
		attendRows = append(attendRows, []interface{}{point.Date, point.Status, optionalString(point.Note)})
	}
	if err := writeRows(f, attendSheet, 1, attendRows); err != nil {
		return nil, err
	}

	f.SetActiveSheet(0)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write Excel file: %w", err)
	}
	return buf.Bytes(), nil
}

func writeRows(f *excelize.File, sheet string, startRow int, rows [][]interface{}) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, startRow+i)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write %s row %d: %w", sheet, startRow+i, err)
		}
	}
	return nil
}

func optionalFloat(v *float64) interface{} {
	if v == nil {
		return ""
	}
	return *v
}

func optionalString(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}
