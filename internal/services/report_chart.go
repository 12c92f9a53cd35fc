package services

import (
	"github.com/SAP-F-2025/report-service/internal/models"
	"github.com/SAP-F-2025/report-service/internal/repositories"
)

// ProjectGradesChart maps each scored exam to one chart point in query order.
// ClassAverage is left unset.
func ProjectGradesChart(rows []repositories.ScoreRow) []models.GradesChartPoint {
	points := make([]models.GradesChartPoint, 0, len(rows))
	for _, row := range rows {
		points = append(points, models.GradesChartPoint{
			ExamName: row.ExamName,
			Score:    roundTo(row.Percentage, 1),
			Date:     row.ExamDate.Format(models.DateLayout),
		})
	}
	return points
}

// ProjectAttendanceChart emits one point per attendance record. Days without a
// record are not filled in; consumers treat them as having no session.
func ProjectAttendanceChart(records []models.AttendanceRecord) []models.AttendanceChartPoint {
	points := make([]models.AttendanceChartPoint, 0, len(records))
	for _, r := range records {
		points = append(points, models.AttendanceChartPoint{
			Date:   r.Date.Format(models.DateLayout),
			Status: string(r.Status),
			Note:   r.Note,
		})
	}
	return points
}
