package postgres

import (
	"context"
	"math"
	"time"

	"github.com/SAP-F-2025/report-service/internal/models"
	"github.com/SAP-F-2025/report-service/internal/repositories"
	"gorm.io/gorm"
)

type AttendancePostgreSQL struct {
	db *gorm.DB
}

func NewAttendancePostgreSQL(db *gorm.DB) repositories.AttendanceRepository {
	return &AttendancePostgreSQL{db: db}
}

func (a AttendancePostgreSQL) GetByStudentInRange(ctx context.Context, studentID string, start, end time.Time) ([]models.AttendanceRecord, error) {
	records := []models.AttendanceRecord{}
	if err := a.db.WithContext(ctx).
		Where("student_id = ? AND date >= ? AND date <= ?", studentID, start, end).
		Order("date ASC").
		Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (a AttendancePostgreSQL) GetStats(ctx context.Context, studentID string, start, end time.Time) (*repositories.AttendanceStats, error) {
	var counts []struct {
		Status models.AttendanceStatus
		Count  int
	}
	if err := a.db.WithContext(ctx).
		Model(&models.AttendanceRecord{}).
		Select("status, COUNT(*) AS count").
		Where("student_id = ? AND date >= ? AND date <= ?", studentID, start, end).
		Group("status").
		Scan(&counts).Error; err != nil {
		return nil, err
	}

	stats := &repositories.AttendanceStats{}
	for _, c := range counts {
		stats.Total += c.Count
		switch c.Status {
		case models.AttendancePresent:
			stats.Present = c.Count
		case models.AttendanceLate:
			stats.Late = c.Count
		case models.AttendanceAbsent:
			stats.Absent = c.Count
		case models.AttendanceExcused:
			stats.Excused = c.Count
		}
	}

	if stats.Total > 0 {
		stats.AttendedRate = math.Round(float64(stats.Present+stats.Late) / float64(stats.Total) * 100)
	}
	return stats, nil
}
