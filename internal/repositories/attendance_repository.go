package repositories

import (
	"context"
	"time"

	"github.com/SAP-F-2025/report-service/internal/models"
)

type AttendanceRepository interface {
	// GetByStudentInRange returns records with date in [start, end], oldest first.
	GetByStudentInRange(ctx context.Context, studentID string, start, end time.Time) ([]models.AttendanceRecord, error)
	GetStats(ctx context.Context, studentID string, start, end time.Time) (*AttendanceStats, error)
}
