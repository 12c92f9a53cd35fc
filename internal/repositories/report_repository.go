package repositories

import (
	"context"
	"time"

	"github.com/SAP-F-2025/report-service/internal/models"
)

// ReportRepository persists generated reports. Create never upserts: saving the
// same student and period twice yields two rows.
type ReportRepository interface {
	Create(ctx context.Context, report *models.StudentReport) error
	GetByID(ctx context.Context, id string) (*models.StudentReport, error)
	ListByStudent(ctx context.Context, studentID string, filters ReportFilters) ([]*models.StudentReport, int64, error)
	// GetSentAt returns the current sent_at of each existing report, keyed by id.
	// Ids with no row are absent from the map.
	GetSentAt(ctx context.Context, ids []string) (map[string]*time.Time, error)
}
