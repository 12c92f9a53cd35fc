package postgres

import (
	"context"
	"time"

	"github.com/SAP-F-2025/report-service/internal/models"
	"github.com/SAP-F-2025/report-service/internal/repositories"
	"gorm.io/gorm"
)

type ReportPostgreSQL struct {
	db      *gorm.DB
	helpers *SharedHelpers
}

func NewReportPostgreSQL(db *gorm.DB) repositories.ReportRepository {
	return &ReportPostgreSQL{
		db:      db,
		helpers: NewSharedHelpers(db),
	}
}

func (r ReportPostgreSQL) Create(ctx context.Context, report *models.StudentReport) error {
	return r.db.WithContext(ctx).Create(report).Error
}

func (r ReportPostgreSQL) GetByID(ctx context.Context, id string) (*models.StudentReport, error) {
	var report models.StudentReport
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&report).Error; err != nil {
		return nil, err
	}
	return &report, nil
}

func (r ReportPostgreSQL) ListByStudent(ctx context.Context, studentID string, filters repositories.ReportFilters) ([]*models.StudentReport, int64, error) {
	var reports []*models.StudentReport
	var total int64

	// apply filter first
	query := r.db.WithContext(ctx).Model(&models.StudentReport{}).Where("student_id = ?", studentID)
	query = r.helpers.ApplyReportFilters(query, filters)

	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// then apply pagination and sorting
	query = r.helpers.ApplyPaginationAndSort(query, "generated_at", filters.SortOrder, filters.Limit, filters.Offset)

	if err := query.Find(&reports).Error; err != nil {
		return nil, 0, err
	}

	return reports, total, nil
}

func (r ReportPostgreSQL) GetSentAt(ctx context.Context, ids []string) (map[string]*time.Time, error) {
	sentAt := make(map[string]*time.Time, len(ids))
	if len(ids) == 0 {
		return sentAt, nil
	}

	var rows []struct {
		ID     string
		SentAt *time.Time
	}
	if err := r.db.WithContext(ctx).
		Model(&models.StudentReport{}).
		Select("id", "sent_at").
		Where("id IN ?", ids).
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	for _, row := range rows {
		sentAt[row.ID] = row.SentAt
	}
	return sentAt, nil
}
