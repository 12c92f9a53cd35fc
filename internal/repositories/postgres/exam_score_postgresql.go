package postgres

import (
	"context"
	"time"

	"github.com/SAP-F-2025/report-service/internal/repositories"
	"gorm.io/gorm"
)

type ExamScorePostgreSQL struct {
	db *gorm.DB
}

func NewExamScorePostgreSQL(db *gorm.DB) repositories.ExamScoreRepository {
	return &ExamScorePostgreSQL{db: db}
}

func (e ExamScorePostgreSQL) GetCurrentScores(ctx context.Context, studentID string, start, end time.Time) ([]repositories.ScoreRow, error) {
	var rows []repositories.ScoreRow
	if err := e.scoredInRange(ctx, studentID, start, end).
		Select("exam_scores.percentage, exam_scores.feedback, exams.name AS exam_name, " +
			"exams.exam_date AS exam_date, exam_categories.code AS category_code, " +
			"exam_categories.label AS category_label").
		Order("exam_scores.created_at DESC").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []repositories.ScoreRow{}
	}
	return rows, nil
}

func (e ExamScorePostgreSQL) GetPreviousScores(ctx context.Context, studentID string, start, end time.Time) ([]repositories.PreviousScoreRow, error) {
	var rows []repositories.PreviousScoreRow
	if err := e.scoredInRange(ctx, studentID, start, end).
		Select("exam_scores.percentage, exam_categories.code AS category_code").
		Order("exam_scores.created_at DESC").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []repositories.PreviousScoreRow{}
	}
	return rows, nil
}

// scoredInRange filters on the exam's own date and skips unscored results.
func (e ExamScorePostgreSQL) scoredInRange(ctx context.Context, studentID string, start, end time.Time) *gorm.DB {
	return e.db.WithContext(ctx).
		Table("exam_scores").
		Joins("JOIN exams ON exams.id = exam_scores.exam_id").
		Joins("JOIN exam_categories ON exam_categories.id = exams.category_id").
		Where("exam_scores.student_id = ?", studentID).
		Where("exam_scores.percentage IS NOT NULL").
		Where("exams.exam_date >= ? AND exams.exam_date <= ?", start, end)
}
