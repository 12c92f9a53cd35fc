package postgres

import (
	"context"
	"time"

	"github.com/SAP-F-2025/report-service/internal/models"
	"github.com/SAP-F-2025/report-service/internal/repositories"
	"gorm.io/gorm"
)

type TodoPostgreSQL struct {
	db *gorm.DB
}

func NewTodoPostgreSQL(db *gorm.DB) repositories.TodoRepository {
	return &TodoPostgreSQL{db: db}
}

func (t TodoPostgreSQL) GetByStudentDueInRange(ctx context.Context, studentID string, start, end time.Time) ([]models.Todo, error) {
	todos := []models.Todo{}
	if err := t.db.WithContext(ctx).
		Where("student_id = ? AND due_date >= ? AND due_date <= ?", studentID, start, end).
		Order("due_date ASC").
		Find(&todos).Error; err != nil {
		return nil, err
	}
	return todos, nil
}
