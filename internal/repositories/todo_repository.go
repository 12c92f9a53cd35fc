package repositories

import (
	"context"
	"time"

	"github.com/SAP-F-2025/report-service/internal/models"
)

type TodoRepository interface {
	GetByStudentDueInRange(ctx context.Context, studentID string, start, end time.Time) ([]models.Todo, error)
}
