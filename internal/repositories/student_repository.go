package repositories

import (
	"context"

	"github.com/SAP-F-2025/report-service/internal/models"
)

// StudentRepository is read-only; student records are owned by the roster module.
type StudentRepository interface {
	GetByID(ctx context.Context, id string) (*models.Student, error)
	// GetTenantID returns an empty string, not an error, for a student row
	// that carries no tenant.
	GetTenantID(ctx context.Context, id string) (string, error)
}
