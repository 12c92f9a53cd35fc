package postgres

import (
	"context"

	"github.com/SAP-F-2025/report-service/internal/models"
	"github.com/SAP-F-2025/report-service/internal/repositories"
	"gorm.io/gorm"
)

type StudentPostgreSQL struct {
	db *gorm.DB
}

func NewStudentPostgreSQL(db *gorm.DB) repositories.StudentRepository {
	return &StudentPostgreSQL{db: db}
}

func (s StudentPostgreSQL) GetByID(ctx context.Context, id string) (*models.Student, error) {
	var student models.Student
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&student).Error; err != nil {
		return nil, err
	}
	return &student, nil
}

func (s StudentPostgreSQL) GetTenantID(ctx context.Context, id string) (string, error) {
	var student models.Student
	if err := s.db.WithContext(ctx).
		Select("tenant_id").
		Where("id = ?", id).
		First(&student).Error; err != nil {
		return "", err
	}
	return student.TenantID, nil
}
