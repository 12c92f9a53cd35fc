package pkg

import (
	"fmt"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/SAP-F-2025/report-service/internal/config"
	"github.com/SAP-F-2025/report-service/internal/models"
)

const (
	maxOpenConns = 25
	maxIdleConns = 10
)

func InitDatabase(cfg *config.Config, log *zap.Logger) (*gorm.DB, error) {
	logLevel := logger.Warn
	if cfg.IsProduction() {
		logLevel = logger.Error
	}

	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}
	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("database ping failed: %w", err)
	}

	log.Info("database connected")
	return db, nil
}

// AutoMigrate creates or updates the tables this service reads and writes.
// In shared deployments the roster tables are owned elsewhere, so this only
// runs when AUTO_MIGRATE is set.
func AutoMigrate(db *gorm.DB, log *zap.Logger) error {
	tables := []interface{}{
		&models.Student{},
		&models.AttendanceRecord{},
		&models.Todo{},
		&models.ExamCategory{},
		&models.Exam{},
		&models.ExamScore{},
		&models.StudentReport{},
	}
	if err := db.AutoMigrate(tables...); err != nil {
		return fmt.Errorf("auto migrate failed: %w", err)
	}

	log.Info("database schema migrated", zap.Int("tables", len(tables)))
	return nil
}
