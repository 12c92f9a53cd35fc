package services

import (
	"log/slog"
	"time"

	"github.com/SAP-F-2025/report-service/internal/cache"
	"github.com/SAP-F-2025/report-service/internal/events"
	"github.com/SAP-F-2025/report-service/internal/repositories"
	"github.com/SAP-F-2025/report-service/internal/validator"
)

// ServiceManager owns the services exposed to the HTTP layer.
type ServiceManager interface {
	Report() ReportService
}

type serviceManager struct {
	reportService ReportService
}

type ServiceManagerConfig struct {
	Cache          cache.CacheService
	EventPublisher events.EventPublisher
	CacheTTL       time.Duration
}

func NewServiceManager(repo repositories.Repository, logger *slog.Logger, validator *validator.Validator, config ServiceManagerConfig) ServiceManager {
	return &serviceManager{
		reportService: NewReportService(repo, config.Cache, config.EventPublisher, logger, validator, config.CacheTTL),
	}
}

func (sm *serviceManager) Report() ReportService {
	return sm.reportService
}
