package postgres

import (
	"strings"

	"github.com/SAP-F-2025/report-service/internal/repositories"
	"gorm.io/gorm"
)

// SharedHelpers holds query fragments reused across the PostgreSQL repositories.
type SharedHelpers struct {
	db *gorm.DB
}

func NewSharedHelpers(db *gorm.DB) *SharedHelpers {
	return &SharedHelpers{db: db}
}

func (h *SharedHelpers) ApplyReportFilters(query *gorm.DB, filters repositories.ReportFilters) *gorm.DB {
	if filters.ReportType != nil {
		query = query.Where("report_type = ?", *filters.ReportType)
	}
	if filters.DateFrom != nil {
		query = query.Where("period_start >= ?", *filters.DateFrom)
	}
	if filters.DateTo != nil {
		query = query.Where("period_end <= ?", *filters.DateTo)
	}
	return query
}

// ApplyPaginationAndSort orders by column; sortBy must come from a fixed whitelist, never user input.
func (h *SharedHelpers) ApplyPaginationAndSort(query *gorm.DB, sortBy, sortOrder string, limit, offset int) *gorm.DB {
	order := "DESC"
	if strings.EqualFold(sortOrder, "asc") {
		order = "ASC"
	}
	query = query.Order(sortBy + " " + order)

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}
	return query
}
