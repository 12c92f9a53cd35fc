package services

import (
	"time"

	"github.com/SAP-F-2025/report-service/internal/models"
)

// ===== REQUEST DTOs =====

// MonthlyPeriodRequest selects a calendar month for reports and attendance stats.
type MonthlyPeriodRequest struct {
	Year  int `form:"year" json:"year" validate:"required,min=1,max=9999"`
	Month int `form:"month" json:"month" validate:"required,calendar_month"`
}

type GenerateRangeReportRequest struct {
	Start string `form:"start" json:"start" validate:"required,datetime=2006-01-02"`
	End   string `form:"end" json:"end" validate:"required,datetime=2006-01-02"`
}

type SaveReportRequest struct {
	ReportType models.ReportType  `json:"report_type" validate:"required,report_type"`
	Data       *models.ReportData `json:"data" validate:"required"`
}

// ReportPayload exposes the report body to the business validator.
func (r *SaveReportRequest) ReportPayload() *models.ReportData {
	return r.Data
}

type ListReportsRequest struct {
	ReportType string `form:"report_type" json:"report_type" validate:"omitempty,report_type"`
	DateFrom   string `form:"date_from" json:"date_from" validate:"omitempty,datetime=2006-01-02"`
	DateTo     string `form:"date_to" json:"date_to" validate:"omitempty,datetime=2006-01-02"`
	Limit      int    `form:"limit" json:"limit" validate:"omitempty,min=1,max=100"`
	Offset     int    `form:"offset" json:"offset" validate:"omitempty,min=0"`
	SortOrder  string `form:"sort_order" json:"sort_order" validate:"omitempty,oneof=asc desc"`
}

// ===== RESPONSE DTOs =====

// SavedReport is a persisted report with its document decoded.
type SavedReport struct {
	ID              string             `json:"id"`
	TenantID        string             `json:"tenant_id"`
	StudentID       string             `json:"student_id"`
	ReportType      models.ReportType  `json:"report_type"`
	PeriodStart     string             `json:"period_start"`
	PeriodEnd       string             `json:"period_end"`
	GeneratedAt     time.Time          `json:"generated_at"`
	SentAt          *time.Time         `json:"sent_at"`
	DocumentVersion int                `json:"document_version"`
	Data            *models.ReportData `json:"data"`
}

type ReportSummary struct {
	ID          string            `json:"id"`
	ReportType  models.ReportType `json:"report_type"`
	PeriodStart string            `json:"period_start"`
	PeriodEnd   string            `json:"period_end"`
	GeneratedAt time.Time         `json:"generated_at"`
	SentAt      *time.Time        `json:"sent_at"`
}

type ReportListResponse struct {
	Reports []ReportSummary `json:"reports"`
	Total   int64           `json:"total"`
	Limit   int             `json:"limit"`
	Offset  int             `json:"offset"`
}

type SaveReportResponse struct {
	ID string `json:"id"`
}
