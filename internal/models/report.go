package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ReportType string

const (
	ReportMonthly ReportType = "monthly"
	ReportWeekly  ReportType = "weekly"
)

func (t ReportType) IsValid() bool {
	switch t {
	case ReportMonthly, ReportWeekly:
		return true
	}
	return false
}

// StudentReport is a persisted report. Content holds an encoded ReportDocument.
// Rows are append-only here; SentAt is owned by the guardian notification flow.
type StudentReport struct {
	ID          string         `json:"id" gorm:"primaryKey;size:36"`
	TenantID    string         `json:"tenant_id" gorm:"not null;size:255;index"`
	StudentID   string         `json:"student_id" gorm:"not null;size:255;index:idx_report_student_period"`
	ReportType  ReportType     `json:"report_type" gorm:"not null;size:20"`
	PeriodStart time.Time      `json:"period_start" gorm:"type:date;not null;index:idx_report_student_period"`
	PeriodEnd   time.Time      `json:"period_end" gorm:"type:date;not null"`
	Content     datatypes.JSON `json:"content" gorm:"type:jsonb;not null"`
	GeneratedAt time.Time      `json:"generated_at" gorm:"autoCreateTime"`
	SentAt      *time.Time     `json:"sent_at"`
}

func (StudentReport) TableName() string {
	return "student_reports"
}

func (r *StudentReport) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}
