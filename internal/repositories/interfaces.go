package repositories

import (
	"time"

	"github.com/SAP-F-2025/report-service/internal/models"
)

// ===== SHARED FILTER STRUCTS =====

type ReportFilters struct {
	ReportType *models.ReportType `json:"report_type"`
	DateFrom   *time.Time         `json:"date_from"`
	DateTo     *time.Time         `json:"date_to"`
	Limit      int                `json:"limit"`
	Offset     int                `json:"offset"`
	SortOrder  string             `json:"sort_order"` // "asc", "desc"
}

// ===== SHARED ROW STRUCTS =====

// ScoreRow is a scored exam result joined with its exam and category.
type ScoreRow struct {
	Percentage    float64   `json:"percentage" gorm:"column:percentage"`
	Feedback      *string   `json:"feedback" gorm:"column:feedback"`
	ExamName      string    `json:"exam_name" gorm:"column:exam_name"`
	ExamDate      time.Time `json:"exam_date" gorm:"column:exam_date"`
	CategoryCode  string    `json:"category_code" gorm:"column:category_code"`
	CategoryLabel string    `json:"category_label" gorm:"column:category_label"`
}

type PreviousScoreRow struct {
	Percentage   float64 `json:"percentage" gorm:"column:percentage"`
	CategoryCode string  `json:"category_code" gorm:"column:category_code"`
}

// ===== SHARED STATISTICS STRUCTS =====

// AttendanceStats counts late arrivals as attended, unlike the report summary.
type AttendanceStats struct {
	Total        int     `json:"total"`
	Present      int     `json:"present"`
	Late         int     `json:"late"`
	Absent       int     `json:"absent"`
	Excused      int     `json:"excused"`
	AttendedRate float64 `json:"attended_rate"`
}
