package validator

import (
	"time"

	"github.com/SAP-F-2025/report-service/internal/models"
)

// BusinessValidator checks rules that span fields and cannot be expressed as tags.
type BusinessValidator struct{}

func NewBusinessValidator() *BusinessValidator {
	return &BusinessValidator{}
}

// Validate dispatches on the concrete type; unknown types have no business rules.
func (bv *BusinessValidator) Validate(s interface{}) ValidationErrors {
	switch v := s.(type) {
	case *models.ReportData:
		return bv.ValidateReportData(v)
	case interface{ ReportPayload() *models.ReportData }:
		if data := v.ReportPayload(); data != nil {
			return bv.ValidateReportData(data)
		}
	}
	return nil
}

// ValidateReportData checks a caller-supplied report before it is persisted.
func (bv *BusinessValidator) ValidateReportData(data *models.ReportData) ValidationErrors {
	var errs ValidationErrors

	start, startErr := time.Parse(models.DateLayout, data.Period.Start)
	end, endErr := time.Parse(models.DateLayout, data.Period.End)
	if startErr == nil && endErr == nil && end.Before(start) {
		errs = append(errs, ValidationError{
			Field:   "period.end",
			Message: "must not be before period.start",
			Value:   data.Period.End,
			Rule:    "period_order",
		})
	}

	a := data.Attendance
	if a.Total < 0 || a.Present < 0 || a.Late < 0 || a.Absent < 0 || a.Present+a.Late+a.Absent > a.Total {
		errs = append(errs, ValidationError{
			Field:   "attendance",
			Message: "status counts must be non-negative and not exceed total",
			Rule:    "attendance_counts",
		})
	}
	if !isRate(a.Rate) {
		errs = append(errs, ValidationError{Field: "attendance.rate", Message: "must be between 0 and 100", Value: a.Rate, Rule: "rate_range"})
	}

	h := data.Homework
	if h.Total < 0 || h.Completed < 0 || h.Completed > h.Total {
		errs = append(errs, ValidationError{
			Field:   "homework",
			Message: "completed must be between 0 and total",
			Rule:    "homework_counts",
		})
	}
	if !isRate(h.Rate) {
		errs = append(errs, ValidationError{Field: "homework.rate", Message: "must be between 0 and 100", Value: h.Rate, Rule: "rate_range"})
	}

	for _, s := range data.Scores {
		if (s.Previous == nil) != (s.Change == nil) {
			errs = append(errs, ValidationError{
				Field:   "scores." + s.Category,
				Message: "previous and change must be set together",
				Rule:    "score_comparison",
			})
		}
	}

	return errs
}

func isRate(v float64) bool {
	return v >= 0 && v <= 100
}
