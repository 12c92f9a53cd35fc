package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SAP-F-2025/report-service/internal/models"
)

func validReportData() *models.ReportData {
	previous, change := 80.0, 8.0
	return &models.ReportData{
		Student:    models.ReportStudent{ID: "stu-1", Name: "김민준"},
		Period:     models.ReportPeriod{Start: "2024-10-01", End: "2024-10-31"},
		Attendance: models.AttendanceSummary{Total: 20, Present: 17, Late: 1, Absent: 2, Rate: 85},
		Homework:   models.HomeworkSummary{Total: 5, Completed: 3, Rate: 60},
		Scores: []models.CategoryScore{
			{Category: "Vocabulary", Current: 88, Previous: &previous, Change: &change},
			{Category: "Reading", Current: 75},
		},
	}
}

func rules(errs ValidationErrors) []string {
	out := make([]string, 0, len(errs))
	for _, e := range errs {
		out = append(out, e.Rule)
	}
	return out
}

func TestValidateReportData(t *testing.T) {
	previous := 70.0

	tests := []struct {
		name   string
		mutate func(d *models.ReportData)
		rules  []string
		field  string
	}{
		{"valid report", func(d *models.ReportData) {}, nil, ""},
		{"single day period", func(d *models.ReportData) { d.Period.End = d.Period.Start }, nil, ""},
		{"end before start", func(d *models.ReportData) { d.Period.End = "2024-09-30" }, []string{"period_order"}, "period.end"},
		{"negative attendance count", func(d *models.ReportData) { d.Attendance.Late = -1 }, []string{"attendance_counts"}, "attendance"},
		{"statuses exceed total", func(d *models.ReportData) { d.Attendance.Absent = 3 }, []string{"attendance_counts"}, "attendance"},
		{"attendance rate above 100", func(d *models.ReportData) { d.Attendance.Rate = 100.1 }, []string{"rate_range"}, "attendance.rate"},
		{"homework rate below 0", func(d *models.ReportData) { d.Homework.Rate = -1 }, []string{"rate_range"}, "homework.rate"},
		{"completed exceeds total", func(d *models.ReportData) { d.Homework.Completed = 6 }, []string{"homework_counts"}, "homework"},
		{"negative homework total", func(d *models.ReportData) { d.Homework.Total = -1 }, []string{"homework_counts"}, "homework"},
		{"previous without change", func(d *models.ReportData) { d.Scores[1].Previous = &previous }, []string{"score_comparison"}, "scores.Reading"},
		{"change without previous", func(d *models.ReportData) { d.Scores[0].Previous = nil }, []string{"score_comparison"}, "scores.Vocabulary"},
		{"boundary rates", func(d *models.ReportData) { d.Attendance.Rate, d.Homework.Rate = 100, 0 }, nil, ""},
	}

	bv := NewBusinessValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := validReportData()
			tt.mutate(data)

			errs := bv.ValidateReportData(data)

			if tt.rules == nil {
				assert.Empty(t, errs)
				return
			}
			assert.Equal(t, tt.rules, rules(errs))
			assert.Equal(t, tt.field, errs[0].Field)
		})
	}
}

func TestValidateReportData_CollectsEveryViolation(t *testing.T) {
	data := validReportData()
	data.Period.End = "2024-09-01"
	data.Attendance.Rate = 120
	data.Homework.Completed = 9

	errs := NewBusinessValidator().ValidateReportData(data)

	assert.Equal(t, []string{"period_order", "rate_range", "homework_counts"}, rules(errs))
}

type payloadRequest struct {
	Data *models.ReportData
}

func (r *payloadRequest) ReportPayload() *models.ReportData { return r.Data }

func TestBusinessValidator_Dispatch(t *testing.T) {
	bv := NewBusinessValidator()
	broken := validReportData()
	broken.Homework.Completed = 9

	assert.Len(t, bv.Validate(broken), 1)
	assert.Len(t, bv.Validate(&payloadRequest{Data: broken}), 1)
	assert.Empty(t, bv.Validate(&payloadRequest{}))
	assert.Empty(t, bv.Validate(struct{ Name string }{"other"}))
}

type monthQuery struct {
	Year       int    `form:"year" validate:"required,min=1"`
	Month      int    `form:"month" validate:"required,calendar_month"`
	ReportType string `json:"report_type" validate:"omitempty,report_type"`
}

func TestValidator_Validate(t *testing.T) {
	v := New()

	require.NoError(t, v.Validate(&monthQuery{Year: 2024, Month: 12, ReportType: "weekly"}))

	err := v.Validate(&monthQuery{Year: 2024, Month: 13, ReportType: "daily"})
	require.Error(t, err)
	var errs ValidationErrors
	require.ErrorAs(t, err, &errs)
	fields := make([]string, 0, len(errs))
	for _, e := range errs {
		fields = append(fields, e.Field)
	}
	assert.ElementsMatch(t, []string{"month", "report_type"}, fields)

	broken := validReportData()
	broken.Attendance.Rate = -5
	err = v.Validate(broken)
	require.ErrorAs(t, err, &errs)
	assert.Equal(t, []string{"rate_range"}, rules(errs))
}
