package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SAP-F-2025/report-service/internal/models"
	"github.com/SAP-F-2025/report-service/internal/repositories"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func attendanceRows(present, late, absent int) []models.AttendanceRecord {
	rows := make([]models.AttendanceRecord, 0, present+late+absent)
	day := 1
	add := func(status models.AttendanceStatus, n int) {
		for i := 0; i < n; i++ {
			rows = append(rows, models.AttendanceRecord{Status: status, Date: date(2024, time.October, day)})
			day++
		}
	}
	add(models.AttendancePresent, present)
	add(models.AttendanceLate, late)
	add(models.AttendanceAbsent, absent)
	return rows
}

func scoreRow(code, label, exam string, day int, pct float64) repositories.ScoreRow {
	return repositories.ScoreRow{
		Percentage:    pct,
		ExamName:      exam,
		ExamDate:      date(2024, time.October, day),
		CategoryCode:  code,
		CategoryLabel: label,
	}
}

func TestRoundTo(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		decimals int
		expected float64
	}{
		{"half rounds up", 84.5, 0, 85},
		{"below half rounds down", 84.49, 0, 84},
		{"one decimal half up", 2.25, 1, 2.3},
		{"negative half rounds toward positive", -2.25, 1, -2.2},
		{"repeating fraction", 257.0 / 3.0, 1, 85.7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, roundTo(tt.value, tt.decimals), 1e-9)
		})
	}
}

func TestSummarizeAttendance(t *testing.T) {
	t.Run("late is not credited", func(t *testing.T) {
		summary := SummarizeAttendance(attendanceRows(17, 1, 2))

		assert.Equal(t, models.AttendanceSummary{Total: 20, Present: 17, Late: 1, Absent: 2, Rate: 85}, summary)
	})

	t.Run("excused counts toward total only", func(t *testing.T) {
		rows := attendanceRows(3, 0, 0)
		rows = append(rows, models.AttendanceRecord{Status: models.AttendanceExcused})

		summary := SummarizeAttendance(rows)

		assert.Equal(t, 4, summary.Total)
		assert.Equal(t, 0, summary.Absent)
		assert.Equal(t, 75.0, summary.Rate)
	})

	t.Run("no records", func(t *testing.T) {
		summary := SummarizeAttendance([]models.AttendanceRecord{})

		assert.Equal(t, models.AttendanceSummary{}, summary)
	})
}

func TestSummarizeHomework(t *testing.T) {
	done := time.Now()
	todos := []models.Todo{
		{CompletedAt: &done},
		{CompletedAt: nil},
		{CompletedAt: &done},
		{CompletedAt: nil},
		{CompletedAt: &done},
	}

	assert.Equal(t, models.HomeworkSummary{Total: 5, Completed: 3, Rate: 60}, SummarizeHomework(todos))
	assert.Equal(t, models.HomeworkSummary{}, SummarizeHomework(nil))
}

func TestAggregateCategoryScores_ComparesWithPrevious(t *testing.T) {
	current := []repositories.ScoreRow{
		scoreRow("VOC", "Vocabulary", "Vocab Quiz 2", 20, 90),
		scoreRow("VOC", "Vocabulary", "Vocab Quiz 1", 5, 86),
	}
	previous := []repositories.PreviousScoreRow{
		{CategoryCode: "VOC", Percentage: 78},
		{CategoryCode: "VOC", Percentage: 82},
	}

	scores := AggregateCategoryScores(current, previous)

	require.Len(t, scores, 1)
	score := scores[0]
	assert.Equal(t, "Vocabulary", score.Category)
	assert.Equal(t, 88.0, score.Current)
	require.NotNil(t, score.Previous)
	require.NotNil(t, score.Change)
	assert.Equal(t, 80.0, *score.Previous)
	assert.Equal(t, 8.0, *score.Change)

	require.Len(t, score.Tests, 2)
	assert.Equal(t, "Vocab Quiz 2", score.Tests[0].Name)
	assert.Equal(t, "2024-10-20", score.Tests[0].Date)
	assert.Equal(t, "Vocab Quiz 1", score.Tests[1].Name)
}

func TestAggregateCategoryScores_NoPreviousLeavesDeltaNil(t *testing.T) {
	scores := AggregateCategoryScores([]repositories.ScoreRow{scoreRow("RD", "Reading", "Reading 1", 3, 72.36)}, nil)

	require.Len(t, scores, 1)
	assert.Equal(t, 72.4, scores[0].Current)
	assert.Nil(t, scores[0].Previous)
	assert.Nil(t, scores[0].Change)
	assert.Len(t, scores[0].Tests, 1)
}

func TestAggregateCategoryScores_DropsPreviousOnlyCategories(t *testing.T) {
	current := []repositories.ScoreRow{scoreRow("VOC", "Vocabulary", "Vocab", 2, 90)}
	previous := []repositories.PreviousScoreRow{
		{CategoryCode: "SCI", Percentage: 70},
		{CategoryCode: "VOC", Percentage: 95},
	}

	scores := AggregateCategoryScores(current, previous)

	require.Len(t, scores, 1)
	assert.Equal(t, "Vocabulary", scores[0].Category)
	assert.Equal(t, -5.0, *scores[0].Change)
}

func TestAggregateCategoryScores_FirstOccurrenceOrder(t *testing.T) {
	current := []repositories.ScoreRow{
		scoreRow("RD", "Reading", "Reading 2", 25, 80),
		scoreRow("VOC", "Vocabulary", "Vocab", 20, 90),
		scoreRow("RD", "Reading", "Reading 1", 10, 70),
		scoreRow("GR", "Grammar", "Grammar", 5, 60),
	}

	scores := AggregateCategoryScores(current, nil)

	require.Len(t, scores, 3)
	assert.Equal(t, "Reading", scores[0].Category)
	assert.Equal(t, "Vocabulary", scores[1].Category)
	assert.Equal(t, "Grammar", scores[2].Category)
	assert.Equal(t, 75.0, scores[0].Current)
}

func TestAggregateCategoryScores_RoundsChangeAfterAverages(t *testing.T) {
	current := []repositories.ScoreRow{
		scoreRow("VOC", "Vocabulary", "A", 1, 85),
		scoreRow("VOC", "Vocabulary", "B", 2, 86),
		scoreRow("VOC", "Vocabulary", "C", 3, 86),
	}
	previous := []repositories.PreviousScoreRow{
		{CategoryCode: "VOC", Percentage: 80},
		{CategoryCode: "VOC", Percentage: 80.6},
	}

	scores := AggregateCategoryScores(current, previous)

	require.Len(t, scores, 1)
	assert.Equal(t, 85.7, scores[0].Current)
	assert.Equal(t, 80.3, *scores[0].Previous)
	assert.InDelta(t, 5.4, *scores[0].Change, 1e-9)
}

func TestAggregateCategoryScores_Empty(t *testing.T) {
	scores := AggregateCategoryScores(nil, []repositories.PreviousScoreRow{{CategoryCode: "VOC", Percentage: 50}})

	assert.NotNil(t, scores)
	assert.Empty(t, scores)
}
