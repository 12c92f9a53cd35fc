package services

import (
	"math"

	"github.com/SAP-F-2025/report-service/internal/models"
	"github.com/SAP-F-2025/report-service/internal/repositories"
)

// roundTo rounds half up, toward positive infinity, so -2.25 becomes -2.2.
func roundTo(value float64, decimals int) float64 {
	p := math.Pow(10, float64(decimals))
	return math.Floor(value*p+0.5) / p
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

func percentOf(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return roundTo(float64(part)/float64(total)*100, 0)
}

// SummarizeAttendance counts statuses for the period. Rate counts present
// sessions only; late arrivals are reported but not credited.
func SummarizeAttendance(records []models.AttendanceRecord) models.AttendanceSummary {
	summary := models.AttendanceSummary{Total: len(records)}
	for _, r := range records {
		switch r.Status {
		case models.AttendancePresent:
			summary.Present++
		case models.AttendanceLate:
			summary.Late++
		case models.AttendanceAbsent:
			summary.Absent++
		}
	}
	summary.Rate = percentOf(summary.Present, summary.Total)
	return summary
}

func SummarizeHomework(todos []models.Todo) models.HomeworkSummary {
	summary := models.HomeworkSummary{Total: len(todos)}
	for _, t := range todos {
		if t.CompletedAt != nil {
			summary.Completed++
		}
	}
	summary.Rate = percentOf(summary.Completed, summary.Total)
	return summary
}

// AggregateCategoryScores groups the period's scores by exam category and
// compares each against the previous period. Categories are emitted in order
// of first appearance in current; categories tested only in previous are dropped.
func AggregateCategoryScores(current []repositories.ScoreRow, previous []repositories.PreviousScoreRow) []models.CategoryScore {
	type group struct {
		label  string
		values []float64
		tests  []models.TestEntry
	}

	order := make([]string, 0)
	groups := make(map[string]*group)
	for _, row := range current {
		g, ok := groups[row.CategoryCode]
		if !ok {
			g = &group{label: row.CategoryLabel}
			groups[row.CategoryCode] = g
			order = append(order, row.CategoryCode)
		}
		g.values = append(g.values, row.Percentage)
		g.tests = append(g.tests, models.TestEntry{
			Name:       row.ExamName,
			Date:       row.ExamDate.Format(models.DateLayout),
			Percentage: row.Percentage,
			Feedback:   row.Feedback,
		})
	}

	prevByCode := make(map[string][]float64)
	for _, row := range previous {
		prevByCode[row.CategoryCode] = append(prevByCode[row.CategoryCode], row.Percentage)
	}

	scores := make([]models.CategoryScore, 0, len(order))
	for _, code := range order {
		g := groups[code]
		score := models.CategoryScore{
			Category: g.label,
			Current:  roundTo(mean(g.values), 1),
			Tests:    g.tests,
		}
		if prev := prevByCode[code]; len(prev) > 0 {
			previousAvg := roundTo(mean(prev), 1)
			change := roundTo(score.Current-previousAvg, 1)
			score.Previous = &previousAvg
			score.Change = &change
		}
		scores = append(scores, score)
	}
	return scores
}
