package repositories

import (
	"context"
	"time"
)

type ExamScoreRepository interface {
	// GetCurrentScores returns scored results whose exam date is in [start, end],
	// newest score first.
	GetCurrentScores(ctx context.Context, studentID string, start, end time.Time) ([]ScoreRow, error)
	GetPreviousScores(ctx context.Context, studentID string, start, end time.Time) ([]PreviousScoreRow, error)
}
