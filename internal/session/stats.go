package session

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

type GetStatsRequest struct {
	QuizType string
}

// Stats aggregates every session of a quiz, finished or not.
type Stats struct {
	QuizType          string
	TotalAttempts     int
	CompletedAttempts int
	// AverageScore is the mean score of completed sessions, rounded to 2 decimal places.
	AverageScore decimal.Decimal
	// AverageTime is the mean duration of completed sessions in milliseconds, rounded to 2 decimal places.
	AverageTime   decimal.Decimal
	PerfectScores int
}

// GetStats computes the statistics of a quiz. The quiz must exist.
func (s *Service) GetStats(ctx context.Context, req GetStatsRequest) (*Stats, error) {
	quiz, err := s.catalog.GetQuiz(req.QuizType)
	if err != nil {
		return nil, err
	}

	sessions, err := s.store.List(ctx, quiz.ID)
	if err != nil {
		return nil, err
	}

	st := &Stats{
		QuizType:      quiz.ID,
		TotalAttempts: len(sessions),
		AverageScore:  decimal.Zero,
		AverageTime:   decimal.Zero,
	}

	var (
		scoreSum int64
		timeSum  time.Duration
	)
	for _, ss := range sessions {
		if !ss.Completed {
			continue
		}

		st.CompletedAttempts++
		scoreSum += int64(ss.Score)
		timeSum += ss.Elapsed(ss.EndTime)
		if ss.Score == len(quiz.Questions) {
			st.PerfectScores++
		}
	}

	if st.CompletedAttempts > 0 {
		n := decimal.NewFromInt(int64(st.CompletedAttempts))
		st.AverageScore = decimal.NewFromInt(scoreSum).Div(n).Round(2)
		st.AverageTime = decimal.NewFromInt(timeSum.Milliseconds()).Div(n).Round(2)
	}

	return st, nil
}

func percentage(score, total int) int {
	if total == 0 {
		return 0
	}

	return int(decimal.NewFromInt(int64(score) * 100).Div(decimal.NewFromInt(int64(total))).Round(0).IntPart())
}
