package leaderboard

import (
	"context"
	"fmt"

	"github.com/victornm/themequiz/internal/domain"
	"github.com/victornm/themequiz/internal/event"
)

type Config struct {
	EventBus *event.Bus
	Store    Store
}

type Service struct {
	eb    *event.Bus
	store Store
}

func NewService(c Config) *Service {
	return &Service{
		eb:    c.EventBus,
		store: c.Store,
	}
}

type GetLeaderboardRequest struct {
	QuizType string
}

// GetLeaderboard returns the ranked entries of a quiz type. A quiz nobody has won yet has an
// empty leaderboard.
func (s *Service) GetLeaderboard(ctx context.Context, req GetLeaderboardRequest) (*domain.Leaderboard, error) {
	entries, err := s.store.List(ctx, req.QuizType)
	if err != nil {
		return nil, fmt.Errorf("get leaderboard: %w", err)
	}

	if entries == nil {
		entries = []domain.LeaderboardEntry{}
	}

	return &domain.Leaderboard{
		QuizType: req.QuizType,
		Entries:  entries,
	}, nil
}

// RecordSession adds a finished session to its quiz leaderboard and publishes the new ranking.
// Only victories are ranked. The session service calls it when an answer completes a session.
func (s *Service) RecordSession(ctx context.Context, e domain.EventSessionCompleted) error {
	if !e.Victory {
		return nil
	}

	ss := e.Session
	// TODO: retry on error
	if err := s.store.Record(ctx, ss.QuizID, domain.LeaderboardEntry{
		SessionID: ss.SessionID,
		Score:     ss.Score,
		TotalTime: ss.Elapsed(ss.EndTime),
		Timestamp: ss.EndTime,
	}); err != nil {
		return fmt.Errorf("record session %s: %w", ss.SessionID, err)
	}

	l, err := s.GetLeaderboard(ctx, GetLeaderboardRequest{QuizType: ss.QuizID})
	if err != nil {
		return err
	}

	s.eb.Publish(ctx, domain.EventLeaderboardUpdated{Leaderboard: *l})

	return nil
}
