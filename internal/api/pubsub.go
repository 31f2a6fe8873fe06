package api

import (
	"context"
	"encoding/json"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/victornm/themequiz/internal/domain"
)

type Notification struct {
	Event string `json:"event"`
	Data  any    `json:"data"`
}

// PublishLeaderboardUpdated fans a leaderboard change out to the live WebSocket streams and, when
// configured, to the Redis channel of the quiz type.
func (a *API) PublishLeaderboardUpdated(ctx context.Context, e domain.EventLeaderboardUpdated) error {
	n := Notification{
		Event: e.Name(),
		Data:  newLeaderboard(e.Leaderboard, a.now()),
	}

	b, err := json.Marshal(n)
	if err != nil {
		return fmt.Errorf("pubsub: marshal %s: %w", e.Name(), err)
	}

	var eg errgroup.Group

	eg.Go(func() error {
		a.hub.broadcast(e.Leaderboard.QuizType, b)
		return nil
	})

	if a.redis != nil {
		eg.Go(func() error {
			return a.publishNotification(ctx, e.Leaderboard.QuizType, b)
		})
	}

	return eg.Wait()
}

func (a *API) publishNotification(ctx context.Context, quizType string, b []byte) error {
	if err := a.redis.Publish(ctx, LeaderboardChannel(a.prefix, quizType), b).Err(); err != nil {
		return fmt.Errorf("pubsub: publish %s: %w", quizType, err)
	}

	return nil
}

// LeaderboardChannel is the Redis channel carrying the leaderboard updates of a quiz type.
func LeaderboardChannel(prefix, quizType string) string {
	return fmt.Sprintf("%s:leaderboard:%s", prefix, quizType)
}
