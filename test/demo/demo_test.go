//go:build integration_test

package demo

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/victornm/themequiz/internal/api"
	themequizv1 "github.com/victornm/themequiz/internal/api/proto/themequiz/v1"
	"github.com/victornm/themequiz/internal/catalog"
	"github.com/victornm/themequiz/internal/domain"
)

const (
	addr     = "localhost:8081"
	quizType = "treasure"
)

// TestQuiz plays the treasure quiz against a running server: a few players answer everything
// correctly, one fails on the first question, and the leaderboard updates are printed from Redis.
func TestQuiz(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	var (
		qc      = makeQuizClient(t)
		wg      = new(sync.WaitGroup)
		players = map[string]bool{"p1": true, "p2": true, "p3": true, "p4": false}
	)

	cat, err := catalog.Builtin()
	require.NoError(t, err)
	quiz, err := cat.GetQuiz(quizType)
	require.NoError(t, err)

	subscribeLeaderboard(t, makeRedis(t), wg)

	var eg errgroup.Group
	for p, win := range players {
		p, win := p, win
		eg.Go(func() error {
			return play(ctx, t, qc, quiz, p, win)
		})
	}
	require.NoError(t, eg.Wait())

	l, err := qc.GetLeaderboard(ctx, &themequizv1.GetLeaderboardRequest{QuizType: quizType})
	require.NoError(t, err)
	t.Logf("final leaderboard:\n%s", formatEntries(l.GetEntries()))

	st, err := qc.GetStats(ctx, &themequizv1.GetStatsRequest{QuizType: quizType})
	require.NoError(t, err)
	t.Logf("stats: attempts=%d completed=%d perfect=%d", st.GetTotalAttempts(), st.GetCompletedAttempts(), st.GetPerfectScores())

	time.Sleep(2 * time.Second)
	wg.Wait()
}

func play(ctx context.Context, t *testing.T, qc themequizv1.QuizServiceClient, quiz domain.Quiz, player string, win bool) error {
	s, err := qc.StartSession(ctx, &themequizv1.StartSessionRequest{QuizType: quiz.ID})
	if err != nil {
		return fmt.Errorf("player %q start session: %w", player, err)
	}

	for {
		q, err := qc.GetQuestion(ctx, &themequizv1.GetQuestionRequest{SessionId: s.GetSessionId()})
		if err != nil {
			return fmt.Errorf("player %q get question: %w", player, err)
		}

		resp, err := qc.SubmitAnswer(ctx, &themequizv1.SubmitAnswerRequest{
			SessionId: s.GetSessionId(),
			OptionId:  pick(quiz, int(q.GetQuestion().GetId()), win),
		})
		if err != nil {
			return fmt.Errorf("player %q submit answer: %w", player, err)
		}

		t.Logf("player %q answered question %d: correct=%t score=%d", player, q.GetQuestion().GetId(), resp.GetIsCorrect(), resp.GetCurrentScore())
		if resp.GetIsCompleted() {
			break
		}
	}

	r, err := qc.GetResults(ctx, &themequizv1.GetResultsRequest{SessionId: s.GetSessionId()})
	if err != nil {
		return fmt.Errorf("player %q get results: %w", player, err)
	}

	t.Logf("player %q finished: score=%d/%d (%d%%) in %dms", player, r.GetScore(), r.GetTotalQuestions(), r.GetPercentage(), r.GetTotalTimeMs())
	return nil
}

func pick(quiz domain.Quiz, questionID int, correct bool) string {
	for _, q := range quiz.Questions {
		if q.ID != questionID {
			continue
		}
		for _, o := range q.Options {
			if o.Correct == correct {
				return o.ID
			}
		}
	}
	return ""
}

func makeQuizClient(t *testing.T) themequizv1.QuizServiceClient {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	return themequizv1.NewQuizServiceClient(conn)
}

func subscribeLeaderboard(t *testing.T, rc redis.UniversalClient, wg *sync.WaitGroup) {
	wg.Add(1)
	sub := subscribeRedis(t, rc, api.LeaderboardChannel("local:pubsub", quizType))
	go func() {
		defer wg.Done()

		for msg := range sub {
			var n struct {
				Event string          `json:"event"`
				Data  json.RawMessage `json:"data"`
			}
			if err := json.Unmarshal([]byte(msg.Payload), &n); err != nil {
				t.Logf("unmarshal notification: %v", err)
				continue
			}

			switch n.Event {
			case domain.EventNameLeaderboardUpdated:
				var l api.Leaderboard
				if err := json.Unmarshal(n.Data, &l); err != nil {
					t.Logf("unmarshal leaderboard: %v", err)
					continue
				}

				t.Logf("leaderboard updated:\n%s", formatLeaderboard(l))
			}
		}
	}()
}

func subscribeRedis(t *testing.T, rc redis.UniversalClient, channel string) <-chan *redis.Message {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	sub := rc.Subscribe(ctx, channel)
	t.Cleanup(func() { sub.Close() })

	c := make(chan *redis.Message)
	go func() {
		defer close(c)

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		for {
			msg, err := sub.ReceiveMessage(ctx)
			if err != nil {
				t.Log(err)
				return
			}

			c <- msg
		}
	}()

	return c
}

func makeRedis(t *testing.T) redis.UniversalClient {
	r := redis.NewUniversalClient(&redis.UniversalOptions{
		Addrs: []string{"localhost:6379"},
	})
	t.Cleanup(func() { r.Close() })

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := r.Ping(ctx).Err(); err != nil {
		t.Fatal(err)
	}

	return r
}

func formatEntries(entries []*themequizv1.LeaderboardEntry) string {
	var s string
	for _, e := range entries {
		s += fmt.Sprintf("#%d %s: %d in %dms\n", e.GetRank(), e.GetSessionId(), e.GetScore(), e.GetTotalTimeMs())
	}
	return s
}

func formatLeaderboard(l api.Leaderboard) string {
	var s string
	for _, e := range l.Entries {
		s += fmt.Sprintf("#%d %s: %d in %dms\n", e.Rank, e.SessionID, e.Score, e.TotalTime)
	}
	return s
}
