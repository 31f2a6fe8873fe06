package leaderboard_test

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/victornm/themequiz/internal/domain"
	"github.com/victornm/themequiz/internal/event"
	"github.com/victornm/themequiz/internal/leaderboard"
)

func TestStore_Ordering(t *testing.T) {
	for name, newStore := range stores() {
		newStore := newStore
		t.Run(name, func(t *testing.T) {
			st := newStore(t, leaderboard.DefaultSize)
			ctx := context.Background()

			scores := []int{3, 5, 2, 5}
			times := []time.Duration{10, 8, 20, 5}
			for i := range scores {
				require.NoError(t, st.Record(ctx, "treasure", entry(fmt.Sprintf("s%d", i), scores[i], times[i]*time.Second)))
			}

			l, err := st.List(ctx, "treasure")
			require.NoError(t, err)

			var got []string
			for _, e := range l {
				got = append(got, fmt.Sprintf("%d/%s", e.Score, e.TotalTime))
			}
			assert.Equal(t, []string{"5/5s", "5/8s", "3/10s", "2/20s"}, got)

			other, err := st.List(ctx, "mythology")
			require.NoError(t, err)
			assert.Empty(t, other, "boards should be isolated by quiz type")
		})
	}
}

func TestStore_Bounded(t *testing.T) {
	for name, newStore := range stores() {
		newStore := newStore
		t.Run(name, func(t *testing.T) {
			st := newStore(t, 3)
			ctx := context.Background()

			for i := 0; i < 10; i++ {
				require.NoError(t, st.Record(ctx, "treasure", entry(fmt.Sprintf("s%d", i), i%4, time.Duration(i)*time.Second)))

				l, err := st.List(ctx, "treasure")
				require.NoError(t, err)
				require.LessOrEqual(t, len(l), 3)
			}

			l, err := st.List(ctx, "treasure")
			require.NoError(t, err)

			var ids []string
			for _, e := range l {
				ids = append(ids, e.SessionID)
			}
			// Score 3 at 3s and 7s, then score 2 at 2s.
			assert.Equal(t, []string{"s3", "s7", "s2"}, ids)
		})
	}
}

func TestStore_ConcurrentRecord(t *testing.T) {
	for name, newStore := range stores() {
		newStore := newStore
		t.Run(name, func(t *testing.T) {
			st := newStore(t, leaderboard.DefaultSize)
			ctx := context.Background()

			var wg sync.WaitGroup
			for i := 0; i < 50; i++ {
				i := i
				wg.Add(1)
				go func() {
					defer wg.Done()
					assert.NoError(t, st.Record(ctx, "treasure", entry(fmt.Sprintf("s%d", i), i%5, time.Duration(i)*time.Millisecond)))
				}()
			}
			wg.Wait()

			l, err := st.List(ctx, "treasure")
			require.NoError(t, err)
			require.Len(t, l, leaderboard.DefaultSize)
			for i := 1; i < len(l); i++ {
				assert.False(t, l[i].RanksAbove(l[i-1]), "entries %d and %d out of order", i-1, i)
			}
		})
	}
}

func TestRedisStore_RoundTrip(t *testing.T) {
	st := newRedisStore(t, leaderboard.DefaultSize)
	ctx := context.Background()

	want := domain.LeaderboardEntry{
		SessionID: "s1",
		Score:     4,
		TotalTime: 1234 * time.Millisecond,
		Timestamp: time.Date(2024, 10, 17, 9, 0, 0, 0, time.UTC),
	}
	require.NoError(t, st.Record(ctx, "treasure", want))

	l, err := st.List(ctx, "treasure")
	require.NoError(t, err)
	require.Equal(t, []domain.LeaderboardEntry{want}, l)
}

func TestService_RecordSession(t *testing.T) {
	type (
		inputs struct {
			completed []domain.EventSessionCompleted
		}

		outputs struct {
			published []domain.EventLeaderboardUpdated
			board     *domain.Leaderboard
		}
	)

	tests := map[string]struct {
		arrange func() inputs
		assert  func(t *testing.T, out outputs)
	}{
		"a victory should be recorded and published": {
			arrange: func() inputs {
				return inputs{
					completed: []domain.EventSessionCompleted{completion("s1", 4, 4, 30*time.Second)},
				}
			},

			assert: func(t *testing.T, out outputs) {
				require.Len(t, out.published, 1)
				assert.Equal(t, "treasure", out.published[0].Leaderboard.QuizType)

				require.Len(t, out.board.Entries, 1)
				assert.Equal(t, domain.LeaderboardEntry{
					SessionID: "s1",
					Score:     4,
					TotalTime: 30 * time.Second,
					Timestamp: start.Add(30 * time.Second),
				}, out.board.Entries[0])
			},
		},

		"a defeat should not be ranked": {
			arrange: func() inputs {
				return inputs{
					completed: []domain.EventSessionCompleted{completion("s1", 2, 4, 30*time.Second)},
				}
			},

			assert: func(t *testing.T, out outputs) {
				assert.Empty(t, out.published)
				assert.NotNil(t, out.board.Entries)
				assert.Empty(t, out.board.Entries)
			},
		},

		"faster victories should rank higher": {
			arrange: func() inputs {
				return inputs{
					completed: []domain.EventSessionCompleted{
						completion("slow", 4, 4, time.Minute),
						completion("fast", 4, 4, 20*time.Second),
					},
				}
			},

			assert: func(t *testing.T, out outputs) {
				require.Len(t, out.published, 2)
				require.Len(t, out.board.Entries, 2)
				assert.Equal(t, "fast", out.board.Entries[0].SessionID)
				assert.Equal(t, "slow", out.board.Entries[1].SessionID)
			},
		},
	}

	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			in, out := tt.arrange(), outputs{}

			eb := event.NewBus()

			var mu sync.Mutex
			eb.Subscribe(domain.EventNameLeaderboardUpdated, func(ctx context.Context, e event.Event) error {
				mu.Lock()
				out.published = append(out.published, e.(domain.EventLeaderboardUpdated))
				mu.Unlock()
				return nil
			})

			s := leaderboard.NewService(leaderboard.Config{
				EventBus: eb,
				Store:    leaderboard.NewMemoryStore(leaderboard.DefaultSize),
			})

			for _, e := range in.completed {
				require.NoError(t, s.RecordSession(context.Background(), e))
			}

			eb.Stop()

			var err error
			out.board, err = s.GetLeaderboard(context.Background(), leaderboard.GetLeaderboardRequest{QuizType: "treasure"})
			require.NoError(t, err)

			tt.assert(t, out)
		})
	}
}

func TestService_RecordSessionIsReadable(t *testing.T) {
	eb := event.NewBus()
	t.Cleanup(eb.Stop)

	s := leaderboard.NewService(leaderboard.Config{
		EventBus: eb,
		Store:    newRedisStore(t, leaderboard.DefaultSize),
	})

	require.NoError(t, s.RecordSession(context.Background(), completion("s1", 4, 4, time.Second)))

	l, err := s.GetLeaderboard(context.Background(), leaderboard.GetLeaderboardRequest{QuizType: "treasure"})
	require.NoError(t, err)
	require.Len(t, l.Entries, 1)
	assert.Equal(t, "s1", l.Entries[0].SessionID)
}

var start = time.Date(2024, 10, 17, 9, 0, 0, 0, time.UTC)

func completion(id string, score, total int, elapsed time.Duration) domain.EventSessionCompleted {
	return domain.EventSessionCompleted{
		Session: domain.Session{
			SessionID:  id,
			QuizID:     "treasure",
			CreateTime: start,
			Score:      score,
			Completed:  true,
			EndTime:    start.Add(elapsed),
		},
		TotalQuestions: total,
		Victory:        score == total,
	}
}

func entry(id string, score int, d time.Duration) domain.LeaderboardEntry {
	return domain.LeaderboardEntry{
		SessionID: id,
		Score:     score,
		TotalTime: d,
		Timestamp: start,
	}
}

func stores() map[string]func(t *testing.T, size int) leaderboard.Store {
	return map[string]func(t *testing.T, size int) leaderboard.Store{
		"memory": func(_ *testing.T, size int) leaderboard.Store {
			return leaderboard.NewMemoryStore(size)
		},
		"redis": func(t *testing.T, size int) leaderboard.Store {
			return newRedisStore(t, size)
		},
	}
}

func newRedisStore(t *testing.T, size int) *leaderboard.RedisStore {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	rs := miniredis.RunT(t)
	rc := redis.NewUniversalClient(&redis.UniversalOptions{
		Addrs: []string{rs.Addr()},
	})
	require.NoError(t, rc.Ping(ctx).Err(), "should be able to ping redis")

	return leaderboard.NewRedisStore(leaderboard.RedisStoreConfig{
		Redis:  rc,
		Prefix: "test",
		Size:   size,
	})
}
