package leaderboard

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/victornm/themequiz/internal/domain"
)

const (
	// scoreWeight must exceed maxElapsedMillis so that the time never outweighs one point.
	scoreWeight      = 1e10
	maxElapsedMillis = 1e10 - 1
)

type RedisStoreConfig struct {
	Redis  redis.UniversalClient
	Prefix string
	Size   int
}

// RedisStore keeps each leaderboard in a sorted set. The rank score packs the quiz score and the
// elapsed time, so Redis orders members by score descending then time ascending.
type RedisStore struct {
	redis  redis.UniversalClient
	prefix string
	size   int
}

func NewRedisStore(c RedisStoreConfig) *RedisStore {
	if c.Size <= 0 {
		c.Size = DefaultSize
	}

	return &RedisStore{
		redis:  c.Redis,
		prefix: c.Prefix,
		size:   c.Size,
	}
}

type redisEntry struct {
	SessionID   string    `json:"sessionId"`
	Score       int       `json:"score"`
	TotalTimeMs int64     `json:"totalTimeMs"`
	Timestamp   time.Time `json:"timestamp"`
}

func (s *RedisStore) Record(ctx context.Context, quizType string, e domain.LeaderboardEntry) error {
	member, err := json.Marshal(redisEntry{
		SessionID:   e.SessionID,
		Score:       e.Score,
		TotalTimeMs: e.TotalTime.Milliseconds(),
		Timestamp:   e.Timestamp.UTC(),
	})
	if err != nil {
		return fmt.Errorf("marshal entry: %w", err)
	}

	key := s.key(quizType)
	_, err = s.redis.TxPipelined(ctx, func(p redis.Pipeliner) error {
		p.ZAdd(ctx, key, redis.Z{Score: rankScore(e), Member: string(member)})
		p.ZRemRangeByRank(ctx, key, 0, int64(-s.size-1))
		return nil
	})
	if err != nil {
		return fmt.Errorf("record leaderboard entry: %w", err)
	}

	return nil
}

func (s *RedisStore) List(ctx context.Context, quizType string) ([]domain.LeaderboardEntry, error) {
	members, err := s.redis.ZRevRange(ctx, s.key(quizType), 0, int64(s.size-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("list leaderboard: %w", err)
	}

	entries := make([]domain.LeaderboardEntry, 0, len(members))
	for _, m := range members {
		var re redisEntry
		if err := json.Unmarshal([]byte(m), &re); err != nil {
			return nil, fmt.Errorf("unmarshal entry: %w", err)
		}

		entries = append(entries, domain.LeaderboardEntry{
			SessionID: re.SessionID,
			Score:     re.Score,
			TotalTime: time.Duration(re.TotalTimeMs) * time.Millisecond,
			Timestamp: re.Timestamp,
		})
	}

	return entries, nil
}

func (s *RedisStore) key(quizType string) string {
	return fmt.Sprintf("%s:%s:leaderboard", s.prefix, quizType)
}

func rankScore(e domain.LeaderboardEntry) float64 {
	ms := float64(e.TotalTime.Milliseconds())
	ms = max(0, min(ms, maxElapsedMillis))

	return float64(e.Score)*scoreWeight - ms
}
