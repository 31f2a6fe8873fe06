package telemetry_test

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/victornm/themequiz/internal/domain"
	"github.com/victornm/themequiz/internal/event"
	"github.com/victornm/themequiz/internal/telemetry"
)

func TestQuizMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	eb := event.NewBus()
	telemetry.NewQuizMetrics(reg, eb)

	start := time.Date(2024, 10, 17, 9, 0, 0, 0, time.UTC)
	ss := domain.Session{SessionID: "s1", QuizID: "treasure", CreateTime: start}
	done := ss
	done.Completed, done.EndTime, done.Score = true, start.Add(40*time.Second), 4

	ctx := context.Background()
	eb.Publish(ctx, domain.EventSessionStarted{Session: ss})
	eb.Publish(ctx, domain.EventSessionStarted{Session: ss})
	eb.Publish(ctx, domain.EventAnswerSubmitted{Session: ss, Answer: domain.Answer{Correct: true}})
	eb.Publish(ctx, domain.EventAnswerSubmitted{Session: ss, Answer: domain.Answer{Correct: false}})
	eb.Publish(ctx, domain.EventSessionCompleted{Session: done, TotalQuestions: 4, Victory: true})
	eb.Publish(ctx, domain.EventLeaderboardUpdated{Leaderboard: domain.Leaderboard{
		QuizType: "treasure",
		Entries:  make([]domain.LeaderboardEntry, 3),
	}})
	eb.Stop()

	mfs, err := reg.Gather()
	require.NoError(t, err)
	assert.Len(t, mfs, 5)

	for _, mf := range mfs {
		switch mf.GetName() {
		case "themequiz_sessions_started_total":
			assert.Equal(t, 2.0, mf.GetMetric()[0].GetCounter().GetValue())
		case "themequiz_answers_total":
			assert.Len(t, mf.GetMetric(), 2, "correct and incorrect should be separate series")
		case "themequiz_sessions_completed_total":
			require.Len(t, mf.GetMetric(), 1)
			assert.Equal(t, 1.0, mf.GetMetric()[0].GetCounter().GetValue())
		case "themequiz_session_duration_seconds":
			assert.Equal(t, 40.0, mf.GetMetric()[0].GetHistogram().GetSampleSum())
		case "themequiz_leaderboard_entries":
			assert.Equal(t, 3.0, mf.GetMetric()[0].GetGauge().GetValue())
		}
	}

	assert.Equal(t, 3, testutil.CollectAndCount(reg, "themequiz_answers_total", "themequiz_sessions_completed_total"))
}

func TestGinLogger(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var buf bytes.Buffer
	l := slog.New(slog.NewTextHandler(&buf, nil))

	e := gin.New()
	e.Use(telemetry.GinLogger(l))
	e.GET("/api/quizzes", func(c *gin.Context) { c.Status(http.StatusOK) })
	e.GET("/boom", func(c *gin.Context) { c.Status(http.StatusInternalServerError) })

	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/quizzes", nil))
	assert.Contains(t, buf.String(), "level=INFO")
	assert.Contains(t, buf.String(), "path=/api/quizzes")
	assert.Contains(t, buf.String(), "status=200")

	buf.Reset()
	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/boom", nil))
	assert.Contains(t, buf.String(), "level=ERROR")
	assert.Contains(t, buf.String(), "status=500")
}

func TestMonitorRedis(t *testing.T) {
	rs := miniredis.RunT(t)
	rc := redis.NewUniversalClient(&redis.UniversalOptions{
		Addrs: []string{rs.Addr()},
	})

	require.NoError(t, telemetry.MonitorRedis("test", rc))

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	require.NoError(t, rc.Ping(ctx).Err(), "an instrumented client should still work")
	_, err := rc.TxPipelined(ctx, func(p redis.Pipeliner) error {
		p.Set(ctx, "k", "v", 0)
		return nil
	})
	require.NoError(t, err)
	rs.CheckGet(t, "k", "v")
}
