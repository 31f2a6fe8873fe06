package telemetry

import (
	"context"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/victornm/themequiz/internal/domain"
	"github.com/victornm/themequiz/internal/event"
)

// QuizMetrics counts quiz activity from the event bus.
type QuizMetrics struct {
	sessionsStarted   *prometheus.CounterVec
	answers           *prometheus.CounterVec
	sessionsCompleted *prometheus.CounterVec
	sessionDuration   *prometheus.HistogramVec
	leaderboardSize   *prometheus.GaugeVec
}

func NewQuizMetrics(reg prometheus.Registerer, eb *event.Bus) *QuizMetrics {
	f := promauto.With(reg)

	m := &QuizMetrics{
		sessionsStarted: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "themequiz",
			Name:      "sessions_started_total",
			Help:      "Number of quiz sessions started.",
		}, []string{"quiz"}),
		answers: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "themequiz",
			Name:      "answers_total",
			Help:      "Number of graded answers.",
		}, []string{"quiz", "correct"}),
		sessionsCompleted: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "themequiz",
			Name:      "sessions_completed_total",
			Help:      "Number of finished quiz sessions.",
		}, []string{"quiz", "victory"}),
		sessionDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "themequiz",
			Name:      "session_duration_seconds",
			Help:      "Time from start to completion of a quiz session.",
			Buckets:   []float64{5, 15, 30, 60, 120, 300, 600},
		}, []string{"quiz"}),
		leaderboardSize: f.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "themequiz",
			Name:      "leaderboard_entries",
			Help:      "Number of entries on a quiz leaderboard.",
		}, []string{"quiz"}),
	}

	eb.Subscribe(domain.EventNameSessionStarted, func(_ context.Context, e event.Event) error {
		m.sessionsStarted.WithLabelValues(e.(domain.EventSessionStarted).Session.QuizID).Inc()
		return nil
	})

	eb.Subscribe(domain.EventNameAnswerSubmitted, func(_ context.Context, e event.Event) error {
		ev := e.(domain.EventAnswerSubmitted)
		m.answers.WithLabelValues(ev.Session.QuizID, strconv.FormatBool(ev.Answer.Correct)).Inc()
		return nil
	})

	eb.Subscribe(domain.EventNameSessionCompleted, func(_ context.Context, e event.Event) error {
		ev := e.(domain.EventSessionCompleted)
		ss := ev.Session
		m.sessionsCompleted.WithLabelValues(ss.QuizID, strconv.FormatBool(ev.Victory)).Inc()
		m.sessionDuration.WithLabelValues(ss.QuizID).Observe(ss.Elapsed(ss.EndTime).Seconds())
		return nil
	})

	eb.Subscribe(domain.EventNameLeaderboardUpdated, func(_ context.Context, e event.Event) error {
		l := e.(domain.EventLeaderboardUpdated).Leaderboard
		m.leaderboardSize.WithLabelValues(l.QuizType).Set(float64(len(l.Entries)))
		return nil
	})

	return m
}
