package api_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"

	"github.com/victornm/themequiz/internal/api"
	"github.com/victornm/themequiz/internal/catalog"
	"github.com/victornm/themequiz/internal/domain"
	"github.com/victornm/themequiz/internal/event"
	"github.com/victornm/themequiz/internal/leaderboard"
	"github.com/victornm/themequiz/internal/session"
)

func TestHTTP_ListQuizzes(t *testing.T) {
	ta := newTestAPI(t)

	var got []api.QuizSummary
	ta.do(t, http.MethodGet, "/api/quizzes", nil, http.StatusOK, &got)

	assert.Equal(t, []api.QuizSummary{{
		ID:              "test",
		Name:            "Test Quiz",
		Theme:           "plain",
		Description:     "A quiz for tests",
		Icon:            "🧪",
		BackgroundImage: "/images/test.jpg",
		QuestionCount:   2,
	}}, got)
}

func TestHTTP_Errors(t *testing.T) {
	tests := map[string]struct {
		method     string
		path       string
		body       any
		wantStatus int
		wantReason string
	}{
		"start with unknown quiz": {
			method:     http.MethodPost,
			path:       "/api/session/start",
			body:       map[string]string{"quizType": "space"},
			wantStatus: http.StatusBadRequest,
			wantReason: "INVALID_QUIZ",
		},
		"start without quiz type": {
			method:     http.MethodPost,
			path:       "/api/session/start",
			body:       map[string]string{},
			wantStatus: http.StatusBadRequest,
		},
		"question of unknown session": {
			method:     http.MethodGet,
			path:       "/api/session/nope/question",
			wantStatus: http.StatusNotFound,
			wantReason: "SESSION_NOT_FOUND",
		},
		"answer to unknown session": {
			method:     http.MethodPost,
			path:       "/api/session/nope/answer",
			body:       map[string]string{"optionId": "a"},
			wantStatus: http.StatusNotFound,
			wantReason: "SESSION_NOT_FOUND",
		},
		"results of unknown session": {
			method:     http.MethodGet,
			path:       "/api/session/nope/results",
			wantStatus: http.StatusNotFound,
			wantReason: "SESSION_NOT_FOUND",
		},
		"stats of unknown quiz": {
			method:     http.MethodGet,
			path:       "/api/stats/space",
			wantStatus: http.StatusNotFound,
			wantReason: "QUIZ_NOT_FOUND",
		},
	}

	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			ta := newTestAPI(t)

			var got api.ErrorResponse
			ta.do(t, tt.method, tt.path, tt.body, tt.wantStatus, &got)
			assert.NotEmpty(t, got.Error)
			assert.Equal(t, tt.wantReason, got.Reason)
		})
	}
}

func TestHTTP_SessionFlow(t *testing.T) {
	ta := newTestAPI(t)

	var start api.StartSessionResponse
	ta.do(t, http.MethodPost, "/api/session/start", map[string]string{"quizType": "test"}, http.StatusOK, &start)
	require.NotEmpty(t, start.SessionID)
	assert.Equal(t, api.QuizInfo{
		Name:            "Test Quiz",
		Theme:           "plain",
		BackgroundImage: "/images/test.jpg",
		TotalQuestions:  2,
	}, start.Quiz)

	base := "/api/session/" + start.SessionID

	var q api.GetQuestionResponse
	ta.do(t, http.MethodGet, base+"/question", nil, http.StatusOK, &q)
	assert.Equal(t, 1, q.QuestionNumber)
	assert.Equal(t, 2, q.TotalQuestions)
	assert.Equal(t, 10, q.Question.ID)
	assert.Equal(t, "medium", q.Question.Difficulty)
	assert.Equal(t, "ॐ", q.Question.SanskritQuote)
	require.Len(t, q.Question.Options, 2)
	assert.Equal(t, "/images/a.jpg", q.Question.Options[0].Image)

	// The correct answer is never sent to the client.
	var raw map[string]any
	ta.do(t, http.MethodGet, base+"/question", nil, http.StatusOK, &raw)
	assert.NotContains(t, toJSON(t, raw), "correct")

	var bad api.ErrorResponse
	ta.do(t, http.MethodPost, base+"/answer", map[string]string{"optionId": "z"}, http.StatusBadRequest, &bad)
	assert.Equal(t, "INVALID_OPTION", bad.Reason)

	var ans api.SubmitAnswerResponse
	ta.clk.Advance(1500 * time.Millisecond)
	ta.do(t, http.MethodPost, base+"/answer", map[string]string{"optionId": "a"}, http.StatusOK, &ans)
	assert.Equal(t, api.SubmitAnswerResponse{
		IsCorrect:             true,
		Explanation:           "first",
		CurrentScore:          1,
		TotalQuestions:        2,
		NextQuestionAvailable: true,
	}, ans)

	ta.clk.Advance(500 * time.Millisecond)
	ta.do(t, http.MethodPost, base+"/answer", map[string]string{"optionId": "a"}, http.StatusOK, &ans)
	assert.True(t, ans.IsCompleted)
	assert.True(t, ans.IsVictory)
	assert.False(t, ans.NextQuestionAvailable)

	ta.do(t, http.MethodPost, base+"/answer", map[string]string{"optionId": "a"}, http.StatusBadRequest, &bad)
	assert.Equal(t, "ALREADY_COMPLETED", bad.Reason)
	ta.do(t, http.MethodGet, base+"/question", nil, http.StatusBadRequest, &bad)
	assert.Equal(t, "ALREADY_COMPLETED", bad.Reason)

	var res api.GetResultsResponse
	ta.do(t, http.MethodGet, base+"/results", nil, http.StatusOK, &res)
	assert.Equal(t, start.SessionID, res.SessionID)
	assert.Equal(t, "Test Quiz", res.QuizName)
	assert.Equal(t, 2, res.Score)
	assert.Equal(t, int64(2000), res.TotalTime)
	assert.True(t, res.IsCompleted)
	assert.Equal(t, 100, res.Percentage)
	require.Len(t, res.Answers, 2)
	assert.Equal(t, api.Answer{
		QuestionID:     10,
		SelectedOption: "a",
		IsCorrect:      true,
		Timestamp:      ta.start.Add(1500 * time.Millisecond).UnixMilli(),
	}, res.Answers[0])

	ta.clk.Advance(time.Minute)

	var lb api.Leaderboard
	ta.do(t, http.MethodGet, "/api/leaderboard/test", nil, http.StatusOK, &lb)
	assert.Equal(t, api.Leaderboard{
		QuizType: "test",
		Entries: []api.LeaderboardEntry{{
			Rank:      1,
			SessionID: start.SessionID,
			Score:     2,
			TotalTime: 2000,
			TimeAgo:   60000,
		}},
	}, lb)

	var st api.Stats
	ta.do(t, http.MethodGet, "/api/stats/test", nil, http.StatusOK, &st)
	assert.Equal(t, api.Stats{
		TotalAttempts:     1,
		CompletedAttempts: 1,
		AverageScore:      2,
		AverageTime:       2000,
		PerfectScores:     1,
	}, st)
}

func TestHTTP_LeaderboardAfterVictory(t *testing.T) {
	ta := newTestAPI(t)

	for i := 0; i < 20; i++ {
		var start api.StartSessionResponse
		ta.do(t, http.MethodPost, "/api/session/start", map[string]string{"quizType": "test"}, http.StatusOK, &start)

		base := "/api/session/" + start.SessionID
		var ans api.SubmitAnswerResponse
		for !ans.IsCompleted {
			// Each run is faster than the last, so it always makes the bounded board.
			ta.clk.Advance(time.Duration(30-i) * time.Second)
			ta.do(t, http.MethodPost, base+"/answer", map[string]string{"optionId": "a"}, http.StatusOK, &ans)
		}
		require.True(t, ans.IsVictory)

		var lb api.Leaderboard
		ta.do(t, http.MethodGet, "/api/leaderboard/test", nil, http.StatusOK, &lb)

		var ids []string
		for _, e := range lb.Entries {
			ids = append(ids, e.SessionID)
		}
		require.Contains(t, ids, start.SessionID, "run %d: a victory should be ranked when the answer returns", i)
	}
}

func TestHTTP_EmptyLeaderboard(t *testing.T) {
	ta := newTestAPI(t)

	rec := ta.serve(http.MethodGet, "/api/leaderboard/test", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"quizType":"test","entries":[]}`, rec.Body.String())
}

type testAPI struct {
	api    *api.API
	engine *gin.Engine
	eb     *event.Bus
	clk    *clock
	start  time.Time
}

type testAPIOption func(c *api.Config)

func withGRPC(s *grpc.Server) testAPIOption {
	return func(c *api.Config) {
		c.GRPC = s
	}
}

func withRedis(r api.Redis, prefix string) testAPIOption {
	return func(c *api.Config) {
		c.Redis = r
		c.PubsubPrefix = prefix
	}
}

func newTestAPI(t *testing.T, opts ...testAPIOption) *testAPI {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cat, err := catalog.New([]domain.Quiz{testQuiz()})
	require.NoError(t, err)

	clk := newClock()
	eb := event.NewBus()

	ls := leaderboard.NewService(leaderboard.Config{
		EventBus: eb,
		Store:    leaderboard.NewMemoryStore(leaderboard.DefaultSize),
	})
	qss := session.NewService(session.Config{
		Catalog:     cat,
		Store:       session.NewMemoryStore(session.MemoryStoreConfig{Catalog: cat, Now: clk.Now}),
		EventBus:    eb,
		Leaderboard: ls,
		Now:         clk.Now,
	})

	c := api.Config{
		EventBus:    eb,
		Catalog:     cat,
		Session:     qss,
		Leaderboard: ls,
		Now:         clk.Now,
	}
	for _, opt := range opts {
		opt(&c)
	}

	a := api.New(c)

	e := gin.New()
	a.RegisterHTTP(e.Group("/api"))

	return &testAPI{
		api:    a,
		engine: e,
		eb:     eb,
		clk:    clk,
		start:  clk.Now(),
	}
}

func (ta *testAPI) serve(method, path string, body any) *httptest.ResponseRecorder {
	var r *http.Request
	if body != nil {
		b, _ := json.Marshal(body)
		r = httptest.NewRequest(method, path, bytes.NewReader(b))
		r.Header.Set("Content-Type", "application/json")
	} else {
		r = httptest.NewRequest(method, path, nil)
	}

	rec := httptest.NewRecorder()
	ta.engine.ServeHTTP(rec, r)
	return rec
}

func (ta *testAPI) do(t *testing.T, method, path string, body any, wantStatus int, out any) {
	t.Helper()

	rec := ta.serve(method, path, body)
	require.Equal(t, wantStatus, rec.Code, rec.Body.String())
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out))
}

func toJSON(t *testing.T, v any) string {
	t.Helper()

	b, err := json.Marshal(v)
	require.NoError(t, err)
	return string(b)
}

// testQuiz has two questions, the correct option is always "a".
func testQuiz() domain.Quiz {
	return domain.Quiz{
		ID:              "test",
		Name:            "Test Quiz",
		Theme:           "plain",
		Description:     "A quiz for tests",
		Icon:            "🧪",
		BackgroundImage: "/images/test.jpg",
		Questions: []domain.Question{
			{
				ID:            10,
				Difficulty:    domain.DifficultyMedium,
				Text:          "first?",
				SanskritQuote: "ॐ",
				Explanation:   "first",
				Options: []domain.Option{
					{ID: "a", Text: "yes", Correct: true, Image: "/images/a.jpg"},
					{ID: "b", Text: "no"},
				},
			},
			{
				ID:          20,
				Difficulty:  domain.DifficultyHard,
				Text:        "second?",
				Explanation: "second",
				CodeExample: "fmt.Println(42)",
				Options: []domain.Option{
					{ID: "a", Text: "42", Correct: true, Code: true},
					{ID: "b", Text: "24", Code: true},
				},
			},
		},
	}
}

type clock struct {
	mu sync.Mutex
	t  time.Time
}

func newClock() *clock {
	return &clock{t: time.Date(2024, 10, 17, 9, 0, 0, 0, time.UTC)}
}

func (c *clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.t
}

func (c *clock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.t = c.t.Add(d)
}
