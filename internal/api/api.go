package api

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"google.golang.org/grpc"

	themequizv1 "github.com/victornm/themequiz/internal/api/proto/themequiz/v1"
	"github.com/victornm/themequiz/internal/domain"
	"github.com/victornm/themequiz/internal/event"
	"github.com/victornm/themequiz/internal/leaderboard"
	"github.com/victornm/themequiz/internal/session"
)

type Config struct {
	// GRPC is optional. When set, the quiz service is registered on it.
	GRPC        *grpc.Server
	EventBus    *event.Bus
	Catalog     Catalog
	Session     *session.Service
	Leaderboard *leaderboard.Service
	// Redis is optional. When set, leaderboard updates are published to it.
	Redis        Redis
	PubsubPrefix string
	Now          func() time.Time
}

type Catalog interface {
	List() []domain.Quiz
}

type Redis interface {
	Publish(ctx context.Context, channel string, message any) *redis.IntCmd
}

type API struct {
	catalog Catalog
	qss     *session.Service
	ls      *leaderboard.Service

	redis  Redis
	prefix string

	hub *hub
	now func() time.Time
}

func New(c Config) *API {
	if c.Now == nil {
		c.Now = time.Now
	}

	a := &API{
		catalog: c.Catalog,
		qss:     c.Session,
		ls:      c.Leaderboard,
		redis:   c.Redis,
		prefix:  c.PubsubPrefix,
		hub:     newHub(),
		now:     c.Now,
	}

	// gRPC APIs
	if c.GRPC != nil {
		themequizv1.RegisterQuizServiceServer(c.GRPC, &grpcServer{a: a})
	}

	// Register event handlers
	c.EventBus.Subscribe(domain.EventNameLeaderboardUpdated, func(ctx context.Context, e event.Event) error {
		return a.PublishLeaderboardUpdated(ctx, e.(domain.EventLeaderboardUpdated))
	})

	return a
}

func (a *API) ListQuizzes(_ context.Context, _ *ListQuizzesRequest) (*ListQuizzesResponse, error) {
	quizzes := a.catalog.List()

	resp := &ListQuizzesResponse{
		Quizzes: make([]QuizSummary, 0, len(quizzes)),
	}
	for _, q := range quizzes {
		resp.Quizzes = append(resp.Quizzes, newQuizSummary(q))
	}

	return resp, nil
}

func (a *API) StartSession(ctx context.Context, req *StartSessionRequest) (*StartSessionResponse, error) {
	resp, err := a.qss.StartSession(ctx, session.StartSessionRequest{
		QuizType: req.QuizType,
	})
	if err != nil {
		return nil, err
	}

	return &StartSessionResponse{
		SessionID: resp.Session.SessionID,
		Quiz: QuizInfo{
			Name:            resp.Quiz.Name,
			Theme:           resp.Quiz.Theme,
			BackgroundImage: resp.Quiz.BackgroundImage,
			TotalQuestions:  len(resp.Quiz.Questions),
		},
	}, nil
}

func (a *API) GetQuestion(ctx context.Context, req *GetQuestionRequest) (*GetQuestionResponse, error) {
	v, err := a.qss.GetCurrentQuestion(ctx, session.GetCurrentQuestionRequest{
		SessionID: req.SessionID,
	})
	if err != nil {
		return nil, err
	}

	return newGetQuestionResponse(v), nil
}

func (a *API) SubmitAnswer(ctx context.Context, req *SubmitAnswerRequest) (*SubmitAnswerResponse, error) {
	res, err := a.qss.SubmitAnswer(ctx, session.SubmitAnswerRequest{
		SessionID: req.SessionID,
		OptionID:  req.OptionID,
	})
	if err != nil {
		return nil, err
	}

	return &SubmitAnswerResponse{
		IsCorrect:             res.Correct,
		Explanation:           res.Explanation,
		IsCompleted:           res.Completed,
		IsVictory:             res.Victory,
		CurrentScore:          res.Score,
		TotalQuestions:        res.TotalQuestions,
		NextQuestionAvailable: res.NextQuestionAvailable,
	}, nil
}

func (a *API) GetResults(ctx context.Context, req *GetResultsRequest) (*GetResultsResponse, error) {
	r, err := a.qss.GetResults(ctx, session.GetResultsRequest{
		SessionID: req.SessionID,
	})
	if err != nil {
		return nil, err
	}

	return newGetResultsResponse(r), nil
}

func (a *API) GetLeaderboard(ctx context.Context, req *GetLeaderboardRequest) (*Leaderboard, error) {
	l, err := a.ls.GetLeaderboard(ctx, leaderboard.GetLeaderboardRequest{
		QuizType: req.QuizType,
	})
	if err != nil {
		return nil, err
	}

	resp := newLeaderboard(*l, a.now())
	return &resp, nil
}

func (a *API) GetStats(ctx context.Context, req *GetStatsRequest) (*Stats, error) {
	st, err := a.qss.GetStats(ctx, session.GetStatsRequest{
		QuizType: req.QuizType,
	})
	if err != nil {
		return nil, err
	}

	return newStats(st), nil
}
