package session

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/victornm/themequiz/internal/domain"
	"github.com/victornm/themequiz/internal/errors"
	"github.com/victornm/themequiz/internal/event"
)

type Config struct {
	Catalog  Catalog
	Store    Store
	EventBus *event.Bus
	// Leaderboard is optional. When set, completed sessions are recorded on it before
	// SubmitAnswer returns.
	Leaderboard Leaderboard
	// Now defaults to time.Now.
	Now func() time.Time
}

// Leaderboard ranks completed sessions.
type Leaderboard interface {
	RecordSession(ctx context.Context, e domain.EventSessionCompleted) error
}

type Service struct {
	catalog Catalog
	store   Store
	eb      *event.Bus
	lb      Leaderboard
	now     func() time.Time
}

func NewService(c Config) *Service {
	if c.Now == nil {
		c.Now = time.Now
	}

	return &Service{
		catalog: c.Catalog,
		store:   c.Store,
		eb:      c.EventBus,
		lb:      c.Leaderboard,
		now:     c.Now,
	}
}

type StartSessionRequest struct {
	QuizType string
}

type StartSessionResponse struct {
	Session domain.Session
	Quiz    domain.Quiz
}

// StartSession creates a new attempt at a quiz.
func (s *Service) StartSession(ctx context.Context, req StartSessionRequest) (*StartSessionResponse, error) {
	ss, err := s.store.Create(ctx, req.QuizType)
	if err != nil {
		return nil, err
	}

	quiz, err := s.catalog.GetQuiz(ss.QuizID)
	if err != nil {
		return nil, err
	}

	s.eb.Publish(ctx, domain.EventSessionStarted{Session: ss})

	return &StartSessionResponse{Session: ss, Quiz: quiz}, nil
}

// QuestionView is a question as shown to a player. It never carries the correct answer.
type QuestionView struct {
	QuestionNumber  int
	TotalQuestions  int
	ID              int
	Difficulty      domain.Difficulty
	Text            string
	SanskritQuote   string
	Translation     string
	CodeExample     string
	Options         []OptionView
	Theme           string
	BackgroundImage string
}

type OptionView struct {
	ID    string
	Text  string
	Image string
	Code  bool
}

type GetCurrentQuestionRequest struct {
	SessionID string
}

// GetCurrentQuestion returns the question the player should answer next. Calling it repeatedly
// without submitting an answer returns the same question.
func (s *Service) GetCurrentQuestion(ctx context.Context, req GetCurrentQuestionRequest) (*QuestionView, error) {
	ss, err := s.store.Get(ctx, req.SessionID)
	if err != nil {
		return nil, err
	}

	if ss.Completed {
		return nil, domain.ErrAlreadyCompleted.Clone()
	}

	quiz, err := s.quiz(ss)
	if err != nil {
		return nil, err
	}

	q, ok := SelectNext(quiz, ss)
	if !ok {
		return nil, domain.ErrExhausted.Clone()
	}

	return newQuestionView(quiz, q, len(ss.Answers)+1), nil
}

func newQuestionView(quiz domain.Quiz, q domain.Question, number int) *QuestionView {
	opts := make([]OptionView, 0, len(q.Options))
	for _, o := range q.Options {
		opts = append(opts, OptionView{ID: o.ID, Text: o.Text, Image: o.Image, Code: o.Code})
	}

	return &QuestionView{
		QuestionNumber:  number,
		TotalQuestions:  len(quiz.Questions),
		ID:              q.ID,
		Difficulty:      q.Difficulty,
		Text:            q.Text,
		SanskritQuote:   q.SanskritQuote,
		Translation:     q.Translation,
		CodeExample:     q.CodeExample,
		Options:         opts,
		Theme:           quiz.Theme,
		BackgroundImage: quiz.BackgroundImage,
	}
}

type SubmitAnswerRequest struct {
	SessionID string
	OptionID  string
}

type SubmitAnswerResponse struct {
	Correct               bool
	Explanation           string
	Score                 int
	TotalQuestions        int
	Completed             bool
	Victory               bool
	NextQuestionAvailable bool
}

// SubmitAnswer grades the selected option against the current question. A wrong answer ends the
// session, as does answering the last question correctly. Concurrent submissions for the same
// session are serialized by the store, so only one of them can grade a given question.
func (s *Service) SubmitAnswer(ctx context.Context, req SubmitAnswerRequest) (*SubmitAnswerResponse, error) {
	cur, err := s.store.Get(ctx, req.SessionID)
	if err != nil {
		return nil, err
	}

	quiz, err := s.quiz(cur)
	if err != nil {
		return nil, err
	}

	var (
		answer   domain.Answer
		question domain.Question
	)
	ss, err := s.store.Update(ctx, req.SessionID, func(ss *domain.Session) error {
		if ss.Completed {
			return domain.ErrAlreadyCompleted.Clone()
		}

		q, ok := SelectNext(quiz, *ss)
		if !ok {
			return domain.ErrExhausted.Clone()
		}

		o, ok := q.Option(req.OptionID)
		if !ok {
			return domain.ErrInvalidOption.Clone(
				errors.WithMessagef("invalid option: %s", req.OptionID))
		}

		now := s.now()
		answer = domain.Answer{
			QuestionID:     q.ID,
			SelectedOption: o.ID,
			Correct:        o.Correct,
			Timestamp:      now,
		}
		question = q

		ss.Answers = append(ss.Answers, answer)
		if o.Correct {
			ss.Score++
		}
		if !o.Correct || len(ss.Answers) == len(quiz.Questions) {
			ss.Completed = true
			ss.EndTime = now
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	total := len(quiz.Questions)
	victory := ss.Completed && ss.Score == total

	s.eb.Publish(ctx, domain.EventAnswerSubmitted{Session: ss, Answer: answer})
	if ss.Completed {
		done := domain.EventSessionCompleted{
			Session:        ss,
			TotalQuestions: total,
			Victory:        victory,
		}

		// The answer is already graded, so a leaderboard failure does not fail the request.
		if s.lb != nil {
			if err := s.lb.RecordSession(ctx, done); err != nil {
				slog.ErrorContext(ctx, "session: record leaderboard",
					"session_id", ss.SessionID,
					"error", err,
				)
			}
		}

		s.eb.Publish(ctx, done)
	}

	return &SubmitAnswerResponse{
		Correct:               answer.Correct,
		Explanation:           question.Explanation,
		Score:                 ss.Score,
		TotalQuestions:        total,
		Completed:             ss.Completed,
		Victory:               victory,
		NextQuestionAvailable: !ss.Completed,
	}, nil
}

type GetResultsRequest struct {
	SessionID string
}

type Results struct {
	Session        domain.Session
	QuizName       string
	Theme          string
	TotalQuestions int
	// TotalTime is measured up to now while the session is active.
	TotalTime  time.Duration
	Percentage int
}

// GetResults summarizes a session. It does not modify it.
func (s *Service) GetResults(ctx context.Context, req GetResultsRequest) (*Results, error) {
	ss, err := s.store.Get(ctx, req.SessionID)
	if err != nil {
		return nil, err
	}

	quiz, err := s.quiz(ss)
	if err != nil {
		return nil, err
	}

	total := len(quiz.Questions)

	return &Results{
		Session:        ss,
		QuizName:       quiz.Name,
		Theme:          quiz.Theme,
		TotalQuestions: total,
		TotalTime:      ss.Elapsed(s.now()),
		Percentage:     percentage(ss.Score, total),
	}, nil
}

// quiz resolves the quiz of a stored session. The catalog never shrinks, so a miss is a bug.
func (s *Service) quiz(ss domain.Session) (domain.Quiz, error) {
	quiz, err := s.catalog.GetQuiz(ss.QuizID)
	if err != nil {
		return domain.Quiz{}, errors.Internal(fmt.Errorf("session %s: %w", ss.SessionID, err))
	}

	return quiz, nil
}
