package api

//go:generate protoc -I proto --go_out=proto --go_opt=paths=source_relative --go-grpc_out=proto --go-grpc_opt=paths=source_relative themequiz/v1/quiz.proto

import (
	"context"

	"github.com/gin-gonic/gin/binding"

	themequizv1 "github.com/victornm/themequiz/internal/api/proto/themequiz/v1"
	"github.com/victornm/themequiz/internal/errors"
)

// grpcServer serves the quiz service over gRPC. Requests are validated with the same rules as
// the HTTP binding before they reach the API.
type grpcServer struct {
	themequizv1.UnimplementedQuizServiceServer

	a *API
}

func (s *grpcServer) ListQuizzes(ctx context.Context, _ *themequizv1.ListQuizzesRequest) (*themequizv1.ListQuizzesResponse, error) {
	resp, err := s.a.ListQuizzes(ctx, &ListQuizzesRequest{})
	if err != nil {
		return nil, errors.Convert(err)
	}

	out := &themequizv1.ListQuizzesResponse{
		Quizzes: make([]*themequizv1.QuizSummary, 0, len(resp.Quizzes)),
	}
	for _, q := range resp.Quizzes {
		out.Quizzes = append(out.Quizzes, &themequizv1.QuizSummary{
			Id:              q.ID,
			Name:            q.Name,
			Theme:           q.Theme,
			Description:     q.Description,
			Icon:            q.Icon,
			BackgroundImage: q.BackgroundImage,
			QuestionCount:   int32(q.QuestionCount),
		})
	}

	return out, nil
}

func (s *grpcServer) StartSession(ctx context.Context, req *themequizv1.StartSessionRequest) (*themequizv1.StartSessionResponse, error) {
	in := &StartSessionRequest{QuizType: req.GetQuizType()}
	if err := validate(in); err != nil {
		return nil, err
	}

	resp, err := s.a.StartSession(ctx, in)
	if err != nil {
		return nil, errors.Convert(err)
	}

	return &themequizv1.StartSessionResponse{
		SessionId: resp.SessionID,
		Quiz: &themequizv1.QuizInfo{
			Name:            resp.Quiz.Name,
			Theme:           resp.Quiz.Theme,
			BackgroundImage: resp.Quiz.BackgroundImage,
			TotalQuestions:  int32(resp.Quiz.TotalQuestions),
		},
	}, nil
}

func (s *grpcServer) GetQuestion(ctx context.Context, req *themequizv1.GetQuestionRequest) (*themequizv1.GetQuestionResponse, error) {
	in := &GetQuestionRequest{SessionID: req.GetSessionId()}
	if err := validate(in); err != nil {
		return nil, err
	}

	resp, err := s.a.GetQuestion(ctx, in)
	if err != nil {
		return nil, errors.Convert(err)
	}

	q := resp.Question
	opts := make([]*themequizv1.Option, 0, len(q.Options))
	for _, o := range q.Options {
		opts = append(opts, &themequizv1.Option{Id: o.ID, Text: o.Text, Image: o.Image, Code: o.Code})
	}

	return &themequizv1.GetQuestionResponse{
		QuestionNumber: int32(resp.QuestionNumber),
		TotalQuestions: int32(resp.TotalQuestions),
		Question: &themequizv1.Question{
			Id:            int32(q.ID),
			Difficulty:    q.Difficulty,
			Text:          q.Question,
			SanskritQuote: q.SanskritQuote,
			Translation:   q.Translation,
			CodeExample:   q.CodeExample,
			Options:       opts,
		},
		Theme:           resp.Theme,
		BackgroundImage: resp.BackgroundImage,
	}, nil
}

func (s *grpcServer) SubmitAnswer(ctx context.Context, req *themequizv1.SubmitAnswerRequest) (*themequizv1.SubmitAnswerResponse, error) {
	in := &SubmitAnswerRequest{SessionID: req.GetSessionId(), OptionID: req.GetOptionId()}
	if err := validate(in); err != nil {
		return nil, err
	}

	resp, err := s.a.SubmitAnswer(ctx, in)
	if err != nil {
		return nil, errors.Convert(err)
	}

	return &themequizv1.SubmitAnswerResponse{
		IsCorrect:             resp.IsCorrect,
		Explanation:           resp.Explanation,
		IsCompleted:           resp.IsCompleted,
		IsVictory:             resp.IsVictory,
		CurrentScore:          int32(resp.CurrentScore),
		TotalQuestions:        int32(resp.TotalQuestions),
		NextQuestionAvailable: resp.NextQuestionAvailable,
	}, nil
}

func (s *grpcServer) GetResults(ctx context.Context, req *themequizv1.GetResultsRequest) (*themequizv1.GetResultsResponse, error) {
	in := &GetResultsRequest{SessionID: req.GetSessionId()}
	if err := validate(in); err != nil {
		return nil, err
	}

	resp, err := s.a.GetResults(ctx, in)
	if err != nil {
		return nil, errors.Convert(err)
	}

	answers := make([]*themequizv1.Answer, 0, len(resp.Answers))
	for _, a := range resp.Answers {
		answers = append(answers, &themequizv1.Answer{
			QuestionId:     int32(a.QuestionID),
			SelectedOption: a.SelectedOption,
			IsCorrect:      a.IsCorrect,
			TimestampMs:    a.Timestamp,
		})
	}

	return &themequizv1.GetResultsResponse{
		SessionId:      resp.SessionID,
		QuizName:       resp.QuizName,
		Theme:          resp.Theme,
		Score:          int32(resp.Score),
		TotalQuestions: int32(resp.TotalQuestions),
		TotalTimeMs:    resp.TotalTime,
		IsCompleted:    resp.IsCompleted,
		Answers:        answers,
		Percentage:     int32(resp.Percentage),
	}, nil
}

func (s *grpcServer) GetLeaderboard(ctx context.Context, req *themequizv1.GetLeaderboardRequest) (*themequizv1.GetLeaderboardResponse, error) {
	in := &GetLeaderboardRequest{QuizType: req.GetQuizType()}
	if err := validate(in); err != nil {
		return nil, err
	}

	resp, err := s.a.GetLeaderboard(ctx, in)
	if err != nil {
		return nil, errors.Convert(err)
	}

	entries := make([]*themequizv1.LeaderboardEntry, 0, len(resp.Entries))
	for _, e := range resp.Entries {
		entries = append(entries, &themequizv1.LeaderboardEntry{
			Rank:        int32(e.Rank),
			SessionId:   e.SessionID,
			Score:       int32(e.Score),
			TotalTimeMs: e.TotalTime,
			TimeAgoMs:   e.TimeAgo,
		})
	}

	return &themequizv1.GetLeaderboardResponse{
		QuizType: resp.QuizType,
		Entries:  entries,
	}, nil
}

func (s *grpcServer) GetStats(ctx context.Context, req *themequizv1.GetStatsRequest) (*themequizv1.GetStatsResponse, error) {
	in := &GetStatsRequest{QuizType: req.GetQuizType()}
	if err := validate(in); err != nil {
		return nil, err
	}

	resp, err := s.a.GetStats(ctx, in)
	if err != nil {
		return nil, errors.Convert(err)
	}

	return &themequizv1.GetStatsResponse{
		QuizType:          in.QuizType,
		TotalAttempts:     int32(resp.TotalAttempts),
		CompletedAttempts: int32(resp.CompletedAttempts),
		AverageScore:      resp.AverageScore,
		AverageTimeMs:     resp.AverageTime,
		PerfectScores:     int32(resp.PerfectScores),
	}, nil
}

func validate(req any) error {
	if err := binding.Validator.ValidateStruct(req); err != nil {
		return badRequest(err)
	}
	return nil
}
