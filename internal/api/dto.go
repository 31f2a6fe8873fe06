package api

import (
	"time"

	"github.com/victornm/themequiz/internal/domain"
	"github.com/victornm/themequiz/internal/session"
)

// Request and response types are shared by the HTTP and gRPC surfaces. Durations and timestamps
// are in milliseconds.
type (
	ListQuizzesRequest struct{}

	ListQuizzesResponse struct {
		Quizzes []QuizSummary `json:"quizzes"`
	}

	QuizSummary struct {
		ID              string `json:"id"`
		Name            string `json:"name"`
		Theme           string `json:"theme"`
		Description     string `json:"description"`
		Icon            string `json:"icon"`
		BackgroundImage string `json:"backgroundImage"`
		QuestionCount   int    `json:"questionCount"`
	}

	StartSessionRequest struct {
		QuizType string `json:"quizType" binding:"required"`
	}

	StartSessionResponse struct {
		SessionID string   `json:"sessionId"`
		Quiz      QuizInfo `json:"quiz"`
	}

	QuizInfo struct {
		Name            string `json:"name"`
		Theme           string `json:"theme"`
		BackgroundImage string `json:"backgroundImage"`
		TotalQuestions  int    `json:"totalQuestions"`
	}

	GetQuestionRequest struct {
		SessionID string `json:"sessionId" binding:"required"`
	}

	GetQuestionResponse struct {
		QuestionNumber  int      `json:"questionNumber"`
		TotalQuestions  int      `json:"totalQuestions"`
		Question        Question `json:"question"`
		Theme           string   `json:"theme"`
		BackgroundImage string   `json:"backgroundImage"`
	}

	Question struct {
		ID            int      `json:"id"`
		Difficulty    string   `json:"difficulty,omitempty"`
		Question      string   `json:"question"`
		SanskritQuote string   `json:"sanskritQuote,omitempty"`
		Translation   string   `json:"translation,omitempty"`
		CodeExample   string   `json:"codeExample,omitempty"`
		Options       []Option `json:"options"`
	}

	Option struct {
		ID    string `json:"id"`
		Text  string `json:"text"`
		Image string `json:"image,omitempty"`
		Code  bool   `json:"code"`
	}

	SubmitAnswerRequest struct {
		SessionID string `json:"sessionId" binding:"required"`
		OptionID  string `json:"optionId" binding:"required"`
	}

	SubmitAnswerResponse struct {
		IsCorrect             bool   `json:"isCorrect"`
		Explanation           string `json:"explanation"`
		IsCompleted           bool   `json:"isCompleted"`
		IsVictory             bool   `json:"isVictory"`
		CurrentScore          int    `json:"currentScore"`
		TotalQuestions        int    `json:"totalQuestions"`
		NextQuestionAvailable bool   `json:"nextQuestionAvailable"`
	}

	GetResultsRequest struct {
		SessionID string `json:"sessionId" binding:"required"`
	}

	GetResultsResponse struct {
		SessionID      string   `json:"sessionId"`
		QuizName       string   `json:"quizName"`
		Theme          string   `json:"theme"`
		Score          int      `json:"score"`
		TotalQuestions int      `json:"totalQuestions"`
		TotalTime      int64    `json:"totalTime"`
		IsCompleted    bool     `json:"isCompleted"`
		Answers        []Answer `json:"answers"`
		Percentage     int      `json:"percentage"`
	}

	Answer struct {
		QuestionID     int    `json:"questionId"`
		SelectedOption string `json:"selectedOption"`
		IsCorrect      bool   `json:"isCorrect"`
		Timestamp      int64  `json:"timestamp"`
	}

	GetLeaderboardRequest struct {
		QuizType string `json:"quizType" binding:"required"`
	}

	Leaderboard struct {
		QuizType string             `json:"quizType"`
		Entries  []LeaderboardEntry `json:"entries"`
	}

	LeaderboardEntry struct {
		Rank      int    `json:"rank"`
		SessionID string `json:"sessionId"`
		Score     int    `json:"score"`
		TotalTime int64  `json:"totalTime"`
		TimeAgo   int64  `json:"timeAgo"`
	}

	GetStatsRequest struct {
		QuizType string `json:"quizType" binding:"required"`
	}

	Stats struct {
		TotalAttempts     int     `json:"totalAttempts"`
		CompletedAttempts int     `json:"completedAttempts"`
		AverageScore      float64 `json:"averageScore"`
		AverageTime       float64 `json:"averageTime"`
		PerfectScores     int     `json:"perfectScores"`
	}

	ErrorResponse struct {
		Error  string `json:"error"`
		Reason string `json:"reason,omitempty"`
	}
)

func newQuizSummary(q domain.Quiz) QuizSummary {
	return QuizSummary{
		ID:              q.ID,
		Name:            q.Name,
		Theme:           q.Theme,
		Description:     q.Description,
		Icon:            q.Icon,
		BackgroundImage: q.BackgroundImage,
		QuestionCount:   len(q.Questions),
	}
}

func newGetQuestionResponse(v *session.QuestionView) *GetQuestionResponse {
	opts := make([]Option, 0, len(v.Options))
	for _, o := range v.Options {
		opts = append(opts, Option{ID: o.ID, Text: o.Text, Image: o.Image, Code: o.Code})
	}

	return &GetQuestionResponse{
		QuestionNumber: v.QuestionNumber,
		TotalQuestions: v.TotalQuestions,
		Question: Question{
			ID:            v.ID,
			Difficulty:    string(v.Difficulty),
			Question:      v.Text,
			SanskritQuote: v.SanskritQuote,
			Translation:   v.Translation,
			CodeExample:   v.CodeExample,
			Options:       opts,
		},
		Theme:           v.Theme,
		BackgroundImage: v.BackgroundImage,
	}
}

func newGetResultsResponse(r *session.Results) *GetResultsResponse {
	answers := make([]Answer, 0, len(r.Session.Answers))
	for _, a := range r.Session.Answers {
		answers = append(answers, Answer{
			QuestionID:     a.QuestionID,
			SelectedOption: a.SelectedOption,
			IsCorrect:      a.Correct,
			Timestamp:      a.Timestamp.UnixMilli(),
		})
	}

	return &GetResultsResponse{
		SessionID:      r.Session.SessionID,
		QuizName:       r.QuizName,
		Theme:          r.Theme,
		Score:          r.Session.Score,
		TotalQuestions: r.TotalQuestions,
		TotalTime:      r.TotalTime.Milliseconds(),
		IsCompleted:    r.Session.Completed,
		Answers:        answers,
		Percentage:     r.Percentage,
	}
}

// newLeaderboard ranks entries by position. TimeAgo is relative to now.
func newLeaderboard(l domain.Leaderboard, now time.Time) Leaderboard {
	data := Leaderboard{
		QuizType: l.QuizType,
		Entries:  make([]LeaderboardEntry, 0, len(l.Entries)),
	}

	for i, e := range l.Entries {
		data.Entries = append(data.Entries, LeaderboardEntry{
			Rank:      i + 1,
			SessionID: e.SessionID,
			Score:     e.Score,
			TotalTime: e.TotalTime.Milliseconds(),
			TimeAgo:   now.Sub(e.Timestamp).Milliseconds(),
		})
	}

	return data
}

func newStats(st *session.Stats) *Stats {
	return &Stats{
		TotalAttempts:     st.TotalAttempts,
		CompletedAttempts: st.CompletedAttempts,
		AverageScore:      st.AverageScore.InexactFloat64(),
		AverageTime:       st.AverageTime.InexactFloat64(),
		PerfectScores:     st.PerfectScores,
	}
}
