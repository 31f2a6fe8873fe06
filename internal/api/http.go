package api

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/victornm/themequiz/internal/errors"
)

// RegisterHTTP mounts the quiz routes on r.
func (a *API) RegisterHTTP(r gin.IRouter) {
	r.GET("/quizzes", a.handleListQuizzes)
	r.POST("/session/start", a.handleStartSession)
	r.GET("/session/:id/question", a.handleGetQuestion)
	r.POST("/session/:id/answer", a.handleSubmitAnswer)
	r.GET("/session/:id/results", a.handleGetResults)
	r.GET("/leaderboard/:quizType", a.handleGetLeaderboard)
	r.GET("/leaderboard/:quizType/live", a.handleLeaderboardLive)
	r.GET("/stats/:quizType", a.handleGetStats)
}

func (a *API) handleListQuizzes(c *gin.Context) {
	resp, err := a.ListQuizzes(c.Request.Context(), &ListQuizzesRequest{})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp.Quizzes)
}

func (a *API) handleStartSession(c *gin.Context) {
	var req StartSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, badRequest(err))
		return
	}

	resp, err := a.StartSession(c.Request.Context(), &req)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (a *API) handleGetQuestion(c *gin.Context) {
	resp, err := a.GetQuestion(c.Request.Context(), &GetQuestionRequest{SessionID: c.Param("id")})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (a *API) handleSubmitAnswer(c *gin.Context) {
	// The session comes from the path, never from the body.
	req := SubmitAnswerRequest{SessionID: c.Param("id")}
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, badRequest(err))
		return
	}
	req.SessionID = c.Param("id")

	resp, err := a.SubmitAnswer(c.Request.Context(), &req)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (a *API) handleGetResults(c *gin.Context) {
	resp, err := a.GetResults(c.Request.Context(), &GetResultsRequest{SessionID: c.Param("id")})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (a *API) handleGetLeaderboard(c *gin.Context) {
	resp, err := a.GetLeaderboard(c.Request.Context(), &GetLeaderboardRequest{QuizType: c.Param("quizType")})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (a *API) handleGetStats(c *gin.Context) {
	resp, err := a.GetStats(c.Request.Context(), &GetStatsRequest{QuizType: c.Param("quizType")})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func badRequest(err error) error {
	return errors.New(errors.CodeInvalidArgument,
		errors.WithMessagef("invalid request: %v", err),
		errors.WithCause(err))
}

func writeError(c *gin.Context, err error) {
	e := errors.Convert(err)
	if e.Code == errors.CodeInternal {
		slog.ErrorContext(c.Request.Context(), "http: request failed",
			"path", c.FullPath(),
			"error", err,
		)
	}
	_ = c.Error(err)

	c.AbortWithStatusJSON(e.HTTPStatusCode(), ErrorResponse{
		Error:  e.Message,
		Reason: e.Reason,
	})
}
