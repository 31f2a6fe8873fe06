package domain

import "github.com/victornm/themequiz/internal/errors"

// Failure kinds surfaced to clients. Use errors.Is to match them, and Clone to attach details.
var (
	ErrInvalidQuiz = errors.New(errors.CodeInvalidArgument,
		errors.WithReason("INVALID_QUIZ"), errors.WithMessagef("invalid quiz type"))

	ErrQuizNotFound = errors.New(errors.CodeNotFound,
		errors.WithReason("QUIZ_NOT_FOUND"), errors.WithMessagef("quiz not found"))

	ErrSessionNotFound = errors.New(errors.CodeNotFound,
		errors.WithReason("SESSION_NOT_FOUND"), errors.WithMessagef("session not found"))

	ErrAlreadyCompleted = errors.New(errors.CodeFailedPrecondition,
		errors.WithReason("ALREADY_COMPLETED"), errors.WithMessagef("quiz already completed"))

	ErrExhausted = errors.New(errors.CodeNotFound,
		errors.WithReason("EXHAUSTED"), errors.WithMessagef("no more questions available"))

	ErrInvalidOption = errors.New(errors.CodeInvalidArgument,
		errors.WithReason("INVALID_OPTION"), errors.WithMessagef("invalid option"))
)
