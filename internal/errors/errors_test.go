package errors_test

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/victornm/themequiz/internal/errors"
)

func TestError_Is(t *testing.T) {
	sentinel := errors.New(errors.CodeNotFound, errors.WithReason("SESSION_NOT_FOUND"))

	tests := map[string]struct {
		err  error
		want bool
	}{
		"same code and reason with a different message should match": {
			err:  errors.New(errors.CodeNotFound, errors.WithReason("SESSION_NOT_FOUND"), errors.WithMessagef("session not found: %s", "s1")),
			want: true,
		},
		"wrapped error should match": {
			err:  fmt.Errorf("get session: %w", sentinel.Clone(errors.WithMessagef("boom"))),
			want: true,
		},
		"same code with another reason should not match": {
			err:  errors.New(errors.CodeNotFound, errors.WithReason("EXHAUSTED")),
			want: false,
		},
		"plain error should not match": {
			err:  stderrors.New("session not found"),
			want: false,
		},
	}

	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.want, stderrors.Is(tt.err, sentinel))
		})
	}
}

func TestError_StatusMapping(t *testing.T) {
	tests := map[string]struct {
		err      *errors.Error
		wantHTTP int
		wantGRPC codes.Code
	}{
		"invalid argument": {
			err:      errors.New(errors.CodeInvalidArgument),
			wantHTTP: http.StatusBadRequest,
			wantGRPC: codes.InvalidArgument,
		},
		"failed precondition": {
			err:      errors.New(errors.CodeFailedPrecondition),
			wantHTTP: http.StatusBadRequest,
			wantGRPC: codes.FailedPrecondition,
		},
		"not found": {
			err:      errors.New(errors.CodeNotFound),
			wantHTTP: http.StatusNotFound,
			wantGRPC: codes.NotFound,
		},
		"unknown code falls back to 500": {
			err:      errors.New(errors.Code(codes.DataLoss)),
			wantHTTP: http.StatusInternalServerError,
			wantGRPC: codes.DataLoss,
		},
	}

	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.wantHTTP, tt.err.HTTPStatusCode())
			assert.Equal(t, tt.wantGRPC, status.Code(tt.err))
		})
	}
}

func TestConvert(t *testing.T) {
	cause := stderrors.New("redis down")

	e := errors.Convert(fmt.Errorf("record: %w", cause))
	require.Equal(t, errors.CodeInternal, e.Code)
	require.ErrorIs(t, e, cause)

	orig := errors.New(errors.CodeInvalidArgument, errors.WithReason("INVALID_OPTION"))
	require.Same(t, orig, errors.Convert(fmt.Errorf("submit: %w", orig)))
}

func TestError_Clone(t *testing.T) {
	orig := errors.New(errors.CodeNotFound, errors.WithReason("QUIZ_NOT_FOUND"))
	c := orig.Clone(errors.WithMessagef("quiz not found: %s", "q1"))

	assert.Equal(t, "NotFound", orig.Message)
	assert.Equal(t, "quiz not found: q1", c.Message)
	assert.Equal(t, orig.Reason, c.Reason)
}
