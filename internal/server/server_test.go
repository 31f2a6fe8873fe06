package server_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/victornm/themequiz/internal/server"
)

func TestInit(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var pubsub *miniredis.Miniredis

	tests := map[string]struct {
		arrange func(t *testing.T) server.Config
		assert  func(t *testing.T, s *server.Server, err error)
	}{
		"defaults should serve the embedded catalog": {
			arrange: func(*testing.T) server.Config {
				return testConfig()
			},

			assert: func(t *testing.T, s *server.Server, err error) {
				require.NoError(t, err)
				t.Cleanup(s.Shutdown)

				var quizzes []struct{ ID string }
				get(t, s.Handler(), "/api/quizzes", &quizzes)
				require.Len(t, quizzes, 3)
				assert.Equal(t, "treasure", quizzes[0].ID)
			},
		},

		"file catalog": {
			arrange: func(t *testing.T) server.Config {
				p := filepath.Join(t.TempDir(), "quizzes.yaml")
				require.NoError(t, os.WriteFile(p, []byte(`
quizzes:
  - id: space
    name: Space
    questions:
      - id: 1
        question: Which planet is red?
        options:
          - { id: a, text: Mars, correct: true }
          - { id: b, text: Venus }
`), 0o600))

				c := testConfig()
				c.Catalog.Source = server.CatalogFile
				c.Catalog.File = p
				return c
			},

			assert: func(t *testing.T, s *server.Server, err error) {
				require.NoError(t, err)
				t.Cleanup(s.Shutdown)

				var quizzes []struct{ ID string }
				get(t, s.Handler(), "/api/quizzes", &quizzes)
				require.Len(t, quizzes, 1)
				assert.Equal(t, "space", quizzes[0].ID)
			},
		},

		"redis leaderboard and pubsub": {
			arrange: func(t *testing.T) server.Config {
				rs := miniredis.RunT(t)

				c := testConfig()
				c.Leaderboard.Backend = server.LeaderboardRedis
				c.Redis.Leaderboard.Addrs = []string{rs.Addr()}
				c.Redis.Pubsub.Addrs = []string{rs.Addr()}
				return c
			},

			assert: func(t *testing.T, s *server.Server, err error) {
				require.NoError(t, err)
				t.Cleanup(s.Shutdown)

				var lb struct {
					QuizType string
					Entries  []any
				}
				get(t, s.Handler(), "/api/leaderboard/treasure", &lb)
				assert.Equal(t, "treasure", lb.QuizType)
				assert.Empty(t, lb.Entries)
			},
		},

		"unreachable redis should fail": {
			arrange: func(*testing.T) server.Config {
				c := testConfig()
				c.Leaderboard.Backend = server.LeaderboardRedis
				c.Redis.Leaderboard.Addrs = []string{"127.0.0.1:1"}
				return c
			},

			assert: func(t *testing.T, _ *server.Server, err error) {
				require.ErrorContains(t, err, "leaderboard")
			},
		},

		"unknown catalog source should fail": {
			arrange: func(*testing.T) server.Config {
				c := testConfig()
				c.Catalog.Source = "s3"
				return c
			},

			assert: func(t *testing.T, _ *server.Server, err error) {
				require.ErrorContains(t, err, `unknown catalog source "s3"`)
			},
		},

		"unknown leaderboard backend should fail": {
			arrange: func(*testing.T) server.Config {
				c := testConfig()
				c.Leaderboard.Backend = "etcd"
				return c
			},

			assert: func(t *testing.T, _ *server.Server, err error) {
				require.ErrorContains(t, err, `unknown leaderboard backend "etcd"`)
			},
		},

		"failed init should close opened redis clients": {
			arrange: func(t *testing.T) server.Config {
				pubsub = miniredis.RunT(t)

				c := testConfig()
				c.Leaderboard.Backend = "etcd"
				c.Redis.Pubsub.Addrs = []string{pubsub.Addr()}
				return c
			},

			assert: func(t *testing.T, _ *server.Server, err error) {
				require.Error(t, err)
				require.Positive(t, pubsub.TotalConnectionCount())
				assert.Eventually(t, func() bool {
					return pubsub.CurrentConnectionCount() == 0
				}, time.Second, 10*time.Millisecond)
			},
		},
	}

	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			s, err := server.Init(tt.arrange(t))
			tt.assert(t, s, err)
		})
	}
}

func TestServer_Metrics(t *testing.T) {
	gin.SetMode(gin.TestMode)

	s, err := server.Init(testConfig())
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/session/start", bytes.NewBufferString(`{"quizType":"treasure"}`))
	req.Header.Set("Content-Type", "application/json")
	s.Handler().ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	// Shutdown drains the event handlers feeding the metrics.
	s.Shutdown()

	rec = httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `themequiz_sessions_started_total{quiz="treasure"} 1`)
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}

func testConfig() server.Config {
	c := server.DefaultConfig()
	c.HTTP.Port = 0
	c.GRPC.Port = 0
	return c
}

func get(t *testing.T, h http.Handler, path string, out any) {
	t.Helper()

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out))
}
