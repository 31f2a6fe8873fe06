package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/victornm/themequiz/internal/config"
)

type testConfig struct {
	HTTP struct {
		Port int32
	}

	Leaderboard struct {
		Backend string
		Size    int
	}

	Redis struct {
		Addrs []string
	}
}

func defaults() testConfig {
	var c testConfig
	c.HTTP.Port = 8080
	c.Leaderboard.Backend = "memory"
	c.Leaderboard.Size = 10
	return c
}

func TestLoad(t *testing.T) {
	tests := map[string]struct {
		file   string
		env    map[string]string
		assert func(t *testing.T, c testConfig)
	}{
		"no file keeps the defaults": {
			assert: func(t *testing.T, c testConfig) {
				assert.Equal(t, defaults(), c)
			},
		},

		"file overrides the defaults": {
			file: "leaderboard:\n  backend: redis\nredis:\n  addrs: [\"localhost:6379\"]\n",
			assert: func(t *testing.T, c testConfig) {
				assert.Equal(t, "redis", c.Leaderboard.Backend)
				assert.Equal(t, 10, c.Leaderboard.Size, "keys missing from the file keep their default")
				assert.Equal(t, []string{"localhost:6379"}, c.Redis.Addrs)
			},
		},

		"environment overrides the file": {
			file: "http:\n  port: 9000\n",
			env:  map[string]string{"HTTP_PORT": "9100"},
			assert: func(t *testing.T, c testConfig) {
				assert.Equal(t, int32(9100), c.HTTP.Port)
			},
		},

		"environment applies without a file": {
			env: map[string]string{"LEADERBOARD_BACKEND": "redis", "LEADERBOARD_SIZE": "25"},
			assert: func(t *testing.T, c testConfig) {
				assert.Equal(t, "redis", c.Leaderboard.Backend)
				assert.Equal(t, 25, c.Leaderboard.Size)
			},
		},

		"environment overrides a key missing from the file": {
			file: "http:\n  port: 9000\n",
			env:  map[string]string{"LEADERBOARD_SIZE": "3"},
			assert: func(t *testing.T, c testConfig) {
				assert.Equal(t, int32(9000), c.HTTP.Port)
				assert.Equal(t, 3, c.Leaderboard.Size)
			},
		},
	}

	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			var path string
			if tt.file != "" {
				path = filepath.Join(t.TempDir(), "config.yaml")
				require.NoError(t, os.WriteFile(path, []byte(tt.file), 0o600))
			}

			c := defaults()
			require.NoError(t, config.Load(path, &c))
			tt.assert(t, c)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	c := defaults()
	err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"), &c)
	require.ErrorContains(t, err, "read config from file")
}
