package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

const testCatalog = `
quizzes:
  - id: tiny
    name: Tiny Quiz
    theme: test
    questions:
      - id: 1
        difficulty: easy
        question: One?
        options:
          - { id: a, text: Yes, correct: true }
          - { id: b, text: No }
      - id: 2
        question: Two?
        options:
          - { id: a, text: Yes, correct: true }
          - { id: b, text: No }
`

func TestCatalogCmd(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "quizzes.yaml")
	require.NoError(t, os.WriteFile(file, []byte(testCatalog), 0o600))

	type summary struct {
		Quizzes []quizSummary `yaml:"quizzes"`
	}

	tests := map[string]struct {
		args   []string
		assert func(t *testing.T, s summary, err error)
	}{
		"built-in catalog": {
			args: []string{"catalog", "--config", ""},
			assert: func(t *testing.T, s summary, err error) {
				require.NoError(t, err)
				var ids []string
				for _, q := range s.Quizzes {
					ids = append(ids, q.ID)
				}
				assert.ElementsMatch(t, []string{"treasure", "programming", "mythology"}, ids)
			},
		},
		"file catalog": {
			args: []string{"catalog", "--config", "", "--file", file},
			assert: func(t *testing.T, s summary, err error) {
				require.NoError(t, err)
				require.Len(t, s.Quizzes, 1)
				assert.Equal(t, "tiny", s.Quizzes[0].ID)
				assert.Equal(t, 2, s.Quizzes[0].Questions)
				assert.Equal(t, 1, s.Quizzes[0].Difficulties["easy"])
			},
		},
		"missing file": {
			args: []string{"catalog", "--config", "", "--file", filepath.Join(dir, "missing.yaml")},
			assert: func(t *testing.T, _ summary, err error) {
				assert.Error(t, err)
			},
		},
	}

	for name, tc := range tests {
		tc := tc
		t.Run(name, func(t *testing.T) {
			var out bytes.Buffer
			cmd := newRootCmd()
			cmd.SetOut(&out)
			cmd.SetErr(&bytes.Buffer{})
			cmd.SetArgs(tc.args)

			err := cmd.Execute()

			var s summary
			if err == nil {
				require.NoError(t, yaml.Unmarshal(out.Bytes(), &s))
			}
			tc.assert(t, s, err)
		})
	}
}

func TestMigrateCmd_RequiresPostgres(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"migrate", "--config", ""})

	assert.ErrorContains(t, cmd.Execute(), "postgres catalog address not configured")
}
