package session_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/victornm/themequiz/internal/domain"
	"github.com/victornm/themequiz/internal/session"
)

func TestSelectNext(t *testing.T) {
	quiz := testQuiz()

	answered := func(pairs ...any) domain.Session {
		var ss domain.Session
		for i := 0; i < len(pairs); i += 2 {
			ss.Answers = append(ss.Answers, domain.Answer{
				QuestionID: pairs[i].(int),
				Correct:    pairs[i+1].(bool),
			})
		}
		return ss
	}

	tests := map[string]struct {
		session domain.Session
		wantID  int
		wantOK  bool
	}{
		"fresh session should start at medium": {
			session: answered(),
			wantID:  2,
			wantOK:  true,
		},
		"perfect accuracy should pick hard": {
			session: answered(2, true),
			wantID:  3,
			wantOK:  true,
		},
		"zero accuracy should pick easy": {
			session: answered(2, false),
			wantID:  1,
			wantOK:  true,
		},
		"accuracy between thresholds should pick medium": {
			session: answered(1, true, 3, true, 4, false),
			wantID:  2,
			wantOK:  true,
		},
		"accuracy of exactly 0.8 should pick hard": {
			session: answered(1, true, 2, true, 4, true, 9, true, 10, false),
			wantID:  3,
			wantOK:  true,
		},
		"accuracy of 0.9 should pick hard": {
			session: answered(1, true, 2, true, 4, true, 11, true, 12, true, 13, true, 14, true, 15, true, 16, true, 17, false),
			wantID:  3,
			wantOK:  true,
		},
		"no question with the target difficulty should fall back to the first unanswered": {
			session: answered(2, true, 3, true),
			wantID:  1,
			wantOK:  true,
		},
		"untagged questions are served once tagged ones run out": {
			session: answered(2, true, 3, true, 1, true),
			wantID:  4,
			wantOK:  true,
		},
		"all answered should report none left": {
			session: answered(1, true, 2, true, 3, true, 4, true),
			wantOK:  false,
		},
	}

	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			q, ok := session.SelectNext(quiz, tt.session)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.wantID, q.ID)
			}

			// Selection must not depend on anything but its inputs.
			again, _ := session.SelectNext(quiz, tt.session)
			assert.Equal(t, q, again)
		})
	}
}

// testQuiz has one question of each difficulty and an untagged one. The correct option is always "a".
func testQuiz() domain.Quiz {
	q := func(id int, d domain.Difficulty) domain.Question {
		return domain.Question{
			ID:          id,
			Difficulty:  d,
			Text:        "question",
			Explanation: "because",
			Options: []domain.Option{
				{ID: "a", Text: "right", Correct: true},
				{ID: "b", Text: "wrong"},
			},
		}
	}

	return domain.Quiz{
		ID:              "test",
		Name:            "Test Quiz",
		Theme:           "plain",
		BackgroundImage: "/images/test.jpg",
		Questions: []domain.Question{
			q(1, domain.DifficultyEasy),
			q(2, domain.DifficultyMedium),
			q(3, domain.DifficultyHard),
			q(4, ""),
		},
	}
}
