package session

import "github.com/victornm/themequiz/internal/domain"

const (
	neutralAccuracy = 0.5
	hardAccuracy    = 0.8
	mediumAccuracy  = 0.5
)

// SelectNext picks the question to serve next. It prefers the first unanswered question, in quiz
// order, whose difficulty matches the player's running accuracy, and falls back to the first
// unanswered question. It returns false when every question has been answered.
//
// SelectNext has no side effects: the current question is always derived from the answers, so it
// is called on both the fetch and the submit path and must agree on both.
func SelectNext(quiz domain.Quiz, ss domain.Session) (domain.Question, bool) {
	target := targetDifficulty(accuracy(ss))

	var (
		fallback domain.Question
		found    bool
	)
	for _, q := range quiz.Questions {
		if ss.Answered(q.ID) {
			continue
		}

		if q.Difficulty == target {
			return q, true
		}

		if !found {
			fallback, found = q, true
		}
	}

	return fallback, found
}

func accuracy(ss domain.Session) float64 {
	if len(ss.Answers) == 0 {
		return neutralAccuracy
	}

	return float64(ss.CorrectCount()) / float64(len(ss.Answers))
}

func targetDifficulty(acc float64) domain.Difficulty {
	switch {
	case acc >= hardAccuracy:
		return domain.DifficultyHard
	case acc >= mediumAccuracy:
		return domain.DifficultyMedium
	default:
		return domain.DifficultyEasy
	}
}
