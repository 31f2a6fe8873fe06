package domain

import (
	"slices"
	"time"
)

// Difficulty tags a question for adaptive selection. The zero value means untagged.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

func (d Difficulty) Valid() bool {
	switch d {
	case "", DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

// Quiz is a themed set of questions. Quizzes are loaded once and never mutated.
type Quiz struct {
	ID              string     `json:"id" yaml:"id"`
	Name            string     `json:"name" yaml:"name"`
	Theme           string     `json:"theme" yaml:"theme"`
	Description     string     `json:"description" yaml:"description"`
	Icon            string     `json:"icon" yaml:"icon"`
	BackgroundImage string     `json:"backgroundImage" yaml:"backgroundImage"`
	Questions       []Question `json:"questions" yaml:"questions"`
}

type Question struct {
	ID            int        `json:"id" yaml:"id"`
	Difficulty    Difficulty `json:"difficulty,omitempty" yaml:"difficulty,omitempty"`
	Text          string     `json:"question" yaml:"question"`
	Options       []Option   `json:"options" yaml:"options"`
	Explanation   string     `json:"explanation,omitempty" yaml:"explanation,omitempty"`
	SanskritQuote string     `json:"sanskritQuote,omitempty" yaml:"sanskritQuote,omitempty"`
	Translation   string     `json:"translation,omitempty" yaml:"translation,omitempty"`
	CodeExample   string     `json:"codeExample,omitempty" yaml:"codeExample,omitempty"`
}

// Option returns the option with the given ID.
func (q Question) Option(id string) (Option, bool) {
	for _, o := range q.Options {
		if o.ID == id {
			return o, true
		}
	}
	return Option{}, false
}

type Option struct {
	ID      string `json:"id" yaml:"id"`
	Text    string `json:"text" yaml:"text"`
	Correct bool   `json:"correct" yaml:"correct"`
	Image   string `json:"image,omitempty" yaml:"image,omitempty"`
	Code    bool   `json:"code,omitempty" yaml:"code,omitempty"`
}

// Session represents one attempt at a quiz.
type Session struct {
	SessionID  string
	QuizID     string
	CreateTime time.Time
	Answers    []Answer
	Score      int
	Completed  bool
	// EndTime is zero until the session is completed.
	EndTime time.Time
}

// Answered reports whether the question has already been answered in this session.
func (s Session) Answered(questionID int) bool {
	return slices.ContainsFunc(s.Answers, func(a Answer) bool {
		return a.QuestionID == questionID
	})
}

// CorrectCount returns the number of correct answers.
func (s Session) CorrectCount() int {
	n := 0
	for _, a := range s.Answers {
		if a.Correct {
			n++
		}
	}
	return n
}

// Elapsed returns the time spent on the session, up to now if it is still active.
func (s Session) Elapsed(now time.Time) time.Duration {
	if s.Completed {
		return s.EndTime.Sub(s.CreateTime)
	}
	return now.Sub(s.CreateTime)
}

// Clone returns a deep copy, so the copy's answers can be appended without touching s.
func (s Session) Clone() Session {
	c := s
	c.Answers = slices.Clone(s.Answers)
	return c
}

type Answer struct {
	QuestionID     int       `json:"questionId"`
	SelectedOption string    `json:"selectedOption"`
	Correct        bool      `json:"isCorrect"`
	Timestamp      time.Time `json:"timestamp"`
}

// Leaderboard is the ranked list of finished sessions of a quiz.
// Entries are sorted by score in descending order, then by total time in ascending order.
type Leaderboard struct {
	QuizType string
	Entries  []LeaderboardEntry
}

type LeaderboardEntry struct {
	SessionID string
	Score     int
	TotalTime time.Duration
	Timestamp time.Time
}

// RanksAbove reports whether e should be placed before o on a leaderboard.
func (e LeaderboardEntry) RanksAbove(o LeaderboardEntry) bool {
	if e.Score != o.Score {
		return e.Score > o.Score
	}
	return e.TotalTime < o.TotalTime
}
