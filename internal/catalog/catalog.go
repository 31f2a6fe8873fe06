package catalog

import (
	"fmt"
	"slices"

	"github.com/victornm/themequiz/internal/domain"
	"github.com/victornm/themequiz/internal/errors"
)

const (
	minOptions = 2
	maxOptions = 4
)

// Catalog is a read-only registry of quizzes. It is safe for concurrent use because it is never
// mutated after New returns.
type Catalog struct {
	order   []string
	quizzes map[string]domain.Quiz
}

// New validates the quizzes and builds a catalog keeping their order.
func New(quizzes []domain.Quiz) (*Catalog, error) {
	c := &Catalog{
		order:   make([]string, 0, len(quizzes)),
		quizzes: make(map[string]domain.Quiz, len(quizzes)),
	}

	for _, q := range quizzes {
		if err := validate(q); err != nil {
			return nil, fmt.Errorf("catalog: quiz %q: %w", q.ID, err)
		}

		if _, ok := c.quizzes[q.ID]; ok {
			return nil, fmt.Errorf("catalog: duplicate quiz %q", q.ID)
		}

		c.order = append(c.order, q.ID)
		c.quizzes[q.ID] = clone(q)
	}

	return c, nil
}

// GetQuiz returns the quiz with the given ID, or domain.ErrQuizNotFound.
func (c *Catalog) GetQuiz(id string) (domain.Quiz, error) {
	q, ok := c.quizzes[id]
	if !ok {
		return domain.Quiz{}, domain.ErrQuizNotFound.Clone(
			errors.WithMessagef("quiz not found: %s", id))
	}

	return q, nil
}

// List returns all quizzes in definition order.
func (c *Catalog) List() []domain.Quiz {
	l := make([]domain.Quiz, 0, len(c.order))
	for _, id := range c.order {
		l = append(l, c.quizzes[id])
	}

	return l
}

func validate(q domain.Quiz) error {
	if q.ID == "" {
		return fmt.Errorf("missing id")
	}

	if len(q.Questions) == 0 {
		return fmt.Errorf("no questions")
	}

	seen := make(map[int]struct{}, len(q.Questions))
	for _, qs := range q.Questions {
		if _, ok := seen[qs.ID]; ok {
			return fmt.Errorf("duplicate question %d", qs.ID)
		}
		seen[qs.ID] = struct{}{}

		if err := validateQuestion(qs); err != nil {
			return fmt.Errorf("question %d: %w", qs.ID, err)
		}
	}

	return nil
}

func validateQuestion(q domain.Question) error {
	if !q.Difficulty.Valid() {
		return fmt.Errorf("unknown difficulty %q", q.Difficulty)
	}

	if n := len(q.Options); n < minOptions || n > maxOptions {
		return fmt.Errorf("want %d to %d options, got %d", minOptions, maxOptions, n)
	}

	var correct int
	ids := make(map[string]struct{}, len(q.Options))
	for _, o := range q.Options {
		if o.ID == "" {
			return fmt.Errorf("option without id")
		}
		if _, ok := ids[o.ID]; ok {
			return fmt.Errorf("duplicate option %q", o.ID)
		}
		ids[o.ID] = struct{}{}

		if o.Correct {
			correct++
		}
	}

	if correct != 1 {
		return fmt.Errorf("want exactly 1 correct option, got %d", correct)
	}

	return nil
}

// clone detaches the quiz from the caller's slices.
func clone(q domain.Quiz) domain.Quiz {
	q.Questions = slices.Clone(q.Questions)
	for i := range q.Questions {
		q.Questions[i].Options = slices.Clone(q.Questions[i].Options)
	}

	return q
}
