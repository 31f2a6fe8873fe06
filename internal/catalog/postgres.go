package catalog

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/victornm/themequiz/internal/domain"
)

// Querier is the subset of *pgxpool.Pool used to load quizzes.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// LoadPostgres builds a catalog from the quizzes table. Each row holds one quiz as JSONB.
func LoadPostgres(ctx context.Context, db Querier) (*Catalog, error) {
	const stmt = `SELECT id, data FROM quizzes ORDER BY position, id;`

	rows, err := db.Query(ctx, stmt)
	if err != nil {
		return nil, fmt.Errorf("catalog: query quizzes: %w", err)
	}

	quizzes, err := pgx.CollectRows(rows, func(r pgx.CollectableRow) (domain.Quiz, error) {
		var (
			id  string
			raw []byte
			q   domain.Quiz
		)
		if err := r.Scan(&id, &raw); err != nil {
			return domain.Quiz{}, err
		}

		if err := json.Unmarshal(raw, &q); err != nil {
			return domain.Quiz{}, fmt.Errorf("unmarshal quiz %s: %w", id, err)
		}
		q.ID = id

		return q, nil
	})
	if err != nil {
		return nil, fmt.Errorf("catalog: collect quizzes: %w", err)
	}

	return New(quizzes)
}
