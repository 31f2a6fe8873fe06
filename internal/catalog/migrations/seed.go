package migrations

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/migrate"

	"github.com/victornm/themequiz/internal/domain"
)

// Migrate applies all pending migrations.
func Migrate(ctx context.Context, db *bun.DB) error {
	m := migrate.NewMigrator(db, Migrations)

	if err := m.Init(ctx); err != nil {
		return fmt.Errorf("migrate: init: %w", err)
	}

	if _, err := m.Migrate(ctx); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	return nil
}

// Seed upserts the quizzes, keeping their order in the position column.
func Seed(ctx context.Context, db *bun.DB, quizzes []domain.Quiz) error {
	return db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		const stmt = `
INSERT INTO quizzes (id, position, data) VALUES (?, ?, ?::jsonb)
ON CONFLICT (id) DO UPDATE SET position = EXCLUDED.position, data = EXCLUDED.data;`

		for i, q := range quizzes {
			data, err := json.Marshal(q)
			if err != nil {
				return fmt.Errorf("marshal quiz %s: %w", q.ID, err)
			}

			if _, err := tx.ExecContext(ctx, stmt, q.ID, i, string(data)); err != nil {
				return fmt.Errorf("upsert quiz %s: %w", q.ID, err)
			}
		}

		return nil
	})
}
