package cli

import (
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"

	"github.com/victornm/themequiz/internal/catalog"
	"github.com/victornm/themequiz/internal/catalog/migrations"
)

func newMigrateCmd(configPath *string) *cobra.Command {
	var seed bool

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Create the Postgres catalog schema",
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := loadConfig(*configPath)
			if err != nil {
				return err
			}

			if c.Postgres.Catalog.Addr == "" {
				return fmt.Errorf("postgres catalog address not configured")
			}

			ctx := cmd.Context()
			db := bun.NewDB(sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(c.Postgres.Catalog.DSN()))), pgdialect.New())
			defer db.Close()

			if err := migrations.Migrate(ctx, db); err != nil {
				return err
			}
			slog.InfoContext(ctx, "migrate: migrations applied")

			if !seed {
				return nil
			}

			quizzes, err := catalog.BuiltinQuizzes()
			if err != nil {
				return err
			}

			if err := migrations.Seed(ctx, db, quizzes); err != nil {
				return err
			}
			slog.InfoContext(ctx, "migrate: catalog seeded", "quizzes", len(quizzes))

			return nil
		},
	}

	cmd.Flags().BoolVar(&seed, "seed", false, "load the built-in quizzes into the catalog table")
	return cmd
}
