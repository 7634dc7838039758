package main

import (
	"context"
	root "dorker"
	"dorker/pkg/logger"
	"fmt"
	"strings"

	"github.com/pressly/goose/v3"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// gooseLogger routes goose output through the application logger.
type gooseLogger struct {
	ctx context.Context //nolint: containedctx
}

func (l gooseLogger) Printf(format string, v ...any) {
	logger.Info(l.ctx, strings.TrimSpace(fmt.Sprintf(format, v...)))
}

func (l gooseLogger) Fatalf(format string, v ...any) {
	logger.Fatal(l.ctx, strings.TrimSpace(fmt.Sprintf(format, v...)))
}

// runMigrations applies the embedded migrations of db's driver up to the
// latest version.
func runMigrations(ctx context.Context, db *database) error {
	goose.SetBaseFS(root.Migrations)
	goose.SetLogger(gooseLogger{ctx: ctx})

	if err := goose.SetDialect(db.dialect); err != nil {
		return fmt.Errorf("could not set goose dialect to %s: %w", db.dialect, err)
	}
	if err := goose.UpContext(ctx, db.db, db.migrationsDir); err != nil {
		return fmt.Errorf("could not migrate database: %w", err)
	}

	return nil
}

// migrateCommand constructs the 'migrate' subcommand that applies database
// migrations to the latest version using goose.
func migrateCommand(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Migrates database to the latest version",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := cmd.Context()

			db, closeDB := getStorage(ctx, c.cfg)
			defer closeDB()

			if err := runMigrations(ctx, db); err != nil {
				logger.Fatal(ctx, "could not migrate database", zap.String("driver", c.cfg.Database.Driver), zap.Error(err))
			}
		},
	}

	return cmd
}
