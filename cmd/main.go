// Package main provides the CLI entrypoint for the dork generator.
// It wires the server subcommands (serve, migrate) and the client
// subcommands (categories, generate, saved, prefs), loads configuration
// and initializes logging.
package main

import (
	"context"
	"database/sql"
	"dorker/internal/config"
	"dorker/pkg/logger"
	"dorker/pkg/prefs"
	"dorker/pkg/storage"
	"dorker/pkg/storage/postgres"
	"dorker/pkg/storage/sqlite"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// cli carries the values shared by every subcommand. cfg is filled by the
// root command before any subcommand runs.
type cli struct {
	configPath string
	apiURL     string
	prefsPath  string

	cfg *config.Config
}

// database is an opened storage backend together with what goose needs to
// migrate it.
type database struct {
	storage.Storage

	db            *sql.DB
	dialect       string
	migrationsDir string
}

// openStorage opens the backend selected by cfg.Database.Driver.
func openStorage(ctx context.Context, cfg *config.Config) (*database, error) {
	switch cfg.Database.Driver {
	case storage.DriverSQLite:
		path := cfg.Database.SQLite.Path
		if path == "" {
			path = filepath.Join(prefs.DataDir(), "dorker.db")
		}
		s, err := sqlite.New(ctx, sqlite.Options{
			Path:        path,
			BusyTimeout: cfg.Database.SQLite.BusyTimeout,
		})
		if err != nil {
			return nil, fmt.Errorf("could not create sqlite storage: %w", err)
		}
		logger.Info(ctx, "using sqlite storage", zap.String("path", s.Path))

		return &database{Storage: s, db: s.DB, dialect: sqlite.Dialect, migrationsDir: "migrations/sqlite"}, nil
	case storage.DriverPostgres:
		s, err := postgres.New(ctx, postgres.Options{
			Username:           cfg.Database.Username,
			Password:           cfg.Database.Password,
			Host:               cfg.Database.Host,
			Port:               cfg.Database.Port,
			Database:           cfg.Database.DatabaseName,
			ConnMaxLifetime:    cfg.Database.ConnMaxLifetime,
			ConnMaxIdleTime:    cfg.Database.ConnMaxIdleTime,
			MaxOpenConnections: cfg.Database.MaxOpenConnections,
			MaxIdleConnections: cfg.Database.MaxIdleConnections,
			SslMode:            cfg.Database.SslMode,
		})
		if err != nil {
			return nil, fmt.Errorf("could not create postgres storage: %w", err)
		}
		logger.Info(ctx, "using postgres storage", zap.String("host", cfg.Database.Host))

		return &database{Storage: s, db: s.DB, dialect: postgres.Dialect, migrationsDir: "migrations/postgres"}, nil
	default:
		return nil, fmt.Errorf("%w: %q", storage.ErrUnknownDriver, cfg.Database.Driver)
	}
}

// getStorage opens the configured storage and returns it along with a
// cleanup function to close it.
func getStorage(ctx context.Context, cfg *config.Config) (*database, func()) {
	db, err := openStorage(ctx, cfg)
	if err != nil {
		logger.Fatal(ctx, "could not open storage", zap.Error(err))
	}

	return db, func() {
		logger.Info(ctx, "closing storage...")
		if err = db.Close(); err != nil {
			logger.Warn(ctx, "could not close storage", zap.Error(err))
		}
	}
}

// main sets up the root Cobra command, loads configuration and logging, and
// registers subcommands before executing the CLI.
func main() {
	c := &cli{}

	rootCmd := &cobra.Command{
		Use:           "dorker",
		Short:         "Builds search engine dork queries and keeps the useful ones",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(c.configPath)
			if err != nil {
				return err
			}
			c.cfg = cfg
			logger.Setup(cfg.Environment, logger.WithLevel(cfg.LogLevel))

			return nil
		},
	}
	rootCmd.PersistentFlags().StringVarP(&c.configPath, "config", "c", "config.yml", "Config File Path")
	rootCmd.PersistentFlags().StringVar(&c.apiURL, "api-url", "", "API base URL (overrides client.apiUrl)")
	rootCmd.PersistentFlags().StringVar(&c.prefsPath, "prefs", prefs.DefaultPath(), "Preferences File Path")

	ctx := context.Background()

	defer func() {
		if p := recover(); p != nil {
			logger.Error(ctx, "captured panic, exiting...", zap.Any("panic", p))
			logger.Sync(ctx)

			panic(p)
		}
	}()

	rootCmd.AddCommand(
		migrateCommand(c),
		serveCommand(c),
		categoriesCommand(c),
		generateCommand(c),
		savedCommand(c),
		prefsCommand(c),
	)

	err := rootCmd.ExecuteContext(ctx)
	logger.Sync(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1) //nolint: gocritic
	}
}
