// Package sqlite provides the SQLite storage backend used by default for
// single-user deployments. It relies on the pure Go modernc.org/sqlite driver.
package sqlite

import (
	"context"
	"database/sql"
	"dorker/pkg/storage"
	"dorker/pkg/storage/sqlstore"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/sqlite3"
	_ "modernc.org/sqlite"
)

const (
	// Dialect is the goqu and goose dialect name of this backend.
	Dialect = "sqlite3"

	driverName = "sqlite"
)

// Options configures the SQLite backend.
type Options struct {
	// Path is the database file. Its directory is created when missing.
	Path string
	// BusyTimeout is how long a statement waits on a locked database.
	BusyTimeout time.Duration
}

// SQLite implements storage.Storage on a single database file.
type SQLite struct {
	sqlstore.Store

	// Path is the database file in use.
	Path string
}

var _ storage.Storage = (*SQLite)(nil)

// New opens (creating if needed) the database file at options.Path.
func New(ctx context.Context, options Options) (*SQLite, error) {
	if options.Path == "" {
		return nil, fmt.Errorf("sqlite path is empty")
	}
	if err := os.MkdirAll(filepath.Dir(options.Path), 0o750); err != nil {
		return nil, fmt.Errorf("could not create database directory: %w", err)
	}

	db, err := sql.Open(driverName, options.Path+"?mode=rwc")
	if err != nil {
		return nil, fmt.Errorf("could not open sqlite database: %w", err)
	}

	// SQLite only supports one writer
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(time.Hour)

	pragmas := []string{"PRAGMA journal_mode=WAL"}
	if options.BusyTimeout > 0 {
		pragmas = append(pragmas, fmt.Sprintf("PRAGMA busy_timeout=%d", options.BusyTimeout.Milliseconds()))
	}
	for _, pragma := range pragmas {
		if _, err := db.ExecContext(ctx, pragma); err != nil {
			_ = db.Close()

			return nil, fmt.Errorf("could not apply %q: %w", pragma, err)
		}
	}

	return &SQLite{
		Store: sqlstore.Store{
			DB:      db,
			Builder: goqu.Dialect(Dialect).DB(db),
			// goqu's sqlite3 dialect does not support RETURNING
			Returning: false,
		},
		Path: options.Path,
	}, nil
}
