// Package sqlstore implements storage.DorkStorage with goqu on top of
// database/sql. The PostgreSQL and SQLite backends embed Store and only differ
// in how the connection and the goqu dialect are set up.
package sqlstore

import (
	"context"
	"database/sql"
	"dorker/pkg/domain"
	"errors"
	"fmt"
	"time"

	"github.com/doug-martin/goqu/v9"
)

const (
	dorksTable = "dorks"
)

// Builder abstracts the subset of goqu methods used by this package to
// construct queries.
type Builder interface {
	From(table ...interface{}) *goqu.SelectDataset
	Insert(table interface{}) *goqu.InsertDataset
	Delete(table interface{}) *goqu.DeleteDataset
}

// Store implements storage.DorkStorage for any goqu dialect.
type Store struct {
	// DB is the underlying connection pool.
	DB *sql.DB
	// Builder is the goqu handle used to construct SQL queries bound to DB.
	Builder Builder
	// Returning tells whether the dialect supports INSERT ... RETURNING. When
	// it does not, the inserted row is read back through LastInsertId.
	Returning bool
}

// StoreDork inserts a saved dork and returns the stored row.
func (s *Store) StoreDork(ctx context.Context, dork domain.SavedDork) (*domain.SavedDork, error) {
	var row Dork
	row.FromDomain(dork)
	row.CreatedAt = time.Now().UTC().Truncate(time.Microsecond)

	// prepared statements hand time.Time to the driver instead of a goqu
	// formatted literal, which SQLite would read back as text
	ins := s.Builder.Insert(dorksTable).Prepared(true).Rows(row)

	if s.Returning {
		var out Dork
		found, err := ins.Returning(&Dork{}).Executor().ScanStructContext(ctx, &out)
		if err != nil {
			return nil, fmt.Errorf("could not store dork: %w", err)
		}
		if !found {
			return nil, errors.New("could not store dork: no row returned")
		}

		return out.ToDomain(), nil
	}

	res, err := ins.Executor().ExecContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not store dork: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("could not get stored dork id: %w", err)
	}
	row.ID = id

	return row.ToDomain(), nil
}

// Dorks returns all saved dorks ordered by ID, which is insertion order.
func (s *Store) Dorks(ctx context.Context) ([]domain.SavedDork, error) {
	var rows []Dork
	if err := s.Builder.From(dorksTable).
		Prepared(true).
		Order(goqu.I("id").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch dorks: %w", err)
	}

	return dorksToDomain(rows), nil
}

// DeleteDork removes the dork with the given ID and reports whether it existed.
func (s *Store) DeleteDork(ctx context.Context, id domain.SavedDorkID) (bool, error) {
	res, err := s.Builder.Delete(dorksTable).
		Prepared(true).
		Where(goqu.I("id").Eq(int64(id))).
		Executor().ExecContext(ctx)
	if err != nil {
		return false, fmt.Errorf("could not delete dork: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("could not get deleted rows: %w", err)
	}

	return n > 0, nil
}

// Ping checks the database connection.
func (s *Store) Ping(ctx context.Context) error {
	if err := s.DB.PingContext(ctx); err != nil {
		return fmt.Errorf("could not ping database: %w", err)
	}

	return nil
}

// Close closes the connection pool.
func (s *Store) Close() error {
	if err := s.DB.Close(); err != nil {
		return fmt.Errorf("could not close database: %w", err)
	}

	return nil
}
