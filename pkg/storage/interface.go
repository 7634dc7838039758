// Package storage defines the core storage interfaces that the application relies on.
// It abstracts persistence operations so that different backends (PostgreSQL,
// SQLite) can provide concrete implementations.
//
//go:generate mockgen -package mockstorage -source=interface.go -destination=mock/mockstorage.go *
package storage

import (
	"context"
	"dorker/pkg/domain"
)

// Drivers supported by the storage backends.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// DorkStorage persists saved dorks. Records are inserted and deleted, never
// updated.
type DorkStorage interface {
	// StoreDork inserts dork and returns the stored row, including the
	// generated ID and creation time. The ID of the input is ignored.
	StoreDork(ctx context.Context, dork domain.SavedDork) (*domain.SavedDork, error)
	// Dorks returns every saved dork in insertion order.
	Dorks(ctx context.Context) ([]domain.SavedDork, error)
	// DeleteDork removes the dork with the given ID. It reports whether a row
	// was deleted; a missing ID is not an error.
	DeleteDork(ctx context.Context, ID domain.SavedDorkID) (bool, error)
}

// Storage is a storage handle with lifecycle management.
type Storage interface {
	DorkStorage

	// Ping checks that the underlying database is reachable.
	Ping(ctx context.Context) error
	// Close releases any resources held by the storage implementation (e.g. the
	// underlying connection pool). After Close, the instance should not be used.
	Close() error
}
