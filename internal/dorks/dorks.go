// Package dorks manages saved dorks on top of the storage layer. Saved dorks
// are created and deleted, never updated in place.
package dorks

import (
	"context"
	"dorker/pkg/domain"
	"dorker/pkg/logger"
	"dorker/pkg/serrors"
	"dorker/pkg/storage"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// service is the concrete implementation of the Service interface.
type service struct {
	storage storage.DorkStorage
}

// List returns every saved dork in insertion order. It never returns a nil
// slice on success.
func (s service) List(ctx context.Context) ([]domain.SavedDork, error) {
	res, err := s.storage.Dorks(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not list dorks: %w", err)
	}
	if res == nil {
		res = []domain.SavedDork{}
	}

	return res, nil
}

// Create stores a new saved dork. The name is trimmed and both the name and
// the query must be non-empty; the query itself is stored verbatim.
func (s service) Create(ctx context.Context, name, query, description string) (*domain.SavedDork, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, serrors.With(serrors.ErrBadRequest, "name is required")
	}
	if strings.TrimSpace(query) == "" {
		return nil, serrors.With(serrors.ErrBadRequest, "query is required")
	}

	res, err := s.storage.StoreDork(ctx, domain.SavedDork{
		Name:        name,
		Query:       query,
		Description: description,
	})
	if err != nil {
		return nil, fmt.Errorf("could not store dork: %w", err)
	}

	logger.Info(ctx, "dork saved", zap.Int64("dorkId", int64(res.ID)), zap.String("name", res.Name))

	return res, nil
}

// Delete removes a saved dork. Deleting an id that does not exist leaves the
// store untouched and reports a not-found error.
func (s service) Delete(ctx context.Context, ID domain.SavedDorkID) error {
	deleted, err := s.storage.DeleteDork(ctx, ID)
	if err != nil {
		return fmt.Errorf("could not delete dork: %w", err)
	}
	if !deleted {
		return serrors.With(serrors.ErrNotFound, "dork not found")
	}

	logger.Info(ctx, "dork deleted", zap.Int64("dorkId", int64(ID)))

	return nil
}

// New creates a new Service backed by the provided storage.
func New(storage storage.DorkStorage) Service {
	return &service{
		storage: storage,
	}
}
