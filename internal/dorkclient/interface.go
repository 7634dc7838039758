package dorkclient

import (
	"context"
	"dorker/pkg/domain"
)

// API is the set of remote operations a Session relies on. *Client
// implements it.
//
//go:generate mockgen -package mockdorkclient -source=interface.go -destination=mock/mockdorkclient.go *
type API interface {
	Categories(ctx context.Context) (domain.CategoryCatalog, error)
	Generate(ctx context.Context, req domain.DorkRequest) (*domain.GeneratedDork, error)
	Dorks(ctx context.Context) ([]domain.SavedDork, error)
	SaveDork(ctx context.Context, name, query, description string) (*domain.SavedDork, error)
	DeleteDork(ctx context.Context, ID domain.SavedDorkID) error
}
