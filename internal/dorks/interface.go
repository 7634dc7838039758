package dorks

import (
	"context"
	"dorker/pkg/domain"
)

//go:generate mockgen -package mockdorks -source=interface.go -destination=mock/mockdorks.go *
type Service interface {
	List(ctx context.Context) ([]domain.SavedDork, error)
	Create(ctx context.Context, name, query, description string) (*domain.SavedDork, error)
	Delete(ctx context.Context, ID domain.SavedDorkID) error
}
