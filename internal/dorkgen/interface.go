package dorkgen

import (
	"context"
	"dorker/pkg/domain"
)

//go:generate mockgen -package mockdorkgen -source=interface.go -destination=mock/mockdorkgen.go *
type Generator interface {
	Categories() domain.CategoryCatalog
	Generate(ctx context.Context, req domain.DorkRequest) (*domain.GeneratedDork, error)
}
