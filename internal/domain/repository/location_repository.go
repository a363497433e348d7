package repository

import (
	"context"

	"github.com/travel-journal-service/internal/domain"
)

// LocationRepository is the persistence boundary for locations.
type LocationRepository interface {
	Create(ctx context.Context, location *domain.Location) (*domain.Location, error)
	GetByID(ctx context.Context, id string) (*domain.Location, error)
	ListByTrip(ctx context.Context, tripID string) ([]domain.Location, error)
	Update(ctx context.Context, location *domain.Location) (*domain.Location, error)
	Delete(ctx context.Context, id string) error
}
