package repository

import (
	"context"

	"github.com/travel-journal-service/internal/domain"
)

// TripRepository is the persistence boundary for trips. The memory
// implementation is the default backend; postgres can be substituted
// without touching call sites.
type TripRepository interface {
	Create(ctx context.Context, trip *domain.Trip) (*domain.Trip, error)
	GetByID(ctx context.Context, id string) (*domain.Trip, error)
	List(ctx context.Context, userID string) ([]domain.Trip, error)
	Update(ctx context.Context, trip *domain.Trip) (*domain.Trip, error)

	// UpdateStats overwrites the derived fields unconditionally; a nil
	// rating clears the stored one (a trip with no rated locations has
	// no rating, not a zero rating).
	UpdateStats(ctx context.Context, stats domain.TripStats) (*domain.Trip, error)

	Delete(ctx context.Context, id string) error
}
