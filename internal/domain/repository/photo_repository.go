package repository

import (
	"context"

	"github.com/travel-journal-service/internal/domain"
)

// PhotoRepository is the persistence boundary for photos. Photos are
// immutable apart from deletion and the cover flag.
type PhotoRepository interface {
	Upload(ctx context.Context, photos []domain.Photo) ([]domain.Photo, error)
	GetByID(ctx context.Context, id string) (*domain.Photo, error)
	GetByLocation(ctx context.Context, locationID string) ([]domain.Photo, error)
	List(ctx context.Context, userID string) ([]domain.Photo, error)
	Delete(ctx context.Context, id string) error
	SetCover(ctx context.Context, photoID, locationID string) (*domain.Photo, error)
}
