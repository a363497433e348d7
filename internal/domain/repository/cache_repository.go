package repository

import (
	"context"
	"time"

	"github.com/travel-journal-service/internal/domain"
)

// StatsCacheRepository caches derived trip statistics. All methods are
// best effort: a cache failure must never fail the calling operation.
type StatsCacheRepository interface {
	GetTripStats(ctx context.Context, tripID string) (*domain.TripStats, error)
	SetTripStats(ctx context.Context, stats *domain.TripStats, ttl time.Duration) error
	InvalidateTripStats(ctx context.Context, tripID string) error
}
