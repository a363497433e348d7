package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/travel-journal-service/internal/domain"
	"github.com/travel-journal-service/internal/domain/repository"
	"go.uber.org/zap"
)

// StatsUseCase derives trip statistics from the stored locations and
// photos, persisting them onto the trip record and caching them when a
// cache is configured.
type StatsUseCase struct {
	tripRepo     repository.TripRepository
	locationRepo repository.LocationRepository
	photoRepo    repository.PhotoRepository
	cacheRepo    repository.StatsCacheRepository
	cacheTTL     time.Duration
	logger       *zap.Logger
}

// NewStatsUseCase creates a new StatsUseCase. cacheRepo may be nil when
// Redis is not configured.
func NewStatsUseCase(
	tripRepo repository.TripRepository,
	locationRepo repository.LocationRepository,
	photoRepo repository.PhotoRepository,
	cacheRepo repository.StatsCacheRepository,
	cacheTTL time.Duration,
	logger *zap.Logger,
) *StatsUseCase {
	return &StatsUseCase{
		tripRepo:     tripRepo,
		locationRepo: locationRepo,
		photoRepo:    photoRepo,
		cacheRepo:    cacheRepo,
		cacheTTL:     cacheTTL,
		logger:       logger,
	}
}

// GetTripStats returns the trip aggregates, using the cache when possible.
func (uc *StatsUseCase) GetTripStats(ctx context.Context, tripID string) (*domain.TripStats, error) {
	if uc.cacheRepo != nil {
		cached, err := uc.cacheRepo.GetTripStats(ctx, tripID)
		if err == nil && cached != nil {
			uc.logger.Debug("Trip stats fetched from cache", zap.String("trip_id", tripID))
			return cached, nil
		}
		if err != nil {
			uc.logger.Warn("Failed to get trip stats from cache", zap.Error(err))
		}
	}

	stats, err := uc.compute(ctx, tripID)
	if err != nil {
		return nil, err
	}

	uc.cache(ctx, stats)
	return stats, nil
}

// RefreshTripStats recomputes the aggregates from the store, persists
// them onto the trip record, and refreshes the cache. Called after a
// location edit and after an upload commit.
func (uc *StatsUseCase) RefreshTripStats(ctx context.Context, tripID string) (*domain.TripStats, error) {
	stats, err := uc.compute(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("refresh trip stats: %w", err)
	}

	if _, err := uc.tripRepo.UpdateStats(ctx, *stats); err != nil {
		return nil, fmt.Errorf("persist trip stats: %w", err)
	}

	uc.cache(ctx, stats)

	uc.logger.Debug("Trip stats refreshed",
		zap.String("trip_id", tripID),
		zap.Int("photo_count", stats.PhotoCount),
	)
	return stats, nil
}

// compute loads the trip's locations, attaches their photos, and runs
// the pure aggregation.
func (uc *StatsUseCase) compute(ctx context.Context, tripID string) (*domain.TripStats, error) {
	if _, err := uc.tripRepo.GetByID(ctx, tripID); err != nil {
		return nil, err
	}

	locations, err := uc.locationRepo.ListByTrip(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("list locations for stats: %w", err)
	}

	for i := range locations {
		photos, err := uc.photoRepo.GetByLocation(ctx, locations[i].ID)
		if err != nil {
			return nil, fmt.Errorf("load photos for stats: %w", err)
		}
		locations[i].Photos = photos
	}

	stats := ComputeTripStats(tripID, locations)
	return &stats, nil
}

// DropTripStats evicts the cached entry of a deleted trip. Best effort
// like every cache interaction.
func (uc *StatsUseCase) DropTripStats(ctx context.Context, tripID string) {
	if uc.cacheRepo == nil {
		return
	}
	if err := uc.cacheRepo.InvalidateTripStats(ctx, tripID); err != nil {
		uc.logger.Warn("Failed to invalidate trip stats cache", zap.String("trip_id", tripID), zap.Error(err))
	}
}

func (uc *StatsUseCase) cache(ctx context.Context, stats *domain.TripStats) {
	if uc.cacheRepo == nil {
		return
	}
	if err := uc.cacheRepo.SetTripStats(ctx, stats, uc.cacheTTL); err != nil {
		// The data is already computed, a cache failure is not fatal
		uc.logger.Warn("Failed to cache trip stats", zap.Error(err))
	}
}
