package usecase

import (
	"context"

	"github.com/travel-journal-service/internal/domain"
	"github.com/travel-journal-service/internal/domain/repository"
	"github.com/travel-journal-service/internal/pkg/errors"
	"github.com/travel-journal-service/internal/pkg/utils"
	"github.com/travel-journal-service/internal/pkg/validator"
	"github.com/travel-journal-service/internal/usecase/dto"
	"go.uber.org/zap"
)

type LocationUseCase struct {
	locationRepo repository.LocationRepository
	photoRepo    repository.PhotoRepository
	tripRepo     repository.TripRepository
	statsUC      *StatsUseCase
	logger       *zap.Logger
}

func NewLocationUseCase(
	locationRepo repository.LocationRepository,
	photoRepo repository.PhotoRepository,
	tripRepo repository.TripRepository,
	statsUC *StatsUseCase,
	logger *zap.Logger,
) *LocationUseCase {
	return &LocationUseCase{
		locationRepo: locationRepo,
		photoRepo:    photoRepo,
		tripRepo:     tripRepo,
		statsUC:      statsUC,
		logger:       logger,
	}
}

func (uc *LocationUseCase) Create(ctx context.Context, req dto.CreateLocationRequest) (*domain.Location, error) {
	if err := validator.Validate(req); err != nil {
		return nil, errors.ErrValidationFailed.WithDetails(map[string]interface{}{
			"missing": validator.MissingFields(err),
		})
	}
	if !utils.ValidateCoordinates(req.X, req.Y) {
		return nil, errors.ErrInvalidCoordinates
	}

	// The trip must exist before a location can hang off it
	if _, err := uc.tripRepo.GetByID(ctx, req.TripID); err != nil {
		return nil, err
	}

	created, err := uc.locationRepo.Create(ctx, req.ToDomain())
	if err != nil {
		uc.logger.Error("Failed to create location", zap.Error(err))
		return nil, err
	}

	// A new location affects its trip's derived fields
	if _, err := uc.statsUC.RefreshTripStats(ctx, created.TripID); err != nil {
		uc.logger.Warn("Failed to refresh trip stats after create", zap.Error(err))
	}

	return created, nil
}

// GetByID returns the location enriched with its photos.
func (uc *LocationUseCase) GetByID(ctx context.Context, id string) (*dto.LocationDetailResponse, error) {
	location, err := uc.locationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	photos, err := uc.photoRepo.GetByLocation(ctx, id)
	if err != nil {
		uc.logger.Error("Failed to load location photos", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	location.Photos = photos

	return &dto.LocationDetailResponse{
		Location: *location,
		Photos:   photos,
	}, nil
}

func (uc *LocationUseCase) ListByTrip(ctx context.Context, tripID string) ([]domain.Location, error) {
	locations, err := uc.locationRepo.ListByTrip(ctx, tripID)
	if err != nil {
		uc.logger.Error("Failed to list locations", zap.String("trip_id", tripID), zap.Error(err))
		return nil, err
	}
	return locations, nil
}

// Update saves an edited location and recomputes the affected trip's
// derived fields. Only the one trip is touched.
func (uc *LocationUseCase) Update(ctx context.Context, req dto.UpdateLocationRequest) (*domain.Location, error) {
	if err := validator.Validate(req); err != nil {
		return nil, errors.ErrValidationFailed.WithDetails(map[string]interface{}{
			"missing": validator.MissingFields(err),
		})
	}

	updated, err := uc.locationRepo.Update(ctx, req.ToDomain())
	if err != nil {
		return nil, err
	}

	if _, err := uc.statsUC.RefreshTripStats(ctx, updated.TripID); err != nil {
		uc.logger.Warn("Failed to refresh trip stats after update", zap.Error(err))
	}

	return updated, nil
}

func (uc *LocationUseCase) Delete(ctx context.Context, id string) error {
	location, err := uc.locationRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := uc.locationRepo.Delete(ctx, id); err != nil {
		return err
	}

	if _, err := uc.statsUC.RefreshTripStats(ctx, location.TripID); err != nil {
		uc.logger.Warn("Failed to refresh trip stats after delete", zap.Error(err))
	}
	return nil
}
