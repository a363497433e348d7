package usecase

import (
	"context"

	"github.com/travel-journal-service/internal/domain"
	"github.com/travel-journal-service/internal/domain/repository"
	"go.uber.org/zap"
)

type PhotoUseCase struct {
	photoRepo    repository.PhotoRepository
	locationRepo repository.LocationRepository
	statsUC      *StatsUseCase
	logger       *zap.Logger
}

func NewPhotoUseCase(
	photoRepo repository.PhotoRepository,
	locationRepo repository.LocationRepository,
	statsUC *StatsUseCase,
	logger *zap.Logger,
) *PhotoUseCase {
	return &PhotoUseCase{
		photoRepo:    photoRepo,
		locationRepo: locationRepo,
		statsUC:      statsUC,
		logger:       logger,
	}
}

func (uc *PhotoUseCase) List(ctx context.Context, userID string) ([]domain.Photo, error) {
	photos, err := uc.photoRepo.List(ctx, userID)
	if err != nil {
		uc.logger.Error("Failed to list photos", zap.Error(err))
		return nil, err
	}
	return photos, nil
}

func (uc *PhotoUseCase) GetByLocation(ctx context.Context, locationID string) ([]domain.Photo, error) {
	photos, err := uc.photoRepo.GetByLocation(ctx, locationID)
	if err != nil {
		uc.logger.Error("Failed to get photos by location", zap.String("location_id", locationID), zap.Error(err))
		return nil, err
	}
	return photos, nil
}

// Delete removes a photo and refreshes the owning trip's stats so the
// photo count stays accurate.
func (uc *PhotoUseCase) Delete(ctx context.Context, id string) error {
	photo, err := uc.photoRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	location, err := uc.locationRepo.GetByID(ctx, photo.LocationID)
	if err != nil {
		return err
	}

	if err := uc.photoRepo.Delete(ctx, id); err != nil {
		return err
	}

	if _, err := uc.statsUC.RefreshTripStats(ctx, location.TripID); err != nil {
		uc.logger.Warn("failed to refresh trip stats after photo delete",
			zap.String("trip_id", location.TripID),
			zap.Error(err))
	}

	return nil
}

func (uc *PhotoUseCase) SetCover(ctx context.Context, photoID, locationID string) (*domain.Photo, error) {
	photo, err := uc.photoRepo.SetCover(ctx, photoID, locationID)
	if err != nil {
		return nil, err
	}
	return photo, nil
}
