package usecase

import (
	"context"
	"time"

	"github.com/travel-journal-service/internal/domain"
	"github.com/travel-journal-service/internal/domain/repository"
	"github.com/travel-journal-service/internal/pkg/errors"
	"github.com/travel-journal-service/internal/pkg/validator"
	"github.com/travel-journal-service/internal/usecase/dto"
	"go.uber.org/zap"
)

type TripUseCase struct {
	tripRepo     repository.TripRepository
	locationRepo repository.LocationRepository
	photoRepo    repository.PhotoRepository
	statsUC      *StatsUseCase
	logger       *zap.Logger
}

func NewTripUseCase(
	tripRepo repository.TripRepository,
	locationRepo repository.LocationRepository,
	photoRepo repository.PhotoRepository,
	statsUC *StatsUseCase,
	logger *zap.Logger,
) *TripUseCase {
	return &TripUseCase{
		tripRepo:     tripRepo,
		locationRepo: locationRepo,
		photoRepo:    photoRepo,
		statsUC:      statsUC,
		logger:       logger,
	}
}

func (uc *TripUseCase) Create(ctx context.Context, req dto.CreateTripRequest) (*domain.Trip, error) {
	if err := validator.Validate(req); err != nil {
		return nil, errors.ErrValidationFailed.WithDetails(map[string]interface{}{
			"missing": validator.MissingFields(err),
		})
	}

	trip := &domain.Trip{
		UserID:    defaultUserID,
		Title:     req.Title,
		City:      req.City,
		Country:   req.Country,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		CreatedAt: time.Now().UTC(),
	}

	created, err := uc.tripRepo.Create(ctx, trip)
	if err != nil {
		uc.logger.Error("Failed to create trip", zap.Error(err))
		return nil, err
	}
	return created, nil
}

// GetByID returns the canonical read of a trip: the trip, its locations
// with photos attached, and the flat photo list.
func (uc *TripUseCase) GetByID(ctx context.Context, id string) (*dto.TripDetailResponse, error) {
	trip, err := uc.tripRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	locations, err := uc.locationRepo.ListByTrip(ctx, id)
	if err != nil {
		uc.logger.Error("Failed to list trip locations", zap.String("trip_id", id), zap.Error(err))
		return nil, err
	}

	photos := make([]domain.Photo, 0)
	for i := range locations {
		locationPhotos, err := uc.photoRepo.GetByLocation(ctx, locations[i].ID)
		if err != nil {
			uc.logger.Error("Failed to load location photos", zap.String("location_id", locations[i].ID), zap.Error(err))
			return nil, err
		}
		locations[i].Photos = locationPhotos
		photos = append(photos, locationPhotos...)
	}

	return &dto.TripDetailResponse{
		Trip:      *trip,
		Locations: locations,
		Photos:    photos,
	}, nil
}

func (uc *TripUseCase) List(ctx context.Context, userID string) ([]domain.Trip, error) {
	trips, err := uc.tripRepo.List(ctx, userID)
	if err != nil {
		uc.logger.Error("Failed to list trips", zap.Error(err))
		return nil, err
	}
	return trips, nil
}

func (uc *TripUseCase) Update(ctx context.Context, req dto.UpdateTripRequest) (*domain.Trip, error) {
	if err := validator.Validate(req); err != nil {
		return nil, errors.ErrValidationFailed.WithDetails(map[string]interface{}{
			"missing": validator.MissingFields(err),
		})
	}

	trip := &domain.Trip{
		ID:        req.ID,
		Title:     req.Title,
		City:      req.City,
		Country:   req.Country,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
	}
	return uc.tripRepo.Update(ctx, trip)
}

func (uc *TripUseCase) Delete(ctx context.Context, id string) error {
	if err := uc.tripRepo.Delete(ctx, id); err != nil {
		return err
	}
	uc.statsUC.DropTripStats(ctx, id)
	return nil
}
