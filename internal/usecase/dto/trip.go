package dto

import "github.com/travel-journal-service/internal/domain"

type CreateTripRequest struct {
	Title     string `json:"title" validate:"required"`
	City      string `json:"city" validate:"required"`
	Country   string `json:"country" validate:"required"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

type UpdateTripRequest struct {
	ID        string `json:"id" validate:"required"`
	Title     string `json:"title"`
	City      string `json:"city"`
	Country   string `json:"country"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

// TripDetailResponse is the canonical read of a trip: the trip itself
// plus its locations (with photos attached) and every photo.
type TripDetailResponse struct {
	Trip      domain.Trip       `json:"trip"`
	Locations []domain.Location `json:"locations"`
	Photos    []domain.Photo    `json:"photos"`
}
