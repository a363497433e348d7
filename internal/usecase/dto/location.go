package dto

import "github.com/travel-journal-service/internal/domain"

type CreateLocationRequest struct {
	TripID          string   `json:"trip_id" validate:"required"`
	X               float64  `json:"x"`
	Y               float64  `json:"y"`
	Name            string   `json:"name" validate:"required"`
	Address         string   `json:"address" validate:"required"`
	Rating          int      `json:"rating" validate:"min=0,max=5"`
	Notes           string   `json:"notes"`
	Tags            []string `json:"tags"`
	CostLevel       string   `json:"cost_level"`
	TimeNeeded      int      `json:"time_needed"`
	BestTimeToVisit string   `json:"best_time_to_visit"`
}

type UpdateLocationRequest struct {
	ID              string   `json:"id" validate:"required"`
	Name            string   `json:"name"`
	Address         string   `json:"address"`
	X               float64  `json:"x"`
	Y               float64  `json:"y"`
	Rating          int      `json:"rating" validate:"min=0,max=5"`
	Notes           string   `json:"notes"`
	Tags            []string `json:"tags"`
	CostLevel       string   `json:"cost_level"`
	TimeNeeded      int      `json:"time_needed"`
	BestTimeToVisit string   `json:"best_time_to_visit"`
}

// LocationDetailResponse is a location with its photos attached.
type LocationDetailResponse struct {
	Location domain.Location `json:"location"`
	Photos   []domain.Photo  `json:"photos"`
}

// ToDomain converts the create request into a normalized location.
func (r *CreateLocationRequest) ToDomain() *domain.Location {
	l := &domain.Location{
		TripID:          r.TripID,
		X:               r.X,
		Y:               r.Y,
		Name:            r.Name,
		Address:         r.Address,
		Rating:          r.Rating,
		Notes:           r.Notes,
		Tags:            r.Tags,
		CostLevel:       domain.CostLevel(r.CostLevel),
		TimeNeeded:      r.TimeNeeded,
		BestTimeToVisit: r.BestTimeToVisit,
	}
	domain.NormalizeLocation(l)
	return l
}

// ToDomain converts the update request into a partial location record;
// zero-valued fields mean "keep the stored value".
func (r *UpdateLocationRequest) ToDomain() *domain.Location {
	return &domain.Location{
		ID:              r.ID,
		Name:            r.Name,
		Address:         r.Address,
		X:               r.X,
		Y:               r.Y,
		Rating:          r.Rating,
		Notes:           r.Notes,
		Tags:            r.Tags,
		CostLevel:       domain.CostLevel(r.CostLevel),
		TimeNeeded:      r.TimeNeeded,
		BestTimeToVisit: r.BestTimeToVisit,
	}
}
