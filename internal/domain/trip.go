package domain

import "time"

// Trip represents a user's travel journal entry spanning a date range
// and a city/country pair.
type Trip struct {
	ID        string    `json:"id" db:"id"`
	UserID    string    `json:"user_id" db:"user_id"`
	Title     string    `json:"title" db:"title"`
	City      string    `json:"city" db:"city"`
	Country   string    `json:"country" db:"country"`
	StartDate string    `json:"start_date" db:"start_date"`
	EndDate   string    `json:"end_date" db:"end_date"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`

	// Derived fields, recomputed from the trip's locations. Rating is nil
	// when no location of the trip has been rated; a trip is never rated
	// zero because location ratings start at 1.
	Rating     *float64 `json:"rating,omitempty" db:"rating"`
	PhotoCount *int     `json:"photo_count,omitempty" db:"photo_count"`
	CoverPhoto *Photo   `json:"cover_photo,omitempty" db:"-"`
}

// TripStats holds the derived aggregates for a single trip.
type TripStats struct {
	TripID     string   `json:"trip_id"`
	Rating     *float64 `json:"rating,omitempty"`
	PhotoCount int      `json:"photo_count"`
}
