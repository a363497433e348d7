package dto

import "github.com/travel-journal-service/internal/domain"

// UploadFile is one file handed to the wizard's select step.
type UploadFile struct {
	Filename    string
	ContentType string
	Data        []byte
}

// UploadPhotoRequest describes one photo of the commit batch.
type UploadPhotoRequest struct {
	LocationID   string  `json:"location_id"`
	Filename     string  `json:"filename"`
	X            float64 `json:"x"`
	Y            float64 `json:"y"`
	IsCoverPhoto bool    `json:"is_cover_photo"`
}

// UploadTarget is the locate-step outcome: exactly one of the three
// mutually exclusive choices, plus the coordinates every photo of the
// batch will carry.
type UploadTarget struct {
	TripID      string
	LocationID  string
	NewTrip     *CreateTripRequest
	NewLocation *CreateLocationRequest
	Coordinates domain.Coordinates
}

// UploadResult is what a finished commit hands back for reconciliation:
// the canonical trip and the canonical location(s) with photos attached.
type UploadResult struct {
	Trip      *domain.Trip      `json:"trip,omitempty"`
	Locations []domain.Location `json:"locations,omitempty"`
	Photos    []domain.Photo    `json:"photos,omitempty"`
}
