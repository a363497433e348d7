package domain

import "time"

// Photo is an uploaded image attached to a location. Photos are
// immutable once uploaded; the only mutations are deletion and the
// cover-photo flag.
type Photo struct {
	ID               string     `json:"id" db:"id"`
	LocationID       string     `json:"location_id" db:"location_id"`
	UserID           string     `json:"user_id" db:"user_id"`
	X                float64    `json:"x" db:"x"`
	Y                float64    `json:"y" db:"y"`
	FileURL          string     `json:"file_url" db:"file_url"`
	OriginalFilename string     `json:"original_filename" db:"original_filename"`
	TakenAt          *time.Time `json:"taken_at,omitempty" db:"taken_at"`
	IsCoverPhoto     bool       `json:"is_cover_photo" db:"is_cover_photo"`
}

// Coordinates is a longitude/latitude pair in map order (x = lon, y = lat).
type Coordinates struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// ExifData is the best-effort result of coordinate extraction from an
// image file. Any field may be absent.
type ExifData struct {
	Latitude  *float64   `json:"latitude,omitempty"`
	Longitude *float64   `json:"longitude,omitempty"`
	DateTaken *time.Time `json:"date_taken,omitempty"`
}

// Coordinates returns the extracted GPS position in map order, or nil
// when the file carried no usable GPS tags.
func (e *ExifData) Coordinates() *Coordinates {
	if e == nil || e.Latitude == nil || e.Longitude == nil {
		return nil
	}
	return &Coordinates{X: *e.Longitude, Y: *e.Latitude}
}
