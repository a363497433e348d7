package repository

import (
	"context"

	"github.com/travel-journal-service/internal/domain"
)

// CoordinateExtractor pulls GPS coordinates and the capture timestamp
// out of an image file. Extraction is best effort: a file without
// usable metadata yields an empty ExifData, not an error.
type CoordinateExtractor interface {
	Extract(ctx context.Context, data []byte) (*domain.ExifData, error)
}
