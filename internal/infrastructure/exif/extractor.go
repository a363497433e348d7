package exif

import (
	"bytes"
	"context"

	goexif "github.com/rwcarlsen/goexif/exif"
	"github.com/travel-journal-service/internal/domain"
	"github.com/travel-journal-service/internal/domain/repository"
	"go.uber.org/zap"
)

type extractor struct {
	logger *zap.Logger
}

// NewExtractor creates the coordinate-extraction collaborator backed by
// real EXIF parsing.
func NewExtractor(logger *zap.Logger) repository.CoordinateExtractor {
	return &extractor{logger: logger}
}

// Extract reads GPS coordinates and the capture timestamp from image
// bytes. Extraction is best effort: files without an EXIF segment, or
// with a GPS IFD we cannot decode, yield empty data and no error.
func (e *extractor) Extract(ctx context.Context, data []byte) (*domain.ExifData, error) {
	out := &domain.ExifData{}

	x, err := goexif.Decode(bytes.NewReader(data))
	if err != nil {
		e.logger.Debug("No decodable EXIF segment", zap.Error(err))
		return out, nil
	}

	if lat, lon, err := x.LatLong(); err == nil {
		out.Latitude = &lat
		out.Longitude = &lon
	}

	if taken, err := x.DateTime(); err == nil {
		out.DateTaken = &taken
	}

	return out, nil
}
