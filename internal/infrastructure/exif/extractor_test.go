package exif_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/travel-journal-service/internal/infrastructure/exif"
)

// TestExtractor_BestEffort checks that undecodable input yields empty
// data without an error, so uploads never fail on extraction.
func TestExtractor_BestEffort(t *testing.T) {
	extractor := exif.NewExtractor(zap.NewNop())

	tests := []struct {
		name string
		data []byte
	}{
		{"empty input", nil},
		{"text input", []byte("definitely not a photo")},
		{"truncated jpeg marker", []byte{0xFF, 0xD8, 0xFF}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := extractor.Extract(context.Background(), tt.data)
			require.NoError(t, err)
			require.NotNil(t, out)
			assert.Nil(t, out.Latitude)
			assert.Nil(t, out.Longitude)
			assert.Nil(t, out.Coordinates())
		})
	}
}
