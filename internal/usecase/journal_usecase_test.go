package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/travel-journal-service/internal/config"
	"github.com/travel-journal-service/internal/domain"
	apperrors "github.com/travel-journal-service/internal/pkg/errors"
	"github.com/travel-journal-service/internal/repository/memory"
	"github.com/travel-journal-service/internal/usecase"
	"github.com/travel-journal-service/internal/usecase/dto"
)

func newTestJournal(t *testing.T) *usecase.JournalUseCase {
	t.Helper()
	store := memory.NewStore(&config.StorageConfig{Driver: "memory", Seed: true}, zap.NewNop())
	return usecase.NewJournalUseCase(
		memory.NewTripRepository(store),
		memory.NewLocationRepository(store),
		memory.NewPhotoRepository(store),
		zap.NewNop(),
	)
}

// TestJournal_LoadAndNavigate walks the sidebar from home down to a
// location and back up level by level.
func TestJournal_LoadAndNavigate(t *testing.T) {
	journal := newTestJournal(t)
	ctx := context.Background()

	require.NoError(t, journal.Load(ctx))
	view, _, _ := journal.View()
	assert.Equal(t, usecase.ViewHome, view)

	journal.ShowTripList()
	view, _, _ = journal.View()
	assert.Equal(t, usecase.ViewTripList, view)

	trip, err := journal.SelectTrip(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "Tokyo", trip.City)
	view, tripID, _ := journal.View()
	assert.Equal(t, usecase.ViewTripDetail, view)
	assert.Equal(t, "1", tripID)

	location, err := journal.SelectLocation(ctx, "2")
	require.NoError(t, err)
	assert.Equal(t, "Shibuya Crossing", location.Name)
	view, tripID, locationID := journal.View()
	assert.Equal(t, usecase.ViewLocationDetail, view)
	assert.Equal(t, "1", tripID)
	assert.Equal(t, "2", locationID)

	assert.Equal(t, usecase.ViewTripDetail, journal.Back())
	assert.Equal(t, usecase.ViewTripList, journal.Back())
	assert.Equal(t, usecase.ViewHome, journal.Back())
	// home is the floor
	assert.Equal(t, usecase.ViewHome, journal.Back())
}

// TestJournal_SelectPhoto checks that picking a photo lands on the
// detail panel of its location.
func TestJournal_SelectPhoto(t *testing.T) {
	journal := newTestJournal(t)
	ctx := context.Background()

	require.NoError(t, journal.Load(ctx))

	location, err := journal.SelectPhoto(ctx, "1")
	require.NoError(t, err)
	require.NotNil(t, location)
	view, _, locationID := journal.View()
	assert.Equal(t, usecase.ViewLocationDetail, view)
	assert.Equal(t, location.ID, locationID)

	_, err = journal.SelectPhoto(ctx, "no-such-photo")
	assert.ErrorIs(t, err, apperrors.ErrPhotoNotFound)
}

// TestJournal_SelectLocationWithoutLoad checks the backend fallback:
// an unloaded session still resolves a seeded location.
func TestJournal_SelectLocationWithoutLoad(t *testing.T) {
	journal := newTestJournal(t)
	ctx := context.Background()

	location, err := journal.SelectLocation(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "Sensō-ji / Asakusa", location.Name)
	assert.NotEmpty(t, location.Photos)
}

// TestJournal_SaveLocationRecomputesStats checks that an edit flows
// through the repository, back into the working copy, and updates the
// owning trip's derived rating.
func TestJournal_SaveLocationRecomputesStats(t *testing.T) {
	journal := newTestJournal(t)
	ctx := context.Background()

	require.NoError(t, journal.Load(ctx))

	// seeded Tokyo ratings are 5, 4, 5; dropping the 4 to 2 gives 4.0
	updated, err := journal.SaveLocation(ctx, dto.UpdateLocationRequest{ID: "2", Rating: 2})
	require.NoError(t, err)
	assert.Equal(t, 2, updated.Rating)

	var tokyo *domain.Trip
	for _, trip := range journal.Trips() {
		if trip.ID == "1" {
			tripCopy := trip
			tokyo = &tripCopy
		}
	}
	require.NotNil(t, tokyo)
	require.NotNil(t, tokyo.Rating)
	assert.Equal(t, 4.0, *tokyo.Rating)
}

// TestJournal_ApplyUploadResult checks that a finished upload merges
// into the collections, recomputes stats, and opens the uploaded-to
// location in edit mode.
func TestJournal_ApplyUploadResult(t *testing.T) {
	journal := newTestJournal(t)
	ctx := context.Background()

	require.NoError(t, journal.Load(ctx))

	journal.ApplyUploadResult(&dto.UploadResult{
		Trip: &domain.Trip{ID: "9", UserID: "1", Title: "Lisbon", City: "Lisbon", Country: "Portugal"},
		Locations: []domain.Location{
			{
				ID: "loc-9", TripID: "9", Name: "Alfama", Address: "Alfama, Lisbon",
				Rating: 5,
				Photos: []domain.Photo{{ID: "p-9", LocationID: "loc-9"}},
			},
		},
		Photos: []domain.Photo{{ID: "p-9", LocationID: "loc-9"}},
	})

	view, tripID, locationID := journal.View()
	assert.Equal(t, usecase.ViewLocationDetail, view)
	assert.Equal(t, "9", tripID)
	assert.Equal(t, "loc-9", locationID)
	assert.True(t, journal.EditingLocation())

	var lisbon *domain.Trip
	for _, trip := range journal.Trips() {
		if trip.ID == "9" {
			tripCopy := trip
			lisbon = &tripCopy
		}
	}
	require.NotNil(t, lisbon)
	require.NotNil(t, lisbon.Rating)
	assert.Equal(t, 5.0, *lisbon.Rating)
	require.NotNil(t, lisbon.PhotoCount)
	assert.Equal(t, 1, *lisbon.PhotoCount)
}
