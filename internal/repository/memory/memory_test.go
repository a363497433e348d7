package memory_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/travel-journal-service/internal/config"
	"github.com/travel-journal-service/internal/domain"
	apperrors "github.com/travel-journal-service/internal/pkg/errors"
	"github.com/travel-journal-service/internal/repository/memory"
)

func newStore(t *testing.T, seed bool) *memory.Store {
	t.Helper()
	return memory.NewStore(&config.StorageConfig{Driver: "memory", Seed: seed}, zap.NewNop())
}

// TestStore_Seeding checks the sample journal loads when asked for.
func TestStore_Seeding(t *testing.T) {
	ctx := context.Background()
	store := newStore(t, true)

	trips, err := memory.NewTripRepository(store).List(ctx, "1")
	require.NoError(t, err)
	assert.Len(t, trips, 2)

	locations, err := memory.NewLocationRepository(store).ListByTrip(ctx, "1")
	require.NoError(t, err)
	assert.Len(t, locations, 3)

	photos, err := memory.NewPhotoRepository(store).List(ctx, "1")
	require.NoError(t, err)
	assert.Len(t, photos, 6)

	empty := newStore(t, false)
	trips, err = memory.NewTripRepository(empty).List(ctx, "1")
	require.NoError(t, err)
	assert.Empty(t, trips)
}

// TestTripRepository_NotFound covers the lookup sentinels.
func TestTripRepository_NotFound(t *testing.T) {
	ctx := context.Background()
	store := newStore(t, false)
	repo := memory.NewTripRepository(store)

	_, err := repo.GetByID(ctx, "missing")
	assert.ErrorIs(t, err, apperrors.ErrTripNotFound)

	_, err = repo.Update(ctx, &domain.Trip{ID: "missing", Title: "x"})
	assert.ErrorIs(t, err, apperrors.ErrTripNotFound)

	assert.ErrorIs(t, repo.Delete(ctx, "missing"), apperrors.ErrTripNotFound)
}

// TestTripRepository_MergeOnUpdate checks that updates overlay present
// fields only.
func TestTripRepository_MergeOnUpdate(t *testing.T) {
	ctx := context.Background()
	store := newStore(t, false)
	repo := memory.NewTripRepository(store)

	created, err := repo.Create(ctx, &domain.Trip{
		UserID: "1", Title: "Tokyo", City: "Tokyo", Country: "Japan", StartDate: "2024-05-03",
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	updated, err := repo.Update(ctx, &domain.Trip{ID: created.ID, Title: "Tokyo in spring"})
	require.NoError(t, err)
	assert.Equal(t, "Tokyo in spring", updated.Title)
	assert.Equal(t, "Tokyo", updated.City)
	assert.Equal(t, "2024-05-03", updated.StartDate)
}

// TestTripRepository_UpdateStatsClearsRating checks that UpdateStats
// overwrites unconditionally, including clearing the rating.
func TestTripRepository_UpdateStatsClearsRating(t *testing.T) {
	ctx := context.Background()
	store := newStore(t, true)
	repo := memory.NewTripRepository(store)

	// seeded trip 1 starts with a rating
	updated, err := repo.UpdateStats(ctx, domain.TripStats{TripID: "1", Rating: nil, PhotoCount: 3})
	require.NoError(t, err)
	assert.Nil(t, updated.Rating)
	require.NotNil(t, updated.PhotoCount)
	assert.Equal(t, 3, *updated.PhotoCount)
}

// TestTripRepository_DeleteCascades checks locations and photos die
// with their trip.
func TestTripRepository_DeleteCascades(t *testing.T) {
	ctx := context.Background()
	store := newStore(t, true)

	require.NoError(t, memory.NewTripRepository(store).Delete(ctx, "1"))

	locations, err := memory.NewLocationRepository(store).ListByTrip(ctx, "1")
	require.NoError(t, err)
	assert.Empty(t, locations)

	photos, err := memory.NewPhotoRepository(store).List(ctx, "1")
	require.NoError(t, err)
	assert.Empty(t, photos)
}

// TestLocationRepository_CreateNormalizes checks rating clamping, cost
// level defaulting and tag dedup on the way in.
func TestLocationRepository_CreateNormalizes(t *testing.T) {
	ctx := context.Background()
	store := newStore(t, true)
	repo := memory.NewLocationRepository(store)

	created, err := repo.Create(ctx, &domain.Location{
		TripID: "1", Name: "Test", Address: "Somewhere",
		Rating: 12,
		Tags:   []string{"Cultural", "Cultural", "Local eats"},
		Photos: []domain.Photo{{ID: "should-not-store"}},
	})
	require.NoError(t, err)

	assert.Equal(t, domain.MaxRating, created.Rating)
	assert.Equal(t, domain.CostFree, created.CostLevel)
	assert.Equal(t, []string{"Cultural", "Local eats"}, created.Tags)
	assert.Nil(t, created.Photos)
}

// TestLocationRepository_UpdateOverlay checks the partial-update rule:
// zero-valued fields keep the stored values.
func TestLocationRepository_UpdateOverlay(t *testing.T) {
	ctx := context.Background()
	store := newStore(t, true)
	repo := memory.NewLocationRepository(store)

	before, err := repo.GetByID(ctx, "2")
	require.NoError(t, err)

	updated, err := repo.Update(ctx, &domain.Location{ID: "2", Notes: "new notes"})
	require.NoError(t, err)
	assert.Equal(t, "new notes", updated.Notes)
	assert.Equal(t, before.Name, updated.Name)
	assert.Equal(t, before.Rating, updated.Rating)
	assert.Equal(t, before.X, updated.X)
}

// TestLocationRepository_DeleteCascadesPhotos checks location deletion
// removes its photos and nothing else.
func TestLocationRepository_DeleteCascadesPhotos(t *testing.T) {
	ctx := context.Background()
	store := newStore(t, true)
	locationRepo := memory.NewLocationRepository(store)
	photoRepo := memory.NewPhotoRepository(store)

	before, err := photoRepo.List(ctx, "1")
	require.NoError(t, err)
	attached, err := photoRepo.GetByLocation(ctx, "1")
	require.NoError(t, err)
	require.NotEmpty(t, attached)

	require.NoError(t, locationRepo.Delete(ctx, "1"))

	after, err := photoRepo.List(ctx, "1")
	require.NoError(t, err)
	assert.Len(t, after, len(before)-len(attached))
}

// TestPhotoRepository_UploadAssignsIDs checks uploaded photos get ids
// and are readable back by location.
func TestPhotoRepository_UploadAssignsIDs(t *testing.T) {
	ctx := context.Background()
	store := newStore(t, false)
	repo := memory.NewPhotoRepository(store)

	uploaded, err := repo.Upload(ctx, []domain.Photo{
		{LocationID: "loc", UserID: "1", FileURL: "/uploads/a"},
		{LocationID: "loc", UserID: "1", FileURL: "/uploads/b"},
	})
	require.NoError(t, err)
	require.Len(t, uploaded, 2)
	assert.NotEmpty(t, uploaded[0].ID)
	assert.NotEqual(t, uploaded[0].ID, uploaded[1].ID)

	photos, err := repo.GetByLocation(ctx, "loc")
	require.NoError(t, err)
	assert.Len(t, photos, 2)
}

// TestPhotoRepository_SetCover checks the cover flag is exclusive
// within a location.
func TestPhotoRepository_SetCover(t *testing.T) {
	ctx := context.Background()
	store := newStore(t, true)
	repo := memory.NewPhotoRepository(store)

	photos, err := repo.GetByLocation(ctx, "1")
	require.NoError(t, err)
	require.True(t, len(photos) >= 2)

	cover, err := repo.SetCover(ctx, photos[0].ID, "1")
	require.NoError(t, err)
	assert.True(t, cover.IsCoverPhoto)

	cover, err = repo.SetCover(ctx, photos[1].ID, "1")
	require.NoError(t, err)
	assert.True(t, cover.IsCoverPhoto)

	photos, err = repo.GetByLocation(ctx, "1")
	require.NoError(t, err)
	covers := 0
	for _, p := range photos {
		if p.IsCoverPhoto {
			covers++
			assert.Equal(t, cover.ID, p.ID)
		}
	}
	assert.Equal(t, 1, covers)

	// wrong location pairing is a not-found
	_, err = repo.SetCover(ctx, photos[0].ID, "2")
	assert.ErrorIs(t, err, apperrors.ErrPhotoNotFound)
}

// TestStore_SimulatedLatency checks the artificial delay honors
// context cancellation.
func TestStore_SimulatedLatency(t *testing.T) {
	store := memory.NewStore(&config.StorageConfig{
		Driver:         "memory",
		SimulatedDelay: 500 * time.Millisecond,
		Seed:           true,
	}, zap.NewNop())
	repo := memory.NewTripRepository(store)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err := repo.GetByID(ctx, "1")
	assert.Error(t, err)
	assert.Less(t, time.Since(start), 400*time.Millisecond)
}
