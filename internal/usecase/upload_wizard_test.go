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

// stubExtractor hands back a fixed result per filename; files it does
// not know carry no coordinates.
type stubExtractor struct {
	byFilename map[string]*domain.ExifData
	next       string
}

func (s *stubExtractor) Extract(_ context.Context, _ []byte) (*domain.ExifData, error) {
	if e, ok := s.byFilename[s.next]; ok {
		return e, nil
	}
	return &domain.ExifData{}, nil
}

func testUploadConfig() config.UploadConfig {
	return config.UploadConfig{
		MaxFiles:    20,
		MaxFileSize: 25 << 20,
		AllowedTypes: []string{
			"image/jpeg", "image/jpg", "image/png", "image/gif", "image/webp", "image/bmp",
		},
		FallbackX:   139.6917,
		FallbackY:   35.6895,
		FileBaseURL: "/uploads",
	}
}

func newTestWizard(t *testing.T, seed bool, extractor *stubExtractor) (*usecase.UploadWizard, *memory.Store) {
	t.Helper()
	store := memory.NewStore(&config.StorageConfig{Driver: "memory", Seed: seed}, zap.NewNop())

	tripRepo := memory.NewTripRepository(store)
	locationRepo := memory.NewLocationRepository(store)
	photoRepo := memory.NewPhotoRepository(store)

	if extractor == nil {
		extractor = &stubExtractor{}
	}

	wizard := usecase.NewUploadWizard(
		tripRepo, locationRepo, photoRepo,
		extractor, nil,
		testUploadConfig(),
		zap.NewNop(),
	)
	return wizard, store
}

func imageFile(name, contentType string) dto.UploadFile {
	return dto.UploadFile{Filename: name, ContentType: contentType, Data: []byte("not really an image")}
}

// TestUploadWizard_PartialAcceptance checks that a batch of three valid
// files and one unsupported file yields three previews and one
// rejection, and that the rejection does not block progression.
func TestUploadWizard_PartialAcceptance(t *testing.T) {
	wizard, _ := newTestWizard(t, true, nil)
	ctx := context.Background()

	accepted, rejected, err := wizard.AddFiles(ctx, []dto.UploadFile{
		imageFile("a.jpg", "image/jpeg"),
		imageFile("b.png", "image/png"),
		imageFile("notes.txt", "text/plain"),
		imageFile("c.webp", "image/webp"),
	})

	require.NoError(t, err)
	assert.Equal(t, 3, accepted)
	require.Len(t, rejected, 1)
	assert.Equal(t, "notes.txt", rejected[0].Filename)
	assert.Len(t, wizard.Previews(), 3)

	assert.NoError(t, wizard.ToLocate())
	assert.Equal(t, usecase.StepLocate, wizard.Step())
}

// TestUploadWizard_EmptySelectionGuard checks that the select step
// refuses to advance with no accepted files.
func TestUploadWizard_EmptySelectionGuard(t *testing.T) {
	wizard, _ := newTestWizard(t, true, nil)
	ctx := context.Background()

	accepted, rejected, err := wizard.AddFiles(ctx, []dto.UploadFile{
		imageFile("notes.txt", "text/plain"),
	})
	require.NoError(t, err)
	assert.Equal(t, 0, accepted)
	assert.Len(t, rejected, 1)

	err = wizard.ToLocate()
	assert.ErrorIs(t, err, apperrors.ErrNoFilesSelected)
	assert.Equal(t, usecase.StepSelect, wizard.Step())
}

// TestUploadWizard_BackTransitions checks the two allowed backward
// transitions and refuses the rest.
func TestUploadWizard_BackTransitions(t *testing.T) {
	wizard, _ := newTestWizard(t, true, nil)
	ctx := context.Background()

	// select has nothing to go back to
	assert.ErrorIs(t, wizard.Back(), apperrors.ErrInvalidStep)

	_, _, err := wizard.AddFiles(ctx, []dto.UploadFile{imageFile("a.jpg", "image/jpeg")})
	require.NoError(t, err)
	require.NoError(t, wizard.ToLocate())

	require.NoError(t, wizard.Back())
	assert.Equal(t, usecase.StepSelect, wizard.Step())

	require.NoError(t, wizard.ToLocate())
	require.NoError(t, wizard.ChooseExistingLocation(ctx, "1", "2"))
	assert.Equal(t, usecase.StepDetails, wizard.Step())

	require.NoError(t, wizard.Back())
	assert.Equal(t, usecase.StepLocate, wizard.Step())
}

// TestUploadWizard_CoordinatePropagation checks that the coordinates
// resolved in the locate step are stamped onto every preview of the
// batch, overwriting individually extracted pairs.
func TestUploadWizard_CoordinatePropagation(t *testing.T) {
	lat, lon := 35.66, 139.70
	extractor := &stubExtractor{byFilename: map[string]*domain.ExifData{}}
	wizard, _ := newTestWizard(t, true, extractor)
	ctx := context.Background()

	// one file carries GPS tags, the others do not
	extractor.byFilename["tagged.jpg"] = &domain.ExifData{Latitude: &lat, Longitude: &lon}
	extractor.next = "tagged.jpg"
	_, _, err := wizard.AddFiles(ctx, []dto.UploadFile{imageFile("tagged.jpg", "image/jpeg")})
	require.NoError(t, err)

	extractor.next = "bare.png"
	_, _, err = wizard.AddFiles(ctx, []dto.UploadFile{
		imageFile("bare.png", "image/png"),
		imageFile("bare2.png", "image/png"),
	})
	require.NoError(t, err)

	require.NoError(t, wizard.ToLocate())
	require.NoError(t, wizard.ChooseNewTrip(ctx, dto.CreateTripRequest{
		Title: "Tokyo Trip", City: "Tokyo", Country: "Japan",
	}))

	previews := wizard.Previews()
	require.Len(t, previews, 3)
	for _, p := range previews {
		require.NotNil(t, p.Coordinates)
		assert.Equal(t, 139.70, p.Coordinates.X)
		assert.Equal(t, 35.66, p.Coordinates.Y)
	}
}

// TestUploadWizard_NewTripFallbackCoordinates checks that a batch with
// no GPS-tagged file gets the configured fallback pair.
func TestUploadWizard_NewTripFallbackCoordinates(t *testing.T) {
	wizard, _ := newTestWizard(t, true, nil)
	ctx := context.Background()

	_, _, err := wizard.AddFiles(ctx, []dto.UploadFile{imageFile("bare.jpg", "image/jpeg")})
	require.NoError(t, err)
	require.NoError(t, wizard.ToLocate())
	require.NoError(t, wizard.ChooseNewTrip(ctx, dto.CreateTripRequest{
		Title: "Somewhere", City: "Tokyo", Country: "Japan",
	}))

	previews := wizard.Previews()
	require.Len(t, previews, 1)
	require.NotNil(t, previews[0].Coordinates)
	assert.Equal(t, 139.6917, previews[0].Coordinates.X)
	assert.Equal(t, 35.6895, previews[0].Coordinates.Y)
}

// TestUploadWizard_MissingFieldRefusal checks that the locate step
// refuses new-trip and new-location choices with missing required
// fields and names them.
func TestUploadWizard_MissingFieldRefusal(t *testing.T) {
	wizard, _ := newTestWizard(t, true, nil)
	ctx := context.Background()

	_, _, err := wizard.AddFiles(ctx, []dto.UploadFile{imageFile("a.jpg", "image/jpeg")})
	require.NoError(t, err)
	require.NoError(t, wizard.ToLocate())

	err = wizard.ChooseNewTrip(ctx, dto.CreateTripRequest{Title: "No city or country"})
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrValidationFailed.Code, appErr.Code)
	assert.ElementsMatch(t, []string{"city", "country"}, appErr.Details["missing"])
	assert.Equal(t, usecase.StepLocate, wizard.Step())

	err = wizard.ChooseNewLocation(ctx, "1", dto.CreateLocationRequest{Name: "No address"})
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrValidationFailed.Code, appErr.Code)
	assert.ElementsMatch(t, []string{"address"}, appErr.Details["missing"])
}

// TestUploadWizard_StepGuards checks that operations outside their step
// are refused.
func TestUploadWizard_StepGuards(t *testing.T) {
	wizard, _ := newTestWizard(t, true, nil)
	ctx := context.Background()

	// locate and commit are unreachable from select
	assert.ErrorIs(t, wizard.ChooseExistingLocation(ctx, "1", "2"), apperrors.ErrInvalidStep)
	assert.ErrorIs(t, wizard.SetDetails(nil, nil), apperrors.ErrInvalidStep)
	_, err := wizard.Commit(ctx)
	assert.ErrorIs(t, err, apperrors.ErrInvalidStep)

	// adding files is select-only
	_, _, err = wizard.AddFiles(ctx, []dto.UploadFile{imageFile("a.jpg", "image/jpeg")})
	require.NoError(t, err)
	require.NoError(t, wizard.ToLocate())
	_, _, err = wizard.AddFiles(ctx, []dto.UploadFile{imageFile("b.jpg", "image/jpeg")})
	assert.ErrorIs(t, err, apperrors.ErrInvalidStep)
}

// TestUploadWizard_CommitToExistingLocation checks the full flow into a
// seeded location: photos land on the location with its coordinates,
// and the result carries the canonical records.
func TestUploadWizard_CommitToExistingLocation(t *testing.T) {
	wizard, _ := newTestWizard(t, true, nil)
	ctx := context.Background()

	_, _, err := wizard.AddFiles(ctx, []dto.UploadFile{
		imageFile("a.jpg", "image/jpeg"),
		imageFile("b.jpg", "image/jpeg"),
	})
	require.NoError(t, err)
	require.NoError(t, wizard.ToLocate())
	// Shibuya Crossing, seeded with rating 4
	require.NoError(t, wizard.ChooseExistingLocation(ctx, "1", "2"))
	require.NoError(t, wizard.SetDetails(nil, nil))

	result, err := wizard.Commit(ctx)
	require.NoError(t, err)
	require.NotNil(t, result.Trip)
	assert.Equal(t, "1", result.Trip.ID)
	require.Len(t, result.Locations, 1)
	assert.Equal(t, "2", result.Locations[0].ID)
	require.Len(t, result.Photos, 2)
	for _, p := range result.Photos {
		assert.Equal(t, "2", p.LocationID)
		assert.Equal(t, result.Locations[0].X, p.X)
		assert.Equal(t, result.Locations[0].Y, p.Y)
		assert.NotEmpty(t, p.FileURL)
	}

	// commit is one-shot
	_, err = wizard.Commit(ctx)
	assert.ErrorIs(t, err, apperrors.ErrInvalidStep)
	// and cancel is refused after it
	assert.ErrorIs(t, wizard.Cancel(), apperrors.ErrInvalidStep)
}

// TestUploadWizard_CommitNewTripEndToEnd builds a trip from scratch on
// an empty store: two photos into a fresh Tokyo trip, rating set to 4 on
// its default location ⇒ photo count 2 and trip rating 4.
func TestUploadWizard_CommitNewTripEndToEnd(t *testing.T) {
	wizard, store := newTestWizard(t, false, nil)
	ctx := context.Background()

	_, _, err := wizard.AddFiles(ctx, []dto.UploadFile{
		imageFile("a.jpg", "image/jpeg"),
		imageFile("b.jpg", "image/jpeg"),
	})
	require.NoError(t, err)
	require.NoError(t, wizard.ToLocate())
	require.NoError(t, wizard.ChooseNewTrip(ctx, dto.CreateTripRequest{
		Title: "Tokyo Trip", City: "Tokyo", Country: "Japan",
	}))
	require.NoError(t, wizard.SetDetails(nil, nil))

	result, err := wizard.Commit(ctx)
	require.NoError(t, err)
	require.NotNil(t, result.Trip)
	assert.Equal(t, "Tokyo Trip", result.Trip.Title)

	require.Len(t, result.Locations, 1)
	created := result.Locations[0]
	assert.Equal(t, "Tokyo", created.Name)
	assert.Equal(t, "Tokyo, Japan", created.Address)
	assert.Equal(t, 139.6917, created.X)
	assert.Equal(t, 0, created.Rating)
	require.Len(t, created.Photos, 2)

	// rate the default location and recompute
	locationRepo := memory.NewLocationRepository(store)
	_, err = locationRepo.Update(ctx, &domain.Location{ID: created.ID, Rating: 4})
	require.NoError(t, err)

	locations, err := locationRepo.ListByTrip(ctx, result.Trip.ID)
	require.NoError(t, err)
	photoRepo := memory.NewPhotoRepository(store)
	for i := range locations {
		photos, err := photoRepo.GetByLocation(ctx, locations[i].ID)
		require.NoError(t, err)
		locations[i].Photos = photos
	}

	stats := usecase.ComputeTripStats(result.Trip.ID, locations)
	assert.Equal(t, 2, stats.PhotoCount)
	require.NotNil(t, stats.Rating)
	assert.Equal(t, 4.0, *stats.Rating)
}

// TestUploadWizard_CancelResets checks that cancel before uploading
// drops the accumulated state and returns to select.
func TestUploadWizard_CancelResets(t *testing.T) {
	wizard, _ := newTestWizard(t, true, nil)
	ctx := context.Background()

	_, _, err := wizard.AddFiles(ctx, []dto.UploadFile{imageFile("a.jpg", "image/jpeg")})
	require.NoError(t, err)
	require.NoError(t, wizard.ToLocate())

	require.NoError(t, wizard.Cancel())
	assert.Equal(t, usecase.StepSelect, wizard.Step())
	assert.Empty(t, wizard.Previews())
}
