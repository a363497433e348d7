package usecase

import (
	"context"
	"sync"

	"github.com/travel-journal-service/internal/domain"
	"github.com/travel-journal-service/internal/domain/repository"
	"github.com/travel-journal-service/internal/pkg/errors"
	"github.com/travel-journal-service/internal/usecase/dto"
	"go.uber.org/zap"
)

// SidebarView names the panel a journal session currently shows.
type SidebarView string

const (
	ViewHome           SidebarView = "home"
	ViewTripList       SidebarView = "trip-list"
	ViewTripDetail     SidebarView = "trip-detail"
	ViewLocationDetail SidebarView = "location-detail"
)

// JournalUseCase holds a session's working copy of trips, locations and
// photos together with the selection state that drives the sidebar.
// Fresh backend data is folded into the working copy by MergeTrips and
// MergeLocations rather than replacing it, so concurrent edits and
// upload results converge on one collection.
type JournalUseCase struct {
	mu sync.RWMutex

	trips     []domain.Trip
	locations []domain.Location
	photos    []domain.Photo

	view               SidebarView
	selectedTripID     string
	selectedLocationID string
	editingLocation    bool

	tripRepo     repository.TripRepository
	locationRepo repository.LocationRepository
	photoRepo    repository.PhotoRepository
	logger       *zap.Logger
}

func NewJournalUseCase(
	tripRepo repository.TripRepository,
	locationRepo repository.LocationRepository,
	photoRepo repository.PhotoRepository,
	logger *zap.Logger,
) *JournalUseCase {
	return &JournalUseCase{
		view:         ViewHome,
		tripRepo:     tripRepo,
		locationRepo: locationRepo,
		photoRepo:    photoRepo,
		logger:       logger,
	}
}

// Load replaces the working copy with the backend's current state.
func (uc *JournalUseCase) Load(ctx context.Context) error {
	trips, err := uc.tripRepo.List(ctx, defaultUserID)
	if err != nil {
		return err
	}
	photos, err := uc.photoRepo.List(ctx, defaultUserID)
	if err != nil {
		return err
	}

	locations := make([]domain.Location, 0)
	for _, t := range trips {
		ls, err := uc.locationRepo.ListByTrip(ctx, t.ID)
		if err != nil {
			return err
		}
		locations = append(locations, ls...)
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.trips = trips
	uc.locations = uc.withPhotos(locations, photos)
	uc.photos = photos
	for _, t := range trips {
		uc.refreshStatsLocked(t.ID)
	}
	return nil
}

// View reports the current sidebar state.
func (uc *JournalUseCase) View() (SidebarView, string, string) {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return uc.view, uc.selectedTripID, uc.selectedLocationID
}

func (uc *JournalUseCase) Trips() []domain.Trip {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	out := make([]domain.Trip, len(uc.trips))
	copy(out, uc.trips)
	return out
}

func (uc *JournalUseCase) Locations() []domain.Location {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	out := make([]domain.Location, len(uc.locations))
	copy(out, uc.locations)
	return out
}

// ShowTripList opens the trip list panel.
func (uc *JournalUseCase) ShowTripList() {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.view = ViewTripList
	uc.selectedTripID = ""
	uc.selectedLocationID = ""
	uc.editingLocation = false
}

// SelectTrip opens a trip's detail panel. The trip must already be in
// the working copy or in the backend.
func (uc *JournalUseCase) SelectTrip(ctx context.Context, tripID string) (*domain.Trip, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	trip := uc.findTripLocked(tripID)
	if trip == nil {
		fetched, err := uc.tripRepo.GetByID(ctx, tripID)
		if err != nil {
			return nil, err
		}
		uc.trips = MergeTrips(uc.trips, []domain.Trip{*fetched})
		trip = uc.findTripLocked(tripID)
	}

	uc.view = ViewTripDetail
	uc.selectedTripID = tripID
	uc.selectedLocationID = ""
	uc.editingLocation = false
	return trip, nil
}

// SelectLocation opens a location's detail panel, resolving from the
// working copy first and falling back to the backend.
func (uc *JournalUseCase) SelectLocation(ctx context.Context, locationID string) (*domain.Location, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	location := uc.findLocationLocked(locationID)
	if location == nil {
		fetched, err := uc.locationRepo.GetByID(ctx, locationID)
		if err != nil {
			return nil, err
		}
		photos, err := uc.photoRepo.GetByLocation(ctx, locationID)
		if err != nil {
			return nil, err
		}
		fetched.Photos = photos
		uc.locations = MergeLocations(uc.locations, []domain.Location{*fetched})
		location = uc.findLocationLocked(locationID)
	}

	uc.view = ViewLocationDetail
	uc.selectedTripID = location.TripID
	uc.selectedLocationID = location.ID
	uc.editingLocation = false
	return location, nil
}

// SelectPhoto jumps to the detail panel of the location a photo belongs
// to. The photo is resolved from the working copy first, then from the
// backend.
func (uc *JournalUseCase) SelectPhoto(ctx context.Context, photoID string) (*domain.Location, error) {
	uc.mu.RLock()
	var locationID string
	for _, p := range uc.photos {
		if p.ID == photoID {
			locationID = p.LocationID
			break
		}
	}
	uc.mu.RUnlock()

	if locationID == "" {
		photos, err := uc.photoRepo.List(ctx, defaultUserID)
		if err != nil {
			return nil, err
		}
		uc.mu.Lock()
		uc.photos = photos
		uc.mu.Unlock()
		for _, p := range photos {
			if p.ID == photoID {
				locationID = p.LocationID
				break
			}
		}
	}
	if locationID == "" {
		return nil, errors.ErrPhotoNotFound
	}

	return uc.SelectLocation(ctx, locationID)
}

// Back walks the sidebar one level up: location detail to its trip,
// trip detail to the trip list, trip list to home.
func (uc *JournalUseCase) Back() SidebarView {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	switch uc.view {
	case ViewLocationDetail:
		uc.view = ViewTripDetail
		uc.selectedLocationID = ""
		uc.editingLocation = false
	case ViewTripDetail:
		uc.view = ViewTripList
		uc.selectedTripID = ""
	case ViewTripList:
		uc.view = ViewHome
	}
	return uc.view
}

// SaveLocation persists a location edit, folds the canonical record
// back into the working copy and recomputes the owning trip's derived
// fields.
func (uc *JournalUseCase) SaveLocation(ctx context.Context, req dto.UpdateLocationRequest) (*domain.Location, error) {
	updated, err := uc.locationRepo.Update(ctx, req.ToDomain())
	if err != nil {
		uc.logger.Error("Failed to save location", zap.String("location_id", req.ID), zap.Error(err))
		return nil, err
	}
	photos, err := uc.photoRepo.GetByLocation(ctx, updated.ID)
	if err != nil {
		return nil, err
	}
	updated.Photos = photos

	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.locations = MergeLocations(uc.locations, []domain.Location{*updated})
	uc.refreshStatsLocked(updated.TripID)
	uc.editingLocation = false
	return updated, nil
}

// ApplyUploadResult folds a finished upload into the working copy and
// navigates to the first uploaded-to location with its edit form open,
// so details can be filled in right after the photos land.
func (uc *JournalUseCase) ApplyUploadResult(result *dto.UploadResult) {
	if result == nil {
		return
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	if result.Trip != nil {
		uc.trips = MergeTrips(uc.trips, []domain.Trip{*result.Trip})
	}
	if len(result.Locations) > 0 {
		uc.locations = MergeLocations(uc.locations, result.Locations)
	}
	uc.photos = mergePhotos(uc.photos, result.Photos)

	tripID := ""
	if result.Trip != nil {
		tripID = result.Trip.ID
	} else if len(result.Locations) > 0 {
		tripID = result.Locations[0].TripID
	}
	if tripID != "" {
		uc.refreshStatsLocked(tripID)
	}

	if len(result.Locations) > 0 {
		uc.view = ViewLocationDetail
		uc.selectedTripID = result.Locations[0].TripID
		uc.selectedLocationID = result.Locations[0].ID
		uc.editingLocation = true
	}
}

// EditingLocation reports whether the location detail panel is in edit
// mode.
func (uc *JournalUseCase) EditingLocation() bool {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return uc.editingLocation
}

func (uc *JournalUseCase) findTripLocked(id string) *domain.Trip {
	for i := range uc.trips {
		if uc.trips[i].ID == id {
			return &uc.trips[i]
		}
	}
	return nil
}

func (uc *JournalUseCase) findLocationLocked(id string) *domain.Location {
	for i := range uc.locations {
		if uc.locations[i].ID == id {
			return &uc.locations[i]
		}
	}
	return nil
}

// refreshStatsLocked recomputes one trip's derived fields from the
// working copy. Callers hold the write lock.
func (uc *JournalUseCase) refreshStatsLocked(tripID string) {
	uc.trips = RecomputeTripStats(uc.trips, uc.locations, tripID)
}

// withPhotos attaches each photo to its location.
func (uc *JournalUseCase) withPhotos(locations []domain.Location, photos []domain.Photo) []domain.Location {
	byLocation := make(map[string][]domain.Photo)
	for _, p := range photos {
		byLocation[p.LocationID] = append(byLocation[p.LocationID], p)
	}
	for i := range locations {
		locations[i].Photos = byLocation[locations[i].ID]
	}
	return locations
}

// mergePhotos replaces photos by id, appending unknown ones in order.
// Photos are immutable so replacement is whole-record.
func mergePhotos(existing, incoming []domain.Photo) []domain.Photo {
	index := make(map[string]int, len(existing))
	out := make([]domain.Photo, len(existing))
	copy(out, existing)
	for i, p := range out {
		index[p.ID] = i
	}
	for _, p := range incoming {
		if i, ok := index[p.ID]; ok {
			out[i] = p
			continue
		}
		index[p.ID] = len(out)
		out = append(out, p)
	}
	return out
}
