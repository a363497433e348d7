package memory

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/travel-journal-service/internal/domain"
	"github.com/travel-journal-service/internal/domain/repository"
	"github.com/travel-journal-service/internal/pkg/errors"
)

type locationRepository struct {
	store *Store
}

func NewLocationRepository(store *Store) repository.LocationRepository {
	return &locationRepository{store: store}
}

func (r *locationRepository) Create(ctx context.Context, location *domain.Location) (*domain.Location, error) {
	if err := r.store.simulate(ctx); err != nil {
		return nil, err
	}

	created := *location
	if created.ID == "" {
		created.ID = uuid.NewString()
	}
	if created.CreatedAt.IsZero() {
		created.CreatedAt = time.Now().UTC()
	}
	domain.NormalizeLocation(&created)
	created.Photos = nil // attached at read time, never stored

	r.store.mu.Lock()
	r.store.locations[created.ID] = created
	r.store.mu.Unlock()

	return &created, nil
}

func (r *locationRepository) GetByID(ctx context.Context, id string) (*domain.Location, error) {
	if err := r.store.simulate(ctx); err != nil {
		return nil, err
	}

	r.store.mu.RLock()
	location, ok := r.store.locations[id]
	r.store.mu.RUnlock()

	if !ok {
		return nil, errors.ErrLocationNotFound
	}
	return &location, nil
}

func (r *locationRepository) ListByTrip(ctx context.Context, tripID string) ([]domain.Location, error) {
	if err := r.store.simulate(ctx); err != nil {
		return nil, err
	}

	r.store.mu.RLock()
	locations := make([]domain.Location, 0)
	for _, l := range r.store.locations {
		if l.TripID == tripID {
			locations = append(locations, l)
		}
	}
	r.store.mu.RUnlock()

	sort.Slice(locations, func(i, j int) bool {
		return locations[i].CreatedAt.Before(locations[j].CreatedAt)
	})
	return locations, nil
}

// Update overlays the present fields of the argument onto the stored
// record and re-normalizes the result.
func (r *locationRepository) Update(ctx context.Context, location *domain.Location) (*domain.Location, error) {
	if err := r.store.simulate(ctx); err != nil {
		return nil, err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	existing, ok := r.store.locations[location.ID]
	if !ok {
		return nil, errors.ErrLocationNotFound
	}

	merged := existing
	if location.Name != "" {
		merged.Name = location.Name
	}
	if location.Address != "" {
		merged.Address = location.Address
	}
	if location.X != 0 || location.Y != 0 {
		merged.X = location.X
		merged.Y = location.Y
	}
	if location.Rating != 0 {
		merged.Rating = location.Rating
	}
	if location.Notes != "" {
		merged.Notes = location.Notes
	}
	if location.Tags != nil {
		merged.Tags = location.Tags
	}
	if location.CostLevel != "" {
		merged.CostLevel = location.CostLevel
	}
	if location.TimeNeeded != 0 {
		merged.TimeNeeded = location.TimeNeeded
	}
	if location.BestTimeToVisit != "" {
		merged.BestTimeToVisit = location.BestTimeToVisit
	}
	domain.NormalizeLocation(&merged)

	r.store.locations[location.ID] = merged
	return &merged, nil
}

func (r *locationRepository) Delete(ctx context.Context, id string) error {
	if err := r.store.simulate(ctx); err != nil {
		return err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.locations[id]; !ok {
		return errors.ErrLocationNotFound
	}
	delete(r.store.locations, id)

	for pid, p := range r.store.photos {
		if p.LocationID == id {
			delete(r.store.photos, pid)
		}
	}
	return nil
}
