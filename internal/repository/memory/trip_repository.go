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

type tripRepository struct {
	store *Store
}

func NewTripRepository(store *Store) repository.TripRepository {
	return &tripRepository{store: store}
}

func (r *tripRepository) Create(ctx context.Context, trip *domain.Trip) (*domain.Trip, error) {
	if err := r.store.simulate(ctx); err != nil {
		return nil, err
	}

	created := *trip
	if created.ID == "" {
		created.ID = uuid.NewString()
	}
	if created.CreatedAt.IsZero() {
		created.CreatedAt = time.Now().UTC()
	}

	r.store.mu.Lock()
	r.store.trips[created.ID] = created
	r.store.mu.Unlock()

	return &created, nil
}

func (r *tripRepository) GetByID(ctx context.Context, id string) (*domain.Trip, error) {
	if err := r.store.simulate(ctx); err != nil {
		return nil, err
	}

	r.store.mu.RLock()
	trip, ok := r.store.trips[id]
	r.store.mu.RUnlock()

	if !ok {
		return nil, errors.ErrTripNotFound
	}
	return &trip, nil
}

func (r *tripRepository) List(ctx context.Context, userID string) ([]domain.Trip, error) {
	if err := r.store.simulate(ctx); err != nil {
		return nil, err
	}

	r.store.mu.RLock()
	trips := make([]domain.Trip, 0, len(r.store.trips))
	for _, t := range r.store.trips {
		if userID == "" || t.UserID == userID {
			trips = append(trips, t)
		}
	}
	r.store.mu.RUnlock()

	sort.Slice(trips, func(i, j int) bool {
		return trips[i].CreatedAt.Before(trips[j].CreatedAt)
	})
	return trips, nil
}

// Update overlays the given trip onto the stored record: present fields
// of the argument win per key, everything else is kept from the stored
// version.
func (r *tripRepository) Update(ctx context.Context, trip *domain.Trip) (*domain.Trip, error) {
	if err := r.store.simulate(ctx); err != nil {
		return nil, err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	existing, ok := r.store.trips[trip.ID]
	if !ok {
		return nil, errors.ErrTripNotFound
	}

	merged := existing
	if trip.Title != "" {
		merged.Title = trip.Title
	}
	if trip.City != "" {
		merged.City = trip.City
	}
	if trip.Country != "" {
		merged.Country = trip.Country
	}
	if trip.StartDate != "" {
		merged.StartDate = trip.StartDate
	}
	if trip.EndDate != "" {
		merged.EndDate = trip.EndDate
	}
	if trip.Rating != nil {
		merged.Rating = trip.Rating
	}
	if trip.PhotoCount != nil {
		merged.PhotoCount = trip.PhotoCount
	}

	r.store.trips[trip.ID] = merged
	return &merged, nil
}

// UpdateStats overwrites both derived fields; a nil rating clears the
// stored one.
func (r *tripRepository) UpdateStats(ctx context.Context, stats domain.TripStats) (*domain.Trip, error) {
	if err := r.store.simulate(ctx); err != nil {
		return nil, err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	trip, ok := r.store.trips[stats.TripID]
	if !ok {
		return nil, errors.ErrTripNotFound
	}

	trip.Rating = stats.Rating
	count := stats.PhotoCount
	trip.PhotoCount = &count

	r.store.trips[stats.TripID] = trip
	return &trip, nil
}

func (r *tripRepository) Delete(ctx context.Context, id string) error {
	if err := r.store.simulate(ctx); err != nil {
		return err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.trips[id]; !ok {
		return errors.ErrTripNotFound
	}
	delete(r.store.trips, id)

	// Locations and photos live and die with their trip.
	for lid, l := range r.store.locations {
		if l.TripID != id {
			continue
		}
		delete(r.store.locations, lid)
		for pid, p := range r.store.photos {
			if p.LocationID == lid {
				delete(r.store.photos, pid)
			}
		}
	}
	return nil
}
