package memory

import (
	"context"
	"sort"

	"github.com/google/uuid"
	"github.com/travel-journal-service/internal/domain"
	"github.com/travel-journal-service/internal/domain/repository"
	"github.com/travel-journal-service/internal/pkg/errors"
)

type photoRepository struct {
	store *Store
}

func NewPhotoRepository(store *Store) repository.PhotoRepository {
	return &photoRepository{store: store}
}

func (r *photoRepository) Upload(ctx context.Context, photos []domain.Photo) ([]domain.Photo, error) {
	if err := r.store.simulate(ctx); err != nil {
		return nil, err
	}

	created := make([]domain.Photo, 0, len(photos))

	r.store.mu.Lock()
	for _, p := range photos {
		if p.ID == "" {
			p.ID = uuid.NewString()
		}
		r.store.photos[p.ID] = p
		created = append(created, p)
	}
	r.store.mu.Unlock()

	return created, nil
}

func (r *photoRepository) GetByID(ctx context.Context, id string) (*domain.Photo, error) {
	if err := r.store.simulate(ctx); err != nil {
		return nil, err
	}

	r.store.mu.RLock()
	photo, ok := r.store.photos[id]
	r.store.mu.RUnlock()

	if !ok {
		return nil, errors.ErrPhotoNotFound
	}
	return &photo, nil
}

func (r *photoRepository) GetByLocation(ctx context.Context, locationID string) ([]domain.Photo, error) {
	if err := r.store.simulate(ctx); err != nil {
		return nil, err
	}

	r.store.mu.RLock()
	photos := make([]domain.Photo, 0)
	for _, p := range r.store.photos {
		if p.LocationID == locationID {
			photos = append(photos, p)
		}
	}
	r.store.mu.RUnlock()

	sortPhotos(photos)
	return photos, nil
}

func (r *photoRepository) List(ctx context.Context, userID string) ([]domain.Photo, error) {
	if err := r.store.simulate(ctx); err != nil {
		return nil, err
	}

	r.store.mu.RLock()
	photos := make([]domain.Photo, 0, len(r.store.photos))
	for _, p := range r.store.photos {
		if userID == "" || p.UserID == userID {
			photos = append(photos, p)
		}
	}
	r.store.mu.RUnlock()

	sortPhotos(photos)
	return photos, nil
}

func (r *photoRepository) Delete(ctx context.Context, id string) error {
	if err := r.store.simulate(ctx); err != nil {
		return err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.photos[id]; !ok {
		return errors.ErrPhotoNotFound
	}
	delete(r.store.photos, id)
	return nil
}

// SetCover marks the photo as the cover of its location and clears the
// flag on every other photo there.
func (r *photoRepository) SetCover(ctx context.Context, photoID, locationID string) (*domain.Photo, error) {
	if err := r.store.simulate(ctx); err != nil {
		return nil, err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	target, ok := r.store.photos[photoID]
	if !ok || target.LocationID != locationID {
		return nil, errors.ErrPhotoNotFound
	}

	for id, p := range r.store.photos {
		if p.LocationID != locationID {
			continue
		}
		p.IsCoverPhoto = id == photoID
		r.store.photos[id] = p
	}

	target.IsCoverPhoto = true
	return &target, nil
}

func sortPhotos(photos []domain.Photo) {
	sort.Slice(photos, func(i, j int) bool {
		return photos[i].ID < photos[j].ID
	})
}
