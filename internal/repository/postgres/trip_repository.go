package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/travel-journal-service/internal/domain"
	"github.com/travel-journal-service/internal/domain/repository"
	"github.com/travel-journal-service/internal/pkg/errors"
	"go.uber.org/zap"
)

type tripRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewTripRepository(db *DB) repository.TripRepository {
	return &tripRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

func (r *tripRepository) Create(ctx context.Context, trip *domain.Trip) (*domain.Trip, error) {
	created := *trip
	if created.ID == "" {
		created.ID = uuid.NewString()
	}
	if created.CreatedAt.IsZero() {
		created.CreatedAt = time.Now().UTC()
	}

	query := `
		INSERT INTO trips (id, user_id, title, city, country, start_date, end_date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := r.db.ExecContext(ctx, query,
		created.ID, created.UserID, created.Title, created.City, created.Country,
		created.StartDate, created.EndDate, created.CreatedAt,
	)
	if err != nil {
		r.logger.Error("Failed to create trip", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return &created, nil
}

func (r *tripRepository) GetByID(ctx context.Context, id string) (*domain.Trip, error) {
	query := `
		SELECT id, user_id, title, city, country, start_date, end_date, created_at, rating, photo_count
		FROM trips
		WHERE id = $1
	`

	var trip domain.Trip
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&trip.ID, &trip.UserID, &trip.Title, &trip.City, &trip.Country,
		&trip.StartDate, &trip.EndDate, &trip.CreatedAt, &trip.Rating, &trip.PhotoCount,
	)
	if err == sql.ErrNoRows {
		return nil, errors.ErrTripNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get trip by ID", zap.String("id", id), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return &trip, nil
}

func (r *tripRepository) List(ctx context.Context, userID string) ([]domain.Trip, error) {
	query := `
		SELECT id, user_id, title, city, country, start_date, end_date, created_at, rating, photo_count
		FROM trips
		WHERE ($1 = '' OR user_id = $1)
		ORDER BY created_at
	`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		r.logger.Error("Failed to list trips", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	defer rows.Close()

	trips := make([]domain.Trip, 0)
	for rows.Next() {
		var trip domain.Trip
		if err := rows.Scan(
			&trip.ID, &trip.UserID, &trip.Title, &trip.City, &trip.Country,
			&trip.StartDate, &trip.EndDate, &trip.CreatedAt, &trip.Rating, &trip.PhotoCount,
		); err != nil {
			r.logger.Error("Failed to scan trip row", zap.Error(err))
			return nil, errors.ErrDatabaseError
		}
		trips = append(trips, trip)
	}
	return trips, rows.Err()
}

func (r *tripRepository) Update(ctx context.Context, trip *domain.Trip) (*domain.Trip, error) {
	// COALESCE/NULLIF keeps the stored value for fields the caller left
	// empty, matching the per-key override rule of the memory driver.
	query := `
		UPDATE trips SET
			title       = COALESCE(NULLIF($2, ''), title),
			city        = COALESCE(NULLIF($3, ''), city),
			country     = COALESCE(NULLIF($4, ''), country),
			start_date  = COALESCE(NULLIF($5, ''), start_date),
			end_date    = COALESCE(NULLIF($6, ''), end_date),
			rating      = COALESCE($7, rating),
			photo_count = COALESCE($8, photo_count)
		WHERE id = $1
		RETURNING id, user_id, title, city, country, start_date, end_date, created_at, rating, photo_count
	`

	var updated domain.Trip
	err := r.db.QueryRowContext(ctx, query,
		trip.ID, trip.Title, trip.City, trip.Country, trip.StartDate, trip.EndDate,
		trip.Rating, trip.PhotoCount,
	).Scan(
		&updated.ID, &updated.UserID, &updated.Title, &updated.City, &updated.Country,
		&updated.StartDate, &updated.EndDate, &updated.CreatedAt, &updated.Rating, &updated.PhotoCount,
	)
	if err == sql.ErrNoRows {
		return nil, errors.ErrTripNotFound
	}
	if err != nil {
		r.logger.Error("Failed to update trip", zap.String("id", trip.ID), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return &updated, nil
}

func (r *tripRepository) UpdateStats(ctx context.Context, stats domain.TripStats) (*domain.Trip, error) {
	query := `
		UPDATE trips SET rating = $2, photo_count = $3
		WHERE id = $1
		RETURNING id, user_id, title, city, country, start_date, end_date, created_at, rating, photo_count
	`

	var updated domain.Trip
	err := r.db.QueryRowContext(ctx, query, stats.TripID, stats.Rating, stats.PhotoCount).Scan(
		&updated.ID, &updated.UserID, &updated.Title, &updated.City, &updated.Country,
		&updated.StartDate, &updated.EndDate, &updated.CreatedAt, &updated.Rating, &updated.PhotoCount,
	)
	if err == sql.ErrNoRows {
		return nil, errors.ErrTripNotFound
	}
	if err != nil {
		r.logger.Error("Failed to update trip stats", zap.String("id", stats.TripID), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return &updated, nil
}

func (r *tripRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM trips WHERE id = $1`, id)
	if err != nil {
		r.logger.Error("Failed to delete trip", zap.String("id", id), zap.Error(err))
		return errors.ErrDatabaseError
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return errors.ErrTripNotFound
	}
	return nil
}
