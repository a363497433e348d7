package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/travel-journal-service/internal/domain"
	"github.com/travel-journal-service/internal/domain/repository"
	"github.com/travel-journal-service/internal/pkg/errors"
	"go.uber.org/zap"
)

type locationRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewLocationRepository(db *DB) repository.LocationRepository {
	return &locationRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

const locationColumns = `
	id, trip_id, x, y, name, address, rating, notes, tags,
	cost_level, time_needed, best_time_to_visit, created_at
`

func (r *locationRepository) Create(ctx context.Context, location *domain.Location) (*domain.Location, error) {
	created := *location
	if created.ID == "" {
		created.ID = uuid.NewString()
	}
	if created.CreatedAt.IsZero() {
		created.CreatedAt = time.Now().UTC()
	}
	domain.NormalizeLocation(&created)
	created.Photos = nil

	query := `
		INSERT INTO locations (` + locationColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`
	_, err := r.db.ExecContext(ctx, query,
		created.ID, created.TripID, created.X, created.Y, created.Name, created.Address,
		created.Rating, created.Notes, pq.Array(created.Tags),
		string(created.CostLevel), created.TimeNeeded, created.BestTimeToVisit, created.CreatedAt,
	)
	if err != nil {
		r.logger.Error("Failed to create location", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return &created, nil
}

func (r *locationRepository) GetByID(ctx context.Context, id string) (*domain.Location, error) {
	query := `SELECT ` + locationColumns + ` FROM locations WHERE id = $1`

	location, err := r.scanOne(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, errors.ErrLocationNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get location by ID", zap.String("id", id), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	return location, nil
}

func (r *locationRepository) ListByTrip(ctx context.Context, tripID string) ([]domain.Location, error) {
	query := `SELECT ` + locationColumns + ` FROM locations WHERE trip_id = $1 ORDER BY created_at`

	rows, err := r.db.QueryContext(ctx, query, tripID)
	if err != nil {
		r.logger.Error("Failed to list locations by trip", zap.String("trip_id", tripID), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	defer rows.Close()

	locations := make([]domain.Location, 0)
	for rows.Next() {
		location, err := r.scanOne(rows)
		if err != nil {
			r.logger.Error("Failed to scan location row", zap.Error(err))
			return nil, errors.ErrDatabaseError
		}
		locations = append(locations, *location)
	}
	return locations, rows.Err()
}

func (r *locationRepository) Update(ctx context.Context, location *domain.Location) (*domain.Location, error) {
	query := `
		UPDATE locations SET
			name               = COALESCE(NULLIF($2, ''), name),
			address            = COALESCE(NULLIF($3, ''), address),
			x                  = CASE WHEN $4 <> 0 OR $5 <> 0 THEN $4 ELSE x END,
			y                  = CASE WHEN $4 <> 0 OR $5 <> 0 THEN $5 ELSE y END,
			rating             = CASE WHEN $6 <> 0 THEN $6 ELSE rating END,
			notes              = COALESCE(NULLIF($7, ''), notes),
			tags               = COALESCE($8, tags),
			cost_level         = COALESCE(NULLIF($9, ''), cost_level),
			time_needed        = CASE WHEN $10 <> 0 THEN $10 ELSE time_needed END,
			best_time_to_visit = COALESCE(NULLIF($11, ''), best_time_to_visit)
		WHERE id = $1
		RETURNING ` + locationColumns

	var tags interface{}
	if location.Tags != nil {
		tags = pq.Array(location.Tags)
	}

	updated, err := r.scanOne(r.db.QueryRowContext(ctx, query,
		location.ID, location.Name, location.Address, location.X, location.Y,
		location.Rating, location.Notes, tags,
		string(location.CostLevel), location.TimeNeeded, location.BestTimeToVisit,
	))
	if err == sql.ErrNoRows {
		return nil, errors.ErrLocationNotFound
	}
	if err != nil {
		r.logger.Error("Failed to update location", zap.String("id", location.ID), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	return updated, nil
}

func (r *locationRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM locations WHERE id = $1`, id)
	if err != nil {
		r.logger.Error("Failed to delete location", zap.String("id", id), zap.Error(err))
		return errors.ErrDatabaseError
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return errors.ErrLocationNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *locationRepository) scanOne(row rowScanner) (*domain.Location, error) {
	var location domain.Location
	var tags pq.StringArray
	var costLevel string

	err := row.Scan(
		&location.ID, &location.TripID, &location.X, &location.Y,
		&location.Name, &location.Address, &location.Rating, &location.Notes, &tags,
		&costLevel, &location.TimeNeeded, &location.BestTimeToVisit, &location.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	location.Tags = []string(tags)
	location.CostLevel = domain.CostLevel(costLevel)
	return &location, nil
}
