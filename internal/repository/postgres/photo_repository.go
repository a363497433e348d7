package postgres

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/travel-journal-service/internal/domain"
	"github.com/travel-journal-service/internal/domain/repository"
	"github.com/travel-journal-service/internal/pkg/errors"
	"go.uber.org/zap"
)

type photoRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewPhotoRepository(db *DB) repository.PhotoRepository {
	return &photoRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

const photoColumns = `
	id, location_id, user_id, x, y, file_url, original_filename, taken_at, is_cover_photo
`

func (r *photoRepository) Upload(ctx context.Context, photos []domain.Photo) ([]domain.Photo, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		r.logger.Error("Failed to begin photo upload tx", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	defer tx.Rollback()

	query := `
		INSERT INTO photos (` + photoColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	created := make([]domain.Photo, 0, len(photos))
	for _, p := range photos {
		if p.ID == "" {
			p.ID = uuid.NewString()
		}
		if _, err := tx.ExecContext(ctx, query,
			p.ID, p.LocationID, p.UserID, p.X, p.Y,
			p.FileURL, p.OriginalFilename, p.TakenAt, p.IsCoverPhoto,
		); err != nil {
			r.logger.Error("Failed to insert photo", zap.String("id", p.ID), zap.Error(err))
			return nil, errors.ErrDatabaseError
		}
		created = append(created, p)
	}

	if err := tx.Commit(); err != nil {
		r.logger.Error("Failed to commit photo upload tx", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	return created, nil
}

func (r *photoRepository) GetByID(ctx context.Context, id string) (*domain.Photo, error) {
	var p domain.Photo
	err := r.db.QueryRowContext(ctx,
		`SELECT `+photoColumns+` FROM photos WHERE id = $1`, id,
	).Scan(
		&p.ID, &p.LocationID, &p.UserID, &p.X, &p.Y,
		&p.FileURL, &p.OriginalFilename, &p.TakenAt, &p.IsCoverPhoto,
	)
	if err == sql.ErrNoRows {
		return nil, errors.ErrPhotoNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get photo", zap.String("id", id), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	return &p, nil
}

func (r *photoRepository) GetByLocation(ctx context.Context, locationID string) ([]domain.Photo, error) {
	query := `SELECT ` + photoColumns + ` FROM photos WHERE location_id = $1 ORDER BY id`
	return r.query(ctx, query, locationID)
}

func (r *photoRepository) List(ctx context.Context, userID string) ([]domain.Photo, error) {
	query := `SELECT ` + photoColumns + ` FROM photos WHERE ($1 = '' OR user_id = $1) ORDER BY id`
	return r.query(ctx, query, userID)
}

func (r *photoRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM photos WHERE id = $1`, id)
	if err != nil {
		r.logger.Error("Failed to delete photo", zap.String("id", id), zap.Error(err))
		return errors.ErrDatabaseError
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return errors.ErrPhotoNotFound
	}
	return nil
}

func (r *photoRepository) SetCover(ctx context.Context, photoID, locationID string) (*domain.Photo, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		r.logger.Error("Failed to begin set-cover tx", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		`UPDATE photos SET is_cover_photo = FALSE WHERE location_id = $1`, locationID,
	); err != nil {
		r.logger.Error("Failed to clear cover flags", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	var photo domain.Photo
	err = tx.QueryRowContext(ctx, `
		UPDATE photos SET is_cover_photo = TRUE
		WHERE id = $1 AND location_id = $2
		RETURNING `+photoColumns,
		photoID, locationID,
	).Scan(
		&photo.ID, &photo.LocationID, &photo.UserID, &photo.X, &photo.Y,
		&photo.FileURL, &photo.OriginalFilename, &photo.TakenAt, &photo.IsCoverPhoto,
	)
	if err == sql.ErrNoRows {
		return nil, errors.ErrPhotoNotFound
	}
	if err != nil {
		r.logger.Error("Failed to set cover photo", zap.String("id", photoID), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	if err := tx.Commit(); err != nil {
		r.logger.Error("Failed to commit set-cover tx", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	return &photo, nil
}

func (r *photoRepository) query(ctx context.Context, query string, arg string) ([]domain.Photo, error) {
	rows, err := r.db.QueryContext(ctx, query, arg)
	if err != nil {
		r.logger.Error("Failed to query photos", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	defer rows.Close()

	photos := make([]domain.Photo, 0)
	for rows.Next() {
		var p domain.Photo
		if err := rows.Scan(
			&p.ID, &p.LocationID, &p.UserID, &p.X, &p.Y,
			&p.FileURL, &p.OriginalFilename, &p.TakenAt, &p.IsCoverPhoto,
		); err != nil {
			r.logger.Error("Failed to scan photo row", zap.Error(err))
			return nil, errors.ErrDatabaseError
		}
		photos = append(photos, p)
	}
	return photos, rows.Err()
}
