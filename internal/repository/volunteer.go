package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/resqnet/sos_coordination_system/internal/models"
	"github.com/resqnet/sos_coordination_system/internal/service"
)

type VolunteerRepository struct {
	db *pgxpool.Pool
}

func NewVolunteerRepository(db *pgxpool.Pool) service.VolunteerRepository {
	return &VolunteerRepository{
		db: db,
	}
}

// Upsert creates a volunteer record or updates the existing one for the same
// user. The unique constraint on user_id keeps registration idempotent.
func (r *VolunteerRepository) Upsert(ctx context.Context, volunteer *models.Volunteer) error {
	query := `
		INSERT INTO volunteers (user_id, is_available, max_range_meters, latitude, longitude)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id) DO UPDATE SET
			is_available = EXCLUDED.is_available,
			max_range_meters = EXCLUDED.max_range_meters,
			latitude = COALESCE(EXCLUDED.latitude, volunteers.latitude),
			longitude = COALESCE(EXCLUDED.longitude, volunteers.longitude),
			updated_at = NOW()
		RETURNING id, created_at, updated_at;
	`
	err := r.db.QueryRow(ctx, query,
		volunteer.UserID,
		volunteer.IsAvailable,
		volunteer.MaxRangeMeters,
		volunteer.Latitude,
		volunteer.Longitude,
	).Scan(&volunteer.ID, &volunteer.CreatedAt, &volunteer.UpdatedAt)
	if err != nil {
		return storeErr("failed to upsert volunteer", err)
	}
	return nil
}

// Deactivate clears the availability flag. It reports whether a registered
// volunteer was found.
func (r *VolunteerRepository) Deactivate(ctx context.Context, userID uuid.UUID) (bool, error) {
	query := `
		UPDATE volunteers SET
			is_available = FALSE,
			updated_at = NOW()
		WHERE user_id = $1;
	`
	cmdTag, err := r.db.Exec(ctx, query, userID)
	if err != nil {
		return false, storeErr("failed to deactivate volunteer", err)
	}
	return cmdTag.RowsAffected() > 0, nil
}

// GetByUserID returns the volunteer record for a user.
func (r *VolunteerRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*models.Volunteer, error) {
	query := `
		SELECT id, user_id, is_available, max_range_meters, latitude, longitude, created_at, updated_at
		FROM volunteers
		WHERE user_id = $1;
	`
	volunteer := &models.Volunteer{}
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&volunteer.ID,
		&volunteer.UserID,
		&volunteer.IsAvailable,
		&volunteer.MaxRangeMeters,
		&volunteer.Latitude,
		&volunteer.Longitude,
		&volunteer.CreatedAt,
		&volunteer.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("volunteer %s: %w", userID, models.ErrNotFound)
		}
		return nil, storeErr("failed to get volunteer by user id", err)
	}
	return volunteer, nil
}

// ListAvailable returns all volunteers with the availability flag set.
func (r *VolunteerRepository) ListAvailable(ctx context.Context) ([]*models.Volunteer, error) {
	query := `
		SELECT id, user_id, is_available, max_range_meters, latitude, longitude, created_at, updated_at
		FROM volunteers
		WHERE is_available = TRUE;
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, storeErr("failed to list available volunteers", err)
	}
	defer rows.Close()

	volunteers := make([]*models.Volunteer, 0)
	for rows.Next() {
		volunteer := &models.Volunteer{}
		err := rows.Scan(
			&volunteer.ID,
			&volunteer.UserID,
			&volunteer.IsAvailable,
			&volunteer.MaxRangeMeters,
			&volunteer.Latitude,
			&volunteer.Longitude,
			&volunteer.CreatedAt,
			&volunteer.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan volunteer row: %w", err)
		}
		volunteers = append(volunteers, volunteer)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating volunteer rows: %w", err)
	}
	return volunteers, nil
}

// UpdateLocation stores the volunteer's last known position. It reports
// whether a registered volunteer was found.
func (r *VolunteerRepository) UpdateLocation(ctx context.Context, userID uuid.UUID, lat, lon float64) (bool, error) {
	query := `
		UPDATE volunteers SET
			latitude = $2,
			longitude = $3,
			updated_at = NOW()
		WHERE user_id = $1;
	`
	cmdTag, err := r.db.Exec(ctx, query, userID, lat, lon)
	if err != nil {
		return false, storeErr("failed to update volunteer location", err)
	}
	return cmdTag.RowsAffected() > 0, nil
}

// CountAvailable returns the number of currently available volunteers.
func (r *VolunteerRepository) CountAvailable(ctx context.Context) (int, error) {
	query := `SELECT COUNT(*) FROM volunteers WHERE is_available = TRUE;`

	var count int
	if err := r.db.QueryRow(ctx, query).Scan(&count); err != nil {
		return 0, storeErr("failed to count available volunteers", err)
	}
	return count, nil
}
