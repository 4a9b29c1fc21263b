package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/resqnet/sos_coordination_system/internal/models"
	"github.com/resqnet/sos_coordination_system/internal/service"
)

const eventColumns = `
	id,
	user_id,
	category,
	latitude,
	longitude,
	address,
	description,
	status,
	created_at,
	resolved_at`

type EventRepository struct {
	db          *pgxpool.Pool
	redisClient *redis.Client
}

func NewEventRepository(db *pgxpool.Pool, redisClient *redis.Client) service.EventRepository {
	return &EventRepository{
		db:          db,
		redisClient: redisClient,
	}
}

// Create inserts a new SOS event. The insert is a single statement, so a
// failed create leaves no partial record.
func (r *EventRepository) Create(ctx context.Context, event *models.SOSEvent) error {
	query := `
		INSERT INTO sos_events (user_id, category, latitude, longitude, address, description, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id, created_at;
	`
	err := r.db.QueryRow(ctx, query,
		event.UserID,
		event.Category,
		event.Latitude,
		event.Longitude,
		event.Address,
		event.Description,
		event.Status,
	).Scan(&event.ID, &event.CreatedAt)
	if err != nil {
		return storeErr("failed to create sos event", err)
	}
	return nil
}

// GetByID returns an SOS event by its UUID.
func (r *EventRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.SOSEvent, error) {
	query := `SELECT ` + eventColumns + ` FROM sos_events WHERE id = $1;`

	event, err := scanEvent(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("sos event %s: %w", id, models.ErrNotFound)
		}
		return nil, storeErr("failed to get sos event by id", err)
	}
	return event, nil
}

// Finish transitions an event into a terminal status with a conditional
// update keyed on the current status. Exactly one of two racing calls can
// match the active row; the loser sees no rows affected.
func (r *EventRepository) Finish(ctx context.Context, id uuid.UUID, status models.EventStatus) (bool, error) {
	query := `
		UPDATE sos_events SET
			status = $2,
			resolved_at = NOW()
		WHERE id = $1 AND status = 'active';
	`
	cmdTag, err := r.db.Exec(ctx, query, id, status)
	if err != nil {
		return false, storeErr("failed to finish sos event", err)
	}
	return cmdTag.RowsAffected() > 0, nil
}

// ListActive returns all active events, most recent first. This is the pull
// path volunteers poll, so it must match exactly the set with status active.
func (r *EventRepository) ListActive(ctx context.Context) ([]*models.SOSEvent, error) {
	query := `
		SELECT ` + eventColumns + `
		FROM sos_events
		WHERE status = 'active'
		ORDER BY created_at DESC;
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, storeErr("failed to list active sos events", err)
	}
	defer rows.Close()

	return scanEvents(rows)
}

// ActiveByOwner returns the owner's most recent active event, or nil when
// the owner has none.
func (r *EventRepository) ActiveByOwner(ctx context.Context, ownerID uuid.UUID) (*models.SOSEvent, error) {
	query := `
		SELECT ` + eventColumns + `
		FROM sos_events
		WHERE user_id = $1 AND status = 'active'
		ORDER BY created_at DESC
		LIMIT 1;
	`
	event, err := scanEvent(r.db.QueryRow(ctx, query, ownerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, storeErr("failed to get active sos event by owner", err)
	}
	return event, nil
}

// ListByOwner returns the owner's events with pagination, most recent first.
func (r *EventRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID, page, pageSize int) ([]*models.SOSEvent, error) {
	offset := (page - 1) * pageSize

	query := `
		SELECT ` + eventColumns + `
		FROM sos_events
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3;
	`
	rows, err := r.db.Query(ctx, query, ownerID, pageSize, offset)
	if err != nil {
		return nil, storeErr("failed to list sos events by owner", err)
	}
	defer rows.Close()

	return scanEvents(rows)
}

// CountActive returns the number of currently active events.
func (r *EventRepository) CountActive(ctx context.Context) (int, error) {
	query := `SELECT COUNT(*) FROM sos_events WHERE status = 'active';`

	var count int
	if err := r.db.QueryRow(ctx, query).Scan(&count); err != nil {
		return 0, storeErr("failed to count active sos events", err)
	}
	return count, nil
}

// GetEventFromCache tries to fetch an event from Redis. A cache miss returns
// (nil, nil).
func (r *EventRepository) GetEventFromCache(ctx context.Context, id uuid.UUID) (*models.SOSEvent, error) {
	key := fmt.Sprintf("sos_event:%s", id.String())
	val, err := r.redisClient.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get sos event from cache: %w", err)
	}

	event := &models.SOSEvent{}
	if err := json.Unmarshal(val, event); err != nil {
		return nil, fmt.Errorf("failed to unmarshal sos event from cache: %w", err)
	}
	return event, nil
}

// SetEventCache stores an event in Redis. The derived view expires on its
// own; the repository also invalidates it on every transition.
func (r *EventRepository) SetEventCache(ctx context.Context, event *models.SOSEvent) error {
	key := fmt.Sprintf("sos_event:%s", event.ID.String())
	val, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal sos event for cache: %w", err)
	}
	if err := r.redisClient.Set(ctx, key, val, 5*time.Minute).Err(); err != nil {
		return fmt.Errorf("failed to set sos event in cache: %w", err)
	}
	return nil
}

// InvalidateEventCache removes an event from the Redis cache.
func (r *EventRepository) InvalidateEventCache(ctx context.Context, id uuid.UUID) error {
	key := fmt.Sprintf("sos_event:%s", id.String())
	if err := r.redisClient.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to invalidate sos event cache: %w", err)
	}
	return nil
}

func scanEvent(row pgx.Row) (*models.SOSEvent, error) {
	event := &models.SOSEvent{}
	err := row.Scan(
		&event.ID,
		&event.UserID,
		&event.Category,
		&event.Latitude,
		&event.Longitude,
		&event.Address,
		&event.Description,
		&event.Status,
		&event.CreatedAt,
		&event.ResolvedAt,
	)
	if err != nil {
		return nil, err
	}
	return event, nil
}

func scanEvents(rows pgx.Rows) ([]*models.SOSEvent, error) {
	events := make([]*models.SOSEvent, 0)
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan sos event row: %w", err)
		}
		events = append(events, event)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating sos event rows: %w", err)
	}
	return events, nil
}
