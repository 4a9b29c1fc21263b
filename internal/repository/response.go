package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/resqnet/sos_coordination_system/internal/models"
	"github.com/resqnet/sos_coordination_system/internal/service"
)

type ResponseRepository struct {
	db *pgxpool.Pool
}

func NewResponseRepository(db *pgxpool.Pool) service.ResponseRepository {
	return &ResponseRepository{
		db: db,
	}
}

// Create appends a volunteer response. Responses are never updated or deleted.
func (r *ResponseRepository) Create(ctx context.Context, response *models.VolunteerResponse) error {
	query := `
		INSERT INTO volunteer_responses (sos_event_id, volunteer_id, response_type, estimated_arrival, message)
		VALUES ($1, $2, $3, $4, $5) RETURNING id, created_at;
	`
	err := r.db.QueryRow(ctx, query,
		response.SOSEventID,
		response.VolunteerID,
		response.ResponseType,
		response.EstimatedArrival,
		response.Message,
	).Scan(&response.ID, &response.CreatedAt)
	if err != nil {
		return storeErr("failed to create volunteer response", err)
	}
	return nil
}

// ListAccepted returns accepted responses for an event, most recent first.
// The id tiebreak keeps the order stable across repeated calls.
func (r *ResponseRepository) ListAccepted(ctx context.Context, eventID uuid.UUID) ([]*models.VolunteerResponse, error) {
	query := `
		SELECT id, sos_event_id, volunteer_id, response_type, estimated_arrival, message, created_at
		FROM volunteer_responses
		WHERE sos_event_id = $1 AND response_type = 'accepted'
		ORDER BY created_at DESC, id DESC;
	`
	rows, err := r.db.Query(ctx, query, eventID)
	if err != nil {
		return nil, storeErr("failed to list accepted responses", err)
	}
	defer rows.Close()

	responses := make([]*models.VolunteerResponse, 0)
	for rows.Next() {
		response := &models.VolunteerResponse{}
		err := rows.Scan(
			&response.ID,
			&response.SOSEventID,
			&response.VolunteerID,
			&response.ResponseType,
			&response.EstimatedArrival,
			&response.Message,
			&response.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan response row: %w", err)
		}
		responses = append(responses, response)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating response rows: %w", err)
	}
	return responses, nil
}

// RespondedEventIDs returns the set of events the volunteer has responded to,
// regardless of decision.
func (r *ResponseRepository) RespondedEventIDs(ctx context.Context, volunteerID uuid.UUID) (map[uuid.UUID]struct{}, error) {
	query := `
		SELECT DISTINCT sos_event_id
		FROM volunteer_responses
		WHERE volunteer_id = $1;
	`
	rows, err := r.db.Query(ctx, query, volunteerID)
	if err != nil {
		return nil, storeErr("failed to list responded event ids", err)
	}
	defer rows.Close()

	ids := make(map[uuid.UUID]struct{})
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan responded event id: %w", err)
		}
		ids[id] = struct{}{}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating responded event ids: %w", err)
	}
	return ids, nil
}

// CountSince returns the number of responses recorded within the last
// given number of minutes.
func (r *ResponseRepository) CountSince(ctx context.Context, minutes int) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM volunteer_responses
		WHERE created_at >= NOW() - ($1 * INTERVAL '1 minute');
	`
	var count int
	if err := r.db.QueryRow(ctx, query, minutes).Scan(&count); err != nil {
		return 0, storeErr("failed to count recent responses", err)
	}
	return count, nil
}
