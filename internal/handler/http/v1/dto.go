package v1

import (
	"time"

	"github.com/google/uuid"
)

// CreateEventRequest DTO for reporting a new SOS event
// @Description DTO for reporting a new SOS event
type CreateEventRequest struct {
	UserID      string  `json:"user_id" validate:"required,uuid"`
	Category    string  `json:"category" validate:"required,oneof=health fire threat other"`
	Latitude    float64 `json:"latitude" validate:"min=-90,max=90"`
	Longitude   float64 `json:"longitude" validate:"min=-180,max=180"`
	Address     string  `json:"address,omitempty"`
	Description string  `json:"description,omitempty"`
}

// FinishEventRequest DTO for resolving or cancelling an event
// @Description DTO for resolving or cancelling an event
type FinishEventRequest struct {
	UserID string `json:"user_id" validate:"required,uuid"`
}

// EventResponse DTO with SOS event details
// @Description DTO with SOS event details
type EventResponse struct {
	ID          uuid.UUID  `json:"id"`
	UserID      uuid.UUID  `json:"user_id"`
	Category    string     `json:"category"`
	Latitude    float64    `json:"latitude"`
	Longitude   float64    `json:"longitude"`
	Address     string     `json:"address,omitempty"`
	Description string     `json:"description,omitempty"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	ResolvedAt  *time.Time `json:"resolved_at,omitempty"`
}

// RegisterVolunteerRequest DTO for opting in as a volunteer
// @Description DTO for opting in as a volunteer
type RegisterVolunteerRequest struct {
	UserID         string   `json:"user_id" validate:"required,uuid"`
	MaxRangeMeters int      `json:"max_range_meters" validate:"required,gt=0"`
	Latitude       *float64 `json:"latitude,omitempty" validate:"omitempty,latitude"`
	Longitude      *float64 `json:"longitude,omitempty" validate:"omitempty,longitude"`
}

// RegisterVolunteerResponse DTO returned on registration, including the
// currently active events so a fresh volunteer does not wait for the next poll
// @Description DTO returned on volunteer registration
type RegisterVolunteerResponse struct {
	Volunteer    *VolunteerResponse `json:"volunteer"`
	ActiveEvents []*EventResponse   `json:"active_events"`
}

// VolunteerResponse DTO with volunteer registration details
// @Description DTO with volunteer registration details
type VolunteerResponse struct {
	ID             uuid.UUID `json:"id"`
	UserID         uuid.UUID `json:"user_id"`
	IsAvailable    bool      `json:"is_available"`
	MaxRangeMeters int       `json:"max_range_meters"`
	Latitude       *float64  `json:"latitude,omitempty"`
	Longitude      *float64  `json:"longitude,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

// UpdateLocationRequest DTO for reporting a volunteer's position
// @Description DTO for reporting a volunteer's position
type UpdateLocationRequest struct {
	Latitude  float64 `json:"latitude" validate:"min=-90,max=90"`
	Longitude float64 `json:"longitude" validate:"min=-180,max=180"`
}

// RespondRequest DTO for a volunteer's accept/decline decision
// @Description DTO for a volunteer's accept/decline decision
type RespondRequest struct {
	VolunteerID      string `json:"volunteer_id" validate:"required,uuid"`
	ResponseType     string `json:"response_type" validate:"required,oneof=accepted declined"`
	EstimatedArrival string `json:"estimated_arrival,omitempty"`
	Message          string `json:"message,omitempty"`
}

// ResponseEntry DTO with a recorded volunteer response
// @Description DTO with a recorded volunteer response
type ResponseEntry struct {
	ID               uuid.UUID `json:"id"`
	SOSEventID       uuid.UUID `json:"sos_event_id"`
	VolunteerID      uuid.UUID `json:"volunteer_id"`
	ResponseType     string    `json:"response_type"`
	EstimatedArrival string    `json:"estimated_arrival,omitempty"`
	Message          string    `json:"message,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
}

// AcceptedResponsesResponse DTO with the owner-facing live responder list
// @Description DTO with the owner-facing live responder list
type AcceptedResponsesResponse struct {
	Responses []*ResponseEntry `json:"responses"`
	// PollIntervalSeconds is the advertised refresh interval; it bounds how
	// stale the responder list can be.
	PollIntervalSeconds int `json:"poll_interval_seconds"`
}

// StatsResponse DTO with system activity counters
// @Description DTO with system activity counters
type StatsResponse struct {
	ActiveEvents        int `json:"active_events"`
	AvailableVolunteers int `json:"available_volunteers"`
	ResponsesInWindow   int `json:"responses_in_window"`
}
