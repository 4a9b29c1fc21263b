package models

import (
	"time"

	"github.com/google/uuid"
)

// ResponseType is a volunteer's decision on an SOS event.
type ResponseType string

const (
	ResponseAccepted ResponseType = "accepted"
	ResponseDeclined ResponseType = "declined"
)

// IsValid reports whether the decision is one of the known types.
func (r ResponseType) IsValid() bool {
	return r == ResponseAccepted || r == ResponseDeclined
}

// VolunteerResponse is an append-only record of a volunteer's accept/decline
// decision on a specific SOS event. A declined response hides the event from
// that volunteer's pending pool; only accepted responses are surfaced to the
// event owner.
type VolunteerResponse struct {
	ID               uuid.UUID    `json:"id"`
	SOSEventID       uuid.UUID    `json:"sos_event_id"`
	VolunteerID      uuid.UUID    `json:"volunteer_id"`
	ResponseType     ResponseType `json:"response_type"`
	EstimatedArrival string       `json:"estimated_arrival,omitempty"`
	Message          string       `json:"message,omitempty"`
	CreatedAt        time.Time    `json:"created_at"`
}
