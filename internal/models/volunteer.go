package models

import (
	"time"

	"github.com/google/uuid"
)

// Volunteer is a user opted in to receive and respond to nearby SOS events.
// At most one record exists per user; registering again updates it.
// Latitude/Longitude are the last reported position and may be unknown.
type Volunteer struct {
	ID             uuid.UUID `json:"id"`
	UserID         uuid.UUID `json:"user_id"`
	IsAvailable    bool      `json:"is_available"`
	MaxRangeMeters int       `json:"max_range_meters"`
	Latitude       *float64  `json:"latitude,omitempty"`
	Longitude      *float64  `json:"longitude,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// HasLocation reports whether the volunteer has a known position.
func (v *Volunteer) HasLocation() bool {
	return v.Latitude != nil && v.Longitude != nil
}
