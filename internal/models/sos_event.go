package models

import (
	"time"

	"github.com/google/uuid"
)

// EventCategory is the closed set of emergency categories an SOS event can carry.
type EventCategory string

const (
	CategoryHealth EventCategory = "health"
	CategoryFire   EventCategory = "fire"
	CategoryThreat EventCategory = "threat"
	CategoryOther  EventCategory = "other"
)

// IsValid reports whether the category belongs to the closed enumeration.
func (c EventCategory) IsValid() bool {
	switch c {
	case CategoryHealth, CategoryFire, CategoryThreat, CategoryOther:
		return true
	}
	return false
}

// EventStatus is the lifecycle state of an SOS event.
type EventStatus string

const (
	StatusActive    EventStatus = "active"
	StatusResolved  EventStatus = "resolved"
	StatusCancelled EventStatus = "cancelled"
)

// IsTerminal reports whether no further transitions are permitted.
func (s EventStatus) IsTerminal() bool {
	return s == StatusResolved || s == StatusCancelled
}

// SOSEvent is a single emergency report. Category, owner and location are
// immutable after creation; ResolvedAt is set exactly once, at the transition
// into a terminal status. A (0,0) location is a valid degraded fallback for
// when positioning was unavailable at report time.
type SOSEvent struct {
	ID          uuid.UUID     `json:"id"`
	UserID      uuid.UUID     `json:"user_id"`
	Category    EventCategory `json:"category"`
	Latitude    float64       `json:"latitude"`
	Longitude   float64       `json:"longitude"`
	Address     string        `json:"address,omitempty"`
	Description string        `json:"description,omitempty"`
	Status      EventStatus   `json:"status"`
	CreatedAt   time.Time     `json:"created_at"`
	ResolvedAt  *time.Time    `json:"resolved_at,omitempty"`
}
