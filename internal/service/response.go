package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/resqnet/sos_coordination_system/internal/config"
	"github.com/resqnet/sos_coordination_system/internal/models"
	"github.com/sirupsen/logrus"
)

// ResponseRepository defines the contract for volunteer response persistence.
// Responses are append-only.
type ResponseRepository interface {
	Create(ctx context.Context, response *models.VolunteerResponse) error
	// ListAccepted returns accepted responses for an event, most recent first.
	ListAccepted(ctx context.Context, eventID uuid.UUID) ([]*models.VolunteerResponse, error)
	// RespondedEventIDs returns the set of event ids the volunteer has already
	// responded to, used to hide them from the pending pool.
	RespondedEventIDs(ctx context.Context, volunteerID uuid.UUID) (map[uuid.UUID]struct{}, error)
	CountSince(ctx context.Context, minutes int) (int, error)
}

// ResponseService defines the contract for volunteer response aggregation.
type ResponseService interface {
	Respond(ctx context.Context, response *models.VolunteerResponse) error
	ListAcceptedResponses(ctx context.Context, eventID uuid.UUID) ([]*models.VolunteerResponse, error)
}

type responseService struct {
	events    EventRepository
	responses ResponseRepository
	logger    *logrus.Logger
	cfg       *config.Config
}

func NewResponseService(events EventRepository, responses ResponseRepository, logger *logrus.Logger, cfg *config.Config) ResponseService {
	return &responseService{
		events:    events,
		responses: responses,
		logger:    logger,
		cfg:       cfg,
	}
}

// Respond records a volunteer's accept/decline decision on an active event.
// Responding to a resolved or cancelled event is rejected. A volunteer may
// follow an earlier decline with a later accept; both records are kept.
func (s *responseService) Respond(ctx context.Context, response *models.VolunteerResponse) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":      "response",
		"method":       "Respond",
		"event_id":     response.SOSEventID,
		"volunteer_id": response.VolunteerID,
		"decision":     response.ResponseType,
	})
	log.Info("Attempting to record volunteer response")

	if !response.ResponseType.IsValid() {
		return fmt.Errorf("service: unknown response type %q: %w", response.ResponseType, models.ErrValidation)
	}
	if response.VolunteerID == uuid.Nil {
		return fmt.Errorf("service: volunteer id is required: %w", models.ErrValidation)
	}

	event, err := s.events.GetByID(ctx, response.SOSEventID)
	if err != nil {
		log.WithError(err).Warn("Attempted to respond to a non-existent event")
		return fmt.Errorf("service: event %s not found: %w", response.SOSEventID, err)
	}
	if event.Status != models.StatusActive {
		log.Warn("Attempted to respond to a finished event")
		return fmt.Errorf("service: event %s is already %s: %w", event.ID, event.Status, models.ErrInvalidTransition)
	}

	if err := s.responses.Create(ctx, response); err != nil {
		log.WithError(err).Error("Failed to create response in repository")
		return fmt.Errorf("service: could not record response: %w", err)
	}

	log.WithField("response_id", response.ID).Info("Volunteer response recorded successfully")
	return nil
}

// ListAcceptedResponses returns the owner-facing live responder list: accepted
// responses only, most recent first, one entry per volunteer (last write wins
// when the same volunteer accepted more than once). Clients poll this at the
// configured interval, which bounds how stale the list can be.
func (s *responseService) ListAcceptedResponses(ctx context.Context, eventID uuid.UUID) ([]*models.VolunteerResponse, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "response",
		"method":   "ListAcceptedResponses",
		"event_id": eventID,
	})

	if _, err := s.events.GetByID(ctx, eventID); err != nil {
		log.WithError(err).Warn("Attempted to list responses for a non-existent event")
		return nil, fmt.Errorf("service: event %s not found: %w", eventID, err)
	}

	accepted, err := s.responses.ListAccepted(ctx, eventID)
	if err != nil {
		log.WithError(err).Error("Failed to list accepted responses from repository")
		return nil, fmt.Errorf("service: could not list responses: %w", err)
	}

	// Rows arrive most recent first, so keeping the first occurrence per
	// volunteer yields last-write-wins rendering.
	seen := make(map[uuid.UUID]struct{}, len(accepted))
	live := make([]*models.VolunteerResponse, 0, len(accepted))
	for _, response := range accepted {
		if _, ok := seen[response.VolunteerID]; ok {
			continue
		}
		seen[response.VolunteerID] = struct{}{}
		live = append(live, response)
	}

	log.WithField("count", len(live)).Info("Accepted responses listed")
	return live, nil
}
