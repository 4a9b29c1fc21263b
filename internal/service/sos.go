package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/resqnet/sos_coordination_system/internal/config"
	"github.com/resqnet/sos_coordination_system/internal/models"
	"github.com/sirupsen/logrus"
)

// EventRepository defines the contract for SOS event persistence.
type EventRepository interface {
	Create(ctx context.Context, event *models.SOSEvent) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.SOSEvent, error)
	// Finish performs a conditional transition into a terminal status. It only
	// matches rows that are still active and reports whether a row changed, so
	// concurrent resolve/cancel races settle at the store without locking.
	Finish(ctx context.Context, id uuid.UUID, status models.EventStatus) (bool, error)
	ListActive(ctx context.Context) ([]*models.SOSEvent, error)
	ActiveByOwner(ctx context.Context, ownerID uuid.UUID) (*models.SOSEvent, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID, page, pageSize int) ([]*models.SOSEvent, error)
	CountActive(ctx context.Context) (int, error)
	GetEventFromCache(ctx context.Context, id uuid.UUID) (*models.SOSEvent, error)
	SetEventCache(ctx context.Context, event *models.SOSEvent) error
	InvalidateEventCache(ctx context.Context, id uuid.UUID) error
}

// Dispatcher routes a freshly created event to eligible volunteers. Delivery
// is best-effort: a dispatch failure never fails the creating call.
type Dispatcher interface {
	DispatchEvent(ctx context.Context, event *models.SOSEvent) error
}

// SOSService defines the contract for the SOS event lifecycle.
type SOSService interface {
	CreateEvent(ctx context.Context, event *models.SOSEvent) error
	GetEvent(ctx context.Context, id uuid.UUID) (*models.SOSEvent, error)
	ResolveEvent(ctx context.Context, id, actorID uuid.UUID) error
	CancelEvent(ctx context.Context, id, actorID uuid.UUID) error
	ActiveEventForOwner(ctx context.Context, ownerID uuid.UUID) (*models.SOSEvent, error)
	EventHistoryForOwner(ctx context.Context, ownerID uuid.UUID, page, pageSize int) ([]*models.SOSEvent, error)
	ListActiveEventsForVolunteer(ctx context.Context, volunteerID uuid.UUID) ([]*models.SOSEvent, error)
	GetStats(ctx context.Context) (*models.Stats, error)
}

type sosService struct {
	events     EventRepository
	responses  ResponseRepository
	volunteers VolunteerRepository
	dispatcher Dispatcher
	logger     *logrus.Logger
	cfg        *config.Config
}

func NewSOSService(events EventRepository, responses ResponseRepository, volunteers VolunteerRepository, dispatcher Dispatcher, logger *logrus.Logger, cfg *config.Config) SOSService {
	return &sosService{
		events:     events,
		responses:  responses,
		volunteers: volunteers,
		dispatcher: dispatcher,
		logger:     logger,
		cfg:        cfg,
	}
}

// CreateEvent validates and persists a new active SOS event, then hands it to
// the dispatcher. Dispatch problems are logged and swallowed.
func (s *sosService) CreateEvent(ctx context.Context, event *models.SOSEvent) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "sos",
		"method":   "CreateEvent",
		"owner_id": event.UserID,
		"category": event.Category,
	})
	log.Info("Attempting to create a new SOS event")

	if !event.Category.IsValid() {
		log.Warn("Rejected SOS event with unknown category")
		return fmt.Errorf("service: unknown category %q: %w", event.Category, models.ErrValidation)
	}
	if event.UserID == uuid.Nil {
		return fmt.Errorf("service: owner is required: %w", models.ErrValidation)
	}

	event.Status = models.StatusActive
	event.ResolvedAt = nil
	if err := s.events.Create(ctx, event); err != nil {
		log.WithError(err).Error("Failed to create SOS event in repository")
		return fmt.Errorf("service: could not create event: %w", err)
	}
	log.WithField("event_id", event.ID).Info("SOS event created successfully")

	if err := s.dispatcher.DispatchEvent(ctx, event); err != nil {
		log.WithError(err).Error("Failed to dispatch volunteer alerts")
	}
	return nil
}

// GetEvent fetches an event, preferring the cache over the database.
func (s *sosService) GetEvent(ctx context.Context, id uuid.UUID) (*models.SOSEvent, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "sos",
		"method":   "GetEvent",
		"event_id": id,
	})

	cached, err := s.events.GetEventFromCache(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Failed to read event cache")
	}
	if cached != nil {
		return cached, nil
	}

	event, err := s.events.GetByID(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Failed to get event from repository")
		return nil, fmt.Errorf("service: could not get event: %w", err)
	}

	if err := s.events.SetEventCache(ctx, event); err != nil {
		log.WithError(err).Warn("Failed to cache event")
	}
	return event, nil
}

// ResolveEvent transitions an active event to resolved. Only the owner may resolve.
func (s *sosService) ResolveEvent(ctx context.Context, id, actorID uuid.UUID) error {
	return s.finishEvent(ctx, id, actorID, models.StatusResolved)
}

// CancelEvent transitions an active event to cancelled. Only the owner may cancel.
func (s *sosService) CancelEvent(ctx context.Context, id, actorID uuid.UUID) error {
	return s.finishEvent(ctx, id, actorID, models.StatusCancelled)
}

func (s *sosService) finishEvent(ctx context.Context, id, actorID uuid.UUID, target models.EventStatus) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "sos",
		"method":   "finishEvent",
		"event_id": id,
		"actor_id": actorID,
		"target":   target,
	})
	log.Info("Attempting to finish SOS event")

	event, err := s.events.GetByID(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Attempted to finish a non-existent event")
		return fmt.Errorf("service: event %s not found: %w", id, err)
	}
	if event.UserID != actorID {
		log.Warn("Actor is not the event owner")
		return fmt.Errorf("service: only the owner may finish event %s: %w", id, models.ErrNotAuthorized)
	}
	if event.Status != models.StatusActive {
		return fmt.Errorf("service: event %s is already %s: %w", id, event.Status, models.ErrInvalidTransition)
	}

	updated, err := s.events.Finish(ctx, id, target)
	if err != nil {
		log.WithError(err).Error("Failed to finish event in repository")
		return fmt.Errorf("service: could not finish event: %w", err)
	}
	if !updated {
		// A concurrent resolve/cancel won the conditional update.
		return fmt.Errorf("service: event %s is no longer active: %w", id, models.ErrInvalidTransition)
	}

	if err := s.events.InvalidateEventCache(ctx, id); err != nil {
		log.WithError(err).Warn("Failed to invalidate event cache")
	}
	log.Info("SOS event finished successfully")
	return nil
}

// ActiveEventForOwner returns the owner's most recent active event, or nil
// when the owner has no active event.
func (s *sosService) ActiveEventForOwner(ctx context.Context, ownerID uuid.UUID) (*models.SOSEvent, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "sos",
		"method":   "ActiveEventForOwner",
		"owner_id": ownerID,
	})

	event, err := s.events.ActiveByOwner(ctx, ownerID)
	if err != nil {
		log.WithError(err).Error("Failed to get active event for owner")
		return nil, fmt.Errorf("service: could not get active event: %w", err)
	}
	return event, nil
}

// EventHistoryForOwner returns the owner's past events with pagination.
func (s *sosService) EventHistoryForOwner(ctx context.Context, ownerID uuid.UUID, page, pageSize int) ([]*models.SOSEvent, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	log := s.logger.WithFields(logrus.Fields{
		"service":   "sos",
		"method":    "EventHistoryForOwner",
		"owner_id":  ownerID,
		"page":      page,
		"page_size": pageSize,
	})
	log.Info("Listing event history")

	events, err := s.events.ListByOwner(ctx, ownerID, page, pageSize)
	if err != nil {
		log.WithError(err).Error("Failed to list events from repository")
		return nil, fmt.Errorf("service: could not list events: %w", err)
	}

	log.WithField("count", len(events)).Info("Event history listed successfully")
	return events, nil
}

// ListActiveEventsForVolunteer is the pull side of dispatch: all active events
// most-recent-first, minus the volunteer's own events and the events the
// volunteer has already responded to.
func (s *sosService) ListActiveEventsForVolunteer(ctx context.Context, volunteerID uuid.UUID) ([]*models.SOSEvent, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":      "sos",
		"method":       "ListActiveEventsForVolunteer",
		"volunteer_id": volunteerID,
	})

	active, err := s.events.ListActive(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to list active events from repository")
		return nil, fmt.Errorf("service: could not list active events: %w", err)
	}

	responded, err := s.responses.RespondedEventIDs(ctx, volunteerID)
	if err != nil {
		log.WithError(err).Error("Failed to list responded events from repository")
		return nil, fmt.Errorf("service: could not list responded events: %w", err)
	}

	visible := make([]*models.SOSEvent, 0, len(active))
	for _, event := range active {
		if event.UserID == volunteerID {
			continue
		}
		if _, ok := responded[event.ID]; ok {
			continue
		}
		visible = append(visible, event)
	}

	log.WithField("count", len(visible)).Info("Active events listed for volunteer")
	return visible, nil
}

// GetStats returns counts of active events, available volunteers and recent responses.
func (s *sosService) GetStats(ctx context.Context) (*models.Stats, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "sos",
		"method":  "GetStats",
	})

	activeEvents, err := s.events.CountActive(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to count active events")
		return nil, fmt.Errorf("service: could not count active events: %w", err)
	}

	availableVolunteers, err := s.volunteers.CountAvailable(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to count available volunteers")
		return nil, fmt.Errorf("service: could not count volunteers: %w", err)
	}

	responses, err := s.responses.CountSince(ctx, s.cfg.StatsTimeWindowMinutes)
	if err != nil {
		log.WithError(err).Error("Failed to count recent responses")
		return nil, fmt.Errorf("service: could not count responses: %w", err)
	}

	return &models.Stats{
		ActiveEvents:        activeEvents,
		AvailableVolunteers: availableVolunteers,
		ResponsesInWindow:   responses,
	}, nil
}
