package v1

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/resqnet/sos_coordination_system/internal/config"
	"github.com/resqnet/sos_coordination_system/internal/models"
	"github.com/resqnet/sos_coordination_system/internal/service"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	sosService       service.SOSService
	volunteerService service.VolunteerService
	responseService  service.ResponseService
	logger           *logrus.Logger
	validate         *validator.Validate
	cfg              *config.Config
}

func NewHandler(sosService service.SOSService, volunteerService service.VolunteerService, responseService service.ResponseService, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		sosService:       sosService,
		volunteerService: volunteerService,
		responseService:  responseService,
		logger:           logger,
		validate:         validator.New(),
		cfg:              cfg,
	}
}

// serviceError maps the error taxonomy onto HTTP statuses.
func serviceError(c *gin.Context, log *logrus.Entry, err error) {
	log.WithError(err).Warn("Service call failed")
	switch {
	case errors.Is(err, models.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, models.ErrNotAuthorized):
		c.JSON(http.StatusForbidden, gin.H{"error": "actor is not allowed to perform this action"})
	case errors.Is(err, models.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, models.ErrInvalidTransition):
		c.JSON(http.StatusConflict, gin.H{"error": "event is no longer active"})
	case errors.Is(err, models.ErrStoreUnavailable):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "store unavailable"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// @Summary Report a new SOS event
// @Description Create an active SOS event and dispatch alerts to eligible volunteers. Requires API key.
// @Tags Events
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param event body CreateEventRequest true "SOS event creation request"
// @Success 201 {object} EventResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /events [post]
func (h *Handler) createEvent(c *gin.Context) {
	var input CreateEventRequest
	log := h.logger.WithField("method", "createEvent")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ownerID, err := uuid.Parse(input.UserID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user ID"})
		return
	}

	event := &models.SOSEvent{
		UserID:      ownerID,
		Category:    models.EventCategory(input.Category),
		Latitude:    input.Latitude,
		Longitude:   input.Longitude,
		Address:     input.Address,
		Description: input.Description,
	}
	if err := h.sosService.CreateEvent(c.Request.Context(), event); err != nil {
		serviceError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, ModelToEventResponse(event))
}

// @Summary List active events for a volunteer
// @Description List all active SOS events visible to the volunteer, most recent first. Events the volunteer has responded to are hidden. Requires API key.
// @Tags Events
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param volunteer_id query string true "Volunteer user ID"
// @Success 200 {array} EventResponse
// @Failure 400 {object} map[string]string "Invalid volunteer ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /events [get]
func (h *Handler) listActiveEvents(c *gin.Context) {
	log := h.logger.WithField("method", "listActiveEvents")

	volunteerID, err := uuid.Parse(c.Query("volunteer_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid volunteer ID"})
		return
	}

	events, err := h.sosService.ListActiveEventsForVolunteer(c.Request.Context(), volunteerID)
	if err != nil {
		serviceError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelsToEventResponses(events))
}

// @Summary Get the owner's current active event
// @Description Get the caller's most recent active SOS event, if any. Requires API key.
// @Tags Events
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param user_id query string true "Owner user ID"
// @Success 200 {object} EventResponse
// @Success 204 "No active event"
// @Failure 400 {object} map[string]string "Invalid user ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /events/active [get]
func (h *Handler) activeEventForOwner(c *gin.Context) {
	log := h.logger.WithField("method", "activeEventForOwner")

	ownerID, err := uuid.Parse(c.Query("user_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user ID"})
		return
	}

	event, err := h.sosService.ActiveEventForOwner(c.Request.Context(), ownerID)
	if err != nil {
		serviceError(c, log, err)
		return
	}
	if event == nil {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, ModelToEventResponse(event))
}

// @Summary List the owner's event history
// @Description Get a paginated list of the owner's past SOS events. Requires API key.
// @Tags Events
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param user_id query string true "Owner user ID"
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Number of items per page" default(20)
// @Success 200 {array} EventResponse
// @Failure 400 {object} map[string]string "Invalid user ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /events/history [get]
func (h *Handler) eventHistory(c *gin.Context) {
	log := h.logger.WithField("method", "eventHistory")

	ownerID, err := uuid.Parse(c.Query("user_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user ID"})
		return
	}
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "20"))

	events, err := h.sosService.EventHistoryForOwner(c.Request.Context(), ownerID, page, pageSize)
	if err != nil {
		serviceError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelsToEventResponses(events))
}

// @Summary Get event by ID
// @Description Get a single SOS event by its ID. Requires API key.
// @Tags Events
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Event ID"
// @Success 200 {object} EventResponse
// @Failure 400 {object} map[string]string "Invalid event ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Event not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /events/{id} [get]
func (h *Handler) getEvent(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid event ID"})
		return
	}
	log := h.logger.WithField("method", "getEvent").WithField("id", id)

	event, err := h.sosService.GetEvent(c.Request.Context(), id)
	if err != nil {
		serviceError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToEventResponse(event))
}

// @Summary Resolve an SOS event
// @Description Mark an active SOS event as resolved. Only the owner may resolve. Requires API key.
// @Tags Events
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Event ID"
// @Param actor body FinishEventRequest true "Acting user"
// @Success 200 "OK"
// @Failure 400 {object} map[string]string "Invalid event ID or request body"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Actor is not the owner"
// @Failure 404 {object} map[string]string "Event not found"
// @Failure 409 {object} map[string]string "Event is no longer active"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /events/{id}/resolve [post]
func (h *Handler) resolveEvent(c *gin.Context) {
	h.finishEvent(c, "resolveEvent", h.sosService.ResolveEvent)
}

// @Summary Cancel an SOS event
// @Description Mark an active SOS event as cancelled. Only the owner may cancel. Requires API key.
// @Tags Events
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Event ID"
// @Param actor body FinishEventRequest true "Acting user"
// @Success 200 "OK"
// @Failure 400 {object} map[string]string "Invalid event ID or request body"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Actor is not the owner"
// @Failure 404 {object} map[string]string "Event not found"
// @Failure 409 {object} map[string]string "Event is no longer active"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /events/{id}/cancel [post]
func (h *Handler) cancelEvent(c *gin.Context) {
	h.finishEvent(c, "cancelEvent", h.sosService.CancelEvent)
}

func (h *Handler) finishEvent(c *gin.Context, method string, finish func(ctx context.Context, id, actorID uuid.UUID) error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid event ID"})
		return
	}
	log := h.logger.WithField("method", method).WithField("id", id)

	var input FinishEventRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	actorID, err := uuid.Parse(input.UserID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user ID"})
		return
	}

	if err := finish(c.Request.Context(), id, actorID); err != nil {
		serviceError(c, log, err)
		return
	}
	c.Status(http.StatusOK)
}

// @Summary Respond to an SOS event
// @Description Record a volunteer's accept/decline decision on an active event. Requires API key.
// @Tags Responses
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Event ID"
// @Param response body RespondRequest true "Volunteer response"
// @Success 201 {object} ResponseEntry
// @Failure 400 {object} map[string]string "Invalid event ID or request body"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Event not found"
// @Failure 409 {object} map[string]string "Event is no longer active"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /events/{id}/responses [post]
func (h *Handler) respond(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid event ID"})
		return
	}
	log := h.logger.WithField("method", "respond").WithField("id", id)

	var input RespondRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	volunteerID, err := uuid.Parse(input.VolunteerID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid volunteer ID"})
		return
	}

	response := &models.VolunteerResponse{
		SOSEventID:       id,
		VolunteerID:      volunteerID,
		ResponseType:     models.ResponseType(input.ResponseType),
		EstimatedArrival: input.EstimatedArrival,
		Message:          input.Message,
	}
	if err := h.responseService.Respond(c.Request.Context(), response); err != nil {
		serviceError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, ModelToResponseEntry(response))
}

// @Summary List accepted responses for an event
// @Description Get the owner-facing live responder list: accepted responses only, one entry per volunteer. Requires API key.
// @Tags Responses
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Event ID"
// @Success 200 {object} AcceptedResponsesResponse
// @Failure 400 {object} map[string]string "Invalid event ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Event not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /events/{id}/responses [get]
func (h *Handler) listAcceptedResponses(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid event ID"})
		return
	}
	log := h.logger.WithField("method", "listAcceptedResponses").WithField("id", id)

	responses, err := h.responseService.ListAcceptedResponses(c.Request.Context(), id)
	if err != nil {
		serviceError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, AcceptedResponsesResponse{
		Responses:           ModelsToResponseEntries(responses),
		PollIntervalSeconds: int(h.cfg.ResponsePollInterval.Seconds()),
	})
}

// @Summary Register as a volunteer
// @Description Opt in as an available volunteer. Registration is idempotent; registering again updates range and position. Returns the current active events. Requires API key.
// @Tags Volunteers
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param volunteer body RegisterVolunteerRequest true "Volunteer registration request"
// @Success 200 {object} RegisterVolunteerResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /volunteers [post]
func (h *Handler) registerVolunteer(c *gin.Context) {
	var input RegisterVolunteerRequest
	log := h.logger.WithField("method", "registerVolunteer")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, err := uuid.Parse(input.UserID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user ID"})
		return
	}

	volunteer, err := h.volunteerService.Register(c.Request.Context(), userID, input.MaxRangeMeters, input.Latitude, input.Longitude)
	if err != nil {
		serviceError(c, log, err)
		return
	}

	// A fresh volunteer gets the current active-event list right away rather
	// than waiting for the next poll.
	events, err := h.sosService.ListActiveEventsForVolunteer(c.Request.Context(), userID)
	if err != nil {
		log.WithError(err).Warn("Failed to list active events for new volunteer")
		events = nil
	}

	c.JSON(http.StatusOK, RegisterVolunteerResponse{
		Volunteer:    ModelToVolunteerResponse(volunteer),
		ActiveEvents: ModelsToEventResponses(events),
	})
}

// @Summary Get volunteer registration
// @Description Get the volunteer registration record for a user. Requires API key.
// @Tags Volunteers
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param user_id path string true "User ID"
// @Success 200 {object} VolunteerResponse
// @Failure 400 {object} map[string]string "Invalid user ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Volunteer not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /volunteers/{user_id} [get]
func (h *Handler) getVolunteer(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("user_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user ID"})
		return
	}
	log := h.logger.WithField("method", "getVolunteer").WithField("user_id", userID)

	volunteer, err := h.volunteerService.GetVolunteer(c.Request.Context(), userID)
	if err != nil {
		serviceError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToVolunteerResponse(volunteer))
}

// @Summary Unregister as a volunteer
// @Description Opt out of volunteering. The registration record is deactivated. Requires API key.
// @Tags Volunteers
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param user_id path string true "User ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid user ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Volunteer not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /volunteers/{user_id} [delete]
func (h *Handler) unregisterVolunteer(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("user_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user ID"})
		return
	}
	log := h.logger.WithField("method", "unregisterVolunteer").WithField("user_id", userID)

	if err := h.volunteerService.Unregister(c.Request.Context(), userID); err != nil {
		serviceError(c, log, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Update volunteer location
// @Description Report the volunteer's last known position for distance-based dispatch. Requires API key.
// @Tags Volunteers
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param user_id path string true "User ID"
// @Param location body UpdateLocationRequest true "Volunteer position"
// @Success 200 "OK"
// @Failure 400 {object} map[string]string "Invalid user ID or request body"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Volunteer not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /volunteers/{user_id}/location [put]
func (h *Handler) updateVolunteerLocation(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("user_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user ID"})
		return
	}
	log := h.logger.WithField("method", "updateVolunteerLocation").WithField("user_id", userID)

	var input UpdateLocationRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.volunteerService.UpdateLocation(c.Request.Context(), userID, input.Latitude, input.Longitude); err != nil {
		serviceError(c, log, err)
		return
	}
	c.Status(http.StatusOK)
}

// @Summary Get system statistics
// @Description Get counts of active events, available volunteers and recent responses. Requires API key.
// @Tags System
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} StatsResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /system/stats [get]
func (h *Handler) getStats(c *gin.Context) {
	log := h.logger.WithField("method", "getStats")

	stats, err := h.sosService.GetStats(c.Request.Context())
	if err != nil {
		serviceError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, StatsResponse{
		ActiveEvents:        stats.ActiveEvents,
		AvailableVolunteers: stats.AvailableVolunteers,
		ResponsesInWindow:   stats.ResponsesInWindow,
	})
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
