package dispatch

import (
	"context"
	"fmt"

	"github.com/resqnet/sos_coordination_system/internal/geo"
	"github.com/resqnet/sos_coordination_system/internal/models"
	"github.com/sirupsen/logrus"
)

// VolunteerSource enumerates currently available volunteers.
type VolunteerSource interface {
	ListAvailable(ctx context.Context) ([]*models.Volunteer, error)
}

// Router determines which volunteers are eligible for a new SOS event and
// enqueues one alert per eligible volunteer. Delivery is fire-and-forget: a
// publish failure for one volunteer never affects the others.
type Router struct {
	volunteers VolunteerSource
	publisher  AlertPublisher
	logger     *logrus.Logger
}

// NewRouter creates a new dispatch Router.
func NewRouter(volunteers VolunteerSource, publisher AlertPublisher, logger *logrus.Logger) *Router {
	return &Router{
		volunteers: volunteers,
		publisher:  publisher,
		logger:     logger,
	}
}

// DispatchEvent enqueues alerts for all eligible volunteers. The returned
// error covers only the volunteer enumeration; per-volunteer publish failures
// are logged and swallowed.
func (r *Router) DispatchEvent(ctx context.Context, event *models.SOSEvent) error {
	log := r.logger.WithFields(logrus.Fields{
		"component": "dispatch",
		"event_id":  event.ID,
		"category":  event.Category,
	})

	volunteers, err := r.volunteers.ListAvailable(ctx)
	if err != nil {
		return fmt.Errorf("dispatch: could not list available volunteers: %w", err)
	}

	dispatched := 0
	for _, volunteer := range volunteers {
		// The owner never receives an alert for their own emergency.
		if volunteer.UserID == event.UserID {
			continue
		}
		alert, eligible := buildAlert(volunteer, event)
		if !eligible {
			continue
		}
		if err := r.publisher.Publish(ctx, alert); err != nil {
			log.WithError(err).WithField("volunteer_id", volunteer.UserID).Error("Failed to publish volunteer alert")
			continue
		}
		dispatched++
	}

	log.WithFields(logrus.Fields{
		"available":  len(volunteers),
		"dispatched": dispatched,
	}).Info("SOS event dispatched to volunteers")
	return nil
}

// buildAlert applies the distance filter and renders the alert. A volunteer
// with an unknown position is always included: under-notifying is the worse
// failure in an emergency system, so only a known position beyond the
// volunteer's range excludes them.
func buildAlert(volunteer *models.Volunteer, event *models.SOSEvent) (Alert, bool) {
	distanceHint := "distance unknown"
	if volunteer.HasLocation() {
		distance := geo.Distance(*volunteer.Latitude, *volunteer.Longitude, event.Latitude, event.Longitude)
		if distance > float64(volunteer.MaxRangeMeters) {
			return Alert{}, false
		}
		distanceHint = geo.FormatDistance(distance)
	}

	locationHint := event.Address
	if locationHint == "" {
		locationHint = fmt.Sprintf("%.4f, %.4f", event.Latitude, event.Longitude)
	}

	return Alert{
		VolunteerID:  volunteer.UserID,
		EventID:      event.ID,
		Category:     event.Category,
		DistanceHint: distanceHint,
		LocationHint: locationHint,
		CreatedAt:    event.CreatedAt,
	}, true
}
