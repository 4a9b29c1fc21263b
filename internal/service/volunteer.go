package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/resqnet/sos_coordination_system/internal/models"
	"github.com/sirupsen/logrus"
)

// VolunteerRepository defines the contract for volunteer registry persistence.
type VolunteerRepository interface {
	// Upsert creates a volunteer record or reactivates/updates an existing one
	// for the same user. Registration is idempotent.
	Upsert(ctx context.Context, volunteer *models.Volunteer) error
	Deactivate(ctx context.Context, userID uuid.UUID) (bool, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) (*models.Volunteer, error)
	ListAvailable(ctx context.Context) ([]*models.Volunteer, error)
	UpdateLocation(ctx context.Context, userID uuid.UUID, lat, lon float64) (bool, error)
	CountAvailable(ctx context.Context) (int, error)
}

// VolunteerService defines the contract for the volunteer registry.
type VolunteerService interface {
	Register(ctx context.Context, userID uuid.UUID, maxRangeMeters int, lat, lon *float64) (*models.Volunteer, error)
	Unregister(ctx context.Context, userID uuid.UUID) error
	GetVolunteer(ctx context.Context, userID uuid.UUID) (*models.Volunteer, error)
	IsVolunteer(ctx context.Context, userID uuid.UUID) (bool, error)
	UpdateLocation(ctx context.Context, userID uuid.UUID, lat, lon float64) error
}

type volunteerService struct {
	volunteers VolunteerRepository
	logger     *logrus.Logger
}

func NewVolunteerService(volunteers VolunteerRepository, logger *logrus.Logger) VolunteerService {
	return &volunteerService{
		volunteers: volunteers,
		logger:     logger,
	}
}

// Register opts a user in as an available volunteer. Registering an already
// registered user updates the range and position instead of duplicating.
func (s *volunteerService) Register(ctx context.Context, userID uuid.UUID, maxRangeMeters int, lat, lon *float64) (*models.Volunteer, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "volunteer",
		"method":  "Register",
		"user_id": userID,
	})
	log.Info("Attempting to register volunteer")

	if userID == uuid.Nil {
		return nil, fmt.Errorf("service: user id is required: %w", models.ErrValidation)
	}
	if maxRangeMeters <= 0 {
		return nil, fmt.Errorf("service: max range must be positive: %w", models.ErrValidation)
	}
	if (lat == nil) != (lon == nil) {
		return nil, fmt.Errorf("service: latitude and longitude must be given together: %w", models.ErrValidation)
	}

	volunteer := &models.Volunteer{
		UserID:         userID,
		IsAvailable:    true,
		MaxRangeMeters: maxRangeMeters,
		Latitude:       lat,
		Longitude:      lon,
	}
	if err := s.volunteers.Upsert(ctx, volunteer); err != nil {
		log.WithError(err).Error("Failed to upsert volunteer in repository")
		return nil, fmt.Errorf("service: could not register volunteer: %w", err)
	}

	log.WithField("volunteer_id", volunteer.ID).Info("Volunteer registered successfully")
	return volunteer, nil
}

// Unregister opts a user out by clearing the availability flag.
func (s *volunteerService) Unregister(ctx context.Context, userID uuid.UUID) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "volunteer",
		"method":  "Unregister",
		"user_id": userID,
	})
	log.Info("Attempting to unregister volunteer")

	deactivated, err := s.volunteers.Deactivate(ctx, userID)
	if err != nil {
		log.WithError(err).Error("Failed to deactivate volunteer in repository")
		return fmt.Errorf("service: could not unregister volunteer: %w", err)
	}
	if !deactivated {
		log.Warn("Attempted to unregister an unknown volunteer")
		return fmt.Errorf("service: volunteer %s not registered: %w", userID, models.ErrNotFound)
	}

	log.Info("Volunteer unregistered successfully")
	return nil
}

// GetVolunteer returns the registration record for the user.
func (s *volunteerService) GetVolunteer(ctx context.Context, userID uuid.UUID) (*models.Volunteer, error) {
	volunteer, err := s.volunteers.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("service: could not get volunteer: %w", err)
	}
	return volunteer, nil
}

// IsVolunteer reports whether the user is currently registered and available.
func (s *volunteerService) IsVolunteer(ctx context.Context, userID uuid.UUID) (bool, error) {
	volunteer, err := s.volunteers.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("service: could not check volunteer: %w", err)
	}
	return volunteer.IsAvailable, nil
}

// UpdateLocation records the volunteer's last known position so dispatch can
// filter by distance.
func (s *volunteerService) UpdateLocation(ctx context.Context, userID uuid.UUID, lat, lon float64) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "volunteer",
		"method":  "UpdateLocation",
		"user_id": userID,
	})

	updated, err := s.volunteers.UpdateLocation(ctx, userID, lat, lon)
	if err != nil {
		log.WithError(err).Error("Failed to update volunteer location in repository")
		return fmt.Errorf("service: could not update location: %w", err)
	}
	if !updated {
		return fmt.Errorf("service: volunteer %s not registered: %w", userID, models.ErrNotFound)
	}

	log.Debug("Volunteer location updated")
	return nil
}
