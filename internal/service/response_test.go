package service

import (
	"bytes"
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/resqnet/sos_coordination_system/internal/config"
	"github.com/resqnet/sos_coordination_system/internal/models"
	"github.com/resqnet/sos_coordination_system/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestResponseService(t *testing.T) (*responseService, *mocks.MockEventRepository, *mocks.MockResponseRepository) {
	ctrl := gomock.NewController(t)
	eventsMock := mocks.NewMockEventRepository(ctrl)
	responsesMock := mocks.NewMockResponseRepository(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	cfg := &config.Config{
		StatsTimeWindowMinutes: 60,
	}

	service := NewResponseService(eventsMock, responsesMock, logger, cfg)
	return service.(*responseService), eventsMock, responsesMock
}

func TestRespond_Success(t *testing.T) {
	// Setup
	service, eventsMock, responsesMock := newTestResponseService(t)
	ctx := context.Background()
	eventID := uuid.New()
	response := &models.VolunteerResponse{
		SOSEventID:       eventID,
		VolunteerID:      uuid.New(),
		ResponseType:     models.ResponseAccepted,
		EstimatedArrival: "10 min",
	}

	// Expectations
	eventsMock.EXPECT().
		GetByID(ctx, eventID).
		Return(&models.SOSEvent{ID: eventID, Status: models.StatusActive}, nil).
		Times(1)
	responsesMock.EXPECT().Create(ctx, response).Return(nil).Times(1)

	// Action
	err := service.Respond(ctx, response)

	// Assertions
	require.NoError(t, err)
}

func TestRespond_DeclineThenAcceptBothKept(t *testing.T) {
	// Setup
	service, eventsMock, responsesMock := newTestResponseService(t)
	ctx := context.Background()
	eventID := uuid.New()
	volunteerID := uuid.New()

	// Expectations: the log is append-only, so the second decision is a second
	// insert rather than an update.
	eventsMock.EXPECT().
		GetByID(ctx, eventID).
		Return(&models.SOSEvent{ID: eventID, Status: models.StatusActive}, nil).
		Times(2)
	responsesMock.EXPECT().Create(ctx, gomock.Any()).Return(nil).Times(2)

	// Action
	declined := &models.VolunteerResponse{
		SOSEventID:   eventID,
		VolunteerID:  volunteerID,
		ResponseType: models.ResponseDeclined,
	}
	accepted := &models.VolunteerResponse{
		SOSEventID:   eventID,
		VolunteerID:  volunteerID,
		ResponseType: models.ResponseAccepted,
	}

	// Assertions
	require.NoError(t, service.Respond(ctx, declined))
	require.NoError(t, service.Respond(ctx, accepted))
}

func TestRespond_FinishedEvent(t *testing.T) {
	// Setup
	service, eventsMock, _ := newTestResponseService(t)
	ctx := context.Background()
	eventID := uuid.New()
	response := &models.VolunteerResponse{
		SOSEventID:   eventID,
		VolunteerID:  uuid.New(),
		ResponseType: models.ResponseAccepted,
	}

	// Expectations
	eventsMock.EXPECT().
		GetByID(ctx, eventID).
		Return(&models.SOSEvent{ID: eventID, Status: models.StatusResolved}, nil).
		Times(1)

	// Action
	err := service.Respond(ctx, response)

	// Assertions
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrInvalidTransition)
}

func TestRespond_UnknownEvent(t *testing.T) {
	// Setup
	service, eventsMock, _ := newTestResponseService(t)
	ctx := context.Background()
	eventID := uuid.New()
	response := &models.VolunteerResponse{
		SOSEventID:   eventID,
		VolunteerID:  uuid.New(),
		ResponseType: models.ResponseDeclined,
	}

	// Expectations
	eventsMock.EXPECT().
		GetByID(ctx, eventID).
		Return(nil, fmt.Errorf("repo: %w", models.ErrNotFound)).
		Times(1)

	// Action
	err := service.Respond(ctx, response)

	// Assertions
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestRespond_InvalidType(t *testing.T) {
	// Setup
	service, _, _ := newTestResponseService(t)
	ctx := context.Background()
	response := &models.VolunteerResponse{
		SOSEventID:   uuid.New(),
		VolunteerID:  uuid.New(),
		ResponseType: models.ResponseType("maybe"),
	}

	// Action
	err := service.Respond(ctx, response)

	// Assertions
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrValidation)
}

func TestListAcceptedResponses_LastWriteWins(t *testing.T) {
	// Setup
	service, eventsMock, responsesMock := newTestResponseService(t)
	ctx := context.Background()
	eventID := uuid.New()
	repeatVolunteer := uuid.New()
	otherVolunteer := uuid.New()
	now := time.Now()

	latest := &models.VolunteerResponse{
		ID:               uuid.New(),
		SOSEventID:       eventID,
		VolunteerID:      repeatVolunteer,
		ResponseType:     models.ResponseAccepted,
		EstimatedArrival: "5 min",
		CreatedAt:        now,
	}
	other := &models.VolunteerResponse{
		ID:           uuid.New(),
		SOSEventID:   eventID,
		VolunteerID:  otherVolunteer,
		ResponseType: models.ResponseAccepted,
		CreatedAt:    now.Add(-time.Minute),
	}
	stale := &models.VolunteerResponse{
		ID:               uuid.New(),
		SOSEventID:       eventID,
		VolunteerID:      repeatVolunteer,
		ResponseType:     models.ResponseAccepted,
		EstimatedArrival: "20 min",
		CreatedAt:        now.Add(-2 * time.Minute),
	}

	// Expectations: the repository returns rows most recent first.
	eventsMock.EXPECT().
		GetByID(ctx, eventID).
		Return(&models.SOSEvent{ID: eventID, Status: models.StatusActive}, nil).
		Times(1)
	responsesMock.EXPECT().
		ListAccepted(ctx, eventID).
		Return([]*models.VolunteerResponse{latest, other, stale}, nil).
		Times(1)

	// Action
	live, err := service.ListAcceptedResponses(ctx, eventID)

	// Assertions: one entry per volunteer, newest entry wins, order preserved.
	require.NoError(t, err)
	require.Len(t, live, 2)
	assert.Equal(t, latest.ID, live[0].ID)
	assert.Equal(t, "5 min", live[0].EstimatedArrival)
	assert.Equal(t, other.ID, live[1].ID)
}

func TestListAcceptedResponses_UnknownEvent(t *testing.T) {
	// Setup
	service, eventsMock, _ := newTestResponseService(t)
	ctx := context.Background()
	eventID := uuid.New()

	// Expectations
	eventsMock.EXPECT().
		GetByID(ctx, eventID).
		Return(nil, fmt.Errorf("repo: %w", models.ErrNotFound)).
		Times(1)

	// Action
	live, err := service.ListAcceptedResponses(ctx, eventID)

	// Assertions
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrNotFound)
	assert.Nil(t, live)
}

func TestListAcceptedResponses_Empty(t *testing.T) {
	// Setup
	service, eventsMock, responsesMock := newTestResponseService(t)
	ctx := context.Background()
	eventID := uuid.New()

	// Expectations
	eventsMock.EXPECT().
		GetByID(ctx, eventID).
		Return(&models.SOSEvent{ID: eventID, Status: models.StatusActive}, nil).
		Times(1)
	responsesMock.EXPECT().
		ListAccepted(ctx, eventID).
		Return(nil, nil).
		Times(1)

	// Action
	live, err := service.ListAcceptedResponses(ctx, eventID)

	// Assertions
	require.NoError(t, err)
	assert.Empty(t, live)
}
