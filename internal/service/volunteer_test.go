package service

import (
	"bytes"
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/resqnet/sos_coordination_system/internal/models"
	"github.com/resqnet/sos_coordination_system/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestVolunteerService(t *testing.T) (*volunteerService, *mocks.MockVolunteerRepository) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockVolunteerRepository(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	service := NewVolunteerService(repoMock, logger)
	return service.(*volunteerService), repoMock
}

func ptr(v float64) *float64 { return &v }

func TestRegister_Success(t *testing.T) {
	// Setup
	service, repoMock := newTestVolunteerService(t)
	ctx := context.Background()
	userID := uuid.New()

	// Expectations
	repoMock.EXPECT().
		Upsert(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, v *models.Volunteer) error {
			v.ID = uuid.New()
			return nil
		}).
		Times(1)

	// Action
	volunteer, err := service.Register(ctx, userID, 2000, ptr(55.75), ptr(37.62))

	// Assertions
	require.NoError(t, err)
	assert.Equal(t, userID, volunteer.UserID)
	assert.True(t, volunteer.IsAvailable)
	assert.Equal(t, 2000, volunteer.MaxRangeMeters)
	require.NotNil(t, volunteer.Latitude)
	assert.InDelta(t, 55.75, *volunteer.Latitude, 1e-9)
}

func TestRegister_WithoutLocation(t *testing.T) {
	// Setup
	service, repoMock := newTestVolunteerService(t)
	ctx := context.Background()

	// Expectations: position is optional at registration.
	repoMock.EXPECT().Upsert(ctx, gomock.Any()).Return(nil).Times(1)

	// Action
	volunteer, err := service.Register(ctx, uuid.New(), 1000, nil, nil)

	// Assertions
	require.NoError(t, err)
	assert.False(t, volunteer.HasLocation())
}

func TestRegister_InvalidRange(t *testing.T) {
	// Setup
	service, _ := newTestVolunteerService(t)
	ctx := context.Background()

	// Action
	_, err := service.Register(ctx, uuid.New(), 0, nil, nil)

	// Assertions
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrValidation)
}

func TestRegister_HalfCoordinate(t *testing.T) {
	// Setup
	service, _ := newTestVolunteerService(t)
	ctx := context.Background()

	// Action: latitude without longitude.
	_, err := service.Register(ctx, uuid.New(), 1000, ptr(55.75), nil)

	// Assertions
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrValidation)
}

func TestUnregister_Success(t *testing.T) {
	// Setup
	service, repoMock := newTestVolunteerService(t)
	ctx := context.Background()
	userID := uuid.New()

	// Expectations
	repoMock.EXPECT().Deactivate(ctx, userID).Return(true, nil).Times(1)

	// Action
	err := service.Unregister(ctx, userID)

	// Assertions
	require.NoError(t, err)
}

func TestUnregister_NotRegistered(t *testing.T) {
	// Setup
	service, repoMock := newTestVolunteerService(t)
	ctx := context.Background()
	userID := uuid.New()

	// Expectations
	repoMock.EXPECT().Deactivate(ctx, userID).Return(false, nil).Times(1)

	// Action
	err := service.Unregister(ctx, userID)

	// Assertions
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestIsVolunteer_Registered(t *testing.T) {
	// Setup
	service, repoMock := newTestVolunteerService(t)
	ctx := context.Background()
	userID := uuid.New()

	// Expectations
	repoMock.EXPECT().
		GetByUserID(ctx, userID).
		Return(&models.Volunteer{UserID: userID, IsAvailable: true}, nil).
		Times(1)

	// Action
	ok, err := service.IsVolunteer(ctx, userID)

	// Assertions
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestIsVolunteer_Unknown(t *testing.T) {
	// Setup
	service, repoMock := newTestVolunteerService(t)
	ctx := context.Background()
	userID := uuid.New()

	// Expectations
	repoMock.EXPECT().
		GetByUserID(ctx, userID).
		Return(nil, fmt.Errorf("repo: %w", models.ErrNotFound)).
		Times(1)

	// Action
	ok, err := service.IsVolunteer(ctx, userID)

	// Assertions: an unknown user is simply not a volunteer, not an error.
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestIsVolunteer_OptedOut(t *testing.T) {
	// Setup
	service, repoMock := newTestVolunteerService(t)
	ctx := context.Background()
	userID := uuid.New()

	// Expectations
	repoMock.EXPECT().
		GetByUserID(ctx, userID).
		Return(&models.Volunteer{UserID: userID, IsAvailable: false}, nil).
		Times(1)

	// Action
	ok, err := service.IsVolunteer(ctx, userID)

	// Assertions
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestUpdateLocation_Success(t *testing.T) {
	// Setup
	service, repoMock := newTestVolunteerService(t)
	ctx := context.Background()
	userID := uuid.New()

	// Expectations
	repoMock.EXPECT().UpdateLocation(ctx, userID, 59.93, 30.31).Return(true, nil).Times(1)

	// Action
	err := service.UpdateLocation(ctx, userID, 59.93, 30.31)

	// Assertions
	require.NoError(t, err)
}

func TestUpdateLocation_RepoError(t *testing.T) {
	// Setup
	service, repoMock := newTestVolunteerService(t)
	ctx := context.Background()
	userID := uuid.New()

	// Expectations
	repoMock.EXPECT().
		UpdateLocation(ctx, userID, 59.93, 30.31).
		Return(false, fmt.Errorf("connection reset")).
		Times(1)

	// Action
	err := service.UpdateLocation(ctx, userID, 59.93, 30.31)

	// Assertions
	require.Error(t, err)
}
