package dispatch_test

import (
	"bytes"
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/resqnet/sos_coordination_system/internal/dispatch"
	"github.com/resqnet/sos_coordination_system/internal/dispatch/mocks"
	"github.com/resqnet/sos_coordination_system/internal/models"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestRouter(t *testing.T) (*dispatch.Router, *mocks.MockVolunteerSource, *mocks.MockAlertPublisher) {
	ctrl := gomock.NewController(t)
	sourceMock := mocks.NewMockVolunteerSource(ctrl)
	publisherMock := mocks.NewMockAlertPublisher(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	return dispatch.NewRouter(sourceMock, publisherMock, logger), sourceMock, publisherMock
}

func ptr(v float64) *float64 { return &v }

func TestDispatchEvent_InRangeVolunteerAlerted(t *testing.T) {
	// Setup: the event and the volunteer are about 550 m apart.
	router, sourceMock, publisherMock := newTestRouter(t)
	ctx := context.Background()
	event := &models.SOSEvent{
		ID:        uuid.New(),
		UserID:    uuid.New(),
		Category:  models.CategoryFire,
		Latitude:  55.7558,
		Longitude: 37.6173,
		Address:   "Red Square, 1",
	}
	volunteer := &models.Volunteer{
		UserID:         uuid.New(),
		IsAvailable:    true,
		MaxRangeMeters: 2000,
		Latitude:       ptr(55.7608),
		Longitude:      ptr(37.6173),
	}

	// Expectations
	sourceMock.EXPECT().
		ListAvailable(ctx).
		Return([]*models.Volunteer{volunteer}, nil).
		Times(1)
	publisherMock.EXPECT().
		Publish(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, alert dispatch.Alert) error {
			assert.Equal(t, volunteer.UserID, alert.VolunteerID)
			assert.Equal(t, event.ID, alert.EventID)
			assert.Equal(t, models.CategoryFire, alert.Category)
			assert.Equal(t, "Red Square, 1", alert.LocationHint)
			assert.Contains(t, alert.DistanceHint, "away")
			return nil
		}).
		Times(1)

	// Action
	err := router.DispatchEvent(ctx, event)

	// Assertions
	require.NoError(t, err)
}

func TestDispatchEvent_OutOfRangeVolunteerSkipped(t *testing.T) {
	// Setup: roughly 5.5 km apart with a 1 km range.
	router, sourceMock, _ := newTestRouter(t)
	ctx := context.Background()
	event := &models.SOSEvent{
		ID:        uuid.New(),
		UserID:    uuid.New(),
		Category:  models.CategoryHealth,
		Latitude:  55.7558,
		Longitude: 37.6173,
	}
	volunteer := &models.Volunteer{
		UserID:         uuid.New(),
		IsAvailable:    true,
		MaxRangeMeters: 1000,
		Latitude:       ptr(55.8058),
		Longitude:      ptr(37.6173),
	}

	// Expectations: no Publish call is expected.
	sourceMock.EXPECT().
		ListAvailable(ctx).
		Return([]*models.Volunteer{volunteer}, nil).
		Times(1)

	// Action
	err := router.DispatchEvent(ctx, event)

	// Assertions
	require.NoError(t, err)
}

func TestDispatchEvent_UnknownPositionIncluded(t *testing.T) {
	// Setup: a volunteer who never reported a position still gets the alert.
	router, sourceMock, publisherMock := newTestRouter(t)
	ctx := context.Background()
	event := &models.SOSEvent{
		ID:        uuid.New(),
		UserID:    uuid.New(),
		Category:  models.CategoryThreat,
		Latitude:  55.7558,
		Longitude: 37.6173,
	}
	volunteer := &models.Volunteer{
		UserID:         uuid.New(),
		IsAvailable:    true,
		MaxRangeMeters: 500,
	}

	// Expectations
	sourceMock.EXPECT().
		ListAvailable(ctx).
		Return([]*models.Volunteer{volunteer}, nil).
		Times(1)
	publisherMock.EXPECT().
		Publish(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, alert dispatch.Alert) error {
			assert.Equal(t, "distance unknown", alert.DistanceHint)
			// No address on the event, fall back to coordinates.
			assert.Equal(t, "55.7558, 37.6173", alert.LocationHint)
			return nil
		}).
		Times(1)

	// Action
	err := router.DispatchEvent(ctx, event)

	// Assertions
	require.NoError(t, err)
}

func TestDispatchEvent_OwnerNeverAlerted(t *testing.T) {
	// Setup: the caller is also a registered volunteer standing right there.
	router, sourceMock, _ := newTestRouter(t)
	ctx := context.Background()
	ownerID := uuid.New()
	event := &models.SOSEvent{
		ID:        uuid.New(),
		UserID:    ownerID,
		Category:  models.CategoryOther,
		Latitude:  55.7558,
		Longitude: 37.6173,
	}
	volunteer := &models.Volunteer{
		UserID:         ownerID,
		IsAvailable:    true,
		MaxRangeMeters: 10000,
		Latitude:       ptr(55.7558),
		Longitude:      ptr(37.6173),
	}

	// Expectations: no Publish call is expected.
	sourceMock.EXPECT().
		ListAvailable(ctx).
		Return([]*models.Volunteer{volunteer}, nil).
		Times(1)

	// Action
	err := router.DispatchEvent(ctx, event)

	// Assertions
	require.NoError(t, err)
}

func TestDispatchEvent_PublishFailureDoesNotStopOthers(t *testing.T) {
	// Setup: two eligible volunteers, the first publish fails.
	router, sourceMock, publisherMock := newTestRouter(t)
	ctx := context.Background()
	event := &models.SOSEvent{
		ID:        uuid.New(),
		UserID:    uuid.New(),
		Category:  models.CategoryFire,
		Latitude:  55.7558,
		Longitude: 37.6173,
	}
	first := &models.Volunteer{UserID: uuid.New(), IsAvailable: true, MaxRangeMeters: 5000}
	second := &models.Volunteer{UserID: uuid.New(), IsAvailable: true, MaxRangeMeters: 5000}

	// Expectations
	sourceMock.EXPECT().
		ListAvailable(ctx).
		Return([]*models.Volunteer{first, second}, nil).
		Times(1)
	gomock.InOrder(
		publisherMock.EXPECT().Publish(ctx, gomock.Any()).Return(fmt.Errorf("queue down")).Times(1),
		publisherMock.EXPECT().Publish(ctx, gomock.Any()).Return(nil).Times(1),
	)

	// Action
	err := router.DispatchEvent(ctx, event)

	// Assertions
	require.NoError(t, err)
}

func TestDispatchEvent_SourceError(t *testing.T) {
	// Setup
	router, sourceMock, _ := newTestRouter(t)
	ctx := context.Background()
	event := &models.SOSEvent{ID: uuid.New(), UserID: uuid.New(), Category: models.CategoryHealth}

	// Expectations
	sourceMock.EXPECT().
		ListAvailable(ctx).
		Return(nil, fmt.Errorf("connection refused")).
		Times(1)

	// Action
	err := router.DispatchEvent(ctx, event)

	// Assertions
	require.Error(t, err)
}
