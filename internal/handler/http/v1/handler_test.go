package v1

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/resqnet/sos_coordination_system/internal/config"
	"github.com/resqnet/sos_coordination_system/internal/models"
	"github.com/resqnet/sos_coordination_system/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestHandler builds a Handler with mocked services and a test router.
func newTestHandler(t *testing.T) (*mocks.MockSOSService, *mocks.MockVolunteerService, *mocks.MockResponseService, *gin.Engine) {
	ctrl := gomock.NewController(t)
	sosMock := mocks.NewMockSOSService(ctrl)
	volunteerMock := mocks.NewMockVolunteerService(ctrl)
	responseMock := mocks.NewMockResponseService(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // keep test output quiet

	cfg := &config.Config{
		APIKeys:                []string{"test-api-key"},
		ResponsePollInterval:   5 * time.Second,
		StatsTimeWindowMinutes: 60,
	}

	handler := NewHandler(sosMock, volunteerMock, responseMock, logger, cfg)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	return sosMock, volunteerMock, responseMock, router
}

// makeRequest performs an HTTP request against the test router with a valid API key.
func makeRequest(router *gin.Engine, method, url string, body io.Reader, headers ...map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("X-API-Key", "test-api-key")
	for _, h := range headers {
		for key, value := range h {
			req.Header.Set(key, value)
		}
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCreateEvent_Handler_Success(t *testing.T) {
	sosMock, _, _, router := newTestHandler(t)
	eventID := uuid.New()
	ownerID := uuid.New()
	reqBody := CreateEventRequest{
		UserID:    ownerID.String(),
		Category:  "fire",
		Latitude:  55.7558,
		Longitude: 37.6173,
		Address:   "Red Square, 1",
	}

	sosMock.EXPECT().
		CreateEvent(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, e *models.SOSEvent) error {
			assert.Equal(t, ownerID, e.UserID)
			assert.Equal(t, models.CategoryFire, e.Category)
			e.ID = eventID
			e.Status = models.StatusActive
			e.CreatedAt = time.Now()
			return nil
		}).
		Times(1)

	body, _ := json.Marshal(reqBody)
	w := makeRequest(router, http.MethodPost, "/api/v1/events", bytes.NewReader(body))

	require.Equal(t, http.StatusCreated, w.Code)

	var resp EventResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, eventID, resp.ID)
	assert.Equal(t, "active", resp.Status)
}

func TestCreateEvent_Handler_UnknownCategory(t *testing.T) {
	_, _, _, router := newTestHandler(t)
	reqBody := CreateEventRequest{
		UserID:   uuid.New().String(),
		Category: "flood",
	}

	body, _ := json.Marshal(reqBody)
	w := makeRequest(router, http.MethodPost, "/api/v1/events", bytes.NewReader(body))

	// Rejected by struct validation before the service is touched.
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateEvent_Handler_InvalidBody(t *testing.T) {
	_, _, _, router := newTestHandler(t)

	w := makeRequest(router, http.MethodPost, "/api/v1/events", bytes.NewReader([]byte("{not json")))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateEvent_Handler_NoAPIKey(t *testing.T) {
	_, _, _, router := newTestHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/events", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCreateEvent_Handler_BearerToken(t *testing.T) {
	sosMock, _, _, router := newTestHandler(t)
	reqBody := CreateEventRequest{
		UserID:   uuid.New().String(),
		Category: "health",
	}

	sosMock.EXPECT().CreateEvent(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	body, _ := json.Marshal(reqBody)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/events", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer test-api-key")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestResolveEvent_Handler_Success(t *testing.T) {
	sosMock, _, _, router := newTestHandler(t)
	eventID := uuid.New()
	ownerID := uuid.New()

	sosMock.EXPECT().
		ResolveEvent(gomock.Any(), eventID, ownerID).
		Return(nil).
		Times(1)

	body, _ := json.Marshal(FinishEventRequest{UserID: ownerID.String()})
	w := makeRequest(router, http.MethodPost, "/api/v1/events/"+eventID.String()+"/resolve", bytes.NewReader(body))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestResolveEvent_Handler_NotOwner(t *testing.T) {
	sosMock, _, _, router := newTestHandler(t)
	eventID := uuid.New()
	actorID := uuid.New()

	sosMock.EXPECT().
		ResolveEvent(gomock.Any(), eventID, actorID).
		Return(fmt.Errorf("service: %w", models.ErrNotAuthorized)).
		Times(1)

	body, _ := json.Marshal(FinishEventRequest{UserID: actorID.String()})
	w := makeRequest(router, http.MethodPost, "/api/v1/events/"+eventID.String()+"/resolve", bytes.NewReader(body))

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestCancelEvent_Handler_AlreadyFinished(t *testing.T) {
	sosMock, _, _, router := newTestHandler(t)
	eventID := uuid.New()
	ownerID := uuid.New()

	sosMock.EXPECT().
		CancelEvent(gomock.Any(), eventID, ownerID).
		Return(fmt.Errorf("service: %w", models.ErrInvalidTransition)).
		Times(1)

	body, _ := json.Marshal(FinishEventRequest{UserID: ownerID.String()})
	w := makeRequest(router, http.MethodPost, "/api/v1/events/"+eventID.String()+"/cancel", bytes.NewReader(body))

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestGetEvent_Handler_NotFound(t *testing.T) {
	sosMock, _, _, router := newTestHandler(t)
	eventID := uuid.New()

	sosMock.EXPECT().
		GetEvent(gomock.Any(), eventID).
		Return(nil, fmt.Errorf("service: %w", models.ErrNotFound)).
		Times(1)

	w := makeRequest(router, http.MethodGet, "/api/v1/events/"+eventID.String(), nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetEvent_Handler_InvalidID(t *testing.T) {
	_, _, _, router := newTestHandler(t)

	w := makeRequest(router, http.MethodGet, "/api/v1/events/not-a-uuid", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestActiveEventForOwner_Handler_NoActiveEvent(t *testing.T) {
	sosMock, _, _, router := newTestHandler(t)
	ownerID := uuid.New()

	sosMock.EXPECT().
		ActiveEventForOwner(gomock.Any(), ownerID).
		Return(nil, nil).
		Times(1)

	w := makeRequest(router, http.MethodGet, "/api/v1/events/active?user_id="+ownerID.String(), nil)

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestListActiveEvents_Handler_Success(t *testing.T) {
	sosMock, _, _, router := newTestHandler(t)
	volunteerID := uuid.New()
	events := []*models.SOSEvent{
		{ID: uuid.New(), UserID: uuid.New(), Category: models.CategoryThreat, Status: models.StatusActive},
		{ID: uuid.New(), UserID: uuid.New(), Category: models.CategoryHealth, Status: models.StatusActive},
	}

	sosMock.EXPECT().
		ListActiveEventsForVolunteer(gomock.Any(), volunteerID).
		Return(events, nil).
		Times(1)

	w := makeRequest(router, http.MethodGet, "/api/v1/events?volunteer_id="+volunteerID.String(), nil)

	require.Equal(t, http.StatusOK, w.Code)

	var resp []*EventResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 2)
}

func TestRespond_Handler_Success(t *testing.T) {
	_, _, responseMock, router := newTestHandler(t)
	eventID := uuid.New()
	volunteerID := uuid.New()
	reqBody := RespondRequest{
		VolunteerID:      volunteerID.String(),
		ResponseType:     "accepted",
		EstimatedArrival: "10 min",
	}

	responseMock.EXPECT().
		Respond(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, r *models.VolunteerResponse) error {
			assert.Equal(t, eventID, r.SOSEventID)
			assert.Equal(t, volunteerID, r.VolunteerID)
			assert.Equal(t, models.ResponseAccepted, r.ResponseType)
			r.ID = uuid.New()
			r.CreatedAt = time.Now()
			return nil
		}).
		Times(1)

	body, _ := json.Marshal(reqBody)
	w := makeRequest(router, http.MethodPost, "/api/v1/events/"+eventID.String()+"/responses", bytes.NewReader(body))

	require.Equal(t, http.StatusCreated, w.Code)

	var resp ResponseEntry
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "accepted", resp.ResponseType)
}

func TestRespond_Handler_FinishedEvent(t *testing.T) {
	_, _, responseMock, router := newTestHandler(t)
	eventID := uuid.New()
	reqBody := RespondRequest{
		VolunteerID:  uuid.New().String(),
		ResponseType: "declined",
	}

	responseMock.EXPECT().
		Respond(gomock.Any(), gomock.Any()).
		Return(fmt.Errorf("service: %w", models.ErrInvalidTransition)).
		Times(1)

	body, _ := json.Marshal(reqBody)
	w := makeRequest(router, http.MethodPost, "/api/v1/events/"+eventID.String()+"/responses", bytes.NewReader(body))

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestListAcceptedResponses_Handler_Success(t *testing.T) {
	_, _, responseMock, router := newTestHandler(t)
	eventID := uuid.New()
	responses := []*models.VolunteerResponse{
		{
			ID:           uuid.New(),
			SOSEventID:   eventID,
			VolunteerID:  uuid.New(),
			ResponseType: models.ResponseAccepted,
			CreatedAt:    time.Now(),
		},
	}

	responseMock.EXPECT().
		ListAcceptedResponses(gomock.Any(), eventID).
		Return(responses, nil).
		Times(1)

	w := makeRequest(router, http.MethodGet, "/api/v1/events/"+eventID.String()+"/responses", nil)

	require.Equal(t, http.StatusOK, w.Code)

	var resp AcceptedResponsesResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Responses, 1)
	assert.Equal(t, 5, resp.PollIntervalSeconds)
}

func TestRegisterVolunteer_Handler_Success(t *testing.T) {
	sosMock, volunteerMock, _, router := newTestHandler(t)
	userID := uuid.New()
	lat, lon := 55.75, 37.62
	reqBody := RegisterVolunteerRequest{
		UserID:         userID.String(),
		MaxRangeMeters: 2000,
		Latitude:       &lat,
		Longitude:      &lon,
	}
	volunteer := &models.Volunteer{
		ID:             uuid.New(),
		UserID:         userID,
		IsAvailable:    true,
		MaxRangeMeters: 2000,
		Latitude:       &lat,
		Longitude:      &lon,
		CreatedAt:      time.Now(),
	}
	activeEvents := []*models.SOSEvent{
		{ID: uuid.New(), UserID: uuid.New(), Category: models.CategoryFire, Status: models.StatusActive},
	}

	volunteerMock.EXPECT().
		Register(gomock.Any(), userID, 2000, gomock.Any(), gomock.Any()).
		Return(volunteer, nil).
		Times(1)
	sosMock.EXPECT().
		ListActiveEventsForVolunteer(gomock.Any(), userID).
		Return(activeEvents, nil).
		Times(1)

	body, _ := json.Marshal(reqBody)
	w := makeRequest(router, http.MethodPost, "/api/v1/volunteers", bytes.NewReader(body))

	require.Equal(t, http.StatusOK, w.Code)

	var resp RegisterVolunteerResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, userID, resp.Volunteer.UserID)
	require.Len(t, resp.ActiveEvents, 1)
	assert.Equal(t, "fire", resp.ActiveEvents[0].Category)
}

func TestRegisterVolunteer_Handler_InvalidRange(t *testing.T) {
	_, _, _, router := newTestHandler(t)
	reqBody := RegisterVolunteerRequest{
		UserID:         uuid.New().String(),
		MaxRangeMeters: -10,
	}

	body, _ := json.Marshal(reqBody)
	w := makeRequest(router, http.MethodPost, "/api/v1/volunteers", bytes.NewReader(body))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUnregisterVolunteer_Handler_Success(t *testing.T) {
	_, volunteerMock, _, router := newTestHandler(t)
	userID := uuid.New()

	volunteerMock.EXPECT().
		Unregister(gomock.Any(), userID).
		Return(nil).
		Times(1)

	w := makeRequest(router, http.MethodDelete, "/api/v1/volunteers/"+userID.String(), nil)

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestUnregisterVolunteer_Handler_NotFound(t *testing.T) {
	_, volunteerMock, _, router := newTestHandler(t)
	userID := uuid.New()

	volunteerMock.EXPECT().
		Unregister(gomock.Any(), userID).
		Return(fmt.Errorf("service: %w", models.ErrNotFound)).
		Times(1)

	w := makeRequest(router, http.MethodDelete, "/api/v1/volunteers/"+userID.String(), nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateVolunteerLocation_Handler_Success(t *testing.T) {
	_, volunteerMock, _, router := newTestHandler(t)
	userID := uuid.New()

	volunteerMock.EXPECT().
		UpdateLocation(gomock.Any(), userID, 59.93, 30.31).
		Return(nil).
		Times(1)

	body, _ := json.Marshal(UpdateLocationRequest{Latitude: 59.93, Longitude: 30.31})
	w := makeRequest(router, http.MethodPut, "/api/v1/volunteers/"+userID.String()+"/location", bytes.NewReader(body))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGetStats_Handler_Success(t *testing.T) {
	sosMock, _, _, router := newTestHandler(t)

	sosMock.EXPECT().
		GetStats(gomock.Any()).
		Return(&models.Stats{ActiveEvents: 2, AvailableVolunteers: 9, ResponsesInWindow: 4}, nil).
		Times(1)

	w := makeRequest(router, http.MethodGet, "/api/v1/system/stats", nil)

	require.Equal(t, http.StatusOK, w.Code)

	var resp StatsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.ActiveEvents)
	assert.Equal(t, 9, resp.AvailableVolunteers)
	assert.Equal(t, 4, resp.ResponsesInWindow)
}

func TestHealthCheck_Handler_NoAuthRequired(t *testing.T) {
	_, _, _, router := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/system/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestStoreUnavailable_MapsTo503(t *testing.T) {
	sosMock, _, _, router := newTestHandler(t)
	eventID := uuid.New()

	sosMock.EXPECT().
		GetEvent(gomock.Any(), eventID).
		Return(nil, fmt.Errorf("service: %w", models.ErrStoreUnavailable)).
		Times(1)

	w := makeRequest(router, http.MethodGet, "/api/v1/events/"+eventID.String(), nil)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
