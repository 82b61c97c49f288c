package api

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/olegkh/airport-api/internal/domain"
	"github.com/olegkh/airport-api/internal/repository"
	"github.com/olegkh/airport-api/internal/service/flights"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockFlightUseCase struct {
	mock.Mock
}

func (m *MockFlightUseCase) List(ctx context.Context, filter repository.FlightFilter) ([]domain.Flight, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Flight), args.Error(1)
}

func (m *MockFlightUseCase) GetByID(ctx context.Context, id int64) (*domain.Flight, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Flight), args.Error(1)
}

func (m *MockFlightUseCase) Create(ctx context.Context, input flights.CreateFlightInput) (*domain.Flight, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Flight), args.Error(1)
}

func (m *MockFlightUseCase) Update(ctx context.Context, id int64, input flights.UpdateFlightInput) (*domain.Flight, error) {
	args := m.Called(ctx, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Flight), args.Error(1)
}

func (m *MockFlightUseCase) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func newFlightRouter(service flights.FlightUseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	handler := NewFlightHandler(service)
	group := router.Group("/api/flights")
	handler.Register(group)
	handler.RegisterStaff(group)
	return router
}

func TestFlightHandler_List_Filters(t *testing.T) {
	mockService := &MockFlightUseCase{}
	router := newFlightRouter(mockService)

	expectedFilter := repository.FlightFilter{
		RouteID:        4,
		AirplaneID:     2,
		DepartureAfter: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
	}
	mockService.On("List", mock.Anything, expectedFilter).
		Return([]domain.Flight{{ID: 1, RouteID: 4, AirplaneID: 2}}, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/flights?route=4&airplane=2&departure_after=2026-03-01&departure_before=bogus", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
	mockService.AssertExpectations(t)
}

func TestFlightHandler_Get_NotFound(t *testing.T) {
	mockService := &MockFlightUseCase{}
	router := newFlightRouter(mockService)

	mockService.On("GetByID", mock.Anything, int64(99)).Return(nil, domain.ErrFlightNotFound).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/flights/99", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestFlightHandler_Get_BadID(t *testing.T) {
	mockService := &MockFlightUseCase{}
	router := newFlightRouter(mockService)

	req := httptest.NewRequest(http.MethodGet, "/api/flights/abc", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	mockService.AssertNotCalled(t, "GetByID")
}

func TestFlightHandler_Create_InvalidSchedule(t *testing.T) {
	testCases := []struct {
		name string
		err  error
	}{
		{name: "departure in the past", err: domain.ErrInvalidSchedule},
		{name: "arrival before departure", err: domain.ErrInconsistentWindow},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mockService := &MockFlightUseCase{}
			router := newFlightRouter(mockService)

			mockService.On("Create", mock.Anything, mock.Anything).Return(nil, tc.err).Once()

			body := `{"route_id":4,"airplane_id":2,"departure_time":"2020-01-01T10:00:00Z","arrival_time":"2020-01-01T12:00:00Z"}`
			req := httptest.NewRequest(http.MethodPost, "/api/flights", bytes.NewBufferString(body))
			req.Header.Set("Content-Type", "application/json")
			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, req)

			assert.Equal(t, http.StatusBadRequest, recorder.Code)
		})
	}
}

func TestFlightHandler_Update_PartialBody(t *testing.T) {
	mockService := &MockFlightUseCase{}
	router := newFlightRouter(mockService)

	arrival := time.Date(2026, 3, 2, 18, 0, 0, 0, time.UTC)
	mockService.On("Update", mock.Anything, int64(7), mock.MatchedBy(func(input flights.UpdateFlightInput) bool {
		return input.RouteID == nil && input.AirplaneID == nil &&
			input.DepartureTime == nil &&
			input.ArrivalTime != nil && input.ArrivalTime.Equal(arrival)
	})).Return(&domain.Flight{ID: 7, ArrivalTime: arrival}, nil).Once()

	body := `{"arrival_time":"2026-03-02T18:00:00Z"}`
	req := httptest.NewRequest(http.MethodPut, "/api/flights/7", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
	mockService.AssertExpectations(t)
}

func TestFlightHandler_Delete(t *testing.T) {
	mockService := &MockFlightUseCase{}
	router := newFlightRouter(mockService)

	mockService.On("Delete", mock.Anything, int64(7)).Return(nil).Once()

	req := httptest.NewRequest(http.MethodDelete, "/api/flights/7", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusNoContent, recorder.Code)
	mockService.AssertExpectations(t)
}
