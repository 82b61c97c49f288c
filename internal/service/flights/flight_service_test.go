package flights

import (
	"context"
	"testing"
	"time"

	"github.com/olegkh/airport-api/internal/domain"
	"github.com/olegkh/airport-api/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockFlightRepository struct {
	mock.Mock
}

func (m *MockFlightRepository) List(ctx context.Context, filter repository.FlightFilter) ([]domain.Flight, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Flight), args.Error(1)
}

func (m *MockFlightRepository) GetByID(ctx context.Context, id int64) (*domain.Flight, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Flight), args.Error(1)
}

func (m *MockFlightRepository) Create(ctx context.Context, flight *domain.Flight) error {
	args := m.Called(ctx, flight)
	return args.Error(0)
}

func (m *MockFlightRepository) Update(ctx context.Context, flight *domain.Flight) error {
	args := m.Called(ctx, flight)
	return args.Error(0)
}

func (m *MockFlightRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockCache struct {
	mock.Mock
}

func (m *MockCache) GetFlights(ctx context.Context) ([]domain.Flight, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Flight), args.Error(1)
}

func (m *MockCache) SetFlights(ctx context.Context, flights []domain.Flight) error {
	args := m.Called(ctx, flights)
	return args.Error(0)
}

func TestValidateSchedule(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	testCases := []struct {
		name        string
		departure   time.Time
		arrival     time.Time
		expectedErr error
	}{
		{
			name:      "valid window",
			departure: now.Add(time.Hour),
			arrival:   now.Add(3 * time.Hour),
		},
		{
			name:        "departure in the past",
			departure:   now.Add(-time.Minute),
			arrival:     now.Add(2 * time.Hour),
			expectedErr: domain.ErrInvalidSchedule,
		},
		{
			name:        "arrival before departure",
			departure:   now.Add(2 * time.Hour),
			arrival:     now.Add(time.Hour),
			expectedErr: domain.ErrInconsistentWindow,
		},
		{
			name:        "arrival equals departure",
			departure:   now.Add(time.Hour),
			arrival:     now.Add(time.Hour),
			expectedErr: domain.ErrInconsistentWindow,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := validateSchedule(tc.departure, tc.arrival, now)
			if tc.expectedErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tc.expectedErr)
			}
		})
	}
}

func TestFlightService_Create_PastDeparture(t *testing.T) {
	mockRepo := &MockFlightRepository{}
	service := NewFlightService(mockRepo, nil)

	flight, err := service.Create(context.Background(), CreateFlightInput{
		RouteID:       1,
		AirplaneID:    2,
		DepartureTime: time.Now().Add(-time.Hour),
		ArrivalTime:   time.Now().Add(time.Hour),
	})

	assert.Nil(t, flight)
	assert.ErrorIs(t, err, domain.ErrInvalidSchedule)
	mockRepo.AssertNotCalled(t, "Create")
}

func TestFlightService_Update_PartialTimestampUsesPersistedValue(t *testing.T) {
	mockRepo := &MockFlightRepository{}
	service := NewFlightService(mockRepo, nil)

	ctx := context.Background()
	departure := time.Now().Add(2 * time.Hour)
	persisted := &domain.Flight{
		ID:            7,
		RouteID:       1,
		AirplaneID:    2,
		DepartureTime: departure,
		ArrivalTime:   departure.Add(3 * time.Hour),
	}
	mockRepo.On("GetByID", ctx, int64(7)).Return(persisted, nil).Once()

	// The new arrival lands before the persisted departure, so the update
	// must be rejected even though the request carries only one timestamp.
	badArrival := departure.Add(-time.Hour)
	flight, err := service.Update(ctx, 7, UpdateFlightInput{ArrivalTime: &badArrival})

	assert.Nil(t, flight)
	assert.ErrorIs(t, err, domain.ErrInconsistentWindow)
	mockRepo.AssertNotCalled(t, "Update")
}

func TestFlightService_Update_AppliesOnlyProvidedFields(t *testing.T) {
	mockRepo := &MockFlightRepository{}
	service := NewFlightService(mockRepo, nil)

	ctx := context.Background()
	departure := time.Now().Add(2 * time.Hour)
	persisted := &domain.Flight{
		ID:            7,
		RouteID:       1,
		AirplaneID:    2,
		DepartureTime: departure,
		ArrivalTime:   departure.Add(3 * time.Hour),
		CrewIDs:       []int64{10, 11},
	}
	mockRepo.On("GetByID", ctx, int64(7)).Return(persisted, nil).Twice()

	newRoute := int64(9)
	mockRepo.On("Update", ctx, mock.MatchedBy(func(f *domain.Flight) bool {
		return f.RouteID == 9 && f.AirplaneID == 2 && f.DepartureTime.Equal(departure) && len(f.CrewIDs) == 2
	})).Return(nil).Once()

	flight, err := service.Update(ctx, 7, UpdateFlightInput{RouteID: &newRoute})

	assert.NoError(t, err)
	assert.NotNil(t, flight)
	mockRepo.AssertExpectations(t)
}

func TestFlightService_List_CacheHit(t *testing.T) {
	mockRepo := &MockFlightRepository{}
	mockCache := &MockCache{}
	service := NewFlightService(mockRepo, mockCache)

	ctx := context.Background()
	cached := []domain.Flight{{ID: 1}, {ID: 2}}
	mockCache.On("GetFlights", ctx).Return(cached, nil).Once()

	flights, err := service.List(ctx, repository.FlightFilter{})

	assert.NoError(t, err)
	assert.Equal(t, cached, flights)
	mockRepo.AssertNotCalled(t, "List")
}

func TestFlightService_List_CacheMissFillsCache(t *testing.T) {
	mockRepo := &MockFlightRepository{}
	mockCache := &MockCache{}
	service := NewFlightService(mockRepo, mockCache)

	ctx := context.Background()
	stored := []domain.Flight{{ID: 3}}
	mockCache.On("GetFlights", ctx).Return(nil, nil).Once()
	mockRepo.On("List", ctx, repository.FlightFilter{}).Return(stored, nil).Once()
	mockCache.On("SetFlights", ctx, stored).Return(nil).Once()

	flights, err := service.List(ctx, repository.FlightFilter{})

	assert.NoError(t, err)
	assert.Equal(t, stored, flights)
	mockRepo.AssertExpectations(t)
	mockCache.AssertExpectations(t)
}

func TestFlightService_List_FilteredBypassesCache(t *testing.T) {
	mockRepo := &MockFlightRepository{}
	mockCache := &MockCache{}
	service := NewFlightService(mockRepo, mockCache)

	ctx := context.Background()
	filter := repository.FlightFilter{RouteID: 4}
	stored := []domain.Flight{{ID: 5, RouteID: 4}}
	mockRepo.On("List", ctx, filter).Return(stored, nil).Once()

	flights, err := service.List(ctx, filter)

	assert.NoError(t, err)
	assert.Equal(t, stored, flights)
	mockCache.AssertNotCalled(t, "GetFlights")
	mockCache.AssertNotCalled(t, "SetFlights")
}
