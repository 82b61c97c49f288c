package flights

import (
	"context"
	"time"

	"github.com/olegkh/airport-api/internal/domain"
	"github.com/olegkh/airport-api/internal/repository"
)

type FlightUseCase interface {
	List(ctx context.Context, filter repository.FlightFilter) ([]domain.Flight, error)
	GetByID(ctx context.Context, id int64) (*domain.Flight, error)
	Create(ctx context.Context, input CreateFlightInput) (*domain.Flight, error)
	Update(ctx context.Context, id int64, input UpdateFlightInput) (*domain.Flight, error)
	Delete(ctx context.Context, id int64) error
}

type Cache interface {
	GetFlights(ctx context.Context) ([]domain.Flight, error)
	SetFlights(ctx context.Context, flights []domain.Flight) error
}

type CreateFlightInput struct {
	RouteID       int64     `json:"route_id"`
	AirplaneID    int64     `json:"airplane_id"`
	DepartureTime time.Time `json:"departure_time"`
	ArrivalTime   time.Time `json:"arrival_time"`
	CrewIDs       []int64   `json:"crew_ids"`
}

// UpdateFlightInput carries partial updates; nil fields keep the persisted
// value.
type UpdateFlightInput struct {
	RouteID       *int64     `json:"route_id"`
	AirplaneID    *int64     `json:"airplane_id"`
	DepartureTime *time.Time `json:"departure_time"`
	ArrivalTime   *time.Time `json:"arrival_time"`
	CrewIDs       []int64    `json:"crew_ids"`
}

type FlightService struct {
	repo  repository.FlightRepository
	cache Cache
}

func NewFlightService(repo repository.FlightRepository, cache Cache) *FlightService {
	return &FlightService{repo: repo, cache: cache}
}

// List serves the unfiltered catalog from cache when possible; filtered
// queries always hit the database.
func (s *FlightService) List(ctx context.Context, filter repository.FlightFilter) ([]domain.Flight, error) {
	if filter.IsZero() && s.cache != nil {
		if cached, err := s.cache.GetFlights(ctx); err == nil && cached != nil {
			return cached, nil
		}
	}

	flights, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	if filter.IsZero() && s.cache != nil {
		_ = s.cache.SetFlights(ctx, flights)
	}
	return flights, nil
}

func (s *FlightService) GetByID(ctx context.Context, id int64) (*domain.Flight, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *FlightService) Create(ctx context.Context, input CreateFlightInput) (*domain.Flight, error) {
	if err := validateSchedule(input.DepartureTime, input.ArrivalTime, time.Now()); err != nil {
		return nil, err
	}

	flight := &domain.Flight{
		RouteID:       input.RouteID,
		AirplaneID:    input.AirplaneID,
		DepartureTime: input.DepartureTime,
		ArrivalTime:   input.ArrivalTime,
		CrewIDs:       input.CrewIDs,
	}
	if err := s.repo.Create(ctx, flight); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, flight.ID)
}

// Update validates the schedule against effective values: a request that
// changes only one timestamp is still checked against the persisted other
// half.
func (s *FlightService) Update(ctx context.Context, id int64, input UpdateFlightInput) (*domain.Flight, error) {
	flight, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.RouteID != nil {
		flight.RouteID = *input.RouteID
	}
	if input.AirplaneID != nil {
		flight.AirplaneID = *input.AirplaneID
	}
	if input.DepartureTime != nil {
		flight.DepartureTime = *input.DepartureTime
	}
	if input.ArrivalTime != nil {
		flight.ArrivalTime = *input.ArrivalTime
	}
	if input.CrewIDs != nil {
		flight.CrewIDs = input.CrewIDs
	}

	if err := validateSchedule(flight.DepartureTime, flight.ArrivalTime, time.Now()); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, flight); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}

func (s *FlightService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

// validateSchedule rejects flights departing in the past or arriving at or
// before their departure.
func validateSchedule(departure, arrival time.Time, now time.Time) error {
	if departure.Before(now) {
		return domain.ErrInvalidSchedule
	}
	if !arrival.After(departure) {
		return domain.ErrInconsistentWindow
	}
	return nil
}

var _ FlightUseCase = (*FlightService)(nil)
