package reference

import (
	"context"

	"github.com/olegkh/airport-api/internal/domain"
	"github.com/olegkh/airport-api/internal/repository"
)

// Service is a thin pass-through over the reference-data repository. The
// only business rule at this tier is that a route must connect two
// different airports.
type Service struct {
	repo repository.ReferenceRepository
}

func NewService(repo repository.ReferenceRepository) *Service {
	return &Service{repo: repo}
}

func (s *Service) ListCountries(ctx context.Context) ([]domain.Country, error) {
	return s.repo.ListCountries(ctx)
}

func (s *Service) GetCountry(ctx context.Context, id int64) (*domain.Country, error) {
	return s.repo.GetCountry(ctx, id)
}

func (s *Service) ListCities(ctx context.Context) ([]domain.City, error) {
	return s.repo.ListCities(ctx)
}

func (s *Service) GetCity(ctx context.Context, id int64) (*domain.City, error) {
	return s.repo.GetCity(ctx, id)
}

func (s *Service) ListAirports(ctx context.Context) ([]domain.Airport, error) {
	return s.repo.ListAirports(ctx)
}

func (s *Service) GetAirport(ctx context.Context, id int64) (*domain.Airport, error) {
	return s.repo.GetAirport(ctx, id)
}

func (s *Service) CreateAirport(ctx context.Context, airport *domain.Airport) error {
	return s.repo.CreateAirport(ctx, airport)
}

func (s *Service) UpdateAirport(ctx context.Context, airport *domain.Airport) error {
	return s.repo.UpdateAirport(ctx, airport)
}

func (s *Service) DeleteAirport(ctx context.Context, id int64) error {
	return s.repo.DeleteAirport(ctx, id)
}

func (s *Service) ListAirplaneTypes(ctx context.Context) ([]domain.AirplaneType, error) {
	return s.repo.ListAirplaneTypes(ctx)
}

func (s *Service) GetAirplaneType(ctx context.Context, id int64) (*domain.AirplaneType, error) {
	return s.repo.GetAirplaneType(ctx, id)
}

func (s *Service) CreateAirplaneType(ctx context.Context, t *domain.AirplaneType) error {
	return s.repo.CreateAirplaneType(ctx, t)
}

func (s *Service) UpdateAirplaneType(ctx context.Context, t *domain.AirplaneType) error {
	return s.repo.UpdateAirplaneType(ctx, t)
}

func (s *Service) DeleteAirplaneType(ctx context.Context, id int64) error {
	return s.repo.DeleteAirplaneType(ctx, id)
}

func (s *Service) ListAirplanes(ctx context.Context) ([]domain.Airplane, error) {
	return s.repo.ListAirplanes(ctx)
}

func (s *Service) GetAirplane(ctx context.Context, id int64) (*domain.Airplane, error) {
	return s.repo.GetAirplane(ctx, id)
}

func (s *Service) CreateAirplane(ctx context.Context, airplane *domain.Airplane) error {
	return s.repo.CreateAirplane(ctx, airplane)
}

func (s *Service) UpdateAirplane(ctx context.Context, airplane *domain.Airplane) error {
	return s.repo.UpdateAirplane(ctx, airplane)
}

func (s *Service) DeleteAirplane(ctx context.Context, id int64) error {
	return s.repo.DeleteAirplane(ctx, id)
}

func (s *Service) ListCrews(ctx context.Context) ([]domain.Crew, error) {
	return s.repo.ListCrews(ctx)
}

func (s *Service) GetCrew(ctx context.Context, id int64) (*domain.Crew, error) {
	return s.repo.GetCrew(ctx, id)
}

func (s *Service) CreateCrew(ctx context.Context, crew *domain.Crew) error {
	return s.repo.CreateCrew(ctx, crew)
}

func (s *Service) UpdateCrew(ctx context.Context, crew *domain.Crew) error {
	return s.repo.UpdateCrew(ctx, crew)
}

func (s *Service) DeleteCrew(ctx context.Context, id int64) error {
	return s.repo.DeleteCrew(ctx, id)
}

func (s *Service) ListRoutes(ctx context.Context) ([]domain.Route, error) {
	return s.repo.ListRoutes(ctx)
}

func (s *Service) GetRoute(ctx context.Context, id int64) (*domain.Route, error) {
	return s.repo.GetRoute(ctx, id)
}

func (s *Service) CreateRoute(ctx context.Context, route *domain.Route) error {
	if route.SourceID == route.DestinationID {
		return domain.ErrSameAirports
	}
	return s.repo.CreateRoute(ctx, route)
}

func (s *Service) UpdateRoute(ctx context.Context, route *domain.Route) error {
	if route.SourceID == route.DestinationID {
		return domain.ErrSameAirports
	}
	return s.repo.UpdateRoute(ctx, route)
}

func (s *Service) DeleteRoute(ctx context.Context, id int64) error {
	return s.repo.DeleteRoute(ctx, id)
}
