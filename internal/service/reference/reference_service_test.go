package reference

import (
	"context"
	"testing"

	"github.com/olegkh/airport-api/internal/domain"
	"github.com/olegkh/airport-api/internal/repository"
	"github.com/stretchr/testify/assert"
)

// stubReferenceRepo overrides only the route writes; the embedded interface
// panics on anything else, which no test here should reach.
type stubReferenceRepo struct {
	repository.ReferenceRepository
	createdRoute *domain.Route
	updatedRoute *domain.Route
}

func (s *stubReferenceRepo) CreateRoute(ctx context.Context, route *domain.Route) error {
	s.createdRoute = route
	route.ID = 1
	return nil
}

func (s *stubReferenceRepo) UpdateRoute(ctx context.Context, route *domain.Route) error {
	s.updatedRoute = route
	return nil
}

func TestService_CreateRoute(t *testing.T) {
	repo := &stubReferenceRepo{}
	service := NewService(repo)

	route := &domain.Route{SourceID: 1, DestinationID: 2, Distance: 750}
	err := service.CreateRoute(context.Background(), route)

	assert.NoError(t, err)
	assert.Equal(t, route, repo.createdRoute)
	assert.Equal(t, int64(1), route.ID)
}

func TestService_CreateRoute_SameAirports(t *testing.T) {
	repo := &stubReferenceRepo{}
	service := NewService(repo)

	err := service.CreateRoute(context.Background(), &domain.Route{SourceID: 3, DestinationID: 3})

	assert.ErrorIs(t, err, domain.ErrSameAirports)
	assert.Nil(t, repo.createdRoute)
}

func TestService_UpdateRoute_SameAirports(t *testing.T) {
	repo := &stubReferenceRepo{}
	service := NewService(repo)

	err := service.UpdateRoute(context.Background(), &domain.Route{ID: 4, SourceID: 3, DestinationID: 3})

	assert.ErrorIs(t, err, domain.ErrSameAirports)
	assert.Nil(t, repo.updatedRoute)
}
