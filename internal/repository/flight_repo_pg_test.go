package repository

import (
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
)

func TestNewFlightRepository(t *testing.T) {
	pool := &pgxpool.Pool{}
	repo := NewFlightRepository(pool)
	assert.NotNil(t, repo)
}

func TestFlightFilter_IsZero(t *testing.T) {
	assert.True(t, FlightFilter{}.IsZero())
	assert.False(t, FlightFilter{RouteID: 1}.IsZero())
	assert.False(t, FlightFilter{AirplaneID: 2}.IsZero())
	assert.False(t, FlightFilter{DepartureAfter: time.Now()}.IsZero())
	assert.False(t, FlightFilter{DepartureBefore: time.Now()}.IsZero())
}
