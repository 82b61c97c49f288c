package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/olegkh/airport-api/internal/domain"
)

// orderErrorStatus maps booking failures to HTTP statuses. Every
// validation failure is the caller's to fix; a seat conflict is a 409 no
// matter whether the pre-check or the commit-time constraint caught it.
func orderErrorStatus(err error) int {
	switch {
	case errors.Is(err, domain.ErrSeatAlreadyBooked):
		return http.StatusConflict
	case errors.Is(err, domain.ErrEmptyOrder),
		errors.Is(err, domain.ErrFlightNotFound),
		errors.Is(err, domain.ErrRowOutOfRange),
		errors.Is(err, domain.ErrSeatOutOfRange),
		errors.Is(err, domain.ErrDuplicateInRequest):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func flightErrorStatus(err error) int {
	switch {
	case errors.Is(err, domain.ErrFlightNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrInvalidSchedule),
		errors.Is(err, domain.ErrInconsistentWindow):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func referenceErrorStatus(err error) int {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrSameAirports):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return id, true
}
