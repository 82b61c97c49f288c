package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/olegkh/airport-api/internal/repository"
	"github.com/olegkh/airport-api/internal/service/flights"
)

type FlightHandler struct {
	service flights.FlightUseCase
}

func NewFlightHandler(service flights.FlightUseCase) *FlightHandler {
	return &FlightHandler{service: service}
}

func (h *FlightHandler) Register(router *gin.RouterGroup) {
	router.GET("", h.list)
	router.GET("/:id", h.get)
}

// RegisterStaff mounts the write routes; the group must require staff
// access.
func (h *FlightHandler) RegisterStaff(router *gin.RouterGroup) {
	router.POST("", h.create)
	router.PUT("/:id", h.update)
	router.DELETE("/:id", h.delete)
}

// listFilter mirrors the query parameters of the flight listing; values
// that fail to parse are ignored.
func listFilter(c *gin.Context) repository.FlightFilter {
	var filter repository.FlightFilter
	if routeID, err := strconv.ParseInt(c.Query("route"), 10, 64); err == nil {
		filter.RouteID = routeID
	}
	if airplaneID, err := strconv.ParseInt(c.Query("airplane"), 10, 64); err == nil {
		filter.AirplaneID = airplaneID
	}
	if after, err := time.Parse("2006-01-02", c.Query("departure_after")); err == nil {
		filter.DepartureAfter = after
	}
	if before, err := time.Parse("2006-01-02", c.Query("departure_before")); err == nil {
		filter.DepartureBefore = before
	}
	return filter
}

func (h *FlightHandler) list(c *gin.Context) {
	result, err := h.service.List(c.Request.Context(), listFilter(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *FlightHandler) get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	flight, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(flightErrorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, flight)
}

func (h *FlightHandler) create(c *gin.Context) {
	var input flights.CreateFlightInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	flight, err := h.service.Create(c.Request.Context(), input)
	if err != nil {
		c.JSON(flightErrorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, flight)
}

func (h *FlightHandler) update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var input flights.UpdateFlightInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	flight, err := h.service.Update(c.Request.Context(), id, input)
	if err != nil {
		c.JSON(flightErrorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, flight)
}

func (h *FlightHandler) delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		c.JSON(flightErrorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}
