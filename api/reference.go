package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/olegkh/airport-api/internal/domain"
	"github.com/olegkh/airport-api/internal/service/reference"
)

// ReferenceHandler exposes the reference-data resources. Reads are public;
// writes go on the staff group. Countries and cities have no write routes,
// they are managed directly by operations.
type ReferenceHandler struct {
	service *reference.Service
}

func NewReferenceHandler(service *reference.Service) *ReferenceHandler {
	return &ReferenceHandler{service: service}
}

func (h *ReferenceHandler) Register(router *gin.RouterGroup) {
	router.GET("/countries", h.listCountries)
	router.GET("/countries/:id", h.getCountry)
	router.GET("/cities", h.listCities)
	router.GET("/cities/:id", h.getCity)
	router.GET("/airports", h.listAirports)
	router.GET("/airports/:id", h.getAirport)
	router.GET("/airplane-types", h.listAirplaneTypes)
	router.GET("/airplane-types/:id", h.getAirplaneType)
	router.GET("/airplanes", h.listAirplanes)
	router.GET("/airplanes/:id", h.getAirplane)
	router.GET("/crews", h.listCrews)
	router.GET("/crews/:id", h.getCrew)
	router.GET("/routes", h.listRoutes)
	router.GET("/routes/:id", h.getRoute)
}

func (h *ReferenceHandler) RegisterStaff(router *gin.RouterGroup) {
	router.POST("/airports", h.createAirport)
	router.PUT("/airports/:id", h.updateAirport)
	router.DELETE("/airports/:id", h.deleteAirport)
	router.POST("/airplane-types", h.createAirplaneType)
	router.PUT("/airplane-types/:id", h.updateAirplaneType)
	router.DELETE("/airplane-types/:id", h.deleteAirplaneType)
	router.POST("/airplanes", h.createAirplane)
	router.PUT("/airplanes/:id", h.updateAirplane)
	router.DELETE("/airplanes/:id", h.deleteAirplane)
	router.POST("/crews", h.createCrew)
	router.PUT("/crews/:id", h.updateCrew)
	router.DELETE("/crews/:id", h.deleteCrew)
	router.POST("/routes", h.createRoute)
	router.PUT("/routes/:id", h.updateRoute)
	router.DELETE("/routes/:id", h.deleteRoute)
}

func respond(c *gin.Context, status int, value interface{}, err error) {
	if err != nil {
		c.JSON(referenceErrorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(status, value)
}

// Countries

func (h *ReferenceHandler) listCountries(c *gin.Context) {
	countries, err := h.service.ListCountries(c.Request.Context())
	respond(c, http.StatusOK, countries, err)
}

func (h *ReferenceHandler) getCountry(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	country, err := h.service.GetCountry(c.Request.Context(), id)
	respond(c, http.StatusOK, country, err)
}

// Cities

func (h *ReferenceHandler) listCities(c *gin.Context) {
	cities, err := h.service.ListCities(c.Request.Context())
	respond(c, http.StatusOK, cities, err)
}

func (h *ReferenceHandler) getCity(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	city, err := h.service.GetCity(c.Request.Context(), id)
	respond(c, http.StatusOK, city, err)
}

// Airports

func (h *ReferenceHandler) listAirports(c *gin.Context) {
	airports, err := h.service.ListAirports(c.Request.Context())
	respond(c, http.StatusOK, airports, err)
}

func (h *ReferenceHandler) getAirport(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	airport, err := h.service.GetAirport(c.Request.Context(), id)
	respond(c, http.StatusOK, airport, err)
}

func (h *ReferenceHandler) createAirport(c *gin.Context) {
	var airport domain.Airport
	if err := c.ShouldBindJSON(&airport); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	err := h.service.CreateAirport(c.Request.Context(), &airport)
	respond(c, http.StatusCreated, airport, err)
}

func (h *ReferenceHandler) updateAirport(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var airport domain.Airport
	if err := c.ShouldBindJSON(&airport); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	airport.ID = id
	err := h.service.UpdateAirport(c.Request.Context(), &airport)
	respond(c, http.StatusOK, airport, err)
}

func (h *ReferenceHandler) deleteAirport(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.service.DeleteAirport(c.Request.Context(), id); err != nil {
		c.JSON(referenceErrorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

// Airplane types

func (h *ReferenceHandler) listAirplaneTypes(c *gin.Context) {
	types, err := h.service.ListAirplaneTypes(c.Request.Context())
	respond(c, http.StatusOK, types, err)
}

func (h *ReferenceHandler) getAirplaneType(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	t, err := h.service.GetAirplaneType(c.Request.Context(), id)
	respond(c, http.StatusOK, t, err)
}

func (h *ReferenceHandler) createAirplaneType(c *gin.Context) {
	var t domain.AirplaneType
	if err := c.ShouldBindJSON(&t); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	err := h.service.CreateAirplaneType(c.Request.Context(), &t)
	respond(c, http.StatusCreated, t, err)
}

func (h *ReferenceHandler) updateAirplaneType(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var t domain.AirplaneType
	if err := c.ShouldBindJSON(&t); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	t.ID = id
	err := h.service.UpdateAirplaneType(c.Request.Context(), &t)
	respond(c, http.StatusOK, t, err)
}

func (h *ReferenceHandler) deleteAirplaneType(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.service.DeleteAirplaneType(c.Request.Context(), id); err != nil {
		c.JSON(referenceErrorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

// Airplanes

func (h *ReferenceHandler) listAirplanes(c *gin.Context) {
	airplanes, err := h.service.ListAirplanes(c.Request.Context())
	respond(c, http.StatusOK, airplanes, err)
}

func (h *ReferenceHandler) getAirplane(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	airplane, err := h.service.GetAirplane(c.Request.Context(), id)
	respond(c, http.StatusOK, airplane, err)
}

func (h *ReferenceHandler) createAirplane(c *gin.Context) {
	var airplane domain.Airplane
	if err := c.ShouldBindJSON(&airplane); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	err := h.service.CreateAirplane(c.Request.Context(), &airplane)
	respond(c, http.StatusCreated, airplane, err)
}

func (h *ReferenceHandler) updateAirplane(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var airplane domain.Airplane
	if err := c.ShouldBindJSON(&airplane); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	airplane.ID = id
	err := h.service.UpdateAirplane(c.Request.Context(), &airplane)
	respond(c, http.StatusOK, airplane, err)
}

func (h *ReferenceHandler) deleteAirplane(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.service.DeleteAirplane(c.Request.Context(), id); err != nil {
		c.JSON(referenceErrorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

// Crews

func (h *ReferenceHandler) listCrews(c *gin.Context) {
	crews, err := h.service.ListCrews(c.Request.Context())
	respond(c, http.StatusOK, crews, err)
}

func (h *ReferenceHandler) getCrew(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	crew, err := h.service.GetCrew(c.Request.Context(), id)
	respond(c, http.StatusOK, crew, err)
}

func (h *ReferenceHandler) createCrew(c *gin.Context) {
	var crew domain.Crew
	if err := c.ShouldBindJSON(&crew); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	err := h.service.CreateCrew(c.Request.Context(), &crew)
	respond(c, http.StatusCreated, crew, err)
}

func (h *ReferenceHandler) updateCrew(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var crew domain.Crew
	if err := c.ShouldBindJSON(&crew); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	crew.ID = id
	err := h.service.UpdateCrew(c.Request.Context(), &crew)
	respond(c, http.StatusOK, crew, err)
}

func (h *ReferenceHandler) deleteCrew(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.service.DeleteCrew(c.Request.Context(), id); err != nil {
		c.JSON(referenceErrorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

// Routes

func (h *ReferenceHandler) listRoutes(c *gin.Context) {
	routes, err := h.service.ListRoutes(c.Request.Context())
	respond(c, http.StatusOK, routes, err)
}

func (h *ReferenceHandler) getRoute(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	route, err := h.service.GetRoute(c.Request.Context(), id)
	respond(c, http.StatusOK, route, err)
}

func (h *ReferenceHandler) createRoute(c *gin.Context) {
	var route domain.Route
	if err := c.ShouldBindJSON(&route); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	err := h.service.CreateRoute(c.Request.Context(), &route)
	respond(c, http.StatusCreated, route, err)
}

func (h *ReferenceHandler) updateRoute(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var route domain.Route
	if err := c.ShouldBindJSON(&route); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	route.ID = id
	err := h.service.UpdateRoute(c.Request.Context(), &route)
	respond(c, http.StatusOK, route, err)
}

func (h *ReferenceHandler) deleteRoute(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.service.DeleteRoute(c.Request.Context(), id); err != nil {
		c.JSON(referenceErrorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}
