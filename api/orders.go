package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/olegkh/airport-api/internal/auth"
	"github.com/olegkh/airport-api/internal/domain"
	"github.com/olegkh/airport-api/internal/service/booking"
)

type OrderHandler struct {
	service booking.OrderUseCase
}

func NewOrderHandler(service booking.OrderUseCase) *OrderHandler {
	return &OrderHandler{service: service}
}

// Register mounts the order routes; the group must already require
// authentication.
func (h *OrderHandler) Register(router *gin.RouterGroup) {
	router.GET("", h.list)
	router.POST("", h.create)
}

type createOrderRequest struct {
	Tickets []booking.TicketRequest `json:"tickets"`
}

type ticketResponse struct {
	ID         int64 `json:"id"`
	RowNumber  int   `json:"row_number"`
	SeatNumber int   `json:"seat_number"`
	FlightID   int64 `json:"flight_id"`
}

type orderResponse struct {
	ID        int64            `json:"id"`
	CreatedAt string           `json:"created_at"`
	Tickets   []ticketResponse `json:"tickets"`
}

func toOrderResponse(order domain.Order) orderResponse {
	resp := orderResponse{
		ID:        order.ID,
		CreatedAt: order.CreatedAt.Format(time.RFC3339),
		Tickets:   make([]ticketResponse, 0, len(order.Tickets)),
	}
	for _, t := range order.Tickets {
		resp.Tickets = append(resp.Tickets, ticketResponse{
			ID:         t.ID,
			RowNumber:  t.RowNumber,
			SeatNumber: t.SeatNumber,
			FlightID:   t.FlightID,
		})
	}
	return resp
}

func (h *OrderHandler) create(c *gin.Context) {
	claims, ok := auth.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	var req createOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order, err := h.service.CreateOrder(c.Request.Context(), claims.UserID, req.Tickets)
	if err != nil {
		c.JSON(orderErrorStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, toOrderResponse(*order))
}

func (h *OrderHandler) list(c *gin.Context) {
	claims, ok := auth.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	orders, err := h.service.ListOrders(c.Request.Context(), claims.UserID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	resp := make([]orderResponse, 0, len(orders))
	for _, o := range orders {
		resp = append(resp, toOrderResponse(o))
	}
	c.JSON(http.StatusOK, resp)
}
