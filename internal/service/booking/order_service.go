package booking

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/olegkh/airport-api/internal/domain"
	"github.com/olegkh/airport-api/internal/kafka"
	"github.com/olegkh/airport-api/internal/repository"
)

type OrderUseCase interface {
	CreateOrder(ctx context.Context, userID int64, tickets []TicketRequest) (*domain.Order, error)
	ListOrders(ctx context.Context, userID int64) ([]domain.Order, error)
}

type TicketRequest struct {
	FlightID   int64 `json:"flight_id"`
	RowNumber  int   `json:"row_number"`
	SeatNumber int   `json:"seat_number"`
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

type OrderService struct {
	orders      repository.OrderRepository
	flights     repository.FlightRepository
	producer    Producer
	ordersTopic string
}

func NewOrderService(orders repository.OrderRepository, flights repository.FlightRepository, producer Producer, ordersTopic string) *OrderService {
	return &OrderService{
		orders:      orders,
		flights:     flights,
		producer:    producer,
		ordersTopic: ordersTopic,
	}
}

type seatTriple struct {
	flightID int64
	row      int
	seat     int
}

// CreateOrder books every requested seat for the user or nothing at all.
// Requests are validated in submission order and the first failure aborts
// the whole order. The pre-checks against booked seats are a fast path;
// the decisive guard is the seat uniqueness constraint applied inside the
// repository transaction.
func (s *OrderService) CreateOrder(ctx context.Context, userID int64, tickets []TicketRequest) (*domain.Order, error) {
	if len(tickets) == 0 {
		return nil, domain.ErrEmptyOrder
	}

	claimed := make(map[seatTriple]struct{}, len(tickets))
	flightsByID := make(map[int64]*domain.Flight)
	bookedByFlight := make(map[int64]map[domain.Seat]struct{})

	for i, req := range tickets {
		fail := func(err error) error {
			return &domain.TicketError{
				Index:      i,
				FlightID:   req.FlightID,
				RowNumber:  req.RowNumber,
				SeatNumber: req.SeatNumber,
				Err:        err,
			}
		}

		flight, ok := flightsByID[req.FlightID]
		if !ok {
			var err error
			flight, err = s.flights.GetByID(ctx, req.FlightID)
			if err != nil {
				if errors.Is(err, domain.ErrFlightNotFound) {
					return nil, fail(domain.ErrFlightNotFound)
				}
				return nil, err
			}
			flightsByID[req.FlightID] = flight
		}

		if err := checkSeatBounds(req.RowNumber, req.SeatNumber, flight.Airplane); err != nil {
			return nil, fail(err)
		}

		triple := seatTriple{flightID: req.FlightID, row: req.RowNumber, seat: req.SeatNumber}
		if _, dup := claimed[triple]; dup {
			return nil, fail(domain.ErrDuplicateInRequest)
		}

		booked, ok := bookedByFlight[req.FlightID]
		if !ok {
			var err error
			booked, err = s.orders.BookedSeats(ctx, req.FlightID)
			if err != nil {
				return nil, err
			}
			bookedByFlight[req.FlightID] = booked
		}
		if _, taken := booked[domain.Seat{Row: req.RowNumber, Number: req.SeatNumber}]; taken {
			return nil, fail(domain.ErrSeatAlreadyBooked)
		}

		claimed[triple] = struct{}{}
	}

	order := &domain.Order{
		UserID:  userID,
		Tickets: make([]domain.Ticket, 0, len(tickets)),
	}
	for _, req := range tickets {
		order.Tickets = append(order.Tickets, domain.Ticket{
			RowNumber:  req.RowNumber,
			SeatNumber: req.SeatNumber,
			FlightID:   req.FlightID,
		})
	}

	if err := s.orders.CreateWithTickets(ctx, order); err != nil {
		return nil, err
	}

	if err := s.publishCreated(ctx, order); err != nil {
		log.Printf("WARNING: failed to publish order_created event for order %d: %v", order.ID, err)
	}
	return order, nil
}

func (s *OrderService) ListOrders(ctx context.Context, userID int64) ([]domain.Order, error) {
	return s.orders.ListByUser(ctx, userID)
}

func (s *OrderService) publishCreated(ctx context.Context, order *domain.Order) error {
	if s.producer == nil || s.ordersTopic == "" {
		return nil
	}
	event := kafka.OrderEvent{
		ID:        uuid.NewString(),
		Type:      "order_created",
		OrderID:   order.ID,
		UserID:    order.UserID,
		CreatedAt: time.Now(),
	}
	for _, t := range order.Tickets {
		event.Tickets = append(event.Tickets, kafka.TicketEvent{
			FlightID:   t.FlightID,
			RowNumber:  t.RowNumber,
			SeatNumber: t.SeatNumber,
		})
	}
	return s.producer.Publish(ctx, s.ordersTopic, event.ID, event)
}

var _ OrderUseCase = (*OrderService)(nil)
