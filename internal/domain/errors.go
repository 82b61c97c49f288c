package domain

import (
	"errors"
	"fmt"
)

var (
	// Booking errors
	ErrEmptyOrder         = errors.New("order must contain at least one ticket")
	ErrFlightNotFound     = errors.New("flight not found")
	ErrRowOutOfRange      = errors.New("row number out of range")
	ErrSeatOutOfRange     = errors.New("seat number out of range")
	ErrDuplicateInRequest = errors.New("seat requested more than once in the order")
	ErrSeatAlreadyBooked  = errors.New("seat already booked")

	// Flight scheduling errors
	ErrInvalidSchedule    = errors.New("departure time cannot be in the past")
	ErrInconsistentWindow = errors.New("arrival time must be after departure time")

	// Reference data errors
	ErrSameAirports = errors.New("source and destination airports must be different")
	ErrNotFound     = errors.New("not found")
)

// TicketError reports which ticket request of an order failed validation.
// Index is the position in the submitted batch, starting at zero.
type TicketError struct {
	Index      int
	FlightID   int64
	RowNumber  int
	SeatNumber int
	Err        error
}

func (e *TicketError) Error() string {
	return fmt.Sprintf("ticket %d (flight %d, row %d, seat %d): %v",
		e.Index, e.FlightID, e.RowNumber, e.SeatNumber, e.Err)
}

func (e *TicketError) Unwrap() error { return e.Err }
