package domain

import "time"

// Order groups the tickets created by one booking request. An order is
// created together with all of its tickets or not at all.
type Order struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	Tickets   []Ticket  `json:"tickets"`
}

type Ticket struct {
	ID         int64 `json:"id"`
	RowNumber  int   `json:"row_number"`
	SeatNumber int   `json:"seat_number"`
	FlightID   int64 `json:"flight_id"`
	OrderID    int64 `json:"order_id"`
}

// Seat is a (row, seat) position on a flight, used as a set key when
// checking booked seats.
type Seat struct {
	Row    int `json:"row"`
	Number int `json:"number"`
}
