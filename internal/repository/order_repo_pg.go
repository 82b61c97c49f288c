package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/olegkh/airport-api/internal/domain"
)

type OrderRepository interface {
	CreateWithTickets(ctx context.Context, order *domain.Order) error
	ListByUser(ctx context.Context, userID int64) ([]domain.Order, error)
	BookedSeats(ctx context.Context, flightID int64) (map[domain.Seat]struct{}, error)
}

type PGOrderRepository struct {
	db *pgxpool.Pool
}

func NewOrderRepository(db *pgxpool.Pool) OrderRepository {
	return &PGOrderRepository{db: db}
}

const uniqueViolation = "23505"

// CreateWithTickets persists the order and every ticket in one transaction.
// The tickets table carries UNIQUE (flight_id, row_number, seat_number), so
// a concurrent booking of the same seat surfaces here as a unique violation
// no matter what the application-level pre-check saw; it is reported as
// ErrSeatAlreadyBooked for the offending ticket and nothing is written.
func (r *PGOrderRepository) CreateWithTickets(ctx context.Context, order *domain.Order) error {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if err := tx.QueryRow(ctx, `INSERT INTO orders (user_id) VALUES ($1) RETURNING id, created_at`, order.UserID).
		Scan(&order.ID, &order.CreatedAt); err != nil {
		return err
	}

	for i := range order.Tickets {
		t := &order.Tickets[i]
		t.OrderID = order.ID
		err := tx.QueryRow(ctx, `INSERT INTO tickets (row_number, seat_number, flight_id, order_id)
			VALUES ($1, $2, $3, $4) RETURNING id`,
			t.RowNumber, t.SeatNumber, t.FlightID, t.OrderID).Scan(&t.ID)
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
				return &domain.TicketError{
					Index:      i,
					FlightID:   t.FlightID,
					RowNumber:  t.RowNumber,
					SeatNumber: t.SeatNumber,
					Err:        domain.ErrSeatAlreadyBooked,
				}
			}
			return err
		}
	}
	return tx.Commit(ctx)
}

func (r *PGOrderRepository) ListByUser(ctx context.Context, userID int64) ([]domain.Order, error) {
	rows, err := r.db.Query(ctx, `SELECT id, user_id, created_at FROM orders WHERE user_id=$1 ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]domain.Order, 0)
	index := make(map[int64]int)
	var ids []int64
	for rows.Next() {
		var o domain.Order
		if err := rows.Scan(&o.ID, &o.UserID, &o.CreatedAt); err != nil {
			return nil, err
		}
		o.Tickets = make([]domain.Ticket, 0)
		index[o.ID] = len(orders)
		ids = append(ids, o.ID)
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return orders, nil
	}

	ticketRows, err := r.db.Query(ctx, `SELECT id, row_number, seat_number, flight_id, order_id
		FROM tickets WHERE order_id = ANY($1) ORDER BY id`, ids)
	if err != nil {
		return nil, err
	}
	defer ticketRows.Close()
	for ticketRows.Next() {
		var t domain.Ticket
		if err := ticketRows.Scan(&t.ID, &t.RowNumber, &t.SeatNumber, &t.FlightID, &t.OrderID); err != nil {
			return nil, err
		}
		i := index[t.OrderID]
		orders[i].Tickets = append(orders[i].Tickets, t)
	}
	return orders, ticketRows.Err()
}

func (r *PGOrderRepository) BookedSeats(ctx context.Context, flightID int64) (map[domain.Seat]struct{}, error) {
	rows, err := r.db.Query(ctx, `SELECT row_number, seat_number FROM tickets WHERE flight_id=$1`, flightID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	seats := make(map[domain.Seat]struct{})
	for rows.Next() {
		var s domain.Seat
		if err := rows.Scan(&s.Row, &s.Number); err != nil {
			return nil, err
		}
		seats[s] = struct{}{}
	}
	return seats, rows.Err()
}

var _ OrderRepository = (*PGOrderRepository)(nil)
