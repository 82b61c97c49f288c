package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/olegkh/airport-api/internal/domain"
)

// FlightFilter narrows flight listings. Zero fields are ignored.
type FlightFilter struct {
	RouteID         int64
	AirplaneID      int64
	DepartureAfter  time.Time
	DepartureBefore time.Time
}

func (f FlightFilter) IsZero() bool {
	return f.RouteID == 0 && f.AirplaneID == 0 &&
		f.DepartureAfter.IsZero() && f.DepartureBefore.IsZero()
}

type FlightRepository interface {
	List(ctx context.Context, filter FlightFilter) ([]domain.Flight, error)
	GetByID(ctx context.Context, id int64) (*domain.Flight, error)
	Create(ctx context.Context, flight *domain.Flight) error
	Update(ctx context.Context, flight *domain.Flight) error
	Delete(ctx context.Context, id int64) error
}

type PGFlightRepository struct {
	db *pgxpool.Pool
}

func NewFlightRepository(db *pgxpool.Pool) FlightRepository {
	return &PGFlightRepository{db: db}
}

const flightColumns = `f.id, f.route_id, f.airplane_id, f.departure_time, f.arrival_time, f.created_at, f.updated_at,
	a.id, a.name, a.rows, a.seats_in_rows, a.airplane_type_id`

func scanFlight(row pgx.Row, f *domain.Flight) error {
	return row.Scan(
		&f.ID, &f.RouteID, &f.AirplaneID, &f.DepartureTime, &f.ArrivalTime, &f.CreatedAt, &f.UpdatedAt,
		&f.Airplane.ID, &f.Airplane.Name, &f.Airplane.Rows, &f.Airplane.SeatsInRows, &f.Airplane.AirplaneTypeID,
	)
}

func (r *PGFlightRepository) List(ctx context.Context, filter FlightFilter) ([]domain.Flight, error) {
	query := `SELECT ` + flightColumns + ` FROM flights f JOIN airplanes a ON a.id = f.airplane_id`

	var conds []string
	var args []interface{}
	if filter.RouteID != 0 {
		args = append(args, filter.RouteID)
		conds = append(conds, fmt.Sprintf("f.route_id = $%d", len(args)))
	}
	if filter.AirplaneID != 0 {
		args = append(args, filter.AirplaneID)
		conds = append(conds, fmt.Sprintf("f.airplane_id = $%d", len(args)))
	}
	if !filter.DepartureAfter.IsZero() {
		args = append(args, filter.DepartureAfter)
		conds = append(conds, fmt.Sprintf("f.departure_time >= $%d", len(args)))
	}
	if !filter.DepartureBefore.IsZero() {
		args = append(args, filter.DepartureBefore)
		conds = append(conds, fmt.Sprintf("f.departure_time <= $%d", len(args)))
	}
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY f.departure_time"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	flights := make([]domain.Flight, 0)
	for rows.Next() {
		var f domain.Flight
		if err := scanFlight(rows, &f); err != nil {
			return nil, err
		}
		flights = append(flights, f)
	}
	return flights, rows.Err()
}

func (r *PGFlightRepository) GetByID(ctx context.Context, id int64) (*domain.Flight, error) {
	row := r.db.QueryRow(ctx, `SELECT `+flightColumns+` FROM flights f JOIN airplanes a ON a.id = f.airplane_id WHERE f.id=$1`, id)
	var f domain.Flight
	if err := scanFlight(row, &f); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrFlightNotFound
		}
		return nil, err
	}

	rows, err := r.db.Query(ctx, `SELECT crew_id FROM flight_crew WHERE flight_id=$1 ORDER BY crew_id`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var crewID int64
		if err := rows.Scan(&crewID); err != nil {
			return nil, err
		}
		f.CrewIDs = append(f.CrewIDs, crewID)
	}
	return &f, rows.Err()
}

func (r *PGFlightRepository) Create(ctx context.Context, flight *domain.Flight) error {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if err := tx.QueryRow(ctx, `INSERT INTO flights (route_id, airplane_id, departure_time, arrival_time)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at`,
		flight.RouteID, flight.AirplaneID, flight.DepartureTime, flight.ArrivalTime).
		Scan(&flight.ID, &flight.CreatedAt, &flight.UpdatedAt); err != nil {
		return err
	}

	for _, crewID := range flight.CrewIDs {
		if _, err := tx.Exec(ctx, `INSERT INTO flight_crew (flight_id, crew_id) VALUES ($1, $2)`, flight.ID, crewID); err != nil {
			return err
		}
	}
	return tx.Commit(ctx)
}

func (r *PGFlightRepository) Update(ctx context.Context, flight *domain.Flight) error {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if err := tx.QueryRow(ctx, `UPDATE flights SET route_id=$1, airplane_id=$2, departure_time=$3, arrival_time=$4, updated_at=now()
		WHERE id=$5 RETURNING updated_at`,
		flight.RouteID, flight.AirplaneID, flight.DepartureTime, flight.ArrivalTime, flight.ID).
		Scan(&flight.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrFlightNotFound
		}
		return err
	}

	if _, err := tx.Exec(ctx, `DELETE FROM flight_crew WHERE flight_id=$1`, flight.ID); err != nil {
		return err
	}
	for _, crewID := range flight.CrewIDs {
		if _, err := tx.Exec(ctx, `INSERT INTO flight_crew (flight_id, crew_id) VALUES ($1, $2)`, flight.ID, crewID); err != nil {
			return err
		}
	}
	return tx.Commit(ctx)
}

func (r *PGFlightRepository) Delete(ctx context.Context, id int64) error {
	cmd, err := r.db.Exec(ctx, `DELETE FROM flights WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrFlightNotFound
	}
	return nil
}

var _ FlightRepository = (*PGFlightRepository)(nil)
