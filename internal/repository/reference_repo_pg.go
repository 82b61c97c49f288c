package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/olegkh/airport-api/internal/domain"
)

// ReferenceRepository covers the reference-data resources. Countries and
// cities are read-only over the API, the rest is full CRUD for staff.
type ReferenceRepository interface {
	ListCountries(ctx context.Context) ([]domain.Country, error)
	GetCountry(ctx context.Context, id int64) (*domain.Country, error)

	ListCities(ctx context.Context) ([]domain.City, error)
	GetCity(ctx context.Context, id int64) (*domain.City, error)

	ListAirports(ctx context.Context) ([]domain.Airport, error)
	GetAirport(ctx context.Context, id int64) (*domain.Airport, error)
	CreateAirport(ctx context.Context, airport *domain.Airport) error
	UpdateAirport(ctx context.Context, airport *domain.Airport) error
	DeleteAirport(ctx context.Context, id int64) error

	ListAirplaneTypes(ctx context.Context) ([]domain.AirplaneType, error)
	GetAirplaneType(ctx context.Context, id int64) (*domain.AirplaneType, error)
	CreateAirplaneType(ctx context.Context, t *domain.AirplaneType) error
	UpdateAirplaneType(ctx context.Context, t *domain.AirplaneType) error
	DeleteAirplaneType(ctx context.Context, id int64) error

	ListAirplanes(ctx context.Context) ([]domain.Airplane, error)
	GetAirplane(ctx context.Context, id int64) (*domain.Airplane, error)
	CreateAirplane(ctx context.Context, airplane *domain.Airplane) error
	UpdateAirplane(ctx context.Context, airplane *domain.Airplane) error
	DeleteAirplane(ctx context.Context, id int64) error

	ListCrews(ctx context.Context) ([]domain.Crew, error)
	GetCrew(ctx context.Context, id int64) (*domain.Crew, error)
	CreateCrew(ctx context.Context, crew *domain.Crew) error
	UpdateCrew(ctx context.Context, crew *domain.Crew) error
	DeleteCrew(ctx context.Context, id int64) error

	ListRoutes(ctx context.Context) ([]domain.Route, error)
	GetRoute(ctx context.Context, id int64) (*domain.Route, error)
	CreateRoute(ctx context.Context, route *domain.Route) error
	UpdateRoute(ctx context.Context, route *domain.Route) error
	DeleteRoute(ctx context.Context, id int64) error
}

type PGReferenceRepository struct {
	db *pgxpool.Pool
}

func NewReferenceRepository(db *pgxpool.Pool) ReferenceRepository {
	return &PGReferenceRepository{db: db}
}

func notFoundOnNoRows(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrNotFound
	}
	return err
}

func (r *PGReferenceRepository) deleteByID(ctx context.Context, table string, id int64) error {
	cmd, err := r.db.Exec(ctx, `DELETE FROM `+table+` WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Countries

func (r *PGReferenceRepository) ListCountries(ctx context.Context) ([]domain.Country, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name FROM countries ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	countries := make([]domain.Country, 0)
	for rows.Next() {
		var c domain.Country
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, err
		}
		countries = append(countries, c)
	}
	return countries, rows.Err()
}

func (r *PGReferenceRepository) GetCountry(ctx context.Context, id int64) (*domain.Country, error) {
	var c domain.Country
	err := r.db.QueryRow(ctx, `SELECT id, name FROM countries WHERE id=$1`, id).Scan(&c.ID, &c.Name)
	if err != nil {
		return nil, notFoundOnNoRows(err)
	}
	return &c, nil
}

// Cities

func (r *PGReferenceRepository) ListCities(ctx context.Context) ([]domain.City, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name, country_id FROM cities ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cities := make([]domain.City, 0)
	for rows.Next() {
		var c domain.City
		if err := rows.Scan(&c.ID, &c.Name, &c.CountryID); err != nil {
			return nil, err
		}
		cities = append(cities, c)
	}
	return cities, rows.Err()
}

func (r *PGReferenceRepository) GetCity(ctx context.Context, id int64) (*domain.City, error) {
	var c domain.City
	err := r.db.QueryRow(ctx, `SELECT id, name, country_id FROM cities WHERE id=$1`, id).Scan(&c.ID, &c.Name, &c.CountryID)
	if err != nil {
		return nil, notFoundOnNoRows(err)
	}
	return &c, nil
}

// Airports

func (r *PGReferenceRepository) ListAirports(ctx context.Context) ([]domain.Airport, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name, city_id FROM airports ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	airports := make([]domain.Airport, 0)
	for rows.Next() {
		var a domain.Airport
		if err := rows.Scan(&a.ID, &a.Name, &a.CityID); err != nil {
			return nil, err
		}
		airports = append(airports, a)
	}
	return airports, rows.Err()
}

func (r *PGReferenceRepository) GetAirport(ctx context.Context, id int64) (*domain.Airport, error) {
	var a domain.Airport
	err := r.db.QueryRow(ctx, `SELECT id, name, city_id FROM airports WHERE id=$1`, id).Scan(&a.ID, &a.Name, &a.CityID)
	if err != nil {
		return nil, notFoundOnNoRows(err)
	}
	return &a, nil
}

func (r *PGReferenceRepository) CreateAirport(ctx context.Context, airport *domain.Airport) error {
	return r.db.QueryRow(ctx, `INSERT INTO airports (name, city_id) VALUES ($1, $2) RETURNING id`,
		airport.Name, airport.CityID).Scan(&airport.ID)
}

func (r *PGReferenceRepository) UpdateAirport(ctx context.Context, airport *domain.Airport) error {
	cmd, err := r.db.Exec(ctx, `UPDATE airports SET name=$1, city_id=$2 WHERE id=$3`,
		airport.Name, airport.CityID, airport.ID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *PGReferenceRepository) DeleteAirport(ctx context.Context, id int64) error {
	return r.deleteByID(ctx, "airports", id)
}

// Airplane types

func (r *PGReferenceRepository) ListAirplaneTypes(ctx context.Context) ([]domain.AirplaneType, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name FROM airplane_types ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	types := make([]domain.AirplaneType, 0)
	for rows.Next() {
		var t domain.AirplaneType
		if err := rows.Scan(&t.ID, &t.Name); err != nil {
			return nil, err
		}
		types = append(types, t)
	}
	return types, rows.Err()
}

func (r *PGReferenceRepository) GetAirplaneType(ctx context.Context, id int64) (*domain.AirplaneType, error) {
	var t domain.AirplaneType
	err := r.db.QueryRow(ctx, `SELECT id, name FROM airplane_types WHERE id=$1`, id).Scan(&t.ID, &t.Name)
	if err != nil {
		return nil, notFoundOnNoRows(err)
	}
	return &t, nil
}

func (r *PGReferenceRepository) CreateAirplaneType(ctx context.Context, t *domain.AirplaneType) error {
	return r.db.QueryRow(ctx, `INSERT INTO airplane_types (name) VALUES ($1) RETURNING id`, t.Name).Scan(&t.ID)
}

func (r *PGReferenceRepository) UpdateAirplaneType(ctx context.Context, t *domain.AirplaneType) error {
	cmd, err := r.db.Exec(ctx, `UPDATE airplane_types SET name=$1 WHERE id=$2`, t.Name, t.ID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *PGReferenceRepository) DeleteAirplaneType(ctx context.Context, id int64) error {
	return r.deleteByID(ctx, "airplane_types", id)
}

// Airplanes

func (r *PGReferenceRepository) ListAirplanes(ctx context.Context) ([]domain.Airplane, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name, rows, seats_in_rows, airplane_type_id FROM airplanes ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	airplanes := make([]domain.Airplane, 0)
	for rows.Next() {
		var a domain.Airplane
		if err := rows.Scan(&a.ID, &a.Name, &a.Rows, &a.SeatsInRows, &a.AirplaneTypeID); err != nil {
			return nil, err
		}
		airplanes = append(airplanes, a)
	}
	return airplanes, rows.Err()
}

func (r *PGReferenceRepository) GetAirplane(ctx context.Context, id int64) (*domain.Airplane, error) {
	var a domain.Airplane
	err := r.db.QueryRow(ctx, `SELECT id, name, rows, seats_in_rows, airplane_type_id FROM airplanes WHERE id=$1`, id).
		Scan(&a.ID, &a.Name, &a.Rows, &a.SeatsInRows, &a.AirplaneTypeID)
	if err != nil {
		return nil, notFoundOnNoRows(err)
	}
	return &a, nil
}

func (r *PGReferenceRepository) CreateAirplane(ctx context.Context, airplane *domain.Airplane) error {
	return r.db.QueryRow(ctx, `INSERT INTO airplanes (name, rows, seats_in_rows, airplane_type_id)
		VALUES ($1, $2, $3, $4) RETURNING id`,
		airplane.Name, airplane.Rows, airplane.SeatsInRows, airplane.AirplaneTypeID).Scan(&airplane.ID)
}

func (r *PGReferenceRepository) UpdateAirplane(ctx context.Context, airplane *domain.Airplane) error {
	cmd, err := r.db.Exec(ctx, `UPDATE airplanes SET name=$1, rows=$2, seats_in_rows=$3, airplane_type_id=$4 WHERE id=$5`,
		airplane.Name, airplane.Rows, airplane.SeatsInRows, airplane.AirplaneTypeID, airplane.ID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *PGReferenceRepository) DeleteAirplane(ctx context.Context, id int64) error {
	return r.deleteByID(ctx, "airplanes", id)
}

// Crews

func (r *PGReferenceRepository) ListCrews(ctx context.Context) ([]domain.Crew, error) {
	rows, err := r.db.Query(ctx, `SELECT id, first_name, last_name FROM crews ORDER BY last_name, first_name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	crews := make([]domain.Crew, 0)
	for rows.Next() {
		var c domain.Crew
		if err := rows.Scan(&c.ID, &c.FirstName, &c.LastName); err != nil {
			return nil, err
		}
		crews = append(crews, c)
	}
	return crews, rows.Err()
}

func (r *PGReferenceRepository) GetCrew(ctx context.Context, id int64) (*domain.Crew, error) {
	var c domain.Crew
	err := r.db.QueryRow(ctx, `SELECT id, first_name, last_name FROM crews WHERE id=$1`, id).
		Scan(&c.ID, &c.FirstName, &c.LastName)
	if err != nil {
		return nil, notFoundOnNoRows(err)
	}
	return &c, nil
}

func (r *PGReferenceRepository) CreateCrew(ctx context.Context, crew *domain.Crew) error {
	return r.db.QueryRow(ctx, `INSERT INTO crews (first_name, last_name) VALUES ($1, $2) RETURNING id`,
		crew.FirstName, crew.LastName).Scan(&crew.ID)
}

func (r *PGReferenceRepository) UpdateCrew(ctx context.Context, crew *domain.Crew) error {
	cmd, err := r.db.Exec(ctx, `UPDATE crews SET first_name=$1, last_name=$2 WHERE id=$3`,
		crew.FirstName, crew.LastName, crew.ID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *PGReferenceRepository) DeleteCrew(ctx context.Context, id int64) error {
	return r.deleteByID(ctx, "crews", id)
}

// Routes

func (r *PGReferenceRepository) ListRoutes(ctx context.Context) ([]domain.Route, error) {
	rows, err := r.db.Query(ctx, `SELECT id, source_id, destination_id, distance FROM routes ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	routes := make([]domain.Route, 0)
	for rows.Next() {
		var rt domain.Route
		if err := rows.Scan(&rt.ID, &rt.SourceID, &rt.DestinationID, &rt.Distance); err != nil {
			return nil, err
		}
		routes = append(routes, rt)
	}
	return routes, rows.Err()
}

func (r *PGReferenceRepository) GetRoute(ctx context.Context, id int64) (*domain.Route, error) {
	var rt domain.Route
	err := r.db.QueryRow(ctx, `SELECT id, source_id, destination_id, distance FROM routes WHERE id=$1`, id).
		Scan(&rt.ID, &rt.SourceID, &rt.DestinationID, &rt.Distance)
	if err != nil {
		return nil, notFoundOnNoRows(err)
	}
	return &rt, nil
}

func (r *PGReferenceRepository) CreateRoute(ctx context.Context, route *domain.Route) error {
	return r.db.QueryRow(ctx, `INSERT INTO routes (source_id, destination_id, distance) VALUES ($1, $2, $3) RETURNING id`,
		route.SourceID, route.DestinationID, route.Distance).Scan(&route.ID)
}

func (r *PGReferenceRepository) UpdateRoute(ctx context.Context, route *domain.Route) error {
	cmd, err := r.db.Exec(ctx, `UPDATE routes SET source_id=$1, destination_id=$2, distance=$3 WHERE id=$4`,
		route.SourceID, route.DestinationID, route.Distance, route.ID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *PGReferenceRepository) DeleteRoute(ctx context.Context, id int64) error {
	return r.deleteByID(ctx, "routes", id)
}

var _ ReferenceRepository = (*PGReferenceRepository)(nil)
