package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"bustickets/entity"
)

type BusesPostgresRepository struct {
	db *sqlx.DB
}

func NewBusesPostgresRepository(db *sqlx.DB) *BusesPostgresRepository {
	return &BusesPostgresRepository{db: db}
}

func (r *BusesPostgresRepository) Store(ctx context.Context, bus entity.Bus) (int64, error) {
	var busID int64
	err := r.db.GetContext(ctx, &busID, `
		INSERT INTO buses (bus_number, route_id, departure_time, total_seats, available_seats)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING bus_id
	`, bus.BusNumber, bus.RouteID, bus.DepartureTime, bus.TotalSeats, bus.AvailableSeats)
	if err != nil {
		return 0, fmt.Errorf("could not add bus: %w", err)
	}
	return busID, nil
}

func (r *BusesPostgresRepository) Get(ctx context.Context, busID int64) (entity.Bus, error) {
	var bus entity.Bus
	err := r.db.GetContext(ctx, &bus, `
		SELECT bus_id, bus_number, route_id, departure_time, total_seats, available_seats
		FROM buses
		WHERE bus_id = $1
	`, busID)
	if errors.Is(err, sql.ErrNoRows) {
		return entity.Bus{}, entity.ErrNotFound
	}
	return bus, err
}

func (r *BusesPostgresRepository) FindAll(ctx context.Context) ([]entity.Bus, error) {
	var buses []entity.Bus
	err := r.db.SelectContext(ctx, &buses, `
		SELECT bus_id, bus_number, route_id, departure_time, total_seats, available_seats
		FROM buses
		ORDER BY bus_id
	`)
	return buses, err
}

func (r *BusesPostgresRepository) FindByNumber(ctx context.Context, busNumber string) ([]entity.Bus, error) {
	var buses []entity.Bus
	err := r.db.SelectContext(ctx, &buses, `
		SELECT bus_id, bus_number, route_id, departure_time, total_seats, available_seats
		FROM buses
		WHERE bus_number = $1
		ORDER BY bus_id
	`, busNumber)
	return buses, err
}

// FindAvailable returns buses with free seats on the route and trip date,
// earliest departure first.
func (r *BusesPostgresRepository) FindAvailable(ctx context.Context, departureCity, destinationCity, tripDate string) ([]entity.AvailableBus, error) {
	var buses []entity.AvailableBus
	err := r.db.SelectContext(ctx, &buses, `
		SELECT b.bus_id, b.bus_number, b.departure_time, b.available_seats, t.trip_date_id, r.price
		FROM buses b
		JOIN routes r ON b.route_id = r.route_id
		JOIN trip_dates t ON r.route_id = t.route_id
		WHERE r.departure_city = $1
		  AND r.destination_city = $2
		  AND t.trip_date = $3::date
		  AND b.available_seats > 0
		ORDER BY b.departure_time
	`, departureCity, destinationCity, tripDate)
	return buses, err
}
