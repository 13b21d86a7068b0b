package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"bustickets/entity"
)

type RoutesPostgresRepository struct {
	db *sqlx.DB
}

func NewRoutesPostgresRepository(db *sqlx.DB) *RoutesPostgresRepository {
	return &RoutesPostgresRepository{db: db}
}

func (r *RoutesPostgresRepository) Store(ctx context.Context, route entity.Route) (int64, error) {
	var routeID int64
	err := r.db.GetContext(ctx, &routeID, `
		INSERT INTO routes (departure_city, destination_city, price)
		VALUES ($1, $2, $3)
		RETURNING route_id
	`, route.DepartureCity, route.DestinationCity, route.Price)
	if err != nil {
		return 0, fmt.Errorf("could not add route: %w", err)
	}
	return routeID, nil
}

func (r *RoutesPostgresRepository) Delete(ctx context.Context, routeID int64) error {
	res, err := r.db.ExecContext(ctx, `
		DELETE FROM routes
		WHERE route_id = $1
	`, routeID)
	if err != nil {
		return err
	}

	rowsAffected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return entity.ErrNotFound
	}

	return nil
}

func (r *RoutesPostgresRepository) FindAll(ctx context.Context) ([]entity.Route, error) {
	var routes []entity.Route
	err := r.db.SelectContext(ctx, &routes, `
		SELECT route_id, departure_city, destination_city, price
		FROM routes
		ORDER BY route_id
	`)
	return routes, err
}

// FindFiltered returns routes matching the non-empty city filters.
func (r *RoutesPostgresRepository) FindFiltered(ctx context.Context, departureCity, destinationCity string) ([]entity.Route, error) {
	query := `
		SELECT route_id, departure_city, destination_city, price
		FROM routes
		WHERE 1=1
	`
	var args []any

	if departureCity != "" {
		args = append(args, departureCity)
		query += fmt.Sprintf(" AND departure_city = $%d", len(args))
	}
	if destinationCity != "" {
		args = append(args, destinationCity)
		query += fmt.Sprintf(" AND destination_city = $%d", len(args))
	}
	query += " ORDER BY route_id"

	var routes []entity.Route
	err := r.db.SelectContext(ctx, &routes, query, args...)
	return routes, err
}

// FindByCity returns routes that depart from or arrive at the city.
func (r *RoutesPostgresRepository) FindByCity(ctx context.Context, city string) ([]entity.Route, error) {
	var routes []entity.Route
	err := r.db.SelectContext(ctx, &routes, `
		SELECT route_id, departure_city, destination_city, price
		FROM routes
		WHERE departure_city = $1 OR destination_city = $1
		ORDER BY route_id
	`, city)
	return routes, err
}

func (r *RoutesPostgresRepository) Get(ctx context.Context, routeID int64) (entity.Route, error) {
	var route entity.Route
	err := r.db.GetContext(ctx, &route, `
		SELECT route_id, departure_city, destination_city, price
		FROM routes
		WHERE route_id = $1
	`, routeID)
	if errors.Is(err, sql.ErrNoRows) {
		return entity.Route{}, entity.ErrNotFound
	}
	return route, err
}
