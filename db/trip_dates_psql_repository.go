package db

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"bustickets/entity"
)

type TripDatesPostgresRepository struct {
	db *sqlx.DB
}

func NewTripDatesPostgresRepository(db *sqlx.DB) *TripDatesPostgresRepository {
	return &TripDatesPostgresRepository{db: db}
}

func (r *TripDatesPostgresRepository) Store(ctx context.Context, tripDate entity.TripDate) (int64, error) {
	var tripDateID int64
	err := r.db.GetContext(ctx, &tripDateID, `
		INSERT INTO trip_dates (route_id, trip_date)
		VALUES ($1, $2)
		RETURNING trip_date_id
	`, tripDate.RouteID, tripDate.TripDate)
	if err != nil {
		return 0, fmt.Errorf("could not add trip date: %w", err)
	}
	return tripDateID, nil
}

func (r *TripDatesPostgresRepository) FindByRoute(ctx context.Context, routeID int64) ([]entity.TripDate, error) {
	var tripDates []entity.TripDate
	err := r.db.SelectContext(ctx, &tripDates, `
		SELECT trip_date_id, route_id, trip_date
		FROM trip_dates
		WHERE route_id = $1
		ORDER BY trip_date
	`, routeID)
	return tripDates, err
}
