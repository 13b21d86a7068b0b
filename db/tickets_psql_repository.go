package db

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"bustickets/entity"
)

type TicketsPostgresRepository struct {
	db *sqlx.DB
}

func NewTicketsPostgresRepository(db *sqlx.DB) *TicketsPostgresRepository {
	return &TicketsPostgresRepository{db: db}
}

func (r *TicketsPostgresRepository) Get(ctx context.Context, ticketID string) (entity.Ticket, error) {
	var ticket entity.Ticket
	err := r.db.GetContext(ctx, &ticket, `
		SELECT ticket_id, client_id, bus_id, seat_number, trip_date_id, departure_time, price
		FROM tickets
		WHERE ticket_id = $1
	`, ticketID)
	if errors.Is(err, sql.ErrNoRows) {
		return entity.Ticket{}, entity.ErrNotFound
	}
	return ticket, err
}

func (r *TicketsPostgresRepository) FindAll(ctx context.Context) ([]entity.Ticket, error) {
	var tickets []entity.Ticket
	err := r.db.SelectContext(ctx, &tickets, `
		SELECT ticket_id, client_id, bus_id, seat_number, trip_date_id, departure_time, price
		FROM tickets
	`)
	return tickets, err
}

// CountByBus returns the number of live tickets held against the bus.
func (r *TicketsPostgresRepository) CountByBus(ctx context.Context, busID int64) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count, `
		SELECT COUNT(*)
		FROM tickets
		WHERE bus_id = $1
	`, busID)
	return count, err
}
