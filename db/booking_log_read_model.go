package db

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"

	"bustickets/entity"
)

// BookingLogReadModel projects booking events into a flat log consumed by
// the ops HTTP surface. Handlers are idempotent: redelivered events do not
// duplicate or reorder rows.
type BookingLogReadModel struct {
	db *sqlx.DB
}

func NewBookingLogReadModel(db *sqlx.DB) *BookingLogReadModel {
	return &BookingLogReadModel{db: db}
}

func (m *BookingLogReadModel) OnTicketBooked(ctx context.Context, event *entity.TicketBooked) error {
	_, err := m.db.ExecContext(ctx, `
		INSERT INTO booking_log (ticket_id, bus_number, seat_number, price, booked_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT DO NOTHING
	`, event.TicketID, event.BusNumber, event.SeatNumber, event.Price, event.Header.PublishedAt.Format(time.RFC3339))
	return err
}

func (m *BookingLogReadModel) OnTicketCanceled(ctx context.Context, event *entity.TicketCanceled) error {
	_, err := m.db.ExecContext(ctx, `
		UPDATE booking_log
		SET canceled_at = $2
		WHERE ticket_id = $1 AND canceled_at IS NULL
	`, event.TicketID, event.Header.PublishedAt.Format(time.RFC3339))
	return err
}

func (m *BookingLogReadModel) AllBookings(ctx context.Context) ([]entity.BookingLogEntry, error) {
	var entries []entity.BookingLogEntry
	err := m.db.SelectContext(ctx, &entries, `
		SELECT ticket_id, bus_number, seat_number, price, booked_at, canceled_at
		FROM booking_log
		ORDER BY booked_at
	`)
	return entries, err
}
