package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"bustickets/entity"
	"bustickets/pubsub/bus"
	"bustickets/pubsub/outbox"
)

// BookingsPostgresRepository is the ticket transaction engine. Booking and
// cancellation each run in a single serializable transaction so the seat
// count and the ticket rows can never diverge.
type BookingsPostgresRepository struct {
	db *sqlx.DB
}

func NewBookingsPostgresRepository(db *sqlx.DB) *BookingsPostgresRepository {
	return &BookingsPostgresRepository{db: db}
}

// Book inserts a ticket and decrements the bus's available seats as one
// atomic unit. The seat number is the available-seat count at booking time,
// a counter labeling rather than a seat map. Returns ErrNoAvailableSeats
// when the bus is full; no state is mutated in that case.
func (r *BookingsPostgresRepository) Book(ctx context.Context, request entity.BookingRequest) (ticketID string, err error) {
	tx, err := r.db.BeginTxx(ctx, &sql.TxOptions{
		Isolation: sql.LevelSerializable,
	})
	if err != nil {
		return "", fmt.Errorf("could not begin transaction: %w", err)
	}

	defer func() {
		if err != nil {
			rollbackErr := tx.Rollback()
			err = errors.Join(err, rollbackErr)
			return
		}
		err = tx.Commit()
	}()

	var busRow entity.Bus
	err = tx.GetContext(ctx, &busRow, `
		SELECT bus_id, bus_number, route_id, departure_time, total_seats, available_seats
		FROM buses
		WHERE bus_id = $1
		FOR UPDATE
	`, request.BusID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", entity.ErrNotFound
		}
		return "", fmt.Errorf("could not get bus: %w", err)
	}

	if busRow.AvailableSeats <= 0 {
		return "", entity.ErrNoAvailableSeats
	}

	ticket := entity.Ticket{
		TicketID:      uuid.NewString(),
		ClientID:      request.ClientID,
		BusID:         request.BusID,
		SeatNumber:    busRow.AvailableSeats,
		TripDateID:    request.TripDateID,
		DepartureTime: request.DepartureTime,
		Price:         request.Price,
	}

	_, err = tx.NamedExecContext(ctx, `
		INSERT INTO tickets (ticket_id, client_id, bus_id, seat_number, trip_date_id, departure_time, price)
		VALUES (:ticket_id, :client_id, :bus_id, :seat_number, :trip_date_id, :departure_time, :price)
	`, ticket)
	if err != nil {
		return "", fmt.Errorf("could not add ticket: %w", err)
	}

	_, err = tx.ExecContext(ctx, `
		UPDATE buses
		SET available_seats = available_seats - 1
		WHERE bus_id = $1
	`, request.BusID)
	if err != nil {
		return "", fmt.Errorf("could not decrement available seats: %w", err)
	}

	err = r.publish(ctx, tx, entity.TicketBooked{
		Header:     entity.NewEventHeaderWithIdempotencyKey(ticket.TicketID),
		TicketID:   ticket.TicketID,
		ClientID:   ticket.ClientID,
		BusID:      ticket.BusID,
		BusNumber:  busRow.BusNumber,
		SeatNumber: ticket.SeatNumber,
		Price:      ticket.Price,
	})
	if err != nil {
		return "", err
	}

	return ticket.TicketID, nil
}

// Cancel deletes the ticket and returns the seat to its bus as one atomic
// unit. Returns false without mutating anything when the ticket does not
// exist, so a second cancellation of the same id reports false.
func (r *BookingsPostgresRepository) Cancel(ctx context.Context, ticketID string) (found bool, err error) {
	tx, err := r.db.BeginTxx(ctx, &sql.TxOptions{
		Isolation: sql.LevelSerializable,
	})
	if err != nil {
		return false, fmt.Errorf("could not begin transaction: %w", err)
	}

	defer func() {
		if err != nil {
			rollbackErr := tx.Rollback()
			err = errors.Join(err, rollbackErr)
			return
		}
		err = tx.Commit()
	}()

	var ticket entity.Ticket
	err = tx.GetContext(ctx, &ticket, `
		SELECT ticket_id, client_id, bus_id, seat_number, trip_date_id, departure_time, price
		FROM tickets
		WHERE ticket_id = $1
		FOR UPDATE
	`, ticketID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			err = nil
			return false, nil
		}
		return false, fmt.Errorf("could not get ticket: %w", err)
	}

	_, err = tx.ExecContext(ctx, `
		DELETE FROM tickets
		WHERE ticket_id = $1
	`, ticketID)
	if err != nil {
		return false, fmt.Errorf("could not delete ticket: %w", err)
	}

	_, err = tx.ExecContext(ctx, `
		UPDATE buses
		SET available_seats = available_seats + 1
		WHERE bus_id = $1
	`, ticket.BusID)
	if err != nil {
		return false, fmt.Errorf("could not increment available seats: %w", err)
	}

	err = r.publish(ctx, tx, entity.TicketCanceled{
		Header:   entity.NewEventHeaderWithIdempotencyKey(ticket.TicketID),
		TicketID: ticket.TicketID,
		BusID:    ticket.BusID,
	})
	if err != nil {
		return false, err
	}

	return true, nil
}

func (r *BookingsPostgresRepository) publish(ctx context.Context, tx *sqlx.Tx, event any) error {
	outboxPublisher, err := outbox.NewPublisherForTx(ctx, tx)
	if err != nil {
		return fmt.Errorf("could not create outbox publisher: %w", err)
	}

	eventBus, err := bus.NewEventBus(outboxPublisher)
	if err != nil {
		return fmt.Errorf("could not create event bus: %w", err)
	}

	if err := eventBus.Publish(ctx, event); err != nil {
		return fmt.Errorf("could not publish event: %w", err)
	}

	return nil
}
