package entity

import (
	"time"

	"github.com/google/uuid"
)

type EventHeader struct {
	ID             string    `json:"id"`
	PublishedAt    time.Time `json:"published_at"`
	IdempotencyKey string    `json:"idempotency_key"`
}

func NewEventHeader() EventHeader {
	return EventHeader{
		ID:          uuid.NewString(),
		PublishedAt: time.Now().UTC(),
	}
}

func NewEventHeaderWithIdempotencyKey(idempotencyKey string) EventHeader {
	return EventHeader{
		ID:             uuid.NewString(),
		PublishedAt:    time.Now().UTC(),
		IdempotencyKey: idempotencyKey,
	}
}

type TicketBooked struct {
	Header     EventHeader `json:"header"`
	TicketID   string      `json:"ticket_id"`
	ClientID   int64       `json:"client_id"`
	BusID      int64       `json:"bus_id"`
	BusNumber  string      `json:"bus_number"`
	SeatNumber int         `json:"seat_number"`
	Price      string      `json:"price"`
}

type TicketCanceled struct {
	Header   EventHeader `json:"header"`
	TicketID string      `json:"ticket_id"`
	BusID    int64       `json:"bus_id"`
}
