package event

import (
	"context"

	"bustickets/entity"
)

type BookingLog interface {
	OnTicketBooked(ctx context.Context, event *entity.TicketBooked) error
	OnTicketCanceled(ctx context.Context, event *entity.TicketCanceled) error
}

type Handler struct {
	bookingLog BookingLog
}

func NewHandler(bookingLog BookingLog) Handler {
	if bookingLog == nil {
		panic("missing bookingLog")
	}

	return Handler{
		bookingLog: bookingLog,
	}
}
