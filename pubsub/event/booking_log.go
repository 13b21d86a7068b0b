package event

import (
	"context"

	"github.com/ThreeDotsLabs/watermill/components/cqrs"

	"bustickets/entity"
	"bustickets/pkg/log"
)

func (h Handler) TicketBookedHandler() cqrs.EventHandler {
	return cqrs.NewEventHandler(
		"booking_log.OnTicketBooked",
		func(ctx context.Context, event *entity.TicketBooked) error {
			log.FromContext(ctx).WithField("ticket_id", event.TicketID).Info("Recording booked ticket")
			return h.bookingLog.OnTicketBooked(ctx, event)
		},
	)
}

func (h Handler) TicketCanceledHandler() cqrs.EventHandler {
	return cqrs.NewEventHandler(
		"booking_log.OnTicketCanceled",
		func(ctx context.Context, event *entity.TicketCanceled) error {
			log.FromContext(ctx).WithField("ticket_id", event.TicketID).Info("Recording canceled ticket")
			return h.bookingLog.OnTicketCanceled(ctx, event)
		},
	)
}
