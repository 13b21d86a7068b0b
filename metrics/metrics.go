package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// CommandsProcessed counts session commands by role and routed action.
	CommandsProcessed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "bustickets",
			Name:      "commands_processed_total",
			Help:      "The total number of session commands processed",
		},
		[]string{"role", "action"},
	)

	// BookingsMade counts successfully booked tickets.
	BookingsMade = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "bustickets",
			Name:      "bookings_made_total",
			Help:      "The total number of tickets booked",
		},
	)

	// BookingsFailed counts booking attempts rejected for lack of seats.
	BookingsFailed = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "bustickets",
			Name:      "bookings_failed_total",
			Help:      "The total number of booking attempts that found no seat",
		},
	)

	// TicketsCanceled counts successful cancellations.
	TicketsCanceled = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "bustickets",
			Name:      "tickets_canceled_total",
			Help:      "The total number of tickets canceled",
		},
	)

	// MessagesProcessed The total number of processed messages (counter)
	MessagesProcessed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "messages",
			Name:      "processed_total",
			Help:      "The total number of processed messages",
		},
		[]string{"topic", "handler"},
	)

	// MessagesProcessingFailed total number of message processing failures (counter)
	MessagesProcessingFailed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "messages",
			Name:      "processing_failed_total",
			Help:      "The total number of message processing failures",
		},
		[]string{"topic", "handler"},
	)

	// MessagesProcessingDuration The total time spent processing messages (summary with quantiles 0.5, 0.9, and 0.99)
	MessagesProcessingDuration = promauto.NewSummaryVec(
		prometheus.SummaryOpts{
			Namespace:  "messages",
			Name:       "processing_duration_seconds",
			Help:       "The total time spent processing messages",
			Objectives: map[float64]float64{0.5: 0.05, 0.9: 0.01, 0.99: 0.001},
		},
		[]string{"topic", "handler"},
	)
)
