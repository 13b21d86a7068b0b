package entity

type Ticket struct {
	TicketID      string `json:"ticket_id" db:"ticket_id"`
	ClientID      int64  `json:"client_id" db:"client_id"`
	BusID         int64  `json:"bus_id" db:"bus_id"`
	SeatNumber    int    `json:"seat_number" db:"seat_number"`
	TripDateID    int64  `json:"trip_date_id" db:"trip_date_id"`
	DepartureTime string `json:"departure_time" db:"departure_time"`
	Price         string `json:"price" db:"price"`
}

// BookingRequest carries everything the booking transaction needs besides
// the seat number, which is assigned inside the transaction.
type BookingRequest struct {
	ClientID      int64
	BusID         int64
	TripDateID    int64
	DepartureTime string
	Price         string
}

// BookingLogEntry is a read-model row built from booking events, used by the
// ops HTTP surface. It is never written by the session flows directly.
type BookingLogEntry struct {
	TicketID   string  `json:"ticket_id" db:"ticket_id"`
	BusNumber  string  `json:"bus_number" db:"bus_number"`
	SeatNumber int     `json:"seat_number" db:"seat_number"`
	Price      string  `json:"price" db:"price"`
	BookedAt   string  `json:"booked_at" db:"booked_at"`
	CanceledAt *string `json:"canceled_at" db:"canceled_at"`
}
