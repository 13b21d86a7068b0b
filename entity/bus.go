package entity

type Bus struct {
	BusID          int64  `json:"bus_id" db:"bus_id"`
	BusNumber      string `json:"bus_number" db:"bus_number"`
	RouteID        int64  `json:"route_id" db:"route_id"`
	DepartureTime  string `json:"departure_time" db:"departure_time"`
	TotalSeats     int    `json:"total_seats" db:"total_seats"`
	AvailableSeats int    `json:"available_seats" db:"available_seats"`
}

// AvailableBus is a row of the booking query: a bus with free seats on a
// concrete route and trip date, joined with the route price.
type AvailableBus struct {
	BusID          int64  `db:"bus_id"`
	BusNumber      string `db:"bus_number"`
	DepartureTime  string `db:"departure_time"`
	AvailableSeats int    `db:"available_seats"`
	TripDateID     int64  `db:"trip_date_id"`
	Price          string `db:"price"`
}
