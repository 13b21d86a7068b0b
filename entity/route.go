package entity

import "time"

type Route struct {
	RouteID         int64  `json:"route_id" db:"route_id"`
	DepartureCity   string `json:"departure_city" db:"departure_city"`
	DestinationCity string `json:"destination_city" db:"destination_city"`
	Price           string `json:"price" db:"price"`
}

type TripDate struct {
	TripDateID int64     `json:"trip_date_id" db:"trip_date_id"`
	RouteID    int64     `json:"route_id" db:"route_id"`
	TripDate   time.Time `json:"trip_date" db:"trip_date"`
}
