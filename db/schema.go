package db

import (
	"fmt"

	"github.com/jmoiron/sqlx"
)

var schema = `
CREATE TABLE IF NOT EXISTS routes (
	route_id SERIAL PRIMARY KEY,
	departure_city VARCHAR(100) NOT NULL,
	destination_city VARCHAR(100) NOT NULL,
	price NUMERIC(10, 2) NOT NULL
);

CREATE TABLE IF NOT EXISTS buses (
	bus_id SERIAL PRIMARY KEY,
	bus_number VARCHAR(20) NOT NULL,
	route_id INT NOT NULL REFERENCES routes (route_id) ON DELETE CASCADE,
	departure_time VARCHAR(5) NOT NULL,
	total_seats INT NOT NULL CHECK (total_seats >= 0),
	available_seats INT NOT NULL,
	CHECK (available_seats >= 0 AND available_seats <= total_seats)
);

CREATE TABLE IF NOT EXISTS trip_dates (
	trip_date_id SERIAL PRIMARY KEY,
	route_id INT NOT NULL REFERENCES routes (route_id) ON DELETE CASCADE,
	trip_date DATE NOT NULL
);

CREATE TABLE IF NOT EXISTS clients (
	client_id SERIAL PRIMARY KEY,
	first_name VARCHAR(100) NOT NULL,
	last_name VARCHAR(100) NOT NULL,
	birth_date VARCHAR(10) NOT NULL,
	email VARCHAR(255) NOT NULL,
	phone VARCHAR(30) NOT NULL
);

CREATE TABLE IF NOT EXISTS tickets (
	ticket_id UUID PRIMARY KEY,
	client_id INT NOT NULL REFERENCES clients (client_id),
	bus_id INT NOT NULL REFERENCES buses (bus_id),
	seat_number INT NOT NULL,
	trip_date_id INT NOT NULL REFERENCES trip_dates (trip_date_id),
	departure_time VARCHAR(5) NOT NULL,
	price NUMERIC(10, 2) NOT NULL
);

CREATE TABLE IF NOT EXISTS booking_log (
	ticket_id UUID PRIMARY KEY,
	bus_number VARCHAR(20) NOT NULL,
	seat_number INT NOT NULL,
	price VARCHAR(20) NOT NULL,
	booked_at VARCHAR(35) NOT NULL,
	canceled_at VARCHAR(35)
);
`

func InitializeDatabaseSchema(db *sqlx.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("could not initialize database schema: %w", err)
	}
	return nil
}
