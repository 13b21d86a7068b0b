package entity

import "errors"

var (
	ErrNoAvailableSeats = errors.New("no available seats")
	ErrNotFound         = errors.New("not found")
)
