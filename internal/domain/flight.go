package domain

import "time"

// Flight is a sellable flight as reported by the flight board.
type Flight struct {
	ID            string         `json:"flight_id"`
	Direction     string         `json:"direction"`
	DepartureTime time.Time      `json:"departure_time"`
	SeatsByClass  map[string]int `json:"seats_by_class"`
}
