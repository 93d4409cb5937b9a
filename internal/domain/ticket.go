package domain

import "time"

type TicketStatus string

const (
	TicketStatusPurchased TicketStatus = "PURCHASED"
	TicketStatusReturned  TicketStatus = "RETURNED"
)

const (
	SeatClassEconomy  = "economy"
	SeatClassBusiness = "business"
)

// Baggage is carried as-is on the wire; the upstream contract accepts
// exactly these two literals.
const (
	BaggageYes = "да"
	BaggageNo  = "нет"
)

type Ticket struct {
	ID            string       `json:"ticket_id"`
	PassengerID   string       `json:"passenger_id"`
	FlightID      string       `json:"flight_id"`
	SeatClass     string       `json:"seat_class"`
	MealType      string       `json:"meal_type,omitempty"`
	Baggage       string       `json:"baggage"`
	Status        TicketStatus `json:"status"`
	Direction     string       `json:"direction"`
	DepartureTime time.Time    `json:"departure_time"`
}

// PassengerInfo is the per-ticket view handed to the check-in module.
type PassengerInfo struct {
	PassengerID string `json:"passenger_id"`
	SeatClass   string `json:"seat_class"`
	MealType    string `json:"meal_type,omitempty"`
	Baggage     string `json:"baggage"`
}
