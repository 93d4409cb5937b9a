package ticket

import (
	"context"
	"fmt"
	"time"

	"github.com/avialab/ticketmodule/internal/apperrors"
	"github.com/avialab/ticketmodule/internal/domain"
	"github.com/avialab/ticketmodule/internal/inventory"
	"github.com/avialab/ticketmodule/internal/store"
	"github.com/google/uuid"
)

type TicketUseCase interface {
	Buy(ctx context.Context, input BuyTicketInput) (*BuyTicketResult, error)
	Cancel(ctx context.Context, ticketID, passengerID string) (*CancelTicketResult, error)
	Status(ctx context.Context, ticketID string) (*TicketStatusResult, error)
	Details(ctx context.Context, ticketID string) (*domain.Ticket, error)
	PassengersForFlight(ctx context.Context, flightID string) ([]domain.PassengerInfo, error)
	Availability(ctx context.Context, flightID string) (map[string]int, error)
}

// FlightCatalog is the flight-board upstream: the authoritative list of
// flights currently open for sale.
type FlightCatalog interface {
	ListAvailable(ctx context.Context) ([]domain.Flight, error)
}

// MealCatalog is the catering upstream.
type MealCatalog interface {
	ListMealTypes(ctx context.Context) ([]string, error)
}

// AuditSink records operational events and the per-ticket audit trail.
// Recording is best-effort and must never affect the booking result.
type AuditSink interface {
	RecordEvent(source, level, message string)
	RecordAudit(ticketID, action string)
}

type TicketService struct {
	tickets   *store.TicketStore
	inventory *inventory.SeatInventory
	flights   FlightCatalog
	meals     MealCatalog
	audit     AuditSink
}

type BuyTicketInput struct {
	PassengerID string `json:"passenger_id"`
	FlightID    string `json:"flight_id"`
	SeatClass   string `json:"seat_class"`
	MealType    string `json:"meal_type"`
	Baggage     string `json:"baggage"`
}

type BuyTicketResult struct {
	TicketID      string              `json:"ticket_id"`
	Direction     string              `json:"direction"`
	DepartureTime time.Time           `json:"departure_time"`
	Status        domain.TicketStatus `json:"status"`
}

type CancelTicketResult struct {
	TicketID string              `json:"ticket_id"`
	Status   domain.TicketStatus `json:"status"`
}

type TicketStatusResult struct {
	TicketID string              `json:"ticket_id"`
	Status   domain.TicketStatus `json:"status"`
}

func NewTicketService(
	tickets *store.TicketStore,
	seatInventory *inventory.SeatInventory,
	flights FlightCatalog,
	meals MealCatalog,
	audit AuditSink,
) *TicketService {
	return &TicketService{
		tickets:   tickets,
		inventory: seatInventory,
		flights:   flights,
		meals:     meals,
		audit:     audit,
	}
}

// Buy runs the purchase pipeline. The step order is a contract: callers
// distinguish error codes, so the first failing step decides the outcome.
func (s *TicketService) Buy(ctx context.Context, input BuyTicketInput) (*BuyTicketResult, error) {
	if input.PassengerID == "" || input.FlightID == "" || input.SeatClass == "" || input.Baggage == "" {
		return nil, apperrors.InvalidInput("not all required fields are filled in")
	}

	if input.Baggage != domain.BaggageYes && input.Baggage != domain.BaggageNo {
		return nil, apperrors.InvalidInput(fmt.Sprintf("invalid baggage value, only '%s' or '%s' is accepted", domain.BaggageYes, domain.BaggageNo))
	}

	// The flight board gates every sale: if it is down, no purchase.
	availableFlights, err := s.flights.ListAvailable(ctx)
	if err != nil {
		s.audit.RecordEvent("TicketService", "ERROR", fmt.Sprintf("flight board request failed: %v", err))
		return nil, apperrors.Unavailable("flight board is unavailable, ticket purchase is not possible", err)
	}
	if len(availableFlights) == 0 {
		return nil, apperrors.Unavailable("no flights are open for sale", nil)
	}

	var flight *domain.Flight
	for i := range availableFlights {
		if availableFlights[i].ID == input.FlightID {
			flight = &availableFlights[i]
			break
		}
	}
	if flight == nil {
		return nil, apperrors.InvalidInput("the selected flight is not in the list of available flights")
	}

	s.inventory.InitializeFlight(flight.ID, flight.SeatsByClass)

	// Reserve before the slower catering round trip so concurrent buyers
	// cannot race us for the same seat.
	if !s.inventory.TryReserveSeat(input.FlightID, input.SeatClass) {
		return nil, apperrors.Conflict("no seats available in the requested class")
	}

	mealTypes, err := s.meals.ListMealTypes(ctx)
	if err != nil {
		s.audit.RecordEvent("TicketService", "ERROR", fmt.Sprintf("catering request failed: %v", err))
		return nil, apperrors.Unavailable("could not fetch meal options, ticket purchase is not possible", err)
	}
	if len(mealTypes) == 0 {
		return nil, apperrors.Unavailable("catering returned no meal options", nil)
	}

	if input.MealType != "" && !contains(mealTypes, input.MealType) {
		return nil, apperrors.InvalidInput(fmt.Sprintf("meal type '%s' is not offered on this flight", input.MealType))
	}

	for _, existing := range s.tickets.ListPurchasedByFlight(input.FlightID) {
		if existing.PassengerID == input.PassengerID {
			return nil, apperrors.Conflict(fmt.Sprintf("passenger already holds a ticket for this flight (ticket id: %s)", existing.ID))
		}
	}

	// NOTE: a seat reserved above is not released when the duplicate or
	// registration check fails. This permanently shrinks availability and
	// is kept for compatibility with the legacy module.
	if s.inventory.IsRegistrationStarted(input.FlightID) {
		return nil, apperrors.Conflict("registration for this flight has already started, purchase is not possible")
	}

	ticket := domain.Ticket{
		ID:            uuid.NewString(),
		PassengerID:   input.PassengerID,
		FlightID:      input.FlightID,
		SeatClass:     input.SeatClass,
		MealType:      input.MealType,
		Baggage:       input.Baggage,
		Status:        domain.TicketStatusPurchased,
		Direction:     flight.Direction,
		DepartureTime: flight.DepartureTime,
	}
	if err := s.tickets.Add(ticket); err != nil {
		// uuid collision; practically unreachable
		return nil, apperrors.Conflict("ticket id collision, retry the purchase")
	}

	s.audit.RecordEvent("TicketService", "INFO", fmt.Sprintf("ticket %s purchased", ticket.ID))
	s.audit.RecordAudit(ticket.ID, "purchased")

	return &BuyTicketResult{
		TicketID:      ticket.ID,
		Direction:     ticket.Direction,
		DepartureTime: ticket.DepartureTime,
		Status:        ticket.Status,
	}, nil
}

func (s *TicketService) Cancel(ctx context.Context, ticketID, passengerID string) (*CancelTicketResult, error) {
	if ticketID == "" || passengerID == "" {
		return nil, apperrors.InvalidInput("ticket id and passenger id are required")
	}

	ticket, err := s.tickets.Get(ticketID)
	// Ownership mismatch is reported exactly like an unknown ticket so
	// the response does not leak who holds it.
	if err != nil || ticket.PassengerID != passengerID {
		return nil, apperrors.NotFound("ticket not found or does not belong to this passenger")
	}

	if s.inventory.IsRegistrationStarted(ticket.FlightID) {
		return nil, apperrors.Conflict("refund is not possible, registration has already started")
	}

	if ticket.Status == domain.TicketStatusReturned {
		return nil, apperrors.Unprocessable("ticket has already been returned")
	}

	ticket.Status = domain.TicketStatusReturned
	s.tickets.Update(ticket)
	s.inventory.ReleaseSeat(ticket.FlightID, ticket.SeatClass)

	s.audit.RecordEvent("TicketService", "INFO", fmt.Sprintf("ticket %s returned", ticket.ID))
	s.audit.RecordAudit(ticket.ID, "returned")

	return &CancelTicketResult{TicketID: ticket.ID, Status: ticket.Status}, nil
}

func (s *TicketService) Status(ctx context.Context, ticketID string) (*TicketStatusResult, error) {
	ticket, err := s.tickets.Get(ticketID)
	if err != nil {
		return nil, apperrors.NotFound("ticket not found")
	}
	return &TicketStatusResult{TicketID: ticket.ID, Status: ticket.Status}, nil
}

func (s *TicketService) Details(ctx context.Context, ticketID string) (*domain.Ticket, error) {
	ticket, err := s.tickets.Get(ticketID)
	if err != nil {
		return nil, apperrors.NotFound("ticket not found")
	}
	return &ticket, nil
}

// PassengersForFlight is a side-effecting read: the first call for a
// flight permanently closes it to further purchases and refunds, modeling
// the moment check-in begins.
func (s *TicketService) PassengersForFlight(ctx context.Context, flightID string) ([]domain.PassengerInfo, error) {
	s.inventory.MarkRegistrationStarted(flightID)
	s.audit.RecordEvent("TicketService", "INFO", fmt.Sprintf("registration marked as started for flight %s", flightID))

	tickets := s.tickets.ListPurchasedByFlight(flightID)
	passengers := make([]domain.PassengerInfo, 0, len(tickets))
	for _, t := range tickets {
		passengers = append(passengers, domain.PassengerInfo{
			PassengerID: t.PassengerID,
			SeatClass:   t.SeatClass,
			MealType:    t.MealType,
			Baggage:     t.Baggage,
		})
	}
	return passengers, nil
}

func (s *TicketService) Availability(ctx context.Context, flightID string) (map[string]int, error) {
	return s.inventory.Availability(flightID), nil
}

func contains(items []string, value string) bool {
	for _, item := range items {
		if item == value {
			return true
		}
	}
	return false
}

var _ TicketUseCase = (*TicketService)(nil)
