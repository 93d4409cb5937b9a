package store

import (
	"errors"
	"sync"

	"github.com/avialab/ticketmodule/internal/domain"
)

var (
	ErrAlreadyExists = errors.New("ticket already exists")
	ErrNotFound      = errors.New("ticket not found")
)

// TicketStore keeps tickets in memory for the process lifetime. Tickets
// are stored and returned by value, so an Update is always a whole-record
// replace and readers never observe a half-written ticket.
type TicketStore struct {
	mu      sync.RWMutex
	tickets map[string]domain.Ticket
}

func NewTicketStore() *TicketStore {
	return &TicketStore{tickets: make(map[string]domain.Ticket)}
}

func (s *TicketStore) Add(ticket domain.Ticket) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.tickets[ticket.ID]; ok {
		return ErrAlreadyExists
	}
	s.tickets[ticket.ID] = ticket
	return nil
}

func (s *TicketStore) Get(ticketID string) (domain.Ticket, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ticket, ok := s.tickets[ticketID]
	if !ok {
		return domain.Ticket{}, ErrNotFound
	}
	return ticket, nil
}

// Update upserts the ticket by id. No optimistic concurrency check is
// applied at this layer; callers serialize their own read-modify-write.
func (s *TicketStore) Update(ticket domain.Ticket) {
	s.mu.Lock()
	s.tickets[ticket.ID] = ticket
	s.mu.Unlock()
}

// ListPurchasedByFlight returns the tickets currently in PURCHASED status
// for the flight. Order is not significant.
func (s *TicketStore) ListPurchasedByFlight(flightID string) []domain.Ticket {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var result []domain.Ticket
	for _, ticket := range s.tickets {
		if ticket.FlightID == flightID && ticket.Status == domain.TicketStatusPurchased {
			result = append(result, ticket)
		}
	}
	return result
}
