package store

import (
	"testing"

	"github.com/avialab/ticketmodule/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdd_DuplicateID(t *testing.T) {
	s := NewTicketStore()

	err := s.Add(domain.Ticket{ID: "t1", FlightID: "FL001", Status: domain.TicketStatusPurchased})
	require.NoError(t, err)

	err = s.Add(domain.Ticket{ID: "t1", FlightID: "FL002"})
	assert.ErrorIs(t, err, ErrAlreadyExists)

	got, err := s.Get("t1")
	require.NoError(t, err)
	assert.Equal(t, "FL001", got.FlightID, "original record kept")
}

func TestGet_NotFound(t *testing.T) {
	s := NewTicketStore()

	_, err := s.Get("missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdate_ReplacesWholeRecord(t *testing.T) {
	s := NewTicketStore()
	require.NoError(t, s.Add(domain.Ticket{ID: "t1", PassengerID: "P1", Status: domain.TicketStatusPurchased}))

	updated := domain.Ticket{ID: "t1", PassengerID: "P1", Status: domain.TicketStatusReturned}
	s.Update(updated)

	got, err := s.Get("t1")
	require.NoError(t, err)
	assert.Equal(t, updated, got)
}

func TestListPurchasedByFlight(t *testing.T) {
	s := NewTicketStore()
	require.NoError(t, s.Add(domain.Ticket{ID: "t1", FlightID: "FL001", Status: domain.TicketStatusPurchased}))
	require.NoError(t, s.Add(domain.Ticket{ID: "t2", FlightID: "FL001", Status: domain.TicketStatusReturned}))
	require.NoError(t, s.Add(domain.Ticket{ID: "t3", FlightID: "FL002", Status: domain.TicketStatusPurchased}))

	tickets := s.ListPurchasedByFlight("FL001")
	require.Len(t, tickets, 1)
	assert.Equal(t, "t1", tickets[0].ID)

	assert.Empty(t, s.ListPurchasedByFlight("FL999"))
}
