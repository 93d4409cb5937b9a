package catalog

import (
	"context"
	"time"

	"github.com/avialab/ticketmodule/internal/domain"
)

// TableStub replaces the flight board in local runs and demos.
type TableStub struct{}

func (TableStub) ListAvailable(ctx context.Context) ([]domain.Flight, error) {
	return []domain.Flight{
		{
			ID:            "FL001",
			Direction:     "City A -> City B",
			DepartureTime: time.Now().UTC().Add(2 * time.Hour),
			SeatsByClass:  map[string]int{"economy": 50, "business": 10},
		},
		{
			ID:            "FL002",
			Direction:     "City C -> City D",
			DepartureTime: time.Now().UTC().Add(3 * time.Hour),
			SeatsByClass:  map[string]int{"economy": 60, "business": 15},
		},
	}, nil
}

// CateringStub replaces the catering service in local runs and demos.
type CateringStub struct{}

func (CateringStub) ListMealTypes(ctx context.Context) ([]string, error) {
	return []string{"Standard", "Vegetarian", "Vegan", "Gluten-Free"}, nil
}
