package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/avialab/ticketmodule/internal/domain"
)

// FlightsCache is an optional read-through cache for the flight list.
type FlightsCache interface {
	GetFlights(ctx context.Context) ([]domain.Flight, error)
	SetFlights(ctx context.Context, flights []domain.Flight) error
}

// TableClient talks to the flight-board service. The board is the source
// of truth for which flights are sellable and their seat maps.
type TableClient struct {
	httpClient *http.Client
	baseURL    string
	cache      FlightsCache
}

// ticketPurchaseInfo mirrors the flight-board response contract.
type ticketPurchaseInfo struct {
	FlightID        string     `json:"flightId"`
	AircraftID      string     `json:"aircraftId"`
	CityFrom        string     `json:"cityFrom"`
	CityTo          string     `json:"cityTo"`
	AvailableSeats  []seatInfo `json:"availableSeats"`
	TakeoffDateTime time.Time  `json:"takeoffDateTime"`
	LandingDateTime time.Time  `json:"landingDateTime"`
}

type seatInfo struct {
	SeatClass string `json:"seatClass"`
	SeatCount int    `json:"seatCount"`
}

type TableClientOption func(*TableClient)

func WithFlightsCache(cache FlightsCache) TableClientOption {
	return func(c *TableClient) {
		c.cache = cache
	}
}

func NewTableClient(baseURL string, timeout time.Duration, opts ...TableClientOption) *TableClient {
	client := &TableClient{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
	}
	for _, opt := range opts {
		opt(client)
	}
	return client
}

// ListAvailable fetches the flights currently open for sale. Cached
// results are served when present; cache errors fall through to the board.
func (c *TableClient) ListAvailable(ctx context.Context) ([]domain.Flight, error) {
	if c.cache != nil {
		if cached, err := c.cache.GetFlights(ctx); err == nil && cached != nil {
			return cached, nil
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/tickets/available", nil)
	if err != nil {
		return nil, fmt.Errorf("build flight board request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request flight board: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("flight board responded with status %d", resp.StatusCode)
	}

	var infos []ticketPurchaseInfo
	if err := json.NewDecoder(resp.Body).Decode(&infos); err != nil {
		return nil, fmt.Errorf("decode flight board response: %w", err)
	}

	flights := make([]domain.Flight, 0, len(infos))
	for _, info := range infos {
		flight := domain.Flight{
			ID:            info.FlightID,
			Direction:     fmt.Sprintf("%s -> %s", info.CityFrom, info.CityTo),
			DepartureTime: info.TakeoffDateTime,
			SeatsByClass:  make(map[string]int, len(info.AvailableSeats)),
		}
		for _, seat := range info.AvailableSeats {
			flight.SeatsByClass[seat.SeatClass] = seat.SeatCount
		}
		flights = append(flights, flight)
	}

	if c.cache != nil {
		_ = c.cache.SetFlights(ctx, flights)
	}
	return flights, nil
}
