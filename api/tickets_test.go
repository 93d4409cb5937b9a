package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/avialab/ticketmodule/internal/apperrors"
	"github.com/avialab/ticketmodule/internal/domain"
	"github.com/avialab/ticketmodule/internal/service/ticket"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockTicketUseCase is a mock implementation of ticket.TicketUseCase
type MockTicketUseCase struct {
	mock.Mock
}

func (m *MockTicketUseCase) Buy(ctx context.Context, input ticket.BuyTicketInput) (*ticket.BuyTicketResult, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ticket.BuyTicketResult), args.Error(1)
}

func (m *MockTicketUseCase) Cancel(ctx context.Context, ticketID, passengerID string) (*ticket.CancelTicketResult, error) {
	args := m.Called(ctx, ticketID, passengerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ticket.CancelTicketResult), args.Error(1)
}

func (m *MockTicketUseCase) Status(ctx context.Context, ticketID string) (*ticket.TicketStatusResult, error) {
	args := m.Called(ctx, ticketID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ticket.TicketStatusResult), args.Error(1)
}

func (m *MockTicketUseCase) Details(ctx context.Context, ticketID string) (*domain.Ticket, error) {
	args := m.Called(ctx, ticketID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Ticket), args.Error(1)
}

func (m *MockTicketUseCase) PassengersForFlight(ctx context.Context, flightID string) ([]domain.PassengerInfo, error) {
	args := m.Called(ctx, flightID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PassengerInfo), args.Error(1)
}

func (m *MockTicketUseCase) Availability(ctx context.Context, flightID string) (map[string]int, error) {
	args := m.Called(ctx, flightID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]int), args.Error(1)
}

type MockFlightCatalog struct {
	mock.Mock
}

func (m *MockFlightCatalog) ListAvailable(ctx context.Context) ([]domain.Flight, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Flight), args.Error(1)
}

type MockMealCatalog struct {
	mock.Mock
}

func (m *MockMealCatalog) ListMealTypes(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func newTestHandler() (*TicketHandler, *MockTicketUseCase, *MockFlightCatalog, *MockMealCatalog) {
	service := &MockTicketUseCase{}
	flights := &MockFlightCatalog{}
	meals := &MockMealCatalog{}
	return NewTicketHandler(service, flights, meals), service, flights, meals
}

func TestTicketHandler_buy(t *testing.T) {
	handler, service, _, _ := newTestHandler()

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	input := ticket.BuyTicketInput{
		PassengerID: "P1",
		FlightID:    "FL001",
		SeatClass:   "economy",
		MealType:    "Standard",
		Baggage:     domain.BaggageYes,
	}
	body, _ := json.Marshal(input)
	c.Request = httptest.NewRequest("POST", "/buy", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	result := &ticket.BuyTicketResult{
		TicketID:      "ticket123",
		Direction:     "City A -> City B",
		DepartureTime: time.Date(2026, 3, 14, 10, 30, 0, 0, time.UTC),
		Status:        domain.TicketStatusPurchased,
	}
	service.On("Buy", c.Request.Context(), input).Return(result, nil)

	handler.buy(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var response ticket.BuyTicketResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "ticket123", response.TicketID)
	assert.Equal(t, domain.TicketStatusPurchased, response.Status)

	service.AssertExpectations(t)
}

func TestTicketHandler_buy_ConflictMapsTo409(t *testing.T) {
	handler, service, _, _ := newTestHandler()

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	input := ticket.BuyTicketInput{
		PassengerID: "P1",
		FlightID:    "FL001",
		SeatClass:   "economy",
		MealType:    "Standard",
		Baggage:     domain.BaggageNo,
	}
	body, _ := json.Marshal(input)
	c.Request = httptest.NewRequest("POST", "/buy", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	service.On("Buy", c.Request.Context(), input).Return(nil, apperrors.Conflict("no seats available in the requested class"))

	handler.buy(c)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), apperrors.CodeConflict)
}

func TestTicketHandler_buy_EmptyFlightListsFlights(t *testing.T) {
	handler, service, flights, _ := newTestHandler()

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	body, _ := json.Marshal(ticket.BuyTicketInput{PassengerID: "P1"})
	c.Request = httptest.NewRequest("POST", "/buy", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	flights.On("ListAvailable", c.Request.Context()).Return([]domain.Flight{
		{ID: "FL001", Direction: "City A -> City B"},
	}, nil)

	handler.buy(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "availableFlights")
	service.AssertNotCalled(t, "Buy", mock.Anything, mock.Anything)
}

func TestTicketHandler_buy_EmptyMealListsOptions(t *testing.T) {
	handler, service, _, meals := newTestHandler()

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	body, _ := json.Marshal(ticket.BuyTicketInput{PassengerID: "P1", FlightID: "FL001", SeatClass: "economy", Baggage: domain.BaggageYes})
	c.Request = httptest.NewRequest("POST", "/buy", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	meals.On("ListMealTypes", c.Request.Context()).Return([]string{"Standard", "Vegan"}, nil)

	handler.buy(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "availableMealOptions")
	service.AssertNotCalled(t, "Buy", mock.Anything, mock.Anything)
}

func TestTicketHandler_cancel(t *testing.T) {
	handler, service, _, _ := newTestHandler()

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	c.Params = gin.Params{{Key: "ticketId", Value: "ticket123"}}
	body, _ := json.Marshal(cancelTicketRequest{PassengerID: "P1"})
	c.Request = httptest.NewRequest("POST", "/cancel/ticket123", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	service.On("Cancel", c.Request.Context(), "ticket123", "P1").
		Return(&ticket.CancelTicketResult{TicketID: "ticket123", Status: domain.TicketStatusReturned}, nil)

	handler.cancel(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var response ticket.CancelTicketResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, domain.TicketStatusReturned, response.Status)
}

func TestTicketHandler_cancel_UnprocessableMapsTo422(t *testing.T) {
	handler, service, _, _ := newTestHandler()

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	c.Params = gin.Params{{Key: "ticketId", Value: "ticket123"}}
	body, _ := json.Marshal(cancelTicketRequest{PassengerID: "P1"})
	c.Request = httptest.NewRequest("POST", "/cancel/ticket123", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	service.On("Cancel", c.Request.Context(), "ticket123", "P1").
		Return(nil, apperrors.Unprocessable("ticket has already been returned"))

	handler.cancel(c)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestTicketHandler_status_NotFound(t *testing.T) {
	handler, service, _, _ := newTestHandler()

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	c.Params = gin.Params{{Key: "ticketId", Value: "missing"}}
	c.Request = httptest.NewRequest("GET", "/status/missing", nil)

	service.On("Status", c.Request.Context(), "missing").Return(nil, apperrors.NotFound("ticket not found"))

	handler.status(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestTicketHandler_passengers(t *testing.T) {
	handler, service, _, _ := newTestHandler()

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	c.Params = gin.Params{{Key: "flightId", Value: "FL001"}}
	c.Request = httptest.NewRequest("GET", "/flight/FL001/passengers", nil)

	service.On("PassengersForFlight", c.Request.Context(), "FL001").Return([]domain.PassengerInfo{
		{PassengerID: "P1", SeatClass: "economy", Baggage: domain.BaggageYes},
	}, nil)

	handler.passengers(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var response []domain.PassengerInfo
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Len(t, response, 1)
	assert.Equal(t, "P1", response[0].PassengerID)
}

func TestTicketHandler_passengers_EmptyIs404(t *testing.T) {
	handler, service, _, _ := newTestHandler()

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	c.Params = gin.Params{{Key: "flightId", Value: "FL999"}}
	c.Request = httptest.NewRequest("GET", "/flight/FL999/passengers", nil)

	service.On("PassengersForFlight", c.Request.Context(), "FL999").Return([]domain.PassengerInfo{}, nil)

	handler.passengers(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestTicketHandler_availability(t *testing.T) {
	handler, service, _, _ := newTestHandler()

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	c.Params = gin.Params{{Key: "flightId", Value: "FL001"}}
	c.Request = httptest.NewRequest("GET", "/flight/FL001/availability", nil)

	service.On("Availability", c.Request.Context(), "FL001").Return(map[string]int{"economy": 3}, nil)

	handler.availability(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"economy":3`)
}
