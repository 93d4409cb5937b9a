package api

import (
	"net/http"

	"github.com/avialab/ticketmodule/internal/apperrors"
	"github.com/avialab/ticketmodule/internal/metrics"
	"github.com/avialab/ticketmodule/internal/service/ticket"
	"github.com/gin-gonic/gin"
)

type TicketHandler struct {
	service ticket.TicketUseCase
	flights ticket.FlightCatalog
	meals   ticket.MealCatalog
}

type cancelTicketRequest struct {
	PassengerID string `json:"passenger_id"`
}

func NewTicketHandler(service ticket.TicketUseCase, flights ticket.FlightCatalog, meals ticket.MealCatalog) *TicketHandler {
	return &TicketHandler{service: service, flights: flights, meals: meals}
}

func (h *TicketHandler) Register(router *gin.RouterGroup) {
	router.POST("/buy", h.buy)
	router.POST("/cancel/:ticketId", h.cancel)
	router.GET("/status/:ticketId", h.status)
	router.GET("/details/:ticketId", h.details)
	router.GET("/flight/:flightId/passengers", h.passengers)
	router.GET("/flight/:flightId/availability", h.availability)
}

func (h *TicketHandler) buy(c *gin.Context) {
	var req ticket.BuyTicketInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	// Convenience branches inherited from the original API: an empty
	// flight id asks for the flight list, an empty meal type for the
	// meal options.
	if req.FlightID == "" {
		flights, err := h.flights.ListAvailable(c.Request.Context())
		if err != nil || len(flights) == 0 {
			c.JSON(http.StatusNotFound, gin.H{"message": "no flights available"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"message":          "choose one of the available flights before buying",
			"availableFlights": flights,
		})
		return
	}
	if req.MealType == "" {
		meals, err := h.meals.ListMealTypes(c.Request.Context())
		if err != nil || len(meals) == 0 {
			c.JSON(http.StatusNotFound, gin.H{"message": "no meal options available"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"message":              "choose a meal type from the available options",
			"availableMealOptions": meals,
		})
		return
	}

	result, err := h.service.Buy(c.Request.Context(), req)
	if err != nil {
		if appErr := apperrors.From(err); appErr != nil {
			metrics.PurchaseFailures.WithLabelValues(appErr.Code).Inc()
		}
		respondError(c, err)
		return
	}

	metrics.TicketsPurchased.Inc()
	c.JSON(http.StatusOK, result)
}

func (h *TicketHandler) cancel(c *gin.Context) {
	var req cancelTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	result, err := h.service.Cancel(c.Request.Context(), c.Param("ticketId"), req.PassengerID)
	if err != nil {
		respondError(c, err)
		return
	}

	metrics.TicketsReturned.Inc()
	c.JSON(http.StatusOK, result)
}

func (h *TicketHandler) status(c *gin.Context) {
	result, err := h.service.Status(c.Request.Context(), c.Param("ticketId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *TicketHandler) details(c *gin.Context) {
	result, err := h.service.Details(c.Request.Context(), c.Param("ticketId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *TicketHandler) passengers(c *gin.Context) {
	passengers, err := h.service.PassengersForFlight(c.Request.Context(), c.Param("flightId"))
	if err != nil {
		respondError(c, err)
		return
	}
	if len(passengers) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "no passengers found or unknown flight"})
		return
	}
	c.JSON(http.StatusOK, passengers)
}

func (h *TicketHandler) availability(c *gin.Context) {
	seats, err := h.service.Availability(c.Request.Context(), c.Param("flightId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"flight_id": c.Param("flightId"), "seats": seats})
}

func respondError(c *gin.Context, err error) {
	if appErr := apperrors.From(err); appErr != nil {
		c.JSON(appErr.StatusCode(), gin.H{"code": appErr.Code, "message": appErr.Message})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
}
