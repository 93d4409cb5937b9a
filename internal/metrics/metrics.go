package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ticketmodule_http_requests_total",
		Help: "HTTP requests processed, by method, path and status.",
	}, []string{"method", "path", "status"})

	httpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "ticketmodule_http_request_duration_seconds",
		Help:    "HTTP request latency.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path"})

	TicketsPurchased = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ticketmodule_tickets_purchased_total",
		Help: "Tickets sold.",
	})

	TicketsReturned = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ticketmodule_tickets_returned_total",
		Help: "Tickets returned.",
	})

	PurchaseFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ticketmodule_purchase_failures_total",
		Help: "Rejected purchase attempts, by error code.",
	}, []string{"code"})
)

// GinMiddleware records request counts and latency per route.
func GinMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		httpRequestsTotal.WithLabelValues(c.Request.Method, path, strconv.Itoa(c.Writer.Status())).Inc()
		httpRequestDuration.WithLabelValues(c.Request.Method, path).Observe(time.Since(start).Seconds())
	}
}
