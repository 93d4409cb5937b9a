package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/avialab/ticketmodule/api"
	"github.com/avialab/ticketmodule/config"
	"github.com/avialab/ticketmodule/internal/metrics"
	"github.com/avialab/ticketmodule/internal/service/ticket"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Run starts the HTTP server and blocks until the context is canceled or
// the server fails.
func Run(ctx context.Context, cfg *config.Config, svc ticket.TicketUseCase, flights ticket.FlightCatalog, meals ticket.MealCatalog, auditTrail api.AuditReader) error {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.Default())
	router.Use(metrics.GinMiddleware())

	handler := api.NewTicketHandler(svc, flights, meals)
	handler.Register(router.Group("/tickets"))

	if auditTrail != nil {
		api.NewAdminHandler(auditTrail).Register(router.Group("/admin"))
	}

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if cfg.HTTP.SwaggerDir != "" {
		router.StaticFS("/swagger", http.Dir(cfg.HTTP.SwaggerDir))
		router.GET("/docs", func(c *gin.Context) {
			renderSwaggerUI(c.Writer, "/swagger/tickets.swagger.json")
		})
	}

	httpSrv := &http.Server{
		Addr:    cfg.HTTP.Address,
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- httpSrv.ListenAndServe() }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpSrv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	}
}

func renderSwaggerUI(w http.ResponseWriter, jsonURL string) {
	html := fmt.Sprintf(`<!DOCTYPE html>
    <html>
    <head>
        <title>Ticket API Docs</title>
        <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@latest/swagger-ui.css">
    </head>
    <body>
        <div id="swagger-ui"></div>
        <script src="https://unpkg.com/swagger-ui-dist@latest/swagger-ui-bundle.js"></script>
        <script>
            window.onload = function() {
                window.ui = SwaggerUIBundle({
                    url: "%s",
                    dom_id: '#swagger-ui'
                });
            };
        </script>
    </body>
    </html>`, jsonURL)

	w.Header().Set("Content-Type", "text/html")
	w.Write([]byte(html))
}
