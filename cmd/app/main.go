package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/avialab/ticketmodule/config"
	"github.com/avialab/ticketmodule/internal/audit"
	"github.com/avialab/ticketmodule/internal/bootstrap"
	"github.com/avialab/ticketmodule/internal/cache"
	"github.com/avialab/ticketmodule/internal/catalog"
	"github.com/avialab/ticketmodule/internal/inventory"
	"github.com/avialab/ticketmodule/internal/kafka"
	"github.com/avialab/ticketmodule/internal/service/ticket"
	"github.com/avialab/ticketmodule/internal/store"
)

func main() {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// The file sink doubles as the local audit storage read back by the
	// admin endpoint; with Kafka configured the worker fills it instead.
	fileSink, err := audit.NewFileSink(cfg.Audit.LogDir)
	if err != nil {
		log.Fatalf("create audit sink: %v", err)
	}

	var auditSink ticket.AuditSink
	if len(cfg.Kafka.Brokers) > 0 {
		producer := kafka.NewProducer(cfg.Kafka.Brokers)
		defer producer.Close()
		auditSink = audit.NewKafkaSink(producer, cfg.Kafka.AuditTopic)
	} else {
		auditSink = audit.NewAsyncSink(fileSink)
	}

	var flights ticket.FlightCatalog
	var meals ticket.MealCatalog
	if cfg.UseStubs {
		flights = catalog.TableStub{}
		meals = catalog.CateringStub{}
	} else {
		var tableOpts []catalog.TableClientOption
		if cfg.Redis.Addr != "" {
			flightsTTL := time.Duration(cfg.Redis.FlightsCacheTTL) * time.Second
			tableOpts = append(tableOpts, catalog.WithFlightsCache(cache.NewRedisCache(cfg.Redis, flightsTTL)))
		}
		flights = catalog.NewTableClient(cfg.Table.BaseURL, cfg.Table.Timeout(), tableOpts...)
		meals = catalog.NewCateringClient(cfg.Catering.BaseURL, cfg.Catering.Timeout())
	}

	ticketService := ticket.NewTicketService(
		store.NewTicketStore(),
		inventory.NewSeatInventory(),
		flights,
		meals,
		auditSink,
	)

	if err := bootstrap.Run(ctx, cfg, ticketService, flights, meals, fileSink); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
