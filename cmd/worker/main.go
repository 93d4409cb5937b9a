package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/avialab/ticketmodule/config"
	"github.com/avialab/ticketmodule/internal/audit"
	"github.com/avialab/ticketmodule/internal/kafka"
)

// The worker drains the audit topic into the on-disk log and audit files
// that the registration-desk tooling reads.
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

	fileSink, err := audit.NewFileSink(cfg.Audit.LogDir)
	if err != nil {
		log.Fatalf("create file sink: %v", err)
	}

	consumer := kafka.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.GroupID, cfg.Kafka.AuditTopic)
	defer consumer.Close()

	if err := consumer.Consume(ctx, func(ctx context.Context, event kafka.AuditEvent) error {
		switch event.Kind {
		case "audit":
			fileSink.RecordAudit(event.TicketID, event.Action)
		default:
			fileSink.RecordEvent(event.Source, event.Level, event.Message)
		}
		return nil
	}); err != nil && ctx.Err() == nil {
		log.Fatalf("consumer stopped: %v", err)
	}
}
