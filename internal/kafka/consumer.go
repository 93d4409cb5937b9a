package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/segmentio/kafka-go"
)

// Consumer drains audit events from the audit topic. Messages that do
// not decode as an AuditEvent are logged and skipped; a handler error
// stops consumption so the caller decides whether to restart.
type Consumer struct {
	reader *kafka.Reader
}

func NewConsumer(brokers []string, groupID, topic string) *Consumer {
	return &Consumer{
		reader: kafka.NewReader(kafka.ReaderConfig{
			Brokers:           brokers,
			GroupID:           groupID,
			Topic:             topic,
			HeartbeatInterval: 3 * time.Second,
			SessionTimeout:    30 * time.Second,
		}),
	}
}

func (c *Consumer) Close() error {
	if c == nil || c.reader == nil {
		return nil
	}
	return c.reader.Close()
}

func (c *Consumer) Consume(ctx context.Context, handler func(context.Context, AuditEvent) error) error {
	for {
		msg, err := c.reader.ReadMessage(ctx)
		if err != nil {
			return err
		}
		event, err := decodeAuditEvent(msg.Value)
		if err != nil {
			log.Printf("skipping malformed audit message at offset %d: %v", msg.Offset, err)
			continue
		}
		if err := handler(ctx, event); err != nil {
			return err
		}
	}
}

func decodeAuditEvent(data []byte) (AuditEvent, error) {
	var event AuditEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return AuditEvent{}, fmt.Errorf("decode audit event: %w", err)
	}
	return event, nil
}
