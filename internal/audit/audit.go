package audit

import (
	"context"
	"log"
	"time"

	"github.com/avialab/ticketmodule/internal/kafka"
)

// Sink records operational events and the per-ticket audit trail.
// Implementations are best-effort: a failing sink must never affect the
// booking result.
type Sink interface {
	RecordEvent(source, level, message string)
	RecordAudit(ticketID, action string)
}

// Publisher is the producer side a KafkaSink needs.
type Publisher interface {
	Publish(ctx context.Context, topic, key string, payload interface{}) error
}

// KafkaSink ships records to the audit topic asynchronously. Publish
// failures are logged and dropped.
type KafkaSink struct {
	producer Publisher
	topic    string
	timeout  time.Duration
}

func NewKafkaSink(producer Publisher, topic string) *KafkaSink {
	return &KafkaSink{producer: producer, topic: topic, timeout: 5 * time.Second}
}

func (s *KafkaSink) RecordEvent(source, level, message string) {
	s.publish("event", kafka.AuditEvent{
		Kind:      "event",
		Source:    source,
		Level:     level,
		Message:   message,
		Timestamp: time.Now().UTC(),
	})
}

func (s *KafkaSink) RecordAudit(ticketID, action string) {
	s.publish(ticketID, kafka.AuditEvent{
		Kind:      "audit",
		TicketID:  ticketID,
		Action:    action,
		Timestamp: time.Now().UTC(),
	})
}

func (s *KafkaSink) publish(key string, event kafka.AuditEvent) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
		defer cancel()
		if err := s.producer.Publish(ctx, s.topic, key, event); err != nil {
			log.Printf("audit publish failed: %v", err)
		}
	}()
}

// AsyncSink hands records to the wrapped sink off the caller's
// goroutine, so a slow sink never sits in the booking request path.
type AsyncSink struct {
	next Sink
}

func NewAsyncSink(next Sink) *AsyncSink {
	return &AsyncSink{next: next}
}

func (s *AsyncSink) RecordEvent(source, level, message string) {
	go s.next.RecordEvent(source, level, message)
}

func (s *AsyncSink) RecordAudit(ticketID, action string) {
	go s.next.RecordAudit(ticketID, action)
}

// NopSink discards everything; used in tests.
type NopSink struct{}

func (NopSink) RecordEvent(source, level, message string) {}
func (NopSink) RecordAudit(ticketID, action string)       {}
