package producer

import (
	"context"
	"time"

	"go-fieldtrack/internal/messaging/kafka"

	kafkago "github.com/segmentio/kafka-go"
)

// MessageWriter is the part of *kafkago.Writer the relay needs.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafkago.Message) error
}

const (
	HeaderEventType     = "event_type"
	HeaderAggregateType = "aggregate_type"
	HeaderRequestID     = "request_id"
	HeaderOutboxID      = "outbox_id"
)

// toMessage keys by aggregate so per-employee ordering survives partitioning.
// outbox_id lets consumers drop redeliveries of the same row.
func toMessage(event kafka.OutboxEvent, now time.Time) kafkago.Message {
	return kafkago.Message{
		Topic: event.Topic,
		Key:   []byte(event.AggregateID),
		Value: event.Payload,
		Time:  now,
		Headers: []kafkago.Header{
			{Key: HeaderEventType, Value: []byte(event.EventType)},
			{Key: HeaderAggregateType, Value: []byte(event.AggregateType)},
			{Key: HeaderRequestID, Value: []byte(event.RequestID)},
			{Key: HeaderOutboxID, Value: []byte(event.ID)},
		},
	}
}

func publishEvent(ctx context.Context, writer MessageWriter, event kafka.OutboxEvent) error {
	return writer.WriteMessages(ctx, toMessage(event, time.Now().UTC()))
}
