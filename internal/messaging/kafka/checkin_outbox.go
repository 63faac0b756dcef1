package kafka

import (
	"encoding/json"

	"go-fieldtrack/internal/events"

	"github.com/google/uuid"
)

// AggregateEmployee keys lifecycle events by employee so one employee's
// check-in and checkout land on the same partition in order.
const AggregateEmployee = "employee"

// NewCheckinOutboxEvent wraps a lifecycle event in a pending outbox row.
func NewCheckinOutboxEvent(event events.CheckinEvent) (OutboxEvent, error) {
	payload, err := json.Marshal(event)
	if err != nil {
		return OutboxEvent{}, err
	}
	return OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     event.RequestID,
		AggregateType: AggregateEmployee,
		AggregateID:   event.EmployeeID,
		EventType:     event.EventType,
		Topic:         events.CheckinLifecycleTopic,
		Payload:       payload,
		Status:        OutboxStatusPending,
	}, nil
}
