package kafka

import (
	"encoding/json"
	"testing"
	"time"

	"go-fieldtrack/internal/events"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCheckinOutboxEvent(t *testing.T) {
	checkedIn := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	src := events.CheckinEvent{
		EventType:   events.CheckinCreated,
		RequestID:   "req-7",
		CheckinID:   "ck-1",
		EmployeeID:  "emp-1",
		ClientID:    "cl-1",
		DistanceKm:  0.42,
		CheckinTime: checkedIn,
		OccurredAt:  checkedIn,
	}

	row, err := NewCheckinOutboxEvent(src)

	require.NoError(t, err)
	require.NoError(t, row.Validate())
	assert.Equal(t, AggregateEmployee, row.AggregateType)
	assert.Equal(t, "emp-1", row.AggregateID)
	assert.Equal(t, events.CheckinLifecycleTopic, row.Topic)
	assert.Equal(t, OutboxStatusPending, row.Status)
	assert.Equal(t, "req-7", row.RequestID)

	var decoded events.CheckinEvent
	require.NoError(t, json.Unmarshal(row.Payload, &decoded))
	assert.Equal(t, src.CheckinID, decoded.CheckinID)
	assert.True(t, decoded.CheckinTime.Equal(checkedIn))
	assert.Nil(t, decoded.CheckoutTime)
}
