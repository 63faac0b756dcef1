package consumer

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"go-fieldtrack/internal/events"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeReader struct {
	mu        sync.Mutex
	messages  []kafkago.Message
	committed []int64
	cancel    context.CancelFunc
}

func (r *fakeReader) FetchMessage(ctx context.Context) (kafkago.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.messages) == 0 {
		r.cancel()
		return kafkago.Message{}, ctx.Err()
	}
	msg := r.messages[0]
	r.messages = r.messages[1:]
	return msg, nil
}

func (r *fakeReader) CommitMessages(_ context.Context, msgs ...kafkago.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, m := range msgs {
		r.committed = append(r.committed, m.Offset)
	}
	return nil
}

type call struct {
	employeeID string
	at         time.Time
}

type fakeInvalidator struct {
	calls []call
	err   error
}

func (f *fakeInvalidator) InvalidateForEmployee(_ context.Context, employeeID string, at time.Time) error {
	f.calls = append(f.calls, call{employeeID, at})
	return f.err
}

func eventMessage(t *testing.T, offset int64, e events.CheckinEvent) kafkago.Message {
	t.Helper()
	payload, err := json.Marshal(e)
	require.NoError(t, err)
	return kafkago.Message{Offset: offset, Value: payload}
}

func TestConsumeCheckinLifecycle(t *testing.T) {
	checkinTime := time.Date(2024, 3, 1, 4, 0, 0, 0, time.UTC)

	t.Run("invalidates and commits", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		reader := &fakeReader{cancel: cancel, messages: []kafkago.Message{
			eventMessage(t, 1, events.CheckinEvent{EventType: events.CheckinCreated, EmployeeID: "emp-1", CheckinTime: checkinTime}),
			{Offset: 2, Value: []byte("{not json")},
			eventMessage(t, 3, events.CheckinEvent{EventType: events.CheckinCheckedOut, EmployeeID: "emp-1", CheckinTime: checkinTime}),
		}}
		reports := &fakeInvalidator{}

		ConsumeCheckinLifecycle(ctx, reader, reports, zap.NewNop())

		assert.Equal(t, []int64{1, 2, 3}, reader.committed)
		require.Len(t, reports.calls, 2)
		assert.Equal(t, "emp-1", reports.calls[0].employeeID)
		assert.True(t, reports.calls[1].at.Equal(checkinTime))
	})

	t.Run("failed invalidation is not committed", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		reader := &fakeReader{cancel: cancel, messages: []kafkago.Message{
			eventMessage(t, 7, events.CheckinEvent{EventType: events.CheckinCreated, EmployeeID: "emp-2", CheckinTime: checkinTime}),
		}}
		reports := &fakeInvalidator{err: errors.New("redis down")}

		ConsumeCheckinLifecycle(ctx, reader, reports, zap.NewNop())

		assert.Empty(t, reader.committed)
		assert.Len(t, reports.calls, 1)
	})
}

func TestHandleCheckinEvent_MissingFields(t *testing.T) {
	reports := &fakeInvalidator{}

	_, err := handleCheckinEvent(context.Background(), kafkago.Message{Value: []byte(`{"event_type":"checkin_created"}`)}, reports)

	assert.ErrorIs(t, err, errMalformedEvent)
	assert.Empty(t, reports.calls)
}
