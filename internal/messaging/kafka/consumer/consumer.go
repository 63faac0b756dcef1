package consumer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go-fieldtrack/internal/events"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// MessageReader is the part of *kafkago.Reader the consumer needs.
type MessageReader interface {
	FetchMessage(ctx context.Context) (kafkago.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafkago.Message) error
}

// ReportInvalidator drops cached team reports affected by an employee's session.
// report.Service implements it.
type ReportInvalidator interface {
	InvalidateForEmployee(ctx context.Context, employeeID string, at time.Time) error
}

var errMalformedEvent = errors.New("malformed checkin event")

// ConsumeCheckinLifecycle invalidates the manager's cached daily summary for every
// check-in and checkout. Undecodable messages are committed and skipped; failed
// invalidations are left uncommitted.
func ConsumeCheckinLifecycle(
	ctx context.Context,
	reader MessageReader,
	reports ReportInvalidator,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.checkin_lifecycle")
	log.Info("checkin lifecycle consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("checkin lifecycle consumer stopped")
				return
			}
			log.Error("fetch checkin lifecycle message failed", zap.Error(err))
			continue
		}

		event, err := handleCheckinEvent(ctx, msg, reports)
		if err != nil {
			if errors.Is(err, errMalformedEvent) {
				log.Error("decode checkin event failed", zap.Int64("offset", msg.Offset), zap.Error(err))
				_ = reader.CommitMessages(ctx, msg)
				continue
			}

			log.Error("invalidate daily summary failed",
				zap.String("employee_id", event.EmployeeID),
				zap.String("checkin_id", event.CheckinID),
				zap.Error(err),
			)
			continue
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit checkin lifecycle message failed", zap.Error(err))
			continue
		}

		log.Debug("daily summary invalidated",
			zap.String("event_type", event.EventType),
			zap.String("employee_id", event.EmployeeID),
			zap.String("checkin_id", event.CheckinID),
		)
	}
}

func handleCheckinEvent(ctx context.Context, msg kafkago.Message, reports ReportInvalidator) (events.CheckinEvent, error) {
	var event events.CheckinEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		return event, fmt.Errorf("%w: %v", errMalformedEvent, err)
	}
	if event.EmployeeID == "" || event.CheckinTime.IsZero() {
		return event, fmt.Errorf("%w: missing employee_id or checkin_time", errMalformedEvent)
	}

	// sessions belong to the day they started on
	return event, reports.InvalidateForEmployee(ctx, event.EmployeeID, event.CheckinTime)
}
