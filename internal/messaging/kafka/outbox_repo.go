package kafka

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

const (
	OutboxStatusPending = "pending"
	OutboxStatusSent    = "sent"
	OutboxStatusFailed  = "failed"

	// MaxOutboxRetries bounds redelivery; rows past it stay failed for inspection.
	MaxOutboxRetries = 10
)

// OutboxEvent is one row of outbox_events. Rows are written in the same
// transaction as the state change they describe and relayed later.
type OutboxEvent struct {
	ID            string
	RequestID     string
	AggregateType string
	AggregateID   string
	EventType     string
	Topic         string
	Payload       []byte
	Status        string
	RetryCount    int
	NextRetryAt   time.Time
}

func (e OutboxEvent) Validate() error {
	switch {
	case e.ID == "":
		return errors.New("outbox id is required")
	case e.AggregateID == "":
		return errors.New("outbox aggregate id is required")
	case e.EventType == "":
		return errors.New("outbox event type is required")
	case e.Topic == "":
		return errors.New("outbox topic is required")
	case len(e.Payload) == 0:
		return errors.New("outbox payload is required")
	}
	switch e.Status {
	case OutboxStatusPending, OutboxStatusSent, OutboxStatusFailed:
		return nil
	default:
		return fmt.Errorf("invalid outbox status: %s", e.Status)
	}
}

//go:generate mockgen -source=outbox_repo.go -destination=mock/outbox_repo_mock.go -package=mock

type OutboxRepository interface {
	WithTx(tx *sql.Tx) OutboxRepository
	Create(ctx context.Context, event OutboxEvent) error
	ListPending(ctx context.Context, limit int) ([]OutboxEvent, error)
	MarkSent(ctx context.Context, id string) error
	MarkFailed(ctx context.Context, id string, reason string) error
	// CountBacklog counts rows still eligible for delivery.
	CountBacklog(ctx context.Context) (int, error)
}

type execQuerier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type outboxRepository struct {
	db *sql.DB
	tx *sql.Tx
}

func NewOutboxRepository(db *sql.DB) OutboxRepository {
	return &outboxRepository{db: db}
}

func (r *outboxRepository) WithTx(tx *sql.Tx) OutboxRepository {
	return &outboxRepository{db: r.db, tx: tx}
}

func (r *outboxRepository) conn() execQuerier {
	if r.tx != nil {
		return r.tx
	}
	return r.db
}

const insertOutboxEvent = `
INSERT INTO outbox_events (id, request_id, aggregate_type, aggregate_id, event_type, topic, payload, status)
VALUES ($1, NULLIF($2, ''), $3, $4, $5, $6, $7, $8)`

func (r *outboxRepository) Create(ctx context.Context, event OutboxEvent) error {
	if err := event.Validate(); err != nil {
		return err
	}

	_, err := r.conn().ExecContext(ctx, insertOutboxEvent,
		event.ID,
		event.RequestID,
		event.AggregateType,
		event.AggregateID,
		event.EventType,
		event.Topic,
		event.Payload,
		event.Status,
	)
	return err
}

// Deliverable rows: pending, or failed with retries left and the backoff elapsed.
const deliverableFilter = `
WHERE status IN ($1, $2)
	AND retry_count < $3
	AND (next_retry_at IS NULL OR next_retry_at <= NOW())`

const selectPendingEvents = `
SELECT id::text, COALESCE(request_id, ''), aggregate_type, aggregate_id::text,
	event_type, topic, payload, status, retry_count, COALESCE(next_retry_at, created_at)
FROM outbox_events` + deliverableFilter + `
ORDER BY created_at ASC
LIMIT $4`

func (r *outboxRepository) ListPending(ctx context.Context, limit int) ([]OutboxEvent, error) {
	rows, err := r.conn().QueryContext(ctx, selectPendingEvents,
		OutboxStatusPending, OutboxStatusFailed, MaxOutboxRetries, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	pending := make([]OutboxEvent, 0, limit)
	for rows.Next() {
		var e OutboxEvent
		if err := rows.Scan(
			&e.ID, &e.RequestID, &e.AggregateType, &e.AggregateID,
			&e.EventType, &e.Topic, &e.Payload, &e.Status, &e.RetryCount, &e.NextRetryAt,
		); err != nil {
			return nil, err
		}
		pending = append(pending, e)
	}
	return pending, rows.Err()
}

const countBacklog = `SELECT COUNT(*) FROM outbox_events` + deliverableFilter

func (r *outboxRepository) CountBacklog(ctx context.Context) (int, error) {
	var n int
	err := r.conn().QueryRowContext(ctx, countBacklog,
		OutboxStatusPending, OutboxStatusFailed, MaxOutboxRetries,
	).Scan(&n)
	return n, err
}

func (r *outboxRepository) MarkSent(ctx context.Context, id string) error {
	_, err := r.conn().ExecContext(ctx, `
UPDATE outbox_events
SET status = $2, processed_at = NOW(), error_message = NULL, updated_at = NOW()
WHERE id = $1`, id, OutboxStatusSent)
	return err
}

// MarkFailed bumps retry_count and pushes next_retry_at out linearly, capped at 150s.
func (r *outboxRepository) MarkFailed(ctx context.Context, id string, reason string) error {
	_, err := r.conn().ExecContext(ctx, `
UPDATE outbox_events
SET status = $2,
	retry_count = retry_count + 1,
	error_message = LEFT($3, 500),
	next_retry_at = NOW() + (LEAST(retry_count + 1, 10) * INTERVAL '15 seconds'),
	updated_at = NOW()
WHERE id = $1`, id, OutboxStatusFailed, reason)
	return err
}
