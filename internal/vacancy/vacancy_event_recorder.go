package vacancy

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"go-recruit/internal/events"
	"go-recruit/internal/messaging/kafka"
	"go-recruit/internal/shared/contextutil"

	"github.com/google/uuid"
)

// EventRecorder is the boundary-layer hook: after the lifecycle service
// reports success, the handler records the event for downstream consumers
// (search index, notifications, application cleanup). The service itself
// never publishes.
type EventRecorder interface {
	Record(ctx context.Context, eventType string, view VacancyResponse) error
}

type noopEventRecorder struct{}

func NewNoopEventRecorder() EventRecorder {
	return noopEventRecorder{}
}

func (noopEventRecorder) Record(context.Context, string, VacancyResponse) error {
	return nil
}

type outboxEventRecorder struct {
	db     *sql.DB
	outbox kafka.OutboxRepository
}

// NewOutboxEventRecorder stores lifecycle events in the transactional
// outbox; cmd/worker drains the outbox into kafka.
func NewOutboxEventRecorder(db *sql.DB, outbox kafka.OutboxRepository) EventRecorder {
	return &outboxEventRecorder{db: db, outbox: outbox}
}

func (r *outboxEventRecorder) Record(ctx context.Context, eventType string, view VacancyResponse) error {
	event := events.VacancyLifecycleEvent{
		EventType:  eventType,
		RequestID:  contextutil.GetRequestID(ctx),
		VacancyID:  view.ID,
		CompanyID:  view.CompanyID,
		Status:     view.Status,
		OccurredAt: time.Now().UTC(),
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := r.outbox.WithTx(tx)
	if err := qtx.Create(ctx, kafka.OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     event.RequestID,
		AggregateType: "vacancy",
		AggregateID:   view.ID,
		EventType:     eventType,
		Topic:         events.VacancyLifecycleTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	}); err != nil {
		return err
	}

	return tx.Commit()
}
