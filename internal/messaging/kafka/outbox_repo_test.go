package kafka_test

import (
	"context"
	"testing"

	"go-recruit/internal/messaging/kafka"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestValidateOutboxEvent(t *testing.T) {
	valid := kafka.OutboxEvent{
		ID:      uuid.NewString(),
		Topic:   "recruit.vacancy.lifecycle.v1",
		Payload: []byte(`{}`),
		Status:  kafka.OutboxStatusPending,
	}

	t.Run("Valid", func(t *testing.T) {
		assert.NoError(t, kafka.ValidateOutboxEvent(valid))
	})

	t.Run("Missing Topic", func(t *testing.T) {
		e := valid
		e.Topic = ""
		assert.Error(t, kafka.ValidateOutboxEvent(e))
	})

	t.Run("Empty Payload", func(t *testing.T) {
		e := valid
		e.Payload = nil
		assert.Error(t, kafka.ValidateOutboxEvent(e))
	})

	t.Run("Unknown Status", func(t *testing.T) {
		e := valid
		e.Status = "queued"
		assert.Error(t, kafka.ValidateOutboxEvent(e))
	})
}

func TestOutboxRepository_MarkSent(t *testing.T) {
	db, dbMock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	id := uuid.NewString()
	dbMock.ExpectExec("UPDATE outbox_events").
		WithArgs(id, kafka.OutboxStatusSent).
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := kafka.NewOutboxRepository(db)
	assert.NoError(t, repo.MarkSent(context.Background(), id))
	assert.NoError(t, dbMock.ExpectationsWereMet())
}
