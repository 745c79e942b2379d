package vacancy_test

import (
	"context"
	"errors"
	"testing"

	"go-recruit/internal/events"
	"go-recruit/internal/messaging/kafka"
	"go-recruit/internal/vacancy"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestOutboxEventRecorder_Record(t *testing.T) {
	ctx := context.Background()

	t.Run("Writes Pending Outbox Row In A Tx", func(t *testing.T) {
		db, dbMock, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		view := vacancy.VacancyResponse{
			ID:        uuid.NewString(),
			CompanyID: uuid.NewString(),
			Status:    vacancy.StatusPublished,
		}

		dbMock.ExpectBegin()
		dbMock.ExpectExec("INSERT INTO outbox_events").
			WithArgs(
				sqlmock.AnyArg(),
				"",
				"vacancy",
				view.ID,
				events.VacancyUpdated,
				events.VacancyLifecycleTopic,
				sqlmock.AnyArg(),
				kafka.OutboxStatusPending,
			).
			WillReturnResult(sqlmock.NewResult(0, 1))
		dbMock.ExpectCommit()

		recorder := vacancy.NewOutboxEventRecorder(db, kafka.NewOutboxRepository(db))

		assert.NoError(t, recorder.Record(ctx, events.VacancyUpdated, view))
		assert.NoError(t, dbMock.ExpectationsWereMet())
	})

	t.Run("Insert Failure Rolls Back", func(t *testing.T) {
		db, dbMock, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		dbMock.ExpectBegin()
		dbMock.ExpectExec("INSERT INTO outbox_events").
			WillReturnError(errors.New("connection reset"))
		dbMock.ExpectRollback()

		recorder := vacancy.NewOutboxEventRecorder(db, kafka.NewOutboxRepository(db))

		err = recorder.Record(ctx, events.VacancyDeleted, vacancy.VacancyResponse{ID: uuid.NewString()})
		assert.Error(t, err)
		assert.NoError(t, dbMock.ExpectationsWereMet())
	})
}
