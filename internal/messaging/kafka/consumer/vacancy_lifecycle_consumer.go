package consumer

import (
	"context"
	"encoding/json"

	"go-recruit/internal/application"
	"go-recruit/internal/events"
	"go-recruit/internal/vacancy"

	"github.com/redis/go-redis/v9"
	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// ConsumeVacancyLifecycle reacts to vacancy lifecycle events: a deleted
// vacancy withdraws its open applications, and every event purges the
// published-listing cache so other instances re-read the store.
func ConsumeVacancyLifecycle(
	ctx context.Context,
	reader *kafkago.Reader,
	applicationService application.Service,
	rdb *redis.Client,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.vacancy_lifecycle")
	log.Info("vacancy lifecycle consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("vacancy lifecycle consumer stopped")
				return
			}
			log.Error("fetch vacancy lifecycle message failed", zap.Error(err))
			continue
		}

		var event events.VacancyLifecycleEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode vacancy lifecycle event failed", zap.Error(err))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		if rdb != nil {
			if err := rdb.Del(ctx, vacancy.PublishedVacanciesKey).Err(); err != nil {
				log.Error("purge published vacancies cache failed", zap.Error(err))
			}
		}

		if event.EventType == events.VacancyDeleted {
			if _, err := applicationService.WithdrawByVacancy(ctx, event.VacancyID); err != nil {
				log.Error("withdraw applications for deleted vacancy failed",
					zap.String("vacancy_id", event.VacancyID),
					zap.Error(err),
				)
				continue
			}
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit vacancy lifecycle message failed", zap.Error(err))
			continue
		}

		log.Info("vacancy lifecycle event processed",
			zap.String("event_type", event.EventType),
			zap.String("vacancy_id", event.VacancyID),
			zap.String("company_id", event.CompanyID),
		)
	}
}
