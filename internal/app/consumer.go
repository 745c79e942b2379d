package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go-recruit/internal/application"
	"go-recruit/internal/company"
	"go-recruit/internal/events"
	"go-recruit/internal/messaging/kafka/consumer"
	"go-recruit/internal/shared/connection"
	"go-recruit/internal/vacancy"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// RunConsumer follows the vacancy lifecycle topic and keeps dependent
// state (applications, cached listings) consistent with it.
func RunConsumer() error {
	logger := zap.L().Named("app.consumer")

	gormDB, err := connection.ConnectGORMWithRetry(
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_SSLMODE"),
		5,
	)
	if err != nil {
		return err
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	kafkaBroker := os.Getenv("KAFKA_BROKER")
	if kafkaBroker == "" {
		return fmt.Errorf("KAFKA_BROKER is required")
	}

	redisClient, err := connection.ConnectRedisWithRetry(os.Getenv("REDIS_ADDR"), 5)
	if err != nil {
		return err
	}
	defer redisClient.Close()

	vacancyRepo := vacancy.NewRepository(gormDB)
	companyRepo := company.NewRepository(gormDB)
	applicationRepo := application.NewRepository(gormDB)
	applicationService := application.NewService(applicationRepo, vacancyRepo, companyRepo)

	reader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:        []string{kafkaBroker},
		Topic:          events.VacancyLifecycleTopic,
		GroupID:        "go-recruit-application-cleanup",
		CommitInterval: 0,
		StartOffset:    kafkago.FirstOffset,
	})
	defer reader.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go consumer.ConsumeVacancyLifecycle(ctx, reader, applicationService, redisClient, logger)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("consumer shutting down")
	cancel()

	return nil
}
