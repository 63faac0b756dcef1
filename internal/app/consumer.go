package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go-fieldtrack/internal/events"
	"go-fieldtrack/internal/messaging/kafka/consumer"
	"go-fieldtrack/internal/report"
	"go-fieldtrack/internal/shared/config"
	"go-fieldtrack/internal/shared/connection"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

const reportCacheGroupID = "go-fieldtrack-report-cache"

// RunConsumer keeps the daily summary cache in step with check-in events until
// SIGINT or SIGTERM.
func RunConsumer(cfg *config.Config) error {
	logger := zap.L().Named("app.consumer")

	if cfg.KafkaBroker == "" {
		return fmt.Errorf("KAFKA_BROKER is required")
	}

	gormDB, err := connection.ConnectGORMWithRetry(cfg.DB, 5)
	if err != nil {
		return err
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	redisClient, err := connection.ConnectRedisWithRetry(cfg.RedisAddr, 5)
	if err != nil {
		return err
	}
	defer redisClient.Close()

	reportService := report.NewService(report.NewRepository(gormDB), redisClient, cfg.Location())

	reader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:        []string{cfg.KafkaBroker},
		Topic:          events.CheckinLifecycleTopic,
		GroupID:        reportCacheGroupID,
		CommitInterval: 0,
		StartOffset:    kafkago.LastOffset,
	})
	defer reader.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan struct{})
	go func() {
		defer close(done)
		consumer.ConsumeCheckinLifecycle(ctx, reader, reportService, logger)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("consumer shutting down")
	cancel()
	<-done

	return nil
}
