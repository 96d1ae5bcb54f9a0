package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	articlesrepo "mocms/internal/articles/repository"
	"mocms/internal/counters"
	topicsrepo "mocms/internal/topics/repository"
	"mocms/pkg/config"
	"mocms/pkg/kafka"
	kafka_middleware "mocms/pkg/kafka/middleware"
)

const ServiceName = "counters"

func main() {
	cfg := config.Load(ServiceName)
	if !cfg.KafkaEnabled {
		cfg.Log.Fatal("Counters projector requires KAFKA_ENABLED=true")
	}

	cfg.SetMongo()
	defer cfg.GracefulShutdown()

	projector := counters.NewProjector(
		articlesrepo.NewMongoArticleRepository(cfg),
		topicsrepo.NewMongoTopicRepository(cfg),
		cfg.Log,
	)

	consumer, err := kafka.NewConsumer(cfg.Kafka, cfg.EventsTopic, cfg.CountersGroupID, cfg.EventsDLQTopic, projector.Handle, cfg.Log)
	if err != nil {
		cfg.Log.Fatal("Failed to create events consumer", "error", err)
	}
	defer func() {
		if err := consumer.Close(); err != nil {
			cfg.Log.Error("Failed to close events consumer", "error", err)
		}
	}()

	if cfg.Kafka.EnableMiddleware {
		consumer.Use(kafka_middleware.LoggingConsumerMiddleware(cfg.Log))
		consumer.Use(kafka_middleware.MetricsConsumerMiddleware())
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg.Log.Info("Starting counters projector",
		"topic", cfg.EventsTopic,
		"group_id", cfg.CountersGroupID,
	)
	if err := consumer.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
		cfg.Log.Error("Counters projector stopped", "error", err)
		return
	}
	cfg.Log.Info("Counters projector stopped")
}
