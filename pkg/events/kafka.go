package events

import (
	"context"
	"fmt"

	"mocms/pkg/kafka"
	kafka_config "mocms/pkg/kafka/config"
	kafka_middleware "mocms/pkg/kafka/middleware"
	"mocms/pkg/logger"
	"mocms/pkg/metrics"
)

type messagePublisher interface {
	Publish(ctx context.Context, msg kafka.Message) error
	Close() error
}

// KafkaPublisher writes events keyed by row ID so that every event for one
// row lands on the same partition in order.
type KafkaPublisher struct {
	producer messagePublisher
	source   string
}

func NewKafkaPublisher(cfg *kafka_config.Config, topic, dlqTopic, source string, log *logger.Logger) (*KafkaPublisher, error) {
	producer, err := kafka.NewProducer(cfg, topic, dlqTopic, log)
	if err != nil {
		return nil, fmt.Errorf("create events producer: %w", err)
	}

	if cfg.EnableMiddleware {
		producer.Use(kafka_middleware.LoggingProducerMiddleware(log))
		producer.Use(kafka_middleware.MetricsProducerMiddleware())
	}

	return &KafkaPublisher{producer: producer, source: source}, nil
}

func (p *KafkaPublisher) Publish(ctx context.Context, event Event) error {
	msg, err := kafka.NewMessage().
		WithKey(event.ID).
		WithValue(event).
		WithEventType(event.Type).
		WithSource(p.source).
		WithCorrelationID(correlationID(ctx)).
		WithTimestamp(event.OccurredAt).
		Build()
	if err != nil {
		metrics.EventsPublishedTotal.WithLabelValues(event.Type, "failure").Inc()
		return err
	}

	if err := p.producer.Publish(ctx, msg); err != nil {
		metrics.EventsPublishedTotal.WithLabelValues(event.Type, "failure").Inc()
		return fmt.Errorf("publish %s: %w", event.Type, err)
	}

	metrics.EventsPublishedTotal.WithLabelValues(event.Type, "success").Inc()
	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.producer.Close()
}
