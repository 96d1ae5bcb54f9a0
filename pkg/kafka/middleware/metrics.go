package kafka_middleware

import (
	"context"
	"time"

	"mocms/pkg/kafka"
	"mocms/pkg/metrics"
)

const (
	directionProduce = "produce"
	directionConsume = "consume"
)

func MetricsProducerMiddleware() kafka.ProducerMiddleware {
	return func(ctx context.Context, msg kafka.Message, next kafka.MessageHandler) error {
		start := time.Now()
		err := next(ctx, msg)
		observe(directionProduce, msg.Topic, start, err)
		return err
	}
}

func MetricsConsumerMiddleware() kafka.ConsumerMiddleware {
	return func(ctx context.Context, msg kafka.Message, next kafka.MessageHandler) error {
		start := time.Now()
		err := next(ctx, msg)
		observe(directionConsume, msg.Topic, start, err)
		return err
	}
}

func observe(direction, topic string, start time.Time, err error) {
	metrics.KafkaMessageDuration.WithLabelValues(direction, topic).Observe(time.Since(start).Seconds())
	metrics.KafkaMessagesTotal.WithLabelValues(direction, topic, outcome(err)).Inc()
}

func outcome(err error) string {
	if err != nil {
		return "failure"
	}
	return "success"
}
