package events

import "mocms/pkg/config"

// NewPublisher returns a Kafka publisher when Kafka is enabled and a
// NopPublisher otherwise.
func NewPublisher(cfg *config.Config) (Publisher, error) {
	if !cfg.KafkaEnabled || cfg.Kafka == nil {
		cfg.Log.Info("Kafka disabled, domain events will not be published")
		return NopPublisher{}, nil
	}

	publisher, err := NewKafkaPublisher(cfg.Kafka, cfg.EventsTopic, cfg.EventsDLQTopic, cfg.ServiceName, cfg.Log)
	if err != nil {
		return nil, err
	}

	cfg.Log.Info("Publishing domain events", "topic", cfg.EventsTopic, "dlq_topic", cfg.EventsDLQTopic)
	return publisher, nil
}
