package producer

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/confluentinc/confluent-kafka-go/v2/kafka"

	"gramsetu/credit_lending/configs"
	"gramsetu/credit_lending/internal/pkg/logger"
	"gramsetu/credit_lending/internal/pkg/models"
)

type Producer struct {
	producer *kafka.Producer
	topic    string
}

var KafkaProducer *Producer

func NewKafkaProducer(topic string) (*Producer, error) {
	p, err := kafka.NewProducer(&kafka.ConfigMap{
		"bootstrap.servers":  configs.KAFKA_SERVER,
		"security.protocol":  configs.KAFKA_SECURITY_PROTOCOL,
		"sasl.mechanisms":    configs.KAFKA_SASL_MECHANISM,
		"sasl.username":      configs.KAFKA_SASL_USERNAME,
		"sasl.password":      configs.KAFKA_SASL_PASSWORD,
		"session.timeout.ms": configs.KAFKA_SESSION_TIMEOUT_MS,
		"client.id":          configs.KAFKA_CLIENT_ID,
		"log_level":          0})
	if err != nil {
		return nil, err
	}

	return &Producer{
		producer: p,
		topic:    topic,
	}, nil
}

// PublishDecisionEvent sends one decision event, retrying with linear
// backoff up to KAFKA_RETRY_COUNT attempts. Keyed on applicationId so
// events for an application land on one partition.
func (p *Producer) PublishDecisionEvent(ctx context.Context, event models.DecisionEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		logger.Error(ctx, "Failed to marshal decision event: %v", err)
		return fmt.Errorf("failed to marshal decision event: %w", err)
	}

	message := &kafka.Message{
		TopicPartition: kafka.TopicPartition{Topic: &p.topic, Partition: kafka.PartitionAny},
		Value:          payload,
		Key:            []byte(event.ApplicationID),
	}

	retryCount := configs.KAFKA_RETRY_COUNT
	var lastErr error
	for attempt := 0; attempt <= retryCount; attempt++ {
		lastErr = p.producer.Produce(message, nil)
		if lastErr == nil {
			logger.Info(ctx, "Decision event published for application %s with status %s", event.ApplicationID, event.Status)
			return nil
		}
		logger.Error(ctx, "Failed to send Kafka message on attempt %d: %v", attempt+1, lastErr)
		time.Sleep(time.Second * time.Duration(attempt+1))
	}
	return lastErr
}

func (p *Producer) Flush(timeoutMs int) {
	p.producer.Flush(timeoutMs)
}

func (p *Producer) Close() {
	p.producer.Close()
}
