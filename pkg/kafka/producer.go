package kafka

import (
	"context"
	"errors"
	"fmt"

	"github.com/IBM/sarama"
)

// ErrBrokersRequired is returned when no brokers are configured.
var ErrBrokersRequired = errors.New("kafka: at least one broker is required")

// ProducerConfig holds Kafka producer configuration.
type ProducerConfig struct {
	Brokers []string
}

type producerImpl struct {
	producer sarama.SyncProducer
}

// NewProducer creates a synchronous Kafka producer.
func NewProducer(cfg ProducerConfig) (IProducer, error) {
	if len(cfg.Brokers) == 0 {
		return nil, ErrBrokersRequired
	}

	saramaCfg := sarama.NewConfig()
	saramaCfg.Producer.RequiredAcks = sarama.WaitForLocal
	saramaCfg.Producer.Compression = sarama.CompressionSnappy
	saramaCfg.Producer.Retry.Max = 3
	saramaCfg.Producer.Return.Successes = true

	producer, err := sarama.NewSyncProducer(cfg.Brokers, saramaCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create Kafka producer: %w", err)
	}

	return &producerImpl{producer: producer}, nil
}

func (p *producerImpl) Publish(ctx context.Context, topic string, key string, value []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	msg := &sarama.ProducerMessage{
		Topic: topic,
		Value: sarama.ByteEncoder(value),
	}
	if key != "" {
		msg.Key = sarama.StringEncoder(key)
	}

	if _, _, err := p.producer.SendMessage(msg); err != nil {
		return fmt.Errorf("failed to publish message to topic %s: %w", topic, err)
	}
	return nil
}

func (p *producerImpl) Close() error {
	return p.producer.Close()
}
