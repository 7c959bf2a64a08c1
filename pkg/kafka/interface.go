package kafka

import "context"

// IProducer publishes messages to Kafka topics.
type IProducer interface {
	// Publish sends the value to the topic keyed by key.
	Publish(ctx context.Context, topic string, key string, value []byte) error
	// Close shuts down the producer.
	Close() error
}
