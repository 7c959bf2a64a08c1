package producer

import (
	deliveryKafka "climate-srv/internal/analysis/delivery/kafka"
	pkgKafka "climate-srv/pkg/kafka"
	"climate-srv/pkg/log"
)

type implPublisher struct {
	l        log.Logger
	producer pkgKafka.IProducer
	topic    string
}

var _ deliveryKafka.Publisher = &implPublisher{}

// New returns a Kafka backed analysis event publisher.
func New(l log.Logger, producer pkgKafka.IProducer, topic string) deliveryKafka.Publisher {
	return &implPublisher{
		l:        l,
		producer: producer,
		topic:    topic,
	}
}
