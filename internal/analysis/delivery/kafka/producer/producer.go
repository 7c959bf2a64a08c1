package producer

import (
	"context"
	"encoding/json"
	"time"

	deliveryKafka "climate-srv/internal/analysis/delivery/kafka"
)

// Publishing is best effort. A broker outage must not fail a job that
// already persisted its result, so errors are logged and swallowed.
func (p *implPublisher) PublishCompleted(ctx context.Context, event deliveryKafka.AnalysisEvent) {
	event.Type = deliveryKafka.EventAnalysisCompleted
	p.publish(ctx, event)
}

func (p *implPublisher) PublishFailed(ctx context.Context, event deliveryKafka.AnalysisEvent) {
	event.Type = deliveryKafka.EventAnalysisFailed
	p.publish(ctx, event)
}

func (p *implPublisher) publish(ctx context.Context, event deliveryKafka.AnalysisEvent) {
	if event.OccurredAt.IsZero() {
		event.OccurredAt = time.Now().UTC()
	}

	payload, err := json.Marshal(event)
	if err != nil {
		p.l.Errorf(ctx, "analysis.delivery.kafka.publish: marshal event: %v", err)
		return
	}

	if err := p.producer.Publish(ctx, p.topic, event.ProgressID, payload); err != nil {
		p.l.Warnf(ctx, "analysis.delivery.kafka.publish: %v", err)
	}
}
