package kafka

import (
	"context"
	"time"
)

// Event types published on the analysis topic.
const (
	EventAnalysisCompleted = "analysis.completed"
	EventAnalysisFailed    = "analysis.failed"
)

// AnalysisEvent is the payload published when a job reaches a terminal
// state. Consumers key on ProgressID.
type AnalysisEvent struct {
	Type            string    `json:"type"`
	ProgressID      string    `json:"progressId"`
	ResultID        string    `json:"resultId,omitempty"`
	EmailsProcessed int       `json:"emailsProcessed"`
	TotalEmails     int       `json:"totalEmails"`
	ErrorMessage    string    `json:"errorMessage,omitempty"`
	OccurredAt      time.Time `json:"occurredAt"`
}

// Publisher emits analysis lifecycle events.
type Publisher interface {
	PublishCompleted(ctx context.Context, event AnalysisEvent)
	PublishFailed(ctx context.Context, event AnalysisEvent)
}
