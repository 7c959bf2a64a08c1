package repository

import (
	"context"

	"climate-srv/internal/analysis"
	"climate-srv/internal/model"
)

// ProgressRepository holds the state of analysis jobs. At most one job
// is running at a time; the orchestrator serializes updates per job.
type ProgressRepository interface {
	// Create allocates an id, stamps startedAt and persists the record.
	Create(ctx context.Context, input analysis.CreateProgressInput) (model.AnalysisProgress, error)
	// Update merges the given fields into the record. A terminal status
	// stamps completedAt. Returns ErrProgressNotFound for unknown ids.
	Update(ctx context.Context, id string, input analysis.UpdateProgressInput) (model.AnalysisProgress, error)
	// GetLatest returns the most recently started record.
	// Returns ErrProgressNotFound if no job has ever run.
	GetLatest(ctx context.Context) (model.AnalysisProgress, error)
}

// ResultRepository persists completed analysis documents.
type ResultRepository interface {
	// Create deactivates every stored result and inserts the new one as
	// active, within a single transaction.
	Create(ctx context.Context, input analysis.CreateResultInput) (model.AnalysisResult, error)
	// GetActive returns the active result or ErrResultNotFound.
	GetActive(ctx context.Context) (model.AnalysisResult, error)
	// GetAll returns all results ordered by analysisDate, newest first.
	GetAll(ctx context.Context) ([]model.AnalysisResult, error)
	// MarkCommunicationSeen records that a communication id was analyzed.
	MarkCommunicationSeen(ctx context.Context, commID string) error
	// IsCommunicationSeen reports whether a communication id was analyzed
	// by a prior job.
	IsCommunicationSeen(ctx context.Context, commID string) (bool, error)
}
