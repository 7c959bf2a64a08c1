package analysis

import (
	"context"

	"climate-srv/internal/model"
)

// UseCase drives analysis jobs and exposes their progress and results.
type UseCase interface {
	// Start validates that no job is running, creates a progress record
	// and launches the analysis in the background. Returns immediately.
	Start(ctx context.Context, filters Filters) (StartOutput, error)
	// Stop requests cooperative cancellation of the running job.
	Stop(ctx context.Context) error
	// GetProgress returns the latest progress record, or idle defaults
	// if no job has ever run.
	GetProgress(ctx context.Context) (model.AnalysisProgress, error)
	// GetActiveResult returns the currently active analysis result.
	GetActiveResult(ctx context.Context) (model.AnalysisResult, error)
	// GetResultHistory returns all results, newest first.
	GetResultHistory(ctx context.Context) ([]model.AnalysisResult, error)
}

// Fetcher produces the communications an analysis covers.
type Fetcher interface {
	FetchCommunications(ctx context.Context, filters Filters) ([]model.Communication, error)
}

// Engine turns a batch of communications into a validated analysis
// document with a confidence score.
type Engine interface {
	Analyze(ctx context.Context, comms []model.Communication) (*model.ClimateAnalysis, int, error)
}

// Collaborators hands the orchestrator its external collaborators,
// built from whatever credentials are currently stored. Ready reports
// whether both are configured; when it is false the orchestrator falls
// back to the demonstration path.
type Collaborators interface {
	Ready(ctx context.Context) bool
	Fetcher(ctx context.Context) (Fetcher, error)
	Engine(ctx context.Context) (Engine, error)
}
