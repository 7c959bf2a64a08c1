package connection

import (
	"context"

	"climate-srv/internal/analysis"
	"climate-srv/pkg/msgraph"
)

// UseCase manages collaborator credentials and hands the analysis
// orchestrator its collaborators. Saving config invalidates any cached
// clients so the next job sees the new credentials.
type UseCase interface {
	analysis.Collaborators

	GetStatus(ctx context.Context) (Status, error)
	SaveConfig(ctx context.Context, input SaveConfigInput) error
	// Graph exposes the directory client for read-only metadata lookups.
	Graph(ctx context.Context) (msgraph.IGraph, error)
}
