package analysis

import (
	"time"

	"climate-srv/internal/model"
)

// Filters narrows the set of communications an analysis covers.
// Zero values mean "no restriction"; nil date bounds get defaulted
// by the orchestrator.
type Filters struct {
	DateFrom    *time.Time
	DateTo      *time.Time
	Departments []string
	Countries   []string
}

// StartOutput is returned by Start once the job is accepted.
type StartOutput struct {
	ProgressID string
}

// CreateResultInput carries one completed analysis document into the
// result store.
type CreateResultInput struct {
	TotalEmailsAnalyzed int
	Document            *model.ClimateAnalysis
	Confidence          int
	Departments         []string
	Countries           []string
	DateFrom            *time.Time
	DateTo              *time.Time
}

// CreateProgressInput is the initial state of a new progress record.
type CreateProgressInput struct {
	Status          model.AnalysisStatus
	Progress        int
	EmailsProcessed int
	TotalEmails     int
}

// UpdateProgressInput carries a partial progress update. Nil fields
// are left unchanged by the store.
type UpdateProgressInput struct {
	Status          *model.AnalysisStatus
	Progress        *int
	EmailsProcessed *int
	TotalEmails     *int
	ErrorMessage    *string
}
