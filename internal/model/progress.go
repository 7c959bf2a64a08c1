package model

import "time"

// AnalysisStatus represents the lifecycle state of an analysis job.
type AnalysisStatus string

const (
	AnalysisStatusIdle      AnalysisStatus = "idle"
	AnalysisStatusRunning   AnalysisStatus = "running"
	AnalysisStatusPaused    AnalysisStatus = "paused"
	AnalysisStatusCompleted AnalysisStatus = "completed"
	AnalysisStatusError     AnalysisStatus = "error"
)

// IsTerminal reports whether the status is a terminal state.
func (s AnalysisStatus) IsTerminal() bool {
	return s == AnalysisStatusCompleted || s == AnalysisStatusError
}

// AnalysisProgress is the progress record of one analysis job.
// It is owned by the analysis orchestrator and read by the polling client.
type AnalysisProgress struct {
	ID              string         `json:"id"`
	Status          AnalysisStatus `json:"status"`
	Progress        int            `json:"progress"`
	EmailsProcessed int            `json:"emailsProcessed"`
	TotalEmails     int            `json:"totalEmails"`
	StartedAt       time.Time      `json:"startedAt"`
	CompletedAt     *time.Time     `json:"completedAt,omitempty"`
	ErrorMessage    string         `json:"errorMessage,omitempty"`
}
