package model

import "time"

// AnalysisResult is a completed analysis document with the filters
// that produced it. Immutable once created; exactly one stored result
// is active at any time.
type AnalysisResult struct {
	ID                  string           `json:"id"`
	AnalysisDate        time.Time        `json:"analysisDate"`
	TotalEmailsAnalyzed int              `json:"totalEmailsAnalyzed"`
	AnalysisResult      *ClimateAnalysis `json:"analysisResult"`
	Confidence          int              `json:"confidence,omitempty"`
	IsActive            bool             `json:"isActive"`
	Departments         []string         `json:"departments,omitempty"`
	Countries           []string         `json:"countries,omitempty"`
	DateFrom            *time.Time       `json:"dateFrom,omitempty"`
	DateTo              *time.Time       `json:"dateTo,omitempty"`
}
