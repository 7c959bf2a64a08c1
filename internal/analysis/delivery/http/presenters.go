package http

import (
	"time"

	"climate-srv/internal/model"
)

// =====================================================
// Request DTOs
// =====================================================

type startReq struct {
	DateFrom    string   `json:"dateFrom,omitempty"`
	DateTo      string   `json:"dateTo,omitempty"`
	Departments []string `json:"departments,omitempty"`
	Countries   []string `json:"countries,omitempty"`
}

// =====================================================
// Response DTOs
// =====================================================

type startResp struct {
	Message    string `json:"message"`
	ProgressID string `json:"progressId"`
}

type messageResp struct {
	Message string `json:"message"`
}

type progressResp struct {
	ID              string     `json:"id,omitempty"`
	Status          string     `json:"status"`
	Progress        int        `json:"progress"`
	EmailsProcessed int        `json:"emailsProcessed"`
	TotalEmails     int        `json:"totalEmails"`
	StartedAt       *time.Time `json:"startedAt,omitempty"`
	CompletedAt     *time.Time `json:"completedAt,omitempty"`
	ErrorMessage    string     `json:"errorMessage,omitempty"`
}

type resultResp struct {
	ID                  string                 `json:"id"`
	AnalysisDate        time.Time              `json:"analysisDate"`
	TotalEmailsAnalyzed int                    `json:"totalEmailsAnalyzed"`
	AnalysisResult      *model.ClimateAnalysis `json:"analysisResult"`
	Confidence          int                    `json:"confidence,omitempty"`
	IsActive            bool                   `json:"isActive"`
	Departments         []string               `json:"departments,omitempty"`
	Countries           []string               `json:"countries,omitempty"`
	DateFrom            *time.Time             `json:"dateFrom,omitempty"`
	DateTo              *time.Time             `json:"dateTo,omitempty"`
}

func (h *handler) newProgressResp(progress model.AnalysisProgress) progressResp {
	resp := progressResp{
		ID:              progress.ID,
		Status:          string(progress.Status),
		Progress:        progress.Progress,
		EmailsProcessed: progress.EmailsProcessed,
		TotalEmails:     progress.TotalEmails,
		CompletedAt:     progress.CompletedAt,
		ErrorMessage:    progress.ErrorMessage,
	}
	if !progress.StartedAt.IsZero() {
		startedAt := progress.StartedAt
		resp.StartedAt = &startedAt
	}
	return resp
}

func (h *handler) newResultResp(result model.AnalysisResult) resultResp {
	return resultResp{
		ID:                  result.ID,
		AnalysisDate:        result.AnalysisDate,
		TotalEmailsAnalyzed: result.TotalEmailsAnalyzed,
		AnalysisResult:      result.AnalysisResult,
		Confidence:          result.Confidence,
		IsActive:            result.IsActive,
		Departments:         result.Departments,
		Countries:           result.Countries,
		DateFrom:            result.DateFrom,
		DateTo:              result.DateTo,
	}
}

func (h *handler) newResultHistoryResp(results []model.AnalysisResult) []resultResp {
	resp := make([]resultResp, 0, len(results))
	for _, r := range results {
		resp = append(resp, h.newResultResp(r))
	}
	return resp
}
