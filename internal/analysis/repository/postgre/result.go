package postgre

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"climate-srv/internal/analysis"
	"climate-srv/internal/analysis/repository"
	"climate-srv/internal/model"
)

func (r *implResultRepository) Create(ctx context.Context, input analysis.CreateResultInput) (model.AnalysisResult, error) {
	document, err := json.Marshal(input.Document)
	if err != nil {
		return model.AnalysisResult{}, fmt.Errorf("Create: marshal document: %w", err)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return model.AnalysisResult{}, fmt.Errorf("Create: begin tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	// deactivate and insert must be one atomic step so exactly one
	// result is active at any point in time
	if _, err := tx.ExecContext(ctx, `
		UPDATE climate.analysis_results SET is_active = false WHERE is_active = true
	`); err != nil {
		return model.AnalysisResult{}, fmt.Errorf("Create: deactivate previous: %w", err)
	}

	result := model.AnalysisResult{
		ID:                  uuid.New().String(),
		AnalysisDate:        time.Now().UTC(),
		TotalEmailsAnalyzed: input.TotalEmailsAnalyzed,
		AnalysisResult:      input.Document,
		Confidence:          input.Confidence,
		IsActive:            true,
		Departments:         input.Departments,
		Countries:           input.Countries,
		DateFrom:            input.DateFrom,
		DateTo:              input.DateTo,
	}

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO climate.analysis_results
			(id, analysis_date, total_emails_analyzed, analysis_result, confidence, is_active, departments, countries, date_from, date_to)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`,
		result.ID, result.AnalysisDate, result.TotalEmailsAnalyzed, document,
		result.Confidence, result.IsActive,
		pq.Array(result.Departments), pq.Array(result.Countries),
		result.DateFrom, result.DateTo,
	); err != nil {
		return model.AnalysisResult{}, fmt.Errorf("Create: insert result: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return model.AnalysisResult{}, fmt.Errorf("Create: commit: %w", err)
	}

	return result, nil
}

func (r *implResultRepository) GetActive(ctx context.Context) (model.AnalysisResult, error) {
	query := `
		SELECT id, analysis_date, total_emails_analyzed, analysis_result, confidence, is_active, departments, countries, date_from, date_to
		FROM climate.analysis_results
		WHERE is_active = true
	`

	result, err := r.scanResult(r.db.QueryRowContext(ctx, query))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.AnalysisResult{}, repository.ErrResultNotFound
		}
		return model.AnalysisResult{}, fmt.Errorf("GetActive: %w", err)
	}
	return result, nil
}

func (r *implResultRepository) GetAll(ctx context.Context) ([]model.AnalysisResult, error) {
	query := `
		SELECT id, analysis_date, total_emails_analyzed, analysis_result, confidence, is_active, departments, countries, date_from, date_to
		FROM climate.analysis_results
		ORDER BY analysis_date DESC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("GetAll: %w", err)
	}
	defer rows.Close()

	results := []model.AnalysisResult{}
	for rows.Next() {
		result, err := r.scanResult(rows)
		if err != nil {
			return nil, fmt.Errorf("GetAll: %w", err)
		}
		results = append(results, result)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("GetAll: %w", err)
	}

	return results, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *implResultRepository) scanResult(row rowScanner) (model.AnalysisResult, error) {
	var (
		result     model.AnalysisResult
		document   []byte
		confidence sql.NullInt64
		dateFrom   sql.NullTime
		dateTo     sql.NullTime
	)

	err := row.Scan(
		&result.ID, &result.AnalysisDate, &result.TotalEmailsAnalyzed,
		&document, &confidence, &result.IsActive,
		pq.Array(&result.Departments), pq.Array(&result.Countries),
		&dateFrom, &dateTo,
	)
	if err != nil {
		return model.AnalysisResult{}, err
	}

	var doc model.ClimateAnalysis
	if err := json.Unmarshal(document, &doc); err != nil {
		return model.AnalysisResult{}, fmt.Errorf("decode document: %w", err)
	}
	result.AnalysisResult = &doc

	if confidence.Valid {
		result.Confidence = int(confidence.Int64)
	}
	if dateFrom.Valid {
		result.DateFrom = &dateFrom.Time
	}
	if dateTo.Valid {
		result.DateTo = &dateTo.Time
	}

	return result, nil
}
