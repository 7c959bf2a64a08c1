package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"climate-srv/internal/analysis"
	"climate-srv/internal/analysis/repository"
	"climate-srv/internal/model"
	pkgRedis "climate-srv/pkg/redis"
)

const (
	progressKeyPrefix = "analysis:progress:"
	latestPointerKey  = "analysis:progress:latest"

	// progress records outlive the job so the dashboard can show the
	// outcome of the last run, but do not need to live forever.
	progressTTL = 30 * 24 * time.Hour
)

func progressKey(id string) string {
	return progressKeyPrefix + id
}

func (r *implProgressRepository) Create(ctx context.Context, input analysis.CreateProgressInput) (model.AnalysisProgress, error) {
	record := model.AnalysisProgress{
		ID:              uuid.NewString(),
		Status:          input.Status,
		Progress:        input.Progress,
		EmailsProcessed: input.EmailsProcessed,
		TotalEmails:     input.TotalEmails,
		StartedAt:       time.Now().UTC(),
	}

	if err := r.save(ctx, record); err != nil {
		r.l.Errorf(ctx, "analysis.repository.redis.Create: %v", err)
		return model.AnalysisProgress{}, err
	}

	if err := r.redis.Set(ctx, latestPointerKey, record.ID, progressTTL); err != nil {
		r.l.Errorf(ctx, "analysis.repository.redis.Create: set latest pointer: %v", err)
		return model.AnalysisProgress{}, fmt.Errorf("Create: %w", err)
	}

	return record, nil
}

func (r *implProgressRepository) Update(ctx context.Context, id string, input analysis.UpdateProgressInput) (model.AnalysisProgress, error) {
	record, err := r.load(ctx, id)
	if err != nil {
		return model.AnalysisProgress{}, err
	}

	if input.Status != nil {
		record.Status = *input.Status
	}
	if input.Progress != nil {
		record.Progress = *input.Progress
	}
	if input.EmailsProcessed != nil {
		record.EmailsProcessed = *input.EmailsProcessed
	}
	if input.TotalEmails != nil {
		record.TotalEmails = *input.TotalEmails
	}
	if input.ErrorMessage != nil {
		record.ErrorMessage = *input.ErrorMessage
	}

	if record.Status.IsTerminal() && record.CompletedAt == nil {
		now := time.Now().UTC()
		record.CompletedAt = &now
	}

	if err := r.save(ctx, record); err != nil {
		r.l.Errorf(ctx, "analysis.repository.redis.Update: %v", err)
		return model.AnalysisProgress{}, err
	}

	return record, nil
}

func (r *implProgressRepository) GetLatest(ctx context.Context) (model.AnalysisProgress, error) {
	id, err := r.redis.Get(ctx, latestPointerKey)
	if err != nil {
		if errors.Is(err, pkgRedis.ErrNil) {
			return model.AnalysisProgress{}, repository.ErrProgressNotFound
		}
		r.l.Errorf(ctx, "analysis.repository.redis.GetLatest: %v", err)
		return model.AnalysisProgress{}, fmt.Errorf("GetLatest: %w", err)
	}

	return r.load(ctx, id)
}

func (r *implProgressRepository) save(ctx context.Context, record model.AnalysisProgress) error {
	raw, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("marshal progress record: %w", err)
	}
	if err := r.redis.Set(ctx, progressKey(record.ID), raw, progressTTL); err != nil {
		return fmt.Errorf("save progress record: %w", err)
	}
	return nil
}

func (r *implProgressRepository) load(ctx context.Context, id string) (model.AnalysisProgress, error) {
	raw, err := r.redis.Get(ctx, progressKey(id))
	if err != nil {
		if errors.Is(err, pkgRedis.ErrNil) {
			return model.AnalysisProgress{}, repository.ErrProgressNotFound
		}
		return model.AnalysisProgress{}, fmt.Errorf("load progress record: %w", err)
	}

	var record model.AnalysisProgress
	if err := json.Unmarshal([]byte(raw), &record); err != nil {
		return model.AnalysisProgress{}, fmt.Errorf("decode progress record: %w", err)
	}
	return record, nil
}
