package usecase

import (
	"context"
	"errors"
	"time"

	"climate-srv/internal/analysis"
	"climate-srv/internal/analysis/repository"
	"climate-srv/internal/model"
)

const defaultRangeDays = 30

// Start checks that no job is running, creates the progress record and
// launches the fetch-analyze-store sequence in the background. The
// caller gets the progress id back immediately.
func (uc *implUseCase) Start(ctx context.Context, filters analysis.Filters) (analysis.StartOutput, error) {
	if filters.DateFrom != nil && filters.DateTo != nil && filters.DateFrom.After(*filters.DateTo) {
		return analysis.StartOutput{}, analysis.ErrInvalidDateRange
	}

	now := time.Now().UTC()
	if filters.DateTo == nil {
		to := now
		filters.DateTo = &to
	}
	if filters.DateFrom == nil {
		from := now.AddDate(0, 0, -defaultRangeDays)
		filters.DateFrom = &from
	}

	uc.mu.Lock()
	latest, err := uc.progressRepo.GetLatest(ctx)
	if err != nil && !errors.Is(err, repository.ErrProgressNotFound) {
		uc.mu.Unlock()
		uc.l.Errorf(ctx, "analysis.usecase.Start: %v", err)
		return analysis.StartOutput{}, err
	}
	if err == nil && latest.Status == model.AnalysisStatusRunning {
		uc.mu.Unlock()
		return analysis.StartOutput{}, analysis.ErrAlreadyRunning
	}

	progress, err := uc.progressRepo.Create(ctx, analysis.CreateProgressInput{
		Status: model.AnalysisStatusRunning,
	})
	if err != nil {
		uc.mu.Unlock()
		uc.l.Errorf(ctx, "analysis.usecase.Start: %v", err)
		return analysis.StartOutput{}, err
	}
	uc.mu.Unlock()

	// the job outlives the HTTP request; detach from its deadline but
	// keep a cancel handle so Stop can abort in-flight collaborator calls
	jobCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	uc.jobMu.Lock()
	uc.cancelJob = cancel
	uc.jobMu.Unlock()

	go uc.run(jobCtx, progress.ID, filters)

	uc.l.Infof(ctx, "analysis.usecase.Start: launched job %s", progress.ID)
	return analysis.StartOutput{ProgressID: progress.ID}, nil
}

// Stop marks the running job as paused and cancels its context. The
// background sequence observes either signal and exits without writing
// a result. There is no resume; the next Start begins from scratch.
func (uc *implUseCase) Stop(ctx context.Context) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	// progressMu is held across the precondition read, the paused write
	// and the cancel, so the job cannot write a stale running snapshot
	// in between, and a job that already finalized is seen as such.
	uc.progressMu.Lock()
	defer uc.progressMu.Unlock()

	latest, err := uc.progressRepo.GetLatest(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrProgressNotFound) {
			return analysis.ErrNotRunning
		}
		uc.l.Errorf(ctx, "analysis.usecase.Stop: %v", err)
		return err
	}
	if latest.Status != model.AnalysisStatusRunning {
		return analysis.ErrNotRunning
	}

	paused := model.AnalysisStatusPaused
	if _, err := uc.progressRepo.Update(ctx, latest.ID, analysis.UpdateProgressInput{Status: &paused}); err != nil {
		uc.l.Errorf(ctx, "analysis.usecase.Stop: %v", err)
		return err
	}

	uc.jobMu.Lock()
	if uc.cancelJob != nil {
		uc.cancelJob()
		uc.cancelJob = nil
	}
	uc.jobMu.Unlock()

	uc.l.Infof(ctx, "analysis.usecase.Stop: paused job %s", latest.ID)
	return nil
}

// GetProgress returns the latest progress record, or idle defaults when
// no job has ever run.
func (uc *implUseCase) GetProgress(ctx context.Context) (model.AnalysisProgress, error) {
	latest, err := uc.progressRepo.GetLatest(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrProgressNotFound) {
			return model.AnalysisProgress{Status: model.AnalysisStatusIdle}, nil
		}
		uc.l.Errorf(ctx, "analysis.usecase.GetProgress: %v", err)
		return model.AnalysisProgress{}, err
	}
	return latest, nil
}

func (uc *implUseCase) GetActiveResult(ctx context.Context) (model.AnalysisResult, error) {
	result, err := uc.resultRepo.GetActive(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrResultNotFound) {
			return model.AnalysisResult{}, analysis.ErrNoActiveResult
		}
		uc.l.Errorf(ctx, "analysis.usecase.GetActiveResult: %v", err)
		return model.AnalysisResult{}, err
	}
	return result, nil
}

func (uc *implUseCase) GetResultHistory(ctx context.Context) ([]model.AnalysisResult, error) {
	results, err := uc.resultRepo.GetAll(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "analysis.usecase.GetResultHistory: %v", err)
		return nil, err
	}
	return results, nil
}
