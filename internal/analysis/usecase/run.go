package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"time"

	"climate-srv/internal/analysis"
	deliveryKafka "climate-srv/internal/analysis/delivery/kafka"
	"climate-srv/internal/model"
)

// run executes the fetch-analyze-store sequence for one job. All
// failures end as a terminal progress update; nothing escapes into the
// runtime.
func (uc *implUseCase) run(ctx context.Context, progressID string, filters analysis.Filters) {
	defer func() {
		if r := recover(); r != nil {
			uc.l.Errorf(ctx, "analysis job %s panicked: %v", progressID, r)
			uc.markFailed(ctx, progressID, 0, 0, fmt.Errorf("internal error: %v", r))
		}
		uc.clearCancel()
	}()

	if !uc.collab.Ready(ctx) {
		uc.l.Infof(ctx, "analysis job %s: collaborators unconfigured, using demonstration data", progressID)
		uc.runDemo(ctx, progressID, filters)
		return
	}
	uc.runReal(ctx, progressID, filters)
}

func (uc *implUseCase) runReal(ctx context.Context, progressID string, filters analysis.Filters) {
	fetcher, err := uc.collab.Fetcher(ctx)
	if err != nil {
		uc.markFailed(ctx, progressID, 0, 0, err)
		return
	}
	engine, err := uc.collab.Engine(ctx)
	if err != nil {
		uc.markFailed(ctx, progressID, 0, 0, err)
		return
	}

	comms, err := fetcher.FetchCommunications(ctx, filters)
	if err != nil {
		if ctx.Err() != nil {
			// stopped mid-fetch; Stop already marked the record paused
			return
		}
		uc.markFailed(ctx, progressID, 0, 0, err)
		return
	}

	total := len(comms)
	if err := uc.pushProgress(ctx, progressID, 0, total); err != nil {
		if ctx.Err() != nil {
			return
		}
		uc.markFailed(ctx, progressID, 0, total, err)
		return
	}
	if total == 0 {
		uc.markFailed(ctx, progressID, 0, 0, analysis.ErrNoCommunications)
		return
	}

	batch := make([]model.Communication, 0, total)
	processed := 0
	for _, comm := range comms {
		if ctx.Err() != nil {
			return
		}

		seen, err := uc.resultRepo.IsCommunicationSeen(ctx, comm.ID)
		if err != nil {
			uc.markFailed(ctx, progressID, processed, total, err)
			return
		}
		if !seen {
			if err := uc.resultRepo.MarkCommunicationSeen(ctx, comm.ID); err != nil {
				uc.markFailed(ctx, progressID, processed, total, err)
				return
			}
		}

		batch = append(batch, comm)
		processed++

		if processed%uc.cfg.UpdateEvery == 0 || processed == total {
			if err := uc.pushProgress(ctx, progressID, processed, total); err != nil {
				if ctx.Err() != nil {
					return
				}
				uc.markFailed(ctx, progressID, processed, total, err)
				return
			}
		}

		if uc.cfg.ItemPause > 0 && processed%uc.cfg.YieldEvery == 0 {
			select {
			case <-ctx.Done():
				return
			case <-time.After(uc.cfg.ItemPause):
			}
		}
	}

	doc, confidence, err := engine.Analyze(ctx, batch)
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		uc.markFailed(ctx, progressID, processed, total, err)
		return
	}

	result, err := uc.resultRepo.Create(ctx, analysis.CreateResultInput{
		TotalEmailsAnalyzed: total,
		Document:            doc,
		Confidence:          confidence,
		Departments:         filters.Departments,
		Countries:           filters.Countries,
		DateFrom:            filters.DateFrom,
		DateTo:              filters.DateTo,
	})
	if err != nil {
		uc.markFailed(ctx, progressID, processed, total, err)
		return
	}

	uc.finalize(ctx, progressID, result, total)
}

// finalize marks the job completed, archives the document and publishes
// the completion event.
func (uc *implUseCase) finalize(ctx context.Context, progressID string, result model.AnalysisResult, total int) {
	uc.archiveResult(ctx, result)

	completed := model.AnalysisStatusCompleted
	progress := 100
	processed := total

	// the result is already durable, so the terminal status is written
	// even when a stop raced in after the store
	uc.progressMu.Lock()
	_, err := uc.progressRepo.Update(context.WithoutCancel(ctx), progressID, analysis.UpdateProgressInput{
		Status:          &completed,
		Progress:        &progress,
		EmailsProcessed: &processed,
		TotalEmails:     &total,
	})
	uc.progressMu.Unlock()
	if err != nil {
		uc.l.Errorf(ctx, "analysis job %s: finalize progress: %v", progressID, err)
	}

	if uc.publisher != nil {
		uc.publisher.PublishCompleted(ctx, deliveryKafka.AnalysisEvent{
			ProgressID:      progressID,
			ResultID:        result.ID,
			EmailsProcessed: total,
			TotalEmails:     total,
		})
	}

	uc.l.Infof(ctx, "analysis job %s completed: %d communications, result %s", progressID, total, result.ID)
}

// pushProgress writes one ordered progress update for the job. The
// context is rechecked under progressMu: once Stop has written paused
// and cancelled the job, no further loop update may reach the store.
func (uc *implUseCase) pushProgress(ctx context.Context, progressID string, processed, total int) error {
	uc.progressMu.Lock()
	defer uc.progressMu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}

	pct := 0
	if total > 0 {
		pct = int(math.Round(float64(processed) / float64(total) * 100))
	}

	_, err := uc.progressRepo.Update(ctx, progressID, analysis.UpdateProgressInput{
		Progress:        &pct,
		EmailsProcessed: &processed,
		TotalEmails:     &total,
	})
	return err
}

// markFailed converts any job failure into a terminal progress update.
// The write uses a detached context so a cause that cancelled ctx does
// not also suppress the error report.
func (uc *implUseCase) markFailed(ctx context.Context, progressID string, processed, total int, cause error) {
	uc.l.Errorf(ctx, "analysis job %s failed: %v", progressID, cause)

	storeCtx := context.WithoutCancel(ctx)
	errStatus := model.AnalysisStatusError
	msg := cause.Error()

	uc.progressMu.Lock()
	_, err := uc.progressRepo.Update(storeCtx, progressID, analysis.UpdateProgressInput{
		Status:       &errStatus,
		ErrorMessage: &msg,
	})
	uc.progressMu.Unlock()
	if err != nil {
		uc.l.Errorf(ctx, "analysis job %s: record failure: %v", progressID, err)
	}

	if uc.publisher != nil {
		uc.publisher.PublishFailed(storeCtx, deliveryKafka.AnalysisEvent{
			ProgressID:      progressID,
			EmailsProcessed: processed,
			TotalEmails:     total,
			ErrorMessage:    msg,
		})
	}
}

// archiveResult uploads the finished document to object storage. Best
// effort: the result is already durable in the database.
func (uc *implUseCase) archiveResult(ctx context.Context, result model.AnalysisResult) {
	if uc.archive == nil {
		return
	}

	payload, err := json.Marshal(result)
	if err != nil {
		uc.l.Warnf(ctx, "analysis archive: marshal result %s: %v", result.ID, err)
		return
	}

	objectName := fmt.Sprintf("analyses/%s.json", result.ID)
	if err := uc.archive.Upload(ctx, objectName, payload, "application/json"); err != nil {
		uc.l.Warnf(ctx, "analysis archive: upload %s: %v", objectName, err)
	}
}

func (uc *implUseCase) clearCancel() {
	uc.jobMu.Lock()
	if uc.cancelJob != nil {
		uc.cancelJob()
		uc.cancelJob = nil
	}
	uc.jobMu.Unlock()
}
