package usecase

import (
	"context"
	"sync"
	"time"

	"climate-srv/internal/analysis"
	deliveryKafka "climate-srv/internal/analysis/delivery/kafka"
	"climate-srv/internal/analysis/repository"
	"climate-srv/pkg/log"
	"climate-srv/pkg/minio"
)

const (
	defaultUpdateEvery   = 5
	defaultYieldEvery    = 10
	defaultItemPause     = 100 * time.Millisecond
	defaultDemoStepDelay = 700 * time.Millisecond
)

// Config tunes the orchestrator's pacing. Zero values pick defaults;
// tests set the delays to a negative value to run at full speed.
type Config struct {
	// UpdateEvery pushes a progress update every N processed items.
	// The final item always pushes one.
	UpdateEvery int
	// YieldEvery pauses for ItemPause every N items so a long loop does
	// not starve the runtime.
	YieldEvery int
	ItemPause  time.Duration
	// DemoStepDelay paces the demonstration path's simulated steps.
	DemoStepDelay time.Duration
}

func (c Config) withDefaults() Config {
	if c.UpdateEvery <= 0 {
		c.UpdateEvery = defaultUpdateEvery
	}
	if c.YieldEvery <= 0 {
		c.YieldEvery = defaultYieldEvery
	}
	if c.ItemPause == 0 {
		c.ItemPause = defaultItemPause
	}
	if c.DemoStepDelay == 0 {
		c.DemoStepDelay = defaultDemoStepDelay
	}
	return c
}

type implUseCase struct {
	l   log.Logger
	cfg Config

	progressRepo repository.ProgressRepository
	resultRepo   repository.ResultRepository
	collab       analysis.Collaborators
	publisher    deliveryKafka.Publisher
	archive      minio.IMinIO

	// mu serializes the start precondition check with progress record
	// creation so two concurrent Start calls cannot both pass.
	mu sync.Mutex

	// progressMu serializes every progress write for the current job.
	// Stop's paused write holds it together with the context cancel, and
	// pushProgress rechecks the context under it, so an in-flight loop
	// update can never save a stale running snapshot over paused.
	progressMu sync.Mutex

	jobMu     sync.Mutex
	cancelJob context.CancelFunc
}

var _ analysis.UseCase = &implUseCase{}

// New builds the analysis orchestrator. publisher and archive are
// optional; pass nil to disable event publishing or archiving.
func New(
	l log.Logger,
	cfg Config,
	progressRepo repository.ProgressRepository,
	resultRepo repository.ResultRepository,
	collab analysis.Collaborators,
	publisher deliveryKafka.Publisher,
	archive minio.IMinIO,
) analysis.UseCase {
	return &implUseCase{
		l:            l,
		cfg:          cfg.withDefaults(),
		progressRepo: progressRepo,
		resultRepo:   resultRepo,
		collab:       collab,
		publisher:    publisher,
		archive:      archive,
	}
}
