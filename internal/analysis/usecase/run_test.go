package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"

	"climate-srv/internal/analysis"
	"climate-srv/internal/analysis/repository"
	"climate-srv/internal/model"
	"climate-srv/pkg/log"
)

type fakeProgressRepo struct {
	mu      sync.Mutex
	records map[string]model.AnalysisProgress
	order   []string
	history []model.AnalysisProgress
}

func newFakeProgressRepo() *fakeProgressRepo {
	return &fakeProgressRepo{records: map[string]model.AnalysisProgress{}}
}

func (f *fakeProgressRepo) Create(ctx context.Context, input analysis.CreateProgressInput) (model.AnalysisProgress, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	record := model.AnalysisProgress{
		ID:              uuid.NewString(),
		Status:          input.Status,
		Progress:        input.Progress,
		EmailsProcessed: input.EmailsProcessed,
		TotalEmails:     input.TotalEmails,
		StartedAt:       time.Now().UTC(),
	}
	f.records[record.ID] = record
	f.order = append(f.order, record.ID)
	return record, nil
}

func (f *fakeProgressRepo) Update(ctx context.Context, id string, input analysis.UpdateProgressInput) (model.AnalysisProgress, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	record, ok := f.records[id]
	if !ok {
		return model.AnalysisProgress{}, repository.ErrProgressNotFound
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
	f.records[id] = record
	f.history = append(f.history, record)
	return record, nil
}

func (f *fakeProgressRepo) GetLatest(ctx context.Context) (model.AnalysisProgress, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.order) == 0 {
		return model.AnalysisProgress{}, repository.ErrProgressNotFound
	}
	return f.records[f.order[len(f.order)-1]], nil
}

func (f *fakeProgressRepo) snapshots(id string) []model.AnalysisProgress {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []model.AnalysisProgress
	for _, h := range f.history {
		if h.ID == id {
			out = append(out, h)
		}
	}
	return out
}

type fakeResultRepo struct {
	mu      sync.Mutex
	results []model.AnalysisResult
	seen    map[string]bool
}

func newFakeResultRepo() *fakeResultRepo {
	return &fakeResultRepo{seen: map[string]bool{}}
}

func (f *fakeResultRepo) Create(ctx context.Context, input analysis.CreateResultInput) (model.AnalysisResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.results {
		f.results[i].IsActive = false
	}
	result := model.AnalysisResult{
		ID:                  uuid.NewString(),
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
	f.results = append(f.results, result)
	return result, nil
}

func (f *fakeResultRepo) GetActive(ctx context.Context) (model.AnalysisResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, r := range f.results {
		if r.IsActive {
			return r, nil
		}
	}
	return model.AnalysisResult{}, repository.ErrResultNotFound
}

func (f *fakeResultRepo) GetAll(ctx context.Context) ([]model.AnalysisResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]model.AnalysisResult, len(f.results))
	copy(out, f.results)
	return out, nil
}

func (f *fakeResultRepo) MarkCommunicationSeen(ctx context.Context, commID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.seen[commID] = true
	return nil
}

func (f *fakeResultRepo) IsCommunicationSeen(ctx context.Context, commID string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.seen[commID], nil
}

func (f *fakeResultRepo) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.results)
}

type fetcherFunc func(ctx context.Context, filters analysis.Filters) ([]model.Communication, error)

func (fn fetcherFunc) FetchCommunications(ctx context.Context, filters analysis.Filters) ([]model.Communication, error) {
	return fn(ctx, filters)
}

type engineFunc func(ctx context.Context, comms []model.Communication) (*model.ClimateAnalysis, int, error)

func (fn engineFunc) Analyze(ctx context.Context, comms []model.Communication) (*model.ClimateAnalysis, int, error) {
	return fn(ctx, comms)
}

type fakeCollab struct {
	ready   bool
	fetcher analysis.Fetcher
	engine  analysis.Engine
}

func (f *fakeCollab) Ready(ctx context.Context) bool { return f.ready }

func (f *fakeCollab) Fetcher(ctx context.Context) (analysis.Fetcher, error) {
	if f.fetcher == nil {
		return nil, errors.New("fetcher unconfigured")
	}
	return f.fetcher, nil
}

func (f *fakeCollab) Engine(ctx context.Context) (analysis.Engine, error) {
	if f.engine == nil {
		return nil, errors.New("engine unconfigured")
	}
	return f.engine, nil
}

func makeComms(n int) []model.Communication {
	comms := make([]model.Communication, n)
	for i := range comms {
		comms[i] = model.Communication{
			ID:     fmt.Sprintf("comm-%d", i),
			Source: model.SourceMail,
			Sender: "alice@acme.com",
			SentAt: time.Now().UTC(),
		}
	}
	return comms
}

func validDoc() *model.ClimateAnalysis {
	indicators := make([]model.StrategicIndicator, 8)
	for i := range indicators {
		indicators[i] = model.StrategicIndicator{Indicador: "Indicador", Valor: 70, Descripcion: "d"}
	}
	return &model.ClimateAnalysis{
		DiagnosticoGeneral:      "diagnóstico",
		TipoDeCultura:           "Clan",
		IndicadoresEstrategicos: indicators,
		KPIs:                    []model.KPI{{Nombre: "k", ValorEstimado: "70%", Interpretacion: "i"}},
		OKRs:                    []model.OKR{{Objetivo: "o", ResultadosClave: []string{"r"}}},
		Fortalezas:              []string{"f"},
		Debilidades:             []string{"d"},
		Estrategias:             []string{"e"},
		RecomendacionesMetodologicas: []string{"rm"},
		PeopleAnalytics: &model.PeopleAnalytics{
			MetricasInternas:         model.InternalMetrics{Interpretacion: "i"},
			BenchmarkingExterno:      model.ExternalBenchmark{ComparacionIndustria: "c"},
			RiesgosFugaTalento:       model.TalentFlightRisk{NivelRiesgo: "Bajo"},
			RelacionClimaDesempeno:   model.ClimatePerformanceLink{Correlacion: "alta"},
			VinculacionProductividad: model.ProductivityLink{ImpactoProductividad: "p"},
		},
	}
}

func fastConfig() Config {
	return Config{UpdateEvery: 1, YieldEvery: 1000, ItemPause: -1, DemoStepDelay: -1}
}

func testUseCase(cfg Config, progress *fakeProgressRepo, results *fakeResultRepo, collab analysis.Collaborators) analysis.UseCase {
	l := log.Init(log.ZapConfig{Level: "error", Mode: "development", Encoding: "console"})
	return New(l, cfg, progress, results, collab, nil, nil)
}

func waitForStatus(t *testing.T, uc analysis.UseCase, want ...model.AnalysisStatus) model.AnalysisProgress {
	t.Helper()
	deadline := time.Now().Add(3 * time.Second)
	for time.Now().Before(deadline) {
		p, err := uc.GetProgress(context.Background())
		if err != nil {
			t.Fatalf("GetProgress() error = %v", err)
		}
		for _, w := range want {
			if p.Status == w {
				return p
			}
		}
		time.Sleep(5 * time.Millisecond)
	}
	p, _ := uc.GetProgress(context.Background())
	t.Fatalf("job did not reach %v in time, last progress: %+v", want, p)
	return model.AnalysisProgress{}
}

func TestStartEndToEnd(t *testing.T) {
	progress := newFakeProgressRepo()
	results := newFakeResultRepo()
	collab := &fakeCollab{
		ready:   true,
		fetcher: fetcherFunc(func(ctx context.Context, _ analysis.Filters) ([]model.Communication, error) { return makeComms(37), nil }),
		engine: engineFunc(func(ctx context.Context, comms []model.Communication) (*model.ClimateAnalysis, int, error) {
			if len(comms) != 37 {
				return nil, 0, fmt.Errorf("engine received %d communications, want 37", len(comms))
			}
			return validDoc(), 85, nil
		}),
	}
	uc := testUseCase(fastConfig(), progress, results, collab)

	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)
	out, err := uc.Start(context.Background(), analysis.Filters{
		DateFrom:    &from,
		DateTo:      &to,
		Departments: []string{"Ventas"},
	})
	if err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	if out.ProgressID == "" {
		t.Fatal("Start() returned empty progress id")
	}

	final := waitForStatus(t, uc, model.AnalysisStatusCompleted, model.AnalysisStatusError)
	if final.Status != model.AnalysisStatusCompleted {
		t.Fatalf("final status = %s (%s), want completed", final.Status, final.ErrorMessage)
	}
	if final.Progress != 100 || final.EmailsProcessed != 37 || final.TotalEmails != 37 {
		t.Errorf("final progress = %d%% %d/%d, want 100%% 37/37", final.Progress, final.EmailsProcessed, final.TotalEmails)
	}
	if final.CompletedAt == nil {
		t.Error("completed job has no completedAt")
	}

	// monotonic progress per observed update
	prev := -1
	for _, snap := range progress.snapshots(out.ProgressID) {
		if snap.EmailsProcessed < prev {
			t.Errorf("emailsProcessed regressed: %d after %d", snap.EmailsProcessed, prev)
		}
		prev = snap.EmailsProcessed
	}

	active, err := uc.GetActiveResult(context.Background())
	if err != nil {
		t.Fatalf("GetActiveResult() error = %v", err)
	}
	if active.TotalEmailsAnalyzed != 37 || !active.IsActive {
		t.Errorf("active result = %d emails active=%v, want 37/true", active.TotalEmailsAnalyzed, active.IsActive)
	}
	if active.Confidence != 85 {
		t.Errorf("confidence = %d, want 85", active.Confidence)
	}
}

func TestStartRejectsSecondJob(t *testing.T) {
	progress := newFakeProgressRepo()
	results := newFakeResultRepo()
	release := make(chan struct{})
	collab := &fakeCollab{
		ready: true,
		fetcher: fetcherFunc(func(ctx context.Context, _ analysis.Filters) ([]model.Communication, error) {
			select {
			case <-release:
				return makeComms(1), nil
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}),
		engine: engineFunc(func(ctx context.Context, comms []model.Communication) (*model.ClimateAnalysis, int, error) {
			return validDoc(), 85, nil
		}),
	}
	uc := testUseCase(fastConfig(), progress, results, collab)

	if _, err := uc.Start(context.Background(), analysis.Filters{}); err != nil {
		t.Fatalf("first Start() error = %v", err)
	}
	if _, err := uc.Start(context.Background(), analysis.Filters{}); !errors.Is(err, analysis.ErrAlreadyRunning) {
		t.Errorf("second Start() error = %v, want %v", err, analysis.ErrAlreadyRunning)
	}

	close(release)
	waitForStatus(t, uc, model.AnalysisStatusCompleted, model.AnalysisStatusError)
}

func TestStartInvalidDateRange(t *testing.T) {
	uc := testUseCase(fastConfig(), newFakeProgressRepo(), newFakeResultRepo(), &fakeCollab{})

	from := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	if _, err := uc.Start(context.Background(), analysis.Filters{DateFrom: &from, DateTo: &to}); !errors.Is(err, analysis.ErrInvalidDateRange) {
		t.Errorf("Start() error = %v, want %v", err, analysis.ErrInvalidDateRange)
	}
}

func TestEmptyFetchFailsJob(t *testing.T) {
	progress := newFakeProgressRepo()
	results := newFakeResultRepo()
	collab := &fakeCollab{
		ready:   true,
		fetcher: fetcherFunc(func(ctx context.Context, _ analysis.Filters) ([]model.Communication, error) { return nil, nil }),
		engine: engineFunc(func(ctx context.Context, comms []model.Communication) (*model.ClimateAnalysis, int, error) {
			t.Error("engine must not be called for an empty batch")
			return validDoc(), 85, nil
		}),
	}
	uc := testUseCase(fastConfig(), progress, results, collab)

	if _, err := uc.Start(context.Background(), analysis.Filters{}); err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	final := waitForStatus(t, uc, model.AnalysisStatusError)
	if !strings.Contains(final.ErrorMessage, "no communications found") {
		t.Errorf("errorMessage = %q, want no-communications message", final.ErrorMessage)
	}
	if results.count() != 0 {
		t.Error("empty fetch must not store a result")
	}
}

func TestStopCancelsRunningJob(t *testing.T) {
	progress := newFakeProgressRepo()
	results := newFakeResultRepo()
	engineEntered := make(chan struct{})
	collab := &fakeCollab{
		ready:   true,
		fetcher: fetcherFunc(func(ctx context.Context, _ analysis.Filters) ([]model.Communication, error) { return makeComms(5), nil }),
		engine: engineFunc(func(ctx context.Context, comms []model.Communication) (*model.ClimateAnalysis, int, error) {
			close(engineEntered)
			<-ctx.Done()
			return nil, 0, ctx.Err()
		}),
	}
	uc := testUseCase(fastConfig(), progress, results, collab)

	if _, err := uc.Start(context.Background(), analysis.Filters{}); err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	select {
	case <-engineEntered:
	case <-time.After(3 * time.Second):
		t.Fatal("job never reached the engine")
	}

	if err := uc.Stop(context.Background()); err != nil {
		t.Fatalf("Stop() error = %v", err)
	}

	final := waitForStatus(t, uc, model.AnalysisStatusPaused)
	if final.Status != model.AnalysisStatusPaused {
		t.Fatalf("status = %s, want paused", final.Status)
	}

	// a cancelled job must not store a result or resurrect its progress
	time.Sleep(50 * time.Millisecond)
	if results.count() != 0 {
		t.Error("cancelled job stored a result")
	}
	after, err := uc.GetProgress(context.Background())
	if err != nil {
		t.Fatalf("GetProgress() error = %v", err)
	}
	if after.Status != model.AnalysisStatusPaused {
		t.Errorf("status after cancellation = %s, want paused", after.Status)
	}
}

func TestStopBetweenItemsFreezesProgress(t *testing.T) {
	progress := newFakeProgressRepo()
	results := newFakeResultRepo()
	var engineCalls int32
	collab := &fakeCollab{
		ready:   true,
		fetcher: fetcherFunc(func(ctx context.Context, _ analysis.Filters) ([]model.Communication, error) { return makeComms(30), nil }),
		engine: engineFunc(func(ctx context.Context, comms []model.Communication) (*model.ClimateAnalysis, int, error) {
			atomic.AddInt32(&engineCalls, 1)
			return validDoc(), 85, nil
		}),
	}
	cfg := Config{UpdateEvery: 1, YieldEvery: 1, ItemPause: 10 * time.Millisecond, DemoStepDelay: -1}
	uc := testUseCase(cfg, progress, results, collab)

	out, err := uc.Start(context.Background(), analysis.Filters{})
	if err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	// let the loop get partway through the batch before stopping
	deadline := time.Now().Add(3 * time.Second)
	for {
		p, err := uc.GetProgress(context.Background())
		if err != nil {
			t.Fatalf("GetProgress() error = %v", err)
		}
		if p.EmailsProcessed >= 3 {
			break
		}
		if time.Now().After(deadline) {
			t.Fatal("loop never made progress")
		}
		time.Sleep(2 * time.Millisecond)
	}

	if err := uc.Stop(context.Background()); err != nil {
		t.Fatalf("Stop() error = %v", err)
	}

	// leave room for any straggling iteration to hit the cancelled context
	time.Sleep(100 * time.Millisecond)

	snaps := progress.snapshots(out.ProgressID)
	pausedIdx := -1
	for i, snap := range snaps {
		if snap.Status == model.AnalysisStatusPaused {
			pausedIdx = i
			break
		}
	}
	if pausedIdx < 0 {
		t.Fatal("no paused snapshot recorded")
	}
	for _, snap := range snaps[pausedIdx+1:] {
		t.Errorf("progress written after pause: status=%s processed=%d", snap.Status, snap.EmailsProcessed)
	}

	after, err := uc.GetProgress(context.Background())
	if err != nil {
		t.Fatalf("GetProgress() error = %v", err)
	}
	if after.Status != model.AnalysisStatusPaused {
		t.Fatalf("status after stop = %s, want paused", after.Status)
	}
	if got := atomic.LoadInt32(&engineCalls); got != 0 {
		t.Errorf("engine called %d times for a stopped job", got)
	}
	if results.count() != 0 {
		t.Error("stopped job stored a result")
	}

	// the paused record must not wedge the orchestrator
	if _, err := uc.Start(context.Background(), analysis.Filters{}); err != nil {
		t.Fatalf("Start() after stop error = %v", err)
	}
	rerun := waitForStatus(t, uc, model.AnalysisStatusCompleted, model.AnalysisStatusError)
	if rerun.Status != model.AnalysisStatusCompleted {
		t.Fatalf("rerun status = %s, want completed", rerun.Status)
	}
	if results.count() != 1 {
		t.Errorf("results stored = %d, want 1 from the rerun", results.count())
	}
}

func TestStopWhenIdle(t *testing.T) {
	uc := testUseCase(fastConfig(), newFakeProgressRepo(), newFakeResultRepo(), &fakeCollab{})
	if err := uc.Stop(context.Background()); !errors.Is(err, analysis.ErrNotRunning) {
		t.Errorf("Stop() error = %v, want %v", err, analysis.ErrNotRunning)
	}
}

func TestEngineFailureEndsInError(t *testing.T) {
	progress := newFakeProgressRepo()
	results := newFakeResultRepo()
	collab := &fakeCollab{
		ready:   true,
		fetcher: fetcherFunc(func(ctx context.Context, _ analysis.Filters) ([]model.Communication, error) { return makeComms(3), nil }),
		engine: engineFunc(func(ctx context.Context, comms []model.Communication) (*model.ClimateAnalysis, int, error) {
			return nil, 0, errors.New("document validation failed: analysis document missing tipo_de_cultura")
		}),
	}
	uc := testUseCase(fastConfig(), progress, results, collab)

	if _, err := uc.Start(context.Background(), analysis.Filters{}); err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	final := waitForStatus(t, uc, model.AnalysisStatusError)
	if !strings.Contains(final.ErrorMessage, "validation failed") {
		t.Errorf("errorMessage = %q, want validation failure", final.ErrorMessage)
	}
	if results.count() != 0 {
		t.Error("failed job stored a result")
	}
}

func TestGetProgressIdleDefaults(t *testing.T) {
	uc := testUseCase(fastConfig(), newFakeProgressRepo(), newFakeResultRepo(), &fakeCollab{})

	p, err := uc.GetProgress(context.Background())
	if err != nil {
		t.Fatalf("GetProgress() error = %v", err)
	}
	if p.Status != model.AnalysisStatusIdle || p.Progress != 0 {
		t.Errorf("idle defaults = %+v", p)
	}
}

func TestDedupMarksNewCommunications(t *testing.T) {
	progress := newFakeProgressRepo()
	results := newFakeResultRepo()
	results.seen["comm-0"] = true
	collab := &fakeCollab{
		ready:   true,
		fetcher: fetcherFunc(func(ctx context.Context, _ analysis.Filters) ([]model.Communication, error) { return makeComms(3), nil }),
		engine: engineFunc(func(ctx context.Context, comms []model.Communication) (*model.ClimateAnalysis, int, error) {
			return validDoc(), 85, nil
		}),
	}
	uc := testUseCase(fastConfig(), progress, results, collab)

	if _, err := uc.Start(context.Background(), analysis.Filters{}); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	waitForStatus(t, uc, model.AnalysisStatusCompleted)

	for _, id := range []string{"comm-0", "comm-1", "comm-2"} {
		if !results.seen[id] {
			t.Errorf("communication %s not marked seen", id)
		}
	}
}
