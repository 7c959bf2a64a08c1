package openai

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"climate-srv/internal/model"
	"climate-srv/pkg/log"
)

type fakeOpenAI struct {
	lastUserPrompt string
	response       string
	err            error
}

func (f *fakeOpenAI) CompleteJSON(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	f.lastUserPrompt = userPrompt
	return f.response, f.err
}

func (f *fakeOpenAI) TestConnection(ctx context.Context) error { return nil }

func validDocumentJSON(t *testing.T) string {
	t.Helper()
	indicators := make([]model.StrategicIndicator, 8)
	for i := range indicators {
		indicators[i] = model.StrategicIndicator{Indicador: "Indicador", Valor: 70, Descripcion: "d"}
	}
	doc := model.ClimateAnalysis{
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
			MetricasInternas:         model.InternalMetrics{RotacionEstimada: "9%", AusentismoDetectado: "3%", NivelDesempenoPromedio: "alto", Interpretacion: "i"},
			BenchmarkingExterno:      model.ExternalBenchmark{ComparacionIndustria: "c", Posicionamiento: "p", GapsIdentificados: []string{"g"}},
			RiesgosFugaTalento:       model.TalentFlightRisk{NivelRiesgo: "Bajo", AreasCriticas: []string{"IT"}, IndicadoresAlerta: []string{"a"}, EmpleadosEnRiesgoEstimado: "5%"},
			RelacionClimaDesempeno:   model.ClimatePerformanceLink{Correlacion: "alta", AreasImpactoPositivo: []string{"x"}, AreasImpactoNegativo: []string{"y"}, InsightPrincipal: "z"},
			VinculacionProductividad: model.ProductivityLink{ImpactoProductividad: "p", ImpactoRentabilidadEstimado: "8%", MetricasClave: []model.ProductivityMetric{{Metrica: "m", RelacionClima: "r"}}, RecomendacionesROI: []string{"roi"}},
		},
	}
	raw, err := json.Marshal(doc)
	if err != nil {
		t.Fatalf("marshal document: %v", err)
	}
	return string(raw)
}

func testComms(n int) []model.Communication {
	comms := make([]model.Communication, n)
	for i := range comms {
		comms[i] = model.Communication{
			ID:      "m" + string(rune('a'+i%26)),
			Source:  model.SourceMail,
			Subject: "Asunto",
			Sender:  "alice@acme.com",
			Content: strings.Repeat("palabra ", 60),
			SentAt:  time.Date(2025, 7, 2, 10, 0, 0, 0, time.UTC),
		}
	}
	return comms
}

func testEngine(f *fakeOpenAI) *implEngine {
	l := log.Init(log.ZapConfig{Level: "error", Mode: "development", Encoding: "console"})
	return &implEngine{l: l, openAI: f}
}

func TestAnalyzeValidDocument(t *testing.T) {
	f := &fakeOpenAI{response: validDocumentJSON(t)}
	e := testEngine(f)

	doc, confidence, err := e.Analyze(context.Background(), testComms(5))
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}
	if doc == nil || doc.TipoDeCultura != "Clan" {
		t.Errorf("Analyze() document = %+v", doc)
	}
	if confidence != realPathConfidence {
		t.Errorf("confidence = %d, want %d", confidence, realPathConfidence)
	}
	if !strings.Contains(f.lastUserPrompt, "5 comunicaciones") {
		t.Errorf("prompt does not name the batch size: %.120s", f.lastUserPrompt)
	}
}

func TestAnalyzeEmptyBatch(t *testing.T) {
	e := testEngine(&fakeOpenAI{})
	if _, _, err := e.Analyze(context.Background(), nil); !errors.Is(err, ErrEmptyBatch) {
		t.Errorf("Analyze() error = %v, want %v", err, ErrEmptyBatch)
	}
}

func TestAnalyzeMalformedJSON(t *testing.T) {
	e := testEngine(&fakeOpenAI{response: "this is not json"})
	if _, _, err := e.Analyze(context.Background(), testComms(1)); err == nil {
		t.Fatal("Analyze() expected error for malformed JSON")
	}
}

func TestAnalyzeRejectsInvalidDocument(t *testing.T) {
	// strip a required field from an otherwise valid document
	var doc map[string]interface{}
	if err := json.Unmarshal([]byte(validDocumentJSON(t)), &doc); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	delete(doc, "tipo_de_cultura")
	raw, _ := json.Marshal(doc)

	e := testEngine(&fakeOpenAI{response: string(raw)})
	if _, _, err := e.Analyze(context.Background(), testComms(1)); !errors.Is(err, model.ErrMissingCulture) {
		t.Errorf("Analyze() error = %v, want %v", err, model.ErrMissingCulture)
	}
}

func TestAnalyzePropagatesCompletionFailure(t *testing.T) {
	wantErr := errors.New("rate limited")
	e := testEngine(&fakeOpenAI{err: wantErr})
	if _, _, err := e.Analyze(context.Background(), testComms(1)); !errors.Is(err, wantErr) {
		t.Errorf("Analyze() error = %v, want wrapped %v", err, wantErr)
	}
}

func TestPromptSamplingAndTruncation(t *testing.T) {
	f := &fakeOpenAI{response: validDocumentJSON(t)}
	e := testEngine(f)

	comms := testComms(150)
	if _, _, err := e.Analyze(context.Background(), comms); err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}

	// the batch count is real, the sample is capped
	if !strings.Contains(f.lastUserPrompt, "150 comunicaciones") {
		t.Error("prompt does not report the full batch size")
	}
	if strings.Contains(f.lastUserPrompt, "Comunicación 101 ") {
		t.Error("prompt sample exceeds the cap")
	}
	for _, line := range strings.Split(f.lastUserPrompt, "\n") {
		if strings.HasPrefix(line, "Contenido: ") && utf8.RuneCountInString(line) > utf8.RuneCountInString("Contenido: ")+maxContentLength {
			t.Errorf("content line not truncated: %d runes", utf8.RuneCountInString(line))
		}
	}
}

func TestPromptTruncationKeepsRuneBoundaries(t *testing.T) {
	f := &fakeOpenAI{response: validDocumentJSON(t)}
	e := testEngine(f)

	comms := testComms(1)
	comms[0].Content = strings.Repeat("ñ", maxContentLength+50)
	if _, _, err := e.Analyze(context.Background(), comms); err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}

	if !utf8.ValidString(f.lastUserPrompt) {
		t.Fatal("prompt contains a split multi-byte character")
	}
	for _, line := range strings.Split(f.lastUserPrompt, "\n") {
		if !strings.HasPrefix(line, "Contenido: ") {
			continue
		}
		body := strings.TrimPrefix(line, "Contenido: ")
		if got := utf8.RuneCountInString(body); got != maxContentLength {
			t.Errorf("truncated body = %d runes, want %d", got, maxContentLength)
		}
		if !strings.HasSuffix(body, "ñ") {
			t.Errorf("truncated body ends in %q, want a whole character", body[len(body)-1:])
		}
	}
}
