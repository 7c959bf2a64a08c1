package model

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func validAnalysis() *ClimateAnalysis {
	indicators := make([]StrategicIndicator, 8)
	names := []string{
		"Comunicación", "Liderazgo", "Colaboración", "Reconocimiento",
		"Desarrollo", "Bienestar", "Innovación", "Compromiso",
	}
	for i := range indicators {
		indicators[i] = StrategicIndicator{Indicador: names[i], Valor: 70, Descripcion: "estable"}
	}
	return &ClimateAnalysis{
		DiagnosticoGeneral:      "El clima organizacional es positivo",
		TipoDeCultura:           "Colaborativa",
		IndicadoresEstrategicos: indicators,
		KPIs: []KPI{{Nombre: "eNPS", ValorEstimado: "45", Interpretacion: "favorable"}},
		OKRs: []OKR{{Objetivo: "Mejorar comunicación interna", ResultadosClave: []string{"Reducir tiempos de respuesta"}}},
		Fortalezas:                   []string{"Equipos cohesionados"},
		Debilidades:                  []string{"Silos entre departamentos"},
		Estrategias:                  []string{"Reuniones interdepartamentales"},
		RecomendacionesMetodologicas: []string{"Encuestas trimestrales"},
		PeopleAnalytics: &PeopleAnalytics{
			MetricasInternas: InternalMetrics{
				RotacionEstimada: "8%", AusentismoDetectado: "3%",
				NivelDesempenoPromedio: "alto", Interpretacion: "dentro del rango saludable",
			},
			BenchmarkingExterno: ExternalBenchmark{
				ComparacionIndustria: "por encima del promedio", Posicionamiento: "competitivo",
				GapsIdentificados: []string{"beneficios flexibles"},
			},
			RiesgosFugaTalento: TalentFlightRisk{
				NivelRiesgo: "medio", AreasCriticas: []string{"IT"},
				IndicadoresAlerta: []string{"menciones de carga laboral"}, EmpleadosEnRiesgoEstimado: "5-10",
			},
			RelacionClimaDesempeno: ClimatePerformanceLink{
				Correlacion: "positiva", AreasImpactoPositivo: []string{"Ventas"},
				AreasImpactoNegativo: []string{"Finanzas"}, InsightPrincipal: "el clima impulsa resultados",
			},
			VinculacionProductividad: ProductivityLink{
				ImpactoProductividad: "moderado", ImpactoRentabilidadEstimado: "2-4%",
				MetricasClave:      []ProductivityMetric{{Metrica: "tiempo de ciclo", RelacionClima: "inversa"}},
				RecomendacionesROI: []string{"invertir en reconocimiento"},
			},
		},
	}
}

func TestClimateAnalysisValidate(t *testing.T) {
	t.Run("valid document", func(t *testing.T) {
		if err := validAnalysis().Validate(); err != nil {
			t.Errorf("Validate() error = %v", err)
		}
	})

	t.Run("missing diagnosis", func(t *testing.T) {
		doc := validAnalysis()
		doc.DiagnosticoGeneral = ""
		if err := doc.Validate(); !errors.Is(err, ErrMissingDiagnosis) {
			t.Errorf("Validate() error = %v, want %v", err, ErrMissingDiagnosis)
		}
	})

	t.Run("missing culture type", func(t *testing.T) {
		doc := validAnalysis()
		doc.TipoDeCultura = ""
		if err := doc.Validate(); !errors.Is(err, ErrMissingCulture) {
			t.Errorf("Validate() error = %v, want %v", err, ErrMissingCulture)
		}
	})

	t.Run("wrong indicator count", func(t *testing.T) {
		doc := validAnalysis()
		doc.IndicadoresEstrategicos = doc.IndicadoresEstrategicos[:5]
		if err := doc.Validate(); !errors.Is(err, ErrIndicatorCount) {
			t.Errorf("Validate() error = %v, want %v", err, ErrIndicatorCount)
		}
	})

	t.Run("indicator value out of range", func(t *testing.T) {
		doc := validAnalysis()
		doc.IndicadoresEstrategicos[3].Valor = 120
		if err := doc.Validate(); !errors.Is(err, ErrIndicatorOutOfRange) {
			t.Errorf("Validate() error = %v, want %v", err, ErrIndicatorOutOfRange)
		}
	})

	t.Run("no kpis", func(t *testing.T) {
		doc := validAnalysis()
		doc.KPIs = nil
		if err := doc.Validate(); !errors.Is(err, ErrMissingKPIs) {
			t.Errorf("Validate() error = %v, want %v", err, ErrMissingKPIs)
		}
	})

	t.Run("okr without key results", func(t *testing.T) {
		doc := validAnalysis()
		doc.OKRs[0].ResultadosClave = nil
		if err := doc.Validate(); err == nil {
			t.Error("Validate() expected error for okr without resultados_clave")
		}
	})

	t.Run("missing people analytics", func(t *testing.T) {
		doc := validAnalysis()
		doc.PeopleAnalytics = nil
		if err := doc.Validate(); !errors.Is(err, ErrMissingAnalytics) {
			t.Errorf("Validate() error = %v, want %v", err, ErrMissingAnalytics)
		}
	})
}

func TestClimateAnalysisDecodeFromEngineOutput(t *testing.T) {
	// a document as the LLM would return it, with Spanish keys
	raw, err := json.Marshal(validAnalysis())
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !strings.Contains(string(raw), `"diagnostico_general"`) {
		t.Fatalf("document keys not in reporting language: %s", raw[:80])
	}

	var doc ClimateAnalysis
	if err := json.Unmarshal(raw, &doc); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if err := doc.Validate(); err != nil {
		t.Errorf("Validate() after decode error = %v", err)
	}
	if doc.PeopleAnalytics.RiesgosFugaTalento.NivelRiesgo != "medio" {
		t.Errorf("nested field lost in decode: %+v", doc.PeopleAnalytics.RiesgosFugaTalento)
	}
}
