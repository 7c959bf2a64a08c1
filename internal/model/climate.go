package model

import (
	"errors"
	"fmt"
)

// expectedIndicators is the number of strategic indicators a valid
// analysis document must carry.
const expectedIndicators = 8

var (
	ErrMissingDiagnosis  = errors.New("analysis document missing diagnostico_general")
	ErrMissingCulture    = errors.New("analysis document missing tipo_de_cultura")
	ErrMissingKPIs       = errors.New("analysis document has no kpis")
	ErrMissingOKRs       = errors.New("analysis document has no okrs")
	ErrMissingAnalytics  = errors.New("analysis document missing people_analytics")
	ErrIndicatorCount    = fmt.Errorf("analysis document must have exactly %d indicadores_estrategicos", expectedIndicators)
	ErrIndicatorOutOfRange = errors.New("indicador valor must be between 0 and 100")
)

// StrategicIndicator is one scored dimension of the climate analysis.
type StrategicIndicator struct {
	Indicador   string  `json:"indicador"`
	Valor       float64 `json:"valor"`
	Descripcion string  `json:"descripcion"`
}

// KPI is an estimated key performance indicator.
type KPI struct {
	Nombre         string `json:"nombre"`
	ValorEstimado  string `json:"valor_estimado"`
	Interpretacion string `json:"interpretacion"`
}

// OKR is an objective with its key results.
type OKR struct {
	Objetivo        string   `json:"objetivo"`
	ResultadosClave []string `json:"resultados_clave"`
}

// InternalMetrics summarizes turnover, absenteeism and performance.
type InternalMetrics struct {
	RotacionEstimada      string `json:"rotacion_estimada"`
	AusentismoDetectado   string `json:"ausentismo_detectado"`
	NivelDesempenoPromedio string `json:"nivel_desempeno_promedio"`
	Interpretacion        string `json:"interpretacion"`
}

// ExternalBenchmark compares the organization against its industry.
type ExternalBenchmark struct {
	ComparacionIndustria string   `json:"comparacion_industria"`
	Posicionamiento      string   `json:"posicionamiento"`
	GapsIdentificados    []string `json:"gaps_identificados"`
}

// TalentFlightRisk describes attrition risk signals.
type TalentFlightRisk struct {
	NivelRiesgo               string   `json:"nivel_riesgo"`
	AreasCriticas             []string `json:"areas_criticas"`
	IndicadoresAlerta         []string `json:"indicadores_alerta"`
	EmpleadosEnRiesgoEstimado string   `json:"empleados_en_riesgo_estimado"`
}

// ClimatePerformanceLink relates climate to performance.
type ClimatePerformanceLink struct {
	Correlacion          string   `json:"correlacion"`
	AreasImpactoPositivo []string `json:"areas_impacto_positivo"`
	AreasImpactoNegativo []string `json:"areas_impacto_negativo"`
	InsightPrincipal     string   `json:"insight_principal"`
}

// ProductivityMetric links one metric to climate.
type ProductivityMetric struct {
	Metrica       string `json:"metrica"`
	RelacionClima string `json:"relacion_clima"`
}

// ProductivityLink relates climate to productivity and profitability.
type ProductivityLink struct {
	ImpactoProductividad        string               `json:"impacto_productividad"`
	ImpactoRentabilidadEstimado string               `json:"impacto_rentabilidad_estimado"`
	MetricasClave               []ProductivityMetric `json:"metricas_clave"`
	RecomendacionesROI          []string             `json:"recomendaciones_roi"`
}

// PeopleAnalytics is the people analytics section of the document.
type PeopleAnalytics struct {
	MetricasInternas        InternalMetrics        `json:"metricas_internas"`
	BenchmarkingExterno     ExternalBenchmark      `json:"benchmarking_externo"`
	RiesgosFugaTalento      TalentFlightRisk       `json:"riesgos_fuga_talento"`
	RelacionClimaDesempeno  ClimatePerformanceLink `json:"relacion_clima_desempeno"`
	VinculacionProductividad ProductivityLink      `json:"vinculacion_productividad"`
}

// ClimateAnalysis is the structured analysis document produced by the
// analysis engine. Field names follow the dashboard's reporting language.
type ClimateAnalysis struct {
	DiagnosticoGeneral           string               `json:"diagnostico_general"`
	TipoDeCultura                string               `json:"tipo_de_cultura"`
	IndicadoresEstrategicos      []StrategicIndicator `json:"indicadores_estrategicos"`
	KPIs                         []KPI                `json:"kpis"`
	OKRs                         []OKR                `json:"okrs"`
	Fortalezas                   []string             `json:"fortalezas"`
	Debilidades                  []string             `json:"debilidades"`
	Estrategias                  []string             `json:"estrategias"`
	RecomendacionesMetodologicas []string             `json:"recomendaciones_metodologicas"`
	PeopleAnalytics              *PeopleAnalytics     `json:"people_analytics"`
}

// Validate checks the document against the required shape. It is called
// at the analysis engine boundary, before the document is persisted.
func (c *ClimateAnalysis) Validate() error {
	if c.DiagnosticoGeneral == "" {
		return ErrMissingDiagnosis
	}
	if c.TipoDeCultura == "" {
		return ErrMissingCulture
	}
	if len(c.IndicadoresEstrategicos) != expectedIndicators {
		return fmt.Errorf("%w, got %d", ErrIndicatorCount, len(c.IndicadoresEstrategicos))
	}
	for _, ind := range c.IndicadoresEstrategicos {
		if ind.Indicador == "" {
			return errors.New("indicador name must not be empty")
		}
		if ind.Valor < 0 || ind.Valor > 100 {
			return fmt.Errorf("%w: %s has valor %.2f", ErrIndicatorOutOfRange, ind.Indicador, ind.Valor)
		}
	}
	if len(c.KPIs) == 0 {
		return ErrMissingKPIs
	}
	if len(c.OKRs) == 0 {
		return ErrMissingOKRs
	}
	for _, okr := range c.OKRs {
		if okr.Objetivo == "" {
			return errors.New("okr objetivo must not be empty")
		}
		if len(okr.ResultadosClave) == 0 {
			return fmt.Errorf("okr %q has no resultados_clave", okr.Objetivo)
		}
	}
	if c.PeopleAnalytics == nil {
		return ErrMissingAnalytics
	}
	pa := c.PeopleAnalytics
	if pa.MetricasInternas.Interpretacion == "" {
		return errors.New("people_analytics.metricas_internas is incomplete")
	}
	if pa.BenchmarkingExterno.ComparacionIndustria == "" {
		return errors.New("people_analytics.benchmarking_externo is incomplete")
	}
	if pa.RiesgosFugaTalento.NivelRiesgo == "" {
		return errors.New("people_analytics.riesgos_fuga_talento is incomplete")
	}
	if pa.RelacionClimaDesempeno.Correlacion == "" {
		return errors.New("people_analytics.relacion_clima_desempeno is incomplete")
	}
	if pa.VinculacionProductividad.ImpactoProductividad == "" {
		return errors.New("people_analytics.vinculacion_productividad is incomplete")
	}
	return nil
}
