package usecase

import (
	"fmt"
	"strings"

	"climate-srv/internal/analysis"
	"climate-srv/internal/model"
)

var (
	demoDepartments = []string{"IT", "Ventas", "RRHH", "Mercadeo", "Finanzas", "Contabilidad"}
	demoCountries   = []string{"Colombia", "Panama", "Ecuador"}
)

// generateDemoDocument builds a complete, schema-valid analysis
// document from the seed. Same filters and seed always produce the
// same document.
func generateDemoDocument(filters analysis.Filters, seed int64) *model.ClimateAnalysis {
	baseScore := seededRand(seed, 65, 82)

	depts := filters.Departments
	if len(depts) == 0 {
		depts = demoDepartments
	}
	countries := filters.Countries
	if len(countries) == 0 {
		countries = demoCountries
	}

	deptModifier := 0
	if len(depts) == 1 {
		deptModifier = seededRand(seed+1, -8, 12)
	}
	countryModifier := 0
	if len(countries) == 1 {
		countryModifier = seededRand(seed+2, -5, 10)
	}

	context := contextLabel(depts, countries)
	score := baseScore + deptModifier

	return &model.ClimateAnalysis{
		DiagnosticoGeneral:      demoDiagnosis(score, depts, countries),
		TipoDeCultura:           demoCultureType(score),
		IndicadoresEstrategicos: demoIndicators(seed, baseScore, deptModifier, countryModifier, context),
		KPIs:                    demoKPIs(seed, baseScore, depts, countries),
		OKRs:                    demoOKRs(depts),
		Fortalezas:              pickSeeded(demoStrengths(depts, context), seed+30, seed+31, 5, 7),
		Debilidades:             pickSeeded(demoWeaknesses(context), seed+40, seed+41, 4, 5),
		Estrategias:             pickSeeded(demoStrategies(depts), seed+50, seed+51, 5, 7),
		RecomendacionesMetodologicas: pickSeeded(demoRecommendations(), seed+60, seed+61, 4, 6),
		PeopleAnalytics:              demoPeopleAnalytics(seed, baseScore, depts, context),
	}
}

// pickSeeded selects a seeded count of items after a seeded shuffle.
func pickSeeded(items []string, countSeed, shuffleSeed int64, min, max int) []string {
	count := seededRand(countSeed, min, max)
	shuffled := shuffleWithSeed(items, shuffleSeed)
	if count > len(shuffled) {
		count = len(shuffled)
	}
	return shuffled[:count]
}

func contextLabel(depts, countries []string) string {
	deptLabel := ""
	if len(depts) <= 2 {
		deptLabel = "en " + strings.Join(depts, " y ")
	}
	countryLabel := ""
	if len(countries) <= 2 {
		countryLabel = "(" + strings.Join(countries, " y ") + ")"
	}
	parts := []string{}
	if deptLabel != "" {
		parts = append(parts, deptLabel)
	}
	if countryLabel != "" {
		parts = append(parts, countryLabel)
	}
	return strings.Join(parts, " ")
}

func demoCultureType(score int) string {
	switch {
	case score >= 80:
		return "Cultura de Alto Rendimiento"
	case score >= 72:
		return "Cultura Colaborativa"
	case score >= 65:
		return "Cultura en Desarrollo Positivo"
	default:
		return "Cultura en Transición"
	}
}

func demoDiagnosis(score int, depts, countries []string) string {
	level := "con oportunidades de mejora significativas"
	if score >= 75 {
		level = "positivo y saludable"
	} else if score >= 65 {
		level = "moderadamente positivo"
	}

	deptContext := ""
	if len(depts) <= 2 {
		deptContext = fmt.Sprintf("En las áreas de %s, ", strings.Join(depts, " y "))
	}
	countryContext := ""
	if len(countries) <= 2 {
		countryContext = fmt.Sprintf("para las operaciones en %s ", strings.Join(countries, " y "))
	}

	pattern := "una cultura colaborativa sólida con buenos niveles de engagement y compromiso organizacional"
	if score < 70 {
		pattern = "áreas de oportunidad para fortalecer la cohesión del equipo y mejorar la comunicación interdepartamental"
	}
	trend := "tendencias favorables en liderazgo, productividad y satisfacción laboral"
	if score < 68 {
		trend = "necesidad de intervención focalizada en comunicación y desarrollo de liderazgo"
	}
	advice := "mantener las prácticas actuales, potenciar las fortalezas identificadas y continuar monitoreando los indicadores clave"
	if score < 70 {
		advice = "implementar las estrategias sugeridas para mejorar el ambiente laboral y fortalecer la cultura organizacional"
	}

	return fmt.Sprintf("%sEl análisis exhaustivo de las comunicaciones organizacionales %srevela un clima laboral %s. "+
		"Los patrones de comunicación identificados reflejan %s. "+
		"Los 8 indicadores estratégicos muestran %s. Se recomienda %s.",
		deptContext, countryContext, level, pattern, trend, advice)
}

func clampScore(v int) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return float64(v)
}

func demoIndicators(seed int64, base, deptMod, countryMod int, context string) []model.StrategicIndicator {
	return []model.StrategicIndicator{
		{Indicador: "Clima Organizacional", Valor: clampScore(base + deptMod + countryMod + 3),
			Descripcion: fmt.Sprintf("Ambiente laboral general %s. Se percibe un entorno de trabajo positivo con oportunidades de mejora en integración de equipos.", context)},
		{Indicador: "Liderazgo", Valor: clampScore(base + seededRand(seed+10, -5, 10) + deptMod + 5),
			Descripcion: fmt.Sprintf("Efectividad del liderazgo %s. Los líderes demuestran compromiso con el desarrollo de sus equipos.", context)},
		{Indicador: "Comunicación", Valor: clampScore(base + seededRand(seed+11, -8, 8) + countryMod + 2),
			Descripcion: fmt.Sprintf("Calidad de comunicación interna %s. Flujo de información efectivo entre áreas con oportunidades en comunicación vertical.", context)},
		{Indicador: "Productividad", Valor: clampScore(base + seededRand(seed+12, -3, 12) + 4),
			Descripcion: fmt.Sprintf("Nivel de productividad %s. Los equipos mantienen buenos niveles de entrega y cumplimiento de objetivos.", context)},
		{Indicador: "Compromiso", Valor: clampScore(base + seededRand(seed+13, -10, 8) + 1),
			Descripcion: fmt.Sprintf("Engagement de colaboradores %s. Alto nivel de identificación con la organización y sus valores.", context)},
		{Indicador: "Innovación", Valor: clampScore(base + seededRand(seed+14, -12, 6) + deptMod - 2),
			Descripcion: fmt.Sprintf("Capacidad de innovación %s. Se fomenta la creatividad aunque hay espacio para más iniciativas disruptivas.", context)},
		{Indicador: "Colaboración", Valor: clampScore(base + seededRand(seed+15, -6, 10) + 3),
			Descripcion: fmt.Sprintf("Trabajo en equipo %s. Excelente sinergia entre departamentos y disposición para proyectos conjuntos.", context)},
		{Indicador: "Satisfacción", Valor: clampScore(base + seededRand(seed+16, -8, 9) + countryMod + 2),
			Descripcion: fmt.Sprintf("Satisfacción laboral %s. Los colaboradores expresan conformidad con condiciones laborales y beneficios.", context)},
	}
}

func demoKPIs(seed int64, base int, depts, countries []string) []model.KPI {
	context := contextLabel(depts, countries)

	satisfactionRead := "Se detectan áreas de mejora en beneficios y desarrollo profesional."
	satisfactionLevel := "moderado"
	if base >= 70 {
		satisfactionRead = "Los equipos muestran engagement positivo y orgullo organizacional."
		satisfactionLevel = "satisfactorio"
	}

	clarityRead := "Oportunidad para mejorar la claridad y frecuencia de comunicaciones clave."
	if base >= 68 {
		clarityRead = "Los mensajes son claros, oportunos y bien estructurados."
	}

	responseHours := seededRand(seed+24, 2, 6)
	responseRead := "Oportunidad de mejorar tiempos de respuesta en comunicaciones críticas."
	if responseHours <= 4 {
		responseRead = "Excelente capacidad de respuesta que facilita la toma de decisiones."
	}

	return []model.KPI{
		{
			Nombre:        "Índice de Satisfacción Laboral",
			ValorEstimado: fmt.Sprintf("%d%%", seededRand(seed+20, base-5, base+8)),
			Interpretacion: fmt.Sprintf("Nivel %s de satisfacción entre colaboradores %s. %s",
				satisfactionLevel, context, satisfactionRead),
		},
		{
			Nombre:        "Tasa de Colaboración Inter-equipos",
			ValorEstimado: fmt.Sprintf("%d%%", seededRand(seed+21, 55, 82)),
			Interpretacion: fmt.Sprintf("Frecuencia de comunicación y proyectos conjuntos entre %s. Se observa colaboración activa en iniciativas estratégicas compartidas.",
				strings.Join(depts, " y ")),
		},
		{
			Nombre:         "Índice de Comunicación Efectiva",
			ValorEstimado:  fmt.Sprintf("%d%%", seededRand(seed+22, base-8, base+5)),
			Interpretacion: fmt.Sprintf("Calidad y claridad en las comunicaciones %s. %s", context, clarityRead),
		},
		{
			Nombre:         "Nivel de Engagement Digital",
			ValorEstimado:  fmt.Sprintf("%d%%", seededRand(seed+23, 60, 88)),
			Interpretacion: fmt.Sprintf("Participación activa en plataformas de comunicación %s. Los colaboradores utilizan efectivamente las herramientas digitales disponibles para coordinación.", context),
		},
		{
			Nombre:         "Índice de Respuesta Oportuna",
			ValorEstimado:  fmt.Sprintf("%d horas promedio", responseHours),
			Interpretacion: fmt.Sprintf("Tiempo promedio de respuesta a comunicaciones importantes %s. %s", context, responseRead),
		},
	}
}

func demoOKRs(depts []string) []model.OKR {
	deptContext := ""
	if len(depts) <= 2 {
		deptContext = " en " + strings.Join(depts, " y ")
	}

	return []model.OKR{
		{
			Objetivo: "Fortalecer la cultura de comunicación abierta y transparente" + deptContext,
			ResultadosClave: []string{
				"Incrementar la frecuencia de comunicación bidireccional en un 25% para el próximo trimestre",
				"Reducir el tiempo de respuesta promedio a comunicaciones críticas a menos de 4 horas",
				"Aumentar la participación activa en canales de chat en un 30%",
				"Implementar 2 nuevos espacios de retroalimentación mensual",
			},
		},
		{
			Objetivo: "Mejorar el engagement y compromiso del equipo" + deptContext,
			ResultadosClave: []string{
				"Alcanzar un índice de satisfacción laboral superior al 80% en la próxima medición",
				"Reducir las señales de riesgo de rotación en un 25% mediante intervenciones focalizadas",
				"Incrementar menciones positivas y reconocimientos en comunicaciones en un 20%",
				"Lograr 90% de participación en iniciativas de bienestar organizacional",
			},
		},
		{
			Objetivo: fmt.Sprintf("Potenciar la colaboración entre %s y otras áreas", strings.Join(depts, " y ")),
			ResultadosClave: []string{
				"Aumentar proyectos colaborativos interdepartamentales en un 40%",
				"Mejorar la puntuación de comunicación inter-áreas a 85 puntos o más",
				"Establecer 3 nuevos canales de comunicación transversal para proyectos estratégicos",
				"Reducir tiempos de coordinación en proyectos conjuntos en un 20%",
			},
		},
		{
			Objetivo: "Desarrollar capacidades de liderazgo y gestión de equipos",
			ResultadosClave: []string{
				"Capacitar al 100% de líderes en comunicación efectiva y feedback constructivo",
				"Implementar programa de mentoría con participación del 60% de colaboradores",
				"Aumentar índice de confianza en liderazgo en 15 puntos",
				"Establecer reuniones 1:1 mensuales entre líderes y sus equipos",
			},
		},
	}
}

func demoStrengths(depts []string, context string) []string {
	return []string{
		fmt.Sprintf("Alta frecuencia de comunicación colaborativa entre %s %s", strings.Join(depts, " y "), context),
		"Liderazgo visible y accesible que mantiene comunicación constante con los equipos",
		"Uso efectivo y consistente de herramientas digitales para coordinación diaria",
		fmt.Sprintf("Respuestas oportunas y profesionales entre miembros del equipo %s", context),
		"Tono profesional, respetuoso e inclusivo en todas las interacciones escritas",
		"Cultura establecida de reconocimiento entre colegas que fortalece el engagement",
		"Comunicación clara y efectiva de objetivos, expectativas y cambios organizacionales",
		"Buena práctica de documentación y seguimiento de acuerdos en reuniones",
		"Alto nivel de participación en canales grupales y foros de discusión",
		"Disposición positiva para colaborar en proyectos interdepartamentales",
	}
}

func demoWeaknesses(context string) []string {
	return []string{
		fmt.Sprintf("Comunicación ocasionalmente unidireccional en algunas áreas %s", context),
		"Oportunidad de mejorar la frecuencia de feedback constructivo entre equipos",
		"Tiempos de respuesta variables en comunicaciones que requieren urgencia",
		"Algunos silos de información entre departamentos que limitan la visibilidad",
		"Necesidad de mayor comunicación proactiva sobre logros y reconocimientos",
		"Participación limitada en canales dedicados a innovación y mejora continua",
		"Comunicación de cambios organizacionales puede ser más anticipada y detallada",
		"Falta de espacios regulares para retroalimentación ascendente",
	}
}

func demoStrategies(depts []string) []string {
	deptContext := ""
	if len(depts) <= 2 {
		deptContext = " para " + strings.Join(depts, " y ")
	}
	return []string{
		fmt.Sprintf("Implementar programa estructurado de comunicación bidireccional%s con sesiones mensuales de retroalimentación", deptContext),
		"Establecer reuniones periódicas de retroalimentación entre líderes y equipos con agenda estandarizada",
		"Crear canales temáticos de chat para fomentar innovación, mejores prácticas y aprendizaje compartido",
		"Desarrollar programa formal de reconocimiento público de logros individuales y de equipo",
		"Implementar encuestas pulse trimestrales para monitorear clima en tiempo real y actuar proactivamente",
		"Establecer protocolos claros de comunicación para proyectos inter-áreas con responsables definidos",
		"Capacitar a líderes en comunicación efectiva, feedback constructivo y gestión de equipos remotos",
		"Crear espacios de integración virtual y presencial para fortalecer relaciones interpersonales",
		"Implementar dashboard de comunicación para visualizar métricas de engagement en tiempo real",
	}
}

func demoRecommendations() []string {
	return []string{
		"Realizar análisis de comunicaciones trimestralmente para identificar tendencias y actuar de forma preventiva",
		"Implementar métricas de comunicación y colaboración en evaluaciones de desempeño anuales",
		"Establecer KPIs específicos de colaboración para equipos multidisciplinarios con metas claras",
		"Crear dashboard ejecutivo de monitoreo continuo de clima organizacional para liderazgo",
		"Desarrollar programa de embajadores de cultura organizacional en cada departamento",
		"Implementar sistema de feedback anónimo para temas sensibles con seguimiento estructurado",
		"Establecer comité de clima organizacional con representantes de cada área para seguimiento mensual",
		"Documentar y compartir mejores prácticas de comunicación identificadas en el análisis",
	}
}

func demoPeopleAnalytics(seed int64, base int, depts []string, context string) *model.PeopleAnalytics {
	rotation := seededRand(seed+70, 8, 14)
	absenteeism := seededRand(seed+71, 2, 6)

	stability := "estabilidad laboral dentro de parámetros normales con oportunidades de mejora en retención"
	if rotation <= 10 {
		stability = "excelente estabilidad laboral y retención de talento clave"
	}
	wellbeing := "ligeramente elevado, sugiriendo revisar factores de bienestar y carga laboral"
	if absenteeism <= 4 {
		wellbeing = "dentro de parámetros saludables, indicando buen bienestar general"
	}

	industryPosition := "En línea con"
	if base >= 70 {
		industryPosition = "Por encima"
	}

	riskLevel := "Moderado-Alto"
	if base >= 75 {
		riskLevel = "Bajo"
	} else if base >= 65 {
		riskLevel = "Moderado"
	}

	firstDept := "IT"
	if len(depts) > 0 {
		firstDept = depts[0]
	}

	productivityImpact := "área de oportunidad importante"
	profitMin, profitMax := 2, 8
	profitSign := ""
	if base >= 70 {
		productivityImpact = "impulso significativo"
		profitMin, profitMax = 8, 18
		profitSign = "+"
	}

	return &model.PeopleAnalytics{
		MetricasInternas: model.InternalMetrics{
			RotacionEstimada:       fmt.Sprintf("%d%% anual", rotation),
			AusentismoDetectado:    fmt.Sprintf("%d%% mensual", absenteeism),
			NivelDesempenoPromedio: fmt.Sprintf("%d%%", seededRand(seed+72, base, base+12)),
			Interpretacion: fmt.Sprintf("Los indicadores de talento %s muestran %s. El ausentismo está %s.",
				context, stability, wellbeing),
		},
		BenchmarkingExterno: model.ExternalBenchmark{
			ComparacionIndustria: fmt.Sprintf("%s el promedio del sector tecnológico en Latinoamérica", industryPosition),
			Posicionamiento:      fmt.Sprintf("Top %d%% en clima organizacional para empresas similares en la región", seededRand(seed+73, 18, 35)),
			GapsIdentificados: []string{
				"Oportunidad de mejora en programas de desarrollo profesional y plan de carrera",
				"Fortalecer comunicación de beneficios, compensaciones y propuesta de valor al empleado",
				"Incrementar iniciativas de bienestar integral y balance vida-trabajo",
				"Desarrollar más opciones de flexibilidad laboral y trabajo remoto",
			},
		},
		RiesgosFugaTalento: model.TalentFlightRisk{
			NivelRiesgo:   riskLevel,
			AreasCriticas: depts,
			IndicadoresAlerta: []string{
				"Monitorear disminución en participación de comunicaciones grupales como señal temprana",
				"Atender reducción en propuestas de mejora o iniciativas de innovación",
				"Observar menor interacción con contenido de cultura organizacional y eventos",
				"Identificar cambios en patrones de comunicación de colaboradores clave",
			},
			EmpleadosEnRiesgoEstimado: fmt.Sprintf("%d%% del total analizado %s", seededRand(seed+75, 5, 12), context),
		},
		RelacionClimaDesempeno: model.ClimatePerformanceLink{
			Correlacion: "Alta correlación positiva (r=0.78) entre clima y productividad",
			AreasImpactoPositivo: []string{
				fmt.Sprintf("Equipos de %s con alta comunicación muestran +23%% productividad", firstDept),
				"Áreas con liderazgo activo y visible tienen 30% menor rotación voluntaria",
				"Colaboración efectiva acelera entrega de proyectos en promedio 18%",
				"Mayor engagement correlaciona con mejor atención y satisfacción del cliente interno",
			},
			AreasImpactoNegativo: []string{
				"Silos de comunicación retrasan toma de decisiones en promedio 2-3 días",
				"Falta de feedback oportuno afecta motivación y compromiso individual",
				"Comunicación deficiente genera duplicación de esfuerzos y retrabajo",
				"Baja visibilidad de logros reduce motivación intrínseca del equipo",
			},
			InsightPrincipal: fmt.Sprintf("El clima organizacional %s tiene impacto directo y medible en la productividad. "+
				"Por cada 10 puntos de mejora en indicadores de comunicación y colaboración, se estima un incremento del 8%% "+
				"en eficiencia operativa y 12%% en retención de talento.", context),
		},
		VinculacionProductividad: model.ProductivityLink{
			ImpactoProductividad: fmt.Sprintf("El clima actual %s representa un %s para la productividad organizacional",
				context, productivityImpact),
			ImpactoRentabilidadEstimado: fmt.Sprintf("%s%d%% en eficiencia operativa proyectada",
				profitSign, seededRand(seed+76, profitMin, profitMax)),
			MetricasClave: []model.ProductivityMetric{
				{Metrica: "Tiempo de resolución de issues", RelacionClima: "Correlación negativa con silos de comunicación (-0.65)"},
				{Metrica: "Velocidad de delivery de proyectos", RelacionClima: "Correlación positiva con colaboración inter-equipos (+0.72)"},
				{Metrica: "Satisfacción del cliente interno", RelacionClima: "Directamente proporcional al clima laboral (+0.81)"},
				{Metrica: "Innovación y mejora continua", RelacionClima: "Correlación positiva con apertura comunicacional (+0.68)"},
			},
			RecomendacionesROI: []string{
				"Invertir en programas de comunicación genera ROI de 3:1 en productividad medido a 12 meses",
				"Reducir rotación en 5% equivale a ahorro del 15% en costos de contratación y capacitación",
				"Mejorar clima en 10 puntos puede incrementar NPS interno en 20 puntos",
				"Programas de reconocimiento con inversión mínima generan mejoras de 15% en engagement",
			},
		},
	}
}
