package openai

import (
	"fmt"
	"strings"

	"climate-srv/internal/model"
)

const systemPrompt = "Eres un experto en análisis de clima organizacional. " +
	"Analiza las comunicaciones corporativas (correos electrónicos y mensajes de chat) " +
	"y proporciona insights profesionales sobre la cultura, comunicación y ambiente laboral. " +
	"Responde únicamente en formato JSON válido."

const (
	// maxSampleSize bounds the prompt so large batches stay inside the
	// model's context window; the full batch count is still reported.
	maxSampleSize = 100
	// maxContentLength caps each message body in the prompt, counted in
	// runes.
	maxContentLength = 300
	maxRecipients    = 3
)

func buildAnalysisPrompt(comms []model.Communication) string {
	sample := comms
	if len(sample) > maxSampleSize {
		sample = sample[:maxSampleSize]
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Analiza las siguientes %d comunicaciones corporativas para evaluar el clima y cultura organizacional.\n\n", len(comms))
	sb.WriteString("COMUNICACIONES:\n")

	for i, comm := range sample {
		content := comm.Content
		if content == "" {
			content = "Sin contenido"
		}
		if runes := []rune(content); len(runes) > maxContentLength {
			// cut on rune boundaries so accented bodies do not end in a
			// mangled partial character
			content = string(runes[:maxContentLength])
		}

		subject := comm.Subject
		if subject == "" {
			subject = "Sin asunto"
		}

		recipients := comm.Recipients
		if len(recipients) > maxRecipients {
			recipients = recipients[:maxRecipients]
		}
		recipientLine := strings.Join(recipients, ", ")
		if recipientLine == "" {
			recipientLine = "Sin destinatarios"
		}

		sentAt := "Desconocida"
		if !comm.SentAt.IsZero() {
			sentAt = comm.SentAt.Format("2006-01-02")
		}

		fmt.Fprintf(&sb, "Comunicación %d (%s):\nAsunto: %s\nDe: %s\nPara: %s\nFecha: %s\nContenido: %s\n---\n\n",
			i+1, comm.Source, subject, comm.Sender, recipientLine, sentAt, content)
	}

	sb.WriteString(documentFormat)
	return sb.String()
}

const documentFormat = `Proporciona un análisis completo en el siguiente formato JSON exacto:

{
  "diagnostico_general": "Descripción general del clima organizacional (2-3 párrafos)",
  "tipo_de_cultura": "Tipo de cultura organizacional identificada (Clan, Adhocracia, Mercado, o Jerarquía)",
  "indicadores_estrategicos": [
    {"indicador": "nombre del indicador", "valor": 0-100, "descripcion": "descripción del hallazgo"}
  ],
  "kpis": [
    {"nombre": "nombre del KPI", "valor_estimado": "valor con unidad", "interpretacion": "lectura del valor"}
  ],
  "okrs": [
    {"objetivo": "objetivo propuesto", "resultados_clave": ["resultado clave 1", "resultado clave 2"]}
  ],
  "fortalezas": ["fortaleza identificada"],
  "debilidades": ["debilidad identificada"],
  "estrategias": ["estrategia recomendada"],
  "recomendaciones_metodologicas": ["recomendación metodológica"],
  "people_analytics": {
    "metricas_internas": {"rotacion_estimada": "...", "ausentismo_detectado": "...", "nivel_desempeno_promedio": "...", "interpretacion": "..."},
    "benchmarking_externo": {"comparacion_industria": "...", "posicionamiento": "...", "gaps_identificados": ["..."]},
    "riesgos_fuga_talento": {"nivel_riesgo": "...", "areas_criticas": ["..."], "indicadores_alerta": ["..."], "empleados_en_riesgo_estimado": "..."},
    "relacion_clima_desempeno": {"correlacion": "...", "areas_impacto_positivo": ["..."], "areas_impacto_negativo": ["..."], "insight_principal": "..."},
    "vinculacion_productividad": {"impacto_productividad": "...", "impacto_rentabilidad_estimado": "...", "metricas_clave": [{"metrica": "...", "relacion_clima": "..."}], "recomendaciones_roi": ["..."]}
  }
}

El arreglo indicadores_estrategicos debe contener exactamente 8 elementos. Responde únicamente con el objeto JSON.`
