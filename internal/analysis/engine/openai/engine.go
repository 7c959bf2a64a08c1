package openai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"climate-srv/internal/model"
)

// realPathConfidence is the confidence score attached to documents
// produced from real communications.
const realPathConfidence = 85

// ErrEmptyBatch is returned when Analyze receives no communications.
var ErrEmptyBatch = errors.New("engine: cannot analyze an empty batch")

// Analyze builds the analysis prompt from the batch, submits it in
// JSON mode and validates the returned document before handing it back.
// An invalid document is rejected here, never persisted.
func (e *implEngine) Analyze(ctx context.Context, comms []model.Communication) (*model.ClimateAnalysis, int, error) {
	if len(comms) == 0 {
		return nil, 0, ErrEmptyBatch
	}

	userPrompt := buildAnalysisPrompt(comms)

	content, err := e.openAI.CompleteJSON(ctx, systemPrompt, userPrompt)
	if err != nil {
		return nil, 0, fmt.Errorf("engine.Analyze: %w", err)
	}

	var doc model.ClimateAnalysis
	if err := json.Unmarshal([]byte(content), &doc); err != nil {
		e.l.Errorf(ctx, "engine: model returned malformed JSON: %v", err)
		return nil, 0, fmt.Errorf("engine.Analyze: invalid JSON response: %w", err)
	}

	if err := doc.Validate(); err != nil {
		e.l.Errorf(ctx, "engine: model returned invalid document: %v", err)
		return nil, 0, fmt.Errorf("engine.Analyze: document validation failed: %w", err)
	}

	return &doc, realPathConfidence, nil
}
