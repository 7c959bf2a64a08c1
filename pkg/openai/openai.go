package openai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	pkgHTTP "climate-srv/pkg/http"
	"climate-srv/pkg/log"
)

const (
	baseURL = "https://api.openai.com/v1"

	// DefaultModel is used when Config.Model is empty.
	DefaultModel = "gpt-4o-mini"

	defaultTemperature = 0.3
	defaultMaxTokens   = 4000
)

var (
	// ErrAPIKeyRequired is returned when no API key is configured.
	ErrAPIKeyRequired = errors.New("openai: API key is required")
	// ErrEmptyCompletion is returned when the API returns no choices.
	ErrEmptyCompletion = errors.New("openai: completion returned no choices")
)

type openAIImpl struct {
	l      log.Logger
	client pkgHTTP.IClient
	cfg    Config
}

// New creates an OpenAI client.
func New(l log.Logger, client pkgHTTP.IClient, cfg Config) (IOpenAI, error) {
	if cfg.APIKey == "" {
		return nil, ErrAPIKeyRequired
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	return &openAIImpl{l: l, client: client, cfg: cfg}, nil
}

func (o *openAIImpl) headers() map[string]string {
	return map[string]string{"Authorization": "Bearer " + o.cfg.APIKey}
}

func (o *openAIImpl) CompleteJSON(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	req := chatCompletionRequest{
		Model: o.cfg.Model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt},
		},
		ResponseFormat: responseFormat{Type: "json_object"},
		Temperature:    defaultTemperature,
		MaxTokens:      defaultMaxTokens,
	}

	body, status, err := o.client.Post(ctx, baseURL+"/chat/completions", req, o.headers())
	if err != nil {
		return "", fmt.Errorf("openai.CompleteJSON: %w", err)
	}

	var resp chatCompletionResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", fmt.Errorf("openai.CompleteJSON: decode response: %w", err)
	}
	if resp.Error != nil {
		return "", fmt.Errorf("openai.CompleteJSON: API error (%s): %s", resp.Error.Type, resp.Error.Message)
	}
	if status != 200 {
		return "", fmt.Errorf("openai.CompleteJSON: unexpected status %d: %s", status, string(body))
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", ErrEmptyCompletion
	}

	o.l.Debugf(ctx, "openai: completion %s finished with reason %s", resp.ID, resp.Choices[0].FinishReason)
	return resp.Choices[0].Message.Content, nil
}

func (o *openAIImpl) TestConnection(ctx context.Context) error {
	body, status, err := o.client.Get(ctx, baseURL+"/models", o.headers())
	if err != nil {
		return fmt.Errorf("openai.TestConnection: %w", err)
	}

	var resp modelListResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return fmt.Errorf("openai.TestConnection: decode response: %w", err)
	}
	if resp.Error != nil {
		return fmt.Errorf("openai.TestConnection: API error (%s): %s", resp.Error.Type, resp.Error.Message)
	}
	if status != 200 {
		return fmt.Errorf("openai.TestConnection: unexpected status %d", status)
	}
	return nil
}
