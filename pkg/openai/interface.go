package openai

import "context"

// IOpenAI is the interface for the OpenAI chat completion client.
type IOpenAI interface {
	// CompleteJSON sends a chat completion request in JSON mode and
	// returns the raw content of the first choice.
	CompleteJSON(ctx context.Context, systemPrompt, userPrompt string) (string, error)
	// TestConnection verifies the API key by listing models.
	TestConnection(ctx context.Context) error
}
