package usecase

import (
	"context"
	"fmt"
	"time"

	"climate-srv/internal/analysis"
	engineOpenAI "climate-srv/internal/analysis/engine/openai"
	fetcherMsgraph "climate-srv/internal/analysis/fetcher/msgraph"
	"climate-srv/internal/model"
	"climate-srv/pkg/msgraph"
	"climate-srv/pkg/openai"
)

// credentials is the merged credential set: stored values win over the
// environment fallback.
type credentials struct {
	TenantID     string
	ClientID     string
	ClientSecret string
	OpenAIKey    string

	GraphUpdatedAt  *time.Time
	OpenAIUpdatedAt *time.Time
}

func (c credentials) graphConfigured() bool {
	return c.TenantID != "" && c.ClientID != "" && c.ClientSecret != ""
}

func (c credentials) openAIConfigured() bool {
	return c.OpenAIKey != ""
}

// loadCredentials merges stored settings over the environment config.
// Encrypted values are decrypted before use.
func (uc *implUseCase) loadCredentials(ctx context.Context) (credentials, error) {
	creds := credentials{
		TenantID:     uc.cfg.Graph.TenantID,
		ClientID:     uc.cfg.Graph.ClientID,
		ClientSecret: uc.cfg.Graph.ClientSecret,
		OpenAIKey:    uc.cfg.OpenAI.APIKey,
	}

	stored, err := uc.repo.GetAll(ctx)
	if err != nil {
		return credentials{}, fmt.Errorf("loadCredentials: %w", err)
	}

	for _, item := range stored {
		value := item.Value
		if item.Encrypted {
			value, err = uc.enc.Decrypt(item.Value)
			if err != nil {
				return credentials{}, fmt.Errorf("loadCredentials: decrypt %s: %w", item.Key, err)
			}
		}
		if value == "" {
			continue
		}

		updatedAt := item.UpdatedAt
		switch item.Key {
		case model.ConfigKeyGraphTenantID:
			creds.TenantID = value
			creds.GraphUpdatedAt = latestTime(creds.GraphUpdatedAt, updatedAt)
		case model.ConfigKeyGraphClientID:
			creds.ClientID = value
			creds.GraphUpdatedAt = latestTime(creds.GraphUpdatedAt, updatedAt)
		case model.ConfigKeyGraphClientSecret:
			creds.ClientSecret = value
			creds.GraphUpdatedAt = latestTime(creds.GraphUpdatedAt, updatedAt)
		case model.ConfigKeyOpenAIKey:
			creds.OpenAIKey = value
			creds.OpenAIUpdatedAt = latestTime(creds.OpenAIUpdatedAt, updatedAt)
		}
	}
	return creds, nil
}

func latestTime(current *time.Time, candidate time.Time) *time.Time {
	if current == nil || candidate.After(*current) {
		return &candidate
	}
	return current
}

// Ready reports whether both collaborators have usable credentials.
// The orchestrator falls back to the demonstration path when not.
func (uc *implUseCase) Ready(ctx context.Context) bool {
	creds, err := uc.loadCredentials(ctx)
	if err != nil {
		uc.l.Warnf(ctx, "connection: loading credentials: %v", err)
		return false
	}
	return creds.graphConfigured() && creds.openAIConfigured()
}

// Fetcher returns a communications fetcher over the cached graph client.
func (uc *implUseCase) Fetcher(ctx context.Context) (analysis.Fetcher, error) {
	graph, err := uc.Graph(ctx)
	if err != nil {
		return nil, err
	}
	return fetcherMsgraph.New(uc.l, graph), nil
}

// Engine returns an analysis engine over the cached OpenAI client.
func (uc *implUseCase) Engine(ctx context.Context) (analysis.Engine, error) {
	client, err := uc.openAIClient(ctx)
	if err != nil {
		return nil, err
	}
	return engineOpenAI.New(uc.l, client), nil
}

// Graph returns the cached directory client, building it on first use.
func (uc *implUseCase) Graph(ctx context.Context) (msgraph.IGraph, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	if uc.graphClient != nil {
		return uc.graphClient, nil
	}

	creds, err := uc.loadCredentials(ctx)
	if err != nil {
		return nil, err
	}
	client, err := msgraph.New(uc.l, uc.httpClient, msgraph.Config{
		TenantID:     creds.TenantID,
		ClientID:     creds.ClientID,
		ClientSecret: creds.ClientSecret,
	})
	if err != nil {
		return nil, fmt.Errorf("graph: %w", err)
	}
	uc.graphClient = client
	return client, nil
}

func (uc *implUseCase) openAIClient(ctx context.Context) (openai.IOpenAI, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	if uc.openAI != nil {
		return uc.openAI, nil
	}

	creds, err := uc.loadCredentials(ctx)
	if err != nil {
		return nil, err
	}
	client, err := openai.New(uc.l, uc.httpClient, openai.Config{
		APIKey: creds.OpenAIKey,
		Model:  uc.cfg.OpenAI.Model,
	})
	if err != nil {
		return nil, fmt.Errorf("openAIClient: %w", err)
	}
	uc.openAI = client
	return client, nil
}

// invalidate drops the cached clients so the next use rebuilds them
// from the current configuration.
func (uc *implUseCase) invalidate() {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.graphClient = nil
	uc.openAI = nil
}
