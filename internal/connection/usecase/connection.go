package usecase

import (
	"context"
	"fmt"

	"climate-srv/internal/connection"
	"climate-srv/internal/model"
)

func (uc *implUseCase) GetStatus(ctx context.Context) (connection.Status, error) {
	creds, err := uc.loadCredentials(ctx)
	if err != nil {
		return connection.Status{}, fmt.Errorf("GetStatus: %w", err)
	}

	status := connection.Status{
		Microsoft365: connection.ServiceStatus{
			Configured: creds.graphConfigured(),
			LastUpdate: creds.GraphUpdatedAt,
		},
		OpenAI: connection.ServiceStatus{
			Configured: creds.openAIConfigured(),
			LastUpdate: creds.OpenAIUpdatedAt,
		},
	}

	if status.Microsoft365.Configured {
		graph, err := uc.Graph(ctx)
		if err == nil {
			err = graph.TestConnection(ctx)
		}
		if err != nil {
			uc.l.Warnf(ctx, "connection: graph check failed: %v", err)
		}
		status.Microsoft365.Connected = err == nil
	}

	if status.OpenAI.Configured {
		client, err := uc.openAIClient(ctx)
		if err == nil {
			err = client.TestConnection(ctx)
		}
		if err != nil {
			uc.l.Warnf(ctx, "connection: openai check failed: %v", err)
		}
		status.OpenAI.Connected = err == nil
	}

	return status, nil
}

func (uc *implUseCase) SaveConfig(ctx context.Context, input connection.SaveConfigInput) error {
	type setting struct {
		key       string
		value     *string
		encrypted bool
	}
	settings := []setting{
		{model.ConfigKeyGraphTenantID, input.TenantID, false},
		{model.ConfigKeyGraphClientID, input.ClientID, false},
		{model.ConfigKeyGraphClientSecret, input.ClientSecret, true},
		{model.ConfigKeyOpenAIKey, input.OpenAIKey, true},
	}

	saved := false
	for _, s := range settings {
		if s.value == nil || *s.value == "" {
			continue
		}
		value := *s.value
		if s.encrypted {
			encrypted, err := uc.enc.Encrypt(value)
			if err != nil {
				return fmt.Errorf("SaveConfig: encrypt %s: %w", s.key, err)
			}
			value = encrypted
		}
		if err := uc.repo.Upsert(ctx, s.key, value, s.encrypted); err != nil {
			return fmt.Errorf("SaveConfig: %w", err)
		}
		saved = true
	}

	if saved {
		uc.invalidate()
		uc.l.Infof(ctx, "connection: configuration updated, collaborator clients invalidated")
	}
	return nil
}
