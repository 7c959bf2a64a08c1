package repository

import (
	"context"

	"climate-srv/internal/model"
)

// ConfigRepository stores connection settings keyed by name.
type ConfigRepository interface {
	// Upsert inserts or replaces one setting.
	Upsert(ctx context.Context, key, value string, encrypted bool) error
	// Get returns one setting or ErrConfigNotFound.
	Get(ctx context.Context, key string) (model.SystemConfig, error)
	// GetAll returns every stored setting.
	GetAll(ctx context.Context) ([]model.SystemConfig, error)
}
