package postgre

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"climate-srv/internal/connection/repository"
	"climate-srv/internal/model"
)

func (r *implConfigRepository) Upsert(ctx context.Context, key, value string, encrypted bool) error {
	if _, err := r.db.ExecContext(ctx, `
		INSERT INTO climate.system_configs (key, value, encrypted, updated_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (key) DO UPDATE
		SET value = EXCLUDED.value, encrypted = EXCLUDED.encrypted, updated_at = EXCLUDED.updated_at
	`, key, value, encrypted, time.Now().UTC()); err != nil {
		return fmt.Errorf("Upsert: %w", err)
	}
	return nil
}

func (r *implConfigRepository) Get(ctx context.Context, key string) (model.SystemConfig, error) {
	var cfg model.SystemConfig
	err := r.db.QueryRowContext(ctx, `
		SELECT key, value, encrypted, updated_at
		FROM climate.system_configs
		WHERE key = $1
	`, key).Scan(&cfg.Key, &cfg.Value, &cfg.Encrypted, &cfg.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return model.SystemConfig{}, repository.ErrConfigNotFound
	}
	if err != nil {
		return model.SystemConfig{}, fmt.Errorf("Get: %w", err)
	}
	return cfg, nil
}

func (r *implConfigRepository) GetAll(ctx context.Context) ([]model.SystemConfig, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT key, value, encrypted, updated_at
		FROM climate.system_configs
	`)
	if err != nil {
		return nil, fmt.Errorf("GetAll: %w", err)
	}
	defer rows.Close()

	var configs []model.SystemConfig
	for rows.Next() {
		var cfg model.SystemConfig
		if err := rows.Scan(&cfg.Key, &cfg.Value, &cfg.Encrypted, &cfg.UpdatedAt); err != nil {
			return nil, fmt.Errorf("GetAll: scan: %w", err)
		}
		configs = append(configs, cfg)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("GetAll: rows: %w", err)
	}
	return configs, nil
}
