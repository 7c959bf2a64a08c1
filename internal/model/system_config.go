package model

import "time"

// Stored connection setting keys.
const (
	ConfigKeyGraphTenantID     = "graph_tenant_id"
	ConfigKeyGraphClientID     = "graph_client_id"
	ConfigKeyGraphClientSecret = "graph_client_secret"
	ConfigKeyOpenAIKey         = "openai_api_key"
)

// SystemConfig is one stored connection setting. Secret values are
// encrypted at rest.
type SystemConfig struct {
	Key       string    `json:"key"`
	Value     string    `json:"value"`
	Encrypted bool      `json:"encrypted"`
	UpdatedAt time.Time `json:"updatedAt"`
}
