package connection

import "time"

// ServiceStatus reports one collaborator's configuration and liveness.
type ServiceStatus struct {
	Configured bool       `json:"configured"`
	Connected  bool       `json:"connected"`
	LastUpdate *time.Time `json:"lastUpdate,omitempty"`
}

// Status covers every external collaborator the service depends on.
type Status struct {
	Microsoft365 ServiceStatus `json:"microsoft365"`
	OpenAI       ServiceStatus `json:"openai"`
}

// SaveConfigInput carries credential updates. Nil fields are left
// untouched so callers can rotate a single value.
type SaveConfigInput struct {
	ClientID     *string
	TenantID     *string
	ClientSecret *string
	OpenAIKey    *string
}
