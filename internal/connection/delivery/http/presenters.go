package http

import (
	"time"

	"climate-srv/internal/connection"
)

// =====================================================
// Request DTOs
// =====================================================

type saveConfigReq struct {
	ClientID     *string `json:"clientId,omitempty"`
	TenantID     *string `json:"tenantId,omitempty"`
	ClientSecret *string `json:"clientSecret,omitempty"`
	OpenAIKey    *string `json:"openaiKey,omitempty"`
}

func (r saveConfigReq) toInput() connection.SaveConfigInput {
	return connection.SaveConfigInput{
		ClientID:     r.ClientID,
		TenantID:     r.TenantID,
		ClientSecret: r.ClientSecret,
		OpenAIKey:    r.OpenAIKey,
	}
}

// =====================================================
// Response DTOs
// =====================================================

type messageResp struct {
	Message string `json:"message"`
}

type serviceStatusResp struct {
	Configured bool       `json:"configured"`
	Connected  bool       `json:"connected"`
	LastUpdate *time.Time `json:"lastUpdate,omitempty"`
}

type statusResp struct {
	Microsoft365 serviceStatusResp `json:"microsoft365"`
	OpenAI       serviceStatusResp `json:"openai"`
}

func (h *handler) newStatusResp(status connection.Status) statusResp {
	return statusResp{
		Microsoft365: serviceStatusResp(status.Microsoft365),
		OpenAI:       serviceStatusResp(status.OpenAI),
	}
}
