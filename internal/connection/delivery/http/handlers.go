package http

import (
	"github.com/gin-gonic/gin"

	"climate-srv/pkg/response"
)

// GetStatus - Collaborator connection status
// @Summary Get connection status
// @Description Reports configuration and live connectivity per external service
// @Tags Connections
// @Produce json
// @Success 200 {object} statusResp
// @Failure 500 {object} response.ErrorBody
// @Router /api/connections/status [get]
func (h *handler) GetStatus(c *gin.Context) {
	ctx := c.Request.Context()

	status, err := h.uc.GetStatus(ctx)
	if err != nil {
		h.l.Errorf(ctx, "connection.delivery.http.GetStatus: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	response.OK(c, h.newStatusResp(status))
}

// SaveConfig - Persist collaborator credentials
// @Summary Save connection config
// @Description Stores collaborator credentials (secrets encrypted) and re-initializes the collaborator clients
// @Tags Connections
// @Accept json
// @Produce json
// @Param body body saveConfigReq true "Credential updates"
// @Success 200 {object} messageResp
// @Failure 400 {object} response.ErrorBody
// @Failure 500 {object} response.ErrorBody
// @Router /api/config [post]
func (h *handler) SaveConfig(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSaveConfigRequest(c)
	if err != nil {
		h.l.Warnf(ctx, "connection.delivery.http.SaveConfig: processSaveConfigRequest failed: %v", err)
		response.Error(c, errInvalidConfig, h.discord)
		return
	}

	if err := h.uc.SaveConfig(ctx, req.toInput()); err != nil {
		h.l.Errorf(ctx, "connection.delivery.http.SaveConfig: usecase SaveConfig failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	response.OK(c, messageResp{Message: "Configuration saved"})
}
