package http

import (
	"github.com/gin-gonic/gin"
)

func (h *handler) processSaveConfigRequest(c *gin.Context) (saveConfigReq, error) {
	var req saveConfigReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}
