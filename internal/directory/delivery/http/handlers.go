package http

import (
	"github.com/gin-gonic/gin"

	"climate-srv/pkg/response"
)

// GetMetadata - Departments and countries available as filters
// @Summary Get user metadata
// @Description Returns the departments and countries present in the organization directory, or a demo set when unconfigured
// @Tags Users
// @Produce json
// @Success 200 {object} metadataResp
// @Failure 500 {object} response.ErrorBody
// @Router /api/users/metadata [get]
func (h *handler) GetMetadata(c *gin.Context) {
	ctx := c.Request.Context()

	meta, err := h.uc.GetMetadata(ctx)
	if err != nil {
		h.l.Errorf(ctx, "directory.delivery.http.GetMetadata: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	response.OK(c, metadataResp{
		Departments: meta.Departments,
		Countries:   meta.Countries,
	})
}
