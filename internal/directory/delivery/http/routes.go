package http

import (
	"github.com/gin-gonic/gin"

	"climate-srv/internal/middleware"
)

func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	api := r.Group("/api")
	{
		api.GET("/users/metadata", h.GetMetadata)
	}
}
