package http

import (
	"github.com/gin-gonic/gin"

	"climate-srv/internal/middleware"
)

func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	api := r.Group("/api/analysis")
	{
		api.GET("/progress", h.GetProgress)
		api.POST("/start", h.Start)
		api.POST("/stop", h.Stop)
		api.GET("/results", h.GetResults)
		api.GET("/results/history", h.GetResultHistory)
	}
}
