package http

import (
	"github.com/gin-gonic/gin"

	"climate-srv/internal/analysis"
	"climate-srv/internal/middleware"
	"climate-srv/pkg/discord"
	"climate-srv/pkg/log"
)

// Handler registers the analysis HTTP routes.
type Handler interface {
	RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware)
}

type handler struct {
	l       log.Logger
	uc      analysis.UseCase
	discord discord.IDiscord
}

// New - Factory
func New(l log.Logger, uc analysis.UseCase, discord discord.IDiscord) Handler {
	return &handler{l: l, uc: uc, discord: discord}
}
