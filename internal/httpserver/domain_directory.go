package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	directoryHTTP "climate-srv/internal/directory/delivery/http"
	directoryUsecase "climate-srv/internal/directory/usecase"
	"climate-srv/internal/middleware"
)

func (srv *HTTPServer) setupDirectoryDomain(ctx context.Context, r *gin.RouterGroup, mw middleware.Middleware) error {
	uc := directoryUsecase.New(srv.l, srv.connectionUC)

	handler := directoryHTTP.New(srv.l, uc, srv.discord)
	handler.RegisterRoutes(r, mw)

	srv.l.Infof(ctx, "Directory domain registered")
	return nil
}
