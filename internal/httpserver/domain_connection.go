package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	connectionHTTP "climate-srv/internal/connection/delivery/http"
	connectionPostgre "climate-srv/internal/connection/repository/postgre"
	connectionUsecase "climate-srv/internal/connection/usecase"
	"climate-srv/internal/middleware"
)

func (srv *HTTPServer) setupConnectionDomain(ctx context.Context, r *gin.RouterGroup, mw middleware.Middleware) error {
	configRepo := connectionPostgre.NewConfigRepository(srv.l, srv.postgresDB)

	uc := connectionUsecase.New(srv.l, srv.config, configRepo, srv.encrypter, srv.httpClient)
	srv.connectionUC = uc

	handler := connectionHTTP.New(srv.l, uc, srv.discord)
	handler.RegisterRoutes(r, mw)

	srv.l.Infof(ctx, "Connection domain registered")
	return nil
}
