package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	analysisHTTP "climate-srv/internal/analysis/delivery/http"
	analysisKafka "climate-srv/internal/analysis/delivery/kafka"
	analysisProducer "climate-srv/internal/analysis/delivery/kafka/producer"
	analysisPostgre "climate-srv/internal/analysis/repository/postgre"
	analysisRedis "climate-srv/internal/analysis/repository/redis"
	analysisUsecase "climate-srv/internal/analysis/usecase"
	"climate-srv/internal/middleware"
)

func (srv *HTTPServer) setupAnalysisDomain(ctx context.Context, r *gin.RouterGroup, mw middleware.Middleware) error {
	progressRepo := analysisRedis.NewProgressRepository(srv.l, srv.redisClient)
	resultRepo := analysisPostgre.NewResultRepository(srv.l, srv.postgresDB)

	var publisher analysisKafka.Publisher
	if srv.producer != nil {
		publisher = analysisProducer.New(srv.l, srv.producer, srv.config.Kafka.Topic)
	}

	uc := analysisUsecase.New(
		srv.l,
		analysisUsecase.Config{},
		progressRepo,
		resultRepo,
		srv.connectionUC,
		publisher,
		srv.minioClient,
	)
	srv.analysisUC = uc

	handler := analysisHTTP.New(srv.l, uc, srv.discord)
	handler.RegisterRoutes(r, mw)

	srv.l.Infof(ctx, "Analysis domain registered")
	return nil
}
