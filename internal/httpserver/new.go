package httpserver

import (
	"database/sql"
	"errors"

	"github.com/gin-gonic/gin"

	"climate-srv/config"
	"climate-srv/internal/analysis"
	"climate-srv/internal/connection"
	"climate-srv/pkg/discord"
	"climate-srv/pkg/encrypter"
	pkgHTTP "climate-srv/pkg/http"
	"climate-srv/pkg/kafka"
	"climate-srv/pkg/log"
	"climate-srv/pkg/minio"
	pkgRedis "climate-srv/pkg/redis"
)

type HTTPServer struct {
	// Server Configuration
	gin         *gin.Engine
	l           log.Logger
	host        string
	port        int
	mode        string
	environment string
	config      *config.Config

	// Backend Clients
	postgresDB  *sql.DB
	redisClient pkgRedis.IRedis
	producer    kafka.IProducer
	minioClient minio.IMinIO
	httpClient  pkgHTTP.IClient
	encrypter   encrypter.IEncrypter

	// Monitoring & Notification Configuration
	discord discord.IDiscord

	// Cross-domain use cases
	connectionUC connection.UseCase
	analysisUC   analysis.UseCase
}

type Config struct {
	// Server Configuration
	Host        string
	Port        int
	Mode        string
	Environment string
	Config      *config.Config

	// Backend Clients
	PostgresDB  *sql.DB
	RedisClient pkgRedis.IRedis
	Producer    kafka.IProducer
	MinIOClient minio.IMinIO
	HTTPClient  pkgHTTP.IClient
	Encrypter   encrypter.IEncrypter

	// Monitoring & Notification Configuration
	Discord discord.IDiscord
}

// New creates a new HTTPServer instance with the provided configuration.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.Default(),
		host:        cfg.Host,
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		config:      cfg.Config,

		postgresDB:  cfg.PostgresDB,
		redisClient: cfg.RedisClient,
		producer:    cfg.Producer,
		minioClient: cfg.MinIOClient,
		httpClient:  cfg.HTTPClient,
		encrypter:   cfg.Encrypter,

		discord: cfg.Discord,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

// validate validates that all required dependencies are provided.
// Kafka, MinIO and Discord are best-effort concerns and may be nil.
func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	// host can be empty (listen on all interfaces)
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.config == nil {
		return errors.New("config is required")
	}
	if srv.postgresDB == nil {
		return errors.New("postgresDB is required")
	}
	if srv.redisClient == nil {
		return errors.New("redisClient is required")
	}
	if srv.httpClient == nil {
		return errors.New("httpClient is required")
	}
	if srv.encrypter == nil {
		return errors.New("encrypter is required")
	}
	return nil
}
