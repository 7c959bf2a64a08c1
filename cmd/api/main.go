package main

import (
	"context"
	"fmt"
	"time"

	"climate-srv/config"
	configKafka "climate-srv/config/kafka"
	configMinio "climate-srv/config/minio"
	configPostgre "climate-srv/config/postgre"
	configRedis "climate-srv/config/redis"
	_ "climate-srv/docs" // Import swagger docs
	"climate-srv/internal/httpserver"
	"climate-srv/pkg/discord"
	"climate-srv/pkg/encrypter"
	pkgHTTP "climate-srv/pkg/http"
	"climate-srv/pkg/log"
)

// @title       Climate Service API
// @description Organizational climate analysis API documentation.
// @version     1
// @BasePath    /
func main() {
	// 1. Load configuration
	// Reads config from YAML file and environment variables
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Initialize logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx := context.Background()

	// 3. Initialize encrypter
	encrypterInstance, err := encrypter.New(cfg.Encrypter.Key)
	if err != nil {
		logger.Error(ctx, "Failed to initialize encrypter: ", err)
		return
	}

	// 4. Initialize PostgreSQL
	postgresDB, err := configPostgre.Connect(ctx, cfg.Postgres)
	if err != nil {
		logger.Error(ctx, "Failed to connect to PostgreSQL: ", err)
		return
	}
	defer configPostgre.Disconnect(ctx, postgresDB)
	logger.Infof(ctx, "PostgreSQL connected successfully to %s:%d/%s", cfg.Postgres.Host, cfg.Postgres.Port, cfg.Postgres.DBName)

	// 5. Initialize Redis
	redisClient, err := configRedis.Connect(ctx, cfg.Redis)
	if err != nil {
		logger.Error(ctx, "Failed to connect to Redis: ", err)
		return
	}
	defer configRedis.Disconnect()
	logger.Infof(ctx, "Redis connected successfully to %s:%d (DB %d)", cfg.Redis.Host, cfg.Redis.Port, cfg.Redis.DB)

	// 6. Initialize Kafka producer (optional)
	producer, err := configKafka.Connect(cfg.Kafka)
	if err != nil {
		logger.Warnf(ctx, "Kafka not available (optional): %v", err)
		producer = nil
	} else {
		defer configKafka.Disconnect()
		logger.Infof(ctx, "Kafka producer connected to %v", cfg.Kafka.Brokers)
	}

	// 7. Initialize MinIO (optional)
	minioClient, err := configMinio.Connect(ctx, cfg.MinIO)
	if err != nil {
		logger.Warnf(ctx, "MinIO not available (optional): %v", err)
		minioClient = nil
	} else {
		logger.Infof(ctx, "MinIO connected to %s (bucket %s)", cfg.MinIO.Endpoint, cfg.MinIO.Bucket)
	}

	// 8. Initialize Discord (optional)
	discordClient, err := discord.New(logger, &discord.DiscordWebhook{
		ID:    cfg.Discord.WebhookID,
		Token: cfg.Discord.WebhookToken,
	})
	if err != nil {
		logger.Warnf(ctx, "Discord webhook not configured (optional): %v", err)
		discordClient = nil
	} else {
		logger.Infof(ctx, "Discord webhook initialized successfully")
	}

	// 9. Shared outbound HTTP client for the collaborator APIs
	httpClient := pkgHTTP.NewClient(pkgHTTP.ClientConfig{
		Timeout:   60 * time.Second,
		Retries:   2,
		RetryWait: time.Second,
	})

	// 10. Initialize HTTP server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Host:        cfg.HTTPServer.Host,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		Config:      cfg,

		PostgresDB:  postgresDB,
		RedisClient: redisClient,
		Producer:    producer,
		MinIOClient: minioClient,
		HTTPClient:  httpClient,
		Encrypter:   encrypterInstance,

		Discord: discordClient,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}
}
