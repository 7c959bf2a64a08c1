package redis

import (
	"climate-srv/internal/analysis/repository"
	"climate-srv/pkg/log"
	pkgRedis "climate-srv/pkg/redis"
)

type implProgressRepository struct {
	l     log.Logger
	redis pkgRedis.IRedis
}

var _ repository.ProgressRepository = &implProgressRepository{}

// NewProgressRepository returns a Redis backed progress repository.
func NewProgressRepository(l log.Logger, redis pkgRedis.IRedis) repository.ProgressRepository {
	return &implProgressRepository{
		l:     l,
		redis: redis,
	}
}
