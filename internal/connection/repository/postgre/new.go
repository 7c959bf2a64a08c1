package postgre

import (
	"database/sql"

	"climate-srv/internal/connection/repository"
	"climate-srv/pkg/log"
)

type implConfigRepository struct {
	l  log.Logger
	db *sql.DB
}

var _ repository.ConfigRepository = &implConfigRepository{}

// NewConfigRepository returns a PostgreSQL backed config repository.
func NewConfigRepository(l log.Logger, db *sql.DB) repository.ConfigRepository {
	return &implConfigRepository{
		l:  l,
		db: db,
	}
}
