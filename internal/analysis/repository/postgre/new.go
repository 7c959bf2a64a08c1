package postgre

import (
	"database/sql"

	"climate-srv/internal/analysis/repository"
	"climate-srv/pkg/log"
)

type implResultRepository struct {
	l  log.Logger
	db *sql.DB
}

var _ repository.ResultRepository = &implResultRepository{}

// NewResultRepository returns a PostgreSQL backed result repository.
func NewResultRepository(l log.Logger, db *sql.DB) repository.ResultRepository {
	return &implResultRepository{
		l:  l,
		db: db,
	}
}
