package usecase

import (
	"climate-srv/internal/connection"
	"climate-srv/internal/directory"
	"climate-srv/pkg/log"
)

type implUseCase struct {
	l    log.Logger
	conn connection.UseCase
}

var _ directory.UseCase = &implUseCase{}

// New returns the directory use case.
func New(l log.Logger, conn connection.UseCase) directory.UseCase {
	return &implUseCase{
		l:    l,
		conn: conn,
	}
}
