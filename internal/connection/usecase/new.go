package usecase

import (
	"sync"

	"climate-srv/config"
	"climate-srv/internal/connection"
	"climate-srv/internal/connection/repository"
	"climate-srv/pkg/encrypter"
	pkgHTTP "climate-srv/pkg/http"
	"climate-srv/pkg/log"
	"climate-srv/pkg/msgraph"
	"climate-srv/pkg/openai"
)

type implUseCase struct {
	l          log.Logger
	cfg        *config.Config
	repo       repository.ConfigRepository
	enc        encrypter.IEncrypter
	httpClient pkgHTTP.IClient

	// cached collaborator clients, rebuilt after SaveConfig
	mu          sync.Mutex
	graphClient msgraph.IGraph
	openAI      openai.IOpenAI
}

var _ connection.UseCase = &implUseCase{}

// New returns the connection use case. It also serves as the analysis
// orchestrator's collaborator source: clients are built from stored
// credentials (environment values as fallback) and cached until the
// configuration changes.
func New(
	l log.Logger,
	cfg *config.Config,
	repo repository.ConfigRepository,
	enc encrypter.IEncrypter,
	httpClient pkgHTTP.IClient,
) connection.UseCase {
	return &implUseCase{
		l:          l,
		cfg:        cfg,
		repo:       repo,
		enc:        enc,
		httpClient: httpClient,
	}
}
