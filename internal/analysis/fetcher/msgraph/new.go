package msgraph

import (
	"climate-srv/internal/analysis"
	"climate-srv/pkg/log"
	pkgMsgraph "climate-srv/pkg/msgraph"
)

type implFetcher struct {
	l     log.Logger
	graph pkgMsgraph.IGraph
}

var _ analysis.Fetcher = &implFetcher{}

// New returns a fetcher that unifies Graph mail and chat messages into
// communication records.
func New(l log.Logger, graph pkgMsgraph.IGraph) analysis.Fetcher {
	return &implFetcher{
		l:     l,
		graph: graph,
	}
}
