package openai

import (
	"climate-srv/internal/analysis"
	"climate-srv/pkg/log"
	pkgOpenAI "climate-srv/pkg/openai"
)

type implEngine struct {
	l      log.Logger
	openAI pkgOpenAI.IOpenAI
}

var _ analysis.Engine = &implEngine{}

// New returns an engine that submits communication batches to the LLM
// and validates the returned document.
func New(l log.Logger, openAI pkgOpenAI.IOpenAI) analysis.Engine {
	return &implEngine{
		l:      l,
		openAI: openAI,
	}
}
