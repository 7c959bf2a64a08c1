package http

import (
	"errors"

	"climate-srv/internal/analysis"
	pkgErrors "climate-srv/pkg/errors"
)

var (
	errAlreadyRunning = pkgErrors.NewHTTPError(
		400, "Analysis is already running",
	)
	errNotRunning = pkgErrors.NewHTTPError(
		400, "No analysis is running",
	)
	errInvalidDateRange = pkgErrors.NewHTTPError(
		400, "dateFrom must not be after dateTo",
	)
	errInvalidFilters = pkgErrors.NewHTTPError(
		400, "Invalid analysis filters",
	)
	errNoActiveResult = pkgErrors.NewHTTPError(
		404, "No analysis results available",
	)
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, analysis.ErrAlreadyRunning):
		return errAlreadyRunning
	case errors.Is(err, analysis.ErrNotRunning):
		return errNotRunning
	case errors.Is(err, analysis.ErrInvalidDateRange):
		return errInvalidDateRange
	case errors.Is(err, analysis.ErrNoActiveResult):
		return errNoActiveResult
	default:
		return err
	}
}
