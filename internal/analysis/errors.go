package analysis

import "errors"

var (
	// ErrAlreadyRunning is returned by Start while a job is in progress.
	ErrAlreadyRunning = errors.New("an analysis is already running")
	// ErrNotRunning is returned by Stop when no job is in progress.
	ErrNotRunning = errors.New("no analysis is currently running")
	// ErrInvalidDateRange is returned when dateFrom is after dateTo.
	ErrInvalidDateRange = errors.New("dateFrom must not be after dateTo")
	// ErrNoCommunications fails a job whose fetch matched nothing.
	ErrNoCommunications = errors.New("no communications found for analysis")
	// ErrNoActiveResult is returned when no analysis has completed yet.
	ErrNoActiveResult = errors.New("no analysis results available")
)
