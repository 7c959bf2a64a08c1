package repository

import "errors"

var (
	// ErrProgressNotFound is returned when a progress record does not exist.
	ErrProgressNotFound = errors.New("progress record not found")
	// ErrResultNotFound is returned when no matching result exists.
	ErrResultNotFound = errors.New("analysis result not found")
)
