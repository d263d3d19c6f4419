package runner

import "errors"

var (
	// ErrAlreadyRunning is returned by Start while a run is active. Runs are
	// never queued or merged.
	ErrAlreadyRunning = errors.New("a run is already in progress")
	// ErrNotRunning is returned by Stop when no run is active.
	ErrNotRunning = errors.New("no run is in progress")
	// ErrInvalidConfig wraps the specific configuration violation.
	ErrInvalidConfig = errors.New("invalid run configuration")
	// ErrNoInputBackend means no usable input-simulation environment exists.
	// Fatal for any run, detected at start.
	ErrNoInputBackend = errors.New("input simulation unavailable")
)
