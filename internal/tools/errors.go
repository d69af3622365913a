package tools

import "errors"

// Error values for discovery and registration operations.
var (
	// ErrRootMissing indicates the configured tool root does not exist.
	// It is the only error that aborts startup.
	ErrRootMissing = errors.New("tool root directory missing")

	// ErrNoRouter indicates a loaded tool file declares no Router symbol.
	// This is a valid outcome for shared helper files, not a failure.
	ErrNoRouter = errors.New("no router declared")
)
