package execctx

import "errors"

// Context validation errors.
var (
	// ErrMissingSnapshot indicates the text snapshot is required but not set.
	ErrMissingSnapshot = errors.New("execution context: snapshot is required")

	// ErrMissingCursors indicates cursors are required but not set.
	ErrMissingCursors = errors.New("execution context: cursors are required")
)
