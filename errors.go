package screenflow

import "errors"

// Errors returned by the Manager. All failures are synchronous: they are
// reported to the immediate caller and never deferred into the render loop.
var (
	// ErrInvalidArgument is returned when a registration is handed an
	// empty name or a nil entity.
	ErrInvalidArgument = errors.New("screenflow: invalid argument")

	// ErrNotFound is returned when a screen or transition name has not
	// been registered.
	ErrNotFound = errors.New("screenflow: not found")

	// ErrNotInitialized is returned when the manager is used before
	// Initialize (or after Dispose).
	ErrNotInitialized = errors.New("screenflow: manager not initialized")
)
