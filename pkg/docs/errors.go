package docs

import "errors"

// ErrWriteFailed is returned when a guide file cannot be written.
var ErrWriteFailed = errors.New("failed to write docs")
