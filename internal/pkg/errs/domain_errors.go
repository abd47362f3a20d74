package errs

import "errors"

// Domain-specific sentinel errors shared by the usecase and handler layers
var (
	// Price errors
	ErrPriceNotFound = errors.New("price not found")

	// Query errors
	ErrInvalidQuery = errors.New("invalid price query")

	// Upstream errors (store or cache I/O)
	ErrUpstreamUnavailable = errors.New("upstream unavailable")
)
