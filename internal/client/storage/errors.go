package storage

import "errors"

// Common client storage errors
var (
	// ErrCartNotFound indicates that no cart has been persisted yet
	ErrCartNotFound = errors.New("cart not found")

	// ErrOpNotFound indicates that outbox operation was not found
	ErrOpNotFound = errors.New("outbox operation not found")

	// ErrStorageClosed indicates that storage is closed
	ErrStorageClosed = errors.New("storage is closed")
)
