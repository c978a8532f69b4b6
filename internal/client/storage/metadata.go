package storage

import (
	"context"
	"time"
)

//go:generate moq -out metadata_mock.go . MetadataStorage

// MetadataStorage defines interface for storing client metadata
type MetadataStorage interface {
	// SaveLastPull saves the time of the last successful pull
	SaveLastPull(ctx context.Context, at time.Time) error

	// GetLastPull retrieves the time of the last successful pull
	// Returns zero time if no pull has been performed yet
	GetLastPull(ctx context.Context) (time.Time, error)
}
