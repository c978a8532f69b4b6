package boltdb

import (
	"context"
	"encoding/binary"
	"fmt"
	"time"

	"go.etcd.io/bbolt"

	"github.com/iudanet/cartsync/internal/client/storage"
)

const (
	keyLastPull = "last_pull_unix_ms"
)

// SaveLastPull saves the time of the last successful pull
func (s *Storage) SaveLastPull(ctx context.Context, at time.Time) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketMetadata)
		if bucket == nil {
			return fmt.Errorf("metadata bucket not found")
		}

		buf := make([]byte, 8)
		binary.BigEndian.PutUint64(buf, uint64(at.UnixMilli()))

		if err := bucket.Put([]byte(keyLastPull), buf); err != nil {
			return fmt.Errorf("failed to save last pull: %w", err)
		}
		return nil
	})
}

// GetLastPull retrieves the time of the last successful pull
// Returns zero time if no pull has been performed yet
func (s *Storage) GetLastPull(ctx context.Context) (time.Time, error) {
	if s.db == nil {
		return time.Time{}, storage.ErrStorageClosed
	}

	var at time.Time

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketMetadata)
		if bucket == nil {
			return fmt.Errorf("metadata bucket not found")
		}

		buf := bucket.Get([]byte(keyLastPull))
		if len(buf) != 8 {
			return nil
		}

		at = time.UnixMilli(int64(binary.BigEndian.Uint64(buf)))
		return nil
	})
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to get last pull: %w", err)
	}

	return at, nil
}
