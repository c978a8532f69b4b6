package boltdb

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"time"

	"go.etcd.io/bbolt"

	"github.com/iudanet/cartsync/internal/client/storage"
	"github.com/iudanet/cartsync/internal/models"
)

// seqKey кодирует Seq в big-endian, чтобы курсор bbolt шёл в порядке очереди
func seqKey(seq uint64) []byte {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, seq)
	return key
}

// Enqueue appends op to the outbox and assigns op.Seq
func (s *Storage) Enqueue(ctx context.Context, op *models.OutboxOp) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketOutbox)
		if bucket == nil {
			return fmt.Errorf("outbox bucket not found")
		}

		seq, err := bucket.NextSequence()
		if err != nil {
			return fmt.Errorf("failed to allocate sequence: %w", err)
		}
		op.Seq = seq

		data, err := json.Marshal(op)
		if err != nil {
			return fmt.Errorf("failed to marshal op: %w", err)
		}

		return bucket.Put(seqKey(seq), data)
	})
	if err != nil {
		return fmt.Errorf("failed to enqueue op: %w", err)
	}

	return nil
}

// ListReady returns pending ops in FIFO order up to the first one scheduled after now
func (s *Storage) ListReady(ctx context.Context, now time.Time, limit int) ([]*models.OutboxOp, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var ops []*models.OutboxOp

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketOutbox)
		if bucket == nil {
			return nil
		}

		c := bucket.Cursor()
		for k, v := c.First(); k != nil; k, v = c.Next() {
			var op models.OutboxOp
			if err := json.Unmarshal(v, &op); err != nil {
				return fmt.Errorf("failed to unmarshal op: %w", err)
			}
			if op.Status != models.OpStatusPending {
				continue
			}
			if !op.Ready(now) {
				break
			}
			ops = append(ops, &op)
			if limit > 0 && len(ops) >= limit {
				break
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list ready ops: %w", err)
	}

	return ops, nil
}

// List returns every op in FIFO order
func (s *Storage) List(ctx context.Context) ([]*models.OutboxOp, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	ops := []*models.OutboxOp{}

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketOutbox)
		if bucket == nil {
			return nil
		}

		return bucket.ForEach(func(k, v []byte) error {
			var op models.OutboxOp
			if err := json.Unmarshal(v, &op); err != nil {
				return fmt.Errorf("failed to unmarshal op: %w", err)
			}
			ops = append(ops, &op)
			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list ops: %w", err)
	}

	return ops, nil
}

// Ack removes a delivered op
func (s *Storage) Ack(ctx context.Context, seq uint64) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketOutbox)
		if bucket == nil || bucket.Get(seqKey(seq)) == nil {
			return storage.ErrOpNotFound
		}
		return bucket.Delete(seqKey(seq))
	})
}

// UpdateOp overwrites an existing op
func (s *Storage) UpdateOp(ctx context.Context, op *models.OutboxOp) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	data, err := json.Marshal(op)
	if err != nil {
		return fmt.Errorf("failed to marshal op: %w", err)
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketOutbox)
		if bucket == nil || bucket.Get(seqKey(op.Seq)) == nil {
			return storage.ErrOpNotFound
		}
		return bucket.Put(seqKey(op.Seq), data)
	})
}

// CancelPending removes pending add_item ops for productID (all of them when productID is empty)
func (s *Storage) CancelPending(ctx context.Context, productID string) (int, error) {
	if s.db == nil {
		return 0, storage.ErrStorageClosed
	}

	removed := 0

	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketOutbox)
		if bucket == nil {
			return nil
		}

		// удаление во время ForEach запрещено, собираем ключи заранее
		var keys [][]byte
		err := bucket.ForEach(func(k, v []byte) error {
			var op models.OutboxOp
			if err := json.Unmarshal(v, &op); err != nil {
				return fmt.Errorf("failed to unmarshal op: %w", err)
			}
			if op.Kind != models.OpAddItem || op.Status != models.OpStatusPending {
				return nil
			}
			if productID != "" && op.ProductID != productID {
				return nil
			}
			keys = append(keys, append([]byte(nil), k...))
			return nil
		})
		if err != nil {
			return err
		}

		for _, k := range keys {
			if err := bucket.Delete(k); err != nil {
				return fmt.Errorf("failed to delete op: %w", err)
			}
		}
		removed = len(keys)
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("failed to cancel pending ops: %w", err)
	}

	return removed, nil
}

// Counts returns the number of pending and dead ops
func (s *Storage) Counts(ctx context.Context) (int, int, error) {
	if s.db == nil {
		return 0, 0, storage.ErrStorageClosed
	}

	var pending, dead int

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketOutbox)
		if bucket == nil {
			return nil
		}

		return bucket.ForEach(func(k, v []byte) error {
			var op struct {
				Status models.OpStatus `json:"status"`
			}
			if err := json.Unmarshal(v, &op); err != nil {
				return fmt.Errorf("failed to unmarshal op: %w", err)
			}
			switch op.Status {
			case models.OpStatusDead:
				dead++
			default:
				pending++
			}
			return nil
		})
	})
	if err != nil {
		return 0, 0, fmt.Errorf("failed to count ops: %w", err)
	}

	return pending, dead, nil
}
