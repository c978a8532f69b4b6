package storage

import (
	"context"
	"time"

	"github.com/iudanet/cartsync/internal/models"
)

//go:generate moq -out outbox_mock.go . OutboxStorage

// OutboxStorage defines the persistent queue of operations waiting for the remote cart
type OutboxStorage interface {
	// Enqueue appends op and assigns op.Seq
	Enqueue(ctx context.Context, op *models.OutboxOp) error

	// ListReady returns pending ops in FIFO order, stopping at the first
	// pending op that is not ready at now. Dead ops are skipped.
	// limit <= 0 means no limit.
	ListReady(ctx context.Context, now time.Time, limit int) ([]*models.OutboxOp, error)

	// List returns every op in FIFO order
	List(ctx context.Context) ([]*models.OutboxOp, error)

	// Ack removes a delivered op
	// Returns ErrOpNotFound if the op is gone
	Ack(ctx context.Context, seq uint64) error

	// UpdateOp stores attempts, schedule and status of an existing op
	// Returns ErrOpNotFound if the op is gone
	UpdateOp(ctx context.Context, op *models.OutboxOp) error

	// CancelPending removes pending add_item ops for productID.
	// An empty productID cancels every pending add_item op.
	CancelPending(ctx context.Context, productID string) (int, error)

	// Counts returns the number of pending and dead ops
	Counts(ctx context.Context) (pending int, dead int, err error)
}
