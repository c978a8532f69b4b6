package boltdb

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/cartsync/internal/client/storage"
	"github.com/iudanet/cartsync/internal/models"
)

func seqs(ops []*models.OutboxOp) []uint64 {
	out := make([]uint64, 0, len(ops))
	for _, op := range ops {
		out = append(out, op.Seq)
	}
	return out
}

func TestEnqueue_AssignsIncreasingSeq(t *testing.T) {
	ctx := context.Background()
	store := newTestStorage(t)
	now := time.UnixMilli(1_000)

	first := models.NewAddItemOp("1", 1, 1, "local-1-1", now)
	second := models.NewAddItemOp("2", 2, 1, "local-2-1", now)
	third := models.NewClearCartOp(now)

	for _, op := range []*models.OutboxOp{first, second, third} {
		require.NoError(t, store.Enqueue(ctx, op))
	}

	assert.Less(t, first.Seq, second.Seq)
	assert.Less(t, second.Seq, third.Seq)

	ops, err := store.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []uint64{first.Seq, second.Seq, third.Seq}, seqs(ops))
	assert.Equal(t, first.ID, ops[0].ID)
	assert.Equal(t, models.OpClearCart, ops[2].Kind)
}

func TestListReady(t *testing.T) {
	ctx := context.Background()
	now := time.UnixMilli(10_000)

	tests := []struct {
		name  string
		setup func(op []*models.OutboxOp)
		limit int
		want  []int
	}{
		{
			name:  "all ready",
			setup: func([]*models.OutboxOp) {},
			want:  []int{0, 1, 2},
		},
		{
			name:  "limit",
			setup: func([]*models.OutboxOp) {},
			limit: 2,
			want:  []int{0, 1},
		},
		{
			name: "stops at first delayed op",
			setup: func(ops []*models.OutboxOp) {
				ops[1].NextAttemptAt = now.Add(time.Minute)
			},
			want: []int{0},
		},
		{
			name: "head delayed blocks queue",
			setup: func(ops []*models.OutboxOp) {
				ops[0].NextAttemptAt = now.Add(time.Second)
			},
			want: []int{},
		},
		{
			name: "dead ops are skipped",
			setup: func(ops []*models.OutboxOp) {
				ops[0].Status = models.OpStatusDead
				ops[0].NextAttemptAt = now.Add(time.Hour)
			},
			want: []int{1, 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newTestStorage(t)
			ops := []*models.OutboxOp{
				models.NewAddItemOp("1", 1, 1, "", now),
				models.NewAddItemOp("2", 2, 1, "", now),
				models.NewClearCartOp(now),
			}
			tt.setup(ops)
			for _, op := range ops {
				require.NoError(t, store.Enqueue(ctx, op))
			}

			ready, err := store.ListReady(ctx, now, tt.limit)
			require.NoError(t, err)

			want := make([]uint64, 0, len(tt.want))
			for _, i := range tt.want {
				want = append(want, ops[i].Seq)
			}
			assert.Equal(t, want, seqs(ready))
		})
	}
}

func TestAckAndUpdateOp(t *testing.T) {
	ctx := context.Background()
	store := newTestStorage(t)
	now := time.UnixMilli(1_000)

	op := models.NewAddItemOp("3", 3, 2, "local-3-1", now)
	require.NoError(t, store.Enqueue(ctx, op))

	op.Attempts = 2
	op.LastError = "server error (503): unavailable"
	op.NextAttemptAt = now.Add(4 * time.Second)
	require.NoError(t, store.UpdateOp(ctx, op))

	ops, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, ops, 1)
	assert.Equal(t, 2, ops[0].Attempts)
	assert.Equal(t, op.LastError, ops[0].LastError)
	assert.True(t, op.NextAttemptAt.Equal(ops[0].NextAttemptAt))

	require.NoError(t, store.Ack(ctx, op.Seq))
	assert.ErrorIs(t, store.Ack(ctx, op.Seq), storage.ErrOpNotFound)
	assert.ErrorIs(t, store.UpdateOp(ctx, op), storage.ErrOpNotFound)

	ops, err = store.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, ops)
}

func TestCancelPending(t *testing.T) {
	ctx := context.Background()
	now := time.UnixMilli(1_000)

	t.Run("by product", func(t *testing.T) {
		store := newTestStorage(t)
		a1 := models.NewAddItemOp("1", 1, 1, "", now)
		b := models.NewAddItemOp("2", 2, 1, "", now)
		a2 := models.NewAddItemOp("1", 1, 3, "", now)
		clear := models.NewClearCartOp(now)
		for _, op := range []*models.OutboxOp{a1, b, a2, clear} {
			require.NoError(t, store.Enqueue(ctx, op))
		}

		n, err := store.CancelPending(ctx, "1")
		require.NoError(t, err)
		assert.Equal(t, 2, n)

		ops, err := store.List(ctx)
		require.NoError(t, err)
		assert.Equal(t, []uint64{b.Seq, clear.Seq}, seqs(ops))
	})

	t.Run("all adds, dead kept", func(t *testing.T) {
		store := newTestStorage(t)
		dead := models.NewAddItemOp("9", 9, 1, "", now)
		dead.Status = models.OpStatusDead
		live := models.NewAddItemOp("8", 8, 1, "", now)
		clear := models.NewClearCartOp(now)
		for _, op := range []*models.OutboxOp{dead, live, clear} {
			require.NoError(t, store.Enqueue(ctx, op))
		}

		n, err := store.CancelPending(ctx, "")
		require.NoError(t, err)
		assert.Equal(t, 1, n)

		pending, deadCount, err := store.Counts(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, pending)
		assert.Equal(t, 1, deadCount)
	})
}

func TestOutbox_Closed(t *testing.T) {
	store := newTestStorage(t)
	db := store.db
	store.db = nil
	defer func() { store.db = db }()

	ctx := context.Background()
	assert.ErrorIs(t, store.Enqueue(ctx, models.NewClearCartOp(time.Now())), storage.ErrStorageClosed)
	_, err := store.ListReady(ctx, time.Now(), 0)
	assert.ErrorIs(t, err, storage.ErrStorageClosed)
	_, _, err = store.Counts(ctx)
	assert.ErrorIs(t, err, storage.ErrStorageClosed)
}
