package boltdb

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.etcd.io/bbolt"
)

func TestSaveAndGetLastPull(t *testing.T) {
	ctx := context.Background()
	store := newTestStorage(t)

	// Изначально pull не выполнялся
	at, err := store.GetLastPull(ctx)
	require.NoError(t, err)
	assert.True(t, at.IsZero())

	expected := time.UnixMilli(1700000000123)
	require.NoError(t, store.SaveLastPull(ctx, expected))

	at, err = store.GetLastPull(ctx)
	require.NoError(t, err)
	assert.True(t, expected.Equal(at))
}

func TestLastPull_BucketMissing(t *testing.T) {
	ctx := context.Background()
	store := newTestStorage(t)

	err := store.db.Update(func(tx *bbolt.Tx) error {
		return tx.DeleteBucket(bucketMetadata)
	})
	require.NoError(t, err)

	_, err = store.GetLastPull(ctx)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "metadata bucket not found")

	err = store.SaveLastPull(ctx, time.Now())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "metadata bucket not found")
}
