package boltdb

import (
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.etcd.io/bbolt"

	"github.com/iudanet/cartsync/internal/client/storage"
	"github.com/iudanet/cartsync/internal/models"
)

func TestLoadCart_NotFound(t *testing.T) {
	store := newTestStorage(t)

	cart, err := store.LoadCart(context.Background())
	assert.ErrorIs(t, err, storage.ErrCartNotFound)
	assert.Nil(t, cart)
}

func TestSaveAndLoadCart(t *testing.T) {
	ctx := context.Background()
	store := newTestStorage(t)

	compare := 12.5
	items := []models.CartItem{
		{
			ID:        "local-7-1700000000000",
			ProductID: "7",
			Quantity:  2,
			ProductDetails: models.ProductDetails{
				Name:         "Mug",
				Price:        9.99,
				Image:        "/img/mug.png",
				ComparePrice: &compare,
			},
		},
		{
			ID:        "101",
			ProductID: "sku-blue",
			Quantity:  1,
			ProductDetails: models.ProductDetails{
				Name:  "Product sku-blue",
				Price: 0,
			},
		},
	}

	require.NoError(t, store.SaveCart(ctx, &models.PersistedCart{Items: items}))

	loaded, err := store.LoadCart(ctx)
	require.NoError(t, err)
	assert.Equal(t, items, loaded.Items)

	// перезапись слота
	require.NoError(t, store.SaveCart(ctx, &models.PersistedCart{}))
	loaded, err = store.LoadCart(ctx)
	require.NoError(t, err)
	assert.Empty(t, loaded.Items)
	assert.NotNil(t, loaded.Items)
}

func TestSaveCart_PersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "cart.db")

	store, err := New(ctx, dbPath)
	require.NoError(t, err)
	items := []models.CartItem{{ID: "local-1-1", ProductID: "1", Quantity: 3, ProductDetails: models.Fallback("1")}}
	require.NoError(t, store.SaveCart(ctx, &models.PersistedCart{Items: items}))
	require.NoError(t, store.Close())

	store, err = New(ctx, dbPath)
	require.NoError(t, err)
	defer func() { _ = store.Close() }()

	loaded, err := store.LoadCart(ctx)
	require.NoError(t, err)
	assert.Equal(t, items, loaded.Items)
}

func TestSaveCart_WireShape(t *testing.T) {
	ctx := context.Background()
	store := newTestStorage(t)

	require.NoError(t, store.SaveCart(ctx, &models.PersistedCart{Items: []models.CartItem{
		{ID: "1", ProductID: "5", Quantity: 1, ProductDetails: models.ProductDetails{Name: "Pen", Price: 1.5}},
	}}))

	var raw map[string]any
	err := store.db.View(func(tx *bbolt.Tx) error {
		return json.Unmarshal(tx.Bucket(bucketCart).Get(keyCartState), &raw)
	})
	require.NoError(t, err)

	items, ok := raw["items"].([]any)
	require.True(t, ok)
	require.Len(t, items, 1)
	item := items[0].(map[string]any)
	assert.Equal(t, "5", item["productId"])
	assert.Equal(t, "Pen", item["name"])
	assert.Equal(t, 1.5, item["price"])
}

func TestCart_Closed(t *testing.T) {
	store, err := New(context.Background(), filepath.Join(t.TempDir(), "cart.db"))
	require.NoError(t, err)
	require.NoError(t, store.Close())

	assert.ErrorIs(t, store.SaveCart(context.Background(), &models.PersistedCart{}), storage.ErrStorageClosed)
	_, err = store.LoadCart(context.Background())
	assert.ErrorIs(t, err, storage.ErrStorageClosed)
}
