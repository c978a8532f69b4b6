package boltdb

import (
	"context"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/cartsync/internal/client/storage"
	"github.com/iudanet/cartsync/internal/models"
)

// keyCartState единственный слот корзины
var keyCartState = []byte("state")

// SaveCart replaces the persisted cart slot
func (s *Storage) SaveCart(ctx context.Context, cart *models.PersistedCart) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	payload := models.PersistedCart{Items: cart.Items}
	if payload.Items == nil {
		payload.Items = []models.CartItem{}
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal cart: %w", err)
	}

	err = s.db.Update(func(tx *bbolt.Tx) error {
		bucket, err := tx.CreateBucketIfNotExists(bucketCart)
		if err != nil {
			return fmt.Errorf("failed to create bucket: %w", err)
		}
		return bucket.Put(keyCartState, data)
	})
	if err != nil {
		return fmt.Errorf("failed to save cart: %w", err)
	}

	return nil
}

// LoadCart returns the persisted cart slot
func (s *Storage) LoadCart(ctx context.Context) (*models.PersistedCart, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var cart *models.PersistedCart

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketCart)
		if bucket == nil {
			return storage.ErrCartNotFound
		}

		data := bucket.Get(keyCartState)
		if data == nil {
			return storage.ErrCartNotFound
		}

		cart = &models.PersistedCart{}
		if err := json.Unmarshal(data, cart); err != nil {
			return fmt.Errorf("failed to unmarshal cart: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if cart.Items == nil {
		cart.Items = []models.CartItem{}
	}
	return cart, nil
}
