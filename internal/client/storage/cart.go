package storage

import (
	"context"

	"github.com/iudanet/cartsync/internal/models"
)

//go:generate moq -out cart_mock.go . CartStorage

// CartStorage defines the persisted cart slot
type CartStorage interface {
	// SaveCart replaces the persisted cart
	SaveCart(ctx context.Context, cart *models.PersistedCart) error

	// LoadCart returns the persisted cart
	// Returns ErrCartNotFound if nothing was saved yet
	LoadCart(ctx context.Context) (*models.PersistedCart, error)
}
