package storage

import (
	"context"
	"time"

	"github.com/iudanet/cartsync/pkg/api"
)

// CartLine строка корзины вместе с товаром
type CartLine struct {
	CreatedAt time.Time
	UpdatedAt time.Time
	ID        string
	CartToken string
	Product   api.Product
	Quantity  int
}

// ProductStorage defines interface for the product catalog
type ProductStorage interface {
	// UpsertProduct creates or replaces a product by its id
	UpsertProduct(ctx context.Context, p *api.Product) error

	// GetProduct finds a product by its id or, for canonical decimal input,
	// by its numeric id. Returns ErrProductNotFound if nothing matches.
	GetProduct(ctx context.Context, id string) (*api.Product, error)

	// CountProducts returns the catalog size
	CountProducts(ctx context.Context) (int, error)
}

// CartStorage defines interface for carts keyed by cart token
type CartStorage interface {
	// ListItems returns lines of a cart in insertion order.
	// Returns empty slice for an unknown token.
	ListItems(ctx context.Context, cartToken string) ([]*CartLine, error)

	// AddItem adds quantity of a product. A product already in the cart
	// gets its quantity increased instead of a second line.
	AddItem(ctx context.Context, cartToken string, productID int64, quantity int) (*CartLine, error)

	// UpdateItem sets the quantity of a line.
	// Returns ErrItemNotFound if the line is not in this cart.
	UpdateItem(ctx context.Context, cartToken, lineID string, quantity int) (*CartLine, error)

	// RemoveItem deletes a line.
	// Returns ErrItemNotFound if the line is not in this cart.
	RemoveItem(ctx context.Context, cartToken, lineID string) error

	// ClearCart deletes every line and returns how many were removed
	ClearCart(ctx context.Context, cartToken string) (int, error)
}
