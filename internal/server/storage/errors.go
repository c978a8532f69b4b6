package storage

import "errors"

// Common storage errors
var (
	// ErrProductNotFound indicates that product was not found in the catalog
	ErrProductNotFound = errors.New("product not found")

	// ErrItemNotFound indicates that the line item does not exist in the cart
	ErrItemNotFound = errors.New("cart item not found")

	// ErrInvalidQuantity indicates a quantity below one
	ErrInvalidQuantity = errors.New("quantity must be at least 1")
)
