package cli

import (
	"context"
	"errors"
	"testing"

	"github.com/iudanet/cartsync/internal/client/ledger"
	"github.com/iudanet/cartsync/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCli_runAdd_Text(t *testing.T) {
	ctx := context.Background()
	cart := &CartMock{
		AddToCartFunc: func(ctx context.Context, raw any, quantity float64, provided *models.PartialDetails) (models.CartItem, error) {
			return models.CartItem{
				ID:             "local-42-1",
				ProductID:      "42",
				ProductDetails: models.ProductDetails{Name: "Mug", Price: 12.5},
				Quantity:       2,
			}, nil
		},
	}
	c, out := newTestCli(FormatText, "", cart, nil)

	require.NoError(t, c.runAdd(ctx, "42", 2, nil))
	assert.Equal(t, "Added Mug x2 (line local-42-1)\n", out.String())

	calls := cart.AddToCartCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, "42", calls[0].Raw)
	assert.Equal(t, 2.0, calls[0].Quantity)
	assert.Nil(t, calls[0].Provided)
}

func TestCli_runAdd_JSON(t *testing.T) {
	cart := &CartMock{
		AddToCartFunc: func(ctx context.Context, raw any, quantity float64, provided *models.PartialDetails) (models.CartItem, error) {
			return models.CartItem{ID: "local-7-1", ProductID: "7", ProductDetails: models.Fallback("7"), Quantity: 1}, nil
		},
	}
	c, out := newTestCli(FormatJSON, "", cart, nil)

	require.NoError(t, c.runAdd(context.Background(), "7", 1, nil))
	assert.JSONEq(t, `{"id":"local-7-1","productId":"7","name":"Product 7","image":"","description":"","price":0,"quantity":1}`, out.String())
}

func TestCli_runAdd_Error(t *testing.T) {
	cart := &CartMock{
		AddToCartFunc: func(ctx context.Context, raw any, quantity float64, provided *models.PartialDetails) (models.CartItem, error) {
			return models.CartItem{}, context.Canceled
		},
	}
	c, out := newTestCli(FormatText, "", cart, nil)

	err := c.runAdd(context.Background(), "42", 1, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Contains(t, err.Error(), "failed to add 42")
	assert.Empty(t, out.String())
}

func TestCli_runRemove(t *testing.T) {
	cart := &CartMock{
		RemoveFromCartFunc: func(ctx context.Context, lineItemID string) error {
			if lineItemID == "missing" {
				return ledger.ErrItemNotFound
			}
			return nil
		},
	}
	c, out := newTestCli(FormatText, "", cart, nil)

	require.NoError(t, c.runRemove(context.Background(), "101"))
	assert.Equal(t, "Removed 101\n", out.String())

	err := c.runRemove(context.Background(), "missing")
	assert.ErrorIs(t, err, ledger.ErrItemNotFound)
}

func TestCli_runUpdate(t *testing.T) {
	cart := &CartMock{
		UpdateQuantityFunc: func(ctx context.Context, lineItemID string, quantity int) error {
			return nil
		},
	}
	c, out := newTestCli(FormatJSON, "", cart, nil)

	require.NoError(t, c.runUpdate(context.Background(), "101", 5))
	assert.JSONEq(t, `{"updated":"101","quantity":5}`, out.String())

	err := c.runUpdate(context.Background(), "101", 0)
	require.Error(t, err)
	assert.Len(t, cart.UpdateQuantityCalls(), 1, "quantity below one never reaches the cart")
}

func TestCli_runTotal(t *testing.T) {
	cart := &CartMock{
		GetCartItemsCountFunc: func() int { return 3 },
		GetCartTotalFunc:      func() decimal.Decimal { return decimal.RequireFromString("55.5") },
	}

	c, out := newTestCli(FormatText, "", cart, nil)
	require.NoError(t, c.runTotal())
	assert.Equal(t, "Items: 3\nTotal: 55.50\n", out.String())

	c, out = newTestCli(FormatJSON, "", cart, nil)
	require.NoError(t, c.runTotal())
	assert.JSONEq(t, `{"count":3,"total":"55.50"}`, out.String())
}

func TestCli_runClear(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		yes       bool
		wantErr   error
		wantClear bool
	}{
		{name: "confirmed", input: "y\n", wantClear: true},
		{name: "confirmed long", input: "yes\n", wantClear: true},
		{name: "declined", input: "n\n", wantErr: ErrAborted},
		{name: "empty answer", input: "\n", wantErr: ErrAborted},
		{name: "skip prompt", yes: true, wantClear: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cart := &CartMock{
				GetCartItemsCountFunc: func() int { return 2 },
				ClearCartFunc:         func(ctx context.Context) error { return nil },
			}
			c, out := newTestCli(FormatText, tt.input, cart, nil)

			err := c.runClear(context.Background(), tt.yes)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}

			if tt.wantClear {
				assert.Len(t, cart.ClearCartCalls(), 1)
				assert.Contains(t, out.String(), "Cart cleared.")
			} else {
				assert.Empty(t, cart.ClearCartCalls())
			}
			if !tt.yes {
				assert.Contains(t, out.String(), "Remove all 2 item(s) from the cart? [y/N]: ")
			}
		})
	}
}

func TestCli_runClear_ReadError(t *testing.T) {
	cart := &CartMock{
		GetCartItemsCountFunc: func() int { return 1 },
	}
	c, _ := newTestCli(FormatText, "", cart, nil)

	err := c.runClear(context.Background(), false)
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrAborted))
	assert.Empty(t, cart.ClearCartCalls())
}
