package cli

import (
	"context"
	"fmt"

	"github.com/iudanet/cartsync/internal/models"
)

func (c *Cli) runAdd(ctx context.Context, productID string, quantity float64, provided *models.PartialDetails) error {
	item, err := c.cart.AddToCart(ctx, productID, quantity, provided)
	if err != nil {
		return fmt.Errorf("failed to add %s: %w", productID, err)
	}
	if c.json() {
		return c.writeJSON(item)
	}
	c.io.Printf("Added %s x%d (line %s)\n", item.Name, item.Quantity, item.ID)
	return nil
}

func (c *Cli) runRemove(ctx context.Context, lineItemID string) error {
	if err := c.cart.RemoveFromCart(ctx, lineItemID); err != nil {
		return err
	}
	if c.json() {
		return c.writeJSON(map[string]string{"removed": lineItemID})
	}
	c.io.Printf("Removed %s\n", lineItemID)
	return nil
}

func (c *Cli) runUpdate(ctx context.Context, lineItemID string, quantity int) error {
	if quantity < 1 {
		return fmt.Errorf("quantity must be at least 1, got %d", quantity)
	}
	if err := c.cart.UpdateQuantity(ctx, lineItemID, quantity); err != nil {
		return err
	}
	if c.json() {
		return c.writeJSON(map[string]any{"updated": lineItemID, "quantity": quantity})
	}
	c.io.Printf("Updated %s to x%d\n", lineItemID, quantity)
	return nil
}

func (c *Cli) runList() error {
	return c.render("cart", newCartView(c.cart.Snapshot()))
}

func (c *Cli) runTotal() error {
	return c.render("total", totalView{
		Count: c.cart.GetCartItemsCount(),
		Total: c.cart.GetCartTotal().StringFixed(2),
	})
}

func (c *Cli) runClear(ctx context.Context, yes bool) error {
	if !yes {
		ok, err := c.confirm(fmt.Sprintf("Remove all %d item(s) from the cart?", c.cart.GetCartItemsCount()))
		if err != nil {
			return err
		}
		if !ok {
			return ErrAborted
		}
	}
	if err := c.cart.ClearCart(ctx); err != nil {
		return fmt.Errorf("failed to clear cart: %w", err)
	}
	if c.json() {
		return c.writeJSON(map[string]bool{"cleared": true})
	}
	c.io.Println("Cart cleared.")
	return nil
}
