package ledger

import (
	"context"
	"fmt"
	"math"

	"github.com/iudanet/cartsync/internal/models"
	"github.com/iudanet/cartsync/internal/productid"
	"github.com/iudanet/cartsync/pkg/api"
)

// ClampQuantity turns an arbitrary requested quantity into a positive integer.
// Non-finite input becomes 1, everything else max(1, floor(q)).
func ClampQuantity(q float64) int {
	if math.IsNaN(q) || math.IsInf(q, 0) {
		return 1
	}
	f := math.Floor(q)
	if f < 1 {
		return 1
	}
	if f > math.MaxInt32 {
		return math.MaxInt32
	}
	return int(f)
}

// AddToCart adds quantity of the product identified by raw.
//
// The local cart changes immediately: an existing line for the same product
// is incremented, otherwise a new local line is appended. Numeric products
// are then queued for the remote cart. The only error comes from detail
// resolution, in which case nothing is mutated.
func (l *Ledger) AddToCart(ctx context.Context, raw any, quantity float64, provided *models.PartialDetails) (models.CartItem, error) {
	now := l.clock.Now()

	id := productid.Parse(raw)
	if id.IsEmpty() {
		id = productid.Synthetic(now)
		l.logger.Warn("Unusable product id, minted synthetic id", "raw", fmt.Sprint(raw), "product_id", id.String())
	}
	productID := id.String()
	qty := ClampQuantity(quantity)

	l.beginLoading()

	details, err := l.resolver.Resolve(ctx, productID, provided)
	if err != nil {
		l.update(func(s *models.CartState) {
			l.endLoading(s)
			s.Error = err.Error()
		})
		return models.CartItem{}, fmt.Errorf("failed to resolve product %s: %w", productID, err)
	}

	l.writeMu.Lock()
	defer l.writeMu.Unlock()

	var line models.CartItem
	snapshot := l.commit(ctx, func(s *models.CartState) {
		l.endLoading(s)
		s.Error = ""

		if i := findProduct(s.Items, productID); i >= 0 {
			s.Items[i].Quantity += qty
			// не затираем известные данные заглушкой
			if !details.IsFallbackFor(productID) || s.Items[i].IsFallbackFor(productID) {
				s.Items[i].ProductDetails = details.Clone()
			}
			line = s.Items[i].Clone()
			return
		}

		line = models.CartItem{
			ID:             models.NewLocalLineItemID(productID, now),
			ProductID:      productID,
			ProductDetails: details.Clone(),
			Quantity:       qty,
		}
		s.Items = append(s.Items, line.Clone())
	})

	l.logger.Info("Item added to cart",
		"product_id", productID,
		"line_item_id", line.ID,
		"quantity", qty,
		"items", len(snapshot.Items))

	l.enqueueAdd(ctx, id, qty, line.ID)
	return line, nil
}

// enqueueAdd queues an add for the remote cart. Only numeric ids are accepted
// remotely; opaque ids stay local.
func (l *Ledger) enqueueAdd(ctx context.Context, id productid.ID, qty int, lineItemID string) {
	numeric, ok := id.Numeric()
	if !ok {
		l.logger.Debug("Product id is not numeric, not pushed", "product_id", id.String())
		return
	}

	// строка без локального префикса уже известна сервису
	if !models.IsLocalLineItemID(lineItemID) {
		lineItemID = ""
	}

	op := models.NewAddItemOp(id.String(), numeric, qty, lineItemID, l.clock.Now())
	if err := l.outbox.Enqueue(ctx, op); err != nil {
		l.logger.Error("Failed to enqueue add", "product_id", id.String(), "error", err)
		return
	}
	l.signalPending()
}

// RemoveFromCart removes a line. Lines the remote knows are removed locally
// only after the remote delete succeeds. Lines that never reached the remote
// are removed locally once their queued adds are cancelled.
func (l *Ledger) RemoveFromCart(ctx context.Context, lineItemID string) error {
	l.writeMu.Lock()
	defer l.writeMu.Unlock()

	item, ok := l.lookup(lineItemID)
	if !ok {
		return fmt.Errorf("remove %s: %w", lineItemID, ErrItemNotFound)
	}

	if item.IsLocal() {
		if err := l.removeLocal(ctx, item); err != nil {
			return err
		}
	} else {
		if err := l.remote.RemoveItem(ctx, lineItemID); err != nil {
			l.logger.Warn("Remote remove failed, item kept", "line_item_id", lineItemID, "error", err)
			l.SetError(err.Error())
			return fmt.Errorf("failed to remove %s: %w", lineItemID, err)
		}
		// добавления поверх удалённой строки больше не нужны
		if _, err := l.outbox.CancelPending(ctx, item.ProductID); err != nil {
			l.logger.Error("Failed to cancel pending adds", "product_id", item.ProductID, "error", err)
		}
	}

	l.commit(ctx, func(s *models.CartState) {
		if i := findLine(s.Items, lineItemID); i >= 0 {
			s.Items = append(s.Items[:i], s.Items[i+1:]...)
		}
		s.Error = ""
	})

	l.logger.Info("Item removed from cart", "line_item_id", lineItemID, "product_id", item.ProductID)
	return nil
}

// UpdateQuantity sets the quantity of a line. Quantities below one are ignored.
// Lines the remote knows are updated locally only after the remote update
// succeeds; for local lines the queued adds are replaced by one add carrying
// the new quantity.
func (l *Ledger) UpdateQuantity(ctx context.Context, lineItemID string, quantity int) error {
	if quantity < 1 {
		return nil
	}

	l.writeMu.Lock()
	defer l.writeMu.Unlock()

	item, ok := l.lookup(lineItemID)
	if !ok {
		return fmt.Errorf("update %s: %w", lineItemID, ErrItemNotFound)
	}

	remoteID := ""
	if item.IsLocal() {
		var err error
		if remoteID, err = l.requeueLocal(ctx, item, quantity); err != nil {
			return err
		}
	} else {
		if err := l.remote.UpdateItem(ctx, lineItemID, api.UpdateItemRequest{Quantity: quantity}); err != nil {
			l.logger.Warn("Remote update failed, quantity kept", "line_item_id", lineItemID, "error", err)
			l.SetError(err.Error())
			return fmt.Errorf("failed to update %s: %w", lineItemID, err)
		}
		// новое количество уже включает добавления из outbox
		if _, err := l.outbox.CancelPending(ctx, item.ProductID); err != nil {
			l.logger.Error("Failed to cancel pending adds", "product_id", item.ProductID, "error", err)
		}
	}

	l.commit(ctx, func(s *models.CartState) {
		if i := findLine(s.Items, lineItemID); i >= 0 {
			s.Items[i].Quantity = quantity
			if remoteID != "" {
				s.Items[i].ID = remoteID
			}
		}
		s.Error = ""
	})

	l.logger.Info("Item quantity updated", "line_item_id", lineItemID, "quantity", quantity)
	return nil
}

// removeLocal drops the queued adds of a local line. When nothing was queued
// for a numeric product its add may already be in the remote cart under an
// id the ledger never learned; that remote line is deleted first.
func (l *Ledger) removeLocal(ctx context.Context, item models.CartItem) error {
	removed, err := l.outbox.CancelPending(ctx, item.ProductID)
	if err != nil {
		return fmt.Errorf("failed to cancel pending adds for %s: %w", item.ProductID, err)
	}
	if removed > 0 || !pushable(item.ProductID) {
		return nil
	}

	remoteID, found, err := l.remoteLine(ctx, item.ProductID)
	if err == nil && found {
		err = l.remote.RemoveItem(ctx, remoteID)
	}
	if err != nil {
		l.logger.Warn("Remote remove failed, item kept", "line_item_id", item.ID, "error", err)
		l.SetError(err.Error())
		return fmt.Errorf("failed to remove %s: %w", item.ID, err)
	}
	return nil
}

// requeueLocal replaces the queued adds of a local line with one add of the
// new quantity. A line whose add already reached the remote is updated there
// instead; its remote id is returned.
func (l *Ledger) requeueLocal(ctx context.Context, item models.CartItem, quantity int) (string, error) {
	removed, err := l.outbox.CancelPending(ctx, item.ProductID)
	if err != nil {
		return "", fmt.Errorf("failed to cancel pending adds for %s: %w", item.ProductID, err)
	}

	if removed == 0 && pushable(item.ProductID) {
		remoteID, found, err := l.remoteLine(ctx, item.ProductID)
		if err == nil && found {
			err = l.remote.UpdateItem(ctx, remoteID, api.UpdateItemRequest{Quantity: quantity})
		}
		if err != nil {
			l.logger.Warn("Remote update failed, quantity kept", "line_item_id", item.ID, "error", err)
			l.SetError(err.Error())
			return "", fmt.Errorf("failed to update %s: %w", item.ID, err)
		}
		if found {
			return remoteID, nil
		}
	}

	l.enqueueAdd(ctx, productid.FromString(item.ProductID), quantity, item.ID)
	return "", nil
}

func pushable(productID string) bool {
	_, ok := productid.FromString(productID).Numeric()
	return ok
}

// ClearCart empties the local cart, drops queued adds and queues a remote clear.
func (l *Ledger) ClearCart(ctx context.Context) error {
	l.writeMu.Lock()
	defer l.writeMu.Unlock()

	if _, err := l.outbox.CancelPending(ctx, ""); err != nil {
		return fmt.Errorf("failed to cancel pending adds: %w", err)
	}

	l.commit(ctx, func(s *models.CartState) {
		s.Items = []models.CartItem{}
		s.Error = ""
	})

	if err := l.outbox.Enqueue(ctx, models.NewClearCartOp(l.clock.Now())); err != nil {
		l.logger.Error("Failed to enqueue clear", "error", err)
	} else {
		l.signalPending()
	}

	l.logger.Info("Cart cleared")
	return nil
}

func (l *Ledger) lookup(lineItemID string) (models.CartItem, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if i := findLine(l.state.Items, lineItemID); i >= 0 {
		return l.state.Items[i].Clone(), true
	}
	return models.CartItem{}, false
}
