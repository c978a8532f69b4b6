package ledger

import (
	"context"
	"fmt"

	"github.com/iudanet/cartsync/internal/models"
	"github.com/iudanet/cartsync/internal/productid"
)

// ApplyRemote replaces the cart with a non-empty remote snapshot.
// Local lines for which keepLocal returns true (adds still waiting in the
// outbox) survive the replacement and are consolidated behind the remote
// lines. An empty snapshot, or any snapshot while a cart clear is still
// queued, leaves the cart untouched and reports false.
func (l *Ledger) ApplyRemote(ctx context.Context, remote []models.CartItem, keepLocal func(models.CartItem) bool) bool {
	if len(remote) == 0 {
		return false
	}

	l.writeMu.Lock()
	defer l.writeMu.Unlock()

	if l.clearQueued(ctx) {
		l.logger.Info("Cart clear queued, remote cart not applied", "remote_items", len(remote))
		return false
	}

	kept := 0
	snapshot := l.commit(ctx, func(s *models.CartState) {
		items := models.CloneItems(remote)
		for _, item := range s.Items {
			if item.IsLocal() && keepLocal != nil && keepLocal(item) {
				items = append(items, item.Clone())
				kept++
			}
		}
		s.Items = items
		s.Error = ""
	})

	l.logger.Info("Remote cart applied",
		"remote_items", len(remote),
		"kept_local", kept,
		"items", len(snapshot.Items))
	return true
}

// AdoptLineItemID renames a local line to the id the remote assigned to it.
// It reports whether a line was renamed.
func (l *Ledger) AdoptLineItemID(ctx context.Context, localID, remoteID string) bool {
	if localID == "" || remoteID == "" || localID == remoteID {
		return false
	}

	l.writeMu.Lock()
	defer l.writeMu.Unlock()

	if _, ok := l.lookup(localID); !ok {
		return false
	}

	l.commit(ctx, func(s *models.CartState) {
		if i := findLine(s.Items, localID); i >= 0 {
			s.Items[i].ID = remoteID
		}
	})

	l.logger.Debug("Line item id adopted", "local_id", localID, "remote_id", remoteID)
	return true
}

// LearnLineItemID looks up the remote line of productID and adopts its id for
// the local line. Used when an add was acknowledged without a line id.
func (l *Ledger) LearnLineItemID(ctx context.Context, localID, productID string) bool {
	remoteID, found, err := l.remoteLine(ctx, productID)
	if err != nil {
		l.logger.Warn("Failed to look up remote line", "product_id", productID, "error", err)
		return false
	}
	if !found {
		return false
	}
	return l.AdoptLineItemID(ctx, localID, remoteID)
}

// remoteLine finds the remote line holding productID.
func (l *Ledger) remoteLine(ctx context.Context, productID string) (string, bool, error) {
	remote, err := l.remote.GetCart(ctx)
	if err != nil {
		return "", false, fmt.Errorf("failed to fetch remote cart: %w", err)
	}
	for _, ri := range remote {
		if ri.ID.IsZero() {
			continue
		}
		if productid.Parse(ri.ProductID.Value()).String() == productID {
			return ri.ID.String(), true, nil
		}
	}
	return "", false, nil
}

// clearQueued reports whether a cart clear waits in the outbox. An unreadable
// outbox counts as queued.
func (l *Ledger) clearQueued(ctx context.Context) bool {
	ops, err := l.outbox.List(ctx)
	if err != nil {
		l.logger.Error("Failed to list outbox", "error", err)
		return true
	}
	for _, op := range ops {
		if op.Kind == models.OpClearCart && op.Status == models.OpStatusPending {
			return true
		}
	}
	return false
}
