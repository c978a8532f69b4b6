// Package ledger owns the local cart: the authoritative, always-consistent
// list of line items presented to callers. Adds are applied optimistically
// and queued for the remote cart; removals and quantity changes of lines the
// remote already knows are applied only after the remote confirms them.
package ledger

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iudanet/cartsync/internal/client/storage"
	"github.com/iudanet/cartsync/internal/models"
	"github.com/iudanet/cartsync/pkg/api"
)

// ErrItemNotFound is returned when a line item id is not in the cart.
var ErrItemNotFound = errors.New("cart item not found")

// DetailResolver resolves product details for a canonical product id.
type DetailResolver interface {
	Resolve(ctx context.Context, productID string, provided *models.PartialDetails) (models.ProductDetails, error)
}

// Remote is the part of the remote cart the ledger calls synchronously.
type Remote interface {
	GetCart(ctx context.Context) ([]api.RemoteCartItem, error)
	UpdateItem(ctx context.Context, lineItemID string, req api.UpdateItemRequest) error
	RemoveItem(ctx context.Context, lineItemID string) error
}

// Clock abstracts time for line item ids, synthetic product ids and op scheduling.
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a function to Clock.
type ClockFunc func() time.Time

// Now returns f().
func (f ClockFunc) Now() time.Time { return f() }

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// Option configures a Ledger.
type Option func(*Ledger)

// WithClock overrides the wall clock.
func WithClock(c Clock) Option {
	return func(l *Ledger) {
		if c != nil {
			l.clock = c
		}
	}
}

// Ledger is the local cart store. It is safe for concurrent use: mutations
// are serialized by writeMu, readers take snapshots under mu.
type Ledger struct {
	cart     storage.CartStorage
	outbox   storage.OutboxStorage
	remote   Remote
	resolver DetailResolver
	clock    Clock
	logger   *slog.Logger

	subs    map[int]chan models.CartState
	pending chan struct{}
	state   models.CartState
	nextSub int
	loading int

	writeMu sync.Mutex
	mu      sync.RWMutex
	subMu   sync.Mutex
}

// New creates a Ledger with an empty cart. Call Load to rehydrate persisted state.
func New(cart storage.CartStorage, outbox storage.OutboxStorage, remote Remote, resolver DetailResolver, logger *slog.Logger, opts ...Option) *Ledger {
	if logger == nil {
		logger = slog.Default()
	}
	l := &Ledger{
		cart:     cart,
		outbox:   outbox,
		remote:   remote,
		resolver: resolver,
		clock:    systemClock{},
		logger:   logger,
		subs:     make(map[int]chan models.CartState),
		pending:  make(chan struct{}, 1),
		state:    models.CartState{Items: []models.CartItem{}},
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load rehydrates the persisted cart. The list is consolidated before it is
// exposed and written back when consolidation changed it.
func (l *Ledger) Load(ctx context.Context) error {
	l.writeMu.Lock()
	defer l.writeMu.Unlock()

	persisted, err := l.cart.LoadCart(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrCartNotFound) {
			l.logger.Debug("No persisted cart, starting empty")
			return nil
		}
		return fmt.Errorf("failed to load cart: %w", err)
	}

	items, repaired := sanitizeLoaded(persisted.Items)
	consolidated := models.Consolidate(items)
	changed := repaired || len(consolidated) != len(items)

	l.mu.Lock()
	l.state.Items = consolidated
	snapshot := l.state.Clone()
	l.notify(snapshot)
	l.mu.Unlock()

	if changed {
		l.logger.Info("Persisted cart consolidated", "before", len(persisted.Items), "after", len(consolidated))
		if err := l.cart.SaveCart(ctx, &models.PersistedCart{Items: snapshot.Items}); err != nil {
			return fmt.Errorf("failed to save consolidated cart: %w", err)
		}
	}

	return nil
}

// sanitizeLoaded drops lines without a product id and lifts quantities below one.
func sanitizeLoaded(items []models.CartItem) ([]models.CartItem, bool) {
	out := make([]models.CartItem, 0, len(items))
	repaired := false
	for _, item := range items {
		if item.ProductID == "" {
			repaired = true
			continue
		}
		if item.Quantity < 1 {
			item.Quantity = 1
			repaired = true
		}
		out = append(out, item.Clone())
	}
	return out, repaired
}

// Snapshot returns a copy of the current state.
func (l *Ledger) Snapshot() models.CartState {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.state.Clone()
}

// Items returns a copy of the current line items.
func (l *Ledger) Items() []models.CartItem {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return models.CloneItems(l.state.Items)
}

// GetCartTotal sums price x quantity over the current items.
func (l *Ledger) GetCartTotal() decimal.Decimal {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return models.Total(l.state.Items)
}

// GetCartItemsCount sums quantities over the current items.
func (l *Ledger) GetCartItemsCount() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return models.Count(l.state.Items)
}

// Subscribe registers for state-change notifications. The channel holds at
// most one state; a slow reader only sees the latest one. Call the returned
// function to unsubscribe.
func (l *Ledger) Subscribe() (<-chan models.CartState, func()) {
	l.subMu.Lock()
	defer l.subMu.Unlock()

	id := l.nextSub
	l.nextSub++
	ch := make(chan models.CartState, 1)
	l.subs[id] = ch

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			l.subMu.Lock()
			delete(l.subs, id)
			close(ch)
			l.subMu.Unlock()
		})
	}
}

// Pending is signalled whenever an operation is added to the outbox.
func (l *Ledger) Pending() <-chan struct{} {
	return l.pending
}

func (l *Ledger) signalPending() {
	select {
	case l.pending <- struct{}{}:
	default:
	}
}

// notify must be called with mu held so that subscribers see states in order.
func (l *Ledger) notify(state models.CartState) {
	l.subMu.Lock()
	defer l.subMu.Unlock()

	for _, ch := range l.subs {
		s := state.Clone()
		select {
		case ch <- s:
			continue
		default:
		}
		// заменяем устаревшее состояние свежим
		select {
		case <-ch:
		default:
		}
		select {
		case ch <- s:
		default:
		}
	}
}

// commit stores items, persists them and notifies subscribers.
// Must be called with writeMu held.
func (l *Ledger) commit(ctx context.Context, mutate func(*models.CartState)) models.CartState {
	l.mu.Lock()
	mutate(&l.state)
	l.state.Items = models.Consolidate(l.state.Items)
	snapshot := l.state.Clone()
	l.notify(snapshot)
	l.mu.Unlock()

	if err := l.cart.SaveCart(ctx, &models.PersistedCart{Items: snapshot.Items}); err != nil {
		l.logger.Error("Failed to persist cart", "error", err)
	}

	return snapshot
}

// update changes transient fields only: nothing is persisted.
func (l *Ledger) update(mutate func(*models.CartState)) {
	l.mu.Lock()
	mutate(&l.state)
	l.notify(l.state.Clone())
	l.mu.Unlock()
}

// SetError records an advisory sync error without touching items.
func (l *Ledger) SetError(msg string) {
	l.update(func(s *models.CartState) {
		s.Error = msg
	})
}

func (l *Ledger) beginLoading() {
	l.update(func(s *models.CartState) {
		l.loading++
		s.IsLoading = true
	})
}

// endLoading must be called with mu held.
func (l *Ledger) endLoading(s *models.CartState) {
	if l.loading > 0 {
		l.loading--
	}
	s.IsLoading = l.loading > 0
}

func findLine(items []models.CartItem, lineItemID string) int {
	for i := range items {
		if items[i].ID == lineItemID {
			return i
		}
	}
	return -1
}

func findProduct(items []models.CartItem, productID string) int {
	for i := range items {
		if items[i].ProductID == productID {
			return i
		}
	}
	return -1
}
