package sync

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	httpClient "github.com/iudanet/cartsync/internal/client/api"
	"github.com/iudanet/cartsync/internal/client/ledger"
	"github.com/iudanet/cartsync/internal/client/storage"
	"github.com/iudanet/cartsync/internal/models"
	"github.com/iudanet/cartsync/internal/productid"
	"github.com/iudanet/cartsync/pkg/api"
)

//go:generate moq -out service_mock.go . Service

// Service определяет интерфейс для sync.Service
type Service interface {
	// Pull загружает удалённую корзину и заменяет ею локальную, если она не пуста
	Pull(ctx context.Context) (*PullResult, error)

	// Flush отправляет готовые операции из outbox по порядку
	Flush(ctx context.Context) (*FlushResult, error)

	// Sync выполняет Flush, затем Pull
	Sync(ctx context.Context) (*SyncResult, error)

	// Run синхронизирует в фоне до отмены контекста
	Run(ctx context.Context) error

	// Status возвращает состояние outbox и время последнего pull
	Status(ctx context.Context) (*Status, error)
}

// Ledger is the part of the cart ledger the reconciler drives.
type Ledger interface {
	ApplyRemote(ctx context.Context, remote []models.CartItem, keepLocal func(models.CartItem) bool) bool
	AdoptLineItemID(ctx context.Context, localID, remoteID string) bool
	LearnLineItemID(ctx context.Context, localID, productID string) bool
	SetError(msg string)
	Pending() <-chan struct{}
}

// Config настраивает расписание и повторы
type Config struct {
	Clock              ledger.Clock
	Interval           time.Duration // период фоновой синхронизации
	BaseBackoff        time.Duration // первая пауза между попытками
	MaxBackoff         time.Duration // потолок паузы
	MaxAttempts        int           // после стольких попыток операция считается мёртвой
	InFlightRetries    int           // повторы внутри одного Flush
	ResolveParallelism int           // одновременные запросы товаров при Pull
	BatchSize          int           // операций за один Flush
}

// DefaultConfig returns the production defaults.
func DefaultConfig() Config {
	return Config{
		Interval:           30 * time.Second,
		BaseBackoff:        500 * time.Millisecond,
		MaxBackoff:         5 * time.Minute,
		MaxAttempts:        8,
		InFlightRetries:    2,
		ResolveParallelism: 4,
		BatchSize:          50,
	}
}

func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.Interval <= 0 {
		c.Interval = d.Interval
	}
	if c.BaseBackoff <= 0 {
		c.BaseBackoff = d.BaseBackoff
	}
	if c.MaxBackoff <= 0 {
		c.MaxBackoff = d.MaxBackoff
	}
	if c.MaxAttempts <= 0 {
		c.MaxAttempts = d.MaxAttempts
	}
	if c.InFlightRetries < 0 {
		c.InFlightRetries = 0
	}
	if c.ResolveParallelism <= 0 {
		c.ResolveParallelism = d.ResolveParallelism
	}
	if c.BatchSize <= 0 {
		c.BatchSize = d.BatchSize
	}
	if c.Clock == nil {
		c.Clock = ledger.ClockFunc(time.Now)
	}
	return c
}

// errUnknownOp marks an op this client cannot replay
var errUnknownOp = errors.New("unknown outbox operation")

// service reconciles the local ledger with the remote cart
type service struct {
	apiClient       httpClient.ClientAPI
	ledger          Ledger
	resolver        ledger.DetailResolver
	outbox          storage.OutboxStorage
	metadataStorage storage.MetadataStorage
	logger          *slog.Logger
	cfg             Config
}

// NewService creates a new sync service
func NewService(
	apiClient httpClient.ClientAPI,
	cart Ledger,
	resolver ledger.DetailResolver,
	outbox storage.OutboxStorage,
	metadataStorage storage.MetadataStorage,
	logger *slog.Logger,
	cfg Config,
) Service {
	return newService(apiClient, cart, resolver, outbox, metadataStorage, logger, cfg)
}

func newService(
	apiClient httpClient.ClientAPI,
	cart Ledger,
	resolver ledger.DetailResolver,
	outbox storage.OutboxStorage,
	metadataStorage storage.MetadataStorage,
	logger *slog.Logger,
	cfg Config,
) *service {
	if logger == nil {
		logger = slog.Default()
	}
	return &service{
		apiClient:       apiClient,
		ledger:          cart,
		resolver:        resolver,
		outbox:          outbox,
		metadataStorage: metadataStorage,
		logger:          logger,
		cfg:             cfg.withDefaults(),
	}
}

// PullResult contains pull results
type PullResult struct {
	RemoteItems  int  // строк в удалённой корзине
	Skipped      int  // строк без пригодного productId
	KeptLocal    int  // локальных строк, ожидающих отправки
	Applied      bool // локальная корзина заменена
	ClearPending bool // снимок отброшен: очистка корзины ещё не доставлена
}

// FlushResult contains flush results
type FlushResult struct {
	Delivered int // доставлено и удалено из outbox
	Dead      int // помечено мёртвыми
	Deferred  int // отложено до следующей попытки
}

// SyncResult contains sync results
type SyncResult struct {
	Flush *FlushResult
	Pull  *PullResult
}

// Status описывает состояние синхронизации
type Status struct {
	LastPull time.Time
	Ops      []*models.OutboxOp
	Pending  int
	Dead     int
}

// Pull fetches the remote cart. A non-empty snapshot replaces local items
// (lines with adds still in the outbox are kept); an empty snapshot or a
// failed request leaves local items untouched.
func (s *service) Pull(ctx context.Context) (*PullResult, error) {
	s.logger.Debug("Pulling remote cart")

	remote, err := s.apiClient.GetCart(ctx)
	if err != nil {
		s.ledger.SetError(fmt.Sprintf("couldn't sync with server: %v", err))
		return nil, fmt.Errorf("failed to pull cart: %w", err)
	}

	result := &PullResult{RemoteItems: len(remote)}
	if len(remote) == 0 {
		s.logger.Info("Remote cart is empty, local cart kept")
		s.savePullTime(ctx)
		return result, nil
	}

	pending, clearQueued, err := s.pendingOps(ctx)
	if err != nil {
		return nil, err
	}
	if clearQueued {
		// снимок предшествует очистке, которую сервис ещё не получил
		s.logger.Info("Cart clear not delivered yet, remote cart ignored", "remote_items", len(remote))
		result.ClearPending = true
		return result, nil
	}

	items, err := s.toCartItems(ctx, remote)
	if err != nil {
		return nil, err
	}
	result.Skipped = len(remote) - len(items)

	result.Applied = s.ledger.ApplyRemote(ctx, items, func(item models.CartItem) bool {
		if pending[item.ProductID] {
			result.KeptLocal++
			return true
		}
		return false
	})

	s.logger.Info("Pull completed",
		"remote_items", result.RemoteItems,
		"skipped", result.Skipped,
		"kept_local", result.KeptLocal,
		"applied", result.Applied)

	s.savePullTime(ctx)
	return result, nil
}

// toCartItems resolves details of every remote line with bounded parallelism.
func (s *service) toCartItems(ctx context.Context, remote []api.RemoteCartItem) ([]models.CartItem, error) {
	slots := make([]*models.CartItem, len(remote))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.cfg.ResolveParallelism)

	for i, ri := range remote {
		g.Go(func() error {
			item, ok, err := s.toCartItem(gctx, ri)
			if err != nil {
				return err
			}
			if ok {
				slots[i] = &item
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to resolve remote items: %w", err)
	}

	items := make([]models.CartItem, 0, len(slots))
	for _, item := range slots {
		if item != nil {
			items = append(items, *item)
		}
	}
	return models.Consolidate(items), nil
}

func (s *service) toCartItem(ctx context.Context, ri api.RemoteCartItem) (models.CartItem, bool, error) {
	id := productid.Parse(ri.ProductID.Value())
	if id.IsEmpty() && ri.Product != nil {
		id = productid.Parse(ri.Product["id"])
	}
	if id.IsEmpty() {
		s.logger.Warn("Remote line without product id skipped", "line_item_id", ri.ID.String())
		return models.CartItem{}, false, nil
	}
	productID := id.String()

	details, err := s.resolver.Resolve(ctx, productID, models.PartialFromMap(ri.Product))
	if err != nil {
		return models.CartItem{}, false, err
	}

	lineID := ri.ID.String()
	if lineID == "" {
		lineID = productID
	}

	return models.CartItem{
		ID:             lineID,
		ProductID:      productID,
		ProductDetails: details,
		Quantity:       max(1, ri.Quantity),
	}, true, nil
}

// pendingOps returns products with add ops not yet delivered and whether a
// cart clear is still waiting in the outbox.
func (s *service) pendingOps(ctx context.Context) (map[string]bool, bool, error) {
	ops, err := s.outbox.List(ctx)
	if err != nil {
		return nil, false, fmt.Errorf("failed to list outbox: %w", err)
	}

	pending := make(map[string]bool)
	clearQueued := false
	for _, op := range ops {
		if op.Status != models.OpStatusPending {
			continue
		}
		switch op.Kind {
		case models.OpAddItem:
			pending[op.ProductID] = true
		case models.OpClearCart:
			clearQueued = true
		}
	}
	return pending, clearQueued, nil
}

func (s *service) savePullTime(ctx context.Context) {
	if err := s.metadataStorage.SaveLastPull(ctx, s.cfg.Clock.Now()); err != nil {
		s.logger.Warn("Failed to save last pull time", "error", err)
	}
}

// Sync performs Flush then Pull.
func (s *service) Sync(ctx context.Context) (*SyncResult, error) {
	s.logger.Info("Starting synchronization")

	flush, err := s.Flush(ctx)
	if err != nil {
		return &SyncResult{Flush: flush}, err
	}

	pull, err := s.Pull(ctx)
	if err != nil {
		return &SyncResult{Flush: flush, Pull: pull}, err
	}

	return &SyncResult{Flush: flush, Pull: pull}, nil
}

// Status reports outbox counts and the last pull time.
func (s *service) Status(ctx context.Context) (*Status, error) {
	ops, err := s.outbox.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list outbox: %w", err)
	}

	st := &Status{Ops: ops}
	st.Pending, st.Dead, err = s.outbox.Counts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count outbox: %w", err)
	}

	st.LastPull, err = s.metadataStorage.GetLastPull(ctx)
	if err != nil {
		s.logger.Warn("Failed to get last pull time", "error", err)
	}

	return st, nil
}

// Run flushes whenever the ledger queues an operation and performs a full
// sync on every tick. Each round starts with a connectivity check; nothing is
// sent while the service is unreachable. Returns nil when ctx is cancelled.
func (s *service) Run(ctx context.Context) error {
	ticker := time.NewTicker(s.cfg.Interval)
	defer ticker.Stop()

	s.logger.Info("Background sync started", "interval", s.cfg.Interval)
	s.round(ctx, true)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("Background sync stopped")
			return nil
		case <-ticker.C:
			s.round(ctx, true)
		case <-s.ledger.Pending():
			s.round(ctx, false)
		}
	}
}

func (s *service) round(ctx context.Context, pull bool) {
	if err := s.apiClient.Health(ctx); err != nil {
		s.logger.Debug("Remote cart unreachable, round skipped", "error", err)
		return
	}

	if _, err := s.Flush(ctx); err != nil {
		s.logger.Warn("Flush failed", "error", err)
		return
	}

	if pull {
		if _, err := s.Pull(ctx); err != nil {
			s.logger.Warn("Pull failed", "error", err)
		}
	}
}
