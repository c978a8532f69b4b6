package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/iudanet/cartsync/internal/client/iocli"
	"github.com/iudanet/cartsync/internal/client/sync"
	"github.com/iudanet/cartsync/internal/config"
	"github.com/iudanet/cartsync/internal/models"
	"github.com/shopspring/decimal"
)

//go:generate moq -out cart_mock.go . Cart

// Cart операции корзины, доступные из CLI
type Cart interface {
	AddToCart(ctx context.Context, raw any, quantity float64, provided *models.PartialDetails) (models.CartItem, error)
	RemoveFromCart(ctx context.Context, lineItemID string) error
	UpdateQuantity(ctx context.Context, lineItemID string, quantity int) error
	ClearCart(ctx context.Context) error
	Snapshot() models.CartState
	GetCartTotal() decimal.Decimal
	GetCartItemsCount() int
	Subscribe() (<-chan models.CartState, func())
}

// App is what a command needs once configuration is known.
type App struct {
	Cart  Cart
	Sync  sync.Service
	Close func() error
}

// Factory opens the local store and builds the cart and sync service.
type Factory func(ctx context.Context, cfg *config.Client) (*App, error)

// ErrAborted is returned when the user declines a confirmation prompt.
var ErrAborted = errors.New("aborted")

// Cli исполняет команды над корзиной
type Cli struct {
	io          iocli.IO
	cart        Cart
	syncService sync.Service
	format      string
}

func New(io iocli.IO, cart Cart, syncService sync.Service, format string) *Cli {
	return &Cli{
		io:          io,
		cart:        cart,
		syncService: syncService,
		format:      format,
	}
}

func (c *Cli) json() bool {
	return c.format == FormatJSON
}

// confirm asks a yes/no question; only "y" and "yes" count as yes.
func (c *Cli) confirm(prompt string) (bool, error) {
	answer, err := c.io.ReadInput(prompt + " [y/N]: ")
	if err != nil {
		return false, fmt.Errorf("failed to read answer: %w", err)
	}
	return answer == "y" || answer == "Y" || answer == "yes", nil
}
