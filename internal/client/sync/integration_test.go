package sync

import (
	"context"
	"io"
	"log/slog"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpClient "github.com/iudanet/cartsync/internal/client/api"
	"github.com/iudanet/cartsync/internal/client/ledger"
	"github.com/iudanet/cartsync/internal/client/resolver"
	"github.com/iudanet/cartsync/internal/client/storage/boltdb"
	"github.com/iudanet/cartsync/internal/server/handlers"
	"github.com/iudanet/cartsync/internal/server/middleware"
	"github.com/iudanet/cartsync/internal/server/storage/sqlite"
	"github.com/iudanet/cartsync/pkg/api"
)

type e2e struct {
	svc    *service
	ledger *ledger.Ledger
	server *sqlite.Storage
	token  string
}

// newE2E поднимает dev-сервер на httptest и полный клиентский стек
func newE2E(t *testing.T) *e2e {
	t.Helper()
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	serverStore, err := sqlite.New(ctx, filepath.Join(t.TempDir(), "server.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = serverStore.Close() })

	numeric := int64(42)
	require.NoError(t, serverStore.UpsertProduct(ctx, &api.Product{
		ID:        "0b8e6f1c-7d2a-4c55-9f10-5a1e3c9d2b71",
		NumericID: &numeric,
		Name:      "Mug",
		Price:     12.5,
		Images:    []string{"https://img.test/mug.png"},
		Image:     "https://img.test/mug.png",
	}))
	lamp := int64(7)
	require.NoError(t, serverStore.UpsertProduct(ctx, &api.Product{
		ID:        "7",
		NumericID: &lamp,
		Name:      "Desk lamp",
		Price:     30,
	}))

	router := handlers.NewRouter(logger, serverStore, "test")
	srv := httptest.NewServer(middleware.Chain(router, middleware.Recovery(logger)))
	t.Cleanup(srv.Close)

	clientStore, err := boltdb.New(ctx, filepath.Join(t.TempDir(), "cart.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = clientStore.Close() })

	const token = "e2e"
	client := httpClient.NewClient(srv.URL, httpClient.WithCartToken(token), httpClient.WithTimeout(5*time.Second))
	res := resolver.New(client, logger)
	l := ledger.New(clientStore, clientStore, client, res, logger)
	require.NoError(t, l.Load(ctx))

	svc := newService(client, l, res, clientStore, clientStore, logger, Config{
		BaseBackoff:     time.Millisecond,
		MaxBackoff:      8 * time.Millisecond,
		MaxAttempts:     4,
		InFlightRetries: 1,
		Interval:        time.Hour,
	})

	return &e2e{svc: svc, ledger: l, server: serverStore, token: token}
}

func (e *e2e) remoteLines(t *testing.T) int {
	t.Helper()
	lines, err := e.server.ListItems(context.Background(), e.token)
	require.NoError(t, err)
	return len(lines)
}

func TestEndToEnd_AddSyncUpdateRemove(t *testing.T) {
	e := newE2E(t)
	ctx := context.Background()

	item, err := e.ledger.AddToCart(ctx, 42, 2, nil)
	require.NoError(t, err)
	assert.True(t, item.IsLocal())
	assert.Equal(t, "Mug", item.Name)
	assert.InDelta(t, 12.5, item.Price, 0.0001)

	result, err := e.svc.Sync(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Flush.Delivered)
	assert.True(t, result.Pull.Applied)
	assert.Equal(t, 1, result.Pull.RemoteItems)
	assert.Equal(t, 1, e.remoteLines(t))

	items := e.ledger.Items()
	require.Len(t, items, 1)
	lineID := items[0].ID
	assert.False(t, strings.HasPrefix(lineID, "local-"), "server line id adopted")
	assert.Equal(t, "42", items[0].ProductID)
	assert.Equal(t, "Mug", items[0].Name)
	assert.Equal(t, 2, items[0].Quantity)
	assert.Equal(t, "https://img.test/mug.png", items[0].Image)

	require.NoError(t, e.ledger.UpdateQuantity(ctx, lineID, 5))
	lines, err := e.server.ListItems(ctx, e.token)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, 5, lines[0].Quantity)
	assert.Equal(t, 5, e.ledger.GetCartItemsCount())

	require.NoError(t, e.ledger.RemoveFromCart(ctx, lineID))
	assert.Empty(t, e.ledger.Items())
	assert.Zero(t, e.remoteLines(t))
}

func TestEndToEnd_ClearCancelsQueuedAdds(t *testing.T) {
	e := newE2E(t)
	ctx := context.Background()

	_, err := e.ledger.AddToCart(ctx, 42, 1, nil)
	require.NoError(t, err)
	_, err = e.svc.Flush(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, e.remoteLines(t))

	_, err = e.ledger.AddToCart(ctx, "7", 3, nil)
	require.NoError(t, err)
	require.NoError(t, e.ledger.ClearCart(ctx))

	status, err := e.svc.Status(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, status.Pending, "only the clear stays queued")

	result, err := e.svc.Sync(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Flush.Delivered)
	assert.False(t, result.Pull.Applied, "empty remote keeps local state")
	assert.Zero(t, e.remoteLines(t))
	assert.Empty(t, e.ledger.Items())

	status, err = e.svc.Status(ctx)
	require.NoError(t, err)
	assert.Zero(t, status.Pending)
	assert.False(t, status.LastPull.IsZero())
}

func TestEndToEnd_UnknownProductGoesDead(t *testing.T) {
	e := newE2E(t)
	ctx := context.Background()

	item, err := e.ledger.AddToCart(ctx, 999, 1, nil)
	require.NoError(t, err)
	assert.Equal(t, "Product 999", item.Name)

	flush, err := e.svc.Flush(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, flush.Dead)
	assert.Zero(t, e.remoteLines(t))
}
