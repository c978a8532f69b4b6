package cli

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/iudanet/cartsync/internal/client/sync"
	"github.com/iudanet/cartsync/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCli_runSync_Success(t *testing.T) {
	svc := &sync.ServiceMock{
		SyncFunc: func(ctx context.Context) (*sync.SyncResult, error) {
			return &sync.SyncResult{
				Flush: &sync.FlushResult{Delivered: 2, Deferred: 1},
				Pull:  &sync.PullResult{RemoteItems: 3, KeptLocal: 1, Applied: true},
			}, nil
		},
	}
	c, out := newTestCli(FormatText, "", nil, svc)

	require.NoError(t, c.runSync(context.Background()))
	assert.Equal(t, "Synchronizing with server...\n"+
		"=== Sync Report ===\n"+
		"Delivered: 2\n"+
		"Deferred:  1\n"+
		"Dead:      0\n"+
		"Remote items: 3\n"+
		"Skipped:      0\n"+
		"Kept local:   1\n"+
		"Local cart replaced with remote cart.\n", out.String())
}

func TestCli_runSync_PartialFailure(t *testing.T) {
	svc := &sync.ServiceMock{
		SyncFunc: func(ctx context.Context) (*sync.SyncResult, error) {
			return &sync.SyncResult{Flush: &sync.FlushResult{Delivered: 1}}, errors.New("connection refused")
		},
	}
	c, out := newTestCli(FormatJSON, "", nil, svc)

	err := c.runSync(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sync failed: connection refused")
	assert.JSONEq(t, `{"flush":{"delivered":1,"dead":0,"deferred":0}}`, out.String())
}

func TestCli_runPull(t *testing.T) {
	svc := &sync.ServiceMock{
		PullFunc: func(ctx context.Context) (*sync.PullResult, error) {
			return &sync.PullResult{}, nil
		},
	}
	c, out := newTestCli(FormatText, "", nil, svc)

	require.NoError(t, c.runPull(context.Background()))
	assert.Contains(t, out.String(), "Local cart unchanged.\n")
	assert.NotContains(t, out.String(), "Delivered")

	svc.PullFunc = func(ctx context.Context) (*sync.PullResult, error) {
		return nil, errors.New("server error (500): boom")
	}
	err := c.runPull(context.Background())
	assert.ErrorContains(t, err, "pull failed")
}

func TestCli_runStatus_Text(t *testing.T) {
	svc := &sync.ServiceMock{
		StatusFunc: func(ctx context.Context) (*sync.Status, error) {
			return &sync.Status{
				LastPull: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
				Pending:  2,
				Dead:     1,
				Ops: []*models.OutboxOp{
					{Seq: 1, Kind: models.OpAddItem, Status: models.OpStatusPending, ProductID: "42", Quantity: 2},
					{Seq: 2, Kind: models.OpClearCart, Status: models.OpStatusPending, Attempts: 1, LastError: "server error (503): busy"},
					{Seq: 3, Kind: models.OpAddItem, Status: models.OpStatusDead, ProductID: "9", Quantity: 1, Attempts: 8, LastError: "server error (400): unknown product"},
				},
			}, nil
		},
	}
	c, out := newTestCli(FormatText, "", nil, svc)

	require.NoError(t, c.runStatus(context.Background()))
	newGoldie(t).Assert(t, "status_text", out.Bytes())
}

func TestCli_runStatus_Empty(t *testing.T) {
	svc := &sync.ServiceMock{
		StatusFunc: func(ctx context.Context) (*sync.Status, error) {
			return &sync.Status{}, nil
		},
	}

	c, out := newTestCli(FormatText, "", nil, svc)
	require.NoError(t, c.runStatus(context.Background()))
	assert.Contains(t, out.String(), "Last pull: never\n")
	assert.Contains(t, out.String(), "All changes synchronized with server.\n")

	c, out = newTestCli(FormatJSON, "", nil, svc)
	require.NoError(t, c.runStatus(context.Background()))
	assert.JSONEq(t, `{"ops":[],"pending":0,"dead":0}`, out.String())
}

func TestCli_runWatch(t *testing.T) {
	states := make(chan models.CartState, 1)
	unsubscribed := make(chan struct{})
	cart := &CartMock{
		SnapshotFunc: func() models.CartState { return models.CartState{} },
		SubscribeFunc: func() (<-chan models.CartState, func()) {
			return states, func() { close(unsubscribed) }
		},
	}
	svc := &sync.ServiceMock{
		RunFunc: func(ctx context.Context) error {
			<-ctx.Done()
			return nil
		},
	}
	c, out := newTestCli(FormatText, "", cart, svc)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- c.runWatch(ctx) }()

	states <- models.CartState{Items: sampleItems()[:1]}
	require.Eventually(t, func() bool {
		// запись в буфер идёт из горутины runWatch
		select {
		case states <- models.CartState{Items: sampleItems()[:1]}:
			return true
		default:
			return false
		}
	}, time.Second, 5*time.Millisecond)
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("watch did not stop after cancel")
	}
	<-unsubscribed

	assert.Contains(t, out.String(), "Cart is empty.")
	assert.Contains(t, out.String(), "- Mug x2  12.50")
	assert.Len(t, svc.RunCalls(), 1)
}

func TestCli_runWatch_RunError(t *testing.T) {
	cart := &CartMock{
		SnapshotFunc: func() models.CartState { return models.CartState{} },
		SubscribeFunc: func() (<-chan models.CartState, func()) {
			return make(chan models.CartState), func() {}
		},
	}
	svc := &sync.ServiceMock{
		RunFunc: func(ctx context.Context) error {
			return errors.New("db closed")
		},
	}
	c, _ := newTestCli(FormatText, "", cart, svc)

	assert.EqualError(t, c.runWatch(context.Background()), "db closed")
}
