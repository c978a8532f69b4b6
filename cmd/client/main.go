package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/iudanet/cartsync/internal/client/api"
	"github.com/iudanet/cartsync/internal/client/cli"
	"github.com/iudanet/cartsync/internal/client/iocli"
	"github.com/iudanet/cartsync/internal/client/ledger"
	"github.com/iudanet/cartsync/internal/client/resolver"
	"github.com/iudanet/cartsync/internal/client/storage/boltdb"
	"github.com/iudanet/cartsync/internal/client/sync"
	"github.com/iudanet/cartsync/internal/config"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	version := fmt.Sprintf("%s (built %s, commit %s)", Version, BuildDate, GitCommit)
	root := cli.NewRootCommand(iocli.NewStdio(), newApp, version)

	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}

// newApp собирает корзину и синхронизацию поверх локальной BoltDB
func newApp(ctx context.Context, cfg *config.Client) (*cli.App, error) {
	level, err := config.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	boltStorage, err := boltdb.New(ctx, cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	apiClient := api.NewClient(cfg.Server,
		api.WithTimeout(cfg.Timeout),
		api.WithCartToken(cfg.CartToken),
	)
	products := resolver.New(apiClient, logger)

	cart := ledger.New(boltStorage, boltStorage, apiClient, products, logger)
	if err := cart.Load(ctx); err != nil {
		if cerr := boltStorage.Close(); cerr != nil {
			logger.Error("failed to close database", "error", cerr)
		}
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}

	syncCfg := sync.DefaultConfig()
	syncCfg.Interval = cfg.SyncInterval
	syncCfg.MaxAttempts = cfg.MaxAttempts
	syncService := sync.NewService(apiClient, cart, products, boltStorage, boltStorage, logger, syncCfg)

	return &cli.App{
		Cart:  cart,
		Sync:  syncService,
		Close: boltStorage.Close,
	}, nil
}
