package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/iudanet/cartsync/internal/config"
	"github.com/iudanet/cartsync/internal/server/catalog"
	"github.com/iudanet/cartsync/internal/server/handlers"
	"github.com/iudanet/cartsync/internal/server/middleware"
	"github.com/iudanet/cartsync/internal/server/storage/sqlite"
	"github.com/spf13/cobra"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

const shutdownTimeout = 10 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCommand().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	v := config.New()
	config.ServerDefaults(v)

	var configFile string

	cmd := &cobra.Command{
		Use:           "cartsync-server",
		Short:         "Development cart service backed by SQLite",
		Version:       fmt.Sprintf("%s (built %s, commit %s)", Version, BuildDate, GitCommit),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := config.BindFlags(v, cmd.Flags()); err != nil {
				return err
			}
			if err := config.ReadFile(v, configFile); err != nil {
				return err
			}
			cfg, err := config.LoadServer(v)
			if err != nil {
				return err
			}
			return run(cmd.Context(), cfg)
		},
	}

	f := cmd.Flags()
	f.StringVar(&configFile, "config", "", "path to config file (yaml, json or toml)")
	f.String("addr", ":8080", "listen address")
	f.String("db", "cartsync-server.db", "path to SQLite database")
	f.String("catalog", "", "YAML product catalog to seed on start")
	f.String("log-level", "info", "log level (debug, info, warn, error)")
	f.Int("rate-limit", 120, "requests per client per window")
	f.Duration("rate-window", time.Minute, "rate limit window")

	return cmd
}

func run(ctx context.Context, cfg *config.Server) error {
	level, err := config.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	store, err := sqlite.New(ctx, cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()

	if cfg.Catalog != "" {
		products, err := catalog.Load(cfg.Catalog)
		if err != nil {
			return err
		}
		if err := catalog.Seed(ctx, store, products); err != nil {
			return err
		}
		logger.Info("Catalog seeded", "path", cfg.Catalog, "products", len(products))
	}

	limiter := middleware.NewRateLimiter(cfg.RateLimit, cfg.RateWindow, logger)
	defer limiter.Stop()

	handler := middleware.Chain(
		handlers.NewRouter(logger, store, Version),
		middleware.Recovery(logger),
		middleware.Logging(logger, "/health"),
		limiter.Middleware,
	)

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Cart service starting", "addr", cfg.Addr, "version", Version)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	return nil
}
