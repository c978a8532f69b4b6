package cli

import (
	"context"
	"fmt"
)

func (c *Cli) runPull(ctx context.Context) error {
	result, err := c.syncService.Pull(ctx)
	if err != nil {
		return fmt.Errorf("pull failed: %w", err)
	}
	return c.render("sync", newSyncView(nil, result))
}

func (c *Cli) runSync(ctx context.Context) error {
	if !c.json() {
		c.io.Println("Synchronizing with server...")
	}
	result, err := c.syncService.Sync(ctx)
	if err != nil {
		if result != nil {
			_ = c.render("sync", newSyncView(result.Flush, result.Pull))
		}
		return fmt.Errorf("sync failed: %w", err)
	}
	return c.render("sync", newSyncView(result.Flush, result.Pull))
}

func (c *Cli) runStatus(ctx context.Context) error {
	status, err := c.syncService.Status(ctx)
	if err != nil {
		return fmt.Errorf("failed to get sync status: %w", err)
	}
	return c.render("status", newStatusView(status))
}

// runWatch печатает корзину при каждом изменении, пока фоновая синхронизация
// не завершится или не будет отменён ctx.
func (c *Cli) runWatch(ctx context.Context) error {
	states, unsubscribe := c.cart.Subscribe()
	defer unsubscribe()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- c.syncService.Run(ctx)
	}()

	if err := c.runList(); err != nil {
		return err
	}
	for {
		select {
		case state, ok := <-states:
			if !ok {
				return nil
			}
			if err := c.render("cart", newCartView(state)); err != nil {
				return err
			}
		case err := <-done:
			return err
		}
	}
}
