package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/iudanet/cartsync/internal/client/iocli"
	"github.com/iudanet/cartsync/internal/config"
	"github.com/iudanet/cartsync/internal/models"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewRootCommand builds the cartsync command tree. Dependencies are created
// by factory per command, after flags, CARTSYNC_* variables and the config
// file are merged.
func NewRootCommand(io iocli.IO, factory Factory, version string) *cobra.Command {
	v := config.New()
	config.ClientDefaults(v)

	var configFile string

	root := &cobra.Command{
		Use:           "cartsync",
		Short:         "Local-first shopping cart synchronized with a remote cart service",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			format, err := cmd.Flags().GetString("format")
			if err != nil {
				return err
			}
			return validateFormat(format)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "path to config file (yaml, json or toml)")
	pf.String("server", "http://localhost:8080", "cart service URL")
	pf.String("db", "cartsync.db", "path to local database")
	pf.String("cart-token", "", "cart token sent as X-Cart-Token")
	pf.Duration("timeout", config.DefaultTimeout, "HTTP request timeout")
	pf.String("log-level", "warn", "log level (debug, info, warn, error)")
	pf.String("format", FormatText, "output format (text, json)")
	pf.Duration("sync-interval", config.DefaultSyncInterval, "background sync period for watch")
	pf.Int("max-attempts", config.DefaultMaxAttempts, "delivery attempts before an operation is marked dead")

	b := &binder{io: io, factory: factory, v: v, configFile: &configFile}

	root.AddCommand(
		newAddCommand(b),
		newRemoveCommand(b),
		newUpdateCommand(b),
		newListCommand(b),
		newTotalCommand(b),
		newClearCommand(b),
		newPullCommand(b),
		newSyncCommand(b),
		newStatusCommand(b),
		newWatchCommand(b),
	)

	return root
}

// binder turns a Cli method into a cobra RunE that owns the App lifetime.
type binder struct {
	io         iocli.IO
	factory    Factory
	v          *viper.Viper
	configFile *string
}

func (b *binder) run(fn func(ctx context.Context, c *Cli, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) (err error) {
		if err := config.BindFlags(b.v, cmd.Flags()); err != nil {
			return err
		}
		if err := config.ReadFile(b.v, *b.configFile); err != nil {
			return err
		}
		cfg, err := config.LoadClient(b.v)
		if err != nil {
			return err
		}

		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}

		app, err := b.factory(ctx, cfg)
		if err != nil {
			return err
		}
		if app.Close != nil {
			defer func() {
				if cerr := app.Close(); cerr != nil {
					err = errors.Join(err, fmt.Errorf("failed to close: %w", cerr))
				}
			}()
		}

		return fn(ctx, New(b.io, app.Cart, app.Sync, cfg.Format), args)
	}
}

func newAddCommand(b *binder) *cobra.Command {
	var quantity float64
	var name, image, description string
	var price, comparePrice float64

	cmd := &cobra.Command{
		Use:   "add <product-id>",
		Short: "Add a product to the cart",
		Long: `Add a product to the cart. The line appears locally at once and is
pushed to the server in the background or by 'cartsync sync'.

Known details can be supplied with flags; missing ones are fetched from the
product API.`,
		Example: `  cartsync add 42
  cartsync add 42 --qty 3
  cartsync add 3f0c8b9e-1b7e-4c39-9a55-0d3e0c2f8a11 --name "Desk lamp" --price 30`,
		Args: cobra.ExactArgs(1),
	}
	cmd.Flags().Float64VarP(&quantity, "qty", "q", 1, "quantity (fractions are floored, minimum 1)")
	cmd.Flags().StringVar(&name, "name", "", "product name")
	cmd.Flags().Float64Var(&price, "price", 0, "unit price")
	cmd.Flags().StringVar(&image, "image", "", "image URL")
	cmd.Flags().StringVar(&description, "description", "", "product description")
	cmd.Flags().Float64Var(&comparePrice, "compare-price", 0, "previous price")

	cmd.RunE = b.run(func(ctx context.Context, c *Cli, args []string) error {
		var provided *models.PartialDetails
		flags := cmd.Flags()
		set := func(n string) bool { return flags.Changed(n) }
		if set("name") || set("price") || set("image") || set("description") || set("compare-price") {
			provided = &models.PartialDetails{}
			if set("name") {
				provided.Name = &name
			}
			if set("price") {
				provided.Price = &price
			}
			if set("image") {
				provided.Image = &image
			}
			if set("description") {
				provided.Description = &description
			}
			if set("compare-price") {
				provided.ComparePrice = &comparePrice
			}
		}
		return c.runAdd(ctx, args[0], quantity, provided)
	})
	return cmd
}

func newRemoveCommand(b *binder) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "remove <line-id>",
		Aliases: []string{"rm"},
		Short:   "Remove a line from the cart",
		Args:    cobra.ExactArgs(1),
	}
	cmd.RunE = b.run(func(ctx context.Context, c *Cli, args []string) error {
		return c.runRemove(ctx, args[0])
	})
	return cmd
}

func newUpdateCommand(b *binder) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <line-id> <quantity>",
		Short: "Set the quantity of a line",
		Args:  cobra.ExactArgs(2),
	}
	cmd.RunE = b.run(func(ctx context.Context, c *Cli, args []string) error {
		quantity, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid quantity %q: %w", args[1], err)
		}
		return c.runUpdate(ctx, args[0], quantity)
	})
	return cmd
}

func newListCommand(b *binder) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "Show the cart",
		Args:    cobra.NoArgs,
	}
	cmd.RunE = b.run(func(_ context.Context, c *Cli, _ []string) error {
		return c.runList()
	})
	return cmd
}

func newTotalCommand(b *binder) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "total",
		Short: "Show item count and cart total",
		Args:  cobra.NoArgs,
	}
	cmd.RunE = b.run(func(_ context.Context, c *Cli, _ []string) error {
		return c.runTotal()
	})
	return cmd
}

func newClearCommand(b *binder) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Remove every line from the cart",
		Args:  cobra.NoArgs,
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "do not ask for confirmation")
	cmd.RunE = b.run(func(ctx context.Context, c *Cli, _ []string) error {
		return c.runClear(ctx, yes)
	})
	return cmd
}

func newPullCommand(b *binder) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pull",
		Short: "Replace the local cart with the server cart",
		Args:  cobra.NoArgs,
	}
	cmd.RunE = b.run(func(ctx context.Context, c *Cli, _ []string) error {
		return c.runPull(ctx)
	})
	return cmd
}

func newSyncCommand(b *binder) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Push queued changes, then pull the server cart",
		Args:  cobra.NoArgs,
	}
	cmd.RunE = b.run(func(ctx context.Context, c *Cli, _ []string) error {
		return c.runSync(ctx)
	})
	return cmd
}

func newStatusCommand(b *binder) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show queued operations and the last pull time",
		Args:  cobra.NoArgs,
	}
	cmd.RunE = b.run(func(ctx context.Context, c *Cli, _ []string) error {
		return c.runStatus(ctx)
	})
	return cmd
}

func newWatchCommand(b *binder) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Sync in the background and print the cart on every change",
		Args:  cobra.NoArgs,
	}
	cmd.RunE = b.run(func(ctx context.Context, c *Cli, _ []string) error {
		return c.runWatch(ctx)
	})
	return cmd
}
