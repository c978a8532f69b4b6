// Package config loads client and server settings from flags, CARTSYNC_*
// environment variables and an optional config file.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/iudanet/cartsync/internal/validation"
)

// EnvPrefix is the prefix of every environment variable
const EnvPrefix = "CARTSYNC"

// Client defaults shared with CLI flag definitions.
const (
	DefaultTimeout      = 30 * time.Second
	DefaultSyncInterval = 30 * time.Second
	DefaultMaxAttempts  = 8
)

// ErrInvalidConfig wraps every validation failure
var ErrInvalidConfig = errors.New("invalid config")

// Client настройки CLI клиента
type Client struct {
	Server       string        `mapstructure:"server"`        // адрес сервиса корзины
	DB           string        `mapstructure:"db"`            // путь к локальной BoltDB
	CartToken    string        `mapstructure:"cart_token"`    // значение X-Cart-Token
	LogLevel     string        `mapstructure:"log_level"`     // debug|info|warn|error
	Format       string        `mapstructure:"format"`        // text|json
	Timeout      time.Duration `mapstructure:"timeout"`       // таймаут одного HTTP запроса
	SyncInterval time.Duration `mapstructure:"sync_interval"` // период фоновой синхронизации
	MaxAttempts  int           `mapstructure:"max_attempts"`  // попыток до пометки операции мёртвой
}

// Server настройки dev сервиса корзины
type Server struct {
	Addr       string        `mapstructure:"addr"`        // адрес HTTP сервера
	DB         string        `mapstructure:"db"`          // путь к SQLite
	Catalog    string        `mapstructure:"catalog"`     // YAML каталог товаров для начального заполнения
	LogLevel   string        `mapstructure:"log_level"`   // debug|info|warn|error
	RateLimit  int           `mapstructure:"rate_limit"`  // запросов на клиента за окно
	RateWindow time.Duration `mapstructure:"rate_window"` // окно rate limit
}

// ClientDefaults registers client defaults on v.
func ClientDefaults(v *viper.Viper) {
	v.SetDefault("server", "http://localhost:8080")
	v.SetDefault("db", "cartsync.db")
	v.SetDefault("cart_token", "")
	v.SetDefault("log_level", "warn")
	v.SetDefault("format", "text")
	v.SetDefault("timeout", DefaultTimeout)
	v.SetDefault("sync_interval", DefaultSyncInterval)
	v.SetDefault("max_attempts", DefaultMaxAttempts)
}

// ServerDefaults registers server defaults on v.
func ServerDefaults(v *viper.Viper) {
	v.SetDefault("addr", ":8080")
	v.SetDefault("db", "cartsync-server.db")
	v.SetDefault("catalog", "")
	v.SetDefault("log_level", "info")
	v.SetDefault("rate_limit", 120)
	v.SetDefault("rate_window", time.Minute)
}

// New returns a viper instance reading CARTSYNC_* variables. Flag names use
// dashes, keys use underscores: --cart-token binds to cart_token.
func New() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// BindFlags binds every flag in fs to the key with dashes replaced by underscores.
func BindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	var bindErr error
	fs.VisitAll(func(f *pflag.Flag) {
		if bindErr != nil || f.Name == "config" {
			return
		}
		key := strings.ReplaceAll(f.Name, "-", "_")
		if err := v.BindPFlag(key, f); err != nil {
			bindErr = fmt.Errorf("failed to bind flag %s: %w", f.Name, err)
		}
	})
	return bindErr
}

// ReadFile merges the config file at path into v. An empty path is a no-op.
func ReadFile(v *viper.Viper, path string) error {
	if path == "" {
		return nil
	}
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read config %s: %w", path, err)
	}
	return nil
}

// LoadClient decodes and validates client settings.
func LoadClient(v *viper.Viper) (*Client, error) {
	var cfg Client
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks client settings.
func (c *Client) Validate() error {
	if strings.TrimSpace(c.Server) == "" {
		return fmt.Errorf("%w: server must not be empty", ErrInvalidConfig)
	}
	if strings.TrimSpace(c.DB) == "" {
		return fmt.Errorf("%w: db must not be empty", ErrInvalidConfig)
	}
	if c.Format != "text" && c.Format != "json" {
		return fmt.Errorf("%w: format %q must be one of [text json]", ErrInvalidConfig, c.Format)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("%w: timeout must be positive", ErrInvalidConfig)
	}
	if c.SyncInterval <= 0 {
		return fmt.Errorf("%w: sync_interval must be positive", ErrInvalidConfig)
	}
	if c.MaxAttempts < 1 {
		return fmt.Errorf("%w: max_attempts must be at least 1", ErrInvalidConfig)
	}
	if err := validation.ValidateCartToken(c.CartToken); err != nil {
		return fmt.Errorf("%w: cart_token: %w", ErrInvalidConfig, err)
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// LoadServer decodes and validates server settings.
func LoadServer(v *viper.Viper) (*Server, error) {
	var cfg Server
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if strings.TrimSpace(cfg.Addr) == "" {
		return nil, fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	}
	if strings.TrimSpace(cfg.DB) == "" {
		return nil, fmt.Errorf("%w: db must not be empty", ErrInvalidConfig)
	}
	if cfg.RateLimit < 1 || cfg.RateWindow <= 0 {
		return nil, fmt.Errorf("%w: rate_limit and rate_window must be positive", ErrInvalidConfig)
	}
	if _, err := ParseLevel(cfg.LogLevel); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// ParseLevel maps a level name to slog.Level.
func ParseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return 0, fmt.Errorf("%w: log_level %q", ErrInvalidConfig, s)
	}
	return level, nil
}
