// Package cli holds the initialization steps shared by the gamjatokki
// commands.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"gamjatokki/internal/backend"
	"gamjatokki/internal/config"
	"gamjatokki/internal/ledger"
	applog "gamjatokki/internal/log"
)

// SetupLogger initializes structured logging at the given level and sets it
// as the default logger.
func SetupLogger(w io.Writer, level string) (*applog.Logger, error) {
	lvl, err := config.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	logger := applog.New(applog.Config{Level: lvl, Output: w, Component: applog.ComponentApp})
	applog.SetDefault(logger)
	return logger, nil
}

// LoadEnvFile loads .env files for local development. A missing file is not
// an error; a malformed one is.
func LoadEnvFile(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load %s: %w", p, err)
		}
	}
	return nil
}

// LoadAndValidateConfig loads configuration from the environment and
// validates it.
func LoadAndValidateConfig() (*config.Config, error) {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// OpenEntrySource builds the configured entry source through the backend
// factory. The returned close function releases it and is never nil.
func OpenEntrySource(ctx context.Context, logger *applog.Logger, cfg *config.Config, now time.Time) (ledger.EntryLister, func() error, error) {
	bcfg, err := backend.FromAppConfig(cfg, now)
	if err != nil {
		return nil, nil, err
	}
	res, err := backend.NewFactory(logger).CreateBackend(ctx, bcfg)
	if err != nil {
		return nil, nil, err
	}
	return res.Entries, res.Cleanup, nil
}

// SignalContext returns a context cancelled on SIGINT or SIGTERM.
func SignalContext(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
}
