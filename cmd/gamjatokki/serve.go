package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"gamjatokki/internal/cli"
	apphttp "gamjatokki/internal/http"
	applog "gamjatokki/internal/log"
)

const shutdownTimeout = 30 * time.Second

func newServeCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the ledger pages and the component gallery",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := cli.SignalContext(cmd.Context())
			defer stop()
			return runServe(ctx, cmd, flags)
		},
	}
}

func runServe(ctx context.Context, cmd *cobra.Command, flags *rootFlags) error {
	if err := cli.LoadEnvFile(flags.envFile); err != nil {
		return err
	}
	cfg, err := cli.LoadAndValidateConfig()
	if err != nil {
		return err
	}
	if flags.logLevel != "" {
		cfg.LogLevel = flags.logLevel
	}
	logger, err := cli.SetupLogger(cmd.OutOrStdout(), cfg.LogLevel)
	if err != nil {
		return err
	}

	entries, closeEntries, err := cli.OpenEntrySource(ctx, logger, cfg, time.Now())
	if err != nil {
		logger.ErrorContext(ctx, "Entry source initialization failed", applog.FieldError, err, "backend", cfg.DataBackend)
		return err
	}
	defer func() {
		if err := closeEntries(); err != nil {
			logger.Warn("Closing entry source failed", applog.FieldError, err)
		}
	}()

	srv, err := apphttp.NewServer(apphttp.Options{
		Addr:       ":" + cfg.Port,
		Entries:    entries,
		PotatoName: cfg.PotatoName,
		RabbitName: cfg.RabbitName,
		CacheSize:  cfg.CacheSize,
		CacheTTL:   cfg.CacheTTL,
		Logger:     logger,
	})
	if err != nil {
		return err
	}
	srv.ReadTimeout = 10 * time.Second
	srv.WriteTimeout = 10 * time.Second
	srv.IdleTimeout = 60 * time.Second
	srv.MaxHeaderBytes = 1 << 16

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.InfoContext(ctx, "Starting gamjatokki server",
			"port", cfg.Port, "backend", cfg.DataBackend, "env", cfg.AppEnv)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("Shutting down", applog.FieldOperation, applog.OpShutdown)

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error("Server error", applog.FieldError, err, "port", cfg.Port)
		return err
	}
	logger.Info("Server stopped gracefully")
	return nil
}
