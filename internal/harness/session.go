// Package harness provisions and tears down the environment a browser-driven
// test session runs in: output directories, the server under test and a
// headless browser.
//
// The handles started during a session are recorded on the Session value
// returned by Setup and released by Teardown; nothing is kept in package state.
package harness

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	applog "gamjatokki/internal/log"
)

// Process is a started server that can be stopped.
type Process interface {
	Stop() error
}

// Browser is a launched browser that can be closed.
type Browser interface {
	Close() error
}

// Options configure Setup.
type Options struct {
	// Root is the directory the layout is created under. Defaults to ".".
	Root   string
	Config LaunchConfig
	// StartServer launches Config.Server before the ready wait. When false
	// the server is expected to be started externally.
	StartServer bool
	Logger      *applog.Logger
}

// Session records what a test run provisioned.
type Session struct {
	Root        string
	Directories []string
	Config      LaunchConfig

	Server  Process
	Browser Browser

	logger *applog.Logger
}

// Setup prepares a test session: output directories first, then the optional
// server, then the fixed ready delay. Any failure is logged and returned, and
// whatever was already started is released.
func Setup(ctx context.Context, opts Options) (*Session, error) {
	logger := opts.Logger
	if logger == nil {
		logger = applog.FromContext(ctx)
	}
	logger = logger.WithComponent(applog.ComponentHarness)

	root := opts.Root
	if root == "" {
		root = "."
	}

	s := &Session{Root: root, Config: opts.Config, logger: logger}

	dirs, err := EnsureDirectories(ctx, root)
	if err != nil {
		logger.ErrorContext(ctx, "Test directory setup failed", applog.FieldError, err, applog.FieldDir, root)
		return nil, fmt.Errorf("setup directories: %w", err)
	}
	s.Directories = dirs
	logger.InfoContext(ctx, "Test directories ready", applog.FieldCount, len(dirs), applog.FieldDir, root)

	if opts.StartServer {
		logPath := filepath.Join(root, "tests", "reports", "server.log")
		proc, err := StartServer(opts.Config.Server, root, logPath)
		if err != nil {
			logger.ErrorContext(ctx, "Server start failed", applog.FieldError, err, "command", opts.Config.Server.Command)
			return nil, fmt.Errorf("start server: %w", err)
		}
		s.Server = proc
		logger.InfoContext(ctx, "Server started", "command", opts.Config.Server.Command, "url", opts.Config.Server.URL())
	}

	if err := wait(ctx, opts.Config.Server.ReadyDelay); err != nil {
		logger.ErrorContext(ctx, "Waiting for server failed", applog.FieldError, err)
		Teardown(context.WithoutCancel(ctx), s)
		return nil, fmt.Errorf("wait for server: %w", err)
	}

	return s, nil
}

// LaunchBrowser starts a browser with the session configuration and records
// it for Teardown.
func (s *Session) LaunchBrowser(ctx context.Context) (*PlaywrightBrowser, error) {
	b, err := LaunchBrowser(s.Config)
	if err != nil {
		s.log().ErrorContext(ctx, "Browser launch failed", applog.FieldError, err)
		return nil, err
	}
	s.Browser = b
	s.log().InfoContext(ctx, "Browser launched", "headless", s.Config.Headless)
	return b, nil
}

// Teardown stops the recorded server and closes the recorded browser. It never
// fails: problems are logged so they do not hide the actual test results.
// A nil session or one without handles is a no-op.
func Teardown(ctx context.Context, s *Session) {
	if s == nil {
		return
	}
	logger := s.log()

	if s.Server != nil {
		if err := s.Server.Stop(); err != nil {
			logger.WarnContext(ctx, "Server stop failed", applog.FieldError, err, applog.FieldOperation, applog.OpTeardown)
		} else {
			logger.InfoContext(ctx, "Server stopped")
		}
		s.Server = nil
	}

	if s.Browser != nil {
		if err := s.Browser.Close(); err != nil {
			logger.WarnContext(ctx, "Browser close failed", applog.FieldError, err, applog.FieldOperation, applog.OpTeardown)
		} else {
			logger.InfoContext(ctx, "Browser closed")
		}
		s.Browser = nil
	}
}

func (s *Session) log() *applog.Logger {
	if s.logger == nil {
		s.logger = applog.FromContext(context.Background()).WithComponent(applog.ComponentHarness)
	}
	return s.logger
}

func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
