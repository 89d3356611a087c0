package backend

import (
	"context"
	"fmt"

	"gamjatokki/internal/ledger/memory"
	applog "gamjatokki/internal/log"
	"gamjatokki/internal/storage"
)

// DefaultFactory implements the Factory interface
type DefaultFactory struct {
	logger *applog.Logger
}

// NewFactory creates a new backend factory
func NewFactory(logger *applog.Logger) Factory {
	if logger == nil {
		logger = applog.FromContext(context.Background())
	}
	return &DefaultFactory{
		logger: logger.WithComponent(applog.ComponentLedger),
	}
}

// CreateBackend implements Factory.CreateBackend
func (f *DefaultFactory) CreateBackend(ctx context.Context, config Config) (*BackendResult, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	switch config.Type {
	case SQLiteBackend:
		return f.createSQLiteBackend(ctx, config)
	default:
		return f.createMemoryBackend(ctx, config)
	}
}

// createSQLiteBackend opens the database (running migrations) and seeds it
// when it holds no entries yet.
func (f *DefaultFactory) createSQLiteBackend(ctx context.Context, config Config) (*BackendResult, error) {
	repo, err := storage.NewSQLiteRepository(config.SQLiteDBPath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize SQLite repository: %w", err)
	}

	n, err := repo.Count(ctx)
	if err != nil {
		repo.Close()
		return nil, err
	}
	if n == 0 {
		seed := memory.SeedEntries(config.SeedFile, config.Now)
		for _, e := range seed {
			if _, err := repo.Add(ctx, e); err != nil {
				repo.Close()
				return nil, fmt.Errorf("seed entries: %w", err)
			}
		}
		f.logger.InfoContext(ctx, "Seeded empty database", applog.FieldCount, len(seed), "db_path", config.SQLiteDBPath)
	}

	f.logger.InfoContext(ctx, "Initialized SQLite backend", "db_path", config.SQLiteDBPath, "entries", n)

	return &BackendResult{
		Entries: repo,
		Cleanup: repo.Close,
	}, nil
}

func (f *DefaultFactory) createMemoryBackend(ctx context.Context, config Config) (*BackendResult, error) {
	store := memory.NewFromFile(config.SeedFile, config.Now)

	f.logger.InfoContext(ctx, "Initialized memory backend", "seed_file", config.SeedFile)

	return &BackendResult{
		Entries: store,
		Cleanup: func() error { return nil },
	}, nil
}
