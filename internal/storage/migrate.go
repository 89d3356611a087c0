package storage

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"log/slog"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// ledgerMigrationsTable records the applied ledger schema version.
const ledgerMigrationsTable = "ledger_schema_migrations"

// ErrDirtyLedgerSchema means a previous ledger migration stopped halfway and
// needs manual repair.
var ErrDirtyLedgerSchema = errors.New("ledger schema is dirty")

// MigrateLedger brings the ledger schema in dbPath up to date and returns the
// schema version now in place.
func MigrateLedger(dbPath string) (uint, error) {
	// The migrator closes its own connection, so it never shares the main pool.
	conn, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return 0, fmt.Errorf("ledger schema: open %s: %w", dbPath, err)
	}
	defer conn.Close()

	driver, err := sqlite.WithInstance(conn, &sqlite.Config{MigrationsTable: ledgerMigrationsTable})
	if err != nil {
		return 0, fmt.Errorf("ledger schema: sqlite driver: %w", err)
	}
	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return 0, fmt.Errorf("ledger schema: embedded migrations: %w", err)
	}
	m, err := migrate.NewWithInstance("iofs", src, "sqlite", driver)
	if err != nil {
		return 0, fmt.Errorf("ledger schema: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return 0, fmt.Errorf("ledger schema: migrate up: %w", err)
	}

	version, dirty, err := m.Version()
	if err != nil {
		return 0, fmt.Errorf("ledger schema: read version: %w", err)
	}
	if dirty {
		return version, fmt.Errorf("%w at version %d", ErrDirtyLedgerSchema, version)
	}
	slog.Debug("Ledger schema ready", "path", dbPath, "version", version)
	return version, nil
}
