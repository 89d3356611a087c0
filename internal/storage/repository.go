package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"gamjatokki/internal/core"

	_ "modernc.org/sqlite"
)

type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if _, err := MigrateLedger(dbPath); err != nil {
		db.Close()
		return nil, err
	}

	return &SQLiteRepository{db: db}, nil
}

func (r *SQLiteRepository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

// Add stores an entry and returns its ID. Used for seeding and tests; the web
// front-end itself only reads.
func (r *SQLiteRepository) Add(ctx context.Context, e core.Entry) (int64, error) {
	if err := e.Validate(); err != nil {
		return 0, err
	}
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO entries (year, month, day, description, amount_won, kind, owner)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		e.Date.Year(), int(e.Date.Month()), e.Date.Day(), e.Description, int64(e.Amount), string(e.Kind), string(e.Owner))
	if err != nil {
		return 0, fmt.Errorf("insert entry: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("entry id: %w", err)
	}

	slog.DebugContext(ctx, "Entry saved to SQLite",
		"id", id,
		"description", e.Description,
		"amount_won", int64(e.Amount),
		"kind", e.Kind,
		"owner", e.Owner)

	return id, nil
}

// ListEntries implements ledger.EntryLister.
func (r *SQLiteRepository) ListEntries(ctx context.Context, year, month int) ([]core.Entry, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, year, month, day, description, amount_won, kind, owner
		 FROM entries WHERE year = ? AND month = ?
		 ORDER BY day, id`, year, month)
	if err != nil {
		return nil, fmt.Errorf("query entries (year=%d, month=%d): %w", year, month, err)
	}
	defer rows.Close()

	var entries []core.Entry
	for rows.Next() {
		var (
			e           core.Entry
			y, m, d     int
			amount      int64
			kind, owner string
		)
		if err := rows.Scan(&e.ID, &y, &m, &d, &e.Description, &amount, &kind, &owner); err != nil {
			return nil, fmt.Errorf("scan entry: %w", err)
		}
		e.Date = core.NewDate(y, m, d)
		e.Amount = core.Won(amount)
		e.Kind = core.Kind(kind)
		e.Owner = core.Owner(owner)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate entries: %w", err)
	}
	return entries, nil
}

// Count returns the number of stored entries.
func (r *SQLiteRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM entries`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count entries: %w", err)
	}
	return n, nil
}

// Ping checks the database connection.
func (r *SQLiteRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}
