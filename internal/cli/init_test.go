package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gamjatokki/internal/config"
	"gamjatokki/internal/ledger/memory"
	applog "gamjatokki/internal/log"
)

var now = time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)

func TestSetupLogger(t *testing.T) {
	var buf bytes.Buffer
	logger, err := SetupLogger(&buf, "warn")
	require.NoError(t, err)

	logger.Info("hidden")
	logger.Warn("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")

	_, err = SetupLogger(&buf, "chatty")
	assert.Error(t, err)
}

func TestLoadEnvFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, LoadEnvFile(filepath.Join(dir, "missing.env")))

	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("GAMJATOKKI_TEST_NAME=감자\n"), 0o600))
	t.Setenv("GAMJATOKKI_TEST_NAME", "")
	os.Unsetenv("GAMJATOKKI_TEST_NAME")

	require.NoError(t, LoadEnvFile(path))
	assert.Equal(t, "감자", os.Getenv("GAMJATOKKI_TEST_NAME"))
}

func TestOpenEntrySourceMemory(t *testing.T) {
	cfg := &config.Config{DataBackend: "memory", SeedFile: filepath.Join(t.TempDir(), "none.txt")}

	src, closeFn, err := OpenEntrySource(context.Background(), applog.Discard(), cfg, now)
	require.NoError(t, err)
	defer closeFn()

	got, err := src.ListEntries(context.Background(), 2025, 3)
	require.NoError(t, err)
	assert.Len(t, got, len(memory.DemoEntries(now)))
}

func TestOpenEntrySourceSQLiteSeedsOnce(t *testing.T) {
	dir := t.TempDir()
	cfg := &config.Config{
		DataBackend:  "sqlite",
		SQLiteDBPath: filepath.Join(dir, "db", "ledger.db"),
		SeedFile:     filepath.Join(dir, "none.txt"),
	}
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		src, closeFn, err := OpenEntrySource(ctx, applog.Discard(), cfg, now)
		require.NoError(t, err)

		got, err := src.ListEntries(ctx, 2025, 3)
		require.NoError(t, err)
		assert.Len(t, got, len(memory.DemoEntries(now)), "open #%d", i+1)
		require.NoError(t, closeFn())
	}
}
