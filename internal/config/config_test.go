package config

import (
	"log/slog"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func validConfig() Config {
	return Config{
		Port:         "3000",
		AppEnv:       "test",
		LogLevel:     "info",
		DataBackend:  "memory",
		SQLiteDBPath: "./test.db",
		CacheSize:    100,
		CacheTTL:     5 * time.Minute,
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(*Config)
		wantErr     bool
		errorString string
	}{
		{
			name:    "valid memory backend config",
			mutate:  func(c *Config) {},
			wantErr: false,
		},
		{
			name: "valid sqlite backend config",
			mutate: func(c *Config) {
				c.DataBackend = "sqlite"
				c.SQLiteDBPath = filepath.Join(t.TempDir(), "db", "ledger.db")
			},
			wantErr: false,
		},
		{
			name:        "invalid port - non-numeric",
			mutate:      func(c *Config) { c.Port = "abc" },
			wantErr:     true,
			errorString: "invalid port 'abc': must be a number",
		},
		{
			name:        "invalid port - out of range low",
			mutate:      func(c *Config) { c.Port = "0" },
			wantErr:     true,
			errorString: "invalid port 0: must be between 1 and 65535",
		},
		{
			name:        "invalid port - out of range high",
			mutate:      func(c *Config) { c.Port = "70000" },
			wantErr:     true,
			errorString: "invalid port 70000: must be between 1 and 65535",
		},
		{
			name:        "invalid data backend",
			mutate:      func(c *Config) { c.DataBackend = "sheets" },
			wantErr:     true,
			errorString: "invalid data backend 'sheets': must be one of [memory sqlite]",
		},
		{
			name: "sqlite backend missing database path",
			mutate: func(c *Config) {
				c.DataBackend = "sqlite"
				c.SQLiteDBPath = ""
			},
			wantErr:     true,
			errorString: "SQLite database path cannot be empty when using sqlite backend",
		},
		{
			name:        "invalid log level",
			mutate:      func(c *Config) { c.LogLevel = "loud" },
			wantErr:     true,
			errorString: "invalid log level 'loud'",
		},
		{
			name:        "invalid cache size - too small",
			mutate:      func(c *Config) { c.CacheSize = 0 },
			wantErr:     true,
			errorString: "invalid cache size 0: must be at least 1",
		},
		{
			name:        "invalid cache ttl - too short",
			mutate:      func(c *Config) { c.CacheTTL = 500 * time.Millisecond },
			wantErr:     true,
			errorString: "invalid cache ttl 500ms: must be at least 1 second",
		},
		{
			name:        "invalid cache ttl - too long",
			mutate:      func(c *Config) { c.CacheTTL = 25 * time.Hour },
			wantErr:     true,
			errorString: "invalid cache ttl 25h0m0s: must be at most 24 hours",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr {
				if err == nil {
					t.Errorf("Config.Validate() error = nil, wantErr %v", tt.wantErr)
					return
				}
				if tt.errorString != "" && !strings.Contains(err.Error(), tt.errorString) {
					t.Errorf("Config.Validate() error = %v, want error containing %v", err.Error(), tt.errorString)
				}
			} else if err != nil {
				t.Errorf("Config.Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfig_ValidateCollectsAllErrors(t *testing.T) {
	cfg := validConfig()
	cfg.Port = "abc"
	cfg.DataBackend = "nope"
	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "invalid port") || !strings.Contains(err.Error(), "invalid data backend") {
		t.Errorf("expected both problems reported, got %v", err)
	}
}

func TestLoad(t *testing.T) {
	for _, key := range []string{"PORT", "APP_ENV", "DATA_BACKEND", "SQLITE_DB_PATH", "CACHE_SIZE", "CACHE_TTL", "POTATO_NAME"} {
		t.Setenv(key, "")
	}

	t.Run("default values", func(t *testing.T) {
		cfg := Load()

		if cfg.Port != "3000" {
			t.Errorf("Load() Port = %v, want 3000", cfg.Port)
		}
		if cfg.DataBackend != "memory" {
			t.Errorf("Load() DataBackend = %v, want memory", cfg.DataBackend)
		}
		if cfg.SQLiteDBPath != "./data/gamjatokki.db" {
			t.Errorf("Load() SQLiteDBPath = %v, want ./data/gamjatokki.db", cfg.SQLiteDBPath)
		}
		if cfg.CacheTTL != 5*time.Minute {
			t.Errorf("Load() CacheTTL = %v, want 5m", cfg.CacheTTL)
		}
		if cfg.IsTest() {
			t.Errorf("Load() default AppEnv should not be test")
		}
	})

	t.Run("environment variables", func(t *testing.T) {
		t.Setenv("PORT", "9090")
		t.Setenv("APP_ENV", "test")
		t.Setenv("DATA_BACKEND", "sqlite")
		t.Setenv("CACHE_SIZE", "25")
		t.Setenv("CACHE_TTL", "45s")
		t.Setenv("POTATO_NAME", "민수")

		cfg := Load()

		if cfg.Port != "9090" || cfg.DataBackend != "sqlite" || cfg.PotatoName != "민수" {
			t.Errorf("Load() = %+v", cfg)
		}
		if cfg.CacheSize != 25 || cfg.CacheTTL != 45*time.Second {
			t.Errorf("Load() cache = %d/%v, want 25/45s", cfg.CacheSize, cfg.CacheTTL)
		}
		if !cfg.IsTest() {
			t.Errorf("Load() APP_ENV=test should report IsTest")
		}
	})

	t.Run("invalid environment variables use defaults", func(t *testing.T) {
		t.Setenv("CACHE_SIZE", "invalid")
		t.Setenv("CACHE_TTL", "invalid")

		cfg := Load()

		if cfg.CacheSize != 100 {
			t.Errorf("Load() CacheSize = %v, want 100 (default for invalid input)", cfg.CacheSize)
		}
		if cfg.CacheTTL != 5*time.Minute {
			t.Errorf("Load() CacheTTL = %v, want 5m (default for invalid input)", cfg.CacheTTL)
		}
	})
}

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug": slog.LevelDebug,
		"":      slog.LevelInfo,
		"INFO":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
	}
	for in, want := range cases {
		got, err := ParseLevel(in)
		if err != nil || got != want {
			t.Errorf("ParseLevel(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
	if _, err := ParseLevel("verbose"); err == nil {
		t.Errorf("ParseLevel(verbose) expected error")
	}
}
