package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadProjectConfig(t *testing.T) {
	t.Run("valid config loads", func(t *testing.T) {
		cfg, err := LoadProjectConfig(filepath.Join("testdata", "valid_config.yaml"))
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if cfg.API.BaseURL != "https://pokeapi.example.test/api/v2" {
			t.Fatalf("expected base url, got %q", cfg.API.BaseURL)
		}
		if cfg.API.Count != 151 || cfg.API.Concurrency != 8 {
			t.Fatalf("expected count 151 concurrency 8, got %d %d", cfg.API.Count, cfg.API.Concurrency)
		}
		if cfg.API.Timeout != 5*time.Second {
			t.Fatalf("expected 5s timeout, got %s", cfg.API.Timeout)
		}
		if cfg.Log.Level != "debug" || cfg.Export.DSN != "sqlite://./snapshot.db" {
			t.Fatalf("unexpected log/export config %+v %+v", cfg.Log, cfg.Export)
		}
	})

	t.Run("partial config keeps defaults", func(t *testing.T) {
		path := writeTempConfig(t, "version: 1\napi:\n  count: 10\n")
		cfg, err := LoadProjectConfig(path)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if cfg.API.Count != 10 {
			t.Fatalf("expected count 10, got %d", cfg.API.Count)
		}
		if cfg.API.BaseURL != Default().API.BaseURL || cfg.API.Timeout != 10*time.Second {
			t.Fatalf("expected defaults, got %+v", cfg.API)
		}
	})

	t.Run("unsupported version", func(t *testing.T) {
		path := writeTempConfig(t, "version: 2\n")
		if _, err := LoadProjectConfig(path); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("relative base url", func(t *testing.T) {
		path := writeTempConfig(t, "version: 1\napi:\n  base_url: /api/v2\n")
		if _, err := LoadProjectConfig(path); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("zero count", func(t *testing.T) {
		path := writeTempConfig(t, "version: 1\napi:\n  count: 0\n")
		if _, err := LoadProjectConfig(path); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("negative concurrency", func(t *testing.T) {
		path := writeTempConfig(t, "version: 1\napi:\n  concurrency: -1\n")
		if _, err := LoadProjectConfig(path); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("bad log level", func(t *testing.T) {
		path := writeTempConfig(t, "version: 1\nlog:\n  level: loud\n")
		if _, err := LoadProjectConfig(path); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("file not found", func(t *testing.T) {
		if _, err := LoadProjectConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("invalid yaml", func(t *testing.T) {
		path := writeTempConfig(t, "version: [\n")
		if _, err := LoadProjectConfig(path); err == nil {
			t.Fatalf("expected error")
		}
	})
}

func TestLoadFallsBackToDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if cfg.API.Count != 150 || cfg.API.BaseURL != "https://pokeapi.co/api/v2" {
		t.Fatalf("expected defaults, got %+v", cfg.API)
	}
}

func TestEnvironmentOverrides(t *testing.T) {
	t.Setenv("POKEDEX_API_BASE_URL", "http://localhost:8080/api/v2")
	t.Setenv("POKEDEX_API_COUNT", "12")
	t.Setenv("POKEDEX_API_TIMEOUT", "250ms")
	t.Setenv("POKEDEX_LOG_LEVEL", "warn")
	t.Setenv("POKEDEX_EXPORT_DSN", "postgres://localhost/pokedex")

	cfg, err := LoadProjectConfig(filepath.Join("testdata", "valid_config.yaml"))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if cfg.API.BaseURL != "http://localhost:8080/api/v2" || cfg.API.Count != 12 {
		t.Fatalf("expected env overrides, got %+v", cfg.API)
	}
	if cfg.API.Timeout != 250*time.Millisecond {
		t.Fatalf("expected 250ms, got %s", cfg.API.Timeout)
	}
	if cfg.API.Concurrency != 8 {
		t.Fatalf("expected file value to survive, got %d", cfg.API.Concurrency)
	}
	if cfg.Log.Level != "warn" || cfg.Export.DSN != "postgres://localhost/pokedex" {
		t.Fatalf("unexpected overrides %+v %+v", cfg.Log, cfg.Export)
	}

	t.Setenv("POKEDEX_API_COUNT", "many")
	if _, err := LoadProjectConfig(filepath.Join("testdata", "valid_config.yaml")); err == nil {
		t.Fatalf("expected error for unparsable env value")
	}
}

func writeTempConfig(t *testing.T, contents string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(contents), 0o600); err != nil {
		t.Fatalf("writing temp config: %v", err)
	}
	return path
}
