package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

const DefaultPath = "pokedex.yaml"

type ProjectConfig struct {
	Version int          `yaml:"version"`
	API     APIConfig    `yaml:"api"`
	Log     LogConfig    `yaml:"log"`
	Export  ExportConfig `yaml:"export"`
}

type APIConfig struct {
	BaseURL     string        `yaml:"base_url" env:"POKEDEX_API_BASE_URL"`
	Count       int           `yaml:"count" env:"POKEDEX_API_COUNT"`
	Timeout     time.Duration `yaml:"timeout" env:"POKEDEX_API_TIMEOUT"`
	Concurrency int           `yaml:"concurrency" env:"POKEDEX_API_CONCURRENCY"`
}

type LogConfig struct {
	Level string `yaml:"level" env:"POKEDEX_LOG_LEVEL"`
	File  string `yaml:"file" env:"POKEDEX_LOG_FILE"`
}

type ExportConfig struct {
	DSN string `yaml:"dsn" env:"POKEDEX_EXPORT_DSN"`
}

func Default() *ProjectConfig {
	return &ProjectConfig{
		Version: 1,
		API: APIConfig{
			BaseURL: "https://pokeapi.co/api/v2",
			Count:   150,
			Timeout: 10 * time.Second,
		},
		Log: LogConfig{
			Level: "info",
		},
		Export: ExportConfig{
			DSN: "sqlite://./pokedex.db",
		},
	}
}

// LoadProjectConfig reads path over the defaults, applies environment
// overrides and validates the result.
func LoadProjectConfig(path string) (*ProjectConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading project config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("loading project config: %w", err)
	}

	return finish(cfg)
}

// Load is LoadProjectConfig that falls back to the defaults when path does
// not exist.
func Load(path string) (*ProjectConfig, error) {
	cfg, err := LoadProjectConfig(path)
	if errors.Is(err, fs.ErrNotExist) {
		return finish(Default())
	}
	return cfg, err
}

func finish(cfg *ProjectConfig) (*ProjectConfig, error) {
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("loading project config: %w", err)
	}
	if err := validateProjectConfig(cfg); err != nil {
		return nil, fmt.Errorf("loading project config: %w", err)
	}
	return cfg, nil
}

func validateProjectConfig(cfg *ProjectConfig) error {
	if cfg.Version != 1 {
		return fmt.Errorf("unsupported version: %d", cfg.Version)
	}

	base := strings.TrimSpace(cfg.API.BaseURL)
	if base == "" {
		return fmt.Errorf("api base_url is required")
	}
	u, err := url.Parse(base)
	if err != nil {
		return fmt.Errorf("api base_url: %w", err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("api base_url must be an absolute http(s) url: %q", base)
	}
	if cfg.API.Count <= 0 {
		return fmt.Errorf("api count must be positive: %d", cfg.API.Count)
	}
	if cfg.API.Timeout <= 0 {
		return fmt.Errorf("api timeout must be positive: %s", cfg.API.Timeout)
	}
	if cfg.API.Concurrency < 0 {
		return fmt.Errorf("api concurrency must not be negative: %d", cfg.API.Concurrency)
	}

	switch strings.ToLower(cfg.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unsupported log level: %q", cfg.Log.Level)
	}

	return nil
}
