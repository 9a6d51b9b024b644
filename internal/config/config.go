package config

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// DefaultOutputName is the board file written into the data directory.
const DefaultOutputName = "output.json"

// Config keeps runtime settings for the generator and checker.
type Config struct {
	DataDir        string        `env:"BINGO_DATA_DIR" envDefault:"."`
	OutputPath     string        `env:"BINGO_OUTPUT"`
	CatalogDB      string        `env:"BINGO_CATALOG_DB"`
	LogLevel       string        `env:"BINGO_LOG_LEVEL" envDefault:"warn"`
	Seed           int64         `env:"BINGO_SEED"`
	RotateInterval time.Duration `env:"BINGO_ROTATE_INTERVAL"`
	RotateAt       string        `env:"BINGO_ROTATE_AT"`
}

// Load reads configuration from environment variables with sane defaults.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}

	cfg.DataDir = strings.TrimSpace(cfg.DataDir)
	if cfg.DataDir == "" {
		cfg.DataDir = "."
	}
	cfg.OutputPath = strings.TrimSpace(cfg.OutputPath)
	cfg.CatalogDB = strings.TrimSpace(cfg.CatalogDB)
	cfg.RotateAt = strings.TrimSpace(cfg.RotateAt)

	if cfg.RotateInterval < 0 {
		return cfg, fmt.Errorf("BINGO_ROTATE_INTERVAL must not be negative")
	}

	return cfg, nil
}

// Output returns the board path, defaulting to output.json in the data dir.
func (c Config) Output() string {
	if c.OutputPath != "" {
		return c.OutputPath
	}
	return filepath.Join(c.DataDir, DefaultOutputName)
}
