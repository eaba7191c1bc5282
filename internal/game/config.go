package game

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"
	"unicode/utf8"

	"github.com/caarlos0/env/v11"

	"github.com/samdwyer/termquest/internal/storage"
)

// AppName names the per-user config and cache directories.
const AppName = "termquest"

// Config holds game configuration options, read from the environment.
type Config struct {
	SaveBackend string        `env:"TERMQUEST_SAVE_BACKEND" envDefault:"file"`
	SavePath    string        `env:"TERMQUEST_SAVE_PATH"`
	LogFile     string        `env:"TERMQUEST_LOG_FILE"`
	Tick        time.Duration `env:"TERMQUEST_TICK" envDefault:"16ms"`
	// Seed for the enemy picker. A seed of 0 means a time-based seed.
	Seed           int64  `env:"TERMQUEST_SEED"`
	CloseKey       string `env:"TERMQUEST_CLOSE_KEY" envDefault:"x"`
	AttentionTicks int    `env:"TERMQUEST_ATTENTION_TICKS" envDefault:"30"`

	Telemetry        bool   `env:"TERMQUEST_TELEMETRY"`
	HoneycombAPIKey  string `env:"HONEYCOMB_TERMQUEST_API_KEY"`
	HoneycombDataset string `env:"HONEYCOMB_TERMQUEST_DATASET"`
}

// LoadConfig parses the environment, fills path defaults and validates.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	if err := cfg.fillPaths(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks value ranges.
func (c Config) Validate() error {
	if _, ok := storage.ParseBackend(c.SaveBackend); !ok {
		return fmt.Errorf("unknown save backend %q (want %q or %q)",
			c.SaveBackend, storage.BackendFile, storage.BackendSQLite)
	}
	if c.Tick <= 0 {
		return errors.New("tick must be positive")
	}
	if utf8.RuneCountInString(c.CloseKey) != 1 {
		return fmt.Errorf("close key must be a single character, got %q", c.CloseKey)
	}
	if c.AttentionTicks <= 0 {
		return errors.New("attention ticks must be positive")
	}
	return nil
}

// Backend returns the validated save backend.
func (c Config) Backend() storage.Backend {
	b, _ := storage.ParseBackend(c.SaveBackend)
	return b
}

// CloseRune returns the configured message close key.
func (c Config) CloseRune() rune {
	r, _ := utf8.DecodeRuneInString(c.CloseKey)
	return r
}

// fillPaths sets per-user defaults for unset paths.
func (c *Config) fillPaths() error {
	if c.SavePath == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			return fmt.Errorf("locate config dir: %w", err)
		}
		name := "save.json"
		if c.Backend() == storage.BackendSQLite {
			name = "save.db"
		}
		c.SavePath = filepath.Join(dir, AppName, name)
	}
	if c.LogFile == "" {
		dir, err := os.UserCacheDir()
		if err != nil {
			return fmt.Errorf("locate cache dir: %w", err)
		}
		c.LogFile = filepath.Join(dir, AppName, AppName+".log")
	}
	return nil
}
