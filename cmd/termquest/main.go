// Package main is the entry point for termquest.
package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/samdwyer/termquest/internal/game"
	"github.com/samdwyer/termquest/internal/storage"
	"github.com/samdwyer/termquest/internal/storage/jsonfile"
	"github.com/samdwyer/termquest/internal/storage/sqlite"
	"github.com/samdwyer/termquest/internal/telemetry"
	"github.com/samdwyer/termquest/internal/ui"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "termquest: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load .env file for local development.
	// This makes HONEYCOMB_TERMQUEST_API_KEY available.
	envErr := godotenv.Load()

	cfg, err := game.LoadConfig()
	if err != nil {
		return err
	}

	logFile, err := openLog(cfg.LogFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "termquest: logging disabled: %v\n", err)
		log.SetOutput(io.Discard)
	} else {
		defer logFile.Close()
		log.SetOutput(logFile)
	}
	if envErr != nil {
		// Not fatal - env vars might be set directly
		log.Printf("Note: .env file not loaded: %v", envErr)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.Telemetry {
		shutdown, err := telemetry.Setup(ctx, telemetry.Options{
			APIKey:  cfg.HoneycombAPIKey,
			Dataset: cfg.HoneycombDataset,
		})
		if err != nil {
			log.Printf("Warning: telemetry setup failed: %v", err)
			log.Printf("Game will run without observability")
		} else {
			defer func() {
				if err := shutdown(context.WithoutCancel(ctx)); err != nil {
					log.Printf("Error shutting down telemetry: %v", err)
				}
			}()
		}
	}

	store, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	screen, err := ui.NewScreen()
	if err != nil {
		return fmt.Errorf("init terminal: %w", err)
	}

	g, err := game.New(ctx, cfg, screen, store)
	if err != nil {
		screen.Close()
		return err
	}
	// The terminal is restored before any error is printed.
	err = g.Run(ctx)
	g.Close()
	if err != nil {
		log.Printf("game error: %v", err)
	}
	return err
}

// openStore opens the configured save backend.
func openStore(cfg game.Config) (storage.Store, error) {
	switch cfg.Backend() {
	case storage.BackendSQLite:
		if err := os.MkdirAll(filepath.Dir(cfg.SavePath), 0o755); err != nil {
			return nil, fmt.Errorf("create save dir: %w", err)
		}
		return sqlite.Open(cfg.SavePath)
	default:
		return jsonfile.Open(cfg.SavePath)
	}
}

// openLog opens the log file for appending; tcell owns the terminal.
func openLog(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
}
