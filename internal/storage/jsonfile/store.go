// Package jsonfile stores the player as an indented JSON document.
package jsonfile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/samdwyer/termquest/internal/progression"
	"github.com/samdwyer/termquest/internal/storage"
)

// Store saves the player record to a single JSON file.
type Store struct {
	path string
	mu   sync.Mutex
}

var _ storage.Store = (*Store)(nil)

// Open prepares a JSON store at path, creating its directory.
// The file itself is written on the first Save.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("save path is required")
	}
	clean := filepath.Clean(path)
	if err := os.MkdirAll(filepath.Dir(clean), 0o755); err != nil {
		return nil, fmt.Errorf("create save dir: %w", err)
	}
	return &Store{path: clean}, nil
}

// Path returns the file the store writes.
func (s *Store) Path() string { return s.path }

// Save writes the player record, replacing the file atomically.
func (s *Store) Save(ctx context.Context, p *progression.Player) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := json.MarshalIndent(p.Record(), "", "  ")
	if err != nil {
		return fmt.Errorf("encode save: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write save: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("replace save: %w", err)
	}
	return nil
}

// Load reads the player record.
func (s *Store) Load(ctx context.Context, curve progression.Curve) (*progression.Player, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	data, err := os.ReadFile(s.path)
	s.mu.Unlock()
	if errors.Is(err, fs.ErrNotExist) {
		return nil, storage.ErrNoSave
	}
	if err != nil {
		return nil, fmt.Errorf("read save: %w", err)
	}

	var record progression.Record
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", storage.ErrCorruptSave, s.path, err)
	}
	return storage.DecodeRecord(record, curve)
}

// Close is a no-op; the file is not held open between saves.
func (s *Store) Close() error {
	return nil
}
