// Package storage defines how player progression is persisted.
package storage

import (
	"context"
	"errors"

	"github.com/samdwyer/termquest/internal/progression"
)

var (
	// ErrNoSave is returned by Load when nothing was saved yet.
	ErrNoSave = errors.New("no save found")
	// ErrCorruptSave is returned by Load when a save exists but cannot be decoded.
	ErrCorruptSave = errors.New("save is corrupt")
)

// Store persists a single player record at a fixed location.
type Store interface {
	// Save replaces the stored record with p.
	Save(ctx context.Context, p *progression.Player) error
	// Load rebuilds the stored player on curve. It returns ErrNoSave when
	// nothing was saved yet and ErrCorruptSave when the record is unreadable.
	Load(ctx context.Context, curve progression.Curve) (*progression.Player, error)
	// Close releases the store's resources.
	Close() error
}

// Backend names a Store implementation.
type Backend string

const (
	BackendFile   Backend = "file"
	BackendSQLite Backend = "sqlite"
)

// ParseBackend validates a backend name.
func ParseBackend(name string) (Backend, bool) {
	switch b := Backend(name); b {
	case BackendFile, BackendSQLite:
		return b, true
	default:
		return "", false
	}
}

// DecodeRecord turns a stored record into a player, mapping invalid records to
// ErrCorruptSave.
func DecodeRecord(r progression.Record, curve progression.Curve) (*progression.Player, error) {
	p, err := progression.FromRecord(r, curve)
	if err != nil {
		return nil, errors.Join(ErrCorruptSave, err)
	}
	return p, nil
}
