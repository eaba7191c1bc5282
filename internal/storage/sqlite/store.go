// Package sqlite provides a SQLite-backed save store.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/samdwyer/termquest/internal/entity"
	"github.com/samdwyer/termquest/internal/progression"
	"github.com/samdwyer/termquest/internal/storage"
	"github.com/samdwyer/termquest/internal/storage/sqlite/migrations"
)

// Store persists the player in a single-row SQLite table.
type Store struct {
	sqlDB *sql.DB
	now   func() time.Time
}

var _ storage.Store = (*Store)(nil)

// Open opens a SQLite save store and applies the embedded schema.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	cleanPath := filepath.Clean(path)
	dsn := cleanPath + "?_journal_mode=WAL&_busy_timeout=5000&_synchronous=NORMAL"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := applyMigrations(sqlDB); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{sqlDB: sqlDB, now: time.Now}, nil
}

func applyMigrations(sqlDB *sql.DB) error {
	entries, err := fs.ReadDir(migrations.FS, ".")
	if err != nil {
		return fmt.Errorf("read migrations dir: %w", err)
	}
	var files []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".sql") {
			files = append(files, entry.Name())
		}
	}
	sort.Strings(files)

	for _, file := range files {
		content, err := fs.ReadFile(migrations.FS, file)
		if err != nil {
			return fmt.Errorf("read migration %s: %w", file, err)
		}
		if _, err := sqlDB.Exec(string(content)); err != nil {
			return fmt.Errorf("apply migration %s: %w", file, err)
		}
	}
	return nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// Save upserts the player row.
func (s *Store) Save(ctx context.Context, p *progression.Player) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	r := p.Record()
	equipment, err := json.Marshal(r.Equipment)
	if err != nil {
		return fmt.Errorf("encode equipment: %w", err)
	}

	_, err = s.sqlDB.ExecContext(
		ctx,
		`INSERT INTO player_save (id, name, level, xp, coins, equipment, updated_at)
		 VALUES (1, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
		   name = excluded.name,
		   level = excluded.level,
		   xp = excluded.xp,
		   coins = excluded.coins,
		   equipment = excluded.equipment,
		   updated_at = excluded.updated_at`,
		r.Name,
		r.Level,
		r.XP,
		r.Coins,
		string(equipment),
		s.now().UTC().UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("save player: %w", err)
	}
	return nil
}

// Load reads the player row.
func (s *Store) Load(ctx context.Context, curve progression.Curve) (*progression.Player, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}

	var (
		r                progression.Record
		name, equipment  any
		level, xp, coins any
	)
	err := s.sqlDB.QueryRowContext(
		ctx,
		`SELECT name, level, xp, coins, equipment FROM player_save WHERE id = 1`,
	).Scan(&name, &level, &xp, &coins, &equipment)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, storage.ErrNoSave
	}
	if err != nil {
		return nil, fmt.Errorf("load player: %w", err)
	}
	if r.Name, err = textColumn("name", name); err != nil {
		return nil, err
	}
	if r.Level, err = intColumn("level", level); err != nil {
		return nil, err
	}
	if r.XP, err = intColumn("xp", xp); err != nil {
		return nil, err
	}
	if r.Coins, err = intColumn("coins", coins); err != nil {
		return nil, err
	}

	rawEquipment, err := textColumn("equipment", equipment)
	if err != nil {
		return nil, err
	}
	var eq entity.Equipment
	if err := json.Unmarshal([]byte(rawEquipment), &eq); err != nil {
		return nil, fmt.Errorf("%w: equipment: %v", storage.ErrCorruptSave, err)
	}
	r.Equipment = eq
	return storage.DecodeRecord(r, curve)
}

// intColumn converts a scanned INTEGER value; anything else marks the row corrupt.
func intColumn(column string, v any) (int, error) {
	n, ok := v.(int64)
	if !ok {
		return 0, fmt.Errorf("%w: column %s holds %T", storage.ErrCorruptSave, column, v)
	}
	return int(n), nil
}

func textColumn(column string, v any) (string, error) {
	switch t := v.(type) {
	case string:
		return t, nil
	case []byte:
		return string(t), nil
	default:
		return "", fmt.Errorf("%w: column %s holds %T", storage.ErrCorruptSave, column, v)
	}
}
