package jsonfile

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/samdwyer/termquest/internal/entity"
	"github.com/samdwyer/termquest/internal/progression"
	"github.com/samdwyer/termquest/internal/storage"
)

func TestLoadWithoutSave(t *testing.T) {
	s, err := Open(filepath.Join(t.TempDir(), "nested", "save.json"))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}

	_, err = s.Load(context.Background(), progression.DefaultCurve())
	if !errors.Is(err, storage.ErrNoSave) {
		t.Fatalf("Load() error = %v, want ErrNoSave", err)
	}
}

func TestSaveAndLoad(t *testing.T) {
	s, err := Open(filepath.Join(t.TempDir(), "save.json"))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	ctx := context.Background()

	p := progression.NewPlayer(progression.DefaultCurve())
	p.SetName("Ada")
	p.AddXP(1447, nil)
	p.AddCoins(30)
	if err := p.Purchase(entity.Item{Name: "Sword", Slot: entity.SlotWeapon, Cost: 10, DamageBonus: 10}); err != nil {
		t.Fatal(err)
	}

	if err := s.Save(ctx, p); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	loaded, err := s.Load(ctx, progression.DefaultCurve())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if loaded.Name() != "Ada" || loaded.Level() != 5 || loaded.XP() != 7 || loaded.Coins() != 20 {
		t.Errorf("loaded = %+v, want %+v", loaded.Record(), p.Record())
	}
	if w := loaded.Equipment().Weapon; w == nil || w.Name != "Sword" || w.DamageBonus != 10 {
		t.Errorf("Weapon = %+v, want Sword +10", w)
	}

	if _, err := os.Stat(s.Path() + ".tmp"); !os.IsNotExist(err) {
		t.Errorf("temp file left behind: %v", err)
	}
}

func TestLoadCorrupt(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"not json", "{level: 3"},
		{"invalid level", `{"name": "Ada", "level": 0}`},
		{"xp over threshold", `{"name": "Ada", "level": 1, "xp": 500}`},
		{"unknown slot", `{"name": "Ada", "level": 1, "equipment": {"weapon": {"name": "Axe", "slot": "helmet"}}}`},
		{"negative weapon bonus", `{"name": "Ada", "level": 1, "equipment": {"weapon": {"name": "Stick", "slot": "weapon", "cost": -10, "damageBonus": -500}}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "save.json")
			if err := os.WriteFile(path, []byte(tt.content), 0o644); err != nil {
				t.Fatal(err)
			}
			s, err := Open(path)
			if err != nil {
				t.Fatalf("Open() error = %v", err)
			}

			_, err = s.Load(context.Background(), progression.DefaultCurve())
			if !errors.Is(err, storage.ErrCorruptSave) {
				t.Errorf("Load() error = %v, want ErrCorruptSave", err)
			}
		})
	}
}

func TestOpenRequiresPath(t *testing.T) {
	if _, err := Open("  "); err == nil {
		t.Error("Open() with blank path succeeded")
	}
}
