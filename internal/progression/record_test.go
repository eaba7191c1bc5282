package progression

import (
	"errors"
	"testing"

	"github.com/samdwyer/termquest/internal/entity"
)

func TestRecordRoundTrip(t *testing.T) {
	p := NewPlayer(DefaultCurve())
	p.SetName("Ada")
	p.AddXP(250, nil)
	p.AddCoins(40)
	if err := p.Purchase(entity.Item{Name: "Shield", Slot: entity.SlotShield, Cost: 10, DefenceBonus: 26}); err != nil {
		t.Fatal(err)
	}

	loaded, err := FromRecord(p.Record(), DefaultCurve())
	if err != nil {
		t.Fatalf("FromRecord error: %v", err)
	}
	if loaded.Name() != "Ada" || loaded.Level() != 2 || loaded.XP() != 150 || loaded.Coins() != 30 {
		t.Errorf("loaded = %+v", loaded.Record())
	}
	if s := loaded.Equipment().Shield; s == nil || s.DefenceBonus != 26 {
		t.Errorf("Shield = %v, want 26 defence", s)
	}
}

func TestFromRecordRejectsInvalid(t *testing.T) {
	tests := []struct {
		name   string
		record Record
	}{
		{"zero level", Record{Name: "a", Level: 0}},
		{"negative xp", Record{Name: "a", Level: 1, XP: -1}},
		{"negative coins", Record{Name: "a", Level: 1, Coins: -1}},
		{"xp over threshold", Record{Name: "a", Level: 1, XP: 100}},
		{"shield in weapon slot", Record{Name: "a", Level: 1, Equipment: entity.Equipment{
			Weapon: &entity.Item{Name: "Buckler", Slot: entity.SlotShield},
		}}},
		{"negative weapon bonus", Record{Name: "a", Level: 1, Equipment: entity.Equipment{
			Weapon: &entity.Item{Name: "Stick", Slot: entity.SlotWeapon, Cost: -10, DamageBonus: -500},
		}}},
		{"negative shield defence", Record{Name: "a", Level: 1, Equipment: entity.Equipment{
			Shield: &entity.Item{Name: "Lid", Slot: entity.SlotShield, DefenceBonus: -1},
		}}},
	}

	for _, tt := range tests {
		_, err := FromRecord(tt.record, DefaultCurve())
		if !errors.Is(err, ErrInvalidRecord) {
			t.Errorf("%s: error = %v, want ErrInvalidRecord", tt.name, err)
		}
	}
}

func TestFromRecordDefaultsName(t *testing.T) {
	p, err := FromRecord(Record{Level: 3}, DefaultCurve())
	if err != nil {
		t.Fatal(err)
	}
	if p.Name() != DefaultName {
		t.Errorf("Name() = %q, want %q", p.Name(), DefaultName)
	}
	if p.NeededXP() != 420 {
		t.Errorf("NeededXP() = %d, want 420", p.NeededXP())
	}
}
