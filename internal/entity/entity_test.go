package entity

import "testing"

func TestSlotString(t *testing.T) {
	tests := []struct {
		slot     Slot
		expected string
	}{
		{SlotWeapon, "weapon"},
		{SlotShield, "shield"},
		{Slot(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.slot.String(); got != tt.expected {
			t.Errorf("Slot(%d).String() = %q, want %q", tt.slot, got, tt.expected)
		}
		if tt.expected == "unknown" {
			continue
		}
		parsed, ok := ParseSlot(tt.expected)
		if !ok || parsed != tt.slot {
			t.Errorf("ParseSlot(%q) = %v, %v; want %v, true", tt.expected, parsed, ok, tt.slot)
		}
	}

	if _, ok := ParseSlot("helmet"); ok {
		t.Error("ParseSlot(\"helmet\") should fail")
	}
}

func TestEquipReplacesSlot(t *testing.T) {
	var eq Equipment

	old := eq.Equip(Item{Name: "Stick", Slot: SlotWeapon, DamageBonus: 2})
	if old != nil {
		t.Errorf("Equip into empty slot returned %v, want nil", old)
	}

	old = eq.Equip(Item{Name: "Sword", Slot: SlotWeapon, DamageBonus: 10})
	if old == nil || old.Name != "Stick" {
		t.Errorf("Equip should return replaced Stick, got %v", old)
	}
	if eq.Weapon.Name != "Sword" {
		t.Errorf("Weapon = %q, want Sword", eq.Weapon.Name)
	}
	if eq.Shield != nil {
		t.Error("Equipping a weapon should not touch the shield slot")
	}
	if eq.DamageBonus() != 10 {
		t.Errorf("DamageBonus() = %d, want 10", eq.DamageBonus())
	}
	if eq.DefenceBonus() != 0 {
		t.Errorf("DefenceBonus() = %d, want 0", eq.DefenceBonus())
	}
}

func TestParticipantSnapshotDoesNotAlias(t *testing.T) {
	var eq Equipment
	eq.Equip(Item{Name: "Shield", Slot: SlotShield, DefenceBonus: 26})

	p := NewParticipant("Hero", 130, 12, eq)
	eq.Shield.DefenceBonus = 0

	if p.Defence() != 26 {
		t.Errorf("participant defence = %d, want 26 after source mutation", p.Defence())
	}
}

func TestParticipantTakeDamage(t *testing.T) {
	p := NewParticipant("Goblin", 20, 5, Equipment{})

	if got := p.TakeDamage(8); got != 8 {
		t.Errorf("TakeDamage(8) = %d, want 8", got)
	}
	if got := p.TakeDamage(0); got != 0 {
		t.Errorf("TakeDamage(0) = %d, want 0", got)
	}
	if got := p.TakeDamage(100); got != 12 {
		t.Errorf("TakeDamage(100) = %d, want 12", got)
	}
	if p.Health != 0 || p.IsAlive() {
		t.Errorf("Health = %d, want 0 and dead", p.Health)
	}
}

func TestParticipantRawDamage(t *testing.T) {
	var eq Equipment
	eq.Equip(Item{Name: "Sword", Slot: SlotWeapon, DamageBonus: 10})
	p := NewParticipant("Hero", 130, 12, eq)

	if p.RawDamage() != 22 {
		t.Errorf("RawDamage() = %d, want 22", p.RawDamage())
	}
}

func TestItemValidate(t *testing.T) {
	tests := []struct {
		name    string
		item    Item
		wantErr bool
	}{
		{"valid", Item{Name: "Sword", Slot: SlotWeapon, Cost: 10, DamageBonus: 10}, false},
		{"free", Item{Name: "Stick", Slot: SlotWeapon}, false},
		{"negative cost", Item{Name: "Sword", Slot: SlotWeapon, Cost: -10}, true},
		{"negative damage", Item{Name: "Sword", Slot: SlotWeapon, DamageBonus: -1}, true},
		{"negative defence", Item{Name: "Shield", Slot: SlotShield, DefenceBonus: -1}, true},
	}

	for _, tt := range tests {
		err := tt.item.Validate()
		if (err != nil) != tt.wantErr {
			t.Errorf("%s: Validate() error = %v, wantErr %v", tt.name, err, tt.wantErr)
		}
	}
}

func TestEquipmentInSlot(t *testing.T) {
	var eq Equipment
	if eq.InSlot(SlotWeapon) != nil || eq.InSlot(SlotShield) != nil {
		t.Fatal("empty equipment reports items")
	}

	eq.Equip(Item{Name: "Sword", Slot: SlotWeapon, DamageBonus: 10})
	if w := eq.InSlot(SlotWeapon); w == nil || w.Name != "Sword" {
		t.Errorf("InSlot(weapon) = %v, want Sword", w)
	}
	if eq.InSlot(SlotShield) != nil {
		t.Error("InSlot(shield) should be empty")
	}
	if eq.InSlot(Slot(99)) != nil {
		t.Error("InSlot(unknown) should be nil")
	}
}
