// Package entity provides combat participants and the equipment they carry.
package entity

import "fmt"

// Slot represents the equipment slot an item occupies.
type Slot int

const (
	SlotWeapon Slot = iota
	SlotShield
)

// String returns the slot name.
func (s Slot) String() string {
	switch s {
	case SlotWeapon:
		return "weapon"
	case SlotShield:
		return "shield"
	default:
		return "unknown"
	}
}

// ParseSlot converts a slot name to a Slot.
func ParseSlot(name string) (Slot, bool) {
	switch name {
	case "weapon":
		return SlotWeapon, true
	case "shield":
		return SlotShield, true
	default:
		return 0, false
	}
}

// MarshalText encodes the slot by name so saves stay readable.
func (s Slot) MarshalText() ([]byte, error) {
	if s != SlotWeapon && s != SlotShield {
		return nil, fmt.Errorf("invalid slot %d", int(s))
	}
	return []byte(s.String()), nil
}

// UnmarshalText decodes a slot name.
func (s *Slot) UnmarshalText(text []byte) error {
	parsed, ok := ParseSlot(string(text))
	if !ok {
		return fmt.Errorf("invalid slot %q", string(text))
	}
	*s = parsed
	return nil
}

// Item is an immutable weapon or shield description.
type Item struct {
	Name         string `json:"name"`
	Slot         Slot   `json:"slot"`
	Cost         int    `json:"cost"`
	DamageBonus  int    `json:"damageBonus"`
	DefenceBonus int    `json:"defenceBonus"`
}

// Validate reports an error if the item's cost or bonuses are negative.
func (i Item) Validate() error {
	if i.Cost < 0 || i.DamageBonus < 0 || i.DefenceBonus < 0 {
		return fmt.Errorf("%s: negative cost or bonus", i.Name)
	}
	return nil
}
