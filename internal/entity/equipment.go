package entity

// Equipment holds at most one item per slot.
type Equipment struct {
	Weapon *Item `json:"weapon,omitempty"`
	Shield *Item `json:"shield,omitempty"`
}

// Equip places a copy of item into its slot, replacing whatever was there.
// The replaced item is returned, or nil if the slot was empty.
func (e *Equipment) Equip(item Item) *Item {
	equipped := item
	var previous *Item
	switch item.Slot {
	case SlotWeapon:
		previous = e.Weapon
		e.Weapon = &equipped
	case SlotShield:
		previous = e.Shield
		e.Shield = &equipped
	}
	return previous
}

// InSlot returns the item equipped in slot, or nil.
func (e Equipment) InSlot(slot Slot) *Item {
	switch slot {
	case SlotWeapon:
		return e.Weapon
	case SlotShield:
		return e.Shield
	default:
		return nil
	}
}

// DamageBonus returns the weapon's damage bonus, or 0 without a weapon.
func (e Equipment) DamageBonus() int {
	if e.Weapon == nil {
		return 0
	}
	return e.Weapon.DamageBonus
}

// DefenceBonus returns the shield's defence bonus, or 0 without a shield.
func (e Equipment) DefenceBonus() int {
	if e.Shield == nil {
		return 0
	}
	return e.Shield.DefenceBonus
}

// Clone returns a deep copy so a snapshot never aliases its source.
func (e Equipment) Clone() Equipment {
	var out Equipment
	if e.Weapon != nil {
		w := *e.Weapon
		out.Weapon = &w
	}
	if e.Shield != nil {
		s := *e.Shield
		out.Shield = &s
	}
	return out
}
