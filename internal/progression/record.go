package progression

import (
	"errors"
	"fmt"

	"github.com/samdwyer/termquest/internal/entity"
)

// ErrInvalidRecord is returned when a record violates player invariants.
var ErrInvalidRecord = errors.New("invalid player record")

// Record is the serialized form of a Player.
// Derived stats are written for readability and recomputed from the curve on load.
type Record struct {
	Name       string           `json:"name"`
	Level      int              `json:"level"`
	XP         int              `json:"xp"`
	NeededXP   int              `json:"neededXp"`
	BaseHealth int              `json:"baseHealth"`
	BaseDamage int              `json:"baseDamage"`
	Coins      int              `json:"coins"`
	Equipment  entity.Equipment `json:"equipment"`
}

// Record snapshots the player for persistence.
func (p *Player) Record() Record {
	return Record{
		Name:       p.name,
		Level:      p.level,
		XP:         p.xp,
		NeededXP:   p.neededXP,
		BaseHealth: p.baseHealth,
		BaseDamage: p.baseDamage,
		Coins:      p.coins,
		Equipment:  p.equipment.Clone(),
	}
}

// FromRecord rebuilds a player from a record on the given curve.
func FromRecord(r Record, curve Curve) (*Player, error) {
	if r.Level < 1 {
		return nil, fmt.Errorf("%w: level %d", ErrInvalidRecord, r.Level)
	}
	if r.XP < 0 {
		return nil, fmt.Errorf("%w: xp %d", ErrInvalidRecord, r.XP)
	}
	if r.Coins < 0 {
		return nil, fmt.Errorf("%w: coins %d", ErrInvalidRecord, r.Coins)
	}
	if w := r.Equipment.Weapon; w != nil && w.Slot != entity.SlotWeapon {
		return nil, fmt.Errorf("%w: %s in weapon slot", ErrInvalidRecord, w.Name)
	}
	if s := r.Equipment.Shield; s != nil && s.Slot != entity.SlotShield {
		return nil, fmt.Errorf("%w: %s in shield slot", ErrInvalidRecord, s.Name)
	}
	for _, item := range []*entity.Item{r.Equipment.Weapon, r.Equipment.Shield} {
		if item == nil {
			continue
		}
		if err := item.Validate(); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidRecord, err)
		}
	}

	p := &Player{
		name:      r.Name,
		level:     r.Level,
		xp:        r.XP,
		coins:     r.Coins,
		equipment: r.Equipment.Clone(),
		curve:     curve,
	}
	if p.name == "" {
		p.name = DefaultName
	}
	p.recompute()
	if p.xp >= p.neededXP {
		return nil, fmt.Errorf("%w: xp %d not below needed %d", ErrInvalidRecord, p.xp, p.neededXP)
	}
	return p, nil
}
