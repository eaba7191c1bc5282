package gamedata

import (
	"errors"
	"fmt"

	"github.com/samdwyer/termquest/internal/entity"
	"github.com/samdwyer/termquest/internal/progression"
)

// CatalogFile is the embedded file holding all static game data.
const CatalogFile = "catalog.yaml"

// Reward is the experience and coins granted after a battle.
type Reward struct {
	XP    int `yaml:"xp"`
	Coins int `yaml:"coins"`
}

// ItemDef defines a purchasable item.
type ItemDef struct {
	ID           string `yaml:"id"`
	Name         string `yaml:"name"`
	Slot         string `yaml:"slot"` // "weapon" or "shield"
	Cost         int    `yaml:"cost"`
	DamageBonus  int    `yaml:"damageBonus"`
	DefenceBonus int    `yaml:"defenceBonus"`
}

// Item converts the definition into an equipment item.
func (d ItemDef) Item() (entity.Item, error) {
	slot, ok := entity.ParseSlot(d.Slot)
	if !ok {
		return entity.Item{}, fmt.Errorf("item %s: unknown slot %q", d.ID, d.Slot)
	}
	item := entity.Item{
		Name:         d.Name,
		Slot:         slot,
		Cost:         d.Cost,
		DamageBonus:  d.DamageBonus,
		DefenceBonus: d.DefenceBonus,
	}
	if err := item.Validate(); err != nil {
		return entity.Item{}, fmt.Errorf("item %s: %w", d.ID, err)
	}
	return item, nil
}

// EnemyDef defines a fixed-stat enemy.
type EnemyDef struct {
	ID          string `yaml:"id"`          // Unique identifier (e.g., "bebra")
	Name        string `yaml:"name"`        // Display name
	Color       string `yaml:"color"`       // Hex color code (e.g., "#FF5555")
	Health      int    `yaml:"health"`      // Starting health
	Damage      int    `yaml:"damage"`      // Base damage
	Weapon      string `yaml:"weapon"`      // Optional item ID
	Shield      string `yaml:"shield"`      // Optional item ID
	SpawnWeight int    `yaml:"spawnWeight"` // Relative spawn frequency (higher = more common)
	Reward      Reward `yaml:"reward"`      // Granted on victory
}

// Catalog represents the structure of catalog.yaml.
type Catalog struct {
	Curve        progression.Curve `yaml:"progression"`
	DefeatReward Reward            `yaml:"defeatReward"`
	Items        []ItemDef         `yaml:"items"`
	Shop         []string          `yaml:"shop"` // Item IDs in display order
	Enemies      []EnemyDef        `yaml:"enemies"`
}

// LoadCatalog loads and validates the embedded catalog.
func LoadCatalog() (*Catalog, error) {
	c, err := Load[Catalog](CatalogFile)
	if err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", CatalogFile, err)
	}
	return &c, nil
}

// MustLoadCatalog loads the catalog, panicking on error.
func MustLoadCatalog() *Catalog {
	c, err := LoadCatalog()
	if err != nil {
		panic(err)
	}
	return c
}

// Validate checks cross references and value ranges.
func (c *Catalog) Validate() error {
	if err := c.Curve.Validate(); err != nil {
		return err
	}
	if len(c.Enemies) == 0 {
		return errors.New("no enemies defined")
	}
	items := make(map[string]ItemDef, len(c.Items))
	for _, d := range c.Items {
		if _, err := d.Item(); err != nil {
			return err
		}
		items[d.ID] = d
	}
	for _, id := range c.Shop {
		if _, ok := items[id]; !ok {
			return fmt.Errorf("shop lists unknown item %q", id)
		}
	}
	for _, e := range c.Enemies {
		if e.Health <= 0 || e.Damage < 0 {
			return fmt.Errorf("enemy %s: health must be positive and damage non-negative", e.ID)
		}
		if e.Color != "" {
			if _, err := ParseHexColor(e.Color); err != nil {
				return fmt.Errorf("enemy %s: %w", e.ID, err)
			}
		}
		for _, ref := range []struct{ id, slot string }{{e.Weapon, "weapon"}, {e.Shield, "shield"}} {
			if ref.id == "" {
				continue
			}
			d, ok := items[ref.id]
			if !ok {
				return fmt.Errorf("enemy %s: unknown %s %q", e.ID, ref.slot, ref.id)
			}
			if d.Slot != ref.slot {
				return fmt.Errorf("enemy %s: %q is not a %s", e.ID, ref.id, ref.slot)
			}
		}
	}
	return nil
}
