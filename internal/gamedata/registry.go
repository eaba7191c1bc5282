package gamedata

import (
	"math/rand"

	"github.com/samdwyer/termquest/internal/entity"
)

// EnemyRegistry holds loaded enemy definitions and provides spawning utilities.
type EnemyRegistry struct {
	enemies     []EnemyDef
	items       *ItemRegistry
	totalWeight int
}

// NewEnemyRegistry creates a registry from loaded enemy definitions.
// items resolves the enemies' weapon and shield IDs.
func NewEnemyRegistry(enemies []EnemyDef, items *ItemRegistry) *EnemyRegistry {
	totalWeight := 0
	for _, e := range enemies {
		totalWeight += e.SpawnWeight
	}
	return &EnemyRegistry{
		enemies:     enemies,
		items:       items,
		totalWeight: totalWeight,
	}
}

// SpawnRandom selects a random enemy definition using weighted probability.
// Enemies with higher spawnWeight are more likely to be selected.
func (r *EnemyRegistry) SpawnRandom(rng *rand.Rand) *EnemyDef {
	if len(r.enemies) == 0 {
		return nil
	}
	if r.totalWeight <= 0 {
		return &r.enemies[rng.Intn(len(r.enemies))]
	}

	// Pick a random value in the total weight range
	roll := rng.Intn(r.totalWeight)

	// Find which enemy this roll corresponds to
	cumulative := 0
	for i := range r.enemies {
		cumulative += r.enemies[i].SpawnWeight
		if roll < cumulative {
			return &r.enemies[i]
		}
	}

	return &r.enemies[0]
}

// Equipment resolves an enemy's item references.
func (r *EnemyRegistry) Equipment(def *EnemyDef) entity.Equipment {
	var eq entity.Equipment
	if r.items == nil || def == nil {
		return eq
	}
	for _, id := range []string{def.Weapon, def.Shield} {
		if id == "" {
			continue
		}
		if item, ok := r.items.GetByID(id); ok {
			eq.Equip(item)
		}
	}
	return eq
}

// Count returns the number of enemy types in the registry.
func (r *EnemyRegistry) Count() int {
	return len(r.enemies)
}

// =============================================================================
// ItemRegistry
// =============================================================================

// ItemRegistry holds item definitions and the shop's stock order.
type ItemRegistry struct {
	items map[string]entity.Item
	shop  []string
}

// NewItemRegistry creates a registry from loaded item definitions.
// Definitions that fail to convert are skipped; LoadCatalog rejects them first.
func NewItemRegistry(defs []ItemDef, shop []string) *ItemRegistry {
	registry := &ItemRegistry{
		items: make(map[string]entity.Item, len(defs)),
		shop:  shop,
	}
	for _, d := range defs {
		item, err := d.Item()
		if err != nil {
			continue
		}
		registry.items[d.ID] = item
	}
	return registry
}

// GetByID returns the item with the given ID.
func (r *ItemRegistry) GetByID(id string) (entity.Item, bool) {
	item, ok := r.items[id]
	return item, ok
}

// Stock returns the shop items in display order. Unknown IDs are skipped.
func (r *ItemRegistry) Stock() []entity.Item {
	stock := make([]entity.Item, 0, len(r.shop))
	for _, id := range r.shop {
		if item, ok := r.items[id]; ok {
			stock = append(stock, item)
		}
	}
	return stock
}

// Count returns the number of known items.
func (r *ItemRegistry) Count() int {
	return len(r.items)
}

// Registries builds the item and enemy registries for a catalog.
func (c *Catalog) Registries() (*ItemRegistry, *EnemyRegistry) {
	items := NewItemRegistry(c.Items, c.Shop)
	return items, NewEnemyRegistry(c.Enemies, items)
}
