package scene

import (
	"math/rand"

	"github.com/samdwyer/termquest/internal/gamedata"
)

// Scene is one of the fixed set of scene variants: *NameEntry, *Stats,
// *Battle, *Gains and *Shop. The Manager switches on the concrete type.
type Scene interface {
	ID() ID
	scene()
}

// Deps are the read-only collaborators scenes are built with.
type Deps struct {
	Items        *gamedata.ItemRegistry
	Enemies      *gamedata.EnemyRegistry
	DefeatReward gamedata.Reward
	Rand         *rand.Rand
}

// DepsFromCatalog builds Deps for a loaded catalog.
func DepsFromCatalog(c *gamedata.Catalog, rng *rand.Rand) Deps {
	items, enemies := c.Registries()
	return Deps{
		Items:        items,
		Enemies:      enemies,
		DefeatReward: c.DefeatReward,
		Rand:         rng,
	}
}
