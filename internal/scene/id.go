// Package scene implements the application modes and the manager that moves between them.
package scene

// ID identifies a scene variant.
type ID int

const (
	// NameEntryID is where the player types a new name.
	NameEntryID ID = iota
	// StatsID is the main menu showing the player's progression.
	StatsID
	// BattleID is the turn-based fight against one enemy.
	BattleID
	// ShopID sells weapons and shields.
	ShopID
	// GainsID summarizes a finished battle.
	GainsID
)

// String returns a human-readable scene name.
func (id ID) String() string {
	switch id {
	case NameEntryID:
		return "name_entry"
	case StatsID:
		return "stats"
	case BattleID:
		return "battle"
	case ShopID:
		return "shop"
	case GainsID:
		return "gains"
	default:
		return "unknown"
	}
}
