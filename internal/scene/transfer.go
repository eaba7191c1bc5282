package scene

import (
	"github.com/samdwyer/termquest/internal/entity"
	"github.com/samdwyer/termquest/internal/gamedata"
)

// Transfer is data handed from one scene to the next scene's constructor.
// The set of variants is closed: ToBattle and ToSummary.
type Transfer interface {
	transfer()
	// Shape names the variant for diagnostics.
	Shape() string
}

// EnemyStats are the fixed stats of the enemy to fight.
type EnemyStats struct {
	ID        string
	Name      string
	Color     string
	Health    int
	Damage    int
	Equipment entity.Equipment
	Reward    gamedata.Reward
}

// ToBattle carries the chosen enemy from Stats to Battle.
type ToBattle struct {
	Enemy EnemyStats
}

func (ToBattle) transfer() {}

// Shape implements Transfer.
func (ToBattle) Shape() string { return "ToBattle" }

// Summary is the result of a finished battle after rewards were applied.
type Summary struct {
	PlayerWon      bool
	EnemyName      string
	SurvivorHealth int
	XP             int
	Coins          int
	LevelsGained   int
	Turns          int
}

// ToSummary carries a battle result from Battle to Gains.
type ToSummary struct {
	Summary Summary
}

func (ToSummary) transfer() {}

// Shape implements Transfer.
func (ToSummary) Shape() string { return "ToSummary" }
