// Package combat provides the turn-based battle engine for termquest.
package combat

import (
	"errors"

	"github.com/samdwyer/termquest/internal/entity"
)

// ErrBattleFinished is returned when a turn is requested after the outcome is set.
var ErrBattleFinished = errors.New("battle already finished")

// Side identifies one of the two participants.
type Side int

const (
	SidePlayer Side = iota
	SideEnemy
)

// String returns a human-readable side name.
func (s Side) String() string {
	switch s {
	case SidePlayer:
		return "player"
	case SideEnemy:
		return "enemy"
	default:
		return "unknown"
	}
}

// Other returns the opposing side.
func (s Side) Other() Side {
	if s == SidePlayer {
		return SideEnemy
	}
	return SidePlayer
}

// Outcome is the terminal result of a battle.
type Outcome struct {
	Winner         Side
	SurvivorHealth int
}

// PlayerWon reports whether the player side won.
func (o Outcome) PlayerWon() bool { return o.Winner == SidePlayer }

// TurnResult describes what a single resolved turn did.
type TurnResult struct {
	Attacker Side
	Damage   int  // Mitigated damage dealt (0 if fully absorbed)
	Lethal   bool // True if this turn ended the battle
}

// Battle holds both participants and the turn state machine.
// States are InProgress(Turn) while Outcome is nil, and Finished once it is set.
type Battle struct {
	Player  *entity.Participant
	Enemy   *entity.Participant
	Turn    Side
	Outcome *Outcome
	Turns   int
}

// NewBattle creates a battle in its initial state: in progress, player to act.
func NewBattle(player, enemy *entity.Participant) *Battle {
	return &Battle{
		Player: player,
		Enemy:  enemy,
		Turn:   SidePlayer,
	}
}

// Finished reports whether the battle has reached its terminal state.
func (b *Battle) Finished() bool { return b.Outcome != nil }

// Participant returns the participant on the given side.
func (b *Battle) Participant(side Side) *entity.Participant {
	if side == SidePlayer {
		return b.Player
	}
	return b.Enemy
}

// MitigatedDamage computes the damage attacker would deal to defender:
// raw damage minus the defender's shield bonus, never below zero.
func MitigatedDamage(attacker, defender *entity.Participant) int {
	return Mitigate(attacker.RawDamage(), defender.Defence())
}

// Mitigate returns max(raw-defence, 0).
func Mitigate(raw, defence int) int {
	if raw <= defence {
		return 0
	}
	return raw - defence
}

// ResolveTurn resolves one attack by the side whose turn it is.
//
// A lethal hit clamps the defender to zero health and sets the outcome with the
// attacker's remaining health; the turn marker stays on the winner. Any other
// hit, including one fully absorbed by a shield, passes the turn.
func (b *Battle) ResolveTurn() (TurnResult, error) {
	if b.Finished() {
		return TurnResult{}, ErrBattleFinished
	}

	attacker := b.Participant(b.Turn)
	defender := b.Participant(b.Turn.Other())
	result := TurnResult{Attacker: b.Turn}

	mitigated := MitigatedDamage(attacker, defender)
	if mitigated > 0 {
		if defender.Health <= mitigated {
			result.Damage = defender.TakeDamage(defender.Health)
			result.Lethal = true
			b.Outcome = &Outcome{
				Winner:         b.Turn,
				SurvivorHealth: attacker.Health,
			}
			b.Turns++
			return result, nil
		}
		result.Damage = defender.TakeDamage(mitigated)
	}

	b.Turns++
	b.Turn = b.Turn.Other()
	return result, nil
}

// Stalemate reports whether neither side can ever damage the other.
func (b *Battle) Stalemate() bool {
	return MitigatedDamage(b.Player, b.Enemy) == 0 && MitigatedDamage(b.Enemy, b.Player) == 0
}
