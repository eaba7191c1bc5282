package progression

import (
	"errors"
	"fmt"

	"github.com/samdwyer/termquest/internal/entity"
)

// LevelUpMessage is queued once per AddXP call that gains at least one level.
const LevelUpMessage = "Level up!"

// DefaultName is used until the player picks one.
const DefaultName = "Player"

// ErrInsufficientCoins is returned when a payment exceeds the balance.
var ErrInsufficientCoins = errors.New("insufficient coins")

// Notifier receives player-facing notifications. *message.Queue satisfies it.
type Notifier interface {
	Enqueue(text string)
}

// Player is the long-lived progression state.
// Invariant: xp < neededXP after every mutation.
type Player struct {
	name       string
	level      int
	xp         int
	neededXP   int
	baseHealth int
	baseDamage int
	coins      int
	equipment  entity.Equipment
	curve      Curve
}

// NewPlayer creates a fresh level 1 player on the given curve.
func NewPlayer(curve Curve) *Player {
	p := &Player{
		name:  DefaultName,
		level: 1,
		curve: curve,
	}
	p.recompute()
	return p
}

func (p *Player) recompute() {
	p.baseHealth, p.baseDamage = p.curve.Stats(p.level)
	p.neededXP = p.curve.NeededXP(p.level)
}

// Name returns the player's name.
func (p *Player) Name() string { return p.name }

// SetName renames the player.
func (p *Player) SetName(name string) { p.name = name }

// Level returns the current level.
func (p *Player) Level() int { return p.level }

// XP returns experience accumulated toward the next level.
func (p *Player) XP() int { return p.xp }

// NeededXP returns the experience required for the next level.
func (p *Player) NeededXP() int { return p.neededXP }

// Health returns base health for the current level.
func (p *Player) Health() int { return p.baseHealth }

// Damage returns base damage for the current level.
func (p *Player) Damage() int { return p.baseDamage }

// Coins returns the coin balance.
func (p *Player) Coins() int { return p.coins }

// Equipment returns a copy of the equipped items.
func (p *Player) Equipment() entity.Equipment { return p.equipment.Clone() }

// AddXP adds experience, levelling up as many times as the total allows.
// Overflow carries into the next level. If any level was gained, one
// LevelUpMessage is sent to notify (which may be nil). Returns levels gained.
func (p *Player) AddXP(amount int, notify Notifier) int {
	if amount <= 0 {
		return 0
	}
	p.xp += amount
	gained := 0
	for p.xp >= p.neededXP {
		p.xp -= p.neededXP
		p.level++
		gained++
		p.recompute()
	}
	if gained > 0 && notify != nil {
		notify.Enqueue(LevelUpMessage)
	}
	return gained
}

// AddCoins increases the balance.
func (p *Player) AddCoins(amount int) {
	if amount <= 0 {
		return
	}
	p.coins += amount
}

// RemoveCoins decreases the balance. Removing more than the balance is rejected
// with ErrInsufficientCoins and leaves the balance unchanged.
func (p *Player) RemoveCoins(amount int) error {
	if amount < 0 {
		return fmt.Errorf("remove coins: negative amount %d", amount)
	}
	if amount > p.coins {
		return fmt.Errorf("remove %d coins from balance %d: %w", amount, p.coins, ErrInsufficientCoins)
	}
	p.coins -= amount
	return nil
}

// Purchase pays for item and equips it, replacing whatever held its slot.
// On ErrInsufficientCoins nothing changes.
func (p *Player) Purchase(item entity.Item) error {
	if err := p.RemoveCoins(item.Cost); err != nil {
		return err
	}
	p.equipment.Equip(item)
	return nil
}

// Participant takes a combat snapshot of the player.
func (p *Player) Participant() *entity.Participant {
	return entity.NewParticipant(p.name, p.baseHealth, p.baseDamage, p.equipment)
}
