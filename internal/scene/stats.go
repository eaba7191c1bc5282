package scene

import (
	"fmt"
	"strings"

	"github.com/samdwyer/termquest/internal/entity"
	"github.com/samdwyer/termquest/internal/input"
	"github.com/samdwyer/termquest/internal/view"
)

// XPBarWidth is the number of cells in the experience bar.
const XPBarWidth = 10

// Stats is the main menu: it shows the player and leads to every other scene.
type Stats struct {
	deps Deps
}

// NewStats creates the stats scene.
func NewStats(deps Deps) *Stats {
	return &Stats{deps: deps}
}

func (*Stats) ID() ID { return StatsID }
func (*Stats) scene() {}

// HandleInput maps menu keys to scene requests.
func (st *Stats) HandleInput(ev input.Event, s *Session) {
	if ev.Key != input.KeyRune {
		return
	}
	switch ev.Rune {
	case 't', 'b':
		def := st.deps.Enemies.SpawnRandom(st.deps.Rand)
		if def == nil {
			return
		}
		s.Request(BattleID, ToBattle{Enemy: EnemyStats{
			ID:        def.ID,
			Name:      def.Name,
			Color:     def.Color,
			Health:    def.Health,
			Damage:    def.Damage,
			Equipment: st.deps.Enemies.Equipment(def),
			Reward:    def.Reward,
		}})
	case 's':
		s.Request(ShopID, nil)
	case 'n':
		s.Request(NameEntryID, nil)
	}
}

// XPBar renders progress toward the next level as a fixed-width bar.
func XPBar(xp, needed, width int) (filled, empty string) {
	n := 0
	if needed > 0 {
		n = xp * width / needed
	}
	n = min(max(n, 0), width)
	return strings.Repeat("#", n), strings.Repeat(".", width-n)
}

// Render shows the player's progression and the key help.
func (st *Stats) Render(s *Session) view.Model {
	p := s.Player
	filled, empty := XPBar(p.XP(), p.NeededXP(), XPBarWidth)
	eq := p.Equipment()

	return view.Model{
		Title: "Stats",
		Lines: []view.Line{
			{{Text: "Name: "}, {Text: p.Name(), Style: view.StyleBold}},
			{{Text: "Health: "}, {Text: fmt.Sprintf("%d", p.Health()), Style: view.StyleHealth}},
			{{Text: "Damage: "}, {Text: fmt.Sprintf("%d", p.Damage()), Style: view.StyleDamage}},
			{{Text: "Level: "}, {Text: fmt.Sprintf("%d", p.Level()), Style: view.StyleLevel}},
			{
				{Text: "["},
				{Text: filled, Style: view.StyleXP},
				{Text: empty, Style: view.StyleXPMissing},
				{Text: fmt.Sprintf("] %d/%d XP", p.XP(), p.NeededXP())},
			},
			{{Text: "Coins: "}, {Text: fmt.Sprintf("%dc", p.Coins()), Style: view.StyleCoins}},
			view.Text(""),
			equipmentLine(eq, entity.SlotWeapon),
			equipmentLine(eq, entity.SlotShield),
			view.Text(""),
			view.Styled("t: battle  s: shop  n: rename  q: quit", view.StyleMuted),
		},
	}
}

var equipmentSlots = []entity.Slot{entity.SlotWeapon, entity.SlotShield}

func equipmentLine(eq entity.Equipment, slot entity.Slot) view.Line {
	label := "Weapon"
	if slot == entity.SlotShield {
		label = "Shield"
	}
	item := eq.InSlot(slot)
	if item == nil {
		return view.Line{{Text: label + ": "}, {Text: "none", Style: view.StyleMuted}}
	}
	return view.Line{{Text: label + ": "}, {Text: itemLabel(*item), Style: view.StyleBold}}
}

// itemLabel names an item with its bonus, e.g. "Sword (+10 dmg)".
func itemLabel(item entity.Item) string {
	switch item.Slot {
	case entity.SlotWeapon:
		return fmt.Sprintf("%s (+%d dmg)", item.Name, item.DamageBonus)
	case entity.SlotShield:
		return fmt.Sprintf("%s (+%d def)", item.Name, item.DefenceBonus)
	default:
		return item.Name
	}
}
