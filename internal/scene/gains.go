package scene

import (
	"fmt"

	"github.com/samdwyer/termquest/internal/input"
	"github.com/samdwyer/termquest/internal/view"
)

// Gains summarizes a finished battle until the player acknowledges it.
type Gains struct {
	summary Summary
}

// NewGains creates the summary scene for t.
func NewGains(t ToSummary) *Gains {
	return &Gains{summary: t.Summary}
}

func (*Gains) ID() ID { return GainsID }
func (*Gains) scene() {}

// Summary returns the battle result being shown.
func (g *Gains) Summary() Summary { return g.summary }

// HandleInput returns to Stats on Enter or Escape.
func (g *Gains) HandleInput(ev input.Event, s *Session) {
	if ev.Key == input.KeyEnter || ev.Key == input.KeyEscape {
		s.Request(StatsID, nil)
	}
}

// Render shows the outcome and the rewards gained.
func (g *Gains) Render(s *Session) view.Model {
	sum := g.summary
	headline := view.Styled(fmt.Sprintf("You defeated %s!", sum.EnemyName), view.StyleGain)
	if !sum.PlayerWon {
		headline = view.Styled(fmt.Sprintf("You were defeated by %s.", sum.EnemyName), view.StyleDamage)
	}
	lines := []view.Line{
		headline,
		view.Text(fmt.Sprintf("The fight lasted %d turns.", sum.Turns)),
		view.Text(""),
		{{Text: "Gained: "}, {Text: fmt.Sprintf("+%d XP", sum.XP), Style: view.StyleXP}},
		{{Text: "Gained: "}, {Text: fmt.Sprintf("+%dc", sum.Coins), Style: view.StyleCoins}},
	}
	if sum.LevelsGained > 0 {
		lines = append(lines, view.Line{
			{Text: "Reached level "},
			{Text: fmt.Sprintf("%d", s.Player.Level()), Style: view.StyleLevel},
		})
	}
	lines = append(lines, view.Text(""), view.Styled("Enter to continue", view.StyleMuted))
	return view.Model{Title: "Gains", Lines: lines}
}
