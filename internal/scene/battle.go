package scene

import (
	"context"
	"fmt"
	"log"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/termquest/internal/combat"
	"github.com/samdwyer/termquest/internal/entity"
	"github.com/samdwyer/termquest/internal/gamedata"
	"github.com/samdwyer/termquest/internal/input"
	"github.com/samdwyer/termquest/internal/message"
	"github.com/samdwyer/termquest/internal/progression"
	"github.com/samdwyer/termquest/internal/telemetry"
	"github.com/samdwyer/termquest/internal/view"
)

// Battle runs one fight between the player and a single enemy.
// Every accepted key press resolves exactly one turn.
type Battle struct {
	battle      *combat.Battle
	enemy       EnemyStats
	defeat      gamedata.Reward
	lastMessage string
	settled     bool // Rewards applied and Gains requested
	queue       *message.Queue
}

// NewBattle starts a battle against the enemy carried by t. The player's
// participant is a snapshot; progression is only touched once the battle ends.
func NewBattle(ctx context.Context, s *Session, t ToBattle, defeat gamedata.Reward, queue *message.Queue) *Battle {
	player := s.Player.Participant()
	enemy := entity.NewParticipant(t.Enemy.Name, t.Enemy.Health, t.Enemy.Damage, t.Enemy.Equipment)

	tracer := telemetry.Tracer("battle")
	_, span := tracer.Start(ctx, "battle.start")
	span.SetAttributes(
		attribute.String("session.id", s.ID),
		attribute.String("enemy", t.Enemy.ID),
		attribute.Int("player.health", player.Health),
		attribute.Int("player.level", s.Player.Level()),
		attribute.Int("enemy.health", enemy.Health),
	)
	span.End()

	b := &Battle{
		battle:      combat.NewBattle(player, enemy),
		enemy:       t.Enemy,
		defeat:      defeat,
		lastMessage: fmt.Sprintf("A wild %s appears!", t.Enemy.Name),
		queue:       queue,
	}
	if b.battle.Stalemate() {
		b.lastMessage = "Neither of you can hurt the other. Press Esc to flee."
	}
	return b
}

func (*Battle) ID() ID { return BattleID }
func (*Battle) scene() {}

// State exposes the underlying battle.
func (b *Battle) State() *combat.Battle { return b.battle }

// LastMessage describes the most recent turn.
func (b *Battle) LastMessage() string { return b.lastMessage }

// HandleInput resolves a turn, or retreats on Escape.
func (b *Battle) HandleInput(ctx context.Context, ev input.Event, s *Session) {
	if b.battle.Finished() {
		return
	}
	switch ev.Key {
	case input.KeyNone:
		return
	case input.KeyEscape:
		b.retreat(ctx, s)
		return
	}

	attacker := b.battle.Participant(b.battle.Turn)
	defender := b.battle.Participant(b.battle.Turn.Other())

	tracer := telemetry.Tracer("battle")
	_, span := tracer.Start(ctx, "battle.turn")
	defer span.End()

	res, err := b.battle.ResolveTurn()
	if err != nil {
		span.RecordError(err)
		return
	}
	span.SetAttributes(
		attribute.String("attacker", res.Attacker.String()),
		attribute.Int("damage", res.Damage),
		attribute.Int("turn", b.battle.Turns),
		attribute.Bool("lethal", res.Lethal),
	)

	switch {
	case res.Lethal:
		b.lastMessage = fmt.Sprintf("%s strikes %s down!", attacker.Name, defender.Name)
	case res.Damage == 0:
		b.lastMessage = fmt.Sprintf("%s's attack is absorbed by %s's shield.", attacker.Name, defender.Name)
	default:
		b.lastMessage = fmt.Sprintf("%s hits %s for %d damage.", attacker.Name, defender.Name, res.Damage)
	}
}

// Update settles a finished battle exactly once.
func (b *Battle) Update(ctx context.Context, s *Session) {
	if !b.battle.Finished() || b.settled {
		return
	}
	b.settled = true
	b.finish(ctx, s)
}

// retreat leaves the battle without rewards.
func (b *Battle) retreat(ctx context.Context, s *Session) {
	tracer := telemetry.Tracer("battle")
	_, span := tracer.Start(ctx, "battle.end")
	span.SetAttributes(
		attribute.String("outcome", "fled"),
		attribute.Int("turns_taken", b.battle.Turns),
	)
	span.End()

	log.Printf("battle: %s fled from %s after %d turns", s.Player.Name(), b.enemy.Name, b.battle.Turns)
	b.queue.Enqueue(fmt.Sprintf("You fled from %s.", b.enemy.Name))
	s.Request(StatsID, nil)
}

// finish applies rewards to the player and hands the result to Gains.
func (b *Battle) finish(ctx context.Context, s *Session) {
	outcome := *b.battle.Outcome
	reward := b.defeat
	result := "defeat"
	if outcome.PlayerWon() {
		reward = b.enemy.Reward
		result = "victory"
	}

	levelBefore := s.Player.Level()
	levels := s.Player.AddXP(reward.XP, b.queue)
	s.Player.AddCoins(reward.Coins)

	tracer := telemetry.Tracer("battle")
	ctx, span := tracer.Start(ctx, "battle.end")
	span.SetAttributes(
		attribute.String("outcome", result),
		attribute.Int("turns_taken", b.battle.Turns),
		attribute.Int("survivor_health", outcome.SurvivorHealth),
		attribute.Int("xp", reward.XP),
		attribute.Int("coins", reward.Coins),
	)
	span.End()

	if levels > 0 {
		_, lvl := tracer.Start(ctx, "player.level_up")
		lvl.SetAttributes(
			attribute.Int("from", levelBefore),
			attribute.Int("to", s.Player.Level()),
		)
		lvl.End()
		log.Printf("progression: %s reached level %d", s.Player.Name(), s.Player.Level())
	}
	log.Printf("battle: %s vs %s ended in %s after %d turns", s.Player.Name(), b.enemy.Name, result, b.battle.Turns)

	s.Request(GainsID, ToSummary{Summary: Summary{
		PlayerWon:      outcome.PlayerWon(),
		EnemyName:      b.enemy.Name,
		SurvivorHealth: outcome.SurvivorHealth,
		XP:             reward.XP,
		Coins:          reward.Coins,
		LevelsGained:   levels,
		Turns:          b.battle.Turns,
	}})
}

// Render shows both sides with a marker on whoever acts next.
func (b *Battle) Render(s *Session) view.Model {
	lines := []view.Line{}
	lines = append(lines, b.participantLines(b.battle.Player, combat.SidePlayer, "")...)
	lines = append(lines, view.Text(""))
	lines = append(lines, b.participantLines(b.battle.Enemy, combat.SideEnemy, b.enemy.Color)...)
	lines = append(lines,
		view.Text(""),
		view.Text(b.lastMessage),
		view.Text(""),
		view.Styled("Any key: attack  Esc: flee", view.StyleMuted),
	)
	return view.Model{
		Title: fmt.Sprintf("Battle: %s vs %s", s.Player.Name(), b.enemy.Name),
		Lines: lines,
	}
}

func (b *Battle) participantLines(p *entity.Participant, side combat.Side, color string) []view.Line {
	name := view.Line{{Text: p.Name, Style: view.StyleBold, Color: color}}
	if !b.battle.Finished() && b.battle.Turn == side {
		name = append(name, view.Span{Text: " <", Style: view.StyleSelected})
	}
	lines := []view.Line{
		name,
		{{Text: "Health: "}, {Text: fmt.Sprintf("%d", p.Health), Style: view.StyleHealth}},
		{{Text: "Damage: "}, {Text: fmt.Sprintf("%d", p.RawDamage()), Style: view.StyleDamage}},
	}
	for _, slot := range equipmentSlots {
		if p.Equipment.InSlot(slot) != nil {
			lines = append(lines, equipmentLine(p.Equipment, slot))
		}
	}
	return lines
}

// Compile-time check that *message.Queue satisfies the player's notifier.
var _ progression.Notifier = (*message.Queue)(nil)
