package scene

import (
	"context"
	"errors"
	"fmt"
	"log"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/termquest/internal/entity"
	"github.com/samdwyer/termquest/internal/input"
	"github.com/samdwyer/termquest/internal/message"
	"github.com/samdwyer/termquest/internal/progression"
	"github.com/samdwyer/termquest/internal/telemetry"
	"github.com/samdwyer/termquest/internal/view"
)

// ShopStage is the shop's sub-state.
type ShopStage int

const (
	// StageSelecting moves the cursor over "Go back" and the items.
	StageSelecting ShopStage = iota
	// StageConfirm asks whether to buy the selected item.
	StageConfirm
)

// String returns a human-readable stage name.
func (st ShopStage) String() string {
	switch st {
	case StageSelecting:
		return "selecting"
	case StageConfirm:
		return "confirm"
	default:
		return "unknown"
	}
}

// Shop lists items for sale. Row 0 is "Go back"; row i is items[i-1].
type Shop struct {
	items    []entity.Item
	selected int
	stage    ShopStage
	confirm  bool // Yes is highlighted in the confirm dialog
	queue    *message.Queue
}

// NewShop creates a shop selling items in order.
func NewShop(items []entity.Item, queue *message.Queue) *Shop {
	return &Shop{items: items, queue: queue}
}

func (*Shop) ID() ID { return ShopID }
func (*Shop) scene() {}

// Selected returns the highlighted row.
func (sh *Shop) Selected() int { return sh.selected }

// Stage returns the current sub-state.
func (sh *Shop) Stage() ShopStage { return sh.stage }

// HandleInput drives the selection and confirm stages.
func (sh *Shop) HandleInput(ctx context.Context, ev input.Event, s *Session) {
	switch sh.stage {
	case StageSelecting:
		switch ev.Key {
		case input.KeyUp:
			if sh.selected > 0 {
				sh.selected--
			}
		case input.KeyDown:
			if sh.selected < len(sh.items) {
				sh.selected++
			}
		case input.KeyEnter:
			if sh.selected == 0 {
				s.Request(StatsID, nil)
				return
			}
			sh.stage = StageConfirm
			sh.confirm = true
		case input.KeyEscape:
			s.Request(StatsID, nil)
		}
	case StageConfirm:
		switch ev.Key {
		case input.KeyLeft:
			sh.confirm = true
		case input.KeyRight:
			sh.confirm = false
		case input.KeyEnter:
			if sh.confirm {
				sh.buy(ctx, s, sh.items[sh.selected-1])
			}
			sh.stage = StageSelecting
		case input.KeyEscape:
			sh.stage = StageSelecting
		}
	}
}

// buy attempts the purchase and reports the result through the queue.
func (sh *Shop) buy(ctx context.Context, s *Session, item entity.Item) {
	tracer := telemetry.Tracer("shop")
	_, span := tracer.Start(ctx, "shop.purchase")
	defer span.End()
	span.SetAttributes(
		attribute.String("session.id", s.ID),
		attribute.String("item", item.Name),
		attribute.Int("cost", item.Cost),
		attribute.Int("coins", s.Player.Coins()),
	)

	if err := s.Player.Purchase(item); err != nil {
		span.SetAttributes(attribute.Bool("rejected", true))
		if errors.Is(err, progression.ErrInsufficientCoins) {
			sh.queue.Enqueue(fmt.Sprintf("Not enough coins to buy %s", item.Name))
			return
		}
		span.RecordError(err)
		log.Printf("shop: purchase %s: %v", item.Name, err)
		sh.queue.Enqueue(fmt.Sprintf("Could not buy %s", item.Name))
		return
	}
	log.Printf("shop: %s bought %s for %dc", s.Player.Name(), item.Name, item.Cost)
	sh.queue.Enqueue(fmt.Sprintf("Successfully bought %s!", item.Name))
}

// Render lists the rows and, while confirming, the confirm dialog.
func (sh *Shop) Render(s *Session) view.Model {
	lines := []view.Line{
		{{Text: "Coins: "}, {Text: fmt.Sprintf("%dc", s.Player.Coins()), Style: view.StyleCoins}},
		view.Text(""),
		sh.row(0, "Go back"),
		view.Text(""),
	}
	for i, item := range sh.items {
		row := sh.row(i+1, fmt.Sprintf("[%d] %s", i+1, itemLabel(item)))
		row = append(row, view.Span{Text: fmt.Sprintf(" - %dc", item.Cost), Style: view.StyleCoins})
		lines = append(lines, row)
	}
	lines = append(lines, view.Text(""), view.Styled("Up/Down: move  Enter: select  Esc: back", view.StyleMuted))

	model := view.Model{Title: "Shop", Lines: lines}
	if sh.stage == StageConfirm {
		item := sh.items[sh.selected-1]
		yes, no := view.StylePlain, view.StyleSelected
		if sh.confirm {
			yes, no = view.StyleSelected, view.StylePlain
		}
		model.Dialog = &view.Dialog{
			Title: "Confirm",
			Lines: []view.Line{
				view.Text("You sure you want to buy"),
				view.Text(fmt.Sprintf("%s for %dc?", item.Name, item.Cost)),
			},
			Footer: view.Line{{Text: " Yes ", Style: yes}, {Text: "   "}, {Text: " No ", Style: no}},
		}
	}
	return model
}

func (sh *Shop) row(i int, text string) view.Line {
	if i == sh.selected {
		return view.Line{{Text: "> "}, {Text: text, Style: view.StyleSelected}}
	}
	return view.Line{{Text: "  "}, {Text: text}}
}
