package scene

import (
	"context"
	"fmt"
	"log"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/samdwyer/termquest/internal/input"
	"github.com/samdwyer/termquest/internal/message"
	"github.com/samdwyer/termquest/internal/telemetry"
	"github.com/samdwyer/termquest/internal/view"
)

// QuitKey terminates the game outside text capture and pending messages.
const QuitKey = 'q'

// DefaultCloseKey dismisses a message in addition to Enter and Escape.
const DefaultCloseKey = 'x'

// DismissHint is shown under a pending message.
const DismissHint = "Press Enter to continue"

// Manager owns the active scene and the message queue and drives transitions.
type Manager struct {
	active   Scene
	queue    *message.Queue
	deps     Deps
	closeKey rune
}

// NewManager builds the scene named by s.Requested and makes it active.
// A closeKey of zero means DefaultCloseKey.
func NewManager(ctx context.Context, s *Session, queue *message.Queue, deps Deps, closeKey rune) (*Manager, error) {
	if closeKey == 0 {
		closeKey = DefaultCloseKey
	}
	m := &Manager{
		queue:    queue,
		deps:     deps,
		closeKey: closeKey,
	}
	active, err := m.construct(ctx, s.Requested, s.Requested, s)
	if err != nil {
		return nil, err
	}
	m.active = active
	return m, nil
}

// Active returns the active scene.
func (m *Manager) Active() Scene { return m.active }

// ActiveID returns the identity of the active scene.
func (m *Manager) ActiveID() ID { return m.active.ID() }

// Queue returns the message queue shared by all scenes.
func (m *Manager) Queue() *message.Queue { return m.queue }

// HandleInput routes one event. Only presses are considered. Ctrl-C always
// terminates; a pending message captures everything else; then the quit key;
// then the active scene.
func (m *Manager) HandleInput(ctx context.Context, ev input.Event, s *Session) {
	if !ev.IsPress() {
		return
	}
	if ev.Key == input.KeyCtrlC {
		s.Terminate()
		return
	}
	if m.queue.HasPending() {
		if m.isDismiss(ev) {
			m.queue.Dismiss()
		} else {
			m.queue.NotifyBlocked()
		}
		return
	}
	if ev.IsRune(QuitKey) && !m.capturesText() {
		s.Terminate()
		return
	}

	switch sc := m.active.(type) {
	case *NameEntry:
		sc.HandleInput(ev, s)
	case *Stats:
		sc.HandleInput(ev, s)
	case *Battle:
		sc.HandleInput(ctx, ev, s)
	case *Gains:
		sc.HandleInput(ev, s)
	case *Shop:
		sc.HandleInput(ctx, ev, s)
	}
}

func (m *Manager) isDismiss(ev input.Event) bool {
	switch ev.Key {
	case input.KeyEnter, input.KeyEscape:
		return true
	case input.KeyRune:
		return ev.Rune == m.closeKey
	}
	return false
}

func (m *Manager) capturesText() bool {
	_, ok := m.active.(*NameEntry)
	return ok
}

// Update advances the active scene by one tick and then performs a pending
// transition. It reports whether the active scene changed. On error the
// previous scene stays active and the session is left untouched.
func (m *Manager) Update(ctx context.Context, s *Session) (bool, error) {
	m.queue.Tick()

	if sc, ok := m.active.(*Battle); ok {
		sc.Update(ctx, s)
	}

	from := m.active.ID()
	if s.Requested == from {
		return false, nil
	}

	tracer := telemetry.Tracer("scene")
	ctx, span := tracer.Start(ctx, "scene.transition")
	defer span.End()
	span.SetAttributes(
		attribute.String("session.id", s.ID),
		attribute.String("from", from.String()),
		attribute.String("to", s.Requested.String()),
	)

	next, err := m.construct(ctx, from, s.Requested, s)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		log.Printf("scene: %v", err)
		return false, err
	}
	m.active = next
	log.Printf("scene: %s -> %s", from, next.ID())
	return true, nil
}

// construct builds the scene for id, consuming the transfer it needs.
func (m *Manager) construct(ctx context.Context, from, id ID, s *Session) (Scene, error) {
	switch id {
	case NameEntryID:
		return NewNameEntry(m.queue), nil
	case StatsID:
		return NewStats(m.deps), nil
	case ShopID:
		return NewShop(m.deps.Items.Stock(), m.queue), nil
	case BattleID:
		t, ok := s.Transfer.(ToBattle)
		if !ok {
			return nil, missingTransfer(from, id, ToBattle{}, s.Transfer)
		}
		s.Transfer = nil
		return NewBattle(ctx, s, t, m.deps.DefeatReward, m.queue), nil
	case GainsID:
		t, ok := s.Transfer.(ToSummary)
		if !ok {
			return nil, missingTransfer(from, id, ToSummary{}, s.Transfer)
		}
		s.Transfer = nil
		return NewGains(t), nil
	default:
		return nil, &TransitionError{
			From: from,
			To:   id,
			Err:  fmt.Errorf("%w: id %d", ErrUnknownScene, int(id)),
		}
	}
}

func missingTransfer(from, to ID, want, got Transfer) error {
	e := &TransitionError{
		From:     from,
		To:       to,
		Expected: want.Shape(),
		Err:      ErrMissingTransfer,
	}
	if got != nil {
		e.Got = got.Shape()
	}
	return e
}

// Render builds the frame: the active scene's model and, while a message is
// pending, the overlay showing the head of the queue.
func (m *Manager) Render(s *Session) view.Frame {
	var model view.Model
	switch sc := m.active.(type) {
	case *NameEntry:
		model = sc.Render(s)
	case *Stats:
		model = sc.Render(s)
	case *Battle:
		model = sc.Render(s)
	case *Gains:
		model = sc.Render(s)
	case *Shop:
		model = sc.Render(s)
	}

	frame := view.Frame{Scene: model}
	if text, ok := m.queue.Peek(); ok {
		frame.Overlay = &view.Overlay{
			Message: text,
			Hint:    DismissHint,
			Flash:   m.queue.Flashing(),
		}
	}
	return frame
}
