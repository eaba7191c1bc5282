package scene

import (
	"strings"
	"unicode"

	"github.com/samdwyer/termquest/internal/input"
	"github.com/samdwyer/termquest/internal/message"
	"github.com/samdwyer/termquest/internal/view"
)

// MaxNameLength is the longest name, in runes, NameEntry accepts.
const MaxNameLength = 24

// EmptyNameMessage is queued when Enter is pressed with a blank name.
const EmptyNameMessage = "Name cannot be empty."

// NameEntry lets the player type a new name. It captures all printable
// keys, so the global quit key does not apply here.
type NameEntry struct {
	name  []rune
	queue *message.Queue
}

// NewNameEntry creates an empty name entry scene.
func NewNameEntry(queue *message.Queue) *NameEntry {
	return &NameEntry{queue: queue}
}

func (*NameEntry) ID() ID { return NameEntryID }
func (*NameEntry) scene() {}

// Input returns the text typed so far.
func (n *NameEntry) Input() string { return string(n.name) }

// HandleInput edits the pending name or commits it.
func (n *NameEntry) HandleInput(ev input.Event, s *Session) {
	switch ev.Key {
	case input.KeyRune:
		if unicode.IsPrint(ev.Rune) && len(n.name) < MaxNameLength {
			n.name = append(n.name, ev.Rune)
		}
	case input.KeyBackspace:
		if len(n.name) > 0 {
			n.name = n.name[:len(n.name)-1]
		}
	case input.KeyEnter:
		name := strings.TrimSpace(string(n.name))
		if name == "" {
			n.queue.Enqueue(EmptyNameMessage)
			return
		}
		s.Player.SetName(name)
		s.Request(StatsID, nil)
	case input.KeyEscape:
		s.Request(StatsID, nil)
	}
}

// Render shows the prompt and the typed name with a cursor.
func (n *NameEntry) Render(s *Session) view.Model {
	return view.Model{
		Title: "New name",
		Lines: []view.Line{
			view.Text("Current name: " + s.Player.Name()),
			view.Text(""),
			view.Text("Enter your new nickname:"),
			{{Text: string(n.name), Style: view.StyleBold}, {Text: "_", Style: view.StyleSelected}},
			view.Text(""),
			view.Styled("Enter to confirm, Esc to cancel", view.StyleMuted),
		},
	}
}
