// Package input defines the discrete key events the game reacts to.
package input

import "github.com/gdamore/tcell/v2"

// Kind distinguishes an initial key press from auto-repeat and release.
type Kind int

const (
	KindPress Kind = iota
	KindRepeat
	KindRelease
)

// String returns a human-readable kind name.
func (k Kind) String() string {
	switch k {
	case KindPress:
		return "press"
	case KindRepeat:
		return "repeat"
	case KindRelease:
		return "release"
	default:
		return "unknown"
	}
}

// Key identifies a non-character key, or KeyRune for a printable character.
type Key int

const (
	KeyNone Key = iota
	KeyRune
	KeyEnter
	KeyEscape
	KeyBackspace
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyTab
	KeyCtrlC
)

// Event is a single key event.
type Event struct {
	Kind Kind
	Key  Key
	Rune rune // Set when Key is KeyRune
}

// Press builds a press event for a special key.
func Press(key Key) Event {
	return Event{Kind: KindPress, Key: key}
}

// PressRune builds a press event for a printable character.
func PressRune(r rune) Event {
	return Event{Kind: KindPress, Key: KeyRune, Rune: r}
}

// IsPress reports whether the event is an initial key press.
func (e Event) IsPress() bool { return e.Kind == KindPress }

// IsRune reports whether the event is the given character.
func (e Event) IsRune(r rune) bool { return e.Key == KeyRune && e.Rune == r }

// FromTCell decodes a tcell key event. Terminals only report presses, so every
// decoded event has KindPress. Keys the game does not use decode to KeyNone.
func FromTCell(ev *tcell.EventKey) Event {
	switch ev.Key() {
	case tcell.KeyRune:
		return PressRune(ev.Rune())
	case tcell.KeyEnter:
		return Press(KeyEnter)
	case tcell.KeyEscape:
		return Press(KeyEscape)
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return Press(KeyBackspace)
	case tcell.KeyUp:
		return Press(KeyUp)
	case tcell.KeyDown:
		return Press(KeyDown)
	case tcell.KeyLeft:
		return Press(KeyLeft)
	case tcell.KeyRight:
		return Press(KeyRight)
	case tcell.KeyTab:
		return Press(KeyTab)
	case tcell.KeyCtrlC:
		return Press(KeyCtrlC)
	default:
		return Press(KeyNone)
	}
}
