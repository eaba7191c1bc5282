// Package view defines the abstract view model scenes render into.
// It carries no terminal details; internal/ui decides how to paint it.
package view

import "strings"

// Style is a semantic style token.
type Style int

const (
	StylePlain Style = iota
	StyleBold
	StyleHealth
	StyleDamage
	StyleLevel
	StyleXP
	StyleXPMissing
	StyleCoins
	StyleGain
	StyleMuted
	StyleSelected
	StyleTitle
)

// Span is a run of text in one style.
type Span struct {
	Text  string
	Style Style
	Color string // Optional hex color override (e.g., "#FF5555")
}

// Line is one row of spans.
type Line []Span

// Text builds a single plain span line.
func Text(s string) Line {
	return Line{{Text: s}}
}

// Styled builds a single span line in style.
func Styled(s string, style Style) Line {
	return Line{{Text: s, Style: style}}
}

// String concatenates the line's text.
func (l Line) String() string {
	var b strings.Builder
	for _, s := range l {
		b.WriteString(s.Text)
	}
	return b.String()
}

// Dialog is a small box drawn centered over the scene.
type Dialog struct {
	Title  string
	Lines  []Line
	Footer Line
}

// Model is everything a scene wants shown for one frame.
type Model struct {
	Title  string
	Lines  []Line
	Dialog *Dialog
}

// Overlay is the message box drawn above any scene while a message is pending.
type Overlay struct {
	Message string
	Hint    string
	Flash   bool
}

// Frame is a complete frame: the active scene plus the optional overlay.
type Frame struct {
	Scene   Model
	Overlay *Overlay
}

// Strings flattens the model's lines to plain text, which keeps assertions simple.
func (m Model) Strings() []string {
	out := make([]string, len(m.Lines))
	for i, l := range m.Lines {
		out[i] = l.String()
	}
	return out
}
