package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/termquest/internal/gamedata"
	"github.com/samdwyer/termquest/internal/view"
)

const (
	marginX = 2
	marginY = 2
)

// Renderer handles drawing view frames to the screen.
type Renderer struct {
	screen *Screen
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Render draws the scene, its dialog and the message overlay, then flushes.
func (r *Renderer) Render(frame view.Frame) {
	r.screen.Clear()
	width, height := r.screen.Size()

	border := tcell.StyleDefault.Foreground(tcell.ColorGray)
	r.drawBox(0, 0, width, height, border, frame.Scene.Title)
	for i, line := range frame.Scene.Lines {
		y := marginY + i
		if y >= height-1 {
			break
		}
		r.drawLine(marginX, y, width-1, line)
	}

	if d := frame.Scene.Dialog; d != nil {
		r.renderDialog(d, width, height)
	}
	if o := frame.Overlay; o != nil {
		r.renderOverlay(o, width, height)
	}

	r.screen.Show()
}

func (r *Renderer) renderDialog(d *view.Dialog, width, height int) {
	inner := max(len([]rune(d.Title))+4, len([]rune(d.Footer.String())))
	for _, l := range d.Lines {
		inner = max(inner, len([]rune(l.String())))
	}
	w := inner + 4
	h := len(d.Lines) + 5
	x, y := (width-w)/2, (height-h)/2

	r.fill(x, y, w, h)
	r.drawBox(x, y, w, h, tcell.StyleDefault.Foreground(tcell.ColorWhite), d.Title)
	for i, l := range d.Lines {
		r.drawLine(x+2, y+2+i, x+w-1, l)
	}
	footerX := x + (w-len([]rune(d.Footer.String())))/2
	r.drawLine(footerX, y+h-2, x+w-1, d.Footer)
}

func (r *Renderer) renderOverlay(o *view.Overlay, width, height int) {
	inner := max(len([]rune(o.Message)), len([]rune(o.Hint)))
	w := inner + 6
	h := 6
	x, y := (width-w)/2, (height-h)/2

	border := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	if o.Flash {
		border = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true).Reverse(true)
	}
	r.fill(x, y, w, h)
	r.drawBox(x, y, w, h, border, "Message")
	r.drawText(x+3, y+2, x+w-1, o.Message, tcell.StyleDefault.Bold(true))
	r.drawText(x+3, y+3, x+w-1, o.Hint, tcell.StyleDefault.Foreground(tcell.ColorGray))
}

// drawBox draws a single-line border with an optional title in the top edge.
func (r *Renderer) drawBox(x, y, w, h int, style tcell.Style, title string) {
	if w < 2 || h < 2 {
		return
	}
	x2, y2 := x+w-1, y+h-1
	for i := x + 1; i < x2; i++ {
		r.screen.SetContent(i, y, tcell.RuneHLine, style)
		r.screen.SetContent(i, y2, tcell.RuneHLine, style)
	}
	for j := y + 1; j < y2; j++ {
		r.screen.SetContent(x, j, tcell.RuneVLine, style)
		r.screen.SetContent(x2, j, tcell.RuneVLine, style)
	}
	r.screen.SetContent(x, y, tcell.RuneULCorner, style)
	r.screen.SetContent(x2, y, tcell.RuneURCorner, style)
	r.screen.SetContent(x, y2, tcell.RuneLLCorner, style)
	r.screen.SetContent(x2, y2, tcell.RuneLRCorner, style)

	if title != "" {
		r.drawText(x+2, y, x2, "[ "+title+" ]", style.Bold(true))
	}
}

// fill blanks a rectangle so boxes hide what is underneath.
func (r *Renderer) fill(x, y, w, h int) {
	for j := y; j < y+h; j++ {
		for i := x; i < x+w; i++ {
			r.screen.SetContent(i, j, ' ', tcell.StyleDefault)
		}
	}
}

// drawLine draws styled spans starting at x, clipping at maxX.
func (r *Renderer) drawLine(x, y, maxX int, line view.Line) {
	for _, span := range line {
		x = r.drawText(x, y, maxX, span.Text, spanStyle(span))
	}
}

// drawText draws text starting at x and returns the column after it.
func (r *Renderer) drawText(x, y, maxX int, text string, style tcell.Style) int {
	for _, ch := range text {
		if x >= maxX {
			break
		}
		r.screen.SetContent(x, y, ch, style)
		x++
	}
	return x
}

// spanStyle maps a semantic style token to terminal attributes.
func spanStyle(span view.Span) tcell.Style {
	style := tcell.StyleDefault
	switch span.Style {
	case view.StyleBold, view.StyleTitle:
		style = style.Bold(true)
	case view.StyleHealth:
		style = style.Foreground(tcell.ColorRed)
	case view.StyleDamage:
		style = style.Foreground(tcell.ColorOrange)
	case view.StyleLevel:
		style = style.Foreground(tcell.ColorAqua).Bold(true)
	case view.StyleXP:
		style = style.Foreground(tcell.ColorGreen)
	case view.StyleXPMissing, view.StyleMuted:
		style = style.Foreground(tcell.ColorGray)
	case view.StyleCoins:
		style = style.Foreground(tcell.ColorYellow)
	case view.StyleGain:
		style = style.Foreground(tcell.ColorGreen).Bold(true)
	case view.StyleSelected:
		style = style.Reverse(true)
	}
	if span.Color != "" {
		if c, err := gamedata.ParseHexColor(span.Color); err == nil {
			style = style.Foreground(c)
		}
	}
	return style
}
