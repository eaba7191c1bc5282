package ui

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/termquest/internal/view"
)

func newTestScreen(t *testing.T) (tcell.SimulationScreen, *Screen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	screen, err := NewScreenFrom(sim)
	if err != nil {
		t.Fatalf("NewScreenFrom() error = %v", err)
	}
	sim.SetSize(60, 20)
	t.Cleanup(screen.Close)
	return sim, screen
}

// row reads back one screen row as text.
func row(sim tcell.SimulationScreen, y int) string {
	w, _ := sim.Size()
	var b strings.Builder
	for x := 0; x < w; x++ {
		r, _, _, _ := sim.GetContent(x, y)
		if r == 0 {
			r = ' '
		}
		b.WriteRune(r)
	}
	return b.String()
}

func TestRenderSceneLines(t *testing.T) {
	sim, screen := newTestScreen(t)
	r := NewRenderer(screen)

	r.Render(view.Frame{Scene: view.Model{
		Title: "Stats",
		Lines: []view.Line{
			{{Text: "Name: "}, {Text: "Ada", Style: view.StyleBold}},
			view.Styled("Coins: 15c", view.StyleCoins),
		},
	}})

	if got := row(sim, 0); !strings.Contains(got, "[ Stats ]") {
		t.Errorf("top border = %q, want title", got)
	}
	if got := row(sim, marginY); !strings.HasPrefix(string([]rune(got)[marginX:]), "Name: Ada") {
		t.Errorf("line 0 = %q", got)
	}
	if got := row(sim, marginY+1); !strings.Contains(got, "Coins: 15c") {
		t.Errorf("line 1 = %q", got)
	}

	r0, _, _, _ := sim.GetContent(0, 0)
	if r0 != tcell.RuneULCorner {
		t.Errorf("corner = %q, want %q", r0, tcell.RuneULCorner)
	}
}

func TestRenderOverlay(t *testing.T) {
	sim, screen := newTestScreen(t)
	r := NewRenderer(screen)

	r.Render(view.Frame{
		Scene:   view.Model{Title: "Stats", Lines: []view.Line{view.Text("hidden")}},
		Overlay: &view.Overlay{Message: "Level up!", Hint: "Press Enter", Flash: true},
	})

	found := false
	_, h := sim.Size()
	for y := 0; y < h; y++ {
		if strings.Contains(row(sim, y), "Level up!") {
			found = true
			break
		}
	}
	if !found {
		t.Error("overlay message not drawn")
	}
}

func TestRenderDialog(t *testing.T) {
	sim, screen := newTestScreen(t)
	r := NewRenderer(screen)

	r.Render(view.Frame{Scene: view.Model{
		Title: "Shop",
		Dialog: &view.Dialog{
			Title:  "Confirm",
			Lines:  []view.Line{view.Text("Sword for 10c?")},
			Footer: view.Line{{Text: " Yes ", Style: view.StyleSelected}, {Text: " No "}},
		},
	}})

	var text []string
	_, h := sim.Size()
	for y := 0; y < h; y++ {
		text = append(text, row(sim, y))
	}
	all := strings.Join(text, "\n")
	for _, want := range []string{"[ Confirm ]", "Sword for 10c?", "Yes", "No"} {
		if !strings.Contains(all, want) {
			t.Errorf("dialog missing %q", want)
		}
	}
}

func TestSpanStyle(t *testing.T) {
	plain := spanStyle(view.Span{Text: "x"})
	if plain != tcell.StyleDefault {
		t.Errorf("plain style = %v, want default", plain)
	}

	colored := spanStyle(view.Span{Text: "x", Color: "#FF5555"})
	fg, _, _ := colored.Decompose()
	if fg != tcell.NewHexColor(0xFF5555) {
		t.Errorf("foreground = %v, want #FF5555", fg)
	}

	bad := spanStyle(view.Span{Text: "x", Color: "nope"})
	if bad != tcell.StyleDefault {
		t.Errorf("invalid color changed style to %v", bad)
	}
}

func TestScreenCloseTwice(t *testing.T) {
	screen, err := NewScreenFrom(tcell.NewSimulationScreen("UTF-8"))
	if err != nil {
		t.Fatal(err)
	}
	screen.Close()
	screen.Close()
	if ev := screen.PollEvent(); ev != nil {
		t.Errorf("PollEvent() after Close = %v, want nil", ev)
	}
}
