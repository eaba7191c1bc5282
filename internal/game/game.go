// Package game provides the host loop that drives the scene manager.
package game

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/termquest/internal/gamedata"
	"github.com/samdwyer/termquest/internal/input"
	"github.com/samdwyer/termquest/internal/message"
	"github.com/samdwyer/termquest/internal/scene"
	"github.com/samdwyer/termquest/internal/storage"
	"github.com/samdwyer/termquest/internal/telemetry"
	"github.com/samdwyer/termquest/internal/ui"
)

// Game holds the entire game state.
type Game struct {
	cfg      Config
	screen   *ui.Screen
	renderer *ui.Renderer
	store    storage.Store
	session  *scene.Session
	manager  *scene.Manager
}

// New loads the catalog and the saved player and builds the starting scene.
// Without a save the game starts fresh in name entry; a corrupt save is an error.
func New(ctx context.Context, cfg Config, screen *ui.Screen, store storage.Store) (*Game, error) {
	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "game.init")
	defer span.End()

	catalog, err := gamedata.LoadCatalog()
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	player, start, err := LoadPlayer(ctx, store, catalog.Curve)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	session := scene.NewSession(uuid.NewString(), player, start)
	deps := scene.DepsFromCatalog(catalog, rand.New(rand.NewSource(seed)))
	manager, err := scene.NewManager(ctx, session, message.NewQueue(cfg.AttentionTicks), deps, cfg.CloseRune())
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("start scene: %w", err)
	}

	span.SetAttributes(
		attribute.String("session.id", session.ID),
		attribute.String("scene.start", start.String()),
		attribute.String("save.backend", cfg.SaveBackend),
		attribute.Int64("seed", seed),
		attribute.Int("enemies", deps.Enemies.Count()),
		attribute.Int("player.level", player.Level()),
	)
	log.Printf("game: session %s starting in %s as %s (level %d)", session.ID, start, player.Name(), player.Level())

	return &Game{
		cfg:      cfg,
		screen:   screen,
		renderer: ui.NewRenderer(screen),
		store:    store,
		session:  session,
		manager:  manager,
	}, nil
}

// Session returns the game's session state.
func (g *Game) Session() *scene.Session { return g.session }

// Run executes the main game loop until the session terminates or ctx is done.
// Each iteration waits at most one tick for input, routes it, updates and renders.
// Progress is saved on the way out.
func (g *Game) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 16)
	done := make(chan struct{})
	defer close(done)
	go g.pump(events, done)

	ticker := time.NewTicker(g.cfg.Tick)
	defer ticker.Stop()

	g.render()
	for !g.session.Terminating {
		select {
		case <-ctx.Done():
			g.session.Terminate()
			continue
		case ev := <-events:
			g.handleEvent(ctx, ev)
		case <-ticker.C:
		}

		changed, err := g.manager.Update(ctx, g.session)
		if err != nil {
			err = fmt.Errorf("update: %w", err)
			if saveErr := g.save(context.WithoutCancel(ctx)); saveErr != nil {
				err = errors.Join(err, fmt.Errorf("save on exit: %w", saveErr))
			}
			return err
		}
		if changed && g.manager.ActiveID() == scene.StatsID {
			g.autosave(ctx)
		}
		g.render()
	}

	log.Printf("game: session %s ending", g.session.ID)
	// ctx may already be cancelled; the final save must still run.
	if err := g.save(context.WithoutCancel(ctx)); err != nil {
		return fmt.Errorf("save on exit: %w", err)
	}
	return nil
}

// pump forwards terminal events until the screen is finalized.
func (g *Game) pump(events chan<- tcell.Event, done <-chan struct{}) {
	for {
		ev := g.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-done:
			return
		}
	}
}

// handleEvent processes a single terminal event.
func (g *Game) handleEvent(ctx context.Context, ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		g.manager.HandleInput(ctx, input.FromTCell(ev), g.session)
	case *tcell.EventResize:
		g.screen.Sync()
	}
}

func (g *Game) render() {
	g.renderer.Render(g.manager.Render(g.session))
}

// Close cleans up game resources.
func (g *Game) Close() {
	if g.screen != nil {
		g.screen.Close()
	}
}
