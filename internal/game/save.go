package game

import (
	"context"
	"errors"
	"fmt"
	"log"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/termquest/internal/progression"
	"github.com/samdwyer/termquest/internal/scene"
	"github.com/samdwyer/termquest/internal/storage"
	"github.com/samdwyer/termquest/internal/telemetry"
)

// SaveFailedMessage is queued when an autosave fails.
const SaveFailedMessage = "Could not save progress."

// LoadPlayer reads the saved player. Without a save it returns a fresh
// player and the name entry scene; otherwise the stats scene.
func LoadPlayer(ctx context.Context, store storage.Store, curve progression.Curve) (*progression.Player, scene.ID, error) {
	tracer := telemetry.Tracer("storage")
	ctx, span := tracer.Start(ctx, "save.load")
	defer span.End()

	player, err := store.Load(ctx, curve)
	switch {
	case errors.Is(err, storage.ErrNoSave):
		span.SetAttributes(attribute.Bool("save.found", false))
		log.Printf("save: none found, starting a new game")
		return progression.NewPlayer(curve), scene.NameEntryID, nil
	case err != nil:
		span.RecordError(err)
		return nil, 0, fmt.Errorf("load save: %w", err)
	}

	span.SetAttributes(
		attribute.Bool("save.found", true),
		attribute.Int("player.level", player.Level()),
	)
	log.Printf("save: loaded %s at level %d", player.Name(), player.Level())
	return player, scene.StatsID, nil
}

// save writes the session's player to the store.
func (g *Game) save(ctx context.Context) error {
	tracer := telemetry.Tracer("storage")
	ctx, span := tracer.Start(ctx, "save.write")
	defer span.End()
	span.SetAttributes(
		attribute.String("session.id", g.session.ID),
		attribute.String("save.backend", g.cfg.SaveBackend),
	)

	if err := g.store.Save(ctx, g.session.Player); err != nil {
		span.RecordError(err)
		return err
	}
	return nil
}

// autosave saves and reports failure to the player instead of stopping the game.
func (g *Game) autosave(ctx context.Context) {
	if err := g.save(ctx); err != nil {
		log.Printf("save: autosave failed: %v", err)
		g.manager.Queue().Enqueue(SaveFailedMessage)
	}
}
