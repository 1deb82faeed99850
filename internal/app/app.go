package app

import (
	"context"
	"log/slog"

	"github.com/AdamBeresnev/op-bracket/internal/bracket"
	"github.com/alexedwards/scs/v2"
)

const sceneKey = "scene"

// App is the application state built once at startup. The seeded bracket is
// shared read-only; each browser session only owns its scene.
type App struct {
	seed     *bracket.Bracket
	sessions *scs.SessionManager
	logger   *slog.Logger
}

func New(seed *bracket.Bracket, sessions *scs.SessionManager, logger *slog.Logger) *App {
	if logger == nil {
		logger = slog.Default()
	}
	return &App{seed: seed, sessions: sessions, logger: logger}
}

func (a *App) Sessions() *scs.SessionManager {
	return a.sessions
}

// State returns the bracket as seen by the session in ctx.
func (a *App) State(ctx context.Context) *bracket.Bracket {
	scene := bracket.SceneCreate
	if raw := a.sessions.GetString(ctx, sceneKey); raw != "" {
		parsed, err := bracket.ParseScene(raw)
		if err != nil {
			a.logger.Warn("dropping unknown scene from session", "scene", raw)
			a.sessions.Remove(ctx, sceneKey)
		} else {
			scene = parsed
		}
	}
	return a.seed.WithScene(scene)
}

// Dispatch applies ev to the session's bracket and stores the resulting scene.
func (a *App) Dispatch(ctx context.Context, ev bracket.Event) (*bracket.Bracket, error) {
	b := a.State(ctx)
	if _, err := b.Dispatch(ev); err != nil {
		return nil, err
	}

	if ev == bracket.RequestCreateTournament {
		a.logger.Info("create tournament!")
	}

	a.sessions.Put(ctx, sceneKey, string(b.Scene))
	return b, nil
}
