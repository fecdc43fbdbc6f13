// Package game is the ebiten front-end: it feeds keyboard state into the
// session, plays the cues it returns and draws whichever screen is active.
package game

import (
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"SavingMerica/internal/assets"
	"SavingMerica/internal/config"
	"SavingMerica/internal/sound"
	"SavingMerica/internal/world"
)

// Game implements ebiten.Game around a world.Session.
type Game struct {
	cfg     config.Config
	session *world.Session
	assets  *assets.Assets
	sound   *sound.Service
	logger  *log.Logger

	keys      []ebiten.Key // scratch for just-pressed keys
	lastState world.State
	bossSeen  bool
}

// New wires a session to its assets and sound service.
func New(cfg config.Config, session *world.Session, a *assets.Assets, s *sound.Service, logger *log.Logger) *Game {
	return &Game{
		cfg:       cfg,
		session:   session,
		assets:    a,
		sound:     s,
		logger:    logger,
		lastState: session.State(),
	}
}

// Update runs one tick. It returns ebiten.Termination once the session quits.
func (g *Game) Update() error {
	cues := g.session.Step(g.readInput())
	g.sound.Handle(cues)
	g.logTransitions()

	if g.session.State() == world.StateQuit {
		return ebiten.Termination
	}
	return nil
}

// readInput samples the keyboard: held arrows, plus keys that went down this tick.
func (g *Game) readInput() world.Input {
	g.keys = inpututil.AppendJustPressedKeys(g.keys[:0])
	return world.Input{
		Up:     ebiten.IsKeyPressed(ebiten.KeyArrowUp),
		Down:   ebiten.IsKeyPressed(ebiten.KeyArrowDown),
		Left:   ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		Right:  ebiten.IsKeyPressed(ebiten.KeyArrowRight),
		Fire:   inpututil.IsKeyJustPressed(ebiten.KeySpace),
		Quit:   inpututil.IsKeyJustPressed(ebiten.KeyEscape) || ebiten.IsWindowBeingClosed(),
		AnyKey: len(g.keys) > 0,
	}
}

func (g *Game) logTransitions() {
	if w := g.session.World(); w != nil && !g.bossSeen && w.Boss() != nil {
		g.bossSeen = true
		g.logger.Info("boss spawned", "elapsed", w.Elapsed(), "health", w.Boss().Health)
	}

	state := g.session.State()
	if state == g.lastState {
		return
	}
	switch state {
	case world.StatePlaying:
		g.logger.Info("session started")
	case world.StateEnded:
		g.logger.Info("session over", "outcome", g.session.Outcome(), "elapsed", g.session.World().Elapsed())
	case world.StateQuit:
		g.logger.Info("quitting", "from", g.lastState)
	}
	g.lastState = state
}

func (g *Game) Layout(_, _ int) (int, int) {
	return g.cfg.Screen.Width, g.cfg.Screen.Height
}
