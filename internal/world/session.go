package world

import (
	"math/rand"

	"SavingMerica/internal/config"
)

// State is the top-level screen the game is on.
type State uint8

const (
	StateStartMenu State = iota
	StatePlaying
	StateEnded // end screen; Outcome tells which one
	StateQuit
)

func (s State) String() string {
	switch s {
	case StateStartMenu:
		return "start-menu"
	case StatePlaying:
		return "playing"
	case StateEnded:
		return "ended"
	case StateQuit:
		return "quit"
	}
	return "unknown"
}

// Session runs the whole game: start menu, one play session, end screen.
// No state is entered twice.
type Session struct {
	cfg   config.Config
	sizes Sizes
	rng   *rand.Rand

	state   State
	outcome Outcome
	world   *World
}

// NewSession returns a session waiting on the start menu.
func NewSession(cfg config.Config, sizes Sizes, rng *rand.Rand) *Session {
	return &Session{cfg: cfg, sizes: sizes, rng: rng}
}

func (s *Session) State() State { return s.state }

// Outcome is set once the session reached the end screen.
func (s *Session) Outcome() Outcome { return s.outcome }

// World is nil until play starts.
func (s *Session) World() *World { return s.world }

// Step advances the session by one tick and returns the cues to play.
func (s *Session) Step(in Input) []Cue {
	switch s.state {
	case StateStartMenu:
		switch {
		case in.Quit:
			s.state = StateQuit
		case in.Fire:
			s.world = NewWorld(s.cfg, s.sizes, s.rng)
			s.state = StatePlaying
		}
	case StatePlaying:
		if in.Quit {
			s.state = StateQuit
			return nil
		}
		outcome, cues := s.world.Step(in)
		if outcome != OutcomeNone {
			s.outcome = outcome
			s.state = StateEnded
		}
		return cues
	case StateEnded:
		if in.Quit || in.AnyKey {
			s.state = StateQuit
		}
	}
	return nil
}
