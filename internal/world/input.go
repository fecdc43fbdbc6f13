package world

// Input is the player's intent for a single tick.
type Input struct {
	// held direction keys
	Up, Down, Left, Right bool

	// Fire is set on the tick Space goes down. It also confirms the start menu.
	Fire bool
	// Quit is set on Escape or when the window is closed.
	Quit bool
	// AnyKey is set when any key went down this tick.
	AnyKey bool
}

// Cue is a sound the front-end should play.
type Cue uint8

const (
	CueMoveUp Cue = iota + 1
	CueMoveDown
	CueStopMoves // silence the movement sounds
	CueCollision
	CueExplosion
)

func (c Cue) String() string {
	switch c {
	case CueMoveUp:
		return "move-up"
	case CueMoveDown:
		return "move-down"
	case CueStopMoves:
		return "stop-moves"
	case CueCollision:
		return "collision"
	case CueExplosion:
		return "explosion"
	}
	return "none"
}
