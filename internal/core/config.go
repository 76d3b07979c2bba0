package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the game has ended
	Won      bool // Whether the win tile has been reached (play may continue)
	Paused   bool // Whether the game is paused
	Moves    int  // Board-changing moves made so far
	MaxTile  int  // Highest tile on the board
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
	// Events lists notable things that happened during the tick, for logging.
	Events []Event
}

// EventKind classifies a StepResult event.
type EventKind int

const (
	EventMove EventKind = iota
	EventWin
	EventGameOver
)

// Event is a notable game occurrence reported to the platform.
type Event struct {
	Kind   EventKind
	Detail string
	Score  int
}
