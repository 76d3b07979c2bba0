package t2048

import "github.com/vovakirdan/tui48/internal/engine"

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StateWon         GameStateType = "won"
	StateGameOver    GameStateType = "game_over"
	StatePaused      GameStateType = "paused"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick      uint64
	Mode      Mode
	Score     int
	Board     [][]int
	MaxTile   int
	Moves     int
	State     GameStateType
	Animation AnimationPhase
	Banner    bool // Whether the win banner is showing
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	es := g.game.Snapshot()

	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.paused:
		state = StatePaused
	case es.Status == engine.Lost:
		state = StateGameOver
	case es.Status == engine.Won:
		state = StateWon
	}

	board := make([][]int, len(es.Cells))
	for r, row := range es.Cells {
		board[r] = make([]int, len(row))
		for c, v := range row {
			board[r][c] = int(v)
		}
	}

	return Snapshot{
		Tick:      g.tick,
		Mode:      g.mode,
		Score:     es.Score,
		Board:     board,
		MaxTile:   int(es.MaxTile),
		Moves:     es.Moves,
		State:     state,
		Animation: g.anim.phase,
		Banner:    g.bannerTicks > 0,
	}
}
