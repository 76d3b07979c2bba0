package engine

import "fmt"

// Status is the state of a game.
type Status int

const (
	// Playing is the initial state.
	Playing Status = iota
	// Won is set once when the win tile first appears. Play continues normally.
	Won
	// Lost is terminal: the board is full and no direction changes it.
	Lost
)

// String returns the lowercase status name.
func (s Status) String() string {
	switch s {
	case Playing:
		return "playing"
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// Game sequences moves on a board: it commits changed moves, accumulates
// score, spawns tiles and tracks the win/loss status. A Game is not safe
// for concurrent use; the caller owns it and feeds it one move at a time.
type Game struct {
	rules  Rules
	spawn  SpawnPolicy
	src    Source
	board  *Board
	score  int
	status Status
	moves  int
}

// MoveResult reports what a RequestMove call did.
type MoveResult struct {
	Direction  Direction
	Previous   Status
	Status     Status
	Changed    bool
	ScoreDelta int
	Won        bool // True only on the move that first reached the win tile
	Moves      []TileMove
	Spawned    *Spawned
}

// Snapshot is a read-only copy of the observable game state.
type Snapshot struct {
	Size    int
	Cells   [][]Tile
	Score   int
	Status  Status
	MaxTile Tile
	Moves   int
}

// NewGame starts a game on an empty board seeded with two spawned tiles.
func NewGame(rules Rules, src Source) (*Game, error) {
	if err := rules.Validate(); err != nil {
		return nil, err
	}

	board, err := NewBoard(rules.Size)
	if err != nil {
		return nil, err
	}

	g := &Game{
		rules: rules,
		spawn: rules.SpawnPolicy(),
		src:   src,
		board: board,
	}
	g.spawn.Spawn(g.board, g.src)
	g.spawn.Spawn(g.board, g.src)

	return g, nil
}

// NewGameFromBoard starts a Playing game on a copy of an existing board.
// Status is re-evaluated on the first move request.
func NewGameFromBoard(rules Rules, board *Board, score int, src Source) (*Game, error) {
	if err := rules.Validate(); err != nil {
		return nil, err
	}
	if board.Size() != rules.Size {
		return nil, fmt.Errorf("%w: board is %d, rules want %d", ErrInvalidSize, board.Size(), rules.Size)
	}
	if score < 0 {
		return nil, fmt.Errorf("%w: negative score %d", ErrInvalidRules, score)
	}

	return &Game{
		rules: rules,
		spawn: rules.SpawnPolicy(),
		src:   src,
		board: board.Clone(),
		score: score,
	}, nil
}

// RequestMove applies dir. A move that does not change the board never
// scores or spawns; requests after Lost are ignored.
func (g *Game) RequestMove(dir Direction) MoveResult {
	res := MoveResult{
		Direction: dir,
		Previous:  g.status,
		Status:    g.status,
	}

	if g.status == Lost {
		return res
	}

	outcome := g.board.ApplyMove(dir)
	if !outcome.Changed {
		// A stuck board handed to us from outside is only noticed here.
		if g.board.Stuck() {
			g.status = Lost
		}
		res.Status = g.status
		return res
	}

	g.board = outcome.Board
	g.score += outcome.ScoreDelta
	g.moves++

	res.Changed = true
	res.ScoreDelta = outcome.ScoreDelta
	res.Moves = outcome.Moves

	if g.status == Playing && g.reachedWinTile() {
		g.status = Won
		res.Won = true
	}

	spawned := g.spawn.Spawn(g.board, g.src)
	res.Spawned = &spawned

	if g.board.Stuck() {
		g.status = Lost
	}
	res.Status = g.status

	return res
}

func (g *Game) reachedWinTile() bool {
	return g.rules.WinTile != Empty && g.board.MaxTile() >= g.rules.WinTile
}

// Snapshot returns a copy of the grid, score and status.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Size:    g.board.Size(),
		Cells:   g.board.Rows(),
		Score:   g.score,
		Status:  g.status,
		MaxTile: g.board.MaxTile(),
		Moves:   g.moves,
	}
}

// Board returns a copy of the current board.
func (g *Game) Board() *Board {
	return g.board.Clone()
}

// Score returns the accumulated score.
func (g *Game) Score() int {
	return g.score
}

// Status returns the current status.
func (g *Game) Status() Status {
	return g.status
}

// Moves returns the number of committed (board-changing) moves.
func (g *Game) Moves() int {
	return g.moves
}

// Rules returns the rules the game was created with.
func (g *Game) Rules() Rules {
	return g.rules
}
