package engine

import "errors"

var (
	// ErrInvalidSize is returned when a board dimension is below MinSize.
	ErrInvalidSize = errors.New("engine: invalid board size")

	// ErrNotSquare is returned when rows passed to BoardFromRows do not form an N×N grid.
	ErrNotSquare = errors.New("engine: board is not square")

	// ErrInvalidTile is returned for a cell value that is neither empty nor a power of two >= 2.
	ErrInvalidTile = errors.New("engine: invalid tile value")

	// ErrInvalidRules is returned by Rules.Validate.
	ErrInvalidRules = errors.New("engine: invalid rules")

	// ErrBoardFull is the panic value raised when a tile is spawned on a full board.
	ErrBoardFull = errors.New("engine: spawn on a full board")
)
