package engine

import (
	"fmt"
	"strconv"
	"strings"
)

// Pos addresses a cell. Row 0 is the top edge, column 0 the left edge.
type Pos struct {
	Row, Col int
}

// Board is an N×N grid of tiles stored row-major.
type Board struct {
	size  int
	cells []Tile
}

// TileMove describes one tile's travel during a move.
type TileMove struct {
	From   Pos
	To     Pos
	Value  Tile // Value before the move
	Merged bool // Whether this tile merged with another
}

// MoveOutcome is the result of applying a direction to a board.
type MoveOutcome struct {
	Board      *Board
	Changed    bool
	ScoreDelta int
	Merges     int
	Moves      []TileMove
}

// NewBoard returns an empty size×size board.
func NewBoard(size int) (*Board, error) {
	if size < MinSize {
		return nil, fmt.Errorf("%w: %d (minimum %d)", ErrInvalidSize, size, MinSize)
	}
	return &Board{size: size, cells: make([]Tile, size*size)}, nil
}

// BoardFromRows builds a board from explicit rows, validating shape and values.
func BoardFromRows(rows [][]Tile) (*Board, error) {
	b, err := NewBoard(len(rows))
	if err != nil {
		return nil, err
	}
	for r, row := range rows {
		if len(row) != b.size {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNotSquare, r, len(row), b.size)
		}
		for c, v := range row {
			if !v.Valid() {
				return nil, fmt.Errorf("%w: %d at (%d,%d)", ErrInvalidTile, v, r, c)
			}
			b.cells[r*b.size+c] = v
		}
	}
	return b, nil
}

// Size returns the board dimension N.
func (b *Board) Size() int {
	return b.size
}

// At returns the tile at p. Out-of-range positions panic.
func (b *Board) At(p Pos) Tile {
	return b.cells[b.index(p)]
}

// Set places v at p. Out-of-range positions panic.
func (b *Board) Set(p Pos, v Tile) {
	b.cells[b.index(p)] = v
}

func (b *Board) index(p Pos) int {
	if p.Row < 0 || p.Row >= b.size || p.Col < 0 || p.Col >= b.size {
		panic(fmt.Sprintf("engine: position (%d,%d) outside %dx%d board", p.Row, p.Col, b.size, b.size))
	}
	return p.Row*b.size + p.Col
}

// Rows returns a copy of the grid as rows.
func (b *Board) Rows() [][]Tile {
	rows := make([][]Tile, b.size)
	for r := range rows {
		rows[r] = make([]Tile, b.size)
		copy(rows[r], b.cells[r*b.size:(r+1)*b.size])
	}
	return rows
}

// Clone returns a deep copy.
func (b *Board) Clone() *Board {
	cells := make([]Tile, len(b.cells))
	copy(cells, b.cells)
	return &Board{size: b.size, cells: cells}
}

// Equal reports whether two boards have the same size and contents.
func (b *Board) Equal(other *Board) bool {
	if other == nil || b.size != other.size {
		return false
	}
	for i := range b.cells {
		if b.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}

// EmptyCells returns the positions of all empty cells in row-major order.
func (b *Board) EmptyCells() []Pos {
	var empty []Pos
	for i, v := range b.cells {
		if v.IsEmpty() {
			empty = append(empty, Pos{Row: i / b.size, Col: i % b.size})
		}
	}
	return empty
}

// Count returns the number of occupied cells.
func (b *Board) Count() int {
	n := 0
	for _, v := range b.cells {
		if !v.IsEmpty() {
			n++
		}
	}
	return n
}

// Full reports whether no empty cell remains.
func (b *Board) Full() bool {
	return b.Count() == len(b.cells)
}

// MaxTile returns the largest tile on the board.
func (b *Board) MaxTile() Tile {
	var maxVal Tile
	for _, v := range b.cells {
		if v > maxVal {
			maxVal = v
		}
	}
	return maxVal
}

// line returns the positions of line i in travel order for dir:
// index 0 is the edge tiles are pushed toward.
func (b *Board) line(dir Direction, i int) []Pos {
	positions := make([]Pos, b.size)
	for j := range b.size {
		k := j
		if dir.reversed() {
			k = b.size - 1 - j
		}
		if dir.horizontal() {
			positions[j] = Pos{Row: i, Col: k}
		} else {
			positions[j] = Pos{Row: k, Col: i}
		}
	}
	return positions
}

// ApplyMove slides every line toward dir and returns the resulting board.
// The receiver is left untouched.
func (b *Board) ApplyMove(dir Direction) MoveOutcome {
	out := MoveOutcome{Board: b.Clone()}
	cells := make([]Tile, b.size)

	for i := range b.size {
		positions := b.line(dir, i)
		for j, p := range positions {
			cells[j] = b.At(p)
		}

		res := MergeLine(cells)
		for j, p := range positions {
			out.Board.Set(p, res.Cells[j])
		}

		out.ScoreDelta += res.Score
		out.Merges += res.Merges
		out.Changed = out.Changed || res.Changed

		for _, m := range res.Moves {
			out.Moves = append(out.Moves, TileMove{
				From:   positions[m.From],
				To:     positions[m.To],
				Value:  m.Value,
				Merged: m.Merged,
			})
		}
	}

	return out
}

// CanMove reports whether any direction would change the board.
func (b *Board) CanMove() bool {
	for _, dir := range Directions {
		if b.ApplyMove(dir).Changed {
			return true
		}
	}
	return false
}

// Stuck reports the loss condition: the board is full and no move changes it.
func (b *Board) Stuck() bool {
	return b.Full() && !b.CanMove()
}

// String renders the grid with '.' for empty cells, one row per line.
func (b *Board) String() string {
	width := len(strconv.Itoa(int(b.MaxTile())))
	var sb strings.Builder
	for r := range b.size {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c := range b.size {
			if c > 0 {
				sb.WriteByte(' ')
			}
			s := "."
			if v := b.At(Pos{Row: r, Col: c}); !v.IsEmpty() {
				s = strconv.Itoa(int(v))
			}
			sb.WriteString(strings.Repeat(" ", width-len(s)))
			sb.WriteString(s)
		}
	}
	return sb.String()
}
