// Package engine implements the 2048 board engine: the grid model, the
// slide/merge algorithm, the spawn policy and the game state machine.
// It has no I/O and no dependencies outside the standard library so that
// every rule can be exercised deterministically from tests.
package engine

import "math/bits"

// Tile is the value held by a single cell. Zero means the cell is empty;
// any other value is a power of two >= 2.
type Tile uint32

// Empty is the zero tile.
const Empty Tile = 0

// IsEmpty reports whether the cell holds no tile.
func (t Tile) IsEmpty() bool {
	return t == Empty
}

// Valid reports whether t is empty or a power of two >= 2.
func (t Tile) Valid() bool {
	if t == Empty {
		return true
	}
	return t >= 2 && t&(t-1) == 0
}

// Exponent returns k for a tile of value 2^k, and 0 for an empty cell.
func (t Tile) Exponent() int {
	if t == Empty {
		return 0
	}
	return bits.TrailingZeros32(uint32(t))
}
