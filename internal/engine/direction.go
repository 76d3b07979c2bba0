package engine

import (
	"fmt"
	"strings"
)

// Direction represents a move direction.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Directions lists every direction in a stable order.
var Directions = [...]Direction{Up, Down, Left, Right}

// String returns the lowercase name of the direction.
func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return fmt.Sprintf("direction(%d)", int(d))
	}
}

// ParseDirection converts a name such as "left" or "L" into a Direction.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up", "u":
		return Up, nil
	case "down", "d":
		return Down, nil
	case "left", "l":
		return Left, nil
	case "right", "r":
		return Right, nil
	}
	return 0, fmt.Errorf("engine: unknown direction %q", s)
}

// horizontal reports whether the move runs along rows.
func (d Direction) horizontal() bool {
	return d == Left || d == Right
}

// reversed reports whether lines are read from the far edge.
func (d Direction) reversed() bool {
	return d == Right || d == Down
}
