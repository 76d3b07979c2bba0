package engine

import (
	"fmt"
	"math"
)

const (
	// DefaultSize is the classic 4x4 grid.
	DefaultSize = 4
	// MinSize is the smallest board that can hold the two opening tiles.
	MinSize = 2
	// DefaultWinTile is the tile that flips the status to Won.
	DefaultWinTile Tile = 2048
	// DefaultFourProbability is the chance of a spawned tile being a 4.
	DefaultFourProbability = 0.10
)

// Rules are the gameplay parameters of a single game.
type Rules struct {
	Size            int
	WinTile         Tile    // Zero disables the win check
	FourProbability float64 // In [0, 1]
}

// DefaultRules returns the classic 4x4, 2048, 90/10 rules.
func DefaultRules() Rules {
	return Rules{
		Size:            DefaultSize,
		WinTile:         DefaultWinTile,
		FourProbability: DefaultFourProbability,
	}
}

// Validate checks that the rules describe a playable game.
func (r Rules) Validate() error {
	if r.Size < MinSize {
		return fmt.Errorf("%w: %d (minimum %d)", ErrInvalidSize, r.Size, MinSize)
	}
	if !r.WinTile.Valid() {
		return fmt.Errorf("%w: win tile %d is not a power of two", ErrInvalidRules, r.WinTile)
	}
	if math.IsNaN(r.FourProbability) || r.FourProbability < 0 || r.FourProbability > 1 {
		return fmt.Errorf("%w: four probability %v outside [0, 1]", ErrInvalidRules, r.FourProbability)
	}
	return nil
}

// SpawnPolicy returns the spawn policy described by the rules.
func (r Rules) SpawnPolicy() SpawnPolicy {
	return SpawnPolicy{FourProbability: r.FourProbability}
}
