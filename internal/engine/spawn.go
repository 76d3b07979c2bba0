package engine

// Source is the randomness a SpawnPolicy draws from. *math/rand.Rand
// satisfies it; tests substitute scripted sources.
type Source interface {
	// Intn returns a uniformly chosen integer in [0, n).
	Intn(n int) int
	// Float64 returns a value in [0.0, 1.0), used for the weighted 2/4 choice.
	Float64() float64
}

// Spawned describes a tile placed by the spawn policy.
type Spawned struct {
	Pos   Pos
	Value Tile
}

// SpawnPolicy places new tiles after board-changing moves.
type SpawnPolicy struct {
	// FourProbability is the chance of spawning a 4 instead of a 2.
	FourProbability float64
}

// DefaultSpawnPolicy returns the 90/10 policy.
func DefaultSpawnPolicy() SpawnPolicy {
	return SpawnPolicy{FourProbability: DefaultFourProbability}
}

// Spawn fills one uniformly chosen empty cell of b with a 2 or a 4.
// Calling it on a full board is a programming error and panics with ErrBoardFull.
func (p SpawnPolicy) Spawn(b *Board, src Source) Spawned {
	empty := b.EmptyCells()
	if len(empty) == 0 {
		panic(ErrBoardFull)
	}

	pos := empty[src.Intn(len(empty))]

	value := Tile(2)
	if src.Float64() < p.FourProbability {
		value = 4
	}

	b.Set(pos, value)
	return Spawned{Pos: pos, Value: value}
}
