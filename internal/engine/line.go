package engine

// LineMove records where one tile of a line ended up after a merge pass.
type LineMove struct {
	From   int  // Index in the input line
	To     int  // Index in the output line
	Value  Tile // Value before the move
	Merged bool // Whether this tile took part in a merge
}

// LineResult is the outcome of MergeLine.
type LineResult struct {
	Cells   []Tile // Output line, same length as the input
	Score   int    // Sum of pre-merge face values of every merged pair
	Merges  int    // Number of merge events
	Changed bool   // Whether any cell differs from the input
	Moves   []LineMove
}

// MergeLine compacts a line toward index 0 and merges equal neighbours.
//
// Empty cells are skipped, then the remaining tiles are written through a
// cursor. A tile merges into the last written cell only if that cell holds
// the same value and was not itself produced by a merge in this pass, so
// [2,2,2] becomes [4,2,_] and [2,2,2,2] becomes [4,4,_,_]. The input slice
// is not modified.
func MergeLine(cells []Tile) LineResult {
	out := make([]Tile, len(cells))
	res := LineResult{Cells: out}

	write := 0
	lastMerged := false

	for i, v := range cells {
		if v.IsEmpty() {
			continue
		}

		if write > 0 && !lastMerged && out[write-1] == v {
			out[write-1] = v * 2
			res.Score += int(v)
			res.Merges++
			lastMerged = true

			// The tile already sitting in the slot is half of this merge.
			res.Moves[len(res.Moves)-1].Merged = true
			res.Moves = append(res.Moves, LineMove{From: i, To: write - 1, Value: v, Merged: true})
			continue
		}

		out[write] = v
		lastMerged = false
		res.Moves = append(res.Moves, LineMove{From: i, To: write, Value: v})
		write++
	}

	for i := range cells {
		if cells[i] != out[i] {
			res.Changed = true
			break
		}
	}

	return res
}
