package engine

import "testing"

// scriptedSource replays fixed Intn and Float64 results.
// Once a script runs out it returns 0 for Intn and 0.5 for Float64.
type scriptedSource struct {
	ints   []int
	floats []float64
}

func (s *scriptedSource) Intn(n int) int {
	if len(s.ints) == 0 {
		return 0
	}
	v := s.ints[0]
	s.ints = s.ints[1:]
	return v % n
}

func (s *scriptedSource) Float64() float64 {
	if len(s.floats) == 0 {
		return 0.5
	}
	v := s.floats[0]
	s.floats = s.floats[1:]
	return v
}

func mustBoard(t *testing.T, rows [][]Tile) *Board {
	t.Helper()
	b, err := BoardFromRows(rows)
	if err != nil {
		t.Fatalf("BoardFromRows() failed: %v", err)
	}
	return b
}
