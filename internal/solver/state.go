package solver

import (
	"variantsudoku/internal/geometry"
	"variantsudoku/internal/model"
)

// State is the mutable solver state for one puzzle model: a grid of
// cells plus the model's precomputed prefix sums. The Model it was
// built from is immutable and shared across every cloned branch the
// search driver creates; only the grid is ever mutated in place.
type State struct {
	Grid        [][]Cell // Grid[y][x]
	Model       *model.SudokuModel
	Precomputed *Precomputed
}

// NewState builds the initial solver state for m: every cell starts
// with candidates = V and no committed value.
func NewState(m *model.SudokuModel) *State {
	grid := make([][]Cell, m.Size.Y)
	for y := range grid {
		row := make([]Cell, m.Size.X)
		for x := range row {
			row[x] = newCell(geometry.NewPoint(x, y), len(m.Values))
		}
		grid[y] = row
	}
	return &State{Grid: grid, Model: m, Precomputed: newPrecomputed(m.Values)}
}

// At returns a pointer to the cell at p, for in-place mutation.
func (s *State) At(p geometry.Point) *Cell {
	return &s.Grid[p.Y][p.X]
}

// Clone deep-copies the grid so a search branch can commit a candidate
// without disturbing the caller's state. Model and Precomputed are
// immutable and shared, not copied.
func (s *State) Clone() *State {
	grid := make([][]Cell, len(s.Grid))
	for y, row := range s.Grid {
		newRow := make([]Cell, len(row))
		for x, c := range row {
			newRow[x] = c
			newRow[x].Candidates = c.Candidates.clone()
		}
		grid[y] = newRow
	}
	return &State{Grid: grid, Model: s.Model, Precomputed: s.Precomputed}
}

// IsSolved reports whether every cell in the grid carries a committed
// value.
func (s *State) IsSolved() bool {
	for _, row := range s.Grid {
		for _, c := range row {
			if !c.HasValue {
				return false
			}
		}
	}
	return true
}

// Values returns the filled grid in row-major order, valid only once
// IsSolved reports true.
func (s *State) Values() []model.Value {
	out := make([]model.Value, 0, s.Model.Size.X*s.Model.Size.Y)
	for _, row := range s.Grid {
		for _, c := range row {
			out = append(out, c.Value)
		}
	}
	return out
}
