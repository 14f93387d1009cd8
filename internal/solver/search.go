package solver

import (
	"variantsudoku/internal/geometry"
	"variantsudoku/internal/model"
)

// SolveResult is the outcome of Solve: exactly one of Solved or
// Unsolvable holds.
type SolveResult struct {
	Solved bool
	State  *State
}

// Solve runs the bifurcating search driver: it propagates every
// constraint to a fixed point, then branches on the most-constrained
// empty cell, recursing on a cloned state and returning the first
// solution found. Unsolvable is a normal, non-error outcome, reported
// via SolveResult.Solved rather than an error return.
func Solve(m *model.SudokuModel) SolveResult {
	state := NewState(m)
	solved := bifurcate(m, state)
	if solved == nil {
		return SolveResult{Solved: false}
	}
	return SolveResult{Solved: true, State: solved}
}

// bifurcate is the recursive search step: propagate to fixpoint,
// return immediately if solved, otherwise branch on the
// smallest-candidate-set empty cell (ties broken row-major) and recurse
// into a cloned state per candidate, ascending V-order.
func bifurcate(m *model.SudokuModel, s *State) *State {
	if !propagateToFixpoint(m, s) {
		return nil
	}
	if s.IsSolved() {
		return s
	}

	pos, ok := pickBranchCell(s)
	if !ok {
		return nil
	}
	cell := s.At(pos)
	candidates := cell.CandidateValues(m.Values)

	for _, v := range candidates {
		clone := s.Clone()
		clone.At(pos).commit(v)
		if solved := bifurcate(m, clone); solved != nil {
			return solved
		}
	}
	return nil
}

// pickBranchCell finds the empty cell with the fewest remaining
// candidates, breaking ties by row-major position so branch order is
// reproducible.
func pickBranchCell(s *State) (geometry.Point, bool) {
	best := geometry.Point{}
	bestCount := -1
	found := false
	for y, row := range s.Grid {
		for x, c := range row {
			if c.HasValue {
				continue
			}
			count := c.candidateCount()
			if !found || count < bestCount {
				best = geometry.NewPoint(x, y)
				bestCount = count
				found = true
			}
		}
	}
	return best, found
}
