package solver

import "variantsudoku/internal/model"

// propagateKiller enforces a cage's exact sum: sum the committed
// cells, bound the remaining unknown cells' reachable sum against
// Precomputed, and when exactly one cell is left unknown, pin it to the
// single value that completes the sum exactly.
func propagateKiller(s *State, c model.KillerConstraint) Result {
	cells := c.Region.Cells()

	sumSoFar := model.Value(0)
	var unknown []int
	for i, p := range cells {
		cell := s.At(p)
		if cell.HasValue {
			sumSoFar += cell.Value
		} else {
			unknown = append(unknown, i)
		}
	}

	if sumSoFar > c.Sum {
		return Contradiction
	}
	if sumSoFar == c.Sum {
		if len(unknown) != 0 {
			return Contradiction
		}
		return Unchanged
	}

	lowest := s.Precomputed.Lowest(len(unknown))
	highest := s.Precomputed.Highest(len(unknown))
	if int64(sumSoFar)+highest < int64(c.Sum) {
		return Contradiction
	}
	if int64(sumSoFar)+lowest > int64(c.Sum) {
		return Contradiction
	}

	if len(unknown) == 1 {
		cell := s.At(cells[unknown[0]])
		target := c.Sum - sumSoFar
		changed, ok := cell.Limit(s.Model.Values, func(v model.Value) bool { return v == target })
		if !ok {
			return Contradiction
		}
		if changed {
			return Changed
		}
	}
	return Unchanged
}
