package solver

import "variantsudoku/internal/model"

// propagateArrow applies the same bounding contract as Killer, except
// the target sum is itself the (possibly unknown) value of the tail
// cell rather than a fixed constant. Propagation runs both ways: the
// region's reachable sum range bounds the tail's candidates, and the
// tail's candidate range bounds the region the same way Killer bounds
// its cells against a fixed sum.
func propagateArrow(s *State, c model.ArrowConstraint) Result {
	cells := c.Region.Cells()
	tail := s.At(c.Tail)
	changed := false

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
	lowest := s.Precomputed.Lowest(len(unknown))
	highest := s.Precomputed.Highest(len(unknown))
	regionMin := int64(sumSoFar) + lowest
	regionMax := int64(sumSoFar) + highest

	if !tail.HasValue {
		ch, ok := tail.Limit(s.Model.Values, func(v model.Value) bool {
			return int64(v) >= regionMin && int64(v) <= regionMax
		})
		if !ok {
			return Contradiction
		}
		changed = changed || ch
	} else if int64(tail.Value) < regionMin || int64(tail.Value) > regionMax {
		return Contradiction
	}

	tailLow, tailHigh, ok := candidateBounds(s.Model, tail)
	if !ok {
		return Contradiction
	}

	if regionMin > int64(tailHigh) || regionMax < int64(tailLow) {
		return Contradiction
	}

	if len(unknown) == 1 {
		cell := s.At(cells[unknown[0]])
		ch, ok := cell.Limit(s.Model.Values, func(v model.Value) bool {
			total := int64(sumSoFar) + int64(v)
			return total >= int64(tailLow) && total <= int64(tailHigh)
		})
		if !ok {
			return Contradiction
		}
		changed = changed || ch
	}

	if changed {
		return Changed
	}
	return Unchanged
}

// candidateBounds returns the lowest and highest value a cell could
// still take: its committed value on both ends if set, else the
// extremes of its remaining candidates.
func candidateBounds(m *model.SudokuModel, cell *Cell) (model.Value, model.Value, bool) {
	if cell.HasValue {
		return cell.Value, cell.Value, true
	}
	values := cell.CandidateValues(m.Values)
	if len(values) == 0 {
		return 0, 0, false
	}
	low, high := values[0], values[0]
	for _, v := range values[1:] {
		if v < low {
			low = v
		}
		if v > high {
			high = v
		}
	}
	return low, high, true
}
