package solver

import (
	"variantsudoku/internal/geometry"
	"variantsudoku/internal/model"
)

// propagateThermometer enforces strictly increasing values along the
// ordered line. A left-to-right pass computes, for each position, the
// minimum V-index it can still hold; the symmetric right-to-left pass
// computes the maximum. Both bounds are then applied as one Limit call
// per empty cell.
func propagateThermometer(m *model.SudokuModel, s *State, c model.ThermometerConstraint) Result {
	line := c.Line.Cells
	k := len(m.Values)
	if len(line) > k {
		return Contradiction
	}

	minIdx, ok := computeMinIndices(m, s, line, k)
	if !ok {
		return Contradiction
	}
	maxIdx, ok := computeMaxIndices(m, s, line, k)
	if !ok {
		return Contradiction
	}

	changed := false
	for i, p := range line {
		cell := s.At(p)
		if cell.HasValue {
			continue
		}
		lo, hi := minIdx[i], maxIdx[i]
		ch, ok := cell.Limit(m.Values, func(v model.Value) bool {
			idx, known := m.Index(v)
			return known && idx >= lo && idx <= hi
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

// computeMinIndices scans left to right carrying an offset: a committed
// cell at position i with V-index j must have j >= i+offset (else the
// line cannot be strictly increasing), and resets offset to j-i; an
// empty cell's minimum is i+offset.
func computeMinIndices(m *model.SudokuModel, s *State, line []geometry.Point, k int) ([]int, bool) {
	L := len(line)
	minIdx := make([]int, L)
	offset := 0
	for i, p := range line {
		cell := s.At(p)
		if cell.HasValue {
			j, known := m.Index(cell.Value)
			if !known || j < i+offset {
				return nil, false
			}
			offset = j - i
			minIdx[i] = j
		} else {
			v := i + offset
			if v >= k {
				return nil, false
			}
			minIdx[i] = v
		}
	}
	return minIdx, true
}

// computeMaxIndices derives the symmetric maxima by running the same
// left-to-right scan over the mirrored problem: the line in reverse,
// with each V-index reflected as k-1-j. A strictly increasing sequence
// in the mirrored space is exactly a strictly increasing sequence in
// the unmirrored space read backwards, so minima there translate
// directly to maxima here.
func computeMaxIndices(m *model.SudokuModel, s *State, line []geometry.Point, k int) ([]int, bool) {
	L := len(line)
	reversed := make([]geometry.Point, L)
	for i := range line {
		reversed[i] = line[L-1-i]
	}

	mirroredMin := make([]int, L)
	offset := 0
	for i, p := range reversed {
		cell := s.At(p)
		if cell.HasValue {
			j, known := m.Index(cell.Value)
			if !known {
				return nil, false
			}
			mirrored := k - 1 - j
			if mirrored < i+offset {
				return nil, false
			}
			offset = mirrored - i
			mirroredMin[i] = mirrored
		} else {
			v := i + offset
			if v >= k {
				return nil, false
			}
			mirroredMin[i] = v
		}
	}

	maxIdx := make([]int, L)
	for i := 0; i < L; i++ {
		maxIdx[L-1-i] = k - 1 - mirroredMin[i]
	}
	return maxIdx, true
}
