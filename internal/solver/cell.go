package solver

import (
	"variantsudoku/internal/geometry"
	"variantsudoku/internal/model"
)

// Cell is one grid cell's solver state: a position, plus either a
// committed value or a non-empty candidate set. A cell with HasValue
// false and an empty Candidates set is a contradiction; that state is
// never allowed to persist, Limit reports it to the caller instead.
type Cell struct {
	Pos        geometry.Point
	HasValue   bool
	Value      model.Value
	Candidates Candidates
}

func newCell(pos geometry.Point, valueCount int) Cell {
	return Cell{Pos: pos, Candidates: fullCandidates(valueCount)}
}

// Limit retains only the candidates for which keep(value) holds. Every
// propagator narrows cells through this one primitive, so the
// commit-when-exactly-one-remains invariant lives in a single place.
// If no candidate remains, ok is false: this is the contradiction
// signal propagators return up to the driver. changed reports whether
// the candidate set shrank, regardless of whether that shrinking
// triggered a commit.
//
// Limit is a no-op (changed=false, ok=true) on an already-committed
// cell; callers do not need to guard that themselves.
func (c *Cell) Limit(values []model.Value, keep func(model.Value) bool) (changed, ok bool) {
	if c.HasValue {
		return false, true
	}
	before := c.Candidates.count()
	next := emptyCandidates(len(values))
	for _, i := range c.Candidates.indices() {
		if keep(values[i]) {
			next.set(i)
		}
	}
	c.Candidates = next
	after := next.count()
	changed = after != before

	switch after {
	case 0:
		return changed, false
	case 1:
		c.commit(values[next.indices()[0]])
		return changed, true
	default:
		return changed, true
	}
}

func (c *Cell) commit(v model.Value) {
	c.Value = v
	c.HasValue = true
	c.Candidates = Candidates{}
}

// CandidateValues resolves the cell's candidate indices back into
// admissible Values, for diagnostics and for propagators that need the
// actual values rather than just the count.
func (c Cell) CandidateValues(values []model.Value) []model.Value {
	indices := c.Candidates.indices()
	out := make([]model.Value, len(indices))
	for i, idx := range indices {
		out[i] = values[idx]
	}
	return out
}

func (c Cell) candidateCount() int {
	if c.HasValue {
		return 0
	}
	return c.Candidates.count()
}
