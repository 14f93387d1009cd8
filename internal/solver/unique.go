package solver

import (
	"fmt"
	"strings"

	"variantsudoku/internal/geometry"
	"variantsudoku/internal/model"
)

// propagateUnique enforces distinct values over a region: a
// placed-value check and strip, followed by naked-subset and
// hidden-subset elimination. The placed-value strip must run before the
// subset steps; the driver's fixed-point loop re-invokes this
// propagator if either subset step fired, so a second pass (not a
// second call inside this function) is what lets them feed off each
// other.
func propagateUnique(s *State, c model.UniqueConstraint) Result {
	cells := c.Region.Cells()
	changed := false

	placed := make(map[model.Value]bool)
	for _, p := range cells {
		cell := s.At(p)
		if !cell.HasValue {
			continue
		}
		if placed[cell.Value] {
			return Contradiction
		}
		placed[cell.Value] = true
	}
	for _, p := range cells {
		cell := s.At(p)
		if cell.HasValue {
			continue
		}
		ch, ok := cell.Limit(s.Model.Values, func(v model.Value) bool { return !placed[v] })
		if !ok {
			return Contradiction
		}
		changed = changed || ch
	}

	switch findNakedSubsets(s, cells) {
	case Contradiction:
		return Contradiction
	case Changed:
		changed = true
	}

	switch findHiddenSubsets(s, cells) {
	case Contradiction:
		return Contradiction
	case Changed:
		changed = true
	}

	if changed {
		return Changed
	}
	return Unchanged
}

// findNakedSubsets groups empty cells in cells by their exact candidate
// set. When a group of n cells shares a candidate set of size n, those n
// values cannot appear anywhere else in the region, so they are removed
// from every other empty cell.
func findNakedSubsets(s *State, cells []geometry.Point) Result {
	type group struct {
		values    []model.Value
		positions []geometry.Point
	}
	groups := make(map[string]*group)

	for _, p := range cells {
		cell := s.At(p)
		if cell.HasValue {
			continue
		}
		values := cell.CandidateValues(s.Model.Values)
		key := candidateKey(values)
		g, ok := groups[key]
		if !ok {
			g = &group{values: values}
			groups[key] = g
		}
		g.positions = append(g.positions, p)
	}

	changed := false
	for _, g := range groups {
		if len(g.values) != len(g.positions) {
			continue
		}
		inGroup := make(map[geometry.Point]bool, len(g.positions))
		for _, p := range g.positions {
			inGroup[p] = true
		}
		excluded := make(map[model.Value]bool, len(g.values))
		for _, v := range g.values {
			excluded[v] = true
		}
		for _, p := range cells {
			if inGroup[p] {
				continue
			}
			cell := s.At(p)
			if cell.HasValue {
				continue
			}
			ch, ok := cell.Limit(s.Model.Values, func(v model.Value) bool { return !excluded[v] })
			if !ok {
				return Contradiction
			}
			changed = changed || ch
		}
	}
	if changed {
		return Changed
	}
	return Unchanged
}

// findHiddenSubsets dualizes findNakedSubsets: it looks for m values
// that only fit in the same m cells, and restricts those cells to
// exactly those values.
func findHiddenSubsets(s *State, cells []geometry.Point) Result {
	union := make(map[model.Value]bool)
	var freeSpots []geometry.Point
	for _, p := range cells {
		cell := s.At(p)
		if cell.HasValue {
			continue
		}
		freeSpots = append(freeSpots, p)
		for _, v := range cell.CandidateValues(s.Model.Values) {
			union[v] = true
		}
	}

	if len(union) < len(freeSpots) {
		return Contradiction
	}
	if len(union) != len(freeSpots) {
		return Unchanged
	}

	changed := false
	for _, p := range freeSpots {
		cell := s.At(p)
		ch, ok := cell.Limit(s.Model.Values, func(v model.Value) bool { return union[v] })
		if !ok {
			return Contradiction
		}
		changed = changed || ch
	}

	possibleSpots := make(map[model.Value][]geometry.Point)
	for _, p := range freeSpots {
		cell := s.At(p)
		for _, v := range cell.CandidateValues(s.Model.Values) {
			possibleSpots[v] = append(possibleSpots[v], p)
		}
	}

	type bucket struct {
		values []model.Value
		spots  []geometry.Point
	}
	buckets := make(map[string]*bucket)
	for v, spots := range possibleSpots {
		key := pointsKey(spots)
		b, ok := buckets[key]
		if !ok {
			b = &bucket{spots: spots}
			buckets[key] = b
		}
		b.values = append(b.values, v)
	}

	for _, b := range buckets {
		if len(b.values) != len(b.spots) {
			continue
		}
		allowed := make(map[model.Value]bool, len(b.values))
		for _, v := range b.values {
			allowed[v] = true
		}
		for _, p := range b.spots {
			cell := s.At(p)
			ch, ok := cell.Limit(s.Model.Values, func(v model.Value) bool { return allowed[v] })
			if !ok {
				return Contradiction
			}
			changed = changed || ch
		}
	}

	if changed {
		return Changed
	}
	return Unchanged
}

func candidateKey(values []model.Value) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = fmt.Sprintf("%d", v)
	}
	return strings.Join(parts, ",")
}

func pointsKey(points []geometry.Point) string {
	parts := make([]string, len(points))
	for i, p := range points {
		parts[i] = fmt.Sprintf("%d:%d", p.X, p.Y)
	}
	return strings.Join(parts, ",")
}
