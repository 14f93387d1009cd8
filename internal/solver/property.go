package solver

import "variantsudoku/internal/model"

// propagatePropertyConstraint checks a per-cell property over a
// region: a committed cell is checked against the property directly; an
// empty cell has its candidates filtered by the same predicate.
func propagatePropertyConstraint(s *State, c model.PropertyConstraint) Result {
	changed := false
	for _, p := range c.Region.Cells() {
		cell := s.At(p)
		if cell.HasValue {
			if !propertyHolds(c.Property, cell.Value) {
				return Contradiction
			}
			continue
		}
		ch, ok := cell.Limit(s.Model.Values, func(v model.Value) bool {
			return propertyHolds(c.Property, v)
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

func propertyHolds(p model.Property, v model.Value) bool {
	switch p.Kind {
	case model.PropertyEven:
		return v%2 == 0
	case model.PropertyOdd:
		return v%2 != 0
	case model.PropertyGiven:
		return v == p.Given
	default:
		return false
	}
}
