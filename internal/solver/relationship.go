package solver

import "variantsudoku/internal/model"

// propagateRelationship enforces a binary relation on two cells: both
// cells committed verifies the relation holds; exactly one committed
// prunes the other; both empty is Unchanged, never a contradiction
// (there is nothing to infer yet).
func propagateRelationship(s *State, c model.RelationshipConstraint) Result {
	first := s.At(c.First)
	second := s.At(c.Second)

	if !first.HasValue && !second.HasValue {
		return Unchanged
	}

	if first.HasValue && second.HasValue {
		if !relationHolds(c.Relationship, first.Value, second.Value) {
			return Contradiction
		}
		return Unchanged
	}

	firstIsPresent := first.HasValue
	present, absent := first, second
	if !firstIsPresent {
		present, absent = second, first
	}
	value := present.Value

	changed, ok := absent.Limit(s.Model.Values, func(v model.Value) bool {
		return relationAllows(c.Relationship, firstIsPresent, value, v)
	})
	if !ok {
		return Contradiction
	}
	if changed {
		return Changed
	}
	return Unchanged
}

// relationHolds checks a relationship between two committed values in
// the same direction relationAllows prunes: Less holds when second is
// below first, Greater when second is above first.
func relationHolds(rel model.RelationKind, first, second model.Value) bool {
	switch rel {
	case model.RelLess:
		return second < first
	case model.RelGreater:
		return second > first
	case model.RelEqual:
		return first == second
	case model.RelNotEqual:
		return first != second
	case model.RelConsecutive:
		return abs64(int64(first)-int64(second)) == 1
	case model.RelDouble:
		return first == 2*second || second == 2*first
	default:
		return false
	}
}

// relationAllows reports whether candidate c is still possible for the
// unknown side, given that the known side holds value and sits at
// First (firstIsPresent) or Second. Less keeps unknown < value when the
// unknown cell is Second, unknown > value when it is First; Greater
// mirrors it.
func relationAllows(rel model.RelationKind, firstIsPresent bool, value, c model.Value) bool {
	switch rel {
	case model.RelLess:
		if firstIsPresent {
			return c < value
		}
		return c > value
	case model.RelGreater:
		if firstIsPresent {
			return c > value
		}
		return c < value
	case model.RelEqual:
		return c == value
	case model.RelNotEqual:
		return c != value
	case model.RelConsecutive:
		return abs64(int64(c)-int64(value)) == 1
	case model.RelDouble:
		return c == 2*value || value == 2*c
	default:
		return false
	}
}

func abs64(n int64) int64 {
	if n < 0 {
		return -n
	}
	return n
}
