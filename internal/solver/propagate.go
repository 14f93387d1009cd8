package solver

import "variantsudoku/internal/model"

// Result is what a propagator reports after one pass over its
// constraint: Changed and Unchanged both mean "no contradiction",
// differing only in whether anything narrowed; Contradiction means the
// current state is inconsistent and the caller must abandon this
// branch.
type Result int

const (
	Unchanged Result = iota
	Changed
	Contradiction
)

// propagate dispatches one constraint to its propagator. New constraint
// kinds are added by extending the type switch and adding one function
// here; nothing else in the driver changes.
func propagate(m *model.SudokuModel, s *State, c model.Constraint) Result {
	switch constraint := c.(type) {
	case model.UniqueConstraint:
		return propagateUnique(s, constraint)
	case model.ThermometerConstraint:
		return propagateThermometer(m, s, constraint)
	case model.KillerConstraint:
		return propagateKiller(s, constraint)
	case model.ArrowConstraint:
		return propagateArrow(s, constraint)
	case model.RelationshipConstraint:
		return propagateRelationship(s, constraint)
	case model.PropertyConstraint:
		return propagatePropertyConstraint(s, constraint)
	default:
		return Unchanged
	}
}

// propagateToFixpoint runs every constraint's propagator repeatedly
// until a full pass makes no further change, or one propagator reports
// Contradiction. It returns false on contradiction.
func propagateToFixpoint(m *model.SudokuModel, s *State) bool {
	for {
		anyChanged := false
		for _, c := range m.Constraints {
			switch propagate(m, s, c) {
			case Contradiction:
				return false
			case Changed:
				anyChanged = true
			}
		}
		if !anyChanged {
			return true
		}
	}
}
