package model

import (
	"fmt"

	"variantsudoku/internal/geometry"
)

// SudokuSpecifier is the whole declarative puzzle description: a grid
// size, the admissible-value ranges, and the constraint list.
type SudokuSpecifier struct {
	Size        geometry.Point
	Numbers     []NumberRange
	Constraints []ConstraintSpecifier
}

// SudokuModel is the expanded, immutable puzzle model the solver reads:
// a size, the sorted admissible value set V, its inverse index, and
// every expanded constraint.
type SudokuModel struct {
	Size        geometry.Point
	Values      []Value
	Constraints []Constraint

	index map[Value]int
}

// Build materializes a SudokuSpecifier into a SudokuModel: it unions and
// sorts the admissible values, builds every constraint's region/line,
// and validates that every constraint cell lies within the grid, so the
// propagators never index outside it.
func (s SudokuSpecifier) Build() (*SudokuModel, error) {
	values := materializeValues(s.Numbers)
	if len(values) == 0 {
		return nil, fmt.Errorf("model: no admissible values (empty V), puzzle has no solution")
	}

	index := make(map[Value]int, len(values))
	for i, v := range values {
		index[v] = i
	}

	constraints := make([]Constraint, 0, len(s.Constraints))
	for i, spec := range s.Constraints {
		c, err := spec.Build()
		if err != nil {
			return nil, fmt.Errorf("model: constraint %d: %w", i, err)
		}
		if err := validateInBounds(c, s.Size); err != nil {
			return nil, fmt.Errorf("model: constraint %d: %w", i, err)
		}
		constraints = append(constraints, c)
	}

	return &SudokuModel{
		Size:        s.Size,
		Values:      values,
		Constraints: constraints,
		index:       index,
	}, nil
}

// Index returns the position of v within the sorted value set V, and
// whether v is admissible at all.
func (m *SudokuModel) Index(v Value) (int, bool) {
	i, ok := m.index[v]
	return i, ok
}

func validateInBounds(c Constraint, size geometry.Point) error {
	for _, p := range c.cells() {
		if !p.InBounds(size) {
			return fmt.Errorf("cell %v is outside the %dx%d grid", p, size.X, size.Y)
		}
	}
	return nil
}
